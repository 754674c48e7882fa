package events

import (
	"encoding/json"
	"sync"
	"time"
)

// Event represents a state change event
type Event struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// EventType constants
const (
	EventBulbOn       = "bulb_on"
	EventBulbOff      = "bulb_off"
	EventJournalError = "journal_error"
)

// Subscriber represents a client listening for events
type Subscriber struct {
	ID      string
	Channel chan Event
}

// Broadcaster manages event distribution to multiple clients
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber
	eventChan   chan Event
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscribers: make(map[string]*Subscriber),
		eventChan:   make(chan Event, 100), // Buffer for events
	}

	// Start the broadcasting goroutine
	go b.run()

	return b
}

// Subscribe adds a new subscriber
func (b *Broadcaster) Subscribe(id string) *Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Remove existing subscriber with same ID if exists
	if existing, exists := b.subscribers[id]; exists {
		close(existing.Channel)
	}

	sub := &Subscriber{
		ID:      id,
		Channel: make(chan Event, 10), // Buffer for subscriber
	}

	b.subscribers[id] = sub
	return sub
}

// Unsubscribe removes a subscriber
func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, exists := b.subscribers[id]; exists {
		close(sub.Channel)
		delete(b.subscribers, id)
	}
}

// Publish sends an event to all subscribers
func (b *Broadcaster) Publish(event Event) {
	event.Timestamp = time.Now()
	select {
	case b.eventChan <- event:
	default:
		// Event channel is full, drop the event. The stream is
		// advisory; the journal is the durable record.
	}
}

// PublishStateChanged publishes a bulb transition event
func (b *Broadcaster) PublishStateChanged(on bool) {
	eventType := EventBulbOff
	if on {
		eventType = EventBulbOn
	}
	b.Publish(Event{
		Type: eventType,
		Data: map[string]interface{}{
			"on": on,
		},
	})
}

// PublishJournalError publishes a failed journal write event
func (b *Broadcaster) PublishJournalError(action string, err error) {
	b.Publish(Event{
		Type: EventJournalError,
		Data: map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		},
	})
}

// run is the main broadcasting loop
func (b *Broadcaster) run() {
	for event := range b.eventChan {
		b.mu.RLock()
		for _, sub := range b.subscribers {
			select {
			case sub.Channel <- event:
			default:
				// Subscriber channel is full, skip this event for this subscriber
			}
		}
		b.mu.RUnlock()
	}
}

// Close shuts down the broadcaster
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Close all subscriber channels
	for _, sub := range b.subscribers {
		close(sub.Channel)
	}

	// Close the event channel
	close(b.eventChan)
}

// GetSubscriberCount returns the number of active subscribers
func (b *Broadcaster) GetSubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// ToSSEData converts an event to Server-Sent Events format
func (e Event) ToSSEData() string {
	data, _ := json.Marshal(e)
	return "data: " + string(data) + "\n\n"
}

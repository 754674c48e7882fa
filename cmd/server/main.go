package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/glowstack/lightbulb-mcp-go/internal/bulb"
	"github.com/glowstack/lightbulb-mcp-go/internal/events"
	"github.com/glowstack/lightbulb-mcp-go/internal/journal"
	"github.com/glowstack/lightbulb-mcp-go/internal/tools"
	"github.com/glowstack/lightbulb-mcp-go/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const (
	ServerName    = "lightbulb"
	ServerVersion = "1.0.0"

	DefaultLogFile = "lightbulb.log"
)

func main() {
	var transport string
	var port string
	var logFile string

	flag.StringVar(&transport, "t", "stdio", "Transport type (stdio or http)")
	flag.StringVar(&transport, "transport", "stdio", "Transport type (stdio or http)")
	flag.StringVar(&port, "port", "8080", "HTTP port when using http transport")
	flag.StringVar(&logFile, "log-file", DefaultLogFile, "Path to the lightbulb activity log")
	flag.Parse()

	log.Printf("Starting Lightbulb MCP Server")
	log.Printf("Activity log: %s", logFile)
	log.Printf("Transport: %s", transport)

	// Initialize core components
	activityJournal := journal.NewFileJournal(logFile)
	broadcaster := events.NewBroadcaster()
	lightbulb := bulb.New(activityJournal, broadcaster)

	// Create MCP server
	mcpServer := createMCPServer(lightbulb)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down server...")
		broadcaster.Close()
		cancel()
	}()

	// Start server based on transport type
	if transport == "http" {
		startHTTPServer(mcpServer, port, ctx)
	} else {
		startStdioServer(mcpServer)
	}
}

func createMCPServer(lightbulb *bulb.Bulb) *server.MCPServer {
	// Create server with capabilities
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false), // Fixed tool set
		server.WithResourceCapabilities(true, false), // Resources, no subscription
		server.WithLogging(),
		server.WithInstructions(`This MCP server manages a simulated lightbulb.

Available capabilities:
- Query whether the lightbulb is on or off
- Turn the lightbulb on or off (repeated requests in the same direction are rejected)
- Every state change is recorded with a timestamp in the activity log

Resources:
- lightbulb://log - Complete history of lightbulb on/off actions
- lightbulb://summary - Summary statistics of lightbulb usage patterns`),
	)

	// Register tools
	registerTools(mcpServer, lightbulb)

	// Register resources
	registerResources(mcpServer, lightbulb)

	return mcpServer
}

func registerTools(mcpServer *server.MCPServer, lightbulb *bulb.Bulb) {
	// get_lightbulb_status tool
	getStatusTool := tools.NewGetStatusTool(lightbulb)
	mcpServer.AddTool(getStatusTool.Definition(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return getStatusTool.Execute(ctx, request.GetArguments())
	})

	// turn_on_lightbulb tool
	turnOnTool := tools.NewTurnOnTool(lightbulb)
	mcpServer.AddTool(turnOnTool.Definition(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return turnOnTool.Execute(ctx, request.GetArguments())
	})

	// turn_off_lightbulb tool
	turnOffTool := tools.NewTurnOffTool(lightbulb)
	mcpServer.AddTool(turnOffTool.Definition(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return turnOffTool.Execute(ctx, request.GetArguments())
	})
}

func registerResources(mcpServer *server.MCPServer, lightbulb *bulb.Bulb) {
	// Activity log resource
	mcpServer.AddResource(
		mcp.Resource{
			URI:         "lightbulb://log",
			Name:        "Lightbulb Activity Log",
			Description: "Complete history of lightbulb on/off actions with timestamps",
			MIMEType:    "text/plain",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			var text string
			content, err := lightbulb.ActivityLog()
			switch {
			case err != nil:
				text = "Lightbulb log file not found. No activity recorded yet."
			case strings.TrimSpace(content) == "":
				text = "No lightbulb activity recorded yet."
			default:
				text = "Lightbulb Activity Log:\n\n" + content
			}

			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      request.Params.URI,
					MIMEType: "text/plain",
					Text:     text,
				},
			}, nil
		},
	)

	// Usage summary resource
	mcpServer.AddResource(
		mcp.Resource{
			URI:         "lightbulb://summary",
			Name:        "Lightbulb Usage Summary",
			Description: "Summary statistics of lightbulb usage patterns",
			MIMEType:    "text/plain",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      request.Params.URI,
					MIMEType: "text/plain",
					Text:     lightbulb.UsageSummary(),
				},
			}, nil
		},
	)
}

var startTime = time.Now()

func startHTTPServer(mcpServer *server.MCPServer, port string, ctx context.Context) {
	// Create the MCP streamable HTTP server
	mcpHandler := server.NewStreamableHTTPServer(mcpServer)

	// Create a mux to handle both MCP and health check
	mux := http.NewServeMux()

	// Mount MCP handler at /mcp
	mux.Handle("/mcp", mcpHandler)

	// Add health check endpoint
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		health := map[string]interface{}{
			"status":      "healthy",
			"version":     version.Version,
			"gitCommit":   version.GitCommit,
			"buildTime":   version.BuildTime,
			"specVersion": version.SpecVersion,
			"uptime":      time.Since(startTime).String(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})

	// Create HTTP/2 server
	h2s := &http2.Server{}

	// Create server with HTTP/2 support
	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      h2c.NewHandler(mux, h2s),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // No timeout for streaming
		IdleTimeout:  120 * time.Second,
	}

	// Start server with graceful shutdown
	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		log.Printf("  MCP endpoint: http://localhost%s/mcp", httpServer.Addr)
		log.Printf("  Health check: http://localhost%s/healthz", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")
}

func startStdioServer(mcpServer *server.MCPServer) {
	log.Printf("Starting stdio server...")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Stdio server error: %v", err)
	}
}

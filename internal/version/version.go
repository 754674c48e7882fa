package version

// Build metadata, overridable at build time via -ldflags:
//
//	go build -ldflags "-X .../internal/version.Version=1.2.0 ..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"

	// SpecVersion is the MCP protocol revision this server targets.
	SpecVersion = "2024-11-05"
)

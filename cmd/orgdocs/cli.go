package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/orgdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Catalog   orgdocs.Catalog
	Sources   orgdocs.DocFetcher
	Documents orgdocs.DocumentService
	Snapshots orgdocs.SnapshotService
	UserDocs  orgdocs.UserDocService
	Searcher  orgdocs.Searcher
	Previewer orgdocs.Previewer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string        `name:"db" env:"ORGDOCS_DB" help:"SQLite database path (default ~/.orgdocs/orgdocs.db)"`
	Catalog     string        `name:"catalog" env:"ORGDOCS_CATALOG" type:"existingfile" help:"YAML catalog replacing the built-in topics"`
	Org         string        `name:"org" env:"ORGDOCS_ORG" default:"YOUR_ORG" help:"GitHub organization of the built-in internal docs"`
	CacheTTL    time.Duration `name:"cache-ttl" env:"ORGDOCS_CACHE_TTL" default:"30m" help:"How long fetched documents stay cached"`
	Timeout     time.Duration `name:"timeout" env:"ORGDOCS_TIMEOUT" default:"10s" help:"HTTP request timeout"`
	Rate        float64       `name:"rate" env:"ORGDOCS_RATE" default:"0" help:"Requests per second per host (0 disables limiting)"`
	GitHubToken string        `name:"github-token" env:"GITHUB_TOKEN" help:"GitHub API token used when the gh CLI is not authenticated"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`

	Serve    ServeCmd    `cmd:"" help:"Serve documentation tools over MCP"`
	Topics   TopicsCmd   `cmd:"" help:"List all documentation topics"`
	Get      GetCmd      `cmd:"" help:"Print the document for a topic"`
	Search   SearchCmd   `cmd:"" help:"Search across all documentation"`
	Health   HealthCmd   `cmd:"" help:"Check documentation origin reachability"`
	Preview  PreviewCmd  `cmd:"" help:"Preview a URL before adding it"`
	Add      AddCmd      `cmd:"" help:"Add a documentation URL as a user doc"`
	Remove   RemoveCmd   `cmd:"" help:"Remove a user doc"`
	UserDocs UserDocsCmd `cmd:"" name:"user-docs" help:"List user-added docs"`
	History  HistoryCmd  `cmd:"" help:"List recent document retrievals"`
	Export   ExportCmd   `cmd:"" help:"Write every catalog document to markdown files"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `name:"http" help:"Serve streamable HTTP on this address instead of stdio (e.g. :8080)"`
}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct{}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Topic string `arg:"" help:"Topic name"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search terms"`
	Limit int      `short:"n" default:"5" help:"Maximum number of results"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL string `arg:"" help:"URL to preview"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Topic       string `arg:"" help:"Unique topic name"`
	URL         string `arg:"" help:"Documentation URL"`
	Title       string `short:"t" required:"" help:"Human-readable title"`
	Description string `short:"d" required:"" help:"What the document covers"`
}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	Topic string `arg:"" help:"Topic name"`
}

// UserDocsCmd is the "user-docs" subcommand.
type UserDocsCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Topic string `arg:"" optional:"" help:"Only show retrievals of this topic"`
	Limit int    `short:"n" default:"20" help:"Maximum number of entries"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" type:"path" help:"Output directory"`
}

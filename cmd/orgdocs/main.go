package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/orgdocs"
	"github.com/fwojciec/orgdocs/catalog"
	"github.com/fwojciec/orgdocs/github"
	"github.com/fwojciec/orgdocs/goquery"
	"github.com/fwojciec/orgdocs/htmltomarkdown"
	orgdocshttp "github.com/fwojciec/orgdocs/http"
	"github.com/fwojciec/orgdocs/library"
	"github.com/fwojciec/orgdocs/memory"
	"github.com/fwojciec/orgdocs/readability"
	"github.com/fwojciec/orgdocs/search"
	orgslog "github.com/fwojciec/orgdocs/slog"
	"github.com/fwojciec/orgdocs/source"
	"github.com/fwojciec/orgdocs/sqlite"
	"github.com/fwojciec/orgdocs/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher, for end-to-end testing.
	Fetcher orgdocs.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("orgdocs"),
		kong.Description("Organization documentation for coding agents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'orgdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ORGDOCS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	if err := m.wire(cli, deps); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the service graph for a parsed command line.
func (m *Main) wire(cli *CLI, deps *Dependencies) error {
	logger := deps.Logger

	fixed := catalog.Builtin(cli.Org)
	if cli.Catalog != "" {
		descs, err := catalog.LoadFile(cli.Catalog)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: check the catalog file or unset ORGDOCS_CATALOG to use the built-in topics\n")
			return err
		}
		fixed = descs
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []orgdocshttp.Option{orgdocshttp.WithTimeout(cli.Timeout)}
		if cli.Rate > 0 {
			opts = append(opts, orgdocshttp.WithLimiter(orgdocshttp.NewDomainLimiter(cli.Rate, 1)))
		}
		fetcher = orgdocshttp.NewFetcher(opts...)
	}
	fetcher = orgslog.NewLoggingFetcher(fetcher, logger)

	cache := orgslog.NewLoggingCache(memory.NewCache(cli.CacheTTL), logger)

	gh := github.NewAdapter(cache)
	gh.API.Timeout = cli.Timeout
	if token := cli.GitHubToken; token != "" {
		gh.Token = func() string { return token }
	}

	router := &source.Router{
		GitHub: gh,
		GCP: source.NewGCPAdapter(fetcher,
			goquery.NewExtractor(goquery.GCPSelectors...),
			htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(source.DefaultGCPBaseURL)),
			cache),
		Terraform: source.NewTerraformAdapter(fetcher,
			goquery.NewExtractor(goquery.TerraformSelectors...),
			htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(source.DefaultTerraformBaseURL)),
			cache),
		Tekton: source.NewTektonAdapter(fetcher,
			goquery.NewExtractor(goquery.TektonSelectors...),
			htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(source.DefaultTektonBaseURL)),
			cache),
		URL: source.NewURLAdapter(fetcher, trafilatura.NewExtractor(), htmltomarkdown.NewConverter(), cache),
	}
	sources := orgslog.NewLoggingDocFetcher(router, logger)

	snapshots := sqlite.NewSnapshotService(m.DB)
	cat := catalog.New(fixed, sqlite.NewUserDocService(m.DB))

	deps.Catalog = cat
	deps.UserDocs = cat
	deps.Sources = sources
	deps.Snapshots = snapshots
	deps.Documents = library.New(cat, sources, snapshots, logger)
	deps.Searcher = orgslog.NewLoggingSearcher(search.NewEngine(cat, sources, logger), logger)
	deps.Previewer = readability.NewPreviewer(fetcher, htmltomarkdown.NewConverter())

	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("ORGDOCS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "orgdocs.db"
	}
	dir := filepath.Join(home, ".orgdocs")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "orgdocs.db")
}

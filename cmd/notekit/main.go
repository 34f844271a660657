package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/notekit"
	"github.com/fwojciec/notekit/config"
	"github.com/fwojciec/notekit/fs"
	"github.com/fwojciec/notekit/gemini"
	"github.com/fwojciec/notekit/gguf"
	"github.com/fwojciec/notekit/goquery"
	nkhttp "github.com/fwojciec/notekit/http"
	"github.com/fwojciec/notekit/huggingface"
	"github.com/fwojciec/notekit/pipeline"
	"github.com/fwojciec/notekit/provision"
	nkslog "github.com/fwojciec/notekit/slog"
	"github.com/fwojciec/notekit/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides NOTEKIT_DB when set before calling Run().
	DBPath string

	// Dotenv files loaded before parsing the environment.
	EnvFiles []string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ContentService notekit.ContentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFiles: []string{config.DefaultEnvFile},
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
		kong.Name("notekit"),
		kong.Description("Scrape web pages, count and summarize their text, and pull local models."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'notekit --help' to see available commands")
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
	// Command() includes positional placeholders, e.g. "scrape <url> ...".
	cmd, _, _ = strings.Cut(kongCtx.Command(), " ")

	cfg, err := config.Load(m.EnvFiles...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if usesDB(cmd) {
		dbPath := m.DBPath
		if dbPath == "" {
			dbPath = cfg.DBPath
		}
		if dbPath == "" {
			dbPath = defaultDBPath()
		}

		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set NOTEKIT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		m.ContentService = sqlite.NewContentService(m.DB)
		deps.Contents = m.ContentService
	}
	deps.NewWriter = func(dir string) notekit.ContentWriter { return fs.NewWriter(dir) }

	switch cmd {
	case "scrape", "summarize":
		fetcher := nkslog.NewLoggingFetcher(nkhttp.NewFetcher(), logger)
		defer fetcher.Close()

		tc, err := gemini.NewDefaultTokenCounter()
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		deps.Pipeline = &pipeline.Pipeline{
			Fetcher:          fetcher,
			Extractor:        goquery.NewTextExtractor(),
			DefaultTokenizer: nkslog.NewLoggingTokenCounter(tc, logger),
			Logger:           logger,
		}
		if cmd == "scrape" {
			rps := cli.Scrape.Rate
			if rps <= 0 {
				rps = defaultRate
			}
			deps.Batch = &pipeline.Batch{
				Pipeline:    deps.Pipeline,
				RateLimiter: pipeline.NewDomainLimiter(rps),
				Concurrency: cli.Scrape.Concurrency,
			}
		}
	case "pull":
		hub := nkslog.NewLoggingHub(huggingface.NewClient(), logger)
		deps.Hub = hub
		deps.Provisioner = &provision.Provisioner{
			Loader: gguf.NewLoader(hub, logger),
			Logger: logger,
		}
	}

	if cmd == "summarize" {
		if cfg.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return notekit.Errorf(notekit.EUNAUTHORIZED, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Summarizer = nkslog.NewLoggingSummarizer(gemini.NewSummarizer(client, cli.Summarize.Model), logger)
	}

	return kongCtx.Run(deps)
}

// usesDB reports whether cmd reads or writes the content store.
func usesDB(cmd string) bool {
	switch cmd {
	case "scrape", "summarize", "list", "delete":
		return true
	}
	return false
}

// defaultRate is the per-domain request rate used when --rate is not positive.
const defaultRate = 1.0

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "notekit.db"
	}
	dir := filepath.Join(home, ".notekit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "notekit.db")
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mako"
	"github.com/fwojciec/mako/crawl"
	"github.com/fwojciec/mako/gemini"
	"github.com/fwojciec/mako/generate"
	"github.com/fwojciec/mako/goquery"
	makohttp "github.com/fwojciec/mako/http"
	"github.com/fwojciec/mako/htmltomarkdown"
	"github.com/fwojciec/mako/markdown"
	"github.com/fwojciec/mako/readability"
	"github.com/fwojciec/mako/sqlite"
	"github.com/fwojciec/mako/trafilatura"
	"github.com/fwojciec/mako/whatlanggo"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the capsule index.
	DB *sqlite.DB

	// Index for end-to-end testing.
	Index mako.CapsuleIndex
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
		kong.Name("mako"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mako --help' to see available commands")
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

	// The index is needed by crawl and feed; validate and generate work
	// without it but crawl updates it, so open it up front.
	if cmd == "crawl" || cmd == "feed" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set MAKO_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Index = sqlite.NewCapsuleIndex(m.DB)
		deps.Index = m.Index
	}

	deps.Sitemaps = makohttp.NewSitemapService(nil)

	if cmd == "generate" || cmd == "crawl" {
		var enhancer mako.SummaryEnhancer
		if wantsEnhancer(cli, cmd) {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			enhancer = gemini.NewEnhancer(client)
		}

		reducerName := cli.Generate.Reducer
		maxTokens := cli.Generate.MaxTokens
		if cmd == "crawl" {
			reducerName = cli.Crawl.Reducer
			maxTokens = cli.Crawl.MaxTokens
		}

		gen, err := buildGenerator(reducerName, maxTokens, enhancer)
		if err != nil {
			return err
		}
		deps.Generator = gen
		deps.Fetcher = makohttp.NewFetcher()
		defer deps.Fetcher.Close()
	}

	if cmd == "crawl" {
		deps.Crawler = &crawl.Crawler{
			Sitemaps:    deps.Sitemaps,
			Fetcher:     deps.Fetcher,
			Generator:   deps.Generator,
			Index:       deps.Index,
			RateLimiter: crawl.NewDomainLimiter(cli.Crawl.RPS),
			Concurrency: cli.Crawl.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// wantsEnhancer reports whether the parsed command requested AI summary
// enhancement.
func wantsEnhancer(cli *CLI, cmd string) bool {
	switch cmd {
	case "generate":
		return cli.Generate.Enhance
	case "crawl":
		return cli.Crawl.Enhance
	}
	return false
}

// buildGenerator wires the capsule generation pipeline. The reducer
// flag selects the primary reduction strategy; trafilatura always backs
// it up unless it is itself the primary.
func buildGenerator(reducerName string, maxTokens int, enhancer mako.SummaryEnhancer) (*generate.Generator, error) {
	var primary mako.Reducer
	switch reducerName {
	case "", "goquery":
		primary = goquery.NewReducer()
	case "trafilatura":
		primary = trafilatura.NewReducer()
	case "readability":
		primary = readability.NewReducer()
	default:
		return nil, mako.Errorf(mako.EINVALID, "unknown reducer %q", reducerName)
	}

	reducers := []mako.Reducer{primary}
	if reducerName != "trafilatura" {
		reducers = append(reducers, trafilatura.NewReducer())
	}

	converter := markdown.NewConverter()
	converter.Fallbacks = []mako.Converter{htmltomarkdown.NewConverter()}

	return &generate.Generator{
		Reducers:  reducers,
		Converter: converter,
		Links:     goquery.NewLinkExtractor(),
		Actions:   goquery.NewActionExtractor(),
		Media:     goquery.NewMediaScanner(),
		Language:  whatlanggo.NewDetector(),
		Enhancer:  enhancer,
		MaxTokens: maxTokens,
	}, nil
}

func defaultDBPath() string {
	if path := os.Getenv("MAKO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mako.db"
	}
	dir := filepath.Join(home, ".mako")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "mako.db")
}

// Package main is the Duala CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dualahq/duala/internal/cli"
	"github.com/dualahq/duala/internal/config"
	"github.com/dualahq/duala/internal/export"
	"github.com/dualahq/duala/internal/lexicon"
	"github.com/dualahq/duala/internal/metrics"
	"github.com/dualahq/duala/internal/models"
	"github.com/dualahq/duala/internal/search"
	"github.com/dualahq/duala/internal/server"
	"github.com/dualahq/duala/internal/store"
	"github.com/dualahq/duala/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/duala/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "duala server" from the project dir uses the project's config (including debug).
// Returns the config and the path that was actually loaded (for status, etc.).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "location":
		runLocation()
	case "seed":
		runSeed()
	case "export":
		runExport()
	case "init":
		runInit()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("duala version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (request details, lexicon reloads, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	metrics.RegisterSearchMetrics()

	if cfg.Lexicon.Watch && cfg.Lexicon.Path != "" {
		lexWatcher := lexicon.NewWatcher(cfg.Lexicon.Path, components.Lexicons, logger)
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()
		if err := lexWatcher.Start(watchCtx); err != nil {
			logger.Warn("lexicon watcher failed to start", zap.String("path", cfg.Lexicon.Path), zap.Error(err))
		} else {
			defer lexWatcher.Stop()
		}
	}

	srv := server.NewServer(
		components.Engine,
		components.Store,
		components.Lexicons,
		cfg,
		logger,
	)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// printSearchUsage prints search subcommand usage and filter hints.
func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: duala search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Plain queries run a simple search over available listings. Any filter flag
switches to advanced search with paged results.
  • Use --county, --city or --type to narrow by location or service type.
  • Use --available=false to list unavailable services instead.
  • Use --sort newest or --sort popular to reorder; default is relevance.
  • --page and --limit control pagination of advanced results.

Examples:
  duala search cook shop
  duala search "cook shop"                      # same as above
  duala search --county Bomi room               # advanced: filter + query
  duala search --type Taxi --sort popular       # advanced: filters only
  duala search --page 2 --limit 5 market
`)
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting (e.g. "cook shop" vs cook shop).
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchArgsReorder moves any flags (and their values) that appear after the query
// to the front of the slice so that flag.Parse() sees them. Go's flag package
// stops at the first non-flag argument, so "duala search \"query\" -county Bomi"
// would otherwise leave -county unparsed.
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runSearch() {
	searchArgs := searchArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (for direct storage mode)")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = use direct storage when server is not running)")
	county := fs.String("county", "", "filter by county (substring match; switches to advanced search)")
	city := fs.String("city", "", "filter by city (substring match; switches to advanced search)")
	serviceType := fs.String("type", "", "filter by service type (exact match; switches to advanced search)")
	availableFlag := fs.String("available", "", "filter by availability: true or false (default: available only)")
	sortFlag := fs.String("sort", "", "result order for advanced search: relevance, newest, or popular")
	page := fs.Int("page", 0, "result page for advanced search (1-based)")
	limit := fs.Int("limit", 0, "results per page for advanced search")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(searchArgs)

	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	var available *bool
	if *availableFlag != "" {
		b, parseErr := strconv.ParseBool(*availableFlag)
		if parseErr != nil {
			fmt.Printf("Invalid --available value %q; use true or false\n", *availableFlag)
			os.Exit(1)
		}
		available = &b
	}

	queryStr := buildSearchQuery(fs.Args())
	advanced := *county != "" || *city != "" || *serviceType != "" ||
		available != nil || *sortFlag != "" || *page > 0 || *limit > 0
	if queryStr == "" && !advanced {
		printSearchUsage(fs)
		os.Exit(1)
	}

	opts := models.SearchOptions{
		County:      *county,
		City:        *city,
		ServiceType: *serviceType,
		Available:   available,
		Sort:        models.ParseSort(*sortFlag),
		Page:        *page,
		Limit:       *limit,
	}

	if *serverURL != "" {
		// Use HTTP API when server is running (avoids SQLite lock conflict).
		if advanced {
			pageRes, err := advancedViaHTTP(*serverURL, queryStr, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
				os.Exit(1)
			}
			if err := cli.WritePage(os.Stdout, pageRes, format); err != nil {
				fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
				os.Exit(1)
			}
			return
		}
		results, err := searchViaHTTP(*serverURL, queryStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteListings(os.Stdout, results, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Direct storage access (when server is not running).
	components, logger := mustInitialize(*configPath)
	defer logger.Sync()
	defer components.Close()

	ctx := context.Background()
	if advanced {
		pageRes, err := components.Engine.AdvancedSearch(ctx, queryStr, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WritePage(os.Stdout, pageRes, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}
	results, err := components.Engine.Search(ctx, queryStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteListings(os.Stdout, results, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func searchViaHTTP(serverURL, query string) ([]*models.Listing, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	var results []*models.Listing
	if err := getJSON(serverURL+"/search?"+params.Encode(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func advancedViaHTTP(serverURL, query string, opts models.SearchOptions) (*models.SearchPage, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if opts.County != "" {
		params.Set("county", opts.County)
	}
	if opts.City != "" {
		params.Set("city", opts.City)
	}
	if opts.ServiceType != "" {
		params.Set("serviceType", opts.ServiceType)
	}
	if opts.Available != nil {
		params.Set("available", strconv.FormatBool(*opts.Available))
	}
	if opts.Sort != "" {
		params.Set("sort", string(opts.Sort))
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	var page models.SearchPage
	if err := getJSON(serverURL+"/search/advanced?"+params.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func runLocation() {
	fs := flag.NewFlagSet("location", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (for direct storage mode)")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = use direct storage)")
	county := fs.String("county", "", "county name or alias")
	city := fs.String("city", "", "city name or alias")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	if *county == "" && *city == "" {
		fmt.Println("Usage: duala location --county <name> [--city <name>]")
		os.Exit(1)
	}

	var results []*models.Listing
	if *serverURL != "" {
		results, err = locationViaHTTP(*serverURL, *county, *city)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Location search failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		components, logger := mustInitialize(*configPath)
		defer logger.Sync()
		defer components.Close()
		results, err = components.Engine.ByLocation(context.Background(), *county, *city)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Location search failed: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cli.WriteListings(os.Stdout, results, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func locationViaHTTP(serverURL, county, city string) ([]*models.Listing, error) {
	params := url.Values{}
	if county != "" {
		params.Set("county", county)
	}
	if city != "" {
		params.Set("city", city)
	}
	var results []*models.Listing
	if err := getJSON(serverURL+"/services/location?"+params.Encode(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func runSeed() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	file := fs.String("file", "", "JSON file with an array of listings to import (default: built-in samples)")
	_ = fs.Parse(os.Args[2:])

	components, logger := mustInitialize(*configPath)
	defer logger.Sync()
	defer components.Close()

	ctx := context.Background()
	if *file != "" {
		n, err := store.LoadJSON(ctx, components.Store, *file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d listings from %s\n", n, *file)
		return
	}

	n, err := store.Seed(ctx, components.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
		os.Exit(1)
	}
	if n == 0 {
		fmt.Println("Database already has listings; nothing seeded")
		return
	}
	fmt.Printf("Seeded %d sample listings\n", n)
}

func runExport() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	availableOnly := fs.Bool("available", false, "export only available listings")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: duala export [flags] <output.xlsx>")
		os.Exit(1)
	}
	outPath := fs.Arg(0)

	components, logger := mustInitialize(*configPath)
	defer logger.Sync()
	defer components.Close()

	ctx := context.Background()
	var (
		listings []*models.Listing
		err      error
	)
	if *availableOnly {
		listings, err = components.Store.AllAvailable(ctx)
	} else {
		listings, err = components.Store.All(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	if err := export.WriteListings(outPath, listings); err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d listings to %s\n", len(listings), outPath)
}

func runInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "where to write the starter config")
	force := fs.Bool("force", false, "overwrite an existing config file")
	_ = fs.Parse(os.Args[2:])

	if _, err := os.Stat(*configPath); err == nil && !*force {
		fmt.Printf("Config already exists at %s (use --force to overwrite)\n", *configPath)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(*configPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create config directory: %v\n", err)
		os.Exit(1)
	}
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	if err := config.Save(*configPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote starter config to %s\n", *configPath)
}

// statusConfigResponse holds configuration info returned by status.
type statusConfigResponse struct {
	DefaultLimit int    `json:"default_limit"`
	MaxLimit     int    `json:"max_limit"`
	DatabasePath string `json:"database_path,omitempty"`
	LexiconPath  string `json:"lexicon_path,omitempty"`
}

// statusResponse is the shape of GET /status response.
type statusResponse struct {
	Listings       int64                 `json:"listings"`
	Available      int64                 `json:"available"`
	LexiconEntries int                   `json:"lexicon_entries"`
	DiskUsageBytes *int64                `json:"disk_usage_bytes,omitempty"`
	Config         *statusConfigResponse `json:"config,omitempty"`
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (for direct storage mode)")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = use direct storage)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	var status statusResponse
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		components, err := initializeComponents(cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer components.Close()
		ctx := context.Background()
		total, err := components.Store.Count(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count listings failed: %v\n", err)
			os.Exit(1)
		}
		available, err := components.Store.CountAvailable(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count available failed: %v\n", err)
			os.Exit(1)
		}
		status = statusResponse{
			Listings:       total,
			Available:      available,
			LexiconEntries: components.Lexicons.Current().Size(),
			Config: &statusConfigResponse{
				DefaultLimit: cfg.Search.DefaultLimit,
				MaxLimit:     cfg.Search.MaxLimit,
				DatabasePath: cfg.Storage.DatabasePath,
				LexiconPath:  cfg.Lexicon.Path,
			},
		}
		if diskBytes, err := store.DatabaseSizeBytes(cfg.Storage.DatabasePath); err == nil {
			status.DiskUsageBytes = &diskBytes
		}
	}

	if format == cli.OutputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Printf("listings:           %d   # total listings in the directory\n", status.Listings)
	fmt.Printf("available:          %d   # listings currently marked available\n", status.Available)
	fmt.Printf("lexicon_entries:    %d   # alias table entries in use\n", status.LexiconEntries)
	if status.DiskUsageBytes != nil {
		fmt.Printf("disk_usage_bytes:   %d   # database size on disk\n", *status.DiskUsageBytes)
	}
	if status.Config != nil {
		fmt.Println()
		fmt.Println("# configuration")
		fmt.Printf("default_limit:      %d\n", status.Config.DefaultLimit)
		fmt.Printf("max_limit:          %d\n", status.Config.MaxLimit)
		if status.Config.DatabasePath != "" {
			fmt.Printf("database_path:      %s\n", status.Config.DatabasePath)
		}
		if status.Config.LexiconPath != "" {
			fmt.Printf("lexicon_path:       %s\n", status.Config.LexiconPath)
		}
	}
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	var s statusResponse
	if err := getJSON(serverURL+"/status", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// getJSON fetches a URL and decodes the JSON response into out.
func getJSON(fullURL string, out interface{}) error {
	resp, err := http.Get(fullURL)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Components holds initialized services.
type Components struct {
	Store    store.ListingStore
	Lexicons *lexicon.Provider
	Engine   *search.Engine
}

func (c *Components) Close() {
	if c.Store != nil {
		_ = c.Store.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	st, err := store.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var lexicons *lexicon.Provider
	if cfg.Lexicon.Path != "" {
		lex, loadErr := lexicon.LoadFile(cfg.Lexicon.Path)
		if loadErr != nil {
			// A broken overlay must not take search down; built-ins keep working.
			if logger != nil {
				logger.Warn("lexicon load failed, using built-in tables",
					zap.String("path", cfg.Lexicon.Path),
					zap.Error(loadErr))
			}
			lexicons = lexicon.NewProvider(nil)
		} else {
			lexicons = lexicon.NewProvider(lex)
		}
	} else {
		lexicons = lexicon.NewProvider(nil)
	}
	if logger != nil {
		logger.Info("lexicon initialized",
			zap.String("path", cfg.Lexicon.Path),
			zap.Int("entries", lexicons.Current().Size()))
	}

	weights := loadWeights(cfg.Search.WeightsPath, logger)
	engine := search.NewEngine(st, lexicons, search.NewScorer(weights), &cfg.Search)

	return &Components{
		Store:    st,
		Lexicons: lexicons,
		Engine:   engine,
	}, nil
}

// loadWeights reads the scoring weights overlay at path. Missing or broken
// files fall back to the built-in weights so scoring always works.
func loadWeights(path string, logger *zap.Logger) *search.Weights {
	if path == "" {
		return search.DefaultWeights()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if logger != nil {
			logger.Warn("weights load failed, using defaults", zap.String("path", path), zap.Error(err))
		}
		return search.DefaultWeights()
	}
	var weights search.Weights
	if err := yaml.Unmarshal(data, &weights); err != nil {
		if logger != nil {
			logger.Warn("weights parse failed, using defaults", zap.String("path", path), zap.Error(err))
		}
		return search.DefaultWeights()
	}
	weights.ApplyDefaults()
	if logger != nil {
		logger.Info("scoring weights loaded", zap.String("path", path))
	}
	return &weights
}

// mustInitialize loads config, builds a logger and the component graph, and
// exits the process on failure. Shared by the direct-storage CLI paths.
func mustInitialize(configPath string) (*Components, *zap.Logger) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	return components, logger
}

func printUsage() {
	fmt.Println(`duala - Services directory search for Liberia

Usage:
  duala server [flags]            Start the HTTP server
  duala search [flags] <query>    Search listings
  duala location [flags]          List services by county/city
  duala seed [flags]              Load sample listings into an empty database
  duala export [flags] <file>     Export listings to an Excel workbook
  duala init [flags]              Write a starter config file
  duala status [flags]            Show directory/storage status
  duala version                   Show version
  duala help                      Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/duala/config.yaml)
  --debug            Enable debug logging (request details, lexicon reloads, etc.)

Search Flags:
  --config string     Config file path (for direct storage mode)
  --server string     Server URL (default: http://localhost:8080). Use empty (--server "") to use direct storage when server is not running.
  --county string     Filter by county (switches to advanced search)
  --city string       Filter by city (switches to advanced search)
  --type string       Filter by service type (switches to advanced search)
  --available string  Filter by availability: true or false
  --sort string       Order advanced results: relevance, newest, or popular
  --page int          Result page (1-based)
  --limit int         Results per page
  --output string     Output format: text or json (default: text)

Location Flags:
  --county string    County name or alias (e.g. bomi, tubmanburg area)
  --city string      City name or alias (e.g. gbanga for Gbarnga)
  --server string    Server URL. Use empty (--server "") for direct storage.
  --output string    Output format: text or json (default: text)

Seed Flags:
  --config string    Config file path
  --file string      JSON file with an array of listings to import (default: built-in samples)

Export Flags:
  --config string    Config file path
  --available        Export only available listings

Status Flags:
  --config string    Config file path (for direct storage mode)
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") for direct storage.
  --output string    Output format: text or json (default: text)

Examples:
  duala server
  duala search "cook shop"
  duala search --county Bomi --sort popular room
  duala search --output json market   # structured JSON for other apps
  duala location --city gbanga
  duala seed
  duala export --available listings.xlsx
  duala status --output json`)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"golang.org/x/oauth2"

	"github.com/vilaca/github-activity/internal/api"
	"github.com/vilaca/github-activity/internal/api/github"
	"github.com/vilaca/github-activity/internal/cache"
	"github.com/vilaca/github-activity/internal/config"
	"github.com/vilaca/github-activity/internal/display"
	"github.com/vilaca/github-activity/internal/domain"
	"github.com/vilaca/github-activity/internal/format"
	"github.com/vilaca/github-activity/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires up all dependencies and executes one fetch-format-print pass.
// This is the composition root where all dependencies are created and
// injected. Returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("github-activity", flag.ContinueOnError)
	flags.SetOutput(stderr)
	typeFilter := flags.String("type", "", "only show events of this type (e.g. PushEvent)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: github-activity [-type <event-type>] <github-username> <number-of-events>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	username, count, err := parseArgs(flags.Args(), *typeFilter)
	if err != nil {
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	logger := display.NewStdLogger(stderr)
	store := buildStore(cfg, logger)
	defer store.Close()

	ghClient := github.NewClient(api.ClientConfig{BaseURL: cfg.APIURL}, buildHTTPClient(cfg))
	cachedClient := api.NewCachingClient(ghClient, store, logger)
	activityService := service.NewActivityService(cachedClient, logger)

	events, err := activityService.RecentActivity(context.Background(), username, count, *typeFilter)
	if err != nil {
		fmt.Fprintln(stderr, errorMessage(err, username))
		return 1
	}

	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = format.Line(e)
	}

	if err := display.NewTextRenderer(stdout).Render(lines); err != nil {
		fmt.Fprintf(stderr, "Failed to write output: %v\n", err)
		return 1
	}
	return 0
}

// parseArgs validates the positional arguments and the optional type filter.
func parseArgs(args []string, typeFilter string) (string, int, error) {
	if len(args) != 2 {
		return "", 0, errors.New("expected a username and a number of events")
	}

	username := args[0]
	count, err := strconv.Atoi(args[1])
	if err != nil || count <= 0 {
		return "", 0, errors.New("number of events must be an integer greater than zero")
	}
	if count > github.DefaultPerPage {
		return "", 0, fmt.Errorf("number of events cannot exceed %d", github.DefaultPerPage)
	}

	if typeFilter != "" && !domain.IsSupportedEventType(typeFilter) {
		return "", 0, fmt.Errorf("unsupported event type %q (supported: %s)",
			typeFilter, strings.Join(domain.SupportedEventTypes(), ", "))
	}

	return username, count, nil
}

// buildHTTPClient returns the HTTP client used for API calls. When a token
// is configured, requests go through an oauth2 transport that attaches it.
func buildHTTPClient(cfg *config.Config) *http.Client {
	base := &http.Client{Timeout: cfg.Timeout()}
	if !cfg.HasToken() {
		return base
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
	client.Timeout = cfg.Timeout()
	return client
}

// buildStore selects the cache backend from configuration. A backend that
// cannot be opened degrades to the in-memory store: cache trouble must
// never fail the program.
func buildStore(cfg *config.Config, logger display.Logger) cache.Store {
	ttl := cfg.CacheTTL()

	var (
		store cache.Store
		err   error
	)
	switch cfg.CacheBackend {
	case config.BackendMemory:
		return cache.NewMemoryStore(ttl)
	case config.BackendBolt:
		store, err = cache.NewBoltStore(cfg.ResolvedCachePath(), ttl)
	case config.BackendSqlite:
		store, err = cache.NewSqliteStore(cfg.ResolvedCachePath(), ttl)
	default:
		return cache.NewFileStore(cfg.ResolvedCachePath(), ttl, logger)
	}

	if err != nil {
		logger.Printf("Cache backend %q unavailable (%v) - falling back to in-memory cache", cfg.CacheBackend, err)
		return cache.NewMemoryStore(ttl)
	}
	return store
}

// errorMessage maps the error taxonomy to the messages shown to the user.
func errorMessage(err error, username string) string {
	switch {
	case errors.Is(err, api.ErrNotFound):
		return fmt.Sprintf("user %q not found on GitHub", username)
	case errors.Is(err, api.ErrRateLimited):
		return "rate limit exceeded: wait a few minutes and retry, or set GITHUB_TOKEN"
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("network error: %v - check your connection and retry", netErr.Err)
	}

	var parseErr *api.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("unexpected API response: %v", parseErr.Err)
	}

	return err.Error()
}

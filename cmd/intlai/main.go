// Command intlai sends one prompt through the provider orchestration
// engine and prints the response.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/spiralgang/intlai"
	"github.com/spiralgang/intlai/cache"
	"github.com/spiralgang/intlai/config"
	"github.com/spiralgang/intlai/providers"
	"github.com/spiralgang/intlai/translate"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("intlai", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	lang := fs.String("lang", "", "Target language code (e.g., zh, en); default from USER_LANGUAGE")
	region := fs.String("region", "", "User region code (e.g., cn, global); default from USER_REGION")
	query := fs.String("query", "", "Query type (e.g., general_chat, code_generation)")
	timeout := fs.Duration("timeout", 60*time.Second, "Overall request timeout")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	listProviders := fs.Bool("providers", false, "List providers available in the region and exit")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", intlai.Name, intlai.FullVersion())
		return nil
	}

	// Load .env if present, then environment configuration.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}

	userRegion := cfg.Region()
	if *region != "" {
		userRegion = intlai.RegionFromCode(*region)
	}
	userLang := cfg.Language()
	if *lang != "" {
		userLang = intlai.LanguageFromCode(*lang)
	}
	queryType := cfg.Query()
	if *query != "" {
		queryType = intlai.QueryType(strings.ToLower(strings.TrimSpace(*query)))
		if !queryType.Valid() {
			return fmt.Errorf("unknown query type %q", *query)
		}
	}

	svc, closeFn, err := buildService(cfg, userLang, userRegion, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	if *listProviders {
		for _, p := range svc.AvailableProviders() {
			fmt.Fprintf(stdout, "%-18s %s\n", p.ID, p.Name)
		}
		return nil
	}

	prompt, err := readPrompt(fs.Args())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := svc.GenerateText(ctx, prompt, userLang, queryType)
	if err != nil {
		return err
	}

	if *jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"content":    resp.Content,
			"provider":   resp.Provider,
			"language":   resp.Language,
			"usage":      resp.Usage,
			"latency_ms": resp.Latency.Milliseconds(),
			"metadata":   resp.Metadata,
		})
	}

	fmt.Fprintln(stdout, resp.Content)
	return nil
}

// buildService wires the cache, translation pipeline, provider registry
// and orchestrator from configuration.
func buildService(cfg *config.Config, userLang intlai.LanguageCode, userRegion intlai.RegionCode, logger zerolog.Logger) (*intlai.Service, func(), error) {
	closeFn := func() {}

	var translationCache translate.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{URL: cfg.RedisURL})
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		translationCache = redisCache
		closeFn = func() { _ = redisCache.Close() }
	} else {
		translationCache = cache.NewInMemoryCache()
	}

	var backends []translate.Backend
	if cfg.TranslateAPIKey != "" {
		remote := translate.NewOpenAIBackend(translate.OpenAIConfig{
			APIKey:  cfg.TranslateAPIKey,
			BaseURL: cfg.TranslateBaseURL,
			Model:   cfg.TranslateModel,
		})
		backends = append(backends, translate.NewRetryBackend(remote, translate.DefaultRetryConfig()))
	}

	pipeline := translate.NewPipeline(backends,
		translate.WithCache(translationCache),
		translate.WithTTL(cfg.CacheTTL),
		translate.WithDetector(translate.NewLinguaDetector()),
		translate.WithPipelineLogger(logger),
	)

	registry, err := providers.DefaultRegistry(providers.Config{
		APIKeys: map[intlai.ProviderID]string{
			providers.ZhipuID: cfg.ZhipuAPIKey,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	svc := intlai.NewService(registry, pipeline,
		intlai.WithLogger(logger),
		intlai.WithRegion(userRegion),
		intlai.WithUserLanguage(userLang),
		intlai.WithHealthCheckTimeout(cfg.HealthCheckTimeout),
	)
	return svc, closeFn, nil
}

func newLogger(environment, level string) (zerolog.Logger, error) {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse LOG_LEVEL=%q: %w", level, err)
	}

	var writer io.Writer = os.Stderr
	if strings.EqualFold(strings.TrimSpace(environment), "local") {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(writer).
		Level(parsedLevel).
		With().
		Timestamp().
		Str("service", intlai.Name).
		Logger()

	return logger, nil
}

// readPrompt takes the prompt from remaining arguments, or stdin when no
// arguments are given.
func readPrompt(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read prompt from stdin: %w", err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("empty prompt: pass it as an argument or on stdin")
	}
	return prompt, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/seoscore/internal/config"
	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/logger"
	"github.com/dotcommander/seoscore/internal/metastore"
	"github.com/dotcommander/seoscore/internal/output"
	"github.com/dotcommander/seoscore/internal/report"
)

// Exit codes.
const (
	exitOK       = 0
	exitInput    = 1 // malformed or invalid request
	exitInternal = 2 // configuration, store, timeout or assessment defect
)

var (
	exitFunc           = os.Exit
	stdin    io.Reader = os.Stdin
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "seoscore",
	Short: "Score a document for SEO, readability, related keyphrases and inclusive language",
	Long: `seoscore reads one JSON request from stdin and writes a JSON report to stdout.

REQUEST:

  {
    "text": "<p>HTML or plain text</p>",
    "keyword": "focus keyphrase",
    "synonyms": ["synonym one", "synonym two"],
    "locale": "en",
    "title": "SEO title",
    "description": "Meta description",
    "slug": "url-slug",
    "permalink": "https://example.com/url-slug",
    "id": 42
  }

All fields are optional. When "id" is set and a metadata store is configured,
missing title, description, keyword and synonyms are read from the store.

REPORT:

  {"seo": [...], "readability": [...], "relatedKeyword": [...], "inclusiveLanguage": [...]}

Errors are written to stderr as {"error": "..."} with a non-zero exit code.

CONFIGURATION:

  .seoscorerc.json|yaml|yml in the working directory, .env, and SEOSCORE_*
  environment variables (e.g. SEOSCORE_FORMAT=console, SEOSCORE_STORE_DRIVER=redis).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if code := runScore(); code != exitOK {
			exitFunc(code)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

// runScore handles one request end to end and returns the exit code.
func runScore() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fail(exitInternal, err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fail(exitInternal, fmt.Errorf("error creating logger: %w", err))
	}
	defer func() { _ = log.Sync() }()
	log, _ = logger.WithRunID(log)

	raw, err := io.ReadAll(stdin)
	if err != nil {
		return fail(exitInput, fmt.Errorf("error reading stdin: %w", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	rep, err := score(ctx, cfg, log, raw)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return fail(exitCode(err), err)
	}

	if err := formatReport(cfg, rep); err != nil {
		return fail(exitInternal, err)
	}
	return exitOK
}

// score parses raw, hydrates it from the configured store and composes the
// report.
func score(ctx context.Context, cfg *config.Config, log *zap.Logger, raw []byte) (report.Report, error) {
	fields, err := document.ParseRequest(raw)
	if err != nil {
		return report.Report{}, err
	}

	if err := hydrate(ctx, cfg, fields); err != nil {
		return report.Report{}, err
	}

	doc, err := document.FromFields(fields)
	if err != nil {
		return report.Report{}, err
	}

	composer := report.NewComposer(log, report.Options{
		Parallel: cfg.Parallel,
		Disabled: cfg.Disabled,
	})
	rep, err := composer.ComposeDocument(ctx, doc)
	if err != nil {
		return report.Report{}, err
	}

	if cfg.Review.ProblemsOnly {
		rep = rep.Problems(cfg.Review.Exclude)
	}
	return rep, nil
}

func hydrate(ctx context.Context, cfg *config.Config, fields map[string]any) error {
	if _, ok := metastore.RequestID(fields); !ok {
		return nil
	}
	store, err := openStore(ctx, cfg)
	if err != nil || store == nil {
		return err
	}
	defer store.Close()
	return metastore.Hydrate(ctx, store, fields)
}

func openStore(ctx context.Context, cfg *config.Config) (metastore.Store, error) {
	r := cfg.Store.Redis
	store, err := metastore.Open(ctx, cfg.Store.Driver, metastore.RedisOptions{
		Address:  r.Address,
		Password: r.Password,
		DB:       r.DB,
		Prefix:   r.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening metadata store: %w", err)
	}
	return store, nil
}

func formatReport(cfg *config.Config, rep report.Report) error {
	if cfg.Format == "console" {
		return output.NewConsoleFormatter(stdout, true).Format(rep)
	}
	return output.NewJSONFormatter(stdout, true).Format(rep)
}

func exitCode(err error) int {
	var inputErr *document.InputError
	var validationErr *document.ValidationError
	if errors.As(err, &inputErr) || errors.As(err, &validationErr) {
		return exitInput
	}
	return exitInternal
}

// fail writes err as an error payload to stderr and returns code.
func fail(code int, err error) int {
	if werr := output.WriteError(stderr, err.Error()); werr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return code
}

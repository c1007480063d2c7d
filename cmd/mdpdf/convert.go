package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdpdf"
	"github.com/alnah/go-mdpdf/internal/assets"
	"github.com/alnah/go-mdpdf/internal/config"
	"github.com/alnah/go-mdpdf/internal/dateutil"
	"github.com/alnah/go-mdpdf/internal/hints"
)

// Sentinel errors for argument handling.
var (
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrTooManyArgs    = errors.New("too many arguments")
)

// runConvertCmd parses convert flags, runs the conversion and maps the
// outcome to an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return flagErrorCode(err, env.Stderr)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if flags.common.verbose {
		fmt.Fprintln(env.Stderr, "Starting conversion...")
	}

	if err := runConvert(ctx, positional, flags, env); err != nil {
		reportError(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positionalArgs) > 2 {
		return fmt.Errorf("%w: expected <input> [output], got %d", ErrTooManyArgs, len(positionalArgs))
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, timeout, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	outputPath, err := resolveOutputTarget(positionalArgs, flags.output, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, outputPath)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	poolSize := min(mdpdf.ResolvePoolSize(workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	pool, err := env.NewPool(poolSize, converterOptions(cfg, timeout, env.Now())...)
	if err != nil {
		return err
	}
	defer func() { _ = pool.Close() }()

	results := convertBatch(ctx, pool, files, buildConversionParams(cfg))
	printResults(results, flags.common.quiet, flags.common.verbose, env)

	return batchError(results)
}

// resolveConfig loads the config file and layers environment and flags on
// top of it. The returned timeout is 0 when none is set.
func resolveConfig(flags *convertFlags, envCfg *envConfig) (*config.Config, time.Duration, error) {
	cfg := config.DefaultConfig()

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, 0, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	timeout, err := resolveTimeoutWithEnv(flags.timeout, envCfg.Timeout, cfg.Timeout)
	if err != nil {
		return nil, 0, err
	}
	if timeout > 0 {
		cfg.Timeout = timeout.String()
	}

	detect := cfg.Footer.DetectsLastLine()
	cfg.Footer.DetectLastLine = &detect

	return cfg, timeout, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.signature != "" {
		cfg.Document.Signature = flags.document.signature
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}

	if flags.footer.text != "" {
		cfg.Footer.Text = flags.footer.text
	}
	if flags.footer.noDetect {
		detect := false
		cfg.Footer.DetectLastLine = &detect
	}

	if flags.wrapWidth != 0 {
		cfg.Layout.WrapWidth = flags.wrapWidth
	}

	if flags.outputMode.html {
		cfg.HTML.Enabled = true
	}
	if flags.outputMode.htmlOnly {
		cfg.HTML.Only = true
	}
	if flags.outputMode.style != "" {
		cfg.HTML.Style = flags.outputMode.style
	}
	if flags.outputMode.assetPath != "" {
		cfg.HTML.AssetsDir = flags.outputMode.assetPath
	}
}

// resolveTimeoutWithEnv resolves the timeout with priority flag > env > config.
// Returns 0 when nothing is set, leaving the library default.
func resolveTimeoutWithEnv(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	parse := func(source, value string) (time.Duration, error) {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q: %v", ErrInvalidTimeout, source, value, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %s %q: must be positive", ErrInvalidTimeout, source, value)
		}
		return d, nil
	}

	if flagValue != "" {
		return parse("--timeout", flagValue)
	}
	if envValue > 0 {
		return envValue, nil
	}
	if configValue != "" {
		return parse("timeout", configValue)
	}
	return 0, nil
}

// resolveInputPath determines the input from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputTarget determines the output file or directory from the second
// argument, --output, or config, in that order.
func resolveOutputTarget(args []string, flagOutput string, cfg *config.Config) (string, error) {
	if len(args) == 2 {
		if flagOutput != "" {
			return "", fmt.Errorf("%w: output given both as argument and --output", ErrTooManyArgs)
		}
		return args[1], nil
	}
	if flagOutput != "" {
		return flagOutput, nil
	}
	return cfg.Output.DefaultDir, nil
}

// buildConversionParams maps the effective config to per-document input.
func buildConversionParams(cfg *config.Config) *conversionParams {
	return &conversionParams{
		title:        cfg.Document.Title,
		signature:    cfg.Document.Signature,
		footerText:   cfg.Footer.Text,
		keepLastLine: !cfg.Footer.DetectsLastLine(),
		date:         cfg.Document.Date,
		htmlOutput:   cfg.HTML.Enabled,
		htmlOnly:     cfg.HTML.Only,
	}
}

// converterOptions builds the options shared by every pooled converter.
// The clock is frozen at now so "auto" dates agree across a batch.
func converterOptions(cfg *config.Config, timeout time.Duration, now time.Time) []mdpdf.Option {
	opts := []mdpdf.Option{
		mdpdf.WithClock(func() time.Time { return now }),
		mdpdf.WithCreator("go-mdpdf " + Version),
	}
	if cfg.Layout.WrapWidth > 0 {
		opts = append(opts, mdpdf.WithWrapWidth(cfg.Layout.WrapWidth))
	}
	if cfg.HTML.Style != "" {
		opts = append(opts, mdpdf.WithPreviewStyle(cfg.HTML.Style))
	}
	if cfg.HTML.AssetsDir != "" {
		opts = append(opts, mdpdf.WithAssetPath(cfg.HTML.AssetsDir))
	}
	if timeout > 0 {
		opts = append(opts, mdpdf.WithTimeout(timeout))
	}
	return opts
}

// flagErrorCode reports a flag parsing error. --help is not an error.
func flagErrorCode(err error, w io.Writer) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(w, err)
	return ExitUsage
}

// reportError prints err with an actionable hint when one applies.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, err.Error()+hintFor(err))
}

// hintFor returns the hint matching the cause of err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrNoInput),
		errors.Is(err, ErrNoMarkdownFiles),
		errors.Is(err, os.ErrNotExist):
		return hints.ForInputNotFound()
	case errors.Is(err, mdpdf.ErrInvalidDate),
		errors.Is(err, dateutil.ErrInvalidDate),
		errors.Is(err, dateutil.ErrInvalidDateFormat):
		return hints.ForInvalidDate()
	case errors.Is(err, mdpdf.ErrInvalidWrapWidth),
		errors.Is(err, config.ErrWrapWidth):
		return hints.ForWrapWidth(mdpdf.MinWrapWidth, mdpdf.MaxWrapWidth)
	case errors.Is(err, mdpdf.ErrPreviewStyle):
		return hints.ForPreviewStyle(assets.StyleNames())
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	}
	return ""
}

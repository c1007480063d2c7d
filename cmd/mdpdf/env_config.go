package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-mdpdf/internal/config"
)

// envPrefix marks the environment variables read by mdpdf.
const envPrefix = "MDPDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MDPDF_CONFIG: config file name or path
	Timeout    time.Duration // MDPDF_TIMEOUT: per-document timeout
	InputDir   string        // MDPDF_INPUT_DIR: default input directory
	OutputDir  string        // MDPDF_OUTPUT_DIR: default output directory
	FooterText string        // MDPDF_FOOTER_TEXT: footer text override
	DocDate    string        // MDPDF_DOC_DATE: document date
	Workers    int           // MDPDF_WORKERS: parallel workers
}

// knownEnvVars lists valid MDPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDPDF_CONFIG":      true,
	"MDPDF_TIMEOUT":     true,
	"MDPDF_INPUT_DIR":   true,
	"MDPDF_OUTPUT_DIR":  true,
	"MDPDF_FOOTER_TEXT": true,
	"MDPDF_DOC_DATE":    true,
	"MDPDF_WORKERS":     true,
}

// loadEnvConfig reads configuration through getenv.
// Malformed durations and worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDPDF_CONFIG"),
		InputDir:   getenv("MDPDF_INPUT_DIR"),
		OutputDir:  getenv("MDPDF_OUTPUT_DIR"),
		FooterText: getenv("MDPDF_FOOTER_TEXT"),
		DocDate:    getenv("MDPDF_DOC_DATE"),
	}

	if timeout := getenv("MDPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("MDPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized MDPDF_* variables.
// Helps catch typos like MDPDF_FOOTER instead of MDPDF_FOOTER_TEXT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.FooterText != "" && cfg.Footer.Text == "" {
		cfg.Footer.Text = env.FooterText
	}
	if env.DocDate != "" && cfg.Document.Date == "" {
		cfg.Document.Date = env.DocDate
	}
}

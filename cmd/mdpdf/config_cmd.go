package main

import (
	"fmt"

	"github.com/alnah/go-mdpdf/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML.
func runConfigCmd(args []string, env *Environment) int {
	flags, positional, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return flagErrorCode(err, env.Stderr)
	}
	if len(positional) > 0 {
		reportError(env.Stderr, fmt.Errorf("%w: config takes no arguments, got %d", ErrTooManyArgs, len(positional)))
		return ExitUsage
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, _, err := resolveConfig(flags, envCfg)
	if err != nil {
		reportError(env.Stderr, err)
		return exitCodeFor(err)
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		reportError(env.Stderr, fmt.Errorf("encoding config: %w", err))
		return ExitGeneral
	}

	if _, err := env.Stdout.Write(data); err != nil {
		return ExitIO
	}
	return ExitSuccess
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdpdf/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommands runMain dispatches.
var commands = map[string]bool{
	"convert": true,
	"config":  true,
	"version": true,
	"help":    true,
}

func main() {
	env := DefaultEnv()
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), env.Stderr)
	os.Exit(runMain(os.Args, env))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// The library logs only in verbose mode.
func configureMaxProcs(verbose bool, w io.Writer) {
	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}

// runMain dispatches args (including the program name) and returns the exit code.
// A first argument that is not a command but looks like an input starts an
// implicit convert: mdpdf doc.md doc.pdf.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch {
	case cmd == "version":
		fmt.Fprintf(env.Stdout, "mdpdf %s\n", Version)
		return ExitSuccess
	case cmd == "help", cmd == "-h", cmd == "--help":
		return runHelp(rest, env)
	case cmd == "convert":
		return runConvertCmd(rest, env)
	case cmd == "config":
		return runConfigCmd(rest, env)
	case looksLikeInput(cmd):
		return runConvertCmd(args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// isCommand reports whether s names a subcommand (case sensitive).
func isCommand(s string) bool {
	return commands[s]
}

// looksLikeInput reports whether arg can start an implicit convert:
// a flag, a markdown file, a path, or a glob.
func looksLikeInput(arg string) bool {
	if arg == "" || isCommand(arg) {
		return false
	}
	return strings.HasPrefix(arg, "-") ||
		fileutil.IsMarkdown(arg) ||
		fileutil.IsFilePath(arg) ||
		isGlob(arg)
}

package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbgen [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build a notebook from records (default)")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'nbgen help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbgen build <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a Jupyter notebook from an ordered list of records.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    YAML (.yaml, .yml, .xz) or SQLite (.db, .sqlite) records")
	fmt.Fprintln(w, "           (optional if config has input.path or NBGEN_INPUT is set)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -f, --format <s>          Record format: yaml, sqlite")
	fmt.Fprintln(w, "      --table <s>           SQLite table name")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Notebook directory")
	fmt.Fprintln(w, "  -n, --name <s>            Notebook name without extension")
	fmt.Fprintln(w, "      --html                Also export HTML")
	fmt.Fprintln(w, "      --pdf                 Also export PDF (requires Chrome)")
	fmt.Fprintln(w, "  -s, --style <name>        Export page style: notebook, compact")
	fmt.Fprintln(w, "      --assets <dir>        Directory with custom styles/{name}.css")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -l, --language <s>        Code language: python, go")
	fmt.Fprintln(w, "      --bib-heading <s>     Bibliography heading line")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Execution:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Overall timeout, e.g. 30s, 2m")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NBGEN_CONFIG, NBGEN_INPUT, NBGEN_OUTPUT_DIR, NBGEN_LANGUAGE,")
	fmt.Fprintln(w, "  NBGEN_LOG_LEVEL, NBGEN_WORKERS, NBGEN_TIMEOUT")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: nbgen config [input] [build flags]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the configuration a build would use, after the config file,")
		fmt.Fprintln(env.Stdout, "NBGEN_* variables, flags and defaults are applied.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: nbgen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: nbgen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand reports an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// run dispatches the subcommand and returns the process exit code.
// With no command, or when the first argument is not a known command,
// "build" is assumed.
func run(ctx context.Context, args []string, env *Environment) int {
	cmd := "build"
	if len(args) > 0 {
		switch args[0] {
		case "build", "config", "version", "help", "-h", "--help":
			cmd, args = args[0], args[1:]
		}
	}

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, args, env)
	case "config":
		err = runConfig(args, env)
	case "version":
		fmt.Fprintf(env.Stdout, "nbgen %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(args, env)
	}

	if err != nil {
		if !errors.Is(err, errHelpShown) {
			fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, env))
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

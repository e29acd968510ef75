package main

import (
	"fmt"

	"github.com/alnah/go-nbgen/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML: the config file
// with env vars, flags and defaults applied. It takes the build flags so a
// build command line can be checked by swapping the command name.
func runConfig(args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrInvalidFlag, len(positional))
	}
	if len(positional) == 1 {
		flags.input.path = positional[0]
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := loadBuildConfig(flags, envCfg)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}

package exec

import (
	"context"
	"io"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor is the main interface for executing commands.
// It provides a fluent API for configuring and running commands.
type Executor interface {
	// WithEnv sets environment variables for the next run.
	WithEnv(env map[string]string) Executor

	// WithContext sets the context for the next run.
	// The command is killed if the context is canceled.
	WithContext(ctx context.Context) Executor

	// WithDisableColors disables color output by setting NO_COLOR and friends.
	WithDisableColors() Executor

	// WithInheritEnv inherits environment variables from the parent process.
	WithInheritEnv() Executor

	// WithStdin feeds r to the command's standard input on the next run.
	WithStdin(r io.Reader) Executor

	// Run executes the command with the given arguments.
	// The result is returned even when the command fails.
	Run(args ...string) (*Result, error)

	// Clone creates a copy of the executor with the same configuration.
	Clone() Executor
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// ExitCode is the exit code returned by the command
	ExitCode int
}

// Option configures a Command with global settings.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.globalEnv[k] = v
		}
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.globalInheritEnv = true
	}
}

// WithDisableColors returns an Option that globally disables color output.
func WithDisableColors() Option {
	return func(c *Command) {
		c.globalDisableColors = true
	}
}

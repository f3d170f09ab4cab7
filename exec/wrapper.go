package exec

import (
	"context"
	"io"
)

// CommandWrapper wraps an Executor and prepends a command name to every Run
// call. It implements Executor, so it can be used wherever one is expected.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper creates a CommandWrapper that runs cmd through executor.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// WithEnv sets environment variables for the command.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithContext sets the context for the command.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithDisableColors disables color output.
func (w *CommandWrapper) WithDisableColors() Executor {
	w.executor = w.executor.WithDisableColors()
	return w
}

// WithInheritEnv enables environment inheritance.
func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// WithStdin sets the standard input for the command.
func (w *CommandWrapper) WithStdin(r io.Reader) Executor {
	w.executor = w.executor.WithStdin(r)
	return w
}

// Run executes the wrapped command with the given arguments.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := append([]string{w.cmd}, args...)
	return w.executor.Run(fullArgs...)
}

// Clone creates a copy of the wrapper with a cloned executor.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
	}
}

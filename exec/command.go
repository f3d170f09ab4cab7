package exec

import (
	"bytes"
	"context"
	"io"
	"os"
	osexec "os/exec"
)

// colorEnv are the variables set when colors are disabled.
var colorEnv = map[string]string{
	"NO_COLOR":    "1",
	"TERM":        "dumb",
	"CLICOLOR":    "0",
	"FORCE_COLOR": "0",
}

// Command is the concrete implementation of the Executor interface.
type Command struct {
	globalEnv           map[string]string
	globalInheritEnv    bool
	globalDisableColors bool

	localEnv           map[string]string
	localInheritEnv    bool
	localDisableColors bool
	stdin              io.Reader
	ctx                context.Context
}

// New creates a new Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
		ctx:       context.Background(),
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the next run.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.localEnv[k] = v
	}
	return c
}

// WithContext sets the context for the next run.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithDisableColors disables color output for the next run.
func (c *Command) WithDisableColors() Executor {
	c.localDisableColors = true
	return c
}

// WithInheritEnv inherits the parent environment for the next run.
func (c *Command) WithInheritEnv() Executor {
	c.localInheritEnv = true
	return c
}

// WithStdin sets the standard input for the next run.
func (c *Command) WithStdin(r io.Reader) Executor {
	c.stdin = r
	return c
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}
	defer c.resetLocal()

	cmd := osexec.CommandContext(c.ctx, args[0], args[1:]...)
	cmd.Env = c.environ()
	if c.stdin != nil {
		cmd.Stdin = c.stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(cmd),
	}

	if err != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// Clone creates a copy of the executor with the same global configuration.
// Local settings are not carried over, except for the context.
func (c *Command) Clone() Executor {
	clone := &Command{
		globalEnv:           make(map[string]string, len(c.globalEnv)),
		globalInheritEnv:    c.globalInheritEnv,
		globalDisableColors: c.globalDisableColors,
		localEnv:            make(map[string]string),
		ctx:                 c.ctx,
	}
	for k, v := range c.globalEnv {
		clone.globalEnv[k] = v
	}
	return clone
}

// environ builds the process environment. A nil result makes os/exec inherit
// the parent environment, so an explicit empty slice is used when
// inheritance is off.
func (c *Command) environ() []string {
	env := []string{}
	if c.globalInheritEnv || c.localInheritEnv {
		env = append(env, os.Environ()...)
	}
	if c.globalDisableColors || c.localDisableColors {
		for k, v := range colorEnv {
			env = append(env, k+"="+v)
		}
	}
	for k, v := range c.globalEnv {
		env = append(env, k+"="+v)
	}
	for k, v := range c.localEnv {
		env = append(env, k+"="+v)
	}
	return env
}

func (c *Command) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localInheritEnv = false
	c.localDisableColors = false
	c.stdin = nil
}

func exitCode(cmd *osexec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}

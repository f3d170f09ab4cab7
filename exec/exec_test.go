package exec

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestBasicExecution(t *testing.T) {
	result, err := New().Run("echo", "hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "hello world") {
		t.Errorf("expected stdout to contain 'hello world', got: %s", result.Stdout)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got: %d", result.ExitCode)
	}
}

func TestNoArguments(t *testing.T) {
	_, err := New().Run()
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}
	if execErr.ExitCode != -1 {
		t.Errorf("expected exit code -1, got: %d", execErr.ExitCode)
	}
}

func TestCommandFailure(t *testing.T) {
	result, err := New().Run("sh", "-c", "echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}
	if execErr.ExitCode != 3 {
		t.Errorf("expected exit code 3, got: %d", execErr.ExitCode)
	}
	if result == nil || !strings.Contains(result.Stderr, "oops") {
		t.Errorf("expected captured stderr in result, got: %+v", result)
	}
}

func TestWithStdin(t *testing.T) {
	result, err := New().WithStdin(strings.NewReader(`{"body":"hi"}`)).Run("cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stdout != `{"body":"hi"}` {
		t.Errorf("expected stdin echoed back, got: %q", result.Stdout)
	}
}

func TestStdinIsLocal(t *testing.T) {
	cmd := New()
	if _, err := cmd.WithStdin(strings.NewReader("first")).Run("cat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := cmd.Run("cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stdout != "" {
		t.Errorf("expected stdin to be reset after run, got: %q", result.Stdout)
	}
}

func TestWithEnv(t *testing.T) {
	result, err := New().WithEnv(map[string]string{
		"TEST_VAR": "test_value",
	}).Run("sh", "-c", "echo $TEST_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "test_value") {
		t.Errorf("expected stdout to contain 'test_value', got: %s", result.Stdout)
	}
}

func TestGlobalEnvSurvivesClone(t *testing.T) {
	cmd := New(WithEnv(map[string]string{"GLOBAL_VAR": "global"}))
	result, err := cmd.Clone().Run("sh", "-c", "echo $GLOBAL_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Stdout, "global") {
		t.Errorf("expected stdout to contain 'global', got: %s", result.Stdout)
	}
}

func TestWithDisableColors(t *testing.T) {
	result, err := New().WithDisableColors().Run("sh", "-c", "echo $NO_COLOR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(result.Stdout) != "1" {
		t.Errorf("expected NO_COLOR=1, got: %q", result.Stdout)
	}
}

func TestWithContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New().WithContext(ctx).Run("sleep", "5")
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
}

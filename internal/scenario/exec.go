package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Invoke runs an external program and returns its exit status. Env entries
// are appended to the inherited process environment; stdout and stderr are
// streamed to outW so long-running scenarios surface diagnostics as they
// happen. A non-zero exit is reported through the status, not the error;
// the error is reserved for invocations that could not run at all.
func Invoke(ctx context.Context, path string, args, env []string, outW io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = outW
	cmd.Stderr = outW

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("invoking %s: %w", path, err)
}

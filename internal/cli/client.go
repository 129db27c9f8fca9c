// Package cli runs the hledger executable and captures its output.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ExitError is a nonzero exit of the hledger process. It is a failure of
// the request, not of the decoder: stderr carries the reason hledger gives
// (bad query, missing journal, unbalanced entry).
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("hledger exited with code %d: %s", e.Code, strings.TrimSpace(e.Stderr))
}

type Client struct {
	path      string
	timeout   time.Duration
	available bool
}

func NewClient(path string, timeout time.Duration) *Client {
	c := &Client{
		path:    path,
		timeout: timeout,
	}
	c.available = c.checkAvailable()
	return c
}

func (c *Client) Available() bool {
	return c.available
}

// Run invokes hledger for one report request and returns its complete
// standard output. Reports are batch JSON values, so the full stream is
// collected before the caller decodes anything.
func (c *Client) Run(ctx context.Context, file string, args ...string) ([]byte, error) {
	if !c.available {
		return nil, fmt.Errorf("hledger not available at path: %s", c.path)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmdArgs := make([]string, 0, len(args)+2)
	if file != "" {
		cmdArgs = append(cmdArgs, "-f", file)
	}
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.CommandContext(ctx, c.path, cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("command timed out after %v", c.timeout)
		}
		if ctx.Err() == context.Canceled {
			return nil, fmt.Errorf("command cancelled: %w", ctx.Err())
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, &ExitError{Code: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return nil, fmt.Errorf("hledger error: %w", err)
	}

	return stdout.Bytes(), nil
}

func (c *Client) checkAvailable() bool {
	cmd := exec.Command(c.path, "--version")
	return cmd.Run() == nil
}

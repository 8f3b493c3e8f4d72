package github

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/orgdocs"
)

// Runner runs an external command and returns its output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec. The command is killed when the
// context is done.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// DefaultCLIPath is the gh executable looked up on PATH.
const DefaultCLIPath = "gh"

// CLI reads repository contents with the gh CLI.
type CLI struct {
	Runner Runner
	Path   string
}

// NewCLI creates a CLI running gh through os/exec.
func NewCLI() *CLI {
	return &CLI{Runner: ExecRunner{}, Path: DefaultCLIPath}
}

// Available reports whether gh is installed and authenticated.
func (c *CLI) Available(ctx context.Context) bool {
	_, _, err := c.Runner.Run(ctx, c.Path, "auth", "status")
	return err == nil
}

// Contents returns the raw file at the source's path and ref.
func (c *CLI) Contents(ctx context.Context, src *orgdocs.GitHubSource) (string, error) {
	endpoint := fmt.Sprintf("/repos/%s/contents/%s?ref=%s", src.Repo, src.Path, src.Ref())
	stdout, stderr, err := c.Runner.Run(ctx, c.Path, "api", endpoint, "-H", "Accept: application/vnd.github.v3.raw")
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if strings.Contains(msg, "404") || strings.Contains(msg, "Not Found") {
			return "", notFound(src)
		}
		if msg == "" {
			msg = err.Error()
		}
		return "", orgdocs.Errorf(orgdocs.EUNAVAILABLE, "gh CLI error: %s", msg)
	}
	return string(stdout), nil
}

func notFound(src *orgdocs.GitHubSource) error {
	return orgdocs.Errorf(orgdocs.ENOTFOUND, "Document not found: %s/%s", src.Repo, src.Path)
}

// Package clipboard copies text through whichever platform clipboard tool
// is installed.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/windsurf-accounts-cli/internal/ports"
)

var ErrUnavailable = errors.New("no clipboard tool found")

// tool is one candidate command; the first one present on PATH wins.
type tool struct {
	name string
	args []string
}

var defaultTools = []tool{
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
	{name: "pbcopy"},
	{name: "clip.exe"},
}

type lookPathFunc func(file string) (string, error)

type runFunc func(ctx context.Context, input string, path string, args ...string) (stderr string, err error)

type Clipboard struct {
	tools    []tool
	lookPath lookPathFunc
	run      runFunc
}

var _ ports.Clipboard = (*Clipboard)(nil)

func New() *Clipboard {
	return &Clipboard{tools: defaultTools, lookPath: exec.LookPath, run: runTool}
}

func (c *Clipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, candidate := range c.tools {
		path, err := c.lookPath(candidate.name)
		if err != nil {
			continue
		}

		stderr, err := c.run(ctx, text, path, candidate.args...)
		if err != nil {
			if stderr != "" {
				return fmt.Errorf("%s: %w: %s", candidate.name, err, stderr)
			}
			return fmt.Errorf("%s: %w", candidate.name, err)
		}
		return nil
	}

	return ErrUnavailable
}

func runTool(ctx context.Context, input string, path string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(input)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

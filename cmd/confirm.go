package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

// prompter asks yes/no questions on the command's streams. One reader is
// kept per command so consecutive prompts consume consecutive lines.
type prompter struct {
	in   *bufio.Reader
	out  io.Writer
	skip bool
}

func newPrompter(cmd *cobra.Command, assumeYes bool) *prompter {
	return &prompter{
		in:   bufio.NewReader(cmd.InOrStdin()),
		out:  cmd.OutOrStdout(),
		skip: assumeYes,
	}
}

// confirm returns domain.ErrCancelled unless the answer is y or yes.
func (p *prompter) confirm(question string) error {
	if p.skip {
		return nil
	}

	_, _ = fmt.Fprintf(p.out, "%s [y/N]: ", question)
	answer, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return domain.ErrCancelled
	}
}

package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/sortlab/internal/command"
)

const prompt = "sortlab> "

// Run reads commands from r until .exit, end of input or a read failure.
// Command errors are printed and the loop continues; ctx is checked
// between commands.
func (c *Controller) Run(ctx context.Context, r io.Reader) error {
	if c.prompt {
		c.infoColor.Fprintln(c.out, "sortlab: type .help for commands")
	}
	c.show()

	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.prompt {
			c.infoColor.Fprint(c.out, prompt)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read commands: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		quit, err := c.exec(line)
		if err != nil {
			c.log.Debug("command failed", "line", line, "err", err)
			c.report(err)
			continue
		}
		if quit {
			return nil
		}
	}
}

func (c *Controller) exec(line string) (bool, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return false, err
	}
	return c.Execute(cmd)
}

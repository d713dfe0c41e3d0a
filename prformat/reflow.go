package prformat

import (
	"fmt"
	"strings"
)

// Reflow wraps prose to the configured print width with the format command
func Reflow(r CommandRunner, c Config, prose string) (string, error) {
	width := fmt.Sprintf("--print-width=%d", c.PrintWidth)
	logger.DebugMsg(fmt.Sprintf("formatting prose with `%s %s`", c.FormatCommand, width))

	out, err := RunLine(r, c.FormatCommand, prose, width)
	if err != nil {
		return "", fmt.Errorf("reflowing prose: %w", err)
	}
	return strings.TrimSpace(out), nil
}

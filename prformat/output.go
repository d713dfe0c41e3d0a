package prformat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

var (
	escaper   = strings.NewReplacer("\n", "%0A", "\r", "%0D", "%", "%25")
	unescaper = strings.NewReplacer("%0A", "\n", "%0D", "\r", "%25", "%")
)

// Escape encodes s as a single-line workflow command value
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape
func Unescape(s string) string {
	return unescaper.Replace(s)
}

// EmitOutput writes a set-output workflow command for name to w
func EmitOutput(w io.Writer, name, value string) error {
	_, err := fmt.Fprintf(w, "::set-output name=%s::%s\n", name, Escape(value))
	return err
}

// EmitOutputFile appends a multiline output record to the GITHUB_OUTPUT file
func EmitOutputFile(path, name, value string) error {
	delimiter := "ghadelimiter_" + uuid.NewString()
	if strings.Contains(name, delimiter) || strings.Contains(value, delimiter) {
		return fmt.Errorf("output value for %s contains delimiter %s", name, delimiter)
	}

	fh, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	logger.DebugMsg(fmt.Sprintf("writing %s to %s", name, path))
	_, err = fmt.Fprintf(fh, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	return err
}

package prformat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner executes an external command with the given stdin
type CommandRunner interface {
	Run(command string, args []string, input string) (string, error)
}

// ExecRunner runs commands as child processes
type ExecRunner struct {
	Dir string
}

// Run resolves the command on PATH, feeds it input and returns its stdout
// with trailing whitespace removed
func (r ExecRunner) Run(command string, args []string, input string) (string, error) {
	resolved, err := exec.LookPath(command)
	if err != nil {
		return "", &ConfigurationError{
			Field:   command,
			Message: fmt.Sprintf("command not found: couldn't resolve `%s`", command),
		}
	}

	cmd := exec.Command(resolved, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.DebugMsg(fmt.Sprintf("running %s", joinCommand(command, args)))
	if err := cmd.Run(); err != nil {
		return "", &ExecutionError{
			Command: joinCommand(command, args),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}

	return strings.TrimRight(stdout.String(), " \t\r\n"), nil
}

// SplitCommand splits a configured command line into executable and args
func SplitCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// RunLine splits a command line and runs it with r
func RunLine(r CommandRunner, line string, input string, extra ...string) (string, error) {
	command, args := SplitCommand(line)
	if command == "" {
		return "", &ConfigurationError{Field: "command", Message: "empty command line"}
	}
	return r.Run(command, append(args, extra...), input)
}

func joinCommand(command string, args []string) string {
	return strings.Join(append([]string{command}, args...), " ")
}

package prformat

import (
	"strings"
)

const formatLine = "npx --yes prettier --parser=markdown --prose-wrap=always --print-width=88"

type fakeCall struct {
	Line  string
	Input string
}

type fakeRunner struct {
	calls   []fakeCall
	results map[string]func(string) (string, error)
}

func (f *fakeRunner) Run(command string, args []string, input string) (string, error) {
	line := joinCommand(command, args)
	f.calls = append(f.calls, fakeCall{Line: line, Input: input})
	fn, ok := f.results[line]
	if !ok {
		return "", &ConfigurationError{Field: command, Message: "command not found"}
	}
	return fn(input)
}

func identity(s string) (string, error) {
	return strings.TrimRight(s, " \t\r\n"), nil
}

func constant(out string) func(string) (string, error) {
	return func(string) (string, error) {
		return out, nil
	}
}

// newFakeRunner wires the default commands; trailers is what the parse step returns
func newFakeRunner(trailers string) *fakeRunner {
	return &fakeRunner{
		results: map[string]func(string) (string, error){
			defaultNormalizeCommand: identity,
			defaultParseCommand:     constant(trailers),
			formatLine:              identity,
		},
	}
}

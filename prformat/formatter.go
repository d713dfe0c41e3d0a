package prformat

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Formatter reflows pull request bodies
type Formatter struct {
	Config Config
	Runner CommandRunner
}

// Result holds each stage of a formatted body
type Result struct {
	Raw       string
	Body      Body
	Reflowed  string
	Formatted string
}

// New creates a Formatter. A nil runner runs real commands.
func New(c Config, r CommandRunner) Formatter {
	if r == nil {
		r = ExecRunner{}
	}
	return Formatter{Config: c, Runner: r}
}

// NewFromFile creates a Formatter from a config file
func NewFromFile(fileArg string) (Formatter, error) {
	c, err := LoadConfig(fileArg)
	if err != nil {
		return Formatter{}, err
	}
	return New(c, nil), nil
}

// Format splits off trailers, reflows the prose and puts them back together
func (f *Formatter) Format(raw string) (Result, error) {
	body, err := ExtractTrailers(f.Runner, f.Config, raw)
	if err != nil {
		return Result{}, err
	}

	reflowed, err := Reflow(f.Runner, f.Config, body.Prose)
	if err != nil {
		return Result{}, err
	}
	logger.DebugMsg("done formatting")

	return Result{
		Raw:       raw,
		Body:      body,
		Reflowed:  reflowed,
		Formatted: Reassemble(reflowed, body.Trailers),
	}, nil
}

// Diff returns a unified diff from the raw body to the formatted one
func (r Result) Diff() (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(r.Raw),
		B:        difflib.SplitLines(r.Formatted),
		FromFile: "raw",
		ToFile:   "formatted",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diffing body: %w", err)
	}
	return diff, nil
}

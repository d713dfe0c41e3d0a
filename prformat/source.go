package prformat

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sethvargo/go-envconfig"
)

// Source provides the raw text to format
type Source interface {
	Body() (string, error)
}

// Input is the workflow-provided environment
type Input struct {
	RawPRBody string `env:"RAW_PR_BODY,required"`
}

// LoadInput reads Input using l, or the process environment if l is nil
func LoadInput(l envconfig.Lookuper) (Input, error) {
	if l == nil {
		l = envconfig.OsLookuper()
	}

	var i Input
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &i,
		Lookuper: l,
	})
	if errors.Is(err, envconfig.ErrMissingRequired) {
		return Input{}, &ConfigurationError{
			Field:   "RAW_PR_BODY",
			Message: "environment variable is not set",
		}
	}
	return i, err
}

// EnvSource reads the body from RAW_PR_BODY
type EnvSource struct {
	Lookuper envconfig.Lookuper
}

// Body returns the raw pull request body
func (s EnvSource) Body() (string, error) {
	i, err := LoadInput(s.Lookuper)
	if err != nil {
		return "", err
	}
	return i.RawPRBody, nil
}

// CommitSource reads the message of a commit in a local repo
type CommitSource struct {
	Path     string
	Revision string
}

// Body returns the commit message
func (s CommitSource) Body() (string, error) {
	rev := s.Revision
	if rev == "" {
		rev = "HEAD"
	}

	r, err := git.PlainOpenWithOptions(s.Path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening repo at %s: %w", s.Path, err)
	}

	logger.DebugMsg(fmt.Sprintf("resolving %s in %s", rev, s.Path))
	hash, err := r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", rev, err)
	}

	commit, err := r.CommitObject(*hash)
	if err != nil {
		return "", err
	}
	return commit.Message, nil
}

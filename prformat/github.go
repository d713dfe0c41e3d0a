package prformat

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/bradleyfalzon/ghinstallation"
	"github.com/google/go-github/v52/github"
)

var pullRequestRefRegex = regexp.MustCompile(`^([\w.-]+)/([\w.-]+)#(\d+)$`)

// PullRequestRef identifies a pull request as owner/repo#number
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// ParsePullRequestRef parses an owner/repo#number reference
func ParsePullRequestRef(s string) (PullRequestRef, error) {
	m := pullRequestRefRegex.FindStringSubmatch(s)
	if m == nil {
		return PullRequestRef{}, fmt.Errorf("invalid pull request %q, expected owner/repo#123", s)
	}
	n, err := strconv.Atoi(m[3])
	if err != nil {
		return PullRequestRef{}, fmt.Errorf("invalid pull request number: %w", err)
	}
	return PullRequestRef{Owner: m[1], Repo: m[2], Number: n}, nil
}

// PullRequestSource reads and updates a pull request body over the GitHub API
type PullRequestSource struct {
	Client *github.Client
	Ref    PullRequestRef
}

// NewPullRequestSource authenticates as the configured app installation
func NewPullRequestSource(c Config, ref PullRequestRef) (PullRequestSource, error) {
	if c.IntegrationID == 0 || c.InstallationID == 0 || c.PrivateKeyFile == "" {
		return PullRequestSource{}, &ConfigurationError{
			Field:   "integration_id",
			Message: "integration_id, installation_id and private_key_file are required for pull requests",
		}
	}

	logger.DebugMsg(fmt.Sprintf("creating install client for %d", c.InstallationID))
	itr, err := ghinstallation.NewKeyFromFile(
		http.DefaultTransport,
		int64(c.IntegrationID),
		c.InstallationID,
		c.PrivateKeyFile,
	)
	if err != nil {
		return PullRequestSource{}, err
	}

	return PullRequestSource{
		Client: github.NewClient(&http.Client{Transport: itr}),
		Ref:    ref,
	}, nil
}

// Body returns the pull request description
func (s PullRequestSource) Body() (string, error) {
	logger.DebugMsg(fmt.Sprintf("fetching body of %s", s.Ref))
	pr, _, err := s.Client.PullRequests.Get(context.Background(), s.Ref.Owner, s.Ref.Repo, s.Ref.Number)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", s.Ref, err)
	}
	return pr.GetBody(), nil
}

// Update replaces the pull request description with body
func (s PullRequestSource) Update(body string) error {
	logger.DebugMsg(fmt.Sprintf("updating body of %s", s.Ref))
	_, _, err := s.Client.PullRequests.Edit(
		context.Background(),
		s.Ref.Owner,
		s.Ref.Repo,
		s.Ref.Number,
		&github.PullRequest{Body: &body},
	)
	if err != nil {
		return fmt.Errorf("updating %s: %w", s.Ref, err)
	}
	return nil
}

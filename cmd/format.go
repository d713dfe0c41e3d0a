package cmd

import (
	"fmt"

	"github.com/akerl/prformat/prformat"
	"github.com/spf13/cobra"
)

type formatOptions struct {
	Config       string
	OutputName   string
	Commit       string
	Repo         string
	PullRequest  string
	WriteBack    bool
	GithubOutput string
	Diff         bool
}

func formatOptionsFromFlags(cmd *cobra.Command) (formatOptions, error) {
	var o formatOptions
	var err error
	flags := cmd.Flags()

	if o.Config, err = flags.GetString("config"); err != nil {
		return o, err
	}
	if o.OutputName, err = flags.GetString("output-name"); err != nil {
		return o, err
	}
	if o.Commit, err = flags.GetString("commit"); err != nil {
		return o, err
	}
	if o.Repo, err = flags.GetString("repo"); err != nil {
		return o, err
	}
	if o.PullRequest, err = flags.GetString("pull-request"); err != nil {
		return o, err
	}
	if o.WriteBack, err = flags.GetBool("write-back"); err != nil {
		return o, err
	}
	if o.GithubOutput, err = flags.GetString("github-output"); err != nil {
		return o, err
	}
	if o.Diff, err = flags.GetBool("diff"); err != nil {
		return o, err
	}

	if o.Commit != "" && o.PullRequest != "" {
		return o, fmt.Errorf("--commit and --pull-request are mutually exclusive")
	}
	if o.WriteBack && o.PullRequest == "" {
		return o, fmt.Errorf("--write-back requires --pull-request")
	}
	return o, nil
}

func formatRunner(cmd *cobra.Command, _ []string) error {
	o, err := formatOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	f, err := prformat.NewFromFile(o.Config)
	if err != nil {
		return err
	}
	if o.OutputName != "" {
		f.Config.OutputName = o.OutputName
	}

	var prSource prformat.PullRequestSource
	var source prformat.Source = prformat.EnvSource{}
	switch {
	case o.Commit != "":
		source = prformat.CommitSource{Path: o.Repo, Revision: o.Commit}
	case o.PullRequest != "":
		ref, err := prformat.ParsePullRequestRef(o.PullRequest)
		if err != nil {
			return err
		}
		prSource, err = prformat.NewPullRequestSource(f.Config, ref)
		if err != nil {
			return err
		}
		source = prSource
	}

	raw, err := source.Body()
	if err != nil {
		return err
	}

	res, err := f.Format(raw)
	if err != nil {
		return err
	}

	if o.Diff {
		diff, err := res.Diff()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.ErrOrStderr(), diff)
	}

	if o.WriteBack {
		if err := prSource.Update(res.Formatted); err != nil {
			return err
		}
	}

	if o.GithubOutput != "" {
		return prformat.EmitOutputFile(o.GithubOutput, f.Config.OutputName, res.Formatted)
	}
	return prformat.EmitOutput(cmd.OutOrStdout(), f.Config.OutputName, res.Formatted)
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format a pull request body and emit it as a workflow output",
	RunE:  formatRunner,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	f := formatCmd.Flags()
	f.StringP("config", "c", "", "Config file")
	f.StringP("output-name", "o", "", "Workflow output name")
	f.String("commit", "", "Format the message of this commit instead of RAW_PR_BODY")
	f.String("repo", ".", "Repository to read --commit from")
	f.String("pull-request", "", "Format the body of owner/repo#number via the GitHub API")
	f.Bool("write-back", false, "Update the pull request body with the formatted text")
	f.String("github-output", "", "Append the output to this file instead of printing set-output")
	f.Bool("diff", false, "Print a diff of the changes to stderr")
}

package cmd

import (
	"fmt"
	"io"

	"github.com/akerl/prformat/prformat"
	"github.com/spf13/cobra"
)

func escapeRunner(cmd *cobra.Command, _ []string) error {
	decode, err := cmd.Flags().GetBool("decode")
	if err != nil {
		return err
	}

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}

	if decode {
		_, err = fmt.Fprint(cmd.OutOrStdout(), prformat.Unescape(string(input)))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), prformat.Escape(string(input)))
	return err
}

var escapeCmd = &cobra.Command{
	Use:   "escape",
	Short: "Escape stdin as a workflow command value",
	RunE:  escapeRunner,
}

func init() {
	rootCmd.AddCommand(escapeCmd)
	escapeCmd.Flags().BoolP("decode", "d", false, "Unescape instead")
}

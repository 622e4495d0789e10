package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gsa-filter",
		Short:         "Parse, convert, compose and page filter strings.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		newNormalizeCmd(),
		newConvertCmd(),
		newComposeCmd(),
		newPageCmd(),
		newMigrateCmd(),
	)
	return root
}

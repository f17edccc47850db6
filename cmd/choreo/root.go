package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "choreo",
		Short:         "Inspect and play animation choreography files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("dir", "", "Directory of choreography files; the embedded defaults when empty.")
	pf.Duration("tick", 0, "Scheduler tick interval (default 16ms).")
	pf.String("log-level", "", "Log level: debug, info, warn or error.")

	addList(cmd)
	addValidate(cmd)
	addPlay(cmd)
	return cmd
}

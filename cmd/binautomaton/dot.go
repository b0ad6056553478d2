package main

import (
	"github.com/spf13/cobra"
)

func dotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dot [file]",
		Short: "Export the automaton as a Graphviz digraph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			au, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			return au.WriteDOT(cmd.OutOrStdout())
		},
	}
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	automaton "github.com/geange/binautomaton"
	"github.com/spf13/cobra"
)

func layersCmd(a *app) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "layers [file]",
		Short: "Print the states reachable in exactly k steps, for k below --depth",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return fmt.Errorf("--depth must not be negative, got %d", depth)
			}
			au, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			d := automaton.NewDepthLayers(au, depth)
			for k := 0; k < d.Depth(); k++ {
				states := d.StatesAtDepth(k)
				ids := make([]string, len(states))
				for i, s := range states {
					ids[i] = strconv.Itoa(s)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", k, strings.Join(ids, ","))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 8, "Number of layers to compute")
	return cmd
}

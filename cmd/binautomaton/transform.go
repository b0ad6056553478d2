package main

import (
	automaton "github.com/geange/binautomaton"
	"github.com/geange/binautomaton/internal/config"
	"github.com/spf13/cobra"
)

// transforms maps pipeline step names to the operation they apply.
var transforms = map[string]func(*automaton.Automaton) *automaton.Automaton{
	config.StepPrune:      automaton.RemoveUnreachable,
	config.StepMinimize:   automaton.Minimize,
	config.StepReverse:    automaton.Reverse,
	config.StepBrzozowski: automaton.MinimizeBrzozowski,
}

func transformCmds(a *app) []*cobra.Command {
	short := map[string]string{
		config.StepPrune:      "Remove states unreachable from the initial state",
		config.StepMinimize:   "Minimize with the table-filling algorithm",
		config.StepReverse:    "Determinize the reversal of the automaton",
		config.StepBrzozowski: "Minimize by reversing and determinizing twice",
	}

	cmds := []*cobra.Command{{
		Use:   "dump [file]",
		Short: "Load (and determinize if needed) then print the automaton",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			au, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			return au.Dump(cmd.OutOrStdout())
		},
	}}
	for _, name := range []string{config.StepPrune, config.StepMinimize, config.StepReverse, config.StepBrzozowski} {
		fn := transforms[name]
		cmds = append(cmds, &cobra.Command{
			Use:   name + " [file]",
			Short: short[name],
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				au, err := a.load(cmd, args)
				if err != nil {
					return err
				}
				out := fn(au)
				a.logger.Debug("transformed", "step", cmd.Name(), "before", au.GetNumStates(), "after", out.GetNumStates())
				return out.Dump(cmd.OutOrStdout())
			},
		})
	}
	return cmds
}

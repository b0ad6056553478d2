package main

import (
	"fmt"
	"log/slog"
	"os"

	automaton "github.com/geange/binautomaton"
	"github.com/geange/binautomaton/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "binautomaton",
		Short:         "Binary-alphabet finite automaton toolkit",
		Long:          `Loads automata in the line format "[>]n[*] dests0 dests1", determinizes them if needed and applies minimization, pruning, reversal and layering.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	for _, c := range transformCmds(a) {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(layersCmd(a), dotCmd(a), runCmd(a))
	return rootCmd
}

// Execute runs the command line and exits with status 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// load reads the automaton named by args, or standard input when args is empty or "-".
func (a *app) load(cmd *cobra.Command, args []string) (*automaton.Automaton, error) {
	opts := []automaton.LoadOption{automaton.WithLogger(a.logger)}
	if len(args) == 0 || args[0] == "-" {
		return automaton.Load(cmd.InOrStdin(), opts...)
	}
	return automaton.LoadFile(args[0], opts...)
}

package main

import (
	"github.com/geange/binautomaton/internal/config"
	"github.com/geange/binautomaton/internal/logging"
	"github.com/spf13/cobra"
)

func runCmd(a *app) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Apply the pipeline from --config and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
				// --log-level wins over the file
				if !cmd.Flags().Changed("log-level") {
					level, err := logging.ParseLevel(cfg.LogLevel)
					if err != nil {
						return err
					}
					a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
				}
			}

			au, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			for _, step := range cfg.Pipeline {
				before := au.GetNumStates()
				au = transforms[step](au)
				a.logger.Info("applied step", "step", step, "before", before, "after", au.GetNumStates())
			}
			return au.Dump(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Pipeline file (YAML)")
	return cmd
}

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/beliefkit/beliefkit/pkg/scenario"
)

type runOpts struct {
	scenariofile string
}

var runopts = runOpts{}

func NewRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "runs the operations of a scenario file against its belief base",
		Long:  `loads a scenario file describing a prioritized belief base and a list of contract/expand/revise operations, applies the operations in order and prints the resulting base`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(runopts.scenariofile)
			if err != nil {
				return err
			}
			base, err := s.Base()
			if err != nil {
				return err
			}
			logrus.Infof("Loaded %v beliefs.", base.Len())
			result, err := s.Apply(base)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}

	runCmd.PersistentFlags().StringVarP(&runopts.scenariofile, "scenario", "s", "scenario.yaml", "scenario file with the initial beliefs and the operations to run")
	return runCmd
}

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/beliefkit/beliefkit/pkg/logic"
	"github.com/beliefkit/beliefkit/pkg/scenario"
)

type queryOpts struct {
	scenariofile string
}

var queryopts = queryOpts{}

func NewQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "checks whether a scenario's belief base entails the given sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := logic.Parse(args[0])
			if err != nil {
				return err
			}
			s, err := scenario.Load(queryopts.scenariofile)
			if err != nil {
				return err
			}
			base, err := s.Base()
			if err != nil {
				return err
			}
			logrus.Infof("Loaded %v beliefs.", base.Len())
			if base.Entails(query) {
				fmt.Printf("entailed: %s\n", query)
			} else {
				fmt.Printf("not entailed: %s\n", query)
			}
			return nil
		},
	}

	queryCmd.PersistentFlags().StringVarP(&queryopts.scenariofile, "scenario", "s", "scenario.yaml", "scenario file with the beliefs to query against")
	return queryCmd
}

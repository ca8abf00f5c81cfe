package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beliefkit",
	Short: "beliefkit maintains a prioritized propositional belief base and revises it AGM-style",
	Long:  `beliefkit models AGM belief revision: it checks entailment over a prioritized propositional belief base and computes minimal-priority-loss contractions and revisions. Run without arguments it validates the engine against the AGM postulates on a fixed set of cases.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPostulates()
	},
}

func Execute() {
	rootCmd.AddCommand(NewPostulatesCmd())
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewQueryCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/beliefkit/beliefkit/pkg/postulates"
)

func NewPostulatesCmd() *cobra.Command {
	postulatesCmd := &cobra.Command{
		Use:   "postulates",
		Short: "validates the revision engine against the AGM postulates",
		Long:  `runs the fixed AGM postulate cases (success, inclusion, vacuity, consistency, extensionality) against the revision engine and reports pass/fail for each`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPostulates()
		},
	}
	return postulatesCmd
}

func runPostulates() error {
	logrus.Info("Checking AGM postulates.")
	failed := 0
	for _, result := range postulates.RunAll() {
		fmt.Println(result)
		if !result.Passed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d postulate(s) failed", failed)
	}
	logrus.Info("All postulates hold.")
	return nil
}

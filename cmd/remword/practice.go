package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonggx/remword/internal/cli"
	"github.com/simonggx/remword/internal/practice"
)

func newPracticeCommand() *cobra.Command {
	var mode string
	var wordCount int
	command := &cobra.Command{
		Use:   "practice",
		Short: "Practice saved vocabulary with an interactive quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			practiceMode, err := practice.ParseMode(mode)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if wordCount <= 0 {
				wordCount = cfg.Practice.WordCount
			}

			practiceCLI := cli.NewPracticeCLI(store, practice.NewGenerator(), os.Stdin, os.Stdout)
			return practiceCLI.Run(cmd.Context(), practiceMode, wordCount)
		},
	}
	command.Flags().StringVarP(&mode, "mode", "m", string(practice.ModeMultipleChoice),
		fmt.Sprintf("quiz style: %s, %s, %s or %s",
			practice.ModeMultipleChoice, practice.ModeFillBlank, practice.ModeMatching, practice.ModeContext))
	command.Flags().IntVarP(&wordCount, "count", "n", 0, "number of words to practice (defaults to the configured value)")

	return command
}

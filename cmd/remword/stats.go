package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show practice progress and weekly activity",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			stats, err := store.ProgressStats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Words practiced: %d\n", stats.TotalWords)
			fmt.Printf("Mastered:        %d\n", stats.MasteredWords)
			fmt.Printf("Accuracy:        %d%% (%d of %d attempts)\n",
				stats.AverageAccuracy, stats.CorrectAnswers, stats.TotalAttempts)

			weekly, err := store.WeeklyProgress(cmd.Context(), time.Now())
			if err != nil {
				return err
			}

			fmt.Println("\nWords added in the last 7 days:")
			for _, day := range weekly {
				bar := strings.Repeat("#", day.Count)
				fmt.Printf("  %s  %3d %s\n", day.Date.Format("Mon 2006-01-02"), day.Count, bar)
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDataCommand() *cobra.Command {
	dataCommand := &cobra.Command{
		Use:   "data",
		Short: "Manage stored data",
	}

	dataCommand.AddCommand(newDataClearCommand())
	return dataCommand
}

func newDataClearCommand() *cobra.Command {
	var confirmed bool
	command := &cobra.Command{
		Use:   "clear",
		Short: "Delete all vocabulary, progress and session history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to clear data without --yes")
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

			if err := store.ClearAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("All data cleared.")
			return nil
		},
	}
	command.Flags().BoolVar(&confirmed, "yes", false, "confirm deletion")
	return command
}

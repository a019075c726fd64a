package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonggx/remword/internal/settings"
)

func newSettingsCommand() *cobra.Command {
	settingsCommand := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
	}

	settingsCommand.AddCommand(
		newSettingsShowCommand(),
		newSettingsSetCommand(),
	)

	return settingsCommand
}

func newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, _, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			userSettings, err := settings.NewDBRepository(db).Get(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Target language:    %s\n", userSettings.TargetLanguage)
			fmt.Printf("Auto translate:     %t\n", userSettings.AutoTranslate)
			fmt.Printf("Show definitions:   %t\n", userSettings.ShowDefinitions)
			fmt.Printf("Practice reminders: %t\n", userSettings.PracticeReminders)
			fmt.Printf("Daily goal:         %d\n", userSettings.DailyGoal)
			return nil
		},
	}
}

func newSettingsSetCommand() *cobra.Command {
	var targetLanguage string
	var autoTranslate, showDefinitions, practiceReminders bool
	var dailyGoal int
	command := &cobra.Command{
		Use:   "set",
		Short: "Update settings; unspecified flags keep their current value",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, _, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			repo := settings.NewDBRepository(db)
			userSettings, err := repo.Get(cmd.Context())
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("target-language") {
				userSettings.TargetLanguage = targetLanguage
			}
			if cmd.Flags().Changed("auto-translate") {
				userSettings.AutoTranslate = autoTranslate
			}
			if cmd.Flags().Changed("show-definitions") {
				userSettings.ShowDefinitions = showDefinitions
			}
			if cmd.Flags().Changed("practice-reminders") {
				userSettings.PracticeReminders = practiceReminders
			}
			if cmd.Flags().Changed("daily-goal") {
				userSettings.DailyGoal = dailyGoal
			}

			if err := repo.Update(cmd.Context(), userSettings); err != nil {
				return err
			}
			fmt.Println("Settings saved.")
			return nil
		},
	}
	command.Flags().StringVar(&targetLanguage, "target-language", "", "default target language code")
	command.Flags().BoolVar(&autoTranslate, "auto-translate", true, "translate selections automatically")
	command.Flags().BoolVar(&showDefinitions, "show-definitions", true, "include dictionary definitions")
	command.Flags().BoolVar(&practiceReminders, "practice-reminders", true, "enable practice reminders")
	command.Flags().IntVar(&dailyGoal, "daily-goal", 10, "daily word goal")

	return command
}

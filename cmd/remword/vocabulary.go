package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonggx/remword/internal/translation"
	"github.com/simonggx/remword/internal/vocabulary"
)

func newVocabularyCommand() *cobra.Command {
	vocabularyCommand := &cobra.Command{
		Use:   "vocabulary",
		Short: "Manage saved vocabulary entries",
	}

	vocabularyCommand.AddCommand(
		newVocabularyAddCommand(),
		newVocabularyListCommand(),
		newVocabularySearchCommand(),
		newVocabularyDeleteCommand(),
		newVocabularyExportCommand(),
		newVocabularyImportCommand(),
	)

	return vocabularyCommand
}

func newVocabularyAddCommand() *cobra.Command {
	var translationText, contextText, sourceURL, language string
	command := &cobra.Command{
		Use:   "add <word>",
		Short: "Save a word with its translation",
		Args:  cobra.ExactArgs(1),
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

			word := args[0]
			if language == "" {
				language = translation.DetectLanguage(word)
			}

			id, err := store.Add(cmd.Context(), vocabulary.EntryInput{
				Word:        word,
				Translation: translationText,
				Context:     contextText,
				SourceURL:   sourceURL,
				Language:    language,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Saved %q (id %d)\n", word, id)
			return nil
		},
	}
	command.Flags().StringVarP(&translationText, "translation", "t", "", "translation of the word (required)")
	command.Flags().StringVarP(&contextText, "context", "c", "", "surrounding sentence the word was found in")
	command.Flags().StringVarP(&sourceURL, "url", "u", "", "origin page URL")
	command.Flags().StringVarP(&language, "language", "l", "", "source language code (detected when omitted)")
	_ = command.MarkFlagRequired("translation")

	return command
}

func newVocabularyListCommand() *cobra.Command {
	var limit, offset int
	command := &cobra.Command{
		Use:   "list",
		Short: "List saved vocabulary, most recent first",
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

			entries, err := store.List(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}

			printEntries(entries)
			return nil
		},
	}
	command.Flags().IntVar(&limit, "limit", 100, "maximum number of entries to show")
	command.Flags().IntVar(&offset, "offset", 0, "number of entries to skip")

	return command
}

func newVocabularySearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search vocabulary by word or translation",
		Args:  cobra.ExactArgs(1),
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

			entries, err := store.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Printf("No entries match %q\n", args[0])
				return nil
			}
			printEntries(entries)
			return nil
		},
	}
}

func newVocabularyDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a vocabulary entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
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

			if err := store.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted entry %d\n", id)
			return nil
		},
	}
}

func newVocabularyExportCommand() *cobra.Command {
	var outputPath string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export all vocabulary as JSON",
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

			entries, err := store.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("json.MarshalIndent > %w", err)
			}

			if outputPath == "" {
				outputPath = fmt.Sprintf("remword-vocabulary-%s.json", time.Now().Format("2006-01-02"))
			}
			if outputPath == "-" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("os.WriteFile > %w", err)
			}
			fmt.Printf("Exported %d entries to %s\n", len(entries), outputPath)
			return nil
		},
	}
	command.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (- for stdout)")

	return command
}

func newVocabularyImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import vocabulary from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile > %w", err)
			}

			var entries []vocabulary.EntryInput
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("invalid file format: expected a JSON array of vocabulary entries: %w", err)
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

			imported, err := store.ImportEntries(cmd.Context(), entries)
			if err != nil {
				return err
			}
			fmt.Printf("Successfully imported %d vocabulary items\n", imported)
			return nil
		},
	}
}

func printEntries(entries []vocabulary.Entry) {
	for _, entry := range entries {
		added := time.UnixMilli(entry.Timestamp).Format("2006-01-02 15:04")
		fmt.Printf("%5d  %-24s %-24s %s  %s\n",
			entry.ID, entry.Word, entry.Translation, entry.Language, added)
		if entry.Context != "" {
			fmt.Printf("       %s\n", entry.Context)
		}
	}
}

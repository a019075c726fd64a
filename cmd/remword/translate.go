package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonggx/remword/internal/settings"
	"github.com/simonggx/remword/internal/translation"
	"github.com/simonggx/remword/internal/vocabulary"
)

func newTranslateCommand() *cobra.Command {
	var targetLang, sourceLang, contextText, sourceURL string
	var save, define bool
	command := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text and optionally save it to the vocabulary",
		Args:  cobra.MinimumNArgs(1),
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

			if targetLang == "" {
				userSettings, err := settings.NewDBRepository(db).Get(cmd.Context())
				if err != nil {
					return err
				}
				targetLang = userSettings.TargetLanguage
			}

			client := translation.NewClient(cfg.Translation)
			defer func() {
				_ = client.Close()
			}()

			text := strings.Join(args, " ")
			return runTranslate(cmd.Context(), client, store, translateParams{
				text:       text,
				targetLang: targetLang,
				sourceLang: sourceLang,
				context:    contextText,
				sourceURL:  sourceURL,
				save:       save,
				define:     define,
			})
		},
	}
	command.Flags().StringVar(&targetLang, "target", "", "target language code (defaults to the configured setting)")
	command.Flags().StringVar(&sourceLang, "source", "auto", "source language code")
	command.Flags().BoolVar(&save, "save", false, "save the word and translation to the vocabulary")
	command.Flags().BoolVar(&define, "define", false, "also look up dictionary definitions (English only)")
	command.Flags().StringVarP(&contextText, "context", "c", "", "surrounding sentence to store with --save")
	command.Flags().StringVarP(&sourceURL, "url", "u", "", "origin page URL to store with --save")

	return command
}

type translateParams struct {
	text       string
	targetLang string
	sourceLang string
	context    string
	sourceURL  string
	save       bool
	define     bool
}

func runTranslate(ctx context.Context, client translation.Translator, store vocabulary.Store, params translateParams) error {
	detected := translation.DetectLanguage(params.text)

	result, err := client.Translate(ctx, params.text, params.targetLang, params.sourceLang)
	if err != nil {
		return fmt.Errorf("client.Translate() > %w", err)
	}

	fmt.Printf("%s -> %s\n", params.text, result.TranslatedText)
	fmt.Printf("Detected language: %s, confidence: %.2f\n", detected, result.Confidence)
	if result.Confidence == 0 {
		fmt.Println("Warning: all translation services failed; this result is a placeholder.")
	}

	if params.define && detected == "en" {
		definition, err := client.WordDefinition(ctx, params.text)
		if err != nil {
			return fmt.Errorf("client.WordDefinition() > %w", err)
		}
		printDefinition(definition)
	}

	if params.save {
		id, err := store.Add(ctx, vocabulary.EntryInput{
			Word:        params.text,
			Translation: result.TranslatedText,
			Context:     params.context,
			SourceURL:   params.sourceURL,
			Language:    detected,
		})
		if err != nil {
			return fmt.Errorf("store.Add() > %w", err)
		}
		fmt.Printf("Saved to vocabulary (id %d)\n", id)
	}
	return nil
}

func printDefinition(definition *translation.WordDefinition) {
	if definition == nil {
		fmt.Println("No dictionary entry found.")
		return
	}
	if definition.Phonetic != "" {
		fmt.Printf("Phonetic: %s\n", definition.Phonetic)
	}
	for _, block := range definition.Definitions {
		fmt.Printf("[%s]\n", block.PartOfSpeech)
		for _, sense := range block.Definitions {
			fmt.Printf("  - %s\n", sense)
		}
	}
}

package translation

import "context"

//go:generate mockgen -source=interface.go -destination=../mocks/translation/mock_translator.go -package=mock_translation Translator

// Translator resolves text to translations and dictionary definitions.
type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (Result, error)
	WordDefinition(ctx context.Context, word string) (*WordDefinition, error)
}

var _ Translator = (*Client)(nil)

// Package practice turns stored vocabulary into quiz questions and grades
// answers, writing outcomes back through the vocabulary store.
package practice

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/simonggx/remword/internal/vocabulary"
)

// Mode identifies a quiz style.
type Mode string

const (
	ModeMultipleChoice Mode = "multiple-choice"
	ModeFillBlank      Mode = "fill-blank"
	ModeMatching       Mode = "matching"
	ModeContext        Mode = "context"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMultipleChoice, ModeFillBlank, ModeMatching, ModeContext:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown practice mode: %q", s)
}

// Title returns the human-readable name of a mode.
func (m Mode) Title() string {
	switch m {
	case ModeMultipleChoice:
		return "Multiple Choice Practice"
	case ModeFillBlank:
		return "Fill in the Blank"
	case ModeMatching:
		return "Word Matching"
	case ModeContext:
		return "Context Practice"
	}
	return "Practice Exercise"
}

// Question is one generated quiz item. It is never persisted.
type Question struct {
	Type          Mode
	Word          vocabulary.Entry
	Prompt        string
	Options       []string // multiple-choice only
	CorrectAnswer string
	Context       string
	Hint          string
}

const blankMarker = "_____"

// A context beneath this length is too thin to blank a word out of, so a
// templated sentence is synthesized instead.
const minContextLength = 10

var contextPrompts = []string{
	`Use %q in a sentence about daily life.`,
	`How would you use %q in a conversation?`,
	`Create a sentence using %q that shows its meaning.`,
	`Write a short phrase with %q in context.`,
}

// Generator builds questions from vocabulary entries.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator with a time-seeded random source.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewGeneratorWithSource creates a Generator with the given source, for
// deterministic tests.
func NewGeneratorWithSource(source rand.Source) *Generator {
	return &Generator{rng: rand.New(source)}
}

// Generate produces one question per entry in the batch.
func (g *Generator) Generate(mode Mode, batch []vocabulary.Entry) ([]Question, error) {
	questions := make([]Question, 0, len(batch))
	for _, word := range batch {
		var question Question
		switch mode {
		case ModeMultipleChoice:
			question = g.multipleChoice(word, batch)
		case ModeFillBlank:
			question = g.fillBlank(word)
		case ModeMatching:
			question = g.matching(word)
		case ModeContext:
			question = g.contextQuestion(word)
		default:
			return nil, fmt.Errorf("unknown practice mode: %q", mode)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// multipleChoice picks up to 3 distractor translations from the other
// entries in the batch and shuffles them together with the correct one.
// Small batches yield fewer options; a single-word batch yields one.
func (g *Generator) multipleChoice(word vocabulary.Entry, batch []vocabulary.Entry) Question {
	distractors := make([]string, 0, len(batch)-1)
	for _, other := range batch {
		if other.ID != word.ID {
			distractors = append(distractors, other.Translation)
		}
	}
	g.rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > 3 {
		distractors = distractors[:3]
	}

	options := append(distractors, word.Translation)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		Type:          ModeMultipleChoice,
		Word:          word,
		Prompt:        fmt.Sprintf("What is the translation of %q?", word.Word),
		Options:       options,
		CorrectAnswer: word.Translation,
		Context:       word.Context,
	}
}

// fillBlank blanks the word out of its saved context, or synthesizes a
// templated sentence when the context is missing or too short.
func (g *Generator) fillBlank(word vocabulary.Entry) Question {
	if utf8.RuneCountInString(word.Context) < minContextLength {
		sentence := fmt.Sprintf("The word %s means %s.", blankMarker, word.Translation)
		return Question{
			Type:          ModeFillBlank,
			Word:          word,
			Prompt:        fmt.Sprintf("Complete the sentence: %q", sentence),
			CorrectAnswer: word.Word,
			Context:       sentence,
		}
	}

	return Question{
		Type:          ModeFillBlank,
		Word:          word,
		Prompt:        "Fill in the blank:",
		CorrectAnswer: word.Word,
		Context:       blankOutWord(word.Context, word.Word),
	}
}

// blankOutWord replaces the first case-insensitive whole-word occurrence of
// word in text with the blank marker. Text without a match is returned
// unchanged. Candidate windows are compared in place with EqualFold;
// lowercasing a copy first would shift byte offsets for runes whose
// lowercase form has a different length.
func blankOutWord(text, word string) string {
	wordRunes := utf8.RuneCountInString(word)

	for start := 0; start < len(text); {
		end := start
		runes := 0
		for runes < wordRunes && end < len(text) {
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
			runes++
		}
		if runes < wordRunes {
			break
		}

		if strings.EqualFold(text[start:end], word) && isWordBoundary(text, start, end) {
			return text[:start] + blankMarker + text[end:]
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}
	return text
}

func isWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (g *Generator) matching(word vocabulary.Entry) Question {
	return Question{
		Type:          ModeMatching,
		Word:          word,
		Prompt:        fmt.Sprintf("Match the word with its translation: %s", word.Word),
		CorrectAnswer: word.Translation,
		Context:       word.Context,
	}
}

func (g *Generator) contextQuestion(word vocabulary.Entry) Question {
	template := contextPrompts[g.rng.Intn(len(contextPrompts))]
	return Question{
		Type:          ModeContext,
		Word:          word,
		Prompt:        fmt.Sprintf(template, word.Word),
		CorrectAnswer: word.Translation,
		Context:       word.Context,
		Hint:          fmt.Sprintf("Hint: %s means %s", word.Word, word.Translation),
	}
}

// Grade reports whether an answer is correct for this question.
// Multiple-choice, fill-blank and matching compare case-insensitively
// against the correct answer. Context questions only check that the
// submitted sentence contains the word; the check is deliberately lenient
// and not meaning-aware.
func (q Question) Grade(answer string) bool {
	answer = strings.TrimSpace(answer)
	switch q.Type {
	case ModeContext:
		return strings.Contains(strings.ToLower(answer), strings.ToLower(q.Word.Word))
	default:
		return strings.EqualFold(answer, q.CorrectAnswer)
	}
}

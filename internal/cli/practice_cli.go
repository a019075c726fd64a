// Package cli contains the interactive terminal loops.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/simonggx/remword/internal/practice"
	"github.com/simonggx/remword/internal/vocabulary"
)

// PracticeCLI runs one practice session on a terminal.
type PracticeCLI struct {
	store     vocabulary.Store
	generator *practice.Generator
	input     *bufio.Reader
	output    io.Writer
	bold      *color.Color
	correct   *color.Color
	incorrect *color.Color
}

// NewPracticeCLI creates a PracticeCLI reading answers from input and
// writing prompts to output.
func NewPracticeCLI(store vocabulary.Store, generator *practice.Generator, input io.Reader, output io.Writer) *PracticeCLI {
	return &PracticeCLI{
		store:     store,
		generator: generator,
		input:     bufio.NewReader(input),
		output:    output,
		bold:      color.New(color.Bold),
		correct:   color.New(color.FgGreen),
		incorrect: color.New(color.FgRed),
	}
}

// Run samples a word batch, runs a session over it question by question,
// and prints the final score. An empty batch prints a "nothing to
// practice" message and returns nil.
func (cli *PracticeCLI) Run(ctx context.Context, mode practice.Mode, wordCount int) error {
	batch, err := cli.store.RandomForPractice(ctx, wordCount, true)
	if err != nil {
		return fmt.Errorf("store.RandomForPractice() > %w", err)
	}

	session, err := practice.NewSession(ctx, cli.generator, mode, batch, cli.store)
	if errors.Is(err, practice.ErrNoVocabulary) {
		fmt.Fprintln(cli.output, "No vocabulary available for practice. Please add some words first!")
		return nil
	}
	if err != nil {
		return fmt.Errorf("practice.NewSession() > %w", err)
	}

	fmt.Fprintf(cli.output, "%s\n", cli.bold.Sprint(mode.Title()))
	fmt.Fprintf(cli.output, "Starting session with %d questions\n\n", len(session.Questions))

	for session.CurrentState() == practice.StateInProgress {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		question := session.Current()
		fmt.Fprintf(cli.output, "[%d/%d] %s\n", session.Index()+1, len(session.Questions), question.Prompt)
		if question.Type == practice.ModeFillBlank && question.Context != "" {
			fmt.Fprintf(cli.output, "  %s\n", question.Context)
		}
		if question.Hint != "" {
			fmt.Fprintf(cli.output, "  %s\n", question.Hint)
		}
		for i, option := range question.Options {
			fmt.Fprintf(cli.output, "  %c. %s\n", 'A'+i, option)
		}

		answer, err := cli.readAnswer(question)
		if err != nil {
			return fmt.Errorf("readAnswer > %w", err)
		}

		result, err := session.Grade(ctx, answer)
		if err != nil {
			return fmt.Errorf("session.Grade() > %w", err)
		}

		if result.Correct {
			fmt.Fprintf(cli.output, "%s\n\n", cli.correct.Sprint("Correct!"))
		} else {
			fmt.Fprintf(cli.output, "%s The correct answer is: %s\n\n",
				cli.incorrect.Sprint("Incorrect."), result.CorrectAnswer)
		}
	}

	total := len(session.Questions)
	accuracy := int(float64(session.Score()) / float64(total) * 100)
	fmt.Fprintf(cli.output, "Practice complete! %d/%d correct (%d%%)\n", session.Score(), total, accuracy)
	return nil
}

// readAnswer reads one line; for multiple choice, a single option letter is
// accepted in place of the full answer.
func (cli *PracticeCLI) readAnswer(question *practice.Question) (string, error) {
	fmt.Fprint(cli.output, "> ")
	line, err := cli.input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("input.ReadString > %w", err)
	}
	answer := strings.TrimSpace(line)

	if question.Type == practice.ModeMultipleChoice && len(answer) == 1 {
		index := int(strings.ToUpper(answer)[0] - 'A')
		if index >= 0 && index < len(question.Options) {
			return question.Options[index], nil
		}
	}
	return answer, nil
}

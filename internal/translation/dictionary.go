package translation

import (
	"context"
	"fmt"
	"log/slog"
)

// Definition is one part-of-speech block of a dictionary entry, capped at
// two senses.
type Definition struct {
	PartOfSpeech string   `json:"partOfSpeech"`
	Definitions  []string `json:"definitions"`
}

// WordDefinition is the normalized dictionary lookup result.
type WordDefinition struct {
	Word        string       `json:"word"`
	Phonetic    string       `json:"phonetic"`
	Definitions []Definition `json:"definitions"`
	SourceURLs  []string     `json:"sourceUrls"`
}

// https://dictionaryapi.dev/
type dictionaryEntry struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
	SourceURLs []string `json:"sourceUrls"`
}

// WordDefinition looks up an English word in the dictionary endpoint and
// returns a normalized entry, or nil on any failure. Lookup errors never
// propagate to the caller.
func (c *Client) WordDefinition(ctx context.Context, word string) (*WordDefinition, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&[]dictionaryEntry{}).
		Get(fmt.Sprintf("%s/api/v2/entries/en/%s", c.cfg.DictionaryURL, escapePathSegment(word)))
	if err != nil {
		slog.Default().Warn("Dictionary API failed", "error", err, "word", word)
		return nil, nil
	}
	if response.IsError() {
		slog.Default().Warn("Dictionary API failed",
			"status", response.StatusCode(), "word", word)
		return nil, nil
	}

	entries := response.Result().(*[]dictionaryEntry)
	if entries == nil || len(*entries) == 0 {
		return nil, nil
	}

	entry := (*entries)[0]
	definitions := make([]Definition, 0, len(entry.Meanings))
	for _, meaning := range entry.Meanings {
		senses := make([]string, 0, 2)
		for _, def := range meaning.Definitions {
			if len(senses) == 2 {
				break
			}
			senses = append(senses, def.Definition)
		}
		definitions = append(definitions, Definition{
			PartOfSpeech: meaning.PartOfSpeech,
			Definitions:  senses,
		})
	}

	return &WordDefinition{
		Word:        entry.Word,
		Phonetic:    entry.Phonetic,
		Definitions: definitions,
		SourceURLs:  entry.SourceURLs,
	}, nil
}

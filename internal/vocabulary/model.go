// Package vocabulary provides the vocabulary domain models and store.
package vocabulary

import "time"

// Entry represents one saved word/translation pair captured from a page.
type Entry struct {
	ID          int64  `db:"id" json:"id"`
	Word        string `db:"word" json:"word"`
	Translation string `db:"translation" json:"translation"`
	Context     string `db:"context" json:"context"`
	SourceURL   string `db:"source_url" json:"sourceUrl"`
	Timestamp   int64  `db:"timestamp" json:"timestamp"`
	Language    string `db:"language" json:"language"`
}

// EntryInput carries the caller-provided fields for a new entry.
// ID and Timestamp are assigned by the store on insert.
type EntryInput struct {
	Word        string `json:"word" validate:"required"`
	Translation string `json:"translation" validate:"required"`
	Context     string `json:"context"`
	SourceURL   string `json:"sourceUrl"`
	Language    string `json:"language"`
}

// Progress tracks all-time practice accuracy for a single word.
type Progress struct {
	WordID         int64 `db:"word_id" json:"wordId"`
	CorrectAnswers int   `db:"correct_answers" json:"correctAnswers"`
	TotalAttempts  int   `db:"total_attempts" json:"totalAttempts"`
	MasteryLevel   int   `db:"mastery_level" json:"masteryLevel"`
	LastPracticed  int64 `db:"last_practiced" json:"lastPracticed"`
}

// MasteredThreshold is the mastery level at and above which a word is
// excluded from practice sampling.
const MasteredThreshold = 4

// minAttemptsForMastery is the attempt count required before the mastery
// level is computed; below it the level stays 0.
const minAttemptsForMastery = 5

// Stats aggregates progress across all tracked words.
type Stats struct {
	TotalWords      int `json:"totalWords"`
	MasteredWords   int `json:"masteredWords"`
	AverageAccuracy int `json:"averageAccuracy"`
	TotalAttempts   int `json:"totalAttempts"`
	CorrectAnswers  int `json:"correctAnswers"`
}

// DailyCount is the number of vocabulary entries added on one calendar day.
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

// ErrValidation reports a rejected entry input, e.g. a missing word or
// translation. Batch operations skip the item instead of aborting.
var ErrValidation = errors.New("invalid vocabulary entry")

// Store defines operations over vocabulary entries and progress records.
type Store interface {
	Add(ctx context.Context, input EntryInput) (int64, error)
	List(ctx context.Context, limit, offset int) ([]Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)
	Search(ctx context.Context, term string) ([]Entry, error)
	Delete(ctx context.Context, id int64) error
	UpdateProgress(ctx context.Context, wordID int64, correct bool, exerciseType string) (*Progress, error)
	GetProgress(ctx context.Context, wordID int64) (*Progress, error)
	RandomForPractice(ctx context.Context, count int, excludeMastered bool) ([]Entry, error)
	ProgressStats(ctx context.Context) (Stats, error)
	WeeklyProgress(ctx context.Context, now time.Time) ([]DailyCount, error)
	LogSession(ctx context.Context, exerciseType string) error
	ClearAll(ctx context.Context) error
	ImportEntries(ctx context.Context, entries []EntryInput) (int, error)
}

// DBStore implements Store using SQLite.
type DBStore struct {
	db       *sqlx.DB
	validate *validator.Validate
	rng      *rand.Rand
	now      func() time.Time
}

var _ Store = (*DBStore)(nil)

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{
		db:       db,
		validate: validator.New(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Add validates and inserts a new entry, returning its assigned id.
// Language defaults to "en". Repeated identical words create separate entries.
func (s *DBStore) Add(ctx context.Context, input EntryInput) (int64, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if input.Language == "" {
		input.Language = "en"
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO vocabulary (word, translation, context, source_url, timestamp, language)
		VALUES (?, ?, ?, ?, ?, ?)`,
		input.Word, input.Translation, input.Context, input.SourceURL,
		s.now().UnixMilli(), input.Language)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext(insert vocabulary) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result.LastInsertId() > %w", err)
	}
	return id, nil
}

// List returns entries ordered by timestamp descending, most recent first.
// Ties are broken by id so one snapshot always orders consistently.
func (s *DBStore) List(ctx context.Context, limit, offset int) ([]Entry, error) {
	entries := []Entry{}
	if err := s.db.SelectContext(ctx, &entries,
		"SELECT * FROM vocabulary ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?",
		limit, offset); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocabulary) > %w", err)
	}
	return entries, nil
}

// ListAll returns the entire vocabulary, most recent first.
func (s *DBStore) ListAll(ctx context.Context) ([]Entry, error) {
	entries := []Entry{}
	if err := s.db.SelectContext(ctx, &entries,
		"SELECT * FROM vocabulary ORDER BY timestamp DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocabulary) > %w", err)
	}
	return entries, nil
}

// Search returns entries whose word or translation contains the term,
// case-insensitively. The scan happens in Go because SQLite's LIKE and
// lower() only fold ASCII.
func (s *DBStore) Search(ctx context.Context, term string) ([]Entry, error) {
	entries, err := s.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListAll() > %w", err)
	}

	term = strings.ToLower(term)
	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Word), term) ||
			strings.Contains(strings.ToLower(entry.Translation), term) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// Delete removes an entry. Deleting an unknown id is a no-op.
func (s *DBStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM vocabulary WHERE id = ?", id); err != nil {
		return fmt.Errorf("db.ExecContext(delete vocabulary) > %w", err)
	}
	return nil
}

// UpdateProgress records one grading event for a word and returns the
// updated record. The first call for a word creates it with zeroed counters.
// The mastery level is recomputed from all-time accuracy once the word has
// been attempted at least five times.
func (s *DBStore) UpdateProgress(ctx context.Context, wordID int64, correct bool, exerciseType string) (*Progress, error) {
	progress, err := s.GetProgress(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("store.GetProgress() > %w", err)
	}
	if progress == nil {
		progress = &Progress{WordID: wordID}
	}

	progress.TotalAttempts++
	if correct {
		progress.CorrectAnswers++
	}
	progress.LastPracticed = s.now().UnixMilli()

	if progress.TotalAttempts >= minAttemptsForMastery {
		accuracy := float64(progress.CorrectAnswers) / float64(progress.TotalAttempts)
		progress.MasteryLevel = int(math.Floor(accuracy * 5))
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO user_progress (word_id, correct_answers, total_attempts, mastery_level, last_practiced)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(word_id) DO UPDATE SET
			correct_answers = excluded.correct_answers,
			total_attempts = excluded.total_attempts,
			mastery_level = excluded.mastery_level,
			last_practiced = excluded.last_practiced`,
		progress.WordID, progress.CorrectAnswers, progress.TotalAttempts,
		progress.MasteryLevel, progress.LastPracticed); err != nil {
		return nil, fmt.Errorf("db.ExecContext(upsert user_progress) > %w", err)
	}
	return progress, nil
}

// GetProgress returns the progress record for a word, or nil if none exists.
func (s *DBStore) GetProgress(ctx context.Context, wordID int64) (*Progress, error) {
	var progress Progress
	err := s.db.GetContext(ctx, &progress,
		"SELECT * FROM user_progress WHERE word_id = ?", wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user_progress) > %w", err)
	}
	return &progress, nil
}

// RandomForPractice returns up to count entries in shuffled order. When
// excludeMastered is set, words at mastery level 4 or above are filtered
// out first. Fewer than count eligible words returns all of them; a
// count of zero or below returns none.
func (s *DBStore) RandomForPractice(ctx context.Context, count int, excludeMastered bool) ([]Entry, error) {
	if count < 0 {
		count = 0
	}
	entries, err := s.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListAll() > %w", err)
	}

	if excludeMastered {
		var masteredIDs []int64
		if err := s.db.SelectContext(ctx, &masteredIDs,
			"SELECT word_id FROM user_progress WHERE mastery_level >= ?",
			MasteredThreshold); err != nil {
			return nil, fmt.Errorf("db.SelectContext(mastered word ids) > %w", err)
		}
		mastered := make(map[int64]struct{}, len(masteredIDs))
		for _, id := range masteredIDs {
			mastered[id] = struct{}{}
		}

		eligible := make([]Entry, 0, len(entries))
		for _, entry := range entries {
			if _, ok := mastered[entry.ID]; !ok {
				eligible = append(eligible, entry)
			}
		}
		entries = eligible
	}

	s.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	if count < len(entries) {
		entries = entries[:count]
	}
	return entries, nil
}

// ProgressStats aggregates all progress records. Zero attempts yields an
// accuracy of 0 rather than a division error.
func (s *DBStore) ProgressStats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.db.GetContext(ctx, &stats, `SELECT
			COUNT(*) AS totalwords,
			COALESCE(SUM(CASE WHEN mastery_level >= ? THEN 1 ELSE 0 END), 0) AS masteredwords,
			COALESCE(SUM(total_attempts), 0) AS totalattempts,
			COALESCE(SUM(correct_answers), 0) AS correctanswers,
			0 AS averageaccuracy
		FROM user_progress`, MasteredThreshold)
	if err != nil {
		return Stats{}, fmt.Errorf("db.GetContext(progress stats) > %w", err)
	}
	if stats.TotalAttempts > 0 {
		stats.AverageAccuracy = int(math.Round(float64(stats.CorrectAnswers) / float64(stats.TotalAttempts) * 100))
	}
	return stats, nil
}

// WeeklyProgress counts entries added on each of the trailing 7 local
// calendar days including today, oldest day first.
func (s *DBStore) WeeklyProgress(ctx context.Context, now time.Time) ([]DailyCount, error) {
	var timestamps []int64
	if err := s.db.SelectContext(ctx, &timestamps,
		"SELECT timestamp FROM vocabulary"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocabulary timestamps) > %w", err)
	}

	weekly := make([]DailyCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		startMs := dayStart.UnixMilli()
		endMs := dayStart.AddDate(0, 0, 1).UnixMilli() - 1

		count := 0
		for _, ts := range timestamps {
			if ts >= startMs && ts <= endMs {
				count++
			}
		}
		weekly = append(weekly, DailyCount{Date: dayStart, Count: count})
	}
	return weekly, nil
}

// LogSession appends one practice session record.
func (s *DBStore) LogSession(ctx context.Context, exerciseType string) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO practice_sessions (timestamp, exercise_type) VALUES (?, ?)",
		s.now().UnixMilli(), exerciseType); err != nil {
		return fmt.Errorf("db.ExecContext(insert practice_session) > %w", err)
	}
	return nil
}

// ClearAll empties vocabulary, progress and session logs in one
// transaction, so either all three clear or none do.
func (s *DBStore) ClearAll(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"vocabulary", "practice_sessions", "user_progress"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("tx.ExecContext(delete %s) > %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// ImportEntries adds every entry with a non-empty word and translation,
// silently skipping malformed items, and returns the number imported.
func (s *DBStore) ImportEntries(ctx context.Context, entries []EntryInput) (int, error) {
	imported := 0
	for _, entry := range entries {
		if _, err := s.Add(ctx, entry); err != nil {
			if errors.Is(err, ErrValidation) {
				continue
			}
			return imported, fmt.Errorf("store.Add() > %w", err)
		}
		imported++
	}
	return imported, nil
}

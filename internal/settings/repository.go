// Package settings persists the process-wide user settings record.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

// Settings is the single process-wide settings record. It is overwritten
// wholesale on every save.
type Settings struct {
	TargetLanguage    string `db:"target_language" json:"targetLanguage" validate:"required"`
	AutoTranslate     bool   `db:"auto_translate" json:"autoTranslate"`
	ShowDefinitions   bool   `db:"show_definitions" json:"showDefinitions"`
	PracticeReminders bool   `db:"practice_reminders" json:"practiceReminders"`
	DailyGoal         int    `db:"daily_goal" json:"dailyGoal" validate:"min=1"`
}

// Defaults returns the settings applied on first use.
func Defaults() Settings {
	return Settings{
		TargetLanguage:    "zh",
		AutoTranslate:     true,
		ShowDefinitions:   true,
		PracticeReminders: true,
		DailyGoal:         10,
	}
}

// Repository defines read and overwrite access to the settings record.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) error
}

// DBRepository implements Repository using SQLite.
type DBRepository struct {
	db       *sqlx.DB
	validate *validator.Validate
}

var _ Repository = (*DBRepository)(nil)

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		db:       db,
		validate: validator.New(),
	}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (r *DBRepository) Get(ctx context.Context) (Settings, error) {
	var s Settings
	err := r.db.GetContext(ctx, &s,
		"SELECT target_language, auto_translate, show_definitions, practice_reminders, daily_goal FROM settings WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("db.GetContext(settings) > %w", err)
	}
	return s, nil
}

// Update validates and overwrites all five fields atomically.
func (r *DBRepository) Update(ctx context.Context, s Settings) error {
	if err := r.validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (id, target_language, auto_translate, show_definitions, practice_reminders, daily_goal)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			target_language = excluded.target_language,
			auto_translate = excluded.auto_translate,
			show_definitions = excluded.show_definitions,
			practice_reminders = excluded.practice_reminders,
			daily_goal = excluded.daily_goal`,
		s.TargetLanguage, s.AutoTranslate, s.ShowDefinitions, s.PracticeReminders, s.DailyGoal); err != nil {
		return fmt.Errorf("db.ExecContext(upsert settings) > %w", err)
	}
	return nil
}

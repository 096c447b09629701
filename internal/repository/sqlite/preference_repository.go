package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/turkuspot/spotbot/internal/domain"
)

// PreferenceRepository implements domain.PreferenceRepository using SQLite
type PreferenceRepository struct {
	db *Database
}

// NewPreferenceRepository creates a new PreferenceRepository
func NewPreferenceRepository(db *Database) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Upsert creates or partially updates a preference row. Only fields present
// in the update touch an existing row; last_active is refreshed on every
// call. The whole write runs in a transaction and rolls back on any fault.
func (r *PreferenceRepository) Upsert(pseudonym string, update domain.PreferenceUpdate) error {
	conn, err := r.db.Acquire()
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer r.db.Release(conn)

	ctx := context.Background()
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	now := time.Now().Format(domain.TimeLayout)

	var exists string
	err = tx.QueryRowContext(ctx, `SELECT pseudonym FROM user_preferences WHERE pseudonym = ?`, pseudonym).Scan(&exists)
	switch {
	case err == sql.ErrNoRows:
		err = r.insert(ctx, tx, pseudonym, update, now)
	case err == nil:
		err = r.update(ctx, tx, pseudonym, update, now)
	default:
		err = fmt.Errorf("failed to look up preferences: %w", err)
	}

	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit preferences: %w", err)
	}

	return nil
}

func (r *PreferenceRepository) insert(ctx context.Context, tx *sql.Tx, pseudonym string, update domain.PreferenceUpdate, now string) error {
	query := `
		INSERT INTO user_preferences (pseudonym, consent, last_active, age, gender, occupation, time_in_turku, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var consent interface{}
	if update.Consent != nil {
		consent = boolToInt(*update.Consent)
	}

	_, err := tx.ExecContext(ctx, query,
		pseudonym,
		consent,
		now,
		orSentinel(update.Age),
		orSentinel(update.Gender),
		orSentinel(update.Occupation),
		orSentinel(update.TimeInTurku),
		orDefault(update.Language, "en"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert preferences: %w", err)
	}

	return nil
}

func (r *PreferenceRepository) update(ctx context.Context, tx *sql.Tx, pseudonym string, update domain.PreferenceUpdate, now string) error {
	setParts := []string{}
	params := []interface{}{}

	if update.Consent != nil {
		setParts = append(setParts, "consent = ?")
		params = append(params, boolToInt(*update.Consent))
	}
	if update.Age != nil {
		setParts = append(setParts, "age = ?")
		params = append(params, *update.Age)
	}
	if update.Gender != nil {
		setParts = append(setParts, "gender = ?")
		params = append(params, *update.Gender)
	}
	if update.Occupation != nil {
		setParts = append(setParts, "occupation = ?")
		params = append(params, *update.Occupation)
	}
	if update.TimeInTurku != nil {
		setParts = append(setParts, "time_in_turku = ?")
		params = append(params, *update.TimeInTurku)
	}
	if update.Language != nil {
		setParts = append(setParts, "language = ?")
		params = append(params, *update.Language)
	}

	setParts = append(setParts, "last_active = ?")
	params = append(params, now)
	params = append(params, pseudonym)

	query := fmt.Sprintf("UPDATE user_preferences SET %s WHERE pseudonym = ?", strings.Join(setParts, ", "))

	if _, err := tx.ExecContext(ctx, query, params...); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	return nil
}

// Get retrieves a preference row by pseudonym
func (r *PreferenceRepository) Get(pseudonym string) (*domain.PreferenceRecord, error) {
	conn, err := r.db.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer r.db.Release(conn)

	query := `
		SELECT pseudonym, consent, last_active, age, gender, occupation, time_in_turku, language
		FROM user_preferences
		WHERE pseudonym = ?
	`

	rec := &domain.PreferenceRecord{}
	var consent sql.NullInt64
	var lastActive, age, gender, occupation, timeInTurku, language sql.NullString

	err = conn.QueryRowContext(context.Background(), query, pseudonym).Scan(
		&rec.Pseudonym,
		&consent,
		&lastActive,
		&age,
		&gender,
		&occupation,
		&timeInTurku,
		&language,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	if consent.Valid {
		v := intToBool(int(consent.Int64))
		rec.Consent = &v
	}
	rec.LastActive = lastActive.String
	rec.Age = age.String
	rec.Gender = gender.String
	rec.Occupation = occupation.String
	rec.TimeInTurku = timeInTurku.String
	rec.Language = language.String

	return rec, nil
}

// CompleteProfile returns the four demographic fields only when every one
// of them is present and not the "not provided" sentinel
func (r *PreferenceRepository) CompleteProfile(pseudonym string) (*domain.DemographicProfile, error) {
	conn, err := r.db.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer r.db.Release(conn)

	query := `
		SELECT age, gender, occupation, time_in_turku
		FROM user_preferences
		WHERE pseudonym = ? AND
		      age IS NOT NULL AND age != ? AND
		      gender IS NOT NULL AND gender != ? AND
		      occupation IS NOT NULL AND occupation != ? AND
		      time_in_turku IS NOT NULL AND time_in_turku != ?
	`

	profile := &domain.DemographicProfile{}
	err = conn.QueryRowContext(context.Background(), query,
		pseudonym,
		domain.NotProvided, domain.NotProvided, domain.NotProvided, domain.NotProvided,
	).Scan(
		&profile.Age,
		&profile.Gender,
		&profile.Occupation,
		&profile.TimeInTurku,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}

	return profile, nil
}

// Language retrieves the stored language for a pseudonym, empty if unset
func (r *PreferenceRepository) Language(pseudonym string) (string, error) {
	conn, err := r.db.Acquire()
	if err != nil {
		return "", fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer r.db.Release(conn)

	var language sql.NullString
	err = conn.QueryRowContext(context.Background(),
		`SELECT language FROM user_preferences WHERE pseudonym = ?`, pseudonym).Scan(&language)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get language: %w", err)
	}

	return language.String, nil
}

// Helper functions
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

func orSentinel(s *string) string {
	if s != nil {
		return *s
	}
	return domain.NotProvided
}

func orDefault(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}

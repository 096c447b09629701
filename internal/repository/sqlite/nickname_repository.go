package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/turkuspot/spotbot/internal/domain"
)

// NicknameRepository implements domain.NicknameRepository using SQLite
type NicknameRepository struct {
	db *Database
}

// NewNicknameRepository creates a new NicknameRepository
func NewNicknameRepository(db *Database) *NicknameRepository {
	return &NicknameRepository{db: db}
}

// Get retrieves the pseudonym for an external identity, returning an empty
// string when no mapping exists
func (r *NicknameRepository) Get(externalID string) (string, error) {
	conn, err := r.db.Acquire()
	if err != nil {
		return "", fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer r.db.Release(conn)

	query := `SELECT pseudonym FROM user_nicknames WHERE external_id = ?`

	var pseudonym string
	err = conn.QueryRowContext(context.Background(), query, externalID).Scan(&pseudonym)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get pseudonym: %w", err)
	}

	return pseudonym, nil
}

// Create persists a new identity-to-pseudonym mapping
func (r *NicknameRepository) Create(rec *domain.PseudonymRecord) error {
	conn, err := r.db.Acquire()
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer r.db.Release(conn)

	query := `INSERT INTO user_nicknames (external_id, pseudonym, created_at) VALUES (?, ?, ?)`

	_, err = conn.ExecContext(context.Background(), query,
		rec.ExternalID,
		rec.Pseudonym,
		rec.CreatedAt.Format(domain.TimeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create pseudonym mapping: %w", err)
	}

	return nil
}

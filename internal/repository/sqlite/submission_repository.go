package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/turkuspot/spotbot/internal/domain"
)

// SubmissionRepository implements domain.SubmissionRepository using SQLite
type SubmissionRepository struct {
	db *Database
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *Database) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Append inserts a submission row and returns its assigned id
func (r *SubmissionRepository) Append(rec *domain.SubmissionRecord) (int64, error) {
	conn, err := r.db.Acquire()
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer r.db.Release(conn)

	query := `
		INSERT INTO submissions (pseudonym, submission_type, standard_selections, custom_inputs,
		                         latitude, longitude, venue_title, venue_address, additional_info, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := conn.ExecContext(context.Background(), query,
		rec.Pseudonym,
		string(rec.Type),
		rec.StandardSelections,
		rec.CustomInputs,
		rec.Latitude,
		rec.Longitude,
		rec.VenueTitle,
		rec.VenueAddress,
		rec.AdditionalInfo,
		rec.Timestamp,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get submission id: %w", err)
	}
	rec.ID = id

	return id, nil
}

// ExportRows returns every submission joined with the submitter's current
// demographics, ordered by insertion
func (r *SubmissionRepository) ExportRows() ([]domain.ExportRow, error) {
	conn, err := r.db.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer r.db.Release(conn)

	query := `
		SELECT s.id, s.pseudonym, s.submission_type, s.standard_selections, s.custom_inputs,
		       s.latitude, s.longitude, s.venue_title, s.venue_address, s.additional_info,
		       p.age, p.gender, p.occupation, p.time_in_turku, s.timestamp
		FROM submissions s
		LEFT JOIN user_preferences p ON s.pseudonym = p.pseudonym
		ORDER BY s.id
	`

	rows, err := conn.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var result []domain.ExportRow
	for rows.Next() {
		var row domain.ExportRow
		var selections, custom, lat, lon, title, address, info sql.NullString
		var age, gender, occupation, timeInTurku sql.NullString

		err := rows.Scan(
			&row.ID,
			&row.Pseudonym,
			&row.Type,
			&selections,
			&custom,
			&lat,
			&lon,
			&title,
			&address,
			&info,
			&age,
			&gender,
			&occupation,
			&timeInTurku,
			&row.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}

		row.StandardSelections = selections.String
		row.CustomInputs = custom.String
		row.Latitude = lat.String
		row.Longitude = lon.String
		row.VenueTitle = title.String
		row.VenueAddress = address.String
		row.AdditionalInfo = info.String
		row.Age = age.String
		row.Gender = gender.String
		row.Occupation = occupation.String
		row.TimeInTurku = timeInTurku.String

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}

	return result, nil
}

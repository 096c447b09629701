package domain

import "time"

// NotProvided is the sentinel stored for demographic fields the user chose
// not to answer.
const NotProvided = "Not provided"

// FieldSeparator joins multiple selections or custom inputs inside a single
// submission column.
const FieldSeparator = ";"

// TimeLayout is how timestamps are written to the durable store.
const TimeLayout = "2006-01-02 15:04:05"

// SubmissionType distinguishes the two kinds of report a submission row
// can carry.
type SubmissionType string

const (
	SubmissionIssue       SubmissionType = "issue"
	SubmissionImprovement SubmissionType = "improvement"
)

// PseudonymRecord maps an external identity to its generated pseudonym.
// Immutable once written.
type PseudonymRecord struct {
	ExternalID string
	Pseudonym  string
	CreatedAt  time.Time
}

// PreferenceRecord is the durable per-pseudonym profile.
type PreferenceRecord struct {
	Pseudonym   string
	Consent     *bool
	LastActive  string
	Age         string
	Gender      string
	Occupation  string
	TimeInTurku string
	Language    string
}

// PreferenceUpdate carries a partial profile update. Nil fields are left
// untouched on existing rows.
type PreferenceUpdate struct {
	Consent     *bool
	Age         *string
	Gender      *string
	Occupation  *string
	TimeInTurku *string
	Language    *string
}

// DemographicProfile is the four-field snapshot returned when a pseudonym
// has answered every demographic question.
type DemographicProfile struct {
	Age         string
	Gender      string
	Occupation  string
	TimeInTurku string
}

// SubmissionRecord is one completed report. Append-only; never updated.
type SubmissionRecord struct {
	ID                 int64
	Pseudonym          string
	Type               SubmissionType
	StandardSelections string
	CustomInputs       string
	Latitude           string
	Longitude          string
	VenueTitle         string
	VenueAddress       string
	AdditionalInfo     string
	Timestamp          string
}

// ExportRow is a submission joined with its preference snapshot, in the
// column order of the CSV export.
type ExportRow struct {
	ID                 int64
	Pseudonym          string
	Type               string
	StandardSelections string
	CustomInputs       string
	Latitude           string
	Longitude          string
	VenueTitle         string
	VenueAddress       string
	AdditionalInfo     string
	Age                string
	Gender             string
	Occupation         string
	TimeInTurku        string
	Timestamp          string
}

// NicknameRepository defines the interface for pseudonym storage.
type NicknameRepository interface {
	Get(externalID string) (string, error)
	Create(rec *PseudonymRecord) error
}

// PreferenceRepository defines the interface for profile storage.
type PreferenceRepository interface {
	Upsert(pseudonym string, update PreferenceUpdate) error
	Get(pseudonym string) (*PreferenceRecord, error)
	CompleteProfile(pseudonym string) (*DemographicProfile, error)
	Language(pseudonym string) (string, error)
}

// SubmissionRepository defines the interface for submission storage.
type SubmissionRepository interface {
	Append(rec *SubmissionRecord) (int64, error)
	ExportRows() ([]ExportRow, error)
}

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/turkuspot/spotbot/internal/anonymizer"
	"github.com/turkuspot/spotbot/internal/domain"
)

// ReportService owns the durable side of the intake flow: pseudonym
// resolution, profile checkpoints and final submission writes.
type ReportService struct {
	anonymizer  *anonymizer.Anonymizer
	preferences domain.PreferenceRepository
	submissions domain.SubmissionRepository
}

// NewReportService creates a new ReportService
func NewReportService(anon *anonymizer.Anonymizer, prefs domain.PreferenceRepository, subs domain.SubmissionRepository) *ReportService {
	return &ReportService{
		anonymizer:  anon,
		preferences: prefs,
		submissions: subs,
	}
}

// Pseudonym resolves the stable pseudonym for an external identity
func (s *ReportService) Pseudonym(externalID string) string {
	return s.anonymizer.Resolve(externalID)
}

// SaveLanguage persists the user's language choice immediately
func (s *ReportService) SaveLanguage(externalID, language string) error {
	pseudonym := s.anonymizer.Resolve(externalID)
	if err := s.preferences.Upsert(pseudonym, domain.PreferenceUpdate{Language: &language}); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	return nil
}

// SaveConsent persists a consent decision as soon as it is made
func (s *ReportService) SaveConsent(externalID string, consent bool) error {
	pseudonym := s.anonymizer.Resolve(externalID)
	if err := s.preferences.Upsert(pseudonym, domain.PreferenceUpdate{Consent: &consent}); err != nil {
		return fmt.Errorf("failed to save consent: %w", err)
	}
	return nil
}

// SaveDemographics writes the four demographic answers, substituting the
// not-provided sentinel for unanswered ones
func (s *ReportService) SaveDemographics(externalID string, profile domain.DemographicProfile) error {
	pseudonym := s.anonymizer.Resolve(externalID)
	update := domain.PreferenceUpdate{
		Age:         orNotProvided(profile.Age),
		Gender:      orNotProvided(profile.Gender),
		Occupation:  orNotProvided(profile.Occupation),
		TimeInTurku: orNotProvided(profile.TimeInTurku),
	}
	if err := s.preferences.Upsert(pseudonym, update); err != nil {
		return fmt.Errorf("failed to save demographics: %w", err)
	}
	return nil
}

// HasConsent reports whether consent=true is on record for this identity
func (s *ReportService) HasConsent(externalID string) (bool, error) {
	pseudonym := s.anonymizer.Resolve(externalID)
	rec, err := s.preferences.Get(pseudonym)
	if err != nil {
		return false, fmt.Errorf("failed to read consent: %w", err)
	}
	if rec == nil || rec.Consent == nil {
		return false, nil
	}
	return *rec.Consent, nil
}

// CompleteProfile returns the stored demographics when all four are on
// file, nil otherwise
func (s *ReportService) CompleteProfile(externalID string) (*domain.DemographicProfile, error) {
	pseudonym := s.anonymizer.Resolve(externalID)
	profile, err := s.preferences.CompleteProfile(pseudonym)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}
	return profile, nil
}

// StoredLanguage returns the language saved for this identity, empty when
// the user has never been seen
func (s *ReportService) StoredLanguage(externalID string) (string, error) {
	pseudonym := s.anonymizer.Resolve(externalID)
	language, err := s.preferences.Language(pseudonym)
	if err != nil {
		return "", fmt.Errorf("failed to read language: %w", err)
	}
	return language, nil
}

// Submit writes a completed report. A "both" session produces two
// submission rows sharing one timestamp. Demographics are written with the
// profile checkpoint unless a complete profile is already on file, in which
// case only consent is refreshed.
func (s *ReportService) Submit(externalID string, sess *domain.Session) error {
	pseudonym := s.anonymizer.Resolve(externalID)

	profile, err := s.preferences.CompleteProfile(pseudonym)
	if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}

	update := domain.PreferenceUpdate{Consent: &sess.Consent, Language: &sess.Language}
	if profile == nil {
		update.Age = orNotProvided(sess.Age)
		update.Gender = orNotProvided(sess.Gender)
		update.Occupation = orNotProvided(sess.Occupation)
		update.TimeInTurku = orNotProvided(sess.TimeInTurku)
	}
	if err := s.preferences.Upsert(pseudonym, update); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	timestamp := time.Now().Format(domain.TimeLayout)

	for _, rec := range buildRecords(pseudonym, sess, timestamp) {
		id, err := s.submissions.Append(rec)
		if err != nil {
			return fmt.Errorf("failed to save submission: %w", err)
		}
		if id <= 0 {
			return fmt.Errorf("submission row was not assigned an id")
		}
	}

	return nil
}

func buildRecords(pseudonym string, sess *domain.Session, timestamp string) []*domain.SubmissionRecord {
	var records []*domain.SubmissionRecord

	if sess.ActionType == domain.ActionIssue || sess.ActionType == domain.ActionBoth {
		records = append(records, buildRecord(pseudonym, sess, domain.SubmissionIssue,
			sess.IssueTypes, sess.CustomIssues, timestamp))
	}
	if sess.ActionType == domain.ActionImprovement || sess.ActionType == domain.ActionBoth {
		records = append(records, buildRecord(pseudonym, sess, domain.SubmissionImprovement,
			sess.ImprovementTypes, sess.CustomImprovements, timestamp))
	}

	return records
}

func buildRecord(pseudonym string, sess *domain.Session, kind domain.SubmissionType, standard, custom []string, timestamp string) *domain.SubmissionRecord {
	rec := &domain.SubmissionRecord{
		Pseudonym:          pseudonym,
		Type:               kind,
		StandardSelections: strings.Join(standard, domain.FieldSeparator),
		CustomInputs:       strings.Join(custom, domain.FieldSeparator),
		AdditionalInfo:     sess.AdditionalInfo,
		Timestamp:          timestamp,
	}

	if sess.Location != nil {
		rec.Latitude = sess.Location.LatitudeString()
		rec.Longitude = sess.Location.LongitudeString()
		rec.VenueTitle = sess.Location.VenueTitle
		rec.VenueAddress = sess.Location.VenueAddress
	}

	return rec
}

func orNotProvided(value string) *string {
	if value == "" {
		v := domain.NotProvided
		return &v
	}
	return &value
}

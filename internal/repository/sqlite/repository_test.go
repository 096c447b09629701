package sqlite

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turkuspot/spotbot/internal/domain"
)

func testDatabase(t *testing.T) *Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := New(dsn, 2, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestNicknameRoundtrip(t *testing.T) {
	db := testDatabase(t)
	repo := NewNicknameRepository(db)

	got, err := repo.Get("42")
	require.NoError(t, err)
	assert.Empty(t, got)

	err = repo.Create(&domain.PseudonymRecord{
		ExternalID: "42",
		Pseudonym:  "BraveFox007",
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)

	got, err = repo.Get("42")
	require.NoError(t, err)
	assert.Equal(t, "BraveFox007", got)
}

func TestNicknameIsUniquePerIdentity(t *testing.T) {
	db := testDatabase(t)
	repo := NewNicknameRepository(db)

	require.NoError(t, repo.Create(&domain.PseudonymRecord{
		ExternalID: "42", Pseudonym: "BraveFox007", CreatedAt: time.Now(),
	}))
	err := repo.Create(&domain.PseudonymRecord{
		ExternalID: "42", Pseudonym: "CalmOwl001", CreatedAt: time.Now(),
	})
	assert.Error(t, err)
}

func TestPreferenceInsertFillsSentinels(t *testing.T) {
	db := testDatabase(t)
	repo := NewPreferenceRepository(db)

	err := repo.Upsert("BraveFox007", domain.PreferenceUpdate{Consent: boolPtr(true)})
	require.NoError(t, err)

	rec, err := repo.Get("BraveFox007")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.Consent)
	assert.True(t, *rec.Consent)
	assert.Equal(t, domain.NotProvided, rec.Age)
	assert.Equal(t, domain.NotProvided, rec.Gender)
	assert.Equal(t, domain.NotProvided, rec.Occupation)
	assert.Equal(t, domain.NotProvided, rec.TimeInTurku)
	assert.Equal(t, "en", rec.Language)
	assert.NotEmpty(t, rec.LastActive)
}

func TestPreferencePartialUpdateKeepsOtherFields(t *testing.T) {
	db := testDatabase(t)
	repo := NewPreferenceRepository(db)

	require.NoError(t, repo.Upsert("BraveFox007", domain.PreferenceUpdate{
		Consent:     boolPtr(true),
		Age:         strPtr("26-40"),
		Gender:      strPtr("Other"),
		Occupation:  strPtr("Student"),
		TimeInTurku: strPtr("1-3 years"),
		Language:    strPtr("fi"),
	}))

	require.NoError(t, repo.Upsert("BraveFox007", domain.PreferenceUpdate{
		Language: strPtr("sv"),
	}))

	rec, err := repo.Get("BraveFox007")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "sv", rec.Language)
	assert.Equal(t, "26-40", rec.Age)
	assert.Equal(t, "Other", rec.Gender)
	assert.Equal(t, "Student", rec.Occupation)
	assert.Equal(t, "1-3 years", rec.TimeInTurku)
	require.NotNil(t, rec.Consent)
	assert.True(t, *rec.Consent)
}

func TestPreferenceGetMissing(t *testing.T) {
	db := testDatabase(t)
	repo := NewPreferenceRepository(db)

	rec, err := repo.Get("NoSuchFox000")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCompleteProfileRequiresAllFourFields(t *testing.T) {
	db := testDatabase(t)
	repo := NewPreferenceRepository(db)

	require.NoError(t, repo.Upsert("BraveFox007", domain.PreferenceUpdate{
		Age:    strPtr("26-40"),
		Gender: strPtr("Other"),
	}))

	profile, err := repo.CompleteProfile("BraveFox007")
	require.NoError(t, err)
	assert.Nil(t, profile, "sentinel fields must not count as answered")

	require.NoError(t, repo.Upsert("BraveFox007", domain.PreferenceUpdate{
		Occupation:  strPtr("Student"),
		TimeInTurku: strPtr("1-3 years"),
	}))

	profile, err = repo.CompleteProfile("BraveFox007")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "26-40", profile.Age)
	assert.Equal(t, "Other", profile.Gender)
	assert.Equal(t, "Student", profile.Occupation)
	assert.Equal(t, "1-3 years", profile.TimeInTurku)
}

func TestLanguageLookup(t *testing.T) {
	db := testDatabase(t)
	repo := NewPreferenceRepository(db)

	lang, err := repo.Language("BraveFox007")
	require.NoError(t, err)
	assert.Empty(t, lang)

	require.NoError(t, repo.Upsert("BraveFox007", domain.PreferenceUpdate{Language: strPtr("uk")}))

	lang, err = repo.Language("BraveFox007")
	require.NoError(t, err)
	assert.Equal(t, "uk", lang)
}

func TestSubmissionAppendAssignsIDs(t *testing.T) {
	db := testDatabase(t)
	repo := NewSubmissionRepository(db)

	rec := &domain.SubmissionRecord{
		Pseudonym:          "BraveFox007",
		Type:               domain.SubmissionIssue,
		StandardSelections: "Litter in natural areas",
		Latitude:           "60.45",
		Longitude:          "22.27",
		Timestamp:          "2026-09-01 12:00:00",
	}
	id, err := repo.Append(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, int64(1), rec.ID)

	id, err = repo.Append(&domain.SubmissionRecord{
		Pseudonym: "BraveFox007",
		Type:      domain.SubmissionImprovement,
		Timestamp: "2026-09-01 12:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestExportRowsJoinDemographics(t *testing.T) {
	db := testDatabase(t)
	prefs := NewPreferenceRepository(db)
	subs := NewSubmissionRepository(db)

	require.NoError(t, prefs.Upsert("BraveFox007", domain.PreferenceUpdate{
		Age:         strPtr("26-40"),
		Gender:      strPtr("Other"),
		Occupation:  strPtr("Student"),
		TimeInTurku: strPtr("1-3 years"),
	}))

	_, err := subs.Append(&domain.SubmissionRecord{
		Pseudonym:          "BraveFox007",
		Type:               domain.SubmissionIssue,
		StandardSelections: "Illegal dumping",
		Latitude:           "60.45",
		Longitude:          "22.27",
		Timestamp:          "2026-09-01 12:00:00",
	})
	require.NoError(t, err)
	_, err = subs.Append(&domain.SubmissionRecord{
		Pseudonym: "CalmOwl001",
		Type:      domain.SubmissionImprovement,
		Timestamp: "2026-09-01 12:05:00",
	})
	require.NoError(t, err)

	rows, err := subs.ExportRows()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "BraveFox007", rows[0].Pseudonym)
	assert.Equal(t, "issue", rows[0].Type)
	assert.Equal(t, "26-40", rows[0].Age)
	assert.Equal(t, "1-3 years", rows[0].TimeInTurku)

	assert.Equal(t, "CalmOwl001", rows[1].Pseudonym)
	assert.Empty(t, rows[1].Age, "no preference row joined")
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationStringsEmptyWithoutCoords(t *testing.T) {
	loc := Location{VenueTitle: "market square"}
	assert.Empty(t, loc.LatitudeString())
	assert.Empty(t, loc.LongitudeString())

	loc = Location{Latitude: 60.45, Longitude: 22.27, HasCoords: true}
	assert.Equal(t, "60.45", loc.LatitudeString())
	assert.Equal(t, "22.27", loc.LongitudeString())
}

func TestAwaitingMultiSelectFollowsStep(t *testing.T) {
	sess := NewSession("en")
	assert.Equal(t, MultiSelectNone, sess.AwaitingMultiSelect())

	sess.Step = StepActionSelect
	assert.Equal(t, MultiSelectAction, sess.AwaitingMultiSelect())
	sess.Step = StepIssueSelect
	assert.Equal(t, MultiSelectIssue, sess.AwaitingMultiSelect())
	sess.Step = StepImprovementSelect
	assert.Equal(t, MultiSelectImprovement, sess.AwaitingMultiSelect())
	sess.Step = StepConfirm
	assert.Equal(t, MultiSelectNone, sess.AwaitingMultiSelect())
}

func TestResetKeepsLanguageOnly(t *testing.T) {
	sess := NewSession("fi")
	sess.Consent = true
	sess.Age = "26-40"
	sess.IssueTypes = []string{"x"}

	sess.Reset()

	assert.Equal(t, "fi", sess.Language)
	assert.Equal(t, StepMenu, sess.Step)
	assert.False(t, sess.Consent)
	assert.Empty(t, sess.Age)
	assert.Empty(t, sess.IssueTypes)
}

func TestResetKeepingProfile(t *testing.T) {
	sess := NewSession("fi")
	sess.Step = StepSubmitAnother
	sess.Consent = true
	sess.Age = "26-40"
	sess.Gender = "Other"
	sess.Occupation = "Student"
	sess.TimeInTurku = "1-3 years"
	sess.IssueTypes = []string{"x"}
	sess.Location = &Location{HasCoords: true}
	sess.AdditionalInfo = "notes"

	sess.ResetKeepingProfile()

	assert.Equal(t, "fi", sess.Language)
	assert.True(t, sess.Consent)
	assert.Equal(t, "26-40", sess.Age)
	assert.Equal(t, "1-3 years", sess.TimeInTurku)
	assert.Empty(t, sess.IssueTypes)
	assert.Nil(t, sess.Location)
	assert.Empty(t, sess.AdditionalInfo)
}

func TestClearActionData(t *testing.T) {
	sess := NewSession("en")
	sess.ActionType = ActionBoth
	sess.ActionChoices = []string{"a", "b"}
	sess.IssueTypes = []string{"x"}
	sess.CustomIssues = []string{"y"}
	sess.ImprovementTypes = []string{"z"}
	sess.CustomImprovements = []string{"w"}
	sess.Location = &Location{HasCoords: true}

	sess.ClearActionData()

	assert.Equal(t, ActionNone, sess.ActionType)
	assert.Empty(t, sess.ActionChoices)
	assert.Empty(t, sess.IssueTypes)
	assert.Empty(t, sess.CustomIssues)
	assert.Empty(t, sess.ImprovementTypes)
	assert.Empty(t, sess.CustomImprovements)
	assert.NotNil(t, sess.Location, "location is not action data")
}

package domain

import "strconv"

// Step identifies where in the intake wizard a session currently is.
type Step string

const (
	StepMenu              Step = "menu"
	StepLanguage          Step = "language_select"
	StepConsent           Step = "consent"
	StepConsentDeclined   Step = "consent_declined"
	StepLocation          Step = "location"
	StepActionSelect      Step = "action_select"
	StepIssueSelect       Step = "issue_select"
	StepImprovementSelect Step = "improvement_select"
	StepAdditionalInfo    Step = "additional_info"
	StepSocioGate         Step = "socio_gate"
	StepAge               Step = "age"
	StepGender            Step = "gender"
	StepOccupation        Step = "occupation"
	StepTimeInTurku       Step = "time_in_turku"
	StepConfirm           Step = "confirm"
	StepModifyMenu        Step = "modify_menu"
	StepSubmitAnother     Step = "submit_another"
)

// ActionType records what kind of report the user chose.
type ActionType string

const (
	ActionNone        ActionType = ""
	ActionIssue       ActionType = "issue"
	ActionImprovement ActionType = "improvement"
	ActionBoth        ActionType = "both"
)

// MultiSelectKind tags which multi-select accumulator a free-text message
// should land in. Derived from the current step rather than stored, so at
// most one accumulator is ever "awaiting".
type MultiSelectKind string

const (
	MultiSelectNone        MultiSelectKind = ""
	MultiSelectAction      MultiSelectKind = "action"
	MultiSelectIssue       MultiSelectKind = "issue"
	MultiSelectImprovement MultiSelectKind = "improvement"
)

// Location is a captured report location. HasCoords is false when the user
// typed a textual description instead of sending a map point; the text is
// kept in VenueTitle.
type Location struct {
	Latitude     float64
	Longitude    float64
	HasCoords    bool
	VenueTitle   string
	VenueAddress string
}

// LatitudeString returns the latitude as stored in durable records, empty
// for text-only locations.
func (l Location) LatitudeString() string {
	if !l.HasCoords {
		return ""
	}
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64)
}

// LongitudeString mirrors LatitudeString.
func (l Location) LongitudeString() string {
	if !l.HasCoords {
		return ""
	}
	return strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}

// Session is the ephemeral per-user wizard state. It lives in memory only;
// durable records are written at checkpoints.
type Session struct {
	Language string
	Step     Step

	Consent bool

	IsModifying              bool
	ReturningFromModify      bool
	ReturnToSummaryAfterBoth bool

	ActionChoices []string
	ActionType    ActionType

	IssueTypes         []string
	CustomIssues       []string
	ImprovementTypes   []string
	CustomImprovements []string

	Location       *Location
	AdditionalInfo string

	Age         string
	Gender      string
	Occupation  string
	TimeInTurku string

	// transient single-select cursors, valid only while the matching
	// keyboard is open
	AgeSelected         *int
	GenderSelected      *int
	OccupationSelected  *int
	TimeInTurkuSelected *int
}

// NewSession returns a fresh session in the given language.
func NewSession(language string) *Session {
	return &Session{Language: language, Step: StepMenu}
}

// AwaitingMultiSelect reports which accumulator free text should be routed
// to at the current step.
func (s *Session) AwaitingMultiSelect() MultiSelectKind {
	switch s.Step {
	case StepActionSelect:
		return MultiSelectAction
	case StepIssueSelect:
		return MultiSelectIssue
	case StepImprovementSelect:
		return MultiSelectImprovement
	}
	return MultiSelectNone
}

// Reset collapses the session to its language only, as after a declined
// consent restart or a finished submit-another=no path.
func (s *Session) Reset() {
	*s = Session{Language: s.Language, Step: StepMenu}
}

// ResetKeepingProfile discards the in-progress report but retains consent,
// demographics and language, for the submit-another=yes loop.
func (s *Session) ResetKeepingProfile() {
	*s = Session{
		Language:    s.Language,
		Step:        s.Step,
		Consent:     s.Consent,
		Age:         s.Age,
		Gender:      s.Gender,
		Occupation:  s.Occupation,
		TimeInTurku: s.TimeInTurku,
	}
}

// ClearActionData drops everything the action/issue/improvement steps
// accumulated, used when the modify flow re-enters the action selection.
func (s *Session) ClearActionData() {
	s.ActionType = ActionNone
	s.ActionChoices = nil
	s.IssueTypes = nil
	s.CustomIssues = nil
	s.ImprovementTypes = nil
	s.CustomImprovements = nil
}

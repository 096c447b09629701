package flow

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turkuspot/spotbot/internal/anonymizer"
	"github.com/turkuspot/spotbot/internal/catalog"
	"github.com/turkuspot/spotbot/internal/domain"
	"github.com/turkuspot/spotbot/internal/repository/sqlite"
	"github.com/turkuspot/spotbot/internal/service"
	"github.com/turkuspot/spotbot/internal/session"
)

type prompt struct {
	text    string
	options []Option
}

type fakeRenderer struct {
	texts   []string
	prompts []prompt
	edits   [][]Option
	answers []string
}

func (r *fakeRenderer) SendText(chatID int64, text string) error {
	r.texts = append(r.texts, text)
	return nil
}

func (r *fakeRenderer) SendOptions(chatID int64, text string, options []Option) error {
	r.prompts = append(r.prompts, prompt{text: text, options: options})
	return nil
}

func (r *fakeRenderer) EditOptions(chatID int64, messageID int, options []Option) error {
	r.edits = append(r.edits, options)
	return nil
}

func (r *fakeRenderer) ClearOptions(chatID int64, messageID int) error {
	return nil
}

func (r *fakeRenderer) AnswerCallback(callbackID, text string) error {
	r.answers = append(r.answers, text)
	return nil
}

func (r *fakeRenderer) lastText() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

func (r *fakeRenderer) lastAnswer() string {
	if len(r.answers) == 0 {
		return ""
	}
	return r.answers[len(r.answers)-1]
}

type harness struct {
	t           *testing.T
	engine      *Engine
	render      *fakeRenderer
	sessions    session.Store
	reports     *service.ReportService
	submissions *sqlite.SubmissionRepository
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sqlite.New(dsn, 2, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	nicknames := sqlite.NewNicknameRepository(db)
	preferences := sqlite.NewPreferenceRepository(db)
	submissions := sqlite.NewSubmissionRepository(db)
	reports := service.NewReportService(anonymizer.New(nicknames), preferences, submissions)

	render := &fakeRenderer{}
	sessions := session.NewMemoryStore()
	engine := NewEngine(sessions, reports, render, "en")

	return &harness{
		t:           t,
		engine:      engine,
		render:      render,
		sessions:    sessions,
		reports:     reports,
		submissions: submissions,
	}
}

func (h *harness) start() {
	h.engine.HandleEvent(Event{ChatID: 1, ExternalID: "42", Command: "start"})
}

func (h *harness) press(data string) {
	h.engine.HandleEvent(Event{
		ChatID:     1,
		ExternalID: "42",
		Callback:   &Callback{ID: "cb", MessageID: 7, Data: data},
	})
}

func (h *harness) text(text string) {
	h.engine.HandleEvent(Event{ChatID: 1, ExternalID: "42", Text: text})
}

func (h *harness) sendLocation(lat, lon float64) {
	h.engine.HandleEvent(Event{
		ChatID:     1,
		ExternalID: "42",
		Location:   &domain.Location{Latitude: lat, Longitude: lon, HasCoords: true},
	})
}

func (h *harness) session() *domain.Session {
	sess, ok := h.sessions.Get(1)
	require.True(h.t, ok)
	return sess
}

func (h *harness) step() domain.Step {
	return h.session().Step
}

// driveToConfirm walks the happy path of a single issue report up to the
// confirmation step
func (h *harness) driveToConfirm() {
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	h.sendLocation(60.45, 22.27)
	h.press("action_0")
	h.press("action_done")
	h.press("issue_7") // Litter in natural areas
	h.press("issue_done")
	h.press("skip_additional_info")
	h.press("socio_yes")
	h.press("age_1")
	h.press("age_done")
	h.press("gender_2")
	h.press("gender_done")
	h.press("occupation_2")
	h.press("occupation_done")
	h.press("time_1")
	h.press("time_done")
	require.Equal(h.t, domain.StepConfirm, h.step())
}

func TestStartAsksLanguageForUnknownUser(t *testing.T) {
	h := newHarness(t)
	h.start()

	assert.Equal(t, domain.StepLanguage, h.step())
	require.NotEmpty(t, h.render.prompts)
	last := h.render.prompts[len(h.render.prompts)-1]
	assert.Len(t, last.options, len(catalog.Languages()))
}

func TestStartSkipsLanguageForKnownUser(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.reports.SaveLanguage("42", "fi"))

	h.start()

	assert.Equal(t, domain.StepMenu, h.step())
	assert.Equal(t, "fi", h.session().Language)
}

func TestFullIssueFlowPersistsSubmission(t *testing.T) {
	h := newHarness(t)
	h.driveToConfirm()
	h.press("confirm_yes")

	assert.Equal(t, domain.StepSubmitAnother, h.step())

	rows, err := h.submissions.ExportRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "issue", row.Type)
	assert.Equal(t, "Litter in natural areas", row.StandardSelections)
	assert.Equal(t, "60.45", row.Latitude)
	assert.Equal(t, "22.27", row.Longitude)
	assert.Equal(t, "26-40", row.Age)
	assert.Equal(t, "Other", row.Gender)
	assert.Equal(t, "Student", row.Occupation)
	assert.Equal(t, "1-3 years", row.TimeInTurku)
}

func TestConsentDeclineDeadEndsUntilRestart(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_1")

	assert.Equal(t, domain.StepConsentDeclined, h.step())

	// nothing but restart moves the flow
	h.press("menu_report")
	h.sendLocation(60.45, 22.27)
	assert.Equal(t, domain.StepConsentDeclined, h.step())

	h.press("restart_bot")
	assert.Equal(t, domain.StepConsent, h.step())
}

func TestMultiSelectToggleIsInvolutive(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	h.sendLocation(60.45, 22.27)
	h.press("action_0")
	h.press("action_done")

	h.press("issue_0")
	assert.Equal(t, []string{"Smoke from fire or burning"}, h.session().IssueTypes)

	h.press("issue_0")
	assert.Empty(t, h.session().IssueTypes)
}

func TestDoneOnEmptyMultiSelectNeverAdvances(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	h.sendLocation(60.45, 22.27)
	h.press("action_0")
	h.press("action_done")

	h.press("issue_done")
	assert.Equal(t, domain.StepIssueSelect, h.step())
	assert.Equal(t, catalog.Text("en", catalog.KeySelectAtLeastOne), h.render.lastAnswer())

	// custom free text alone satisfies the gate
	h.text("overflowing compost")
	h.press("issue_done")
	assert.Equal(t, domain.StepAdditionalInfo, h.step())
}

func TestOtherSentinelRedirectsToFreeText(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	h.sendLocation(60.45, 22.27)
	h.press("action_0")
	h.press("action_done")

	list := catalog.Options("en", catalog.KeyIssueList)
	h.press(fmt.Sprintf("issue_%d", len(list)-1))

	assert.Empty(t, h.session().IssueTypes, "sentinel must not be selected")
	assert.Equal(t, catalog.Text("en", catalog.KeySpecifyOther), h.render.lastText())
}

func TestFreeTextLocationAccepted(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	h.text("behind the market square")

	assert.Equal(t, domain.StepActionSelect, h.step())
	loc := h.session().Location
	require.NotNil(t, loc)
	assert.False(t, loc.HasCoords)
	assert.Equal(t, "behind the market square", loc.VenueTitle)
}

func TestBothBranchVisitsListsSequentially(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	h.sendLocation(60.45, 22.27)
	h.press("action_0")
	h.press("action_1")
	h.press("action_done")

	assert.Equal(t, domain.ActionBoth, h.session().ActionType)
	assert.Equal(t, domain.StepIssueSelect, h.step())

	h.press("issue_6")
	h.press("issue_done")
	assert.Equal(t, domain.StepImprovementSelect, h.step())

	h.press("improvement_0")
	h.press("improvement_done")
	assert.Equal(t, domain.StepAdditionalInfo, h.step())
}

func TestBothSubmitWritesTwoRows(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	h.sendLocation(60.45, 22.27)
	h.press("action_0")
	h.press("action_1")
	h.press("action_done")
	h.press("issue_6")
	h.press("issue_done")
	h.press("improvement_0")
	h.press("improvement_done")
	h.press("skip_additional_info")
	h.press("socio_no")
	require.Equal(t, domain.StepConfirm, h.step())
	h.press("confirm_yes")

	rows, err := h.submissions.ExportRows()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "issue", rows[0].Type)
	assert.Equal(t, "improvement", rows[1].Type)
	assert.Equal(t, rows[0].Timestamp, rows[1].Timestamp)
}

func TestModifyOnlyLocationKeepsCategories(t *testing.T) {
	h := newHarness(t)
	h.driveToConfirm()

	h.press("confirm_modify")
	assert.Equal(t, domain.StepModifyMenu, h.step())

	h.press("modify_location")
	assert.Equal(t, domain.StepLocation, h.step())

	h.sendLocation(60.50, 22.30)
	assert.Equal(t, domain.StepConfirm, h.step(), "modify returns straight to the summary")
	assert.Equal(t, []string{"Litter in natural areas"}, h.session().IssueTypes)

	h.press("confirm_yes")
	rows, err := h.submissions.ExportRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Litter in natural areas", rows[0].StandardSelections)
	assert.Equal(t, "60.5", rows[0].Latitude)
	assert.Equal(t, "22.3", rows[0].Longitude)
}

func TestModifySingleDemographicShortCircuits(t *testing.T) {
	h := newHarness(t)
	h.driveToConfirm()

	h.press("confirm_modify")
	h.press("modify_socio")
	assert.Equal(t, domain.StepSocioGate, h.step())

	h.press("socio_yes")
	h.press("age_3")
	h.press("age_done")

	assert.Equal(t, domain.StepConfirm, h.step(), "other three answers already on file")
	assert.Equal(t, "Above 60", h.session().Age)

	profile, err := h.reports.CompleteProfile("42")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Above 60", profile.Age, "modified answer written durably before the summary")
}

func TestSubmitAnotherKeepsProfileAndSkipsSocio(t *testing.T) {
	h := newHarness(t)
	h.driveToConfirm()
	h.press("confirm_yes")
	require.Equal(t, domain.StepSubmitAnother, h.step())

	h.press("another_yes")
	assert.Equal(t, domain.StepLocation, h.step())
	assert.True(t, h.session().Consent, "consent survives the reset")
	assert.Empty(t, h.session().IssueTypes)
	assert.Nil(t, h.session().Location)

	h.sendLocation(60.46, 22.28)
	h.press("action_0")
	h.press("action_done")
	h.press("issue_6")
	h.press("issue_done")
	h.text("second report details")

	assert.Equal(t, domain.StepConfirm, h.step(), "complete profile skips the demographic chain")

	h.press("confirm_yes")
	rows, err := h.submissions.ExportRows()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSubmitAnotherNoCollapsesToMenu(t *testing.T) {
	h := newHarness(t)
	h.driveToConfirm()
	h.press("confirm_yes")
	h.press("another_no")

	assert.Equal(t, domain.StepMenu, h.step())
	assert.Contains(t, h.render.texts, catalog.Text("en", catalog.KeyThankYou))
	sess := h.session()
	assert.Equal(t, "en", sess.Language)
	assert.False(t, sess.Consent)
	assert.Empty(t, sess.Age)
}

func TestReportSkipsConsentWhenAlreadyOnRecord(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.reports.SaveLanguage("42", "en"))
	require.NoError(t, h.reports.SaveConsent("42", true))

	h.start()
	require.Equal(t, domain.StepMenu, h.step())
	h.press("menu_report")

	assert.Equal(t, domain.StepLocation, h.step())
	assert.True(t, h.session().Consent)
}

func TestUnsolicitedTextPromptsStart(t *testing.T) {
	h := newHarness(t)
	h.text("hello?")
	assert.Equal(t, catalog.Text("en", catalog.KeyUseStart), h.render.lastText())
}

func TestStaleCallbackIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.driveToConfirm()

	// a button from an earlier keyboard no longer matches the step
	h.press("consent_0")
	assert.Equal(t, domain.StepConfirm, h.step())
}

func TestSummaryListsAnswers(t *testing.T) {
	h := newHarness(t)
	h.driveToConfirm()

	var summary string
	for _, text := range h.render.texts {
		if strings.Contains(text, "Timestamp: ") {
			summary = text
		}
	}
	require.NotEmpty(t, summary)

	assert.Contains(t, summary, catalog.Text("en", catalog.KeyYourResponse))
	assert.Contains(t, summary, "Litter in natural areas")
	assert.Contains(t, summary, "60.45, 22.27")
	assert.Contains(t, summary, "Age: 26-40")
	assert.Contains(t, summary, "Occupation: Student")
}

func TestConsentOutOfRangeIndexIsRejected(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	require.Equal(t, domain.StepConsent, h.step())

	for _, data := range []string{"consent_-1", "consent_2", "consent_x"} {
		h.press(data)
		assert.Equal(t, domain.StepConsent, h.step(), "data=%s", data)
		assert.Equal(t, catalog.Text("en", catalog.KeyInvalidSelection), h.render.lastAnswer())
	}

	has, err := h.reports.HasConsent("42")
	require.NoError(t, err)
	assert.False(t, has, "a malformed index must not record a decline")
}

func TestNegativeSelectionIndexIsRejected(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	h.sendLocation(60.45, 22.27)

	h.press("action_-1")
	assert.Equal(t, domain.StepActionSelect, h.step())
	assert.Empty(t, h.session().ActionChoices)

	h.press("action_0")
	h.press("action_done")
	h.press("issue_-1")
	assert.Equal(t, domain.StepIssueSelect, h.step())
	assert.Empty(t, h.session().IssueTypes)
	assert.Equal(t, catalog.Text("en", catalog.KeyInvalidSelection), h.render.lastAnswer())
	assert.NotContains(t, h.render.texts, catalog.Text("en", catalog.KeyErrorOccurred))

	h.press("issue_6")
	h.press("issue_done")
	h.press("skip_additional_info")
	h.press("socio_yes")
	h.press("age_-1")
	assert.Equal(t, domain.StepAge, h.step())
	assert.Nil(t, h.session().AgeSelected)
	assert.NotContains(t, h.render.texts, catalog.Text("en", catalog.KeyErrorOccurred))
}

func TestUnsupportedPayloadRepromptsDuringLocationCapture(t *testing.T) {
	h := newHarness(t)
	h.start()
	h.press("lang_en")
	h.press("menu_report")
	h.press("consent_0")
	require.Equal(t, domain.StepLocation, h.step())

	h.engine.HandleEvent(Event{ChatID: 1, ExternalID: "42"})
	assert.Equal(t, domain.StepLocation, h.step())
	assert.Equal(t, catalog.Text("en", catalog.KeyPleaseSendLocation), h.render.lastText())

	// outside location capture the payload is dropped silently
	h.text("behind the market square")
	require.Equal(t, domain.StepActionSelect, h.step())
	before := len(h.render.texts)
	h.engine.HandleEvent(Event{ChatID: 1, ExternalID: "42"})
	assert.Len(t, h.render.texts, before)
}

func TestConfirmNoKeepsLanguageOnly(t *testing.T) {
	h := newHarness(t)
	h.driveToConfirm()

	h.press("confirm_no")

	assert.Equal(t, domain.StepConsent, h.step())
	sess := h.session()
	assert.Equal(t, "en", sess.Language)
	assert.False(t, sess.Consent)
	assert.Empty(t, sess.Age)
	assert.Empty(t, sess.Gender)
	assert.Empty(t, sess.Occupation)
	assert.Empty(t, sess.TimeInTurku)
	assert.Empty(t, sess.IssueTypes)
	assert.Nil(t, sess.Location)
}

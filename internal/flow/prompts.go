package flow

import (
	"fmt"
	"strings"
	"time"

	"github.com/turkuspot/spotbot/internal/catalog"
	"github.com/turkuspot/spotbot/internal/domain"
)

const selectedMark = "✔️ "

func (e *Engine) askMenu(chatID int64, sess *domain.Session) {
	lang := sess.Language
	e.send(chatID, catalog.Text(lang, catalog.KeyMenuOptions), []Option{
		{Label: catalog.Text(lang, catalog.KeyMenuReport), Data: "menu_report"},
		{Label: catalog.Text(lang, catalog.KeyMenuPrivacy), Data: "menu_privacy"},
		{Label: catalog.Text(lang, catalog.KeyMenuInfo), Data: "menu_info"},
		{Label: catalog.Text(lang, catalog.KeyMenuLanguage), Data: "menu_language"},
	})
}

func (e *Engine) askLanguage(chatID int64, sess *domain.Session) {
	var options []Option
	for _, code := range catalog.Languages() {
		options = append(options, Option{
			Label: catalog.LanguageName(code),
			Data:  "lang_" + code,
		})
	}
	e.send(chatID, catalog.Text(sess.Language, catalog.KeySelectLanguage), options)
}

func (e *Engine) askConsent(chatID int64, sess *domain.Session) {
	lang := sess.Language
	var options []Option
	for i, label := range catalog.Options(lang, catalog.KeyConsentOptions) {
		options = append(options, Option{Label: label, Data: fmt.Sprintf("consent_%d", i)})
	}
	e.send(chatID, catalog.Text(lang, catalog.KeyConsentPrompt), options)
}

func (e *Engine) showConsentDeclined(chatID int64, sess *domain.Session) {
	lang := sess.Language
	e.send(chatID, catalog.Text(lang, catalog.KeyConsentDeclined), []Option{
		{Label: catalog.Text(lang, catalog.KeyRestartButton), Data: "restart_bot"},
	})
}

func (e *Engine) askLocation(chatID int64, sess *domain.Session) {
	e.sendText(chatID, catalog.Text(sess.Language, catalog.KeyLocationRequest))
}

func (e *Engine) askAction(chatID int64, sess *domain.Session) {
	sess.ClearActionData()
	lang := sess.Language
	e.send(chatID, catalog.Text(lang, catalog.KeySelectAction), e.actionOptions(sess))
}

func (e *Engine) actionOptions(sess *domain.Session) []Option {
	return multiSelectOptions(sess.Language, catalog.KeyActionOptions, "action", sess.ActionChoices, false)
}

func (e *Engine) askIssues(chatID int64, sess *domain.Session) {
	lang := sess.Language
	e.send(chatID, catalog.Text(lang, catalog.KeyIssuePrompt), e.issueOptions(sess))
}

func (e *Engine) issueOptions(sess *domain.Session) []Option {
	return multiSelectOptions(sess.Language, catalog.KeyIssueList, "issue", sess.IssueTypes, true)
}

func (e *Engine) askImprovements(chatID int64, sess *domain.Session) {
	lang := sess.Language
	e.send(chatID, catalog.Text(lang, catalog.KeyImprovementPrompt), e.improvementOptions(sess))
}

func (e *Engine) improvementOptions(sess *domain.Session) []Option {
	return multiSelectOptions(sess.Language, catalog.KeyImprovementList, "improvement", sess.ImprovementTypes, true)
}

// multiSelectOptions renders a toggle keyboard. The last list entry is the
// free-text "other" sentinel when hasOther is set and never shows a mark.
func multiSelectOptions(lang, key, prefix string, selected []string, hasOther bool) []Option {
	list := catalog.Options(lang, key)
	var options []Option
	for i, label := range list {
		shown := label
		if contains(selected, label) && !(hasOther && i == len(list)-1) {
			shown = selectedMark + label
		}
		options = append(options, Option{Label: shown, Data: fmt.Sprintf("%s_%d", prefix, i)})
	}
	options = append(options, Option{
		Label: catalog.Text(lang, catalog.KeyDoneButton),
		Data:  prefix + "_done",
	})
	return options
}

func (e *Engine) askAdditionalInfo(chatID int64, sess *domain.Session) {
	lang := sess.Language
	e.send(chatID, catalog.Text(lang, catalog.KeyAdditionalInfo), []Option{
		{Label: catalog.Text(lang, catalog.KeySkipButton), Data: "skip_additional_info"},
	})
}

func (e *Engine) askSocioGate(chatID int64, sess *domain.Session) {
	lang := sess.Language
	labels := catalog.Options(lang, catalog.KeySocioOptions)
	e.send(chatID, catalog.Text(lang, catalog.KeySocioIntro), []Option{
		{Label: labels[0], Data: "socio_yes"},
		{Label: labels[1], Data: "socio_no"},
	})
}

func (e *Engine) askAge(chatID int64, sess *domain.Session) {
	e.send(chatID, catalog.Text(sess.Language, catalog.KeyAgeQuestion),
		singleSelectOptions(sess.Language, catalog.KeyAgeOptions, "age", sess.AgeSelected))
}

func (e *Engine) askGender(chatID int64, sess *domain.Session) {
	e.send(chatID, catalog.Text(sess.Language, catalog.KeyGenderQuestion),
		singleSelectOptions(sess.Language, catalog.KeyGenderOptions, "gender", sess.GenderSelected))
}

func (e *Engine) askOccupation(chatID int64, sess *domain.Session) {
	e.send(chatID, catalog.Text(sess.Language, catalog.KeyOccupationQuestion),
		singleSelectOptions(sess.Language, catalog.KeyOccupationOptions, "occupation", sess.OccupationSelected))
}

func (e *Engine) askTimeInTurku(chatID int64, sess *domain.Session) {
	e.send(chatID, catalog.Text(sess.Language, catalog.KeyTimeQuestion),
		singleSelectOptions(sess.Language, catalog.KeyTimeOptions, "time", sess.TimeInTurkuSelected))
}

// singleSelectOptions renders a cursor keyboard: one option marked at a
// time, confirmed by the done button.
func singleSelectOptions(lang, key, prefix string, cursor *int) []Option {
	var options []Option
	for i, label := range catalog.Options(lang, key) {
		shown := label
		if cursor != nil && *cursor == i {
			shown = selectedMark + label
		}
		options = append(options, Option{Label: shown, Data: fmt.Sprintf("%s_%d", prefix, i)})
	}
	options = append(options, Option{
		Label: catalog.Text(lang, catalog.KeyDoneButton),
		Data:  prefix + "_done",
	})
	return options
}

func (e *Engine) askModifyMenu(chatID int64, sess *domain.Session) {
	lang := sess.Language
	e.send(chatID, catalog.Text(lang, catalog.KeySelectModify), []Option{
		{Label: catalog.Text(lang, catalog.KeyModifyLocation), Data: "modify_location"},
		{Label: catalog.Text(lang, catalog.KeyModifyAction), Data: "modify_action"},
		{Label: catalog.Text(lang, catalog.KeyModifySocio), Data: "modify_socio"},
		{Label: catalog.Text(lang, catalog.KeyDoneButton), Data: "modify_done"},
	})
}

func (e *Engine) askSubmitAnother(chatID int64, sess *domain.Session) {
	lang := sess.Language
	labels := catalog.Options(lang, catalog.KeySubmitAnotherOptions)
	e.send(chatID, catalog.Text(lang, catalog.KeySubmitAnother), []Option{
		{Label: labels[0], Data: "another_yes"},
		{Label: labels[1], Data: "another_no"},
	})
}

// showSummary renders the deterministic submission summary followed by the
// confirmation choices. Entering the summary ends any modify excursion.
func (e *Engine) showSummary(chatID int64, sess *domain.Session) {
	sess.IsModifying = false
	sess.ReturningFromModify = false
	sess.ReturnToSummaryAfterBoth = false

	lang := sess.Language
	e.sendText(chatID, summaryText(sess))
	e.send(chatID, catalog.Text(lang, catalog.KeyConfirmResponses), []Option{
		{Label: catalog.Text(lang, catalog.KeyConfirmSubmission), Data: "confirm_yes"},
		{Label: catalog.Text(lang, catalog.KeyModifyResponses), Data: "confirm_modify"},
		{Label: catalog.Text(lang, catalog.KeyRestartButton), Data: "confirm_no"},
	})
}

// summaryText builds the ordered, language-specific summary of a session
func summaryText(sess *domain.Session) string {
	lang := sess.Language
	lines := []string{
		catalog.Text(lang, catalog.KeySubmissionSummary),
		"",
		catalog.Text(lang, catalog.KeyYourResponse),
	}

	if sess.ActionType == domain.ActionIssue || sess.ActionType == domain.ActionBoth {
		lines = append(lines, catalog.Label(lang, catalog.LabelIssueType)+": "+
			joinSelections(sess.IssueTypes, sess.CustomIssues))
	}
	if sess.ActionType == domain.ActionImprovement || sess.ActionType == domain.ActionBoth {
		lines = append(lines, catalog.Label(lang, catalog.LabelImprovementType)+": "+
			joinSelections(sess.ImprovementTypes, sess.CustomImprovements))
	}

	if sess.Location != nil {
		lines = append(lines, catalog.Label(lang, catalog.LabelLocation)+": "+formatLocation(sess.Location))
	}
	if sess.AdditionalInfo != "" {
		lines = append(lines, sess.AdditionalInfo)
	}

	for _, field := range []struct {
		label string
		value string
	}{
		{catalog.LabelAge, sess.Age},
		{catalog.LabelGender, sess.Gender},
		{catalog.LabelOccupation, sess.Occupation},
		{catalog.LabelTimeInTurku, sess.TimeInTurku},
	} {
		if field.value != "" && field.value != domain.NotProvided {
			lines = append(lines, catalog.Label(lang, field.label)+": "+field.value)
		}
	}

	lines = append(lines, "", "Timestamp: "+time.Now().Format(domain.TimeLayout))
	return strings.Join(lines, "\n")
}

func joinSelections(standard, custom []string) string {
	all := append(append([]string{}, standard...), custom...)
	return strings.Join(all, ", ")
}

func formatLocation(loc *domain.Location) string {
	if loc.VenueTitle != "" {
		if loc.VenueAddress != "" {
			return loc.VenueTitle + ", " + loc.VenueAddress
		}
		return loc.VenueTitle
	}
	return loc.LatitudeString() + ", " + loc.LongitudeString()
}

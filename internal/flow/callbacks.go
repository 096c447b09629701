package flow

import (
	"log"
	"strings"

	"github.com/turkuspot/spotbot/internal/catalog"
	"github.com/turkuspot/spotbot/internal/domain"
)

func (e *Engine) handleCallback(ev Event) {
	cb := ev.Callback

	sess, ok := e.sessions.Get(ev.ChatID)
	if !ok {
		e.answer(cb.ID, catalog.Text(e.defaultLang, catalog.KeyUseStart))
		return
	}

	switch cb.Data {
	case "restart_bot":
		e.handleRestart(ev, sess)
		return
	case "back_to_menu":
		e.handleBackToMenu(ev, sess)
		return
	case "skip_additional_info":
		e.handleSkipInfo(ev, sess)
		return
	}

	tag, rest, found := strings.Cut(cb.Data, "_")
	if !found {
		e.answer(cb.ID, "")
		return
	}

	switch tag {
	case "lang":
		e.handleLanguagePick(ev, sess, rest)
	case "menu":
		e.handleMenu(ev, sess, rest)
	case "consent":
		e.handleConsent(ev, sess, rest)
	case "action":
		e.handleActionSelect(ev, sess, rest)
	case "issue":
		e.handleIssueSelect(ev, sess, rest)
	case "improvement":
		e.handleImprovementSelect(ev, sess, rest)
	case "socio":
		e.handleSocioGate(ev, sess, rest)
	case "age", "gender", "occupation", "time":
		e.handleDemographic(ev, sess, tag, rest)
	case "confirm":
		e.handleConfirm(ev, sess, rest)
	case "modify":
		e.handleModify(ev, sess, rest)
	case "another":
		e.handleAnother(ev, sess, rest)
	default:
		e.answer(cb.ID, "")
	}
}

func (e *Engine) handleRestart(ev Event, sess *domain.Session) {
	if sess.Step != domain.StepConsentDeclined {
		e.answer(ev.Callback.ID, "")
		return
	}
	e.answer(ev.Callback.ID, "")
	e.clear(ev.ChatID, ev.Callback.MessageID)

	*sess = domain.Session{Language: sess.Language, Step: domain.StepConsentDeclined}
	e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyWelcome))
	e.fireOrReport(ev, sess, evRestart)
}

func (e *Engine) handleBackToMenu(ev Event, sess *domain.Session) {
	if sess.Step != domain.StepMenu {
		e.answer(ev.Callback.ID, "")
		return
	}
	e.answer(ev.Callback.ID, "")
	e.askMenu(ev.ChatID, sess)
}

func (e *Engine) handleSkipInfo(ev Event, sess *domain.Session) {
	if sess.Step != domain.StepAdditionalInfo {
		e.answer(ev.Callback.ID, "")
		return
	}
	e.answer(ev.Callback.ID, "")
	e.clear(ev.ChatID, ev.Callback.MessageID)
	sess.AdditionalInfo = ""
	e.afterAdditionalInfo(ev, sess)
}

func (e *Engine) handleLanguagePick(ev Event, sess *domain.Session, code string) {
	if sess.Step != domain.StepLanguage || !catalog.Supported(code) {
		e.answer(ev.Callback.ID, "")
		return
	}
	sess.Language = code
	if err := e.reports.SaveLanguage(ev.ExternalID, code); err != nil {
		log.Printf("Failed to save language for chat %d: %v", ev.ChatID, err)
	}
	e.answer(ev.Callback.ID, "")
	e.clear(ev.ChatID, ev.Callback.MessageID)
	e.sendText(ev.ChatID, catalog.Text(code, catalog.KeyLanguageSelected))
	e.fireOrReport(ev, sess, evToMenu)
}

func (e *Engine) handleMenu(ev Event, sess *domain.Session, choice string) {
	if sess.Step != domain.StepMenu {
		e.answer(ev.Callback.ID, "")
		return
	}
	e.answer(ev.Callback.ID, "")
	lang := sess.Language

	switch choice {
	case "report":
		consented := sess.Consent
		if !consented {
			stored, err := e.reports.HasConsent(ev.ExternalID)
			if err != nil {
				log.Printf("Failed to read consent for chat %d: %v", ev.ChatID, err)
			}
			consented = stored
		}
		if consented {
			sess.Consent = true
			e.fireOrReport(ev, sess, evStartReportConsented)
		} else {
			e.fireOrReport(ev, sess, evStartReport)
		}
	case "privacy":
		text := catalog.Text(lang, catalog.KeyPrivacyTitle) + "\n\n" + catalog.Text(lang, catalog.KeyPrivacyLink)
		e.send(ev.ChatID, text, []Option{
			{Label: catalog.Text(lang, catalog.KeyPrivacyTitle), URL: catalog.Link(lang, catalog.LinkPrivacyNotice)},
			{Label: catalog.Text(lang, catalog.KeyBackToMenu), Data: "back_to_menu"},
		})
	case "info":
		text := catalog.Text(lang, catalog.KeyParticipantTitle) + "\n\n" + catalog.Text(lang, catalog.KeyParticipantLink)
		e.send(ev.ChatID, text, []Option{
			{Label: catalog.Text(lang, catalog.KeyParticipantTitle), URL: catalog.Link(lang, catalog.LinkParticipantInfo)},
			{Label: catalog.Text(lang, catalog.KeyBackToMenu), Data: "back_to_menu"},
		})
	case "language":
		e.fireOrReport(ev, sess, evAskLanguage)
	}
}

func (e *Engine) handleConsent(ev Event, sess *domain.Session, rest string) {
	if sess.Step != domain.StepConsent {
		e.answer(ev.Callback.ID, "")
		return
	}
	idx, ok := tagIndex(rest)
	if !ok || idx > 1 {
		e.answer(ev.Callback.ID, catalog.Text(sess.Language, catalog.KeyInvalidSelection))
		return
	}
	e.answer(ev.Callback.ID, "")
	e.clear(ev.ChatID, ev.Callback.MessageID)

	agreed := idx == 0
	sess.Consent = agreed
	if err := e.reports.SaveConsent(ev.ExternalID, agreed); err != nil {
		log.Printf("Failed to save consent for chat %d: %v", ev.ChatID, err)
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyErrorOccurred))
		return
	}

	if agreed {
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyConsentGiven))
		e.fireOrReport(ev, sess, evConsentOK)
	} else {
		e.fireOrReport(ev, sess, evConsentNo)
	}
}

func (e *Engine) handleActionSelect(ev Event, sess *domain.Session, rest string) {
	if sess.Step != domain.StepActionSelect {
		e.answer(ev.Callback.ID, "")
		return
	}
	lang := sess.Language
	options := catalog.Options(lang, catalog.KeyActionOptions)

	if rest == "done" {
		if len(sess.ActionChoices) == 0 {
			e.answer(ev.Callback.ID, catalog.Text(lang, catalog.KeySelectAtLeastOne))
			return
		}
		e.answer(ev.Callback.ID, "")
		e.clear(ev.ChatID, ev.Callback.MessageID)

		issue := contains(sess.ActionChoices, options[0])
		improvement := contains(sess.ActionChoices, options[1])
		switch {
		case issue && improvement:
			sess.ActionType = domain.ActionBoth
		case improvement:
			sess.ActionType = domain.ActionImprovement
		default:
			sess.ActionType = domain.ActionIssue
		}

		if issue {
			e.fireOrReport(ev, sess, evPickIssues)
		} else {
			e.fireOrReport(ev, sess, evPickImprovements)
		}
		return
	}

	idx, ok := tagIndex(rest)
	if !ok || idx >= len(options) {
		e.answer(ev.Callback.ID, catalog.Text(lang, catalog.KeyInvalidSelection))
		return
	}
	sess.ActionChoices = toggle(sess.ActionChoices, options[idx])
	e.answer(ev.Callback.ID, "")
	e.edit(ev.ChatID, ev.Callback.MessageID, e.actionOptions(sess))
}

func (e *Engine) handleIssueSelect(ev Event, sess *domain.Session, rest string) {
	if sess.Step != domain.StepIssueSelect {
		e.answer(ev.Callback.ID, "")
		return
	}
	lang := sess.Language
	list := catalog.Options(lang, catalog.KeyIssueList)

	if rest == "done" {
		if len(sess.IssueTypes) == 0 && len(sess.CustomIssues) == 0 {
			e.answer(ev.Callback.ID, catalog.Text(lang, catalog.KeySelectAtLeastOne))
			return
		}
		e.answer(ev.Callback.ID, "")
		e.clear(ev.ChatID, ev.Callback.MessageID)

		switch {
		case sess.ActionType == domain.ActionBoth:
			if sess.IsModifying {
				sess.ReturnToSummaryAfterBoth = true
			}
			e.fireOrReport(ev, sess, evPickImprovements)
		case sess.IsModifying:
			e.fireOrReport(ev, sess, evToSummary)
		default:
			e.fireOrReport(ev, sess, evAskDetails)
		}
		return
	}

	idx, ok := tagIndex(rest)
	if !ok || idx >= len(list) {
		e.answer(ev.Callback.ID, catalog.Text(lang, catalog.KeyInvalidSelection))
		return
	}
	if list[idx] == catalog.Text(lang, catalog.KeyOtherOption) {
		e.answer(ev.Callback.ID, "")
		e.sendText(ev.ChatID, catalog.Text(lang, catalog.KeySpecifyOther))
		return
	}
	sess.IssueTypes = toggle(sess.IssueTypes, list[idx])
	e.answer(ev.Callback.ID, "")
	e.edit(ev.ChatID, ev.Callback.MessageID, e.issueOptions(sess))
}

func (e *Engine) handleImprovementSelect(ev Event, sess *domain.Session, rest string) {
	if sess.Step != domain.StepImprovementSelect {
		e.answer(ev.Callback.ID, "")
		return
	}
	lang := sess.Language
	list := catalog.Options(lang, catalog.KeyImprovementList)

	if rest == "done" {
		if len(sess.ImprovementTypes) == 0 && len(sess.CustomImprovements) == 0 {
			e.answer(ev.Callback.ID, catalog.Text(lang, catalog.KeySelectAtLeastOne))
			return
		}
		e.answer(ev.Callback.ID, "")
		e.clear(ev.ChatID, ev.Callback.MessageID)

		switch {
		case sess.ReturnToSummaryAfterBoth:
			sess.ReturnToSummaryAfterBoth = false
			e.fireOrReport(ev, sess, evToSummary)
		case sess.IsModifying:
			e.fireOrReport(ev, sess, evToSummary)
		default:
			e.fireOrReport(ev, sess, evAskDetails)
		}
		return
	}

	idx, ok := tagIndex(rest)
	if !ok || idx >= len(list) {
		e.answer(ev.Callback.ID, catalog.Text(lang, catalog.KeyInvalidSelection))
		return
	}
	if list[idx] == catalog.Text(lang, catalog.KeyOtherOption) {
		e.answer(ev.Callback.ID, "")
		e.sendText(ev.ChatID, catalog.Text(lang, catalog.KeySpecifyOther))
		return
	}
	sess.ImprovementTypes = toggle(sess.ImprovementTypes, list[idx])
	e.answer(ev.Callback.ID, "")
	e.edit(ev.ChatID, ev.Callback.MessageID, e.improvementOptions(sess))
}

func (e *Engine) handleSocioGate(ev Event, sess *domain.Session, rest string) {
	if sess.Step != domain.StepSocioGate {
		e.answer(ev.Callback.ID, "")
		return
	}
	e.answer(ev.Callback.ID, "")
	e.clear(ev.ChatID, ev.Callback.MessageID)

	switch rest {
	case "yes":
		e.fireOrReport(ev, sess, evAskAge)
	case "no":
		e.fireOrReport(ev, sess, evToSummary)
	}
}

// handleDemographic runs the four single-select steps. Confirming with the
// cursor set advances linearly, except when returning from a modify entry
// with the other three fields already answered, in which case the answers
// are written back durably and the flow returns to the summary.
func (e *Engine) handleDemographic(ev Event, sess *domain.Session, tag, rest string) {
	type step struct {
		step       domain.Step
		optionsKey string
		cursor     **int
		assign     func(string)
		others     []*string
		nextEvent  string
	}

	var s step
	switch tag {
	case "age":
		s = step{domain.StepAge, catalog.KeyAgeOptions, &sess.AgeSelected,
			func(v string) { sess.Age = v },
			[]*string{&sess.Gender, &sess.Occupation, &sess.TimeInTurku}, evAskGender}
	case "gender":
		s = step{domain.StepGender, catalog.KeyGenderOptions, &sess.GenderSelected,
			func(v string) { sess.Gender = v },
			[]*string{&sess.Age, &sess.Occupation, &sess.TimeInTurku}, evAskOccupation}
	case "occupation":
		s = step{domain.StepOccupation, catalog.KeyOccupationOptions, &sess.OccupationSelected,
			func(v string) { sess.Occupation = v },
			[]*string{&sess.Age, &sess.Gender, &sess.TimeInTurku}, evAskTime}
	case "time":
		s = step{domain.StepTimeInTurku, catalog.KeyTimeOptions, &sess.TimeInTurkuSelected,
			func(v string) { sess.TimeInTurku = v },
			nil, evToSummary}
	}

	if sess.Step != s.step {
		e.answer(ev.Callback.ID, "")
		return
	}
	lang := sess.Language
	options := catalog.Options(lang, s.optionsKey)

	if rest == "done" {
		if *s.cursor == nil {
			e.answer(ev.Callback.ID, catalog.Text(lang, catalog.KeySelectAtLeastOne))
			return
		}
		e.answer(ev.Callback.ID, "")
		e.clear(ev.ChatID, ev.Callback.MessageID)
		s.assign(options[**s.cursor])
		*s.cursor = nil

		if tag == "time" {
			if sess.ReturningFromModify {
				e.persistDemographics(ev, sess)
			}
			e.fireOrReport(ev, sess, evToSummary)
			return
		}
		if sess.ReturningFromModify && allSet(s.others) {
			e.persistDemographics(ev, sess)
			e.fireOrReport(ev, sess, evToSummary)
			return
		}
		e.fireOrReport(ev, sess, s.nextEvent)
		return
	}

	idx, ok := tagIndex(rest)
	if !ok || idx >= len(options) {
		e.answer(ev.Callback.ID, catalog.Text(lang, catalog.KeyInvalidSelection))
		return
	}
	*s.cursor = &idx
	e.answer(ev.Callback.ID, "")
	e.edit(ev.ChatID, ev.Callback.MessageID,
		singleSelectOptions(lang, s.optionsKey, tag, *s.cursor))
}

func allSet(fields []*string) bool {
	for _, f := range fields {
		if *f == "" {
			return false
		}
	}
	return true
}

func (e *Engine) persistDemographics(ev Event, sess *domain.Session) {
	profile := domain.DemographicProfile{
		Age:         sess.Age,
		Gender:      sess.Gender,
		Occupation:  sess.Occupation,
		TimeInTurku: sess.TimeInTurku,
	}
	if err := e.reports.SaveDemographics(ev.ExternalID, profile); err != nil {
		log.Printf("Failed to save demographics for chat %d: %v", ev.ChatID, err)
	}
}

func (e *Engine) handleConfirm(ev Event, sess *domain.Session, rest string) {
	if sess.Step != domain.StepConfirm {
		e.answer(ev.Callback.ID, "")
		return
	}
	e.answer(ev.Callback.ID, "")
	e.clear(ev.ChatID, ev.Callback.MessageID)

	switch rest {
	case "yes":
		if err := e.reports.Submit(ev.ExternalID, sess); err != nil {
			log.Printf("Failed to submit report for chat %d: %v", ev.ChatID, err)
			e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyErrorOccurred))
			return
		}
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeySubmissionReceived))
		e.fireOrReport(ev, sess, evSubmitted)
	case "modify":
		sess.IsModifying = true
		e.fireOrReport(ev, sess, evModify)
	case "no":
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyStartingOver))
		*sess = domain.Session{Language: sess.Language, Step: domain.StepConfirm}
		e.fireOrReport(ev, sess, evRestart)
	}
}

func (e *Engine) handleModify(ev Event, sess *domain.Session, rest string) {
	if sess.Step != domain.StepModifyMenu {
		e.answer(ev.Callback.ID, "")
		return
	}
	e.answer(ev.Callback.ID, "")
	e.clear(ev.ChatID, ev.Callback.MessageID)

	switch rest {
	case "location":
		e.fireOrReport(ev, sess, evModifyLocation)
	case "action":
		e.fireOrReport(ev, sess, evModifyAction)
	case "socio":
		sess.ReturningFromModify = true
		e.fireOrReport(ev, sess, evModifySocio)
	case "done":
		e.fireOrReport(ev, sess, evToSummary)
	}
}

func (e *Engine) handleAnother(ev Event, sess *domain.Session, rest string) {
	if sess.Step != domain.StepSubmitAnother {
		e.answer(ev.Callback.ID, "")
		return
	}
	e.answer(ev.Callback.ID, "")
	e.clear(ev.ChatID, ev.Callback.MessageID)

	switch rest {
	case "yes":
		sess.ResetKeepingProfile()
		e.fireOrReport(ev, sess, evAnother)
	case "no":
		*sess = domain.Session{Language: sess.Language, Step: domain.StepSubmitAnother}
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyThankYou))
		e.fireOrReport(ev, sess, evToMenu)
	}
}

package flow

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/turkuspot/spotbot/internal/domain"
)

// Wizard events. Each inbound update fires at most one.
const (
	evToMenu               = "to_menu"
	evAskLanguage          = "ask_language"
	evStartReport          = "start_report"
	evStartReportConsented = "start_report_consented"
	evConsentOK            = "consent_ok"
	evConsentNo            = "consent_no"
	evRestart              = "restart"
	evLocationOK           = "location_ok"
	evPickIssues           = "pick_issues"
	evPickImprovements     = "pick_improvements"
	evAskDetails           = "ask_details"
	evAskSocio             = "ask_socio"
	evAskAge               = "ask_age"
	evAskGender            = "ask_gender"
	evAskOccupation        = "ask_occupation"
	evAskTime              = "ask_time"
	evToSummary            = "to_summary"
	evSubmitted            = "submitted"
	evModify               = "modify"
	evModifyLocation       = "modify_location"
	evModifyAction         = "modify_action"
	evModifySocio          = "modify_socio"
	evAnother              = "another"
)

// machine builds the wizard transition graph positioned at the session's
// current step. A fresh machine is built per inbound event so sessions stay
// plain data.
func (e *Engine) machine(chatID int64, sess *domain.Session) *fsm.FSM {
	st := func(s domain.Step) string { return string(s) }

	events := fsm.Events{
		{Name: evToMenu, Src: []string{st(domain.StepLanguage), st(domain.StepSubmitAnother)}, Dst: st(domain.StepMenu)},
		{Name: evAskLanguage, Src: []string{st(domain.StepMenu)}, Dst: st(domain.StepLanguage)},
		{Name: evStartReport, Src: []string{st(domain.StepMenu)}, Dst: st(domain.StepConsent)},
		{Name: evStartReportConsented, Src: []string{st(domain.StepMenu)}, Dst: st(domain.StepLocation)},
		{Name: evConsentOK, Src: []string{st(domain.StepConsent)}, Dst: st(domain.StepLocation)},
		{Name: evConsentNo, Src: []string{st(domain.StepConsent)}, Dst: st(domain.StepConsentDeclined)},
		{Name: evRestart, Src: []string{st(domain.StepConsentDeclined), st(domain.StepConfirm)}, Dst: st(domain.StepConsent)},
		{Name: evLocationOK, Src: []string{st(domain.StepLocation)}, Dst: st(domain.StepActionSelect)},
		{Name: evPickIssues, Src: []string{st(domain.StepActionSelect)}, Dst: st(domain.StepIssueSelect)},
		{Name: evPickImprovements, Src: []string{st(domain.StepActionSelect), st(domain.StepIssueSelect)}, Dst: st(domain.StepImprovementSelect)},
		{Name: evAskDetails, Src: []string{st(domain.StepIssueSelect), st(domain.StepImprovementSelect)}, Dst: st(domain.StepAdditionalInfo)},
		{Name: evAskSocio, Src: []string{st(domain.StepAdditionalInfo)}, Dst: st(domain.StepSocioGate)},
		{Name: evAskAge, Src: []string{st(domain.StepSocioGate)}, Dst: st(domain.StepAge)},
		{Name: evAskGender, Src: []string{st(domain.StepAge)}, Dst: st(domain.StepGender)},
		{Name: evAskOccupation, Src: []string{st(domain.StepGender)}, Dst: st(domain.StepOccupation)},
		{Name: evAskTime, Src: []string{st(domain.StepOccupation)}, Dst: st(domain.StepTimeInTurku)},
		{Name: evToSummary, Src: []string{
			st(domain.StepLocation), st(domain.StepIssueSelect), st(domain.StepImprovementSelect),
			st(domain.StepAdditionalInfo), st(domain.StepSocioGate), st(domain.StepAge),
			st(domain.StepGender), st(domain.StepOccupation), st(domain.StepTimeInTurku),
			st(domain.StepModifyMenu),
		}, Dst: st(domain.StepConfirm)},
		{Name: evSubmitted, Src: []string{st(domain.StepConfirm)}, Dst: st(domain.StepSubmitAnother)},
		{Name: evModify, Src: []string{st(domain.StepConfirm)}, Dst: st(domain.StepModifyMenu)},
		{Name: evModifyLocation, Src: []string{st(domain.StepModifyMenu)}, Dst: st(domain.StepLocation)},
		{Name: evModifyAction, Src: []string{st(domain.StepModifyMenu)}, Dst: st(domain.StepActionSelect)},
		{Name: evModifySocio, Src: []string{st(domain.StepModifyMenu)}, Dst: st(domain.StepSocioGate)},
		{Name: evAnother, Src: []string{st(domain.StepSubmitAnother)}, Dst: st(domain.StepLocation)},
	}

	enter := func(step domain.Step, ask func(int64, *domain.Session)) (string, fsm.Callback) {
		return "enter_" + string(step), func(_ context.Context, _ *fsm.Event) {
			ask(chatID, sess)
		}
	}

	callbacks := fsm.Callbacks{
		"enter_state": func(_ context.Context, f *fsm.Event) {
			sess.Step = domain.Step(f.Dst)
		},
	}
	for _, pair := range []struct {
		step domain.Step
		ask  func(int64, *domain.Session)
	}{
		{domain.StepMenu, e.askMenu},
		{domain.StepLanguage, e.askLanguage},
		{domain.StepConsent, e.askConsent},
		{domain.StepConsentDeclined, e.showConsentDeclined},
		{domain.StepLocation, e.askLocation},
		{domain.StepActionSelect, e.askAction},
		{domain.StepIssueSelect, e.askIssues},
		{domain.StepImprovementSelect, e.askImprovements},
		{domain.StepAdditionalInfo, e.askAdditionalInfo},
		{domain.StepSocioGate, e.askSocioGate},
		{domain.StepAge, e.askAge},
		{domain.StepGender, e.askGender},
		{domain.StepOccupation, e.askOccupation},
		{domain.StepTimeInTurku, e.askTimeInTurku},
		{domain.StepConfirm, e.showSummary},
		{domain.StepModifyMenu, e.askModifyMenu},
		{domain.StepSubmitAnother, e.askSubmitAnother},
	} {
		key, cb := enter(pair.step, pair.ask)
		callbacks[key] = cb
	}

	return fsm.NewFSM(string(sess.Step), events, callbacks)
}

// fire advances the wizard by one event from the session's current step
func (e *Engine) fire(chatID int64, sess *domain.Session, event string) error {
	m := e.machine(chatID, sess)
	if err := m.Event(context.Background(), event); err != nil {
		return fmt.Errorf("transition %s from %s: %w", event, sess.Step, err)
	}
	return nil
}

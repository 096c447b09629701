// Package flow implements the report intake wizard. It consumes normalized
// inbound events, advances per-chat sessions through a state machine and
// renders prompts through a transport-agnostic Renderer.
package flow

import (
	"log"
	"strconv"

	"github.com/turkuspot/spotbot/internal/catalog"
	"github.com/turkuspot/spotbot/internal/domain"
	"github.com/turkuspot/spotbot/internal/service"
	"github.com/turkuspot/spotbot/internal/session"
)

// Engine drives the wizard for all chats.
type Engine struct {
	sessions    session.Store
	reports     *service.ReportService
	render      Renderer
	defaultLang string
}

// NewEngine creates a new Engine
func NewEngine(sessions session.Store, reports *service.ReportService, render Renderer, defaultLang string) *Engine {
	if !catalog.Supported(defaultLang) {
		defaultLang = catalog.DefaultLanguage
	}
	return &Engine{
		sessions:    sessions,
		reports:     reports,
		render:      render,
		defaultLang: defaultLang,
	}
}

// HandleEvent processes one inbound update. Any internal fault degrades to
// a generic localized error message so the conversation never hangs silently.
func (e *Engine) HandleEvent(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic handling chat %d: %v", ev.ChatID, r)
			lang := e.defaultLang
			if sess, ok := e.sessions.Get(ev.ChatID); ok {
				lang = sess.Language
			}
			e.sendText(ev.ChatID, catalog.Text(lang, catalog.KeyErrorOccurred))
		}
	}()

	switch {
	case ev.Command != "":
		e.handleCommand(ev)
	case ev.Callback != nil:
		e.handleCallback(ev)
	case ev.Location != nil:
		e.handleLocation(ev)
	case ev.Text != "":
		e.handleText(ev)
	default:
		e.handleUnsupported(ev)
	}
}

// handleUnsupported deals with updates carrying no usable content, such as
// photos or stickers. During location capture the user is re-prompted in
// place; elsewhere the update is dropped.
func (e *Engine) handleUnsupported(ev Event) {
	sess, ok := e.sessions.Get(ev.ChatID)
	if !ok || sess.Step != domain.StepLocation {
		return
	}
	e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyPleaseSendLocation))
}

func (e *Engine) handleCommand(ev Event) {
	switch ev.Command {
	case "start":
		e.handleStart(ev)
	default:
		e.sendText(ev.ChatID, catalog.Text(e.language(ev.ChatID), catalog.KeyUseStart))
	}
}

func (e *Engine) handleStart(ev Event) {
	sess, ok := e.sessions.Get(ev.ChatID)
	if !ok {
		sess = domain.NewSession(e.defaultLang)
		e.sessions.Put(ev.ChatID, sess)
	}

	stored, err := e.reports.StoredLanguage(ev.ExternalID)
	if err != nil {
		log.Printf("Failed to read stored language for chat %d: %v", ev.ChatID, err)
		stored = ""
	}
	if catalog.Supported(stored) {
		sess.Language = stored
	}

	sess.Reset()
	e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyWelcome))

	if catalog.Supported(stored) {
		e.askMenu(ev.ChatID, sess)
	} else {
		sess.Step = domain.StepLanguage
		e.askLanguage(ev.ChatID, sess)
	}
}

func (e *Engine) handleLocation(ev Event) {
	sess, ok := e.sessions.Get(ev.ChatID)
	if !ok {
		e.sendText(ev.ChatID, catalog.Text(e.defaultLang, catalog.KeyUseStart))
		return
	}
	if sess.Step != domain.StepLocation {
		return
	}
	e.acceptLocation(ev, sess, ev.Location)
}

func (e *Engine) handleText(ev Event) {
	sess, ok := e.sessions.Get(ev.ChatID)
	if !ok {
		e.sendText(ev.ChatID, catalog.Text(e.defaultLang, catalog.KeyUseStart))
		return
	}

	switch kind := sess.AwaitingMultiSelect(); kind {
	case domain.MultiSelectIssue:
		sess.CustomIssues = append(sess.CustomIssues, ev.Text)
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyFreeTextAdded))
		return
	case domain.MultiSelectImprovement:
		sess.CustomImprovements = append(sess.CustomImprovements, ev.Text)
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyFreeTextAdded))
		return
	case domain.MultiSelectAction:
		// the action step offers fixed choices only
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeySelectAtLeastOne))
		return
	}

	switch sess.Step {
	case domain.StepLocation:
		e.acceptLocation(ev, sess, &domain.Location{VenueTitle: ev.Text})
	case domain.StepAdditionalInfo:
		sess.AdditionalInfo = ev.Text
		e.afterAdditionalInfo(ev, sess)
	default:
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyUseStart))
	}
}

func (e *Engine) acceptLocation(ev Event, sess *domain.Session, loc *domain.Location) {
	sess.Location = loc
	e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyLocationReceived))
	if sess.IsModifying {
		e.fireOrReport(ev, sess, evToSummary)
		return
	}
	e.fireOrReport(ev, sess, evLocationOK)
}

// afterAdditionalInfo applies the socioeconomic short-circuit: a complete
// profile on file skips the demographic chain entirely.
func (e *Engine) afterAdditionalInfo(ev Event, sess *domain.Session) {
	profile, err := e.reports.CompleteProfile(ev.ExternalID)
	if err != nil {
		log.Printf("Failed to check profile for chat %d: %v", ev.ChatID, err)
		profile = nil
	}
	if profile != nil {
		sess.Age = profile.Age
		sess.Gender = profile.Gender
		sess.Occupation = profile.Occupation
		sess.TimeInTurku = profile.TimeInTurku
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyProfileOnFile))
		e.fireOrReport(ev, sess, evToSummary)
		return
	}
	e.fireOrReport(ev, sess, evAskSocio)
}

// fireOrReport advances the machine and surfaces a generic error to the
// user if the transition faulted.
func (e *Engine) fireOrReport(ev Event, sess *domain.Session, event string) {
	if err := e.fire(ev.ChatID, sess, event); err != nil {
		log.Printf("Failed to advance chat %d: %v", ev.ChatID, err)
		e.sendText(ev.ChatID, catalog.Text(sess.Language, catalog.KeyErrorOccurred))
	}
}

func (e *Engine) language(chatID int64) string {
	if sess, ok := e.sessions.Get(chatID); ok {
		return sess.Language
	}
	return e.defaultLang
}

func (e *Engine) sendText(chatID int64, text string) {
	if err := e.render.SendText(chatID, text); err != nil {
		log.Printf("Failed to send message to chat %d: %v", chatID, err)
	}
}

func (e *Engine) send(chatID int64, text string, options []Option) {
	if err := e.render.SendOptions(chatID, text, options); err != nil {
		log.Printf("Failed to send options to chat %d: %v", chatID, err)
	}
}

func (e *Engine) edit(chatID int64, messageID int, options []Option) {
	if err := e.render.EditOptions(chatID, messageID, options); err != nil {
		log.Printf("Failed to edit options in chat %d: %v", chatID, err)
	}
}

func (e *Engine) clear(chatID int64, messageID int) {
	if err := e.render.ClearOptions(chatID, messageID); err != nil {
		log.Printf("Failed to clear options in chat %d: %v", chatID, err)
	}
}

func (e *Engine) answer(callbackID, text string) {
	if err := e.render.AnswerCallback(callbackID, text); err != nil {
		log.Printf("Failed to answer callback %s: %v", callbackID, err)
	}
}

// contains reports whether list holds value
func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// toggle adds value to list or removes it when already present
func toggle(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, value)
}

// tagIndex parses the numeric part of callback data. Negative values are
// rejected along with non-numbers so callers only range-check the upper
// bound.
func tagIndex(rest string) (int, bool) {
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

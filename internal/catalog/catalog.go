// Package catalog holds the localized string and option tables the wizard
// renders. Lookups fall back to English and finally to the key itself, so a
// missing translation never breaks a conversation.
package catalog

// DefaultLanguage is used until a user explicitly picks one.
const DefaultLanguage = "en"

// Text keys.
const (
	KeyWelcome             = "welcome"
	KeySelectLanguage      = "select_language"
	KeyLanguageSelected    = "language_selected"
	KeyConsentPrompt       = "consent_prompt"
	KeyConsentGiven        = "consent_given"
	KeyConsentDeclined     = "consent_declined"
	KeyRestartButton       = "restart_button"
	KeyModifyLocation      = "modify_location"
	KeyModifyAction        = "modify_action"
	KeyModifySocio         = "modify_socio"
	KeySelectAction        = "select_action"
	KeyYourResponse        = "your_response"
	KeySelectModify        = "select_questions_to_modify"
	KeyInvalidSelection    = "invalid_selection"
	KeyConfirmResponses    = "confirm_responses"
	KeyModifyResponses     = "modify_responses"
	KeyConfirmSubmission   = "confirm_submission"
	KeyIssuePrompt         = "issue_list_prompt"
	KeyImprovementPrompt   = "improvement_list_prompt"
	KeyLocationRequest     = "location_request"
	KeyAdditionalInfo      = "additional_info_prompt"
	KeySkipButton          = "skip_button"
	KeyOtherOption         = "other_option"
	KeySpecifyOther        = "specify_other"
	KeyThankYou            = "thank_you"
	KeySubmissionSummary   = "submission_summary"
	KeyDoneButton          = "done_button"
	KeySubmissionReceived  = "submission_received"
	KeySubmitAnother       = "submit_another"
	KeyLocationReceived    = "location_received"
	KeyPleaseSendLocation  = "please_send_location"
	KeyFreeTextAdded       = "free_text_added"
	KeySelectAtLeastOne    = "please_select_at_least_one"
	KeyErrorOccurred       = "error_occurred"
	KeySocioIntro          = "socioeconomic_intro"
	KeyAgeQuestion         = "age_question"
	KeyGenderQuestion      = "gender_question"
	KeyOccupationQuestion  = "occupation_question"
	KeyTimeQuestion        = "time_in_turku_question"
	KeyMenuOptions         = "menu_options"
	KeyMenuReport          = "menu_report"
	KeyMenuPrivacy         = "menu_privacy"
	KeyMenuInfo            = "menu_info"
	KeyMenuLanguage        = "menu_language"
	KeyBackToMenu          = "back_to_menu"
	KeyPrivacyTitle        = "privacy_notice_title"
	KeyPrivacyLink         = "privacy_notice_link"
	KeyParticipantTitle    = "participant_info_title"
	KeyParticipantLink     = "participant_info_link"
	KeyProfileOnFile       = "profile_on_file"
	KeyUseStart            = "use_start"
	KeyStartingOver        = "starting_over"
)

// Option list keys.
const (
	KeyConsentOptions       = "consent_options"
	KeyActionOptions        = "action_options"
	KeyIssueList            = "issue_list"
	KeyImprovementList      = "improvement_list"
	KeySocioOptions         = "socioeconomic_options"
	KeySubmitAnotherOptions = "submit_another_options"
	KeyAgeOptions           = "age_options"
	KeyGenderOptions        = "gender_options"
	KeyOccupationOptions    = "occupation_options"
	KeyTimeOptions          = "time_in_turku_options"
)

// Summary label names.
const (
	LabelLocation        = "location"
	LabelIssueType       = "issue_type"
	LabelImprovementType = "improvement_type"
	LabelAge             = "age"
	LabelGender          = "gender"
	LabelOccupation      = "occupation"
	LabelTimeInTurku     = "time_in_turku"
)

// External link keys.
const (
	LinkPrivacyNotice   = "privacy_notice"
	LinkParticipantInfo = "participant_info"
)

var languages = []string{"en", "fi", "sv", "uk"}

var languageNames = map[string]string{
	"en": "English",
	"fi": "Suomi",
	"sv": "Svenska",
	"uk": "Українська",
}

var texts = map[string]map[string]string{
	"en": textsEN,
	"fi": textsFI,
	"sv": textsSV,
	"uk": textsUK,
}

var optionLists = map[string]map[string][]string{
	"en": optionsEN,
	"fi": optionsFI,
	"sv": optionsSV,
	"uk": optionsUK,
}

var labels = map[string]map[string]string{
	"en": labelsEN,
	"fi": labelsFI,
	"sv": labelsSV,
	"uk": labelsUK,
}

var links = map[string]map[string]string{
	"en": linksEN,
	"fi": linksFI,
	"sv": linksSV,
	"uk": linksUK,
}

// Languages returns the supported language codes in display order.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// LanguageName returns the native display name for a language code.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// Supported reports whether code is a language the catalog carries.
func Supported(code string) bool {
	_, ok := texts[code]
	return ok
}

// Text returns the string for key in lang, falling back to English and then
// to the key itself.
func Text(lang, key string) string {
	if t, ok := texts[lang]; ok {
		if s, ok := t[key]; ok {
			return s
		}
	}
	if s, ok := texts[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Options returns the ordered option list for key in lang, falling back to
// English. Returns nil for unknown keys.
func Options(lang, key string) []string {
	if o, ok := optionLists[lang]; ok {
		if list, ok := o[key]; ok {
			return list
		}
	}
	return optionLists[DefaultLanguage][key]
}

// Label returns the summary label for name in lang.
func Label(lang, name string) string {
	if l, ok := labels[lang]; ok {
		if s, ok := l[name]; ok {
			return s
		}
	}
	if s, ok := labels[DefaultLanguage][name]; ok {
		return s
	}
	return name
}

// Link returns the external document URL for key in lang.
func Link(lang, key string) string {
	if l, ok := links[lang]; ok {
		if s, ok := l[key]; ok {
			return s
		}
	}
	return links[DefaultLanguage][key]
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var textKeys = []string{
	KeyWelcome, KeySelectLanguage, KeyLanguageSelected, KeyConsentPrompt,
	KeyConsentGiven, KeyConsentDeclined, KeyRestartButton, KeyModifyLocation,
	KeyModifyAction, KeyModifySocio, KeySelectAction, KeySelectModify,
	KeyInvalidSelection, KeyConfirmResponses, KeyModifyResponses,
	KeyConfirmSubmission, KeyIssuePrompt, KeyImprovementPrompt,
	KeyLocationRequest, KeyAdditionalInfo, KeySkipButton, KeyOtherOption,
	KeySpecifyOther, KeySubmissionSummary, KeyDoneButton,
	KeySubmissionReceived, KeySubmitAnother, KeyLocationReceived,
	KeyFreeTextAdded, KeySelectAtLeastOne, KeyErrorOccurred, KeySocioIntro,
	KeyAgeQuestion, KeyGenderQuestion, KeyOccupationQuestion, KeyTimeQuestion,
	KeyMenuOptions, KeyMenuReport, KeyMenuPrivacy, KeyMenuInfo,
	KeyMenuLanguage, KeyBackToMenu, KeyPrivacyTitle, KeyPrivacyLink,
	KeyParticipantTitle, KeyParticipantLink,
}

var optionKeys = []string{
	KeyConsentOptions, KeyActionOptions, KeyIssueList, KeyImprovementList,
	KeySocioOptions, KeySubmitAnotherOptions, KeyAgeOptions,
	KeyGenderOptions, KeyOccupationOptions, KeyTimeOptions,
}

func TestAllLanguagesCarryAllTexts(t *testing.T) {
	for _, lang := range Languages() {
		for _, key := range textKeys {
			assert.NotEmpty(t, Text(lang, key), "lang=%s key=%s", lang, key)
		}
	}
}

func TestAllLanguagesCarryAllOptionLists(t *testing.T) {
	for _, lang := range Languages() {
		for _, key := range optionKeys {
			list := Options(lang, key)
			require.NotEmpty(t, list, "lang=%s key=%s", lang, key)
			for i, opt := range list {
				assert.NotEmpty(t, opt, "lang=%s key=%s index=%d", lang, key, i)
			}
		}
	}
}

func TestOptionListsSameLengthAcrossLanguages(t *testing.T) {
	for _, key := range optionKeys {
		want := len(Options(DefaultLanguage, key))
		for _, lang := range Languages() {
			assert.Len(t, Options(lang, key), want, "lang=%s key=%s", lang, key)
		}
	}
}

func TestOtherSentinelIsLastListEntry(t *testing.T) {
	for _, lang := range Languages() {
		other := Text(lang, KeyOtherOption)
		for _, key := range []string{KeyIssueList, KeyImprovementList} {
			list := Options(lang, key)
			require.NotEmpty(t, list)
			assert.Equal(t, other, list[len(list)-1], "lang=%s key=%s", lang, key)
		}
	}
}

func TestFallbackToEnglish(t *testing.T) {
	assert.Equal(t, Text("en", KeyWelcome), Text("de", KeyWelcome))
	assert.Equal(t, Options("en", KeyIssueList), Options("de", KeyIssueList))
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no_such_key", Text("en", "no_such_key"))
}

func TestSupported(t *testing.T) {
	for _, lang := range Languages() {
		assert.True(t, Supported(lang))
	}
	assert.False(t, Supported("de"))
	assert.False(t, Supported(""))
}

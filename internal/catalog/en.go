package catalog

var textsEN = map[string]string{
	KeyWelcome:            "Welcome to TurkuSpot Bot! 🏙️\n\nThis service allows you to report environmental issues or suggest improvements in Turku. Your input helps make our city a cleaner and better place to live. \n\n ⚠️In case you expect someone's health to be endangered or observe severe pollution in natural waters or on the ground, immediately contact 112!",
	KeySelectLanguage:     "Please select your preferred language:",
	KeyLanguageSelected:   "Language set to English.",
	KeyConsentPrompt:      "Before we begin, we need your consent to collect the information you provide, including your location data. This information will be used to improve city services and community infrastructure. Your personal information is not collected.",
	KeyConsentGiven:       "Thank you for agreeing to participate!",
	KeyConsentDeclined:    "We understand your decision. You can come back anytime if you change your mind.\n\nTo restart the bot, press the button below.",
	KeyRestartButton:      "Restart",
	KeyModifyLocation:     "📍 Location",
	KeyModifyAction:       "📋 Issue/Improvement",
	KeyModifySocio:        "👤 Personal background",
	KeySelectAction:       "What would you like to do?",
	KeyYourResponse:       "Your response:",
	KeySelectModify:       "Which parts of your response would you like to modify?",
	KeyInvalidSelection:   "Invalid selection. Please try again.",
	KeyConfirmResponses:   "Please review your responses above. Do you confirm them or would like to modify anything?",
	KeyModifyResponses:    "I want to modify my responses",
	KeyConfirmSubmission:  "I confirm my responses",
	KeyIssuePrompt:        "What type of issue would you like to report?",
	KeyImprovementPrompt:  "What improvement would you like to suggest?",
	KeyLocationRequest:    "Please send the location of the issue or where you would like to see an improvement.\n\nTo do this:\n1. Tap the attachment icon (📎) in the message bar.\n2. Select 'Location'.\n3. Move the map to the desired location.\n4. Tap 'Send this location'.\n\nAlternatively, you can type the address or describe the location.",
	KeyAdditionalInfo:     "Would you like to provide any additional details? This is optional, but helpful.",
	KeySkipButton:         "Skip",
	KeyOtherOption:        "Other (please specify)",
	KeySpecifyOther:       "Please specify:",
	KeyThankYou:           "Thank you! Your submission has been received and will be reviewed.",
	KeySubmissionSummary:  "Here's a summary of your submission:",
	KeyDoneButton:         "Done",
	KeySubmissionReceived: "Thank you for your contribution to making our city better! Your submission has been received.",
	KeySubmitAnother:      "Would you like to submit another location?",
	KeyLocationReceived:   "Location received",
	KeyPleaseSendLocation: "Invalid input. Please send the location as instructed, or type the address/description of the location.",
	KeyFreeTextAdded:      "Your input has been added. You can select more options, add more text, or press Done when finished.",
	KeySelectAtLeastOne:   "Please select at least one option or type your own.",
	KeyErrorOccurred:      "An error occurred. Please try again later.",
	KeySocioIntro:         "Would you like to share some information about yourself? This helps us understand who uses our services.",
	KeyAgeQuestion:        "Please select your age group:",
	KeyGenderQuestion:     "Please select your gender:",
	KeyOccupationQuestion: "Please select your occupational status:",
	KeyTimeQuestion:       "How long have you lived in Turku?",
	KeyMenuOptions:        "Main Menu - Please select an option:",
	KeyMenuReport:         "📝 Report Issue/Improvement",
	KeyMenuPrivacy:        "🔒 Privacy Notice",
	KeyMenuInfo:           "ℹ️ Participant Information",
	KeyMenuLanguage:       "🌐 Change Language",
	KeyBackToMenu:         "↩️ Back to Main Menu",
	KeyPrivacyTitle:       "🔒 Privacy Notice",
	KeyPrivacyLink:        "Click here to view the Privacy Notice:",
	KeyParticipantTitle:   "ℹ️ Participant Information Sheet",
	KeyParticipantLink:    "Click here to view the Participant Information Sheet:",
	KeyProfileOnFile:      "Using your previously provided personal information. You can proceed to review your submission.",
	KeyUseStart:           "Please use /start to begin using this bot.",
	KeyStartingOver:       "Let's start over.",
}

var optionsEN = map[string][]string{
	KeyConsentOptions: {"I agree", "I do not agree"},
	KeyActionOptions:  {"Report an issue", "Suggest an improvement"},
	KeyIssueList: {
		"Smoke from fire or burning",
		"Strong smell (e.g. sewage)",
		"Air pollution (e.g. street dust)",
		"Flower pollen",
		"Oil, paint, or chemical waste",
		"Algal bloom or green water",
		"Illegal dumping",
		"Litter in natural areas",
		"Overflowing public bins",
		"Vandalism (e.g. broken utilities)",
		"Other (please specify)",
	},
	KeyImprovementList: {
		"Cleaner air in this area",
		"Better water quality here",
		"Better maintenance in this area",
		"Less noise at this location",
		"Less light pollution at night",
		"More shade or trees in this spot",
		"Public drinking fountain needed",
		"Cleaner green space at this location",
		"Less vehicle exhaust in this area",
		"Reducing odours in the area",
		"Other (please specify)",
	},
	KeySocioOptions:         {"Yes, I'll share", "No, skip this part"},
	KeySubmitAnotherOptions: {"Yes, submit another", "No, I'm done"},
	KeyAgeOptions:           {"18-25", "26-40", "41-60", "Above 60", "Prefer not to disclose"},
	KeyGenderOptions:        {"Male", "Female", "Other", "Prefer not to disclose"},
	KeyOccupationOptions:    {"Working", "Not working", "Student", "Retired", "Military service", "Other", "Prefer not to disclose"},
	KeyTimeOptions:          {"Less than 1 year", "1-3 years", "3-10 years", "10-20 years", "My whole life", "I don't live in Turku", "Prefer not to disclose"},
}

var labelsEN = map[string]string{
	LabelLocation:        "Location",
	LabelIssueType:       "Issue type",
	LabelImprovementType: "Improvement type",
	LabelAge:             "Age",
	LabelGender:          "Gender",
	LabelOccupation:      "Occupation",
	LabelTimeInTurku:     "Time living in Turku",
}

var linksEN = map[string]string{
	LinkPrivacyNotice:   "https://telegra.ph/TurkuSPOTs-Privacy-Notice---English-03-28",
	LinkParticipantInfo: "https://telegra.ph/Participant-Information-Sheet-for-TurkuSPOT-project-03-28",
}

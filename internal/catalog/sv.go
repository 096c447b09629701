package catalog

var textsSV = map[string]string{
	KeyWelcome:            "Välkommen till TurkuSpot Bot! 🏙️\n\nDenna tjänst låter dig rapportera miljöproblem eller föreslå förbättringar i Åbo. Ditt bidrag hjälper till att göra vår stad till en renare och bättre plats att bo på. \n\n⚠️ Om du misstänker att någons hälsa är i fara eller observerar allvarlig förorening i naturvatten eller mark, kontakta omedelbart 112!",
	KeySelectLanguage:     "Välj önskat språk:",
	KeyLanguageSelected:   "Språk inställt på svenska.",
	KeyConsentPrompt:      "Innan vi börjar behöver vi ditt samtycke till att samla in information som du tillhandahåller, inklusive din platsdata. Denna information kommer att användas för att förbättra stadens tjänster och samhällsinfrastruktur. Din personliga information samlas inte in.",
	KeyConsentGiven:       "Tack för ditt deltagande!",
	KeyConsentDeclined:    "Vi förstår ditt beslut. Du kan returnera när som helst om du ändrar dig.\n\nOm du vill starta om botten klickar du på knappen nedan.",
	KeyRestartButton:      "Starta om",
	KeyModifyLocation:     "📍 Plats",
	KeyModifyAction:       "📋 Problem/Förbättring",
	KeyModifySocio:        "👤 Personlig bakgrund",
	KeySelectAction:       "Vad skulle du vilja göra?",
	KeyYourResponse:       "Ditt svar:",
	KeySelectModify:       "Vilka delar av ditt svar vill du ändra?",
	KeyInvalidSelection:   "Ogiltigt val. Försök igen.",
	KeyConfirmResponses:   "Vänligen granska dina svar ovan. Bekräftar du dem eller vill du ändra något?",
	KeyModifyResponses:    "Jag vill ändra mina svar",
	KeyConfirmSubmission:  "Jag bekräftar mina svar",
	KeyIssuePrompt:        "Vilken typ av problem vill du rapportera?",
	KeyImprovementPrompt:  "Vilken förbättring skulle du vilja föreslå?",
	KeyLocationRequest:    "Vänligen skicka platsen för problemet eller där du skulle vilja se en förbättring.\n\nFör att göra detta:\n1. Tryck på bifogningsikonen (📎) i meddelandefältet.\n2. Välj 'Plats'.\n3. Flytta kartan till önskad plats.\n4. Tryck på 'Skicka denna plats'.\n\nAlternativt kan du skriva adressen eller beskriva platsen.",
	KeyAdditionalInfo:     "Vill du lämna ytterligare information? Detta är frivilligt men hjälpsamt.",
	KeySkipButton:         "Hoppa över",
	KeyOtherOption:        "Annat (vänligen specificera)",
	KeySpecifyOther:       "Vänligen specificera:",
	KeyThankYou:           "Tack! Din anmälan har tagits emot och kommer att granskas.",
	KeySubmissionSummary:  "Här är en sammanfattning av din anmälan:",
	KeyDoneButton:         "Klar",
	KeySubmissionReceived: "Tack för ditt bidrag till att göra vår stad bättre! Din anmälan har tagits emot.",
	KeySubmitAnother:      "Vill du skicka in en annan plats?",
	KeyLocationReceived:   "Plats mottagen",
	KeyPleaseSendLocation: "Ogiltig inmatning. Vänligen skicka platsen enligt instruktionerna eller skriv adressen/beskrivning av platsen.",
	KeyFreeTextAdded:      "Din inmatning har lagts till. Du kan välja fler alternativ, lägga till mer text eller trycka på Klar när du är färdig.",
	KeySelectAtLeastOne:   "Välj minst ett alternativ eller skriv ditt eget.",
	KeyErrorOccurred:      "Ett fel inträffade. Försök igen senare.",
	KeySocioIntro:         "Vill du dela med dig av information om dig själv? Detta hjälper oss att förstå vilka som använder våra tjänster.",
	KeyAgeQuestion:        "Vänligen välj din åldersgrupp:",
	KeyGenderQuestion:     "Vänligen välj ditt kön:",
	KeyOccupationQuestion: "Vänligen välj din sysselsättningsstatus:",
	KeyTimeQuestion:       "Hur länge har du bott i Åbo?",
	KeyMenuOptions:        "Huvudmeny - Välj ett alternativ:",
	KeyMenuReport:         "📝 Rapportera problem/förbättring",
	KeyMenuPrivacy:        "🔒 Dataskyddsbeskrivning",
	KeyMenuInfo:           "ℹ️ Deltagarinformation",
	KeyMenuLanguage:       "🌐 Byt språk",
	KeyBackToMenu:         "↩️ Tillbaka till huvudmenyn",
	KeyPrivacyTitle:       "🔒 Dataskyddsbeskrivning",
	KeyPrivacyLink:        "Klicka här för att se dataskyddsbeskrivningen:",
	KeyParticipantTitle:   "ℹ️ Deltagarinformation",
	KeyParticipantLink:    "Klicka här för att se deltagarinformationen:",
}

var optionsSV = map[string][]string{
	KeyConsentOptions: {"Jag godkänner", "Jag godkänner inte"},
	KeyActionOptions:  {"Rapportera ett problem", "Föreslå en förbättring"},
	KeyIssueList: {
		"Rökskada, förbränning",
		"Stark lukt (t.ex. rök, avloppsvatten)",
		"Luftföroreningar (t.ex. gatudamm)",
		"Blomma pollen",
		"Olja, färg eller kemikalier",
		"Algblomning eller grönt vatten",
		"Olaglig dumpning (t.ex. sopsäckar)",
		"Skräp i naturområden",
		"Överfulla allmänna papperskorgar",
		"Vandalism",
		"Annat (vänligen specificera)",
	},
	KeyImprovementList: {
		"Renare luft i den här området",
		"Bättre vattenkvalitet i området",
		"Ökat underhåll i området",
		"Tystare miljö på denna plats",
		"Mindre ljusföroreningar i området",
		"Mer skugga eller träd på denna plats",
		"Allmän vattenförsörjning till området",
		"Renare grönområde på denna plats",
		"Färre (motor)fordon i området",
		"Minskning av luktföroreningar i området",
		"Annat (vänligen specificera)",
	},
	KeySocioOptions:         {"Ja, jag delar", "Nej, hoppa över denna del"},
	KeySubmitAnotherOptions: {"Ja, skicka in en annan", "Nej, jag är klar"},
	KeyAgeOptions:           {"18-25", "26-40", "41-60", "Över 60", "Föredrar att inte svara"},
	KeyGenderOptions:        {"Man", "Kvinna", "Annat", "Föredrar att inte svara"},
	KeyOccupationOptions:    {"Arbetande", "Arbetslös", "Student", "Pensionerad", "Militärtjänst", "Annat", "Föredrar att inte svara"},
	KeyTimeOptions:          {"Mindre än 1 år", "1-3 år", "3-10 år", "10-20 år", "Hela mitt liv", "Jag bor inte i Åbo", "Föredrar att inte svara"},
}

var labelsSV = map[string]string{
	LabelLocation:        "Plats",
	LabelIssueType:       "Problemtyp",
	LabelImprovementType: "Förbättringstyp",
	LabelAge:             "Ålder",
	LabelGender:          "Kön",
	LabelOccupation:      "Sysselsättning",
	LabelTimeInTurku:     "Tid boende i Åbo",
}

var linksSV = map[string]string{
	LinkPrivacyNotice:   "https://telegra.ph/TurkuSPOTs-Dataskyddsbeskrivning--Svenska-03-28",
	LinkParticipantInfo: "https://telegra.ph/Deltagarinformation-för-TurkuSPOT-projektet--Svenska-03-28",
}

package catalog

var textsFI = map[string]string{
	KeyWelcome:            "Tervetuloa TurkuSpot Botiin! 🏙️\n\nTämän palvelun avulla voit ilmoittaa ympäristöasioista tai ehdottaa parannuksia Turkuun. Panoksesi auttaa tekemään kaupungistamme puhtaamman ja paremman paikan asua. \n\n⚠️ Jos epäilet, että jonkun terveys on vaarassa tai havaitset vakavaa saastumista luonnon vesissä tai maaperässä, ota välittömästi yhteyttä numeroon 112!",
	KeySelectLanguage:     "Valitse haluamasi kieli:",
	KeyLanguageSelected:   "Kieleksi asetettu suomi.",
	KeyConsentPrompt:      "Ennen kuin aloitamme, tarvitsemme suostumuksesi kerätä antamiasi tietoja, mukaan lukien sijaintitietoja. Näitä tietoja käytetään kaupungin palvelujen ja yhteisön infrastruktuurin parantamiseen. Henkilökohtaisia tietojasi ei kerätä.",
	KeyConsentGiven:       "Kiitos osallistumisestasi!",
	KeyConsentDeclined:    "Ymmärrämme päätöksesi. Voit palata milloin tahansa, jos muutat mieltäsi.\n\nKäynnistääksesi botin uudelleen, paina alla olevaa painiketta.",
	KeyRestartButton:      "Käynnistä uudelleen",
	KeyModifyLocation:     "📍 Sijainti",
	KeyModifyAction:       "📋 Ongelma/Parannus",
	KeyModifySocio:        "👤 Henkilökohtaiset tiedot",
	KeySelectAction:       "Mitä haluaisit tehdä?",
	KeyYourResponse:       "Vastauksesi:",
	KeySelectModify:       "Mitä osaa vastauksestasi haluat muokata?",
	KeyInvalidSelection:   "Virheellinen valinta. Yritä uudelleen.",
	KeyConfirmResponses:   "Tarkista vastauksesi yllä. Vahvistatko ne vai haluatko muokata jotain?",
	KeyModifyResponses:    "Haluan muokata vastauksia",
	KeyConfirmSubmission:  "Vahvistan vastaukseni",
	KeyIssuePrompt:        "Minkä tyyppisestä ongelmasta haluaisit ilmoittaa?",
	KeyImprovementPrompt:  "Mitä parannusta haluaisit ehdottaa?",
	KeyLocationRequest:    "Lähetä ongelman sijainti tai paikka, jossa haluaisit nähdä parannuksen.\n\nTee tämä näin:\n1. Napauta liitepainiketta (📎) viestipalkissa.\n2. Valitse 'Sijainti'.\n3. Siirrä kartta haluttuun paikkaan.\n4. Napauta 'Lähetä tämä sijainti'.\n\nVaihtoehtoisesti voit kirjoittaa osoitteen tai kuvailla sijainnin.",
	KeyAdditionalInfo:     "Haluaisitko antaa lisätietoja? Tämä on vapaaehtoista, mutta hyödyllistä.",
	KeySkipButton:         "Ohita",
	KeyOtherOption:        "Muu (täsmennä)",
	KeySpecifyOther:       "Täsmennä:",
	KeyThankYou:           "Kiitos! Lähetyksesi on vastaanotettu ja sitä tarkastellaan.",
	KeySubmissionSummary:  "Tässä on yhteenveto lähetyksestäsi:",
	KeyDoneButton:         "Valmis",
	KeySubmissionReceived: "Kiitos panoksestasi kaupunkimme parantamiseksi! Palautteesi on vastaanotettu.",
	KeySubmitAnother:      "Haluaisitko lähettää toisen sijainnin?",
	KeyLocationReceived:   "Sijainti vastaanotettu",
	KeyPleaseSendLocation: "Virheellinen syöte. Lähetä sijainti ohjeiden mukaisesti tai kirjoita osoite/sijainnin kuvaus.",
	KeyFreeTextAdded:      "Syötteesi on lisätty. Voit valita lisää vaihtoehtoja, lisätä lisää tekstiä tai painaa Valmis, kun olet valmis.",
	KeySelectAtLeastOne:   "Valitse vähintään yksi vaihtoehto tai kirjoita omasi.",
	KeyErrorOccurred:      "Virhe tapahtui. Yritä myöhemmin uudelleen.",
	KeySocioIntro:         "Haluaisitko jakaa joitain tietoja itsestäsi? Tämä auttaa meitä ymmärtämään, ketkä käyttävät palveluitamme.",
	KeyAgeQuestion:        "Valitse ikäryhmäsi:",
	KeyGenderQuestion:     "Valitse sukupuolesi:",
	KeyOccupationQuestion: "Valitse työllisyystilanteesi:",
	KeyTimeQuestion:       "Kuinka kauan olet asunut Turussa?",
	KeyMenuOptions:        "Päävalikko - Valitse vaihtoehto:",
	KeyMenuReport:         "📝 Ilmoita ongelma/parannusehdotus",
	KeyMenuPrivacy:        "🔒 Tietosuojaseloste",
	KeyMenuInfo:           "ℹ️ Osallistujan tiedote",
	KeyMenuLanguage:       "🌐 Vaihda kieltä",
	KeyBackToMenu:         "↩️ Takaisin päävalikkoon",
	KeyPrivacyTitle:       "🔒 Tietosuojaseloste",
	KeyPrivacyLink:        "Napsauta tästä nähdäksesi tietosuojaselosteen:",
	KeyParticipantTitle:   "ℹ️ Osallistujan tiedote",
	KeyParticipantLink:    "Napsauta tästä nähdäksesi osallistujan tiedotteen:",
}

var optionsFI = map[string][]string{
	KeyConsentOptions: {"Hyväksyn", "En hyväksy"},
	KeyActionOptions:  {"Ilmoita ongelmasta", "Ehdota parannusta"},
	KeyIssueList: {
		"Savuhaitta, palaminen",
		"Voimakas haju (esim. viemäri)",
		"Ilmansaaste (esim. katupöly)",
		"Kukkien siitepöly",
		"Öljyä, maalia tai kemikaaleja",
		"Leväkukinto tai vihreä vesi",
		"Laiton kaatopaikka",
		"Roskia luonnonalueilla",
		"Ylitäyttyneet julkiset roska-astiat",
		"Vandalismi",
		"Muu (täsmennä)",
	},
	KeyImprovementList: {
		"Puhtaampi ilma alueella",
		"Parempi veden laatu alueella",
		"Kunnossapidon lisääminen alueella",
		"Hiljaisempi ympäristö tässä paikassa",
		"Vähemmän valosaastetta alueella",
		"Enemmän varjoa tai puita tälle alueelle",
		"Julkinen vedenjakelulu alueelle",
		"Puhtaampi viheralue tässä paikassa",
		"Vähemmän ajoneuvoja alueella",
		"Hajuhaittojen vähentäminen alueella",
		"Muu (täsmennä)",
	},
	KeySocioOptions:         {"Kyllä, jaan", "Ei, ohita tämä osa"},
	KeySubmitAnotherOptions: {"Kyllä, lähetä toinen", "Ei, olen valmis"},
	KeyAgeOptions:           {"18-25", "26-40", "41-60", "Yli 60", "En halua kertoa"},
	KeyGenderOptions:        {"Mies", "Nainen", "Muu", "En halua kertoa"},
	KeyOccupationOptions:    {"Työssäkäyvä", "Ei työssä", "Opiskelija", "Eläkeläinen", "Asepalveluksessa", "Muu", "En halua kertoa"},
	KeyTimeOptions:          {"Alle vuoden", "1-3 vuotta", "3-10 vuotta", "10-20 vuotta", "Koko elämäni", "En asu Turussa", "En halua kertoa"},
}

var labelsFI = map[string]string{
	LabelLocation:        "Sijainti",
	LabelIssueType:       "Ongelman tyyppi",
	LabelImprovementType: "Parannuksen tyyppi",
	LabelAge:             "Ikä",
	LabelGender:          "Sukupuoli",
	LabelOccupation:      "Ammatti",
	LabelTimeInTurku:     "Asuinaika Turussa",
}

var linksFI = map[string]string{
	LinkPrivacyNotice:   "https://telegra.ph/TurkuSPOT-tutkimuksen-tietosuojaseloste--Suomi-03-28",
	LinkParticipantInfo: "https://telegra.ph/Osallistujan-tiedote-TurkuSPOT-projektille--Suomi-03-28",
}

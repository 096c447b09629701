package catalog

var textsUK = map[string]string{
	KeyWelcome:            "Ласкаво просимо до TurkuSpot Bot! 🏙️\n\nЦей сервіс дозволяє вам повідомляти про екологічні проблеми або пропонувати покращення в Турку. Ваш внесок допомагає зробити наше місто чистішим та кращим місцем для життя. \n\n⚠️ Якщо ви підозрюєте, що комусь загрожує небезпека для здоров'я або спостерігаєте серйозне забруднення природних вод чи ґрунтів — негайно зверніться за номером 112!",
	KeySelectLanguage:     "Будь ласка, оберіть вашу мову:",
	KeyLanguageSelected:   "Мову встановлено на українську.",
	KeyConsentPrompt:      "Перш ніж ми почнемо, нам потрібна ваша згода на збір інформації, яку ви надаєте, включаючи дані про ваше місцезнаходження. Ця інформація буде використана для покращення міських послуг та інфраструктури. Ваша особиста інформація не збирається.",
	KeyConsentGiven:       "Дякуємо за вашу згоду на участь!",
	KeyConsentDeclined:    "Ми розуміємо ваше рішення. Ви можете повернутися будь-коли, якщо передумаєте.\n\nЩоб перезапустити бота, натисніть кнопку нижче.",
	KeyRestartButton:      "Перезапустити",
	KeyModifyLocation:     "📍 Місцезнаходження",
	KeyModifyAction:       "📋 Проблема/Покращення",
	KeyModifySocio:        "👤 Особиста інформація",
	KeySelectAction:       "Що б ви хотіли зробити?",
	KeyYourResponse:       "Ваша відповідь:",
	KeySelectModify:       "Які частини вашої відповіді ви хотіли б змінити?",
	KeyInvalidSelection:   "Невірний вибір. Спробуйте ще раз.",
	KeyConfirmResponses:   "Будь ласка, перегляньте ваші відповіді вище. Ви підтверджуєте їх чи хотіли б щось змінити?",
	KeyModifyResponses:    "Я хочу змінити мої відповіді",
	KeyConfirmSubmission:  "Я підтверджую мої відповіді",
	KeyIssuePrompt:        "Про який тип проблеми ви хотіли б повідомити?",
	KeyImprovementPrompt:  "Яке покращення ви хотіли б запропонувати?",
	KeyLocationRequest:    "Будь ласка, надішліть місцезнаходження проблеми або де ви хотіли б бачити покращення.\n\nЩоб зробити це:\n1. Натисніть на іконку вкладення (📎) в панелі повідомлень.\n2. Виберіть 'Місцезнаходження'.\n3. Перемістіть карту до бажаного місця.\n4. Натисніть 'Надіслати це місцезнаходження'.\n\nАльтернативно, ви можете ввести адресу або описати місцезнаходження.",
	KeyAdditionalInfo:     "Чи хотіли б ви надати додаткову інформацію? Це необов'язково, але корисно.",
	KeySkipButton:         "Пропустити",
	KeyOtherOption:        "Інше (будь ласка, вкажіть)",
	KeySpecifyOther:       "Будь ласка, вкажіть:",
	KeyThankYou:           "Дякуємо! Ваше подання було отримано і буде розглянуто.",
	KeySubmissionSummary:  "Ось підсумок вашого подання:",
	KeyDoneButton:         "Готово",
	KeySubmissionReceived: "Дякуємо за ваш внесок у покращення нашого міста! Ваше подання було отримано.",
	KeySubmitAnother:      "Бажаєте подати ще одне місцезнаходження?",
	KeyLocationReceived:   "Місцезнаходження отримано",
	KeyPleaseSendLocation: "Невірне введення. Будь ласка, надішліть місцезнаходження, як вказано в інструкціях, або введіть адресу/опис місцезнаходження.",
	KeyFreeTextAdded:      "Ваше введення було додано. Ви можете вибрати більше варіантів, додати більше тексту або натиснути Готово, коли закінчите.",
	KeySelectAtLeastOne:   "Будь ласка, виберіть принаймні один варіант або введіть свій власний.",
	KeyErrorOccurred:      "Сталася помилка. Будь ласка, спробуйте пізніше.",
	KeySocioIntro:         "Чи хотіли б ви поділитися деякою інформацією про себе? Це допомагає нам зрозуміти, хто користується нашими послугами.",
	KeyAgeQuestion:        "Будь-ласка, оберіть Вашу вікову групу:",
	KeyGenderQuestion:     "Будь-ласка, оберіть Вашу стать:",
	KeyOccupationQuestion: "Будь-ласка, вкажіть Ваш рід занять:",
	KeyTimeQuestion:       "Як довго Ви живете в Турку?",
	KeyMenuOptions:        "Головне меню - Будь ласка, виберіть опцію:",
	KeyMenuReport:         "📝 Повідомити про проблему/покращення",
	KeyMenuPrivacy:        "🔒 Повідомлення про конфіденційність",
	KeyMenuInfo:           "ℹ️ Інформаційний лист для учасників",
	KeyMenuLanguage:       "🌐 Змінити мову",
	KeyBackToMenu:         "↩️ Повернутися до головного меню",
	KeyPrivacyTitle:       "🔒 Повідомлення про конфіденційність",
	KeyPrivacyLink:        "Натисніть тут, щоб переглянути повідомлення про конфіденційність:",
	KeyParticipantTitle:   "ℹ️ Інформаційний лист для учасників",
	KeyParticipantLink:    "Натисніть тут, щоб переглянути інформаційний лист для учасників:",
}

var optionsUK = map[string][]string{
	KeyConsentOptions: {"Я погоджуюсь", "Я не погоджуюсь"},
	KeyActionOptions:  {"Повідомити про проблему", "Запропонувати покращення"},
	KeyIssueList: {
		"Дим від вогню або горіння",
		"Сильний запах (каналізація тощо)",
		"Забруднення повітря (вуличний пил тощо)",
		"Квітковий пилок",
		"Нафта, фарба або хімічні відходи",
		"Цвітіння водоростей або зелена вода",
		"Незаконне скидання сміття",
		"Сміття в природних зонах",
		"Переповнені громадські урни",
		"Вандалізм (наприклад, графіті)",
		"Інше (будь ласка, вкажіть)",
	},
	KeyImprovementList: {
		"Чистіше повітря в цій зоні",
		"Краща якість води тут",
		"Покращення обслуговування цієї зони",
		"Менше шуму в цьому місці",
		"Менше світлового забруднення вночі",
		"Більше тіні або дерев у цьому місці",
		"Потрібний громадський питний фонтан",
		"Чистіший зелений простір",
		"Менше викидів транспорту в цій зоні",
		"Зменшення запахів у цій зоні",
		"Інше (будь ласка, вкажіть)",
	},
	KeySocioOptions:         {"Так", "Ні, пропустити"},
	KeySubmitAnotherOptions: {"Так, подати ще одне", "Ні, я закінчив/ла"},
	KeyAgeOptions:           {"18-25", "26-40", "41-60", "Старше 60", "Надаю перевагу не вказувати"},
	KeyGenderOptions:        {"Чоловіча", "Жіноча", "Інше", "Надаю перевагу не вказувати"},
	KeyOccupationOptions:    {"Працюю", "Не працюю", "Студент", "На пенсії", "Військова служба", "Інше", "Надаю перевагу не вказувати"},
	KeyTimeOptions:          {"Менше року", "1-3 роки", "3-10 років", "10-20 років", "Все життя", "Я не живу в Турку", "Надаю перевагу не вказувати"},
}

var labelsUK = map[string]string{
	LabelLocation:        "Місцерозташування",
	LabelIssueType:       "Тип проблеми",
	LabelImprovementType: "Тип покращення",
	LabelAge:             "Вік",
	LabelGender:          "Стать",
	LabelOccupation:      "Рід занять",
	LabelTimeInTurku:     "Час проживання в Турку",
}

var linksUK = map[string]string{
	LinkPrivacyNotice:   "https://telegra.ph/Povіdomlennya-pro-konfіdencіjnіst-TurkuSPOT--Ukrainskoyu-03-28",
	LinkParticipantInfo: "https://telegra.ph/Іnformacіjnij-list-dlya-uchasnikіv-proyektu-TurkuSPOT--Ukrainskoyu-03-28",
}

// Package i18n provides internationalization support for the rocket simulator.
// It holds every prompt and message printed by the console dialogues.
package i18n

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Translatef translates key and formats the result with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// Supports reports whether the translator has a catalog for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// ParseLocale extracts a supported base language from a locale string such as
// "pt_BR.UTF-8", "en-US" or "en-US,en;q=0.9,pt;q=0.8".
// Falls back to DefaultLocale.
func ParseLocale(value string) string {
	if value == "" {
		return DefaultLocale
	}

	lang := strings.TrimSpace(strings.Split(strings.Split(value, ",")[0], ";")[0])
	if idx := strings.IndexAny(lang, "-_."); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Rocket dialogue
			KeyRocketWelcome:            "Welcome to the Rocket Simulation!",
			KeyPromptRadius:             "Enter the rocket radius in feet: ",
			KeyPromptConeHeight:         "Enter the rocket cone height in feet: ",
			KeyPromptCylinderHeight:     "Enter the rocket cylinder height in feet: ",
			KeyPromptExhaustVelocity:    "Enter the exhaust velocity for the upcoming trip: ",
			KeyPromptInitialVelocity:    "Enter the initial velocity for the upcoming trip: ",
			KeyPromptAngle:              "Enter the angle of launch for the upcoming trip: ",
			KeyPromptTripTime:           "Enter the length of the upcoming trip: ",
			KeyPromptTax:                "Would you like to factor in tax? 1 for yes, 0 for no: ",
			KeyTripCost:                 "This trip will cost $%s",
			KeyLoading:                  "Now loading the rocket:",
			KeyLoadedWeight:             "The rocket and its equipment will weigh %s kg",
			KeyPromptSimulationTime:     "Enter the simulation total time: ",
			KeyPromptSimulationInterval: "Enter the simulation interval: ",
			KeySimulating:               "Now simulating the rocket trajectory:",

			// Cargo loading
			KeyPromptItemWeight: "Please enter the weight of the next item (type \"Done\" when you are done filling the rocket): ",
			KeyPromptItemWidth:  "Enter item width: ",
			KeyPromptItemLength: "Enter item length: ",
			KeyPromptItemHeight: "Enter item height: ",
			KeyCargoFull:        "No more items can be added",
			KeyCargoRejected:    "Item could not be added... please try again...",
			KeyCargoMalformed:   "That is not a number... please try again...",

			// Study questionnaire
			KeyPromptAttendance:          "How many hours out of 10 do you spend on attending class? ",
			KeyPromptCoding:              "How many hours do you practice coding and review concepts each week? (out of 10): ",
			KeyPromptFocus:               "How many deep hours per week on average do you spend studying without distractions: ",
			KeyPromptSleep:               "How many hours of sleep do you have per night on average? (out of 24): ",
			KeyPromptExercise:            "How many hours do you spend on exercise and/or hobbies and/or time socializing with friends or family per week? (out of 10): ",
			KeyPromptHelp:                "Do you ask for help when stuck? (yes/no): ",
			KeyAnswerYes:                 "yes",
			KeyStudyScore:                "Your success score is: %s",
			KeyStudyOnTrack:              "You're on track to do well in your class!",
			KeyStudyLow:                  "Your success score is low. Below are suggestions to improve score:",
			"study.recommend.focus":      "Consider improving your sleep and focus habits:",
			"study.recommend.sleep":      "try sleeping for more than 6 hours",
			"study.recommend.deep_focus": "make sure to get at least 3 hours of deep focus without any distractions.",
			"study.recommend.attendance": "Consider attending more classes.",
			"study.recommend.coding":     "Consider practicing coding more.",
			"study.recommend.help":       "Consider asking for help when stuck.",
		},
		"pt": {
			// Rocket dialogue
			KeyRocketWelcome:            "Bem-vindo à Simulação de Foguete!",
			KeyPromptRadius:             "Informe o raio do foguete em pés: ",
			KeyPromptConeHeight:         "Informe a altura do cone do foguete em pés: ",
			KeyPromptCylinderHeight:     "Informe a altura do cilindro do foguete em pés: ",
			KeyPromptExhaustVelocity:    "Informe a velocidade de exaustão da próxima viagem: ",
			KeyPromptInitialVelocity:    "Informe a velocidade inicial da próxima viagem: ",
			KeyPromptAngle:              "Informe o ângulo de lançamento da próxima viagem: ",
			KeyPromptTripTime:           "Informe a duração da próxima viagem: ",
			KeyPromptTax:                "Deseja incluir impostos? 1 para sim, 0 para não: ",
			KeyTripCost:                 "Esta viagem custará $%s",
			KeyLoading:                  "Carregando o foguete:",
			KeyLoadedWeight:             "O foguete e seu equipamento pesarão %s kg",
			KeyPromptSimulationTime:     "Informe o tempo total da simulação: ",
			KeyPromptSimulationInterval: "Informe o intervalo da simulação: ",
			KeySimulating:               "Simulando a trajetória do foguete:",

			// Cargo loading
			KeyPromptItemWeight: "Informe o peso do próximo item (digite \"Done\" quando terminar de carregar o foguete): ",
			KeyPromptItemWidth:  "Informe a largura do item: ",
			KeyPromptItemLength: "Informe o comprimento do item: ",
			KeyPromptItemHeight: "Informe a altura do item: ",
			KeyCargoFull:        "Nenhum item pode mais ser adicionado",
			KeyCargoRejected:    "O item não pôde ser adicionado... tente novamente...",
			KeyCargoMalformed:   "Isso não é um número... tente novamente...",

			// Study questionnaire
			KeyPromptAttendance:          "Quantas horas, de 10, você passa assistindo às aulas? ",
			KeyPromptCoding:              "Quantas horas por semana você pratica programação e revisa conceitos? (de 10): ",
			KeyPromptFocus:               "Quantas horas profundas por semana, em média, você estuda sem distrações: ",
			KeyPromptSleep:               "Quantas horas você dorme por noite, em média? (de 24): ",
			KeyPromptExercise:            "Quantas horas por semana você dedica a exercícios, hobbies ou convívio com amigos e família? (de 10): ",
			KeyPromptHelp:                "Você pede ajuda quando está travado? (sim/não): ",
			KeyAnswerYes:                 "sim",
			KeyStudyScore:                "Sua pontuação de sucesso é: %s",
			KeyStudyOnTrack:              "Você está no caminho certo para ir bem na disciplina!",
			KeyStudyLow:                  "Sua pontuação de sucesso está baixa. Sugestões para melhorar:",
			"study.recommend.focus":      "Considere melhorar seus hábitos de sono e foco:",
			"study.recommend.sleep":      "tente dormir mais de 6 horas",
			"study.recommend.deep_focus": "garanta pelo menos 3 horas de foco profundo sem distrações.",
			"study.recommend.attendance": "Considere assistir a mais aulas.",
			"study.recommend.coding":     "Considere praticar mais programação.",
			"study.recommend.help":       "Considere pedir ajuda quando estiver travado.",
		},
		"nl": {
			// Rocket dialogue
			KeyRocketWelcome:            "Welkom bij de Raketsimulatie!",
			KeyPromptRadius:             "Voer de straal van de raket in voet in: ",
			KeyPromptConeHeight:         "Voer de hoogte van de neuskegel in voet in: ",
			KeyPromptCylinderHeight:     "Voer de hoogte van de cilinder in voet in: ",
			KeyPromptExhaustVelocity:    "Voer de uitstroomsnelheid voor de komende reis in: ",
			KeyPromptInitialVelocity:    "Voer de beginsnelheid voor de komende reis in: ",
			KeyPromptAngle:              "Voer de lanceerhoek voor de komende reis in: ",
			KeyPromptTripTime:           "Voer de duur van de komende reis in: ",
			KeyPromptTax:                "Wilt u belasting meerekenen? 1 voor ja, 0 voor nee: ",
			KeyTripCost:                 "Deze reis kost $%s",
			KeyLoading:                  "De raket wordt geladen:",
			KeyLoadedWeight:             "De raket en de uitrusting wegen %s kg",
			KeyPromptSimulationTime:     "Voer de totale simulatietijd in: ",
			KeyPromptSimulationInterval: "Voer het simulatie-interval in: ",
			KeySimulating:               "De baan van de raket wordt gesimuleerd:",

			// Cargo loading
			KeyPromptItemWeight: "Voer het gewicht van het volgende item in (typ \"Done\" als u klaar bent met laden): ",
			KeyPromptItemWidth:  "Voer de breedte van het item in: ",
			KeyPromptItemLength: "Voer de lengte van het item in: ",
			KeyPromptItemHeight: "Voer de hoogte van het item in: ",
			KeyCargoFull:        "Er kunnen geen items meer worden toegevoegd",
			KeyCargoRejected:    "Item kon niet worden toegevoegd... probeer het opnieuw...",
			KeyCargoMalformed:   "Dat is geen getal... probeer het opnieuw...",

			// Study questionnaire
			KeyPromptAttendance:          "Hoeveel uur van de 10 besteedt u aan het bijwonen van lessen? ",
			KeyPromptCoding:              "Hoeveel uur per week oefent u programmeren en herhaalt u de stof? (van de 10): ",
			KeyPromptFocus:               "Hoeveel uur per week studeert u gemiddeld geconcentreerd zonder afleiding: ",
			KeyPromptSleep:               "Hoeveel uur slaapt u gemiddeld per nacht? (van de 24): ",
			KeyPromptExercise:            "Hoeveel uur per week besteedt u aan sport, hobby's of tijd met vrienden en familie? (van de 10): ",
			KeyPromptHelp:                "Vraagt u om hulp als u vastloopt? (ja/nee): ",
			KeyAnswerYes:                 "ja",
			KeyStudyScore:                "Uw successcore is: %s",
			KeyStudyOnTrack:              "U bent goed op weg om deze cursus te halen!",
			KeyStudyLow:                  "Uw successcore is laag. Hieronder suggesties om die te verbeteren:",
			"study.recommend.focus":      "Overweeg uw slaap- en concentratiegewoonten te verbeteren:",
			"study.recommend.sleep":      "probeer meer dan 6 uur te slapen",
			"study.recommend.deep_focus": "zorg voor minstens 3 uur diepe concentratie zonder afleiding.",
			"study.recommend.attendance": "Overweeg meer lessen bij te wonen.",
			"study.recommend.coding":     "Overweeg vaker te oefenen met programmeren.",
			"study.recommend.help":       "Overweeg om hulp te vragen als u vastloopt.",
		},
	}
}

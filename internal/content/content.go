// Package content holds the built-in deck: six sections, each with an
// optional card list, in two translations. Pure data binding — every
// decision about what to show when lives in the nav engine, not here.
package content

import "github.com/sixfold/wheelhouse/internal/prefs"

// SectionCount is the fixed deck length.
const SectionCount = 6

// Card is one entry in a section's card list.
type Card struct {
	Title  string
	Detail string
}

// Section is one full-screen horizontal panel.
type Section struct {
	ID      string
	Title   string
	Tagline string
	Body    []string
	Cards   []Card
}

// DeckTitle returns the landing-screen title for a language.
func DeckTitle(lang prefs.Language) string {
	if lang == prefs.LanguageGerman {
		return "wheelhouse — ein Deck zum Durchdrehen"
	}
	return "wheelhouse — a deck you drive by wheel"
}

// Deck returns the section slice for a language. The slice is freshly
// built per call so callers may hold and mutate pane state alongside it.
func Deck(lang prefs.Language) []Section {
	if lang == prefs.LanguageGerman {
		return germanDeck()
	}
	return englishDeck()
}

func englishDeck() []Section {
	return []Section{
		{
			ID:      "overview",
			Title:   "Overview",
			Tagline: "One wheel, two axes.",
			Body: []string{
				"wheelhouse lays its content out as a row of full-screen sections. Inside each section lives a pane of text that scrolls the ordinary way.",
				"The wheel does double duty: mid-pane it scrolls the text, and at the pane's edge it carries you to the neighbouring section. No extra chords, no modes to memorise.",
				"Scroll down to leave this landing screen and start browsing.",
			},
		},
		{
			ID:      "navigation",
			Title:   "Navigation",
			Tagline: "Edges are doors.",
			Body: []string{
				"Reaching the bottom of a pane and scrolling on advances to the next section. Scrolling up at the top of any pane returns you to the landing screen.",
				"Bursty input is throttled: only one section move is accepted per cooldown window, and while a move is animating further wheel input is swallowed whole.",
			},
			Cards: []Card{
				{Title: "wheel / j / k", Detail: "scroll the pane; cross at the edges"},
				{Title: "← / →", Detail: "jump one section, no cooldown"},
				{Title: "1–6", Detail: "jump straight to a section"},
				{Title: "esc", Detail: "back to the landing screen"},
			},
		},
		{
			ID:      "sections",
			Title:   "Sections",
			Tagline: "Six panels, one row.",
			Body: []string{
				"The deck is a fixed set of six sections. The dots in the header mirror your position; the highlighted dot is the settled section.",
				"A section whose text fits its pane has nothing to scroll, so the wheel maps straight onto horizontal movement there.",
			},
		},
		{
			ID:      "picker",
			Title:   "Quick jump",
			Tagline: "Type, match, go.",
			Body: []string{
				"Press / to open the jump picker. Type a few characters of a section title and the list narrows as you go; enter commits the jump.",
				"A picker jump is an explicit control: it takes priority over wheel momentum, which is suppressed until the transition lands.",
			},
		},
		{
			ID:      "preferences",
			Title:   "Preferences",
			Tagline: "One key, one file.",
			Body: []string{
				"Press l to flip the deck between English and German. The choice is written to a small preference file and read back on the next start.",
				"Edit the file from outside while wheelhouse runs and it follows along; the deck re-renders in place.",
			},
		},
		{
			ID:      "colophon",
			Title:   "Colophon",
			Tagline: "Plumbing on display.",
			Body: []string{
				"Run with -trace to stream every classified wheel event, accepted or dropped, into the log as JSON. Dropped events are policy, not errors: the cooldown and the transition lock both discard input silently.",
				"Narrow terminals fall back to a single stacked pane with native scrolling and no landing screen.",
			},
		},
	}
}

func germanDeck() []Section {
	return []Section{
		{
			ID:      "overview",
			Title:   "Überblick",
			Tagline: "Ein Rad, zwei Achsen.",
			Body: []string{
				"wheelhouse ordnet seinen Inhalt als Reihe bildschirmfüllender Abschnitte an. In jedem Abschnitt steckt eine Textfläche, die ganz gewöhnlich scrollt.",
				"Das Rad arbeitet doppelt: mitten im Text scrollt es, an dessen Rand trägt es dich zum Nachbarabschnitt. Keine Zusatztasten, keine Modi zum Auswendiglernen.",
				"Nach unten scrollen verlässt diesen Startbildschirm und beginnt das Blättern.",
			},
		},
		{
			ID:      "navigation",
			Title:   "Navigation",
			Tagline: "Ränder sind Türen.",
			Body: []string{
				"Wer am unteren Rand einer Fläche weiterscrollt, rückt zum nächsten Abschnitt vor. Aufwärtsscrollen am oberen Rand führt zurück zum Startbildschirm.",
				"Stoßweise Eingaben werden gedrosselt: pro Abklingfenster wird nur ein Abschnittswechsel angenommen, und während der Animation verschluckt das Programm weitere Raddrehungen vollständig.",
			},
			Cards: []Card{
				{Title: "Rad / j / k", Detail: "Fläche scrollen; an den Rändern wechseln"},
				{Title: "← / →", Detail: "einen Abschnitt springen, ohne Abklingzeit"},
				{Title: "1–6", Detail: "direkt zu einem Abschnitt springen"},
				{Title: "esc", Detail: "zurück zum Startbildschirm"},
			},
		},
		{
			ID:      "sections",
			Title:   "Abschnitte",
			Tagline: "Sechs Tafeln, eine Reihe.",
			Body: []string{
				"Das Deck ist ein fester Satz von sechs Abschnitten. Die Punkte in der Kopfzeile spiegeln die Position; der hervorgehobene Punkt ist der aktuelle Abschnitt.",
				"Passt der Text eines Abschnitts vollständig in seine Fläche, gibt es nichts zu scrollen — dort wirkt das Rad unmittelbar horizontal.",
			},
		},
		{
			ID:      "picker",
			Title:   "Schnellsprung",
			Tagline: "Tippen, treffen, los.",
			Body: []string{
				"Mit / öffnet sich die Sprungauswahl. Ein paar Zeichen eines Titels genügen, die Liste verengt sich beim Tippen; Enter führt den Sprung aus.",
				"Ein Sprung aus der Auswahl ist ein ausdrücklicher Befehl: er hat Vorrang vor Radschwung, der bis zum Ende des Übergangs unterdrückt wird.",
			},
		},
		{
			ID:      "preferences",
			Title:   "Einstellungen",
			Tagline: "Eine Taste, eine Datei.",
			Body: []string{
				"Die Taste l schaltet das Deck zwischen Deutsch und Englisch um. Die Wahl landet in einer kleinen Einstellungsdatei und wird beim nächsten Start wieder gelesen.",
				"Wird die Datei von außen geändert, während wheelhouse läuft, zieht das Deck nach und rendert an Ort und Stelle neu.",
			},
		},
		{
			ID:      "colophon",
			Title:   "Kolophon",
			Tagline: "Technik zum Zusehen.",
			Body: []string{
				"Mit -trace wandert jedes klassifizierte Rad-Ereignis — angenommen oder verworfen — als JSON ins Log. Verworfene Ereignisse sind Absicht, keine Fehler: Abklingfenster und Übergangssperre verwerfen Eingaben lautlos.",
				"Schmale Terminals fallen auf eine einzelne gestapelte Fläche mit nativem Scrollen zurück, ohne Startbildschirm.",
			},
		},
	}
}

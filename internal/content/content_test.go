package content

import (
	"testing"

	"github.com/sixfold/wheelhouse/internal/prefs"
)

func TestDeckHasFixedLength(t *testing.T) {
	for _, lang := range []prefs.Language{prefs.LanguageEnglish, prefs.LanguageGerman} {
		deck := Deck(lang)
		if len(deck) != SectionCount {
			t.Fatalf("%s deck has %d sections, expected %d", lang, len(deck), SectionCount)
		}
	}
}

func TestDeckIDsStableAcrossLanguages(t *testing.T) {
	en := Deck(prefs.LanguageEnglish)
	de := Deck(prefs.LanguageGerman)
	for i := range en {
		if en[i].ID != de[i].ID {
			t.Fatalf("section %d: id %q != %q", i, en[i].ID, de[i].ID)
		}
		if en[i].ID == "" {
			t.Fatalf("section %d has empty id", i)
		}
	}
}

func TestDeckSectionsAreComplete(t *testing.T) {
	for _, lang := range []prefs.Language{prefs.LanguageEnglish, prefs.LanguageGerman} {
		for i, sec := range Deck(lang) {
			if sec.Title == "" {
				t.Fatalf("%s section %d missing title", lang, i)
			}
			if sec.Tagline == "" {
				t.Fatalf("%s section %d missing tagline", lang, i)
			}
			if len(sec.Body) == 0 {
				t.Fatalf("%s section %d has no body", lang, i)
			}
			for j, card := range sec.Cards {
				if card.Title == "" || card.Detail == "" {
					t.Fatalf("%s section %d card %d incomplete", lang, i, j)
				}
			}
		}
	}
}

func TestDeckCardParity(t *testing.T) {
	en := Deck(prefs.LanguageEnglish)
	de := Deck(prefs.LanguageGerman)
	for i := range en {
		if len(en[i].Cards) != len(de[i].Cards) {
			t.Fatalf("section %q: card count differs between languages", en[i].ID)
		}
	}
}

func TestDeckTitleTranslated(t *testing.T) {
	if DeckTitle(prefs.LanguageEnglish) == DeckTitle(prefs.LanguageGerman) {
		t.Fatalf("expected distinct deck titles per language")
	}
}

package studio

import (
	"regexp"
	"strings"
	"testing"
)

func TestHeadlineLabels(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"boarded tanker", "Marine enterte Tanker im Mittelmeer", "MARINE"},
		{"tanker alone", "Tanker treibt manövrierunfähig vor Gibraltar", "TANKER"},
		{"eu beats tariffs", "EU kündigt neue Zölle gegen China an", "EU"},
		{"tariffs without actor", "Neue Zölle auf Stahlimporte beschlossen", "ZÖLLE"},
		{"nato", "NATO verstärkt die Ostflanke", "NATO"},
		{"ukraine", "Selenskyj reist nach Berlin", "UKRAINE"},
		{"greenland umlaut label", "Grönland debattiert über Unabhängigkeit", "GRÖNLAND"},
		{"summit", "Staatsbesuch in Washington angekündigt", "GIPFEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Headline(tt.title); got != tt.want {
				t.Errorf("Headline(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestHeadlineFallback(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"first content word", "Bahnstreik legt Verkehr lahm", "BAHNSTREIK"},
		{"colon takes main clause", "Liveblog: Bahnstreik beginnt", "BAHNSTREIK"},
		{"compound not copied", "Öltanker havariert vor Rügen", "ÖLTANKER"},
		{"letter number collapse", "G 20 beraten in Rom", "G20 BERATEN"},
		{"collapsed form keeps second", "G7 Finanzminister beschließen Hilfspaket", "G7 FINANZMINISTER"},
		{"acronym keeps second", "ADAC warnt Autofahrer", "ADAC WARNT"},
		{"empty", "", "NEWS"},
		{"stopwords only", "der die das und", "NEWS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Headline(tt.title); got != tt.want {
				t.Errorf("Headline(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

// One or two uppercase tokens, no sentence punctuation, for any input.
func TestHeadlineShape(t *testing.T) {
	token := regexp.MustCompile(`^[0-9A-ZÄÖÜß-]+$`)

	inputs := []string{
		"",
		"   ",
		"Marine enterte Tanker im Mittelmeer",
		"EU kündigt neue Zölle gegen China an",
		"Bahnstreik legt Verkehr lahm!",
		"Liveblog: Lage am Morgen",
		"???",
		`"Zitat des Tages" sorgt für Wirbel`,
		"G 20 beraten in Rom",
	}

	for _, in := range inputs {
		got := Headline(NormalizeTitle(in))
		if got == "" {
			t.Errorf("Headline(%q) is empty", in)
			continue
		}
		words := strings.Fields(got)
		if len(words) < 1 || len(words) > 2 {
			t.Errorf("Headline(%q) = %q: want 1-2 words, got %d", in, got, len(words))
		}
		for _, w := range words {
			if !token.MatchString(w) {
				t.Errorf("Headline(%q) = %q: token %q not uppercase alphanumeric", in, got, w)
			}
		}
		if got != strings.ToUpper(got) {
			t.Errorf("Headline(%q) = %q: not uppercase", in, got)
		}
	}
}

package i18n

import "testing"

func TestLookupPerLanguage(t *testing.T) {
	if got := T(French, "cities.algiers"); got != "Alger" {
		t.Fatalf("fr cities.algiers = %q", got)
	}
	if got := T(English, "cities.algiers"); got != "Algiers" {
		t.Fatalf("en cities.algiers = %q", got)
	}
	if got := T(Arabic, "cities.algiers"); got != "الجزائر" {
		t.Fatalf("ar cities.algiers = %q", got)
	}
}

func TestFallbackToArabicThenKey(t *testing.T) {
	// Unknown language falls back to the Arabic table.
	if got := T("es", "common.loading"); got != T(Arabic, "common.loading") {
		t.Fatalf("unknown language did not fall back to Arabic, got %q", got)
	}
	// Unknown key falls back to the key itself.
	if got := T(English, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key fallback = %q", got)
	}
}

func TestRTL(t *testing.T) {
	if !IsRTL(Arabic) {
		t.Fatalf("Arabic must be RTL")
	}
	if IsRTL(French) || IsRTL(English) {
		t.Fatalf("French/English must be LTR")
	}
}

func TestAllCitiesTranslatedEverywhere(t *testing.T) {
	cities := []string{
		"algiers", "oran", "constantine", "annaba", "setif",
		"batna", "blida", "sidi_bel_abbes", "tlemcen", "biskra",
	}
	for _, lang := range []string{Arabic, French, English} {
		for _, c := range cities {
			key := "cities." + c
			if got := T(lang, key); got == key {
				t.Fatalf("missing %s translation for %s", lang, key)
			}
		}
	}
}

package i18n

import "testing"

func TestTranslationsResolveForSupportedLanguages(t *testing.T) {
	for _, lang := range []Language{LangEnglish, LangGujarati, LangHindi} {
		if got := T(lang, KeyCalling); got == string(KeyCalling) {
			t.Fatalf("language %s: KeyCalling fell through to the raw key", lang)
		}
	}
}

func TestMissingTranslationFallsBackToEnglish(t *testing.T) {
	// KeyNotUnderstood has no Gujarati or Hindi row.
	want := T(LangEnglish, KeyNotUnderstood)
	for _, lang := range []Language{LangGujarati, LangHindi} {
		if got := T(lang, KeyNotUnderstood); got != want {
			t.Fatalf("language %s: got %q, want English fallback %q", lang, got, want)
		}
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	if got := T(Language("mr"), KeyNavigating); got != T(LangEnglish, KeyNavigating) {
		t.Fatalf("unexpected resolution %q", got)
	}
}

func TestUnknownKeyFallsBackToRawKey(t *testing.T) {
	key := Key("voice.bogus")
	if got := T(LangEnglish, key); got != string(key) {
		t.Fatalf("got %q, want raw key", got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported(LangEnglish) || !Supported(LangGujarati) || !Supported(LangHindi) {
		t.Fatal("core languages must be supported")
	}
	if Supported(Language("fr")) {
		t.Fatal("unknown language must not be supported")
	}
}

package classifier

import (
	"testing"

	"texportal_backend/internal/i18n"
	"texportal_backend/internal/navigation"
)

func TestClassifyEnglishNavigation(t *testing.T) {
	cases := []struct {
		utterance string
		screen    string
	}{
		{"open leads", navigation.ScreenLeads},
		{"Go To Payments", navigation.ScreenPayments},
		{"show me the inventory", navigation.ScreenInventory},
		{"take me to the dashboard", navigation.ScreenDashboard},
		{"open stock", navigation.ScreenInventory},
	}
	for _, tc := range cases {
		intent := Classify(tc.utterance, i18n.LangEnglish)
		nav, ok := intent.(NavigateIntent)
		if !ok {
			t.Fatalf("%q: expected NavigateIntent, got %T", tc.utterance, intent)
		}
		if nav.TargetScreen != tc.screen {
			t.Fatalf("%q: got screen %q, want %q", tc.utterance, nav.TargetScreen, tc.screen)
		}
	}
}

func TestClassifyLeadFilterBeatsGenericNavigation(t *testing.T) {
	// "show hot leads" contains both a navigation verb and the "lead"
	// screen alias; the filter rule must win because it is listed first.
	intent := Classify("show hot leads", i18n.LangEnglish)
	action, ok := intent.(DomainActionIntent)
	if !ok {
		t.Fatalf("expected DomainActionIntent, got %T", intent)
	}
	if action.Action != ActionFilterLeads || action.Argument != "hot" {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestClassifyStatusPresetNavigation(t *testing.T) {
	intent := Classify("show pending quotes", i18n.LangEnglish)
	nav, ok := intent.(NavigateIntent)
	if !ok {
		t.Fatalf("expected NavigateIntent, got %T", intent)
	}
	if nav.TargetScreen != navigation.ScreenQuotes || nav.StatusFilter != "pending" {
		t.Fatalf("unexpected target %+v", nav)
	}

	intent = Classify("open overdue invoices", i18n.LangEnglish)
	nav, ok = intent.(NavigateIntent)
	if !ok {
		t.Fatalf("expected NavigateIntent, got %T", intent)
	}
	if nav.TargetScreen != navigation.ScreenInvoices || nav.StatusFilter != "overdue" {
		t.Fatalf("unexpected target %+v", nav)
	}
}

func TestClassifyCallBeatsSearch(t *testing.T) {
	intent := Classify("call Rajesh", i18n.LangEnglish)
	action, ok := intent.(DomainActionIntent)
	if !ok {
		t.Fatalf("expected DomainActionIntent, got %T", intent)
	}
	if action.Action != ActionCall || action.Argument != "rajesh" {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestClassifyMessage(t *testing.T) {
	intent := Classify("whatsapp meena textiles", i18n.LangEnglish)
	action, ok := intent.(DomainActionIntent)
	if !ok {
		t.Fatalf("expected DomainActionIntent, got %T", intent)
	}
	if action.Action != ActionMessage || action.Argument != "meena textiles" {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestClassifySearch(t *testing.T) {
	cases := []struct {
		utterance string
		query     string
	}{
		{"search for cotton", "cotton"},
		{"find bharat exports", "bharat exports"},
		{"look for silk sarees", "silk sarees"},
	}
	for _, tc := range cases {
		intent := Classify(tc.utterance, i18n.LangEnglish)
		search, ok := intent.(SearchIntent)
		if !ok {
			t.Fatalf("%q: expected SearchIntent, got %T", tc.utterance, intent)
		}
		if search.Query != tc.query {
			t.Fatalf("%q: got query %q, want %q", tc.utterance, search.Query, tc.query)
		}
	}
}

func TestClassifyGujarati(t *testing.T) {
	intent := Classify("Rajesh ne call karo", i18n.LangGujarati)
	action, ok := intent.(DomainActionIntent)
	if !ok {
		t.Fatalf("expected DomainActionIntent, got %T", intent)
	}
	if action.Action != ActionCall || action.Argument != "rajesh" {
		t.Fatalf("unexpected action %+v", action)
	}

	intent = Classify("grahak kholo", i18n.LangGujarati)
	nav, ok := intent.(NavigateIntent)
	if !ok {
		t.Fatalf("expected NavigateIntent, got %T", intent)
	}
	if nav.TargetScreen != navigation.ScreenCustomers {
		t.Fatalf("unexpected screen %q", nav.TargetScreen)
	}

	intent = Classify("cotton shodho", i18n.LangGujarati)
	search, ok := intent.(SearchIntent)
	if !ok {
		t.Fatalf("expected SearchIntent, got %T", intent)
	}
	if search.Query != "cotton" {
		t.Fatalf("unexpected query %q", search.Query)
	}
}

func TestClassifyHindi(t *testing.T) {
	intent := Classify("Meena ko message bhejo", i18n.LangHindi)
	action, ok := intent.(DomainActionIntent)
	if !ok {
		t.Fatalf("expected DomainActionIntent, got %T", intent)
	}
	if action.Action != ActionMessage || action.Argument != "meena" {
		t.Fatalf("unexpected action %+v", action)
	}

	intent = Classify("bhugtan dikhao", i18n.LangHindi)
	nav, ok := intent.(NavigateIntent)
	if !ok {
		t.Fatalf("expected NavigateIntent, got %T", intent)
	}
	if nav.TargetScreen != navigation.ScreenPayments {
		t.Fatalf("unexpected screen %q", nav.TargetScreen)
	}
}

func TestClassifyUnsupportedLanguageFallsBackToEnglishRules(t *testing.T) {
	intent := Classify("open leads", i18n.Language("mr"))
	if _, ok := intent.(NavigateIntent); !ok {
		t.Fatalf("expected English rules to apply, got %T", intent)
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	cases := []string{"", "   ", "what is the weather"}
	for _, utterance := range cases {
		intent := Classify(utterance, i18n.LangEnglish)
		if _, ok := intent.(UnrecognizedIntent); !ok {
			t.Fatalf("%q: expected UnrecognizedIntent, got %T", utterance, intent)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	// An utterance naming two screens must resolve identically on every
	// call: alias tables are ordered, not map-iterated.
	var first Intent
	for i := 0; i < 20; i++ {
		intent := Classify("show customer orders", i18n.LangEnglish)
		if i == 0 {
			first = intent
			continue
		}
		if intent != first {
			t.Fatalf("classification varies across runs: %+v vs %+v", intent, first)
		}
	}
}

package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"national with spaces", "98251 12345", "+919825112345"},
		{"already e164", "+919825112345", "+919825112345"},
		{"formatted international", "+91 98251 12345", "+919825112345"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"unparseable returns trimmed input", " not a number ", "not a number"},
		{"invalid number returns trimmed input", "12345", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeE164(tc.input); got != tc.want {
				t.Fatalf("NormalizeE164(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestDialURL(t *testing.T) {
	if got := DialURL("98251 12345"); got != "tel:+919825112345" {
		t.Fatalf("DialURL = %q", got)
	}
}

func TestWhatsAppURL(t *testing.T) {
	if got := WhatsAppURL("+91 98251 12345", ""); got != "https://wa.me/919825112345" {
		t.Fatalf("WhatsAppURL without message = %q", got)
	}
	if got := WhatsAppURL("+91 98251 12345", "namaste, rate please"); got != "https://wa.me/919825112345?text=namaste%2C+rate+please" {
		t.Fatalf("WhatsAppURL with message = %q", got)
	}
}

// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "IN"

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// DialURL builds a tel: link for the given number. Voice "call" actions hand
// this to the client, which opens the device dialer.
func DialURL(input string) string {
	return "tel:" + NormalizeE164(input)
}

// WhatsAppURL builds a wa.me link for the given number with an optional
// prefilled message. The number is sent without the leading plus, per wa.me.
func WhatsAppURL(input, message string) string {
	normalized := strings.TrimPrefix(NormalizeE164(input), "+")
	link := "https://wa.me/" + normalized
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

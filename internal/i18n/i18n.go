// Package i18n holds the closed translation dictionary: a finite key
// enumeration mapped to per-language strings with a typed accessor that
// fails closed. Lookup order is requested language, then English, then the
// key itself, so a missing translation can never surface as a blank string.
package i18n

// Language is a supported interface language.
type Language string

const (
	LangEnglish  Language = "en"
	LangGujarati Language = "gu"
	LangHindi    Language = "hi"
)

// Supported reports whether the language has a dictionary.
func Supported(lang Language) bool {
	switch lang {
	case LangEnglish, LangGujarati, LangHindi:
		return true
	}
	return false
}

// Key is a translation dictionary key. The set of keys is closed: adding a
// message means adding a constant here and rows to the tables below.
type Key string

const (
	KeyNavigating       Key = "voice.navigating"
	KeySearching        Key = "voice.searching"
	KeyCalling          Key = "voice.calling"
	KeyMessaging        Key = "voice.messaging"
	KeyShowingHotLeads  Key = "voice.showing_hot_leads"
	KeyShowingWarmLeads Key = "voice.showing_warm_leads"
	KeyShowingColdLeads Key = "voice.showing_cold_leads"
	KeyContactNotFound  Key = "voice.contact_not_found"
	KeyNotUnderstood    Key = "voice.not_understood"
)

var dictionaries = map[Language]map[Key]string{
	LangEnglish: {
		KeyNavigating:       "Opening %s",
		KeySearching:        "Searching for %s",
		KeyCalling:          "Calling %s",
		KeyMessaging:        "Messaging %s",
		KeyShowingHotLeads:  "Showing hot leads",
		KeyShowingWarmLeads: "Showing warm leads",
		KeyShowingColdLeads: "Showing cold leads",
		KeyContactNotFound:  "Could not find %s in your contacts",
		KeyNotUnderstood:    "Searching for what you said instead",
	},
	LangGujarati: {
		KeyNavigating:       "%s kholi rahya chhie",
		KeySearching:        "%s shodhi rahya chhie",
		KeyCalling:          "%s ne call kari rahya chhie",
		KeyMessaging:        "%s ne sandesh mokli rahya chhie",
		KeyShowingHotLeads:  "Garam leads batavi rahya chhie",
		KeyShowingWarmLeads: "Madhyam leads batavi rahya chhie",
		KeyShowingColdLeads: "Thandi leads batavi rahya chhie",
		KeyContactNotFound:  "%s sampark ma malya nathi",
	},
	LangHindi: {
		KeyNavigating:       "%s khol rahe hain",
		KeySearching:        "%s khoj rahe hain",
		KeyCalling:          "%s ko call kar rahe hain",
		KeyMessaging:        "%s ko sandesh bhej rahe hain",
		KeyShowingHotLeads:  "Hot leads dikha rahe hain",
		KeyShowingWarmLeads: "Warm leads dikha rahe hain",
		KeyShowingColdLeads: "Cold leads dikha rahe hain",
		KeyContactNotFound:  "%s sampark mein nahin mila",
	},
}

// T resolves a key for a language. Missing translations fall back to
// English, then to the raw key.
func T(lang Language, key Key) string {
	if table, ok := dictionaries[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := dictionaries[LangEnglish][key]; ok {
		return msg
	}
	return string(key)
}

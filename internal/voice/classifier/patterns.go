package classifier

import (
	"strings"

	"texportal_backend/internal/i18n"
	"texportal_backend/internal/navigation"
)

// Rule list construction helpers. Each helper returns a rule whose match
// function extracts the argument the intent needs.

// containsAny builds a rule that fires when any trigger phrase appears
// anywhere in the utterance.
func containsAny(name string, intent Intent, triggers ...string) rule {
	return rule{
		name: name,
		match: func(utterance string) (Intent, bool) {
			for _, t := range triggers {
				if strings.Contains(utterance, t) {
					return intent, true
				}
			}
			return nil, false
		},
	}
}

// prefixArg builds a rule that fires when the utterance starts with a
// trigger; the remainder becomes the argument.
func prefixArg(name string, build func(arg string) Intent, triggers ...string) rule {
	return rule{
		name: name,
		match: func(utterance string) (Intent, bool) {
			for _, t := range triggers {
				if rest, ok := strings.CutPrefix(utterance, t); ok {
					arg := strings.TrimSpace(rest)
					if arg != "" {
						return build(arg), true
					}
				}
			}
			return nil, false
		},
	}
}

// suffixArg builds a rule that fires when the utterance ends with a
// trigger; the leading part becomes the argument. Gujarati and Hindi put
// the verb last ("rajesh ne call karo"), so their rules are suffix based.
func suffixArg(name string, build func(arg string) Intent, triggers ...string) rule {
	return rule{
		name: name,
		match: func(utterance string) (Intent, bool) {
			for _, t := range triggers {
				if head, ok := strings.CutSuffix(utterance, t); ok {
					arg := strings.TrimSpace(head)
					if arg != "" {
						return build(arg), true
					}
				}
			}
			return nil, false
		},
	}
}

// screenAlias binds one spoken phrase to a screen. Alias tables are
// ordered slices, not maps: when an utterance mentions two screens the
// first listed alias wins, deterministically.
type screenAlias struct {
	phrase string
	screen string
}

// navigate builds a rule that fires when the utterance contains a
// navigation verb together with a known screen alias.
func navigate(name string, verbs []string, aliases []screenAlias) rule {
	return rule{
		name: name,
		match: func(utterance string) (Intent, bool) {
			verbFound := false
			for _, v := range verbs {
				if strings.Contains(utterance, v) {
					verbFound = true
					break
				}
			}
			if !verbFound {
				return nil, false
			}
			for _, a := range aliases {
				if strings.Contains(utterance, a.phrase) {
					return NavigateIntent{TargetScreen: a.screen}, true
				}
			}
			return nil, false
		},
	}
}

func callIntent(arg string) Intent {
	return DomainActionIntent{Action: ActionCall, Argument: arg}
}

func messageIntent(arg string) Intent {
	return DomainActionIntent{Action: ActionMessage, Argument: arg}
}

func searchIntent(arg string) Intent {
	return SearchIntent{Query: arg}
}

var screenAliasesEN = []screenAlias{
	{"lead", navigation.ScreenLeads},
	{"quotation", navigation.ScreenQuotes},
	{"quote", navigation.ScreenQuotes},
	{"order", navigation.ScreenOrders},
	{"payment", navigation.ScreenPayments},
	{"invoice", navigation.ScreenInvoices},
	{"customer", navigation.ScreenCustomers},
	{"inventory", navigation.ScreenInventory},
	{"stock", navigation.ScreenInventory},
	{"analytics", navigation.ScreenAnalytics},
	{"report", navigation.ScreenAnalytics},
	{"dashboard", navigation.ScreenDashboard},
	{"setting", navigation.ScreenSettings},
	{"home", navigation.ScreenHome},
}

// Romanized aliases as spoken by Gujarati and Hindi users; English loan
// words dominate for business terms, so the tables mostly add native verbs
// and a few native nouns.
var screenAliasesGU = []screenAlias{
	{"lead", navigation.ScreenLeads},
	{"bhav", navigation.ScreenQuotes},
	{"quotation", navigation.ScreenQuotes},
	{"order", navigation.ScreenOrders},
	{"chukvani", navigation.ScreenPayments},
	{"payment", navigation.ScreenPayments},
	{"bill", navigation.ScreenInvoices},
	{"invoice", navigation.ScreenInvoices},
	{"grahak", navigation.ScreenCustomers},
	{"customer", navigation.ScreenCustomers},
	{"stock", navigation.ScreenInventory},
	{"mal", navigation.ScreenInventory},
	{"report", navigation.ScreenAnalytics},
	{"dashboard", navigation.ScreenDashboard},
}

var screenAliasesHI = []screenAlias{
	{"lead", navigation.ScreenLeads},
	{"quotation", navigation.ScreenQuotes},
	{"bhav", navigation.ScreenQuotes},
	{"order", navigation.ScreenOrders},
	{"bhugtan", navigation.ScreenPayments},
	{"payment", navigation.ScreenPayments},
	{"bill", navigation.ScreenInvoices},
	{"invoice", navigation.ScreenInvoices},
	{"grahak", navigation.ScreenCustomers},
	{"customer", navigation.ScreenCustomers},
	{"stock", navigation.ScreenInventory},
	{"report", navigation.ScreenAnalytics},
	{"dashboard", navigation.ScreenDashboard},
}

// rulesByLanguage holds the ordered rule lists. Order is load bearing:
// lead-filter phrases must precede generic navigation ("show hot leads"
// contains both a nav verb and the "lead" alias), and call/message must
// precede search so "call rajesh" never degrades to a text query.
var rulesByLanguage = map[i18n.Language][]rule{
	i18n.LangEnglish: {
		containsAny("hot leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "hot"},
			"hot leads", "hot lead"),
		containsAny("warm leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "warm"},
			"warm leads", "warm lead"),
		containsAny("cold leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "cold"},
			"cold leads", "cold lead"),
		containsAny("pending quotes", NavigateIntent{TargetScreen: navigation.ScreenQuotes, StatusFilter: "pending"},
			"pending quotation", "pending quotes", "pending quote"),
		containsAny("overdue invoices", NavigateIntent{TargetScreen: navigation.ScreenInvoices, StatusFilter: "overdue"},
			"overdue invoices", "overdue invoice", "unpaid bills"),
		prefixArg("call", callIntent, "call ", "phone ", "dial "),
		prefixArg("message", messageIntent, "message ", "whatsapp ", "text "),
		navigate("open screen", []string{"open", "go to", "show", "take me to"}, screenAliasesEN),
		prefixArg("search", searchIntent, "search for ", "search ", "find ", "look for "),
	},
	i18n.LangGujarati: {
		containsAny("hot leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "hot"},
			"garam leads", "garam lead", "hot leads"),
		containsAny("warm leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "warm"},
			"madhyam leads", "warm leads"),
		containsAny("cold leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "cold"},
			"thandi leads", "cold leads"),
		suffixArg("call", callIntent, " ne call karo", " ne phone karo", " ne call"),
		suffixArg("message", messageIntent, " ne sandesh moklo", " ne message karo", " ne whatsapp karo"),
		navigate("open screen", []string{"kholo", "batavo", "jovo"}, screenAliasesGU),
		suffixArg("search", searchIntent, " shodho", " shodhi aapo"),
		prefixArg("search", searchIntent, "shodho "),
	},
	i18n.LangHindi: {
		containsAny("hot leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "hot"},
			"hot leads", "garam leads"),
		containsAny("warm leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "warm"},
			"warm leads"),
		containsAny("cold leads", DomainActionIntent{Action: ActionFilterLeads, Argument: "cold"},
			"cold leads", "thandi leads"),
		suffixArg("call", callIntent, " ko call karo", " ko phone karo", " ko call lagao"),
		suffixArg("message", messageIntent, " ko message bhejo", " ko sandesh bhejo", " ko whatsapp karo"),
		navigate("open screen", []string{"kholo", "dikhao", "le chalo"}, screenAliasesHI),
		suffixArg("search", searchIntent, " khojo", " dhundho"),
		prefixArg("search", searchIntent, "khojo ", "dhundho "),
	},
}

package i18n

// Language is a supported UI language, identified by its two-letter code.
type Language string

// The four languages the club supports.
const (
	LanguageDE Language = "de"
	LanguageFR Language = "fr"
	LanguageIT Language = "it"
	LanguageEN Language = "en"
)

// DefaultLanguage is used when a request carries no usable language hint.
const DefaultLanguage = LanguageDE

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{LanguageDE, LanguageFR, LanguageIT, LanguageEN}
}

// Parse matches a two-letter code exactly. Used for the explicit locale
// parameter, which must name a supported language verbatim to take effect.
func Parse(code string) (Language, bool) {
	switch code {
	case "de":
		return LanguageDE, true
	case "fr":
		return LanguageFR, true
	case "it":
		return LanguageIT, true
	case "en":
		return LanguageEN, true
	default:
		return "", false
	}
}

// FromPrefix decodes a language value by its two-letter prefix, falling back
// to English for anything unrecognized.
func FromPrefix(value string) Language {
	if len(value) < 2 {
		return LanguageEN
	}
	switch value[:2] {
	case "de":
		return LanguageDE
	case "fr":
		return LanguageFR
	case "it":
		return LanguageIT
	default:
		return LanguageEN
	}
}

// UILanguage pairs a localized display name with a language code, used to
// render language-switch controls.
type UILanguage struct {
	Name string   `json:"name"`
	Code Language `json:"code"`
}

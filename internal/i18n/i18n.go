package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

const (
	English    = "en"
	Vietnamese = "vi"
)

var supported = []language.Tag{language.English, language.Vietnamese}

var matcher = language.NewMatcher(supported)

// Translator resolves message keys per locale. Unknown keys fall back to
// English, then to the key itself.
type Translator struct {
	fallback string
	messages map[string]map[string]string
}

func New(defaultLocale string) *Translator {
	return &Translator{
		fallback: Normalize(defaultLocale),
		messages: map[string]map[string]string{
			English:    english,
			Vietnamese: vietnamese,
		},
	}
}

func (t *Translator) Default() string {
	return t.fallback
}

// T looks up key for locale and substitutes {name} placeholders.
func (t *Translator) T(locale string, key string, args ...any) string {
	locale = t.Resolve(locale)

	msg, ok := t.messages[locale][key]
	if !ok {
		msg, ok = t.messages[English][key]
	}
	if !ok {
		msg = key
	}

	if len(args) < 2 {
		return msg
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+fmt.Sprint(args[i])+"}", fmt.Sprint(args[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Has reports whether key is defined for any locale.
func (t *Translator) Has(key string) bool {
	_, ok := t.messages[English][key]
	return ok
}

// Toggle switches between the two supported locales.
func (t *Translator) Toggle(locale string) string {
	if t.Resolve(locale) == English {
		return Vietnamese
	}
	return English
}

// Resolve maps locale to a supported code, using the translator's default
// when locale is empty or names no supported language.
func (t *Translator) Resolve(locale string) string {
	return NormalizeOr(locale, t.fallback)
}

// Normalize maps a BCP 47 tag or Accept-Language header to a supported
// locale code, falling back to English.
func Normalize(value string) string {
	return NormalizeOr(value, English)
}

// NormalizeOr is Normalize with a caller-chosen fallback.
func NormalizeOr(value string, fallback string) string {
	if locale, ok := Match(value); ok {
		return locale
	}
	if locale, ok := Match(fallback); ok {
		return locale
	}
	return English
}

// Match reports the supported locale closest to value. ok is false when
// value is empty, malformed or matches nothing supported.
func Match(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	base, _ := supported[idx].Base()
	return base.String(), true
}

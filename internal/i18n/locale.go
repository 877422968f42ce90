package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a display language. The app ships exactly two: Chinese
// is the primary locale and English the secondary one.
type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

// Locales returns the supported locales, primary first.
func Locales() []Locale {
	return []Locale{LocaleZH, LocaleEN}
}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	return l == LocaleZH || l == LocaleEN
}

// Other returns the locale a language toggle switches to.
func (l Locale) Other() Locale {
	if l == LocaleZH {
		return LocaleEN
	}
	return LocaleZH
}

// Tag returns the BCP 47 tag used for formatting.
func (l Locale) Tag() language.Tag {
	if l == LocaleEN {
		return language.English
	}
	return language.SimplifiedChinese
}

// ParseLocale accepts a bare locale ("zh", "en") or any BCP 47 tag whose base
// language is Chinese or English ("zh-CN", "en_US").
func ParseLocale(s string) (Locale, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if l := Locale(strings.ToLower(s)); l.Valid() {
		return l, true
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		return LocaleZH, true
	case "en":
		return LocaleEN, true
	}
	return "", false
}

// Text holds one string per locale.
type Text struct {
	ZH string `yaml:"zh" json:"zh"`
	EN string `yaml:"en" json:"en"`
}

// In returns the text for l, falling back to the primary locale.
func (t Text) In(l Locale) string {
	if l == LocaleEN {
		return t.EN
	}
	return t.ZH
}

// List holds one ordered string list per locale.
type List struct {
	ZH []string `yaml:"zh" json:"zh"`
	EN []string `yaml:"en" json:"en"`
}

// In returns the list for l, falling back to the primary locale.
func (ls List) In(l Locale) []string {
	if l == LocaleEN {
		return ls.EN
	}
	return ls.ZH
}

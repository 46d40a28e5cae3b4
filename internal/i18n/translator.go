// Package i18n provides message-catalog lookups keyed by locale. Handlers use
// it to turn locale-independent message keys into display strings, negotiating
// the locale from the request's Accept-Language header.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Translator resolves message keys to localized strings. The default locale is
// explicit configuration, not process-global state; it wins whenever the
// requested locale cannot be matched.
type Translator struct {
	supported []language.Tag
	matcher   language.Matcher
	catalogs  []map[string]string
}

// New creates a Translator for the given default locale. The default locale
// must name one of the bundled catalogs.
func New(defaultLocale string) (*Translator, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	supported := []language.Tag{defaultTag}
	catalogs := []map[string]string{nil}
	for tag, catalog := range messageCatalogs {
		if tag == defaultTag {
			catalogs[0] = catalog
			continue
		}
		supported = append(supported, tag)
		catalogs = append(catalogs, catalog)
	}
	if catalogs[0] == nil {
		return nil, fmt.Errorf("no message catalog for default locale %q", defaultLocale)
	}

	return &Translator{
		supported: supported,
		matcher:   language.NewMatcher(supported),
		catalogs:  catalogs,
	}, nil
}

// Translate resolves key for the given locale. The locale value may be a full
// Accept-Language header; negotiation falls back to the default locale when
// nothing matches. Unknown keys are returned verbatim so a missing catalog
// entry degrades to the key instead of failing the request.
func (t *Translator) Translate(key, locale string) string {
	_, index := language.MatchStrings(t.matcher, locale)
	if message, ok := t.catalogs[index][key]; ok {
		return message
	}
	if message, ok := t.catalogs[0][key]; ok {
		return message
	}
	return key
}

// SupportedLocales returns the locales with bundled catalogs, default first.
func (t *Translator) SupportedLocales() []string {
	locales := make([]string, len(t.supported))
	for i, tag := range t.supported {
		locales[i] = tag.String()
	}
	return locales
}

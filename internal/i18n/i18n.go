// Package i18n resolves localized tool and parameter descriptions.
//
// Locales are static tables keyed by tool name. Adding a language means
// adding one table; the lookup contract never changes: unknown keys fall
// back to the key itself so a missing translation can never produce an
// empty schema description.
package i18n

import "strings"

// ToolLocale holds the description strings for one tool.
type ToolLocale struct {
	Description string
	Params      map[string]string
}

type locale map[string]ToolLocale

var locales = map[string]locale{
	"en": localeEN,
	"pl": localePL,
}

// Translator resolves descriptions for one language.
type Translator struct {
	tools locale
}

// New returns a Translator for lang, falling back to English when the
// language is unknown. ok reports whether lang was recognized.
func New(lang string) (tr *Translator, ok bool) {
	l, ok := locales[strings.ToLower(lang)]
	if !ok {
		l = localeEN
	}
	return &Translator{tools: l}, ok
}

// Describe returns the tool description, or the description of the named
// parameter when one is given.
func (t *Translator) Describe(tool string, param ...string) string {
	entry, ok := t.tools[tool]
	if !ok {
		if len(param) > 0 {
			return param[0]
		}
		return tool
	}
	if len(param) > 0 {
		if d, ok := entry.Params[param[0]]; ok {
			return d
		}
		return param[0]
	}
	return entry.Description
}

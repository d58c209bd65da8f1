package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no default language is configured.
const DefaultLanguage = "en"

// Translator resolves dot-separated keys into localized strings.
// It is safe for concurrent use once constructed.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex

	// codes and matcher are built from the loaded languages, in the same order.
	codes   []string
	matcher language.Matcher
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.buildMatcher()
	t.logger.DebugContext(ctx, "Translations loaded", "languages", t.codes)
	return t, nil
}

// validateTranslations rejects empty language codes and nil language maps.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("No translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w: %s", ErrNilLanguageMap, lang)
		}
	}
	return nil
}

// buildMatcher prepares language matching over the loaded languages.
// The default language goes first so it wins when nothing matches.
func (t *Translator) buildMatcher() {
	codes := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		codes = append(codes, lang)
	}
	sort.Slice(codes, func(i, j int) bool {
		if (codes[i] == t.defaultLang) != (codes[j] == t.defaultLang) {
			return codes[i] == t.defaultLang
		}
		return codes[i] < codes[j]
	})

	tags := make([]language.Tag, 0, len(codes))
	matched := make([]string, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			t.logger.Warn("Skipping unparsable language code", "lang", code)
			continue
		}
		tags = append(tags, tag)
		matched = append(matched, code)
	}

	t.codes = matched
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Resolve maps an arbitrary BCP 47 tag ("uk-UA", "en_GB") onto a loaded
// language code. Unknown or unparsable tags resolve to the default language.
func (t *Translator) Resolve(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(lang)
}

func (t *Translator) resolve(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if t.matcher == nil {
		return t.defaultLang
	}

	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return t.defaultLang
	}

	_, idx, confidence := t.matcher.Match(tag)
	if confidence == language.No || idx >= len(t.codes) {
		return t.defaultLang
	}
	return t.codes[idx]
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "addressbook.rejected.phone" walks m["addressbook"]["rejected"]["phone"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// lookup returns the string stored under key for the resolved language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	lang = t.resolve(lang)

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("Translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, key)
	return ok
}

// T translates a key for the given language.
// Arguments are key-value pairs substituted into "%{key}" placeholders:
//
//	// With translation "rejected.phone": "Phone number %{value} is not valid"
//	msg := translator.T("en", "rejected.phone", "value", "+38")
//	// Returns: "Phone number +38 is not valid"
//
// A missing translation returns the key itself when FallbackToKey is on,
// otherwise an empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates a key with an explicit default used when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format substitutes "%{key}" placeholders in tmpl without any lookup.
func Format(tmpl string, args ...string) string {
	return sprintf(tmpl, args)
}

// sprintf substitutes "%{key}" placeholders from key, value, key, value args.
// An odd trailing argument is ignored, unknown placeholders are kept as-is.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

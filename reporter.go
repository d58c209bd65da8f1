package addressbook

import (
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/addressbook/pkg/i18n"
	"github.com/dmitrymomot/addressbook/pkg/logger"
	"github.com/dmitrymomot/addressbook/pkg/validator"
)

// Locales holds the bundled rejection messages, one YAML file per language.
//
//go:embed locales/*.yaml
var Locales embed.FS

// Translation keys of the rejection messages.
const (
	KeyRejectedPhone    = "addressbook.rejected.phone"
	KeyRejectedBirthday = "addressbook.rejected.birthday"
	KeyRejectedField    = "addressbook.rejected.field"
	KeyRejectedRecord   = "addressbook.rejected.record"
)

var defaultMessages = map[string]string{
	KeyRejectedPhone:    "Phone number %{value} cannot be assigned because it is not valid",
	KeyRejectedBirthday: "Birthday %{value} cannot be assigned because it is not valid",
	KeyRejectedField:    "Value %{value} cannot be assigned to %{field} because it is not valid",
	KeyRejectedRecord:   "Record %{name} cannot be added because its data is not valid",
}

// NewTranslator loads the bundled locales.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), Locales, "locales")
	return i18n.NewTranslator(ctx, adapter, opts...)
}

// Reporter is the side channel for rejected values. It writes one WARN
// entry per rejection. Callers must rely on return values, not on reports.
// A nil *Reporter discards everything.
type Reporter struct {
	logger     *slog.Logger
	translator *i18n.Translator
	lang       string
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithTranslator renders messages in lang using tr. Keys missing from tr
// fall back to the English defaults.
func WithTranslator(tr *i18n.Translator, lang string) ReporterOption {
	return func(r *Reporter) {
		r.translator = tr
		r.lang = lang
	}
}

// NewReporter creates a Reporter writing to log, or to slog.Default() when log is nil.
func NewReporter(log *slog.Logger, opts ...ReporterOption) *Reporter {
	if log == nil {
		log = slog.Default()
	}
	r := &Reporter{logger: log.With(logger.Component("addressbook"))}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FieldRejected reports a value refused by the rule of kind.
func (r *Reporter) FieldRejected(kind Kind, value string, err error) {
	if r == nil {
		return
	}

	key := KeyRejectedField
	switch kind {
	case KindPhone:
		key = KeyRejectedPhone
	case KindBirthday:
		key = KeyRejectedBirthday
	}

	attrs := []any{logger.Field(kind), logger.Value(value), logger.Error(err)}
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		v := verrs[0]
		attrs = append(attrs, logger.Group("rule",
			slog.String("key", v.TranslationKey),
			slog.String("reason", r.translate(v.TranslationKey, v.Message, v.TranslationArgs()...)),
		))
	}

	r.logger.Warn(r.translate(key, defaultMessages[key], "value", value, "field", kind.String()), attrs...)
}

// RecordRejected reports a record refused by a Book.
func (r *Reporter) RecordRejected(name string, err error) {
	if r == nil {
		return
	}

	r.logger.Warn(r.translate(KeyRejectedRecord, defaultMessages[KeyRejectedRecord], "name", name),
		logger.Record(name),
		logger.Error(err),
	)
}

func (r *Reporter) translate(key, fallback string, args ...string) string {
	if r.translator == nil {
		return i18n.Format(fallback, args...)
	}
	return r.translator.Td(r.lang, key, fallback, args...)
}

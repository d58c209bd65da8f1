// Package i18n translates dot-separated message keys with named
// placeholders (`%{name}`) into localized strings.
//
// Translations are loaded once through a TranslationAdapter: MapAdapter for
// in-memory data and FSAdapter for a directory of YAML files in any fs.FS,
// typically an embed.FS shipped with the binary. Requested languages are
// matched with golang.org/x/text/language, so "uk-UA" finds "uk" and
// unknown tags fall back to the default language.
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//	msg := tr.T("uk-UA", "addressbook.rejected.phone", "value", "+38")
//
// YAML files use language codes as top-level keys:
//
//	uk:
//	  addressbook:
//	    rejected:
//	      phone: "Номер телефону %{value} не можна призначити"
//
// # Error Handling
//
// Loading errors wrap the sentinel values in errors.go and are detectable
// with errors.Is. Translation itself never fails: T falls back to the key
// and Td to the supplied default.
package i18n

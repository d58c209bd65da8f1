// Package validator provides small, composable validation rules for the
// values stored in an address book: phone numbers and dates.
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Rules are evaluated with Apply, which aggregates failures into a
// ValidationErrors slice that satisfies the error interface.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidUAPhone("phone", "+380951234567"),
//	    validator.ValidDateLayout("birthday", "01.01.1992", validator.DottedDateLayout),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        // e.TranslationKey, e.TranslationArgs() feed an i18n translator
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors survives errors.Join and %w wrapping, so callers can
// detect it with errors.As or ExtractValidationErrors after higher layers
// attach their own sentinel errors.
//
// All rules are stateless and allocation-light; patterns are compiled once at
// package initialisation.
package validator

package validator

import "regexp"

// UAPhonePrefix is the country code every accepted phone number starts with.
const UAPhonePrefix = "+380"

// uaPhoneRegex matches the whole value: country code followed by exactly nine digits.
var uaPhoneRegex = regexp.MustCompile(`^\+380[0-9]{9}$`)

// ValidUAPhone validates a Ukrainian phone number written as +380XXXXXXXXX.
// Separators, spaces and other country codes are rejected.
func ValidUAPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uaPhoneRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a phone number in the format +380XXXXXXXXX",
			TranslationKey: "validation.ua_phone",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

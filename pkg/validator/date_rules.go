package validator

import (
	"fmt"
	"time"
)

// DottedDateLayout is the day.month.year layout with zero-padded day and month.
const DottedDateLayout = "02.01.2006"

// ValidDateLayout ensures the value parses with the given layout as a real calendar date.
// Go layouts with zero-padded elements are strict: "1.1.1992", "32.01.1992" and
// "01//10.2022" are all rejected for DottedDateLayout.
func ValidDateLayout(field, value, layout string) Rule {
	return Rule{
		Check: func() bool {
			_, err := time.Parse(layout, value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid date in the format %s", layout),
			TranslationKey: "validation.date_layout",
			TranslationValues: map[string]any{
				"field":  field,
				"value":  value,
				"layout": layout,
			},
		},
	}
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/addressbook/pkg/validator"
)

func TestValidDateLayout(t *testing.T) {
	t.Run("valid dotted dates", func(t *testing.T) {
		for _, date := range []string{
			"01.01.1992",
			"10.02.2003",
			"29.02.2000", // leap year
			"31.12.1999",
			"11.10.2022",
		} {
			err := validator.Apply(validator.ValidDateLayout("birthday", date, validator.DottedDateLayout))
			assert.NoError(t, err, "%q should be a valid date", date)
		}
	})

	t.Run("invalid dotted dates", func(t *testing.T) {
		for _, date := range []string{
			"",
			"01//10.2022",
			"01/10.2022",
			"/11.02.1992",
			"32.01.1992",
			"00.01.1992",
			"01.13.1992",
			"29.02.2001", // not a leap year
			"30.02.2000",
			"1.1.1992",
			"01.01.92",
			"01-01-1992",
			"1992.01.01",
			"aa.bb.cccc",
			"01.01.1992 ",
		} {
			err := validator.Apply(validator.ValidDateLayout("birthday", date, validator.DottedDateLayout))
			assert.Error(t, err, "%q should be rejected", date)
		}
	})

	t.Run("other layouts", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.ValidDateLayout("d", "1999-12-31", "2006-01-02")))
		assert.Error(t, validator.Apply(validator.ValidDateLayout("d", "31.12.1999", "2006-01-02")))
	})

	t.Run("error metadata", func(t *testing.T) {
		err := validator.Apply(validator.ValidDateLayout("birthday", "01//10.2022", validator.DottedDateLayout))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.date_layout", verrs[0].TranslationKey)
		assert.Equal(t, validator.DottedDateLayout, verrs[0].TranslationValues["layout"])
	})
}

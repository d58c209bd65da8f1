package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/addressbook/pkg/validator"
)

func TestValidUAPhone(t *testing.T) {
	t.Run("valid phone numbers", func(t *testing.T) {
		for _, phone := range []string{
			"+380951234567",
			"+380661234567",
			"+380000000000",
			"+380999999999",
		} {
			err := validator.Apply(validator.ValidUAPhone("phone", phone))
			assert.NoError(t, err, "%q should be a valid phone number", phone)
		}
	})

	t.Run("invalid phone numbers", func(t *testing.T) {
		for _, phone := range []string{
			"",
			"+380",
			"+38095123456",
			"+3805034567870",
			"++380503456787",
			"380951234567",
			"+381951234567",
			"+380 951234567",
			"+380-95-123-4567",
			"+38095123456a",
			" +380951234567",
			"+380951234567\n",
			"+380٩٥١٢٣٤٥٦٧",
		} {
			err := validator.Apply(validator.ValidUAPhone("phone", phone))
			assert.Error(t, err, "%q should be rejected", phone)
		}
	})

	t.Run("error metadata", func(t *testing.T) {
		err := validator.Apply(validator.ValidUAPhone("phone", "++380503456787"))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "phone", verrs[0].Field)
		assert.Equal(t, "validation.ua_phone", verrs[0].TranslationKey)
		assert.Equal(t, "++380503456787", verrs[0].TranslationValues["value"])
	})
}

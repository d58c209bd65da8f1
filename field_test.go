package addressbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/addressbook"
	"github.com/dmitrymomot/addressbook/pkg/validator"
)

func TestKindValidate(t *testing.T) {
	t.Parallel()

	t.Run("phone", func(t *testing.T) {
		t.Parallel()

		valid := []string{"+380951234567", "+380000000000", "+380503456787"}
		for _, v := range valid {
			assert.True(t, addressbook.KindPhone.Valid(v), v)
		}

		invalid := []string{
			"",
			"+3805034567870",
			"++380503456787",
			"+38050345678",
			"380951234567",
			"+380 95 123 45 67",
			"+380-951234567",
			"+381951234567",
			"+38095123456a",
			" +380951234567",
			"+380951234567\n",
		}
		for _, v := range invalid {
			err := addressbook.KindPhone.Validate(v)
			require.Error(t, err, v)
			assert.ErrorIs(t, err, addressbook.ErrValidationRejected)
			assert.True(t, validator.IsValidationError(err))
		}
	})

	t.Run("birthday", func(t *testing.T) {
		t.Parallel()

		valid := []string{"01.01.1992", "29.02.2000", "31.12.2023", "10.02.2003"}
		for _, v := range valid {
			assert.True(t, addressbook.KindBirthday.Valid(v), v)
		}

		invalid := []string{
			"",
			"01//10.2022",
			"32.01.1992",
			"29.02.2023",
			"31.04.2020",
			"1.1.1992",
			"01-01-1992",
			"1992.01.01",
			"01.13.1992",
			"aa.bb.cccc",
		}
		for _, v := range invalid {
			err := addressbook.KindBirthday.Validate(v)
			require.Error(t, err, v)
			assert.ErrorIs(t, err, addressbook.ErrValidationRejected)

			errs := validator.ExtractValidationErrors(err)
			require.Len(t, errs, 1)
			assert.Equal(t, "birthday", errs[0].Field)
		}
	})

	t.Run("name accepts anything", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"", "Andriy Batig", "++380", "01//10"} {
			assert.NoError(t, addressbook.KindName.Validate(v))
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()
		err := addressbook.Kind(0).Validate("x")
		assert.ErrorIs(t, err, addressbook.ErrUnknownKind)
		assert.ErrorIs(t, err, addressbook.ErrValidationRejected)
		assert.Equal(t, "Kind(0)", addressbook.Kind(0).String())
	})
}

func TestNewField(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		f, err := addressbook.NewPhone("+380951234567")
		require.NoError(t, err)
		assert.True(t, f.IsSet())
		assert.Equal(t, addressbook.KindPhone, f.Kind())
		assert.Equal(t, "+380951234567", f.Value())
		assert.Equal(t, "+380951234567", f.String())
	})

	t.Run("rejected returns unset placeholder", func(t *testing.T) {
		f, err := addressbook.NewBirthday("01//10.2022")
		require.ErrorIs(t, err, addressbook.ErrValidationRejected)
		assert.False(t, f.IsSet())
		assert.Equal(t, addressbook.KindBirthday, f.Kind())
		assert.Empty(t, f.Value())
		assert.Equal(t, "<invalid>", f.String())
	})

	t.Run("name", func(t *testing.T) {
		f := addressbook.NewName("Ivan")
		assert.True(t, f.IsSet())
		assert.Equal(t, addressbook.KindName, f.Kind())
		assert.Equal(t, "Ivan", f.Value())
	})

	t.Run("zero field", func(t *testing.T) {
		var f addressbook.Field
		assert.False(t, f.IsSet())
		assert.False(t, f.Matches(""))
		assert.Error(t, f.Set("anything"))
	})
}

func TestFieldSet(t *testing.T) {
	t.Parallel()

	t.Run("keeps previous value on rejection", func(t *testing.T) {
		f, err := addressbook.NewPhone("+380503456787")
		require.NoError(t, err)

		err = f.Set("++380603456787")
		require.ErrorIs(t, err, addressbook.ErrValidationRejected)
		assert.Equal(t, "+380503456787", f.Value())

		require.NoError(t, f.Set("+380123456787"))
		assert.Equal(t, "+380123456787", f.Value())
	})

	t.Run("reassigns birthday", func(t *testing.T) {
		f, err := addressbook.NewBirthday("01.10.2023")
		require.NoError(t, err)
		require.NoError(t, f.Set("11.10.2022"))
		assert.Equal(t, "11.10.2022", f.Value())

		require.Error(t, f.Set("01//10.2022"))
		assert.Equal(t, "11.10.2022", f.Value())
	})

	t.Run("placeholder stays unset on rejection", func(t *testing.T) {
		f, _ := addressbook.NewPhone("bad")
		require.Error(t, f.Set("also bad"))
		assert.False(t, f.IsSet())

		require.NoError(t, f.Set("+380951234567"))
		assert.True(t, f.IsSet())
	})
}

func TestFieldMatches(t *testing.T) {
	t.Parallel()

	f, err := addressbook.NewPhone("+380951234567")
	require.NoError(t, err)
	assert.True(t, f.Matches("+380951234567"))
	assert.False(t, f.Matches("+380951234568"))

	placeholder, _ := addressbook.NewPhone("")
	assert.False(t, placeholder.Matches(""))
}

// Package addressbook is an in-memory store of personal contact records.
//
// A Record has a name, an ordered list of phone numbers and an optional
// birthday. Phone numbers and birthdays are held in Fields whose Kind picks
// the validation rule: phones must look like +380XXXXXXXXX and birthdays must
// be real dates written as DD.MM.YYYY. Names are never rejected.
//
// Invalid input never panics. Field constructors return an unset Field and an
// error wrapping ErrValidationRejected, Record mutations report success through
// their return values, and every rejection is also logged through a Reporter.
//
// Basic usage:
//
//	book := addressbook.New()
//
//	rec := addressbook.NewRecord("Ivan",
//		addressbook.WithPhone("+380503456787"),
//		addressbook.WithBirthday("10.02.2003"),
//	)
//	if err := rec.AddPhone("+380661234567"); err != nil {
//		// the phone list is unchanged
//	}
//
//	if err := book.Add(rec); err != nil {
//		// errors.Is(err, addressbook.ErrRecordRejected)
//	}
//
//	pages, _ := book.Pages(2)
//	for page := range pages {
//		fmt.Println(len(page))
//	}
//
// A Book admits a record only when every field holds an accepted value.
// Invalid phones or birthdays given to NewRecord or ChangePhone are kept as
// unset placeholders, so such records are rejected by Book.Add.
//
// Book is not safe for concurrent use.
package addressbook

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dmitrymomot/addressbook"
)

type walkthrough struct {
	out      io.Writer
	reporter *addressbook.Reporter
	pageSize int
	now      func() time.Time
}

func (w walkthrough) printf(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

func (w walkthrough) run() error {
	w.record()
	w.fields()
	return w.book()
}

func (w walkthrough) record() {
	rec := addressbook.NewRecord("Andriy Batig",
		addressbook.WithPhone("+380951234567"),
		addressbook.WithBirthday("01.01.1992"),
		addressbook.WithReporter(w.reporter),
		addressbook.WithClock(w.now),
	)
	w.printf("%s", rec)

	if err := rec.AddPhone("+380661234567"); err == nil {
		w.printf("added +380661234567: %s", rec)
	}
	w.printf("removed +380661234567: %t", rec.RemovePhone("+380661234567"))

	found, _ := rec.ChangePhone("+380951234567", "+380881234567")
	w.printf("changed +380951234567 -> +380881234567: %t: %s", found, rec)

	if days, ok := rec.DaysToBirthday(); ok {
		w.printf("days to birthday: %d", days)
	}
}

func (w walkthrough) fields() {
	birthday, _ := addressbook.NewBirthday("01.10.2023")
	w.printf("birthday: %s", birthday)
	if err := birthday.Set("11.10.2022"); err == nil {
		w.printf("birthday reassigned: %s", birthday)
	}

	if _, err := addressbook.NewBirthday("01//10.2022"); err != nil {
		w.reporter.FieldRejected(addressbook.KindBirthday, "01//10.2022", err)
		w.printf("birthday 01//10.2022 rejected")
	}

	phone, _ := addressbook.NewPhone("+380503456787")
	w.printf("phone: %s", phone)
	for _, next := range []string{"++380603456787", "+380123456787"} {
		if err := phone.Set(next); err != nil {
			w.reporter.FieldRejected(addressbook.KindPhone, next, err)
		}
		w.printf("phone after %s: %s", next, phone)
	}
}

func (w walkthrough) book() error {
	book := addressbook.New(addressbook.WithBookReporter(w.reporter))

	inputs := []struct{ name, phone, birthday string }{
		{"Ivan", "+380503456787", "10.02.2003"},
		{"Pavlo", "+3805034567870", "12.02.2004"},
		{"Jhon", "++380503456787", "/11.02.1992"},
	}
	for _, in := range inputs {
		rec := addressbook.NewRecord(in.name,
			addressbook.WithPhone(in.phone),
			addressbook.WithBirthday(in.birthday),
			addressbook.WithReporter(w.reporter),
			addressbook.WithClock(w.now),
		)
		w.printf("add %s: %t", in.name, book.Add(rec) == nil)
	}

	// Pavlo's number has ten digits after the code; re-add with a valid one.
	pavlo := addressbook.NewRecord("Pavlo",
		addressbook.WithPhone("+380503456780"),
		addressbook.WithBirthday("12.02.2004"),
		addressbook.WithReporter(w.reporter),
		addressbook.WithClock(w.now),
	)
	w.printf("add Pavlo: %t", book.Add(pavlo) == nil)
	w.printf("%s", book)

	for _, size := range []int{w.pageSize, 1} {
		pages, err := book.Pages(size)
		if err != nil {
			return err
		}
		w.printf("pages of %d:", size)
		for page := range pages {
			for _, rec := range page {
				w.printf("  %s", rec)
			}
			w.printf("  --")
		}
	}

	found := book.Find(addressbook.ByPhone("+380503456787"))
	w.printf("records with +380503456787: %d", len(found))
	return nil
}

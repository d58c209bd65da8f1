// Command addressbook walks through the address book API: it builds a
// record, edits its phones and birthday, feeds invalid values to the
// validators and pages through a small book.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrymomot/addressbook"
	"github.com/dmitrymomot/addressbook/pkg/i18n"
	"github.com/dmitrymomot/addressbook/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	tr, err := addressbook.NewTranslator(ctx,
		i18n.WithDefaultLanguage("en"),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	lang := tr.Resolve(cfg.Book.Lang)
	log.Debug("starting walkthrough", logger.Lang(lang), "page_size", cfg.Book.PageSize)

	w := walkthrough{
		out:      os.Stdout,
		reporter: addressbook.NewReporter(log, addressbook.WithTranslator(tr, lang)),
		pageSize: cfg.Book.PageSize,
		now:      time.Now,
	}
	return w.run()
}

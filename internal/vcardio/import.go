// Package vcardio bridges the address book to the vCard and iCalendar
// formats: merging external vCard streams into the book, exporting the book
// as vCards, and rendering the birthdays as a calendar feed.
package vcardio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-assistant/internal/book"
	"github.com/tartampluch/go-assistant/internal/config"
)

// Import decodes a vCard stream and merges every card into the address book.
// Cards merge into an existing record when the name matches. Malformed cards,
// invalid phone numbers and unparseable dates are skipped with a log entry,
// never failing the whole import. Returns the number of cards merged.
func Import(r io.Reader, ab *book.AddressBook) (int, error) {
	decoder := vcard.NewDecoder(r)
	count := 0

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip the card but keep going to maximize data recovery.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompVCard,
				config.LogKeyError, err,
			)
			continue
		}

		mergeCard(card, ab)
		count++
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompVCard,
		config.LogKeyCount, count,
	)
	return count, nil
}

// mergeCard applies one decoded card to the book.
// Name strategy: FN (Formatted) > N (Structured) > Fallback.
func mergeCard(card vcard.Card, ab *book.AddressBook) {
	name := config.FallbackName
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		name = fn.Value
	} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
		name = n.Value
	}

	rec := ab.Find(name)
	if rec == nil {
		rec = book.NewRecord(name)
		ab.AddRecord(rec)
	}

	for _, tel := range card.Values(config.VCardTEL) {
		if err := rec.AddPhone(tel); err != nil {
			slog.Warn(config.MsgSkippedPhone,
				config.LogKeyComponent, config.CompVCard,
				config.LogKeyName, name,
				config.LogKeyValue, tel,
			)
		}
	}

	bday := card.Get(config.VCardBDAY)
	if bday == nil || bday.Value == "" {
		return
	}

	birthDate, yearKnown, err := parseVCardDate(bday.Value)
	if err != nil || !yearKnown {
		// A birthday without a known year cannot be represented here.
		slog.Debug(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompVCard,
			config.LogKeyName, name,
			config.LogKeyValue, bday.Value,
		)
		return
	}

	if err := rec.AddBirthday(birthDate.Format(config.DateFormatInput)); err != nil {
		slog.Warn(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompVCard,
			config.LogKeyName, name,
			config.LogKeyError, err,
		)
	}
}

// parseVCardDate handles the date layouts seen in vCard BDAY fields.
// The boolean reports whether the year component was present.
func parseVCardDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated --MM-DD dates: year unknown, leap year placeholder keeps
	// Feb 29 representable.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safeDate := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return safeDate, false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}

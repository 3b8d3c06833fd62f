package vcardio

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-assistant/internal/book"
	"github.com/tartampluch/go-assistant/internal/config"
)

// WriteCalendar renders the birthdays in the book as an iCalendar feed.
// Each contact with a birthday gets one all-day event per year across the
// previous, current, and next year, so calendar clients can scroll without an
// immediate regeneration. Events are never created before the birth year.
func WriteCalendar(w io.Writer, ab *book.AddressBook, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	events := 0
	for _, r := range ab.Records() {
		b := r.Birthday()
		if b == nil {
			continue
		}

		for _, e := range birthdayEvents(r.Name().String(), b.Date(), now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
			events++
		}
	}

	if events == 0 {
		// A VCALENDAR without components is rejected by some clients;
		// emit the minimal valid stub instead.
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
		}
		return nil
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgCalendarDone,
		config.LogKeyComponent, config.CompVCard,
		config.LogKeyCount, events,
	)
	return nil
}

// birthdayEvents builds the per-year events for one contact.
func birthdayEvents(name string, birthDate time.Time, now time.Time) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}

	// Deterministic UID base so regenerated feeds update events in place.
	input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		summary := fmt.Sprintf(config.FallbackSummary, name)
		if age := y - birthDate.Year(); age > 0 {
			summary = fmt.Sprintf(config.SummaryWithAge, name, age)
		}
		event.Props.SetText(config.PropSummary, summary)

		// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, now.Location())
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

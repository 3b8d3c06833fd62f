package book

import (
	"strings"
	"time"
)

// AddressBook is the keyed store of all records. It wraps a native map and
// exposes only the operations below; the map itself is never handed out.
type AddressBook struct {
	data map[string]*Record
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{data: make(map[string]*Record)}
}

// AddRecord inserts the record under its own name. An existing entry with the
// same name is overwritten; last write wins.
func (ab *AddressBook) AddRecord(r *Record) {
	ab.data[r.Name().String()] = r
}

// Find returns the record stored under name, or nil when absent.
func (ab *AddressBook) Find(name string) *Record {
	return ab.data[name]
}

// Delete removes the entry for name. Deleting an absent name is a no-op.
func (ab *AddressBook) Delete(name string) {
	delete(ab.data, name)
}

// Len returns the number of stored records.
func (ab *AddressBook) Len() int {
	return len(ab.data)
}

// Records returns the stored records. Order follows map iteration; callers
// needing stable output must sort themselves.
func (ab *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(ab.data))
	for _, r := range ab.data {
		records = append(records, r)
	}
	return records
}

// UpcomingBirthdays projects every stored birthday onto the current year
// relative to today (rolling to next year when already past) and returns the
// dates falling within the inclusive [0, days] window. Dates landing on a
// weekend are replaced by the following Monday. The window test uses the
// unadjusted date; only the collected value is adjusted.
func (ab *AddressBook) UpcomingBirthdays(today time.Time, days int) []time.Time {
	// Midnight UTC on both sides keeps the day count immune to DST shifts.
	today = truncateToDay(today)

	var upcoming []time.Time
	for _, r := range ab.data {
		if r.birthday == nil {
			continue
		}

		b := r.birthday.Date()
		// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
		candidate := time.Date(today.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
		if candidate.Before(today) {
			candidate = time.Date(today.Year()+1, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
		}

		until := int(candidate.Sub(today) / (24 * time.Hour))
		if until >= 0 && until <= days {
			upcoming = append(upcoming, adjustForWeekend(candidate))
		}
	}
	return upcoming
}

// String renders every record on its own line, in map iteration order.
func (ab *AddressBook) String() string {
	lines := make([]string, 0, len(ab.data))
	for _, r := range ab.data {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

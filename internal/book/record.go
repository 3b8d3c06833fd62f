package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-assistant/internal/config"
)

// Record is a single contact: a name, an ordered list of phone numbers and an
// optional birthday. Records are owned by the AddressBook holding them and are
// mutated in place through the methods below.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the given name.
func NewRecord(name string) *Record {
	return &Record{name: Name(name)}
}

// Name returns the identifying name of the record.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns the phone list in insertion order.
func (r *Record) Phones() []Phone {
	return r.phones
}

// Birthday returns the stored birthday, or nil when none is set.
func (r *Record) Birthday() *Birthday {
	return r.birthday
}

// AddBirthday parses raw and sets the birthday, overwriting any existing one.
func (r *Record) AddBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// AddPhone validates raw and appends it to the phone list.
// Duplicates are allowed.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first stored phone whose value equals raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, true
		}
	}
	return "", false
}

// RemovePhone removes the first phone matching raw. Removing a phone that is
// not stored is a no-op.
func (r *Record) RemovePhone(raw string) {
	for i, p := range r.phones {
		if p.String() == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces oldRaw with a freshly validated newRaw, appended at the
// end of the list. The old phone is removed before newRaw is validated, so a
// rejected newRaw leaves the record without either number. This ordering is
// long-standing observable behavior and is kept.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	if _, ok := r.FindPhone(oldRaw); !ok {
		return &ValidationError{Message: config.ErrMsgPhoneMissing}
	}
	r.RemovePhone(oldRaw)
	return r.AddPhone(newRaw)
}

// String renders the record in the fixed single-line contact format.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}

	birthday := ""
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}

package book

import (
	"time"

	"github.com/tartampluch/go-assistant/internal/config"
)

// ValidationError reports a user-visible problem with a field value or a
// record operation. Its message is shown at the prompt verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Name identifies a Record and is the address book key. Any value is accepted
// as-is; there is no normalization.
type Name string

func (n Name) String() string {
	return string(n)
}

// Phone is a validated phone number: exactly ten decimal digits.
type Phone string

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != config.PhoneLength || !allDigits(raw) {
		return "", &ValidationError{Message: config.ErrMsgPhoneFormat}
	}
	return Phone(raw), nil
}

func (p Phone) String() string {
	return string(p)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Birthday is a validated calendar date with no time-of-day component.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw in the strict DD.MM.YYYY layout. The raw string must
// be exactly ten characters long; time.Parse then rejects impossible dates
// such as 31.02.2020.
func NewBirthday(raw string) (Birthday, error) {
	if len(raw) != config.DateInputLength {
		return Birthday{}, &ValidationError{Message: config.ErrMsgDateFormat}
	}
	t, err := time.Parse(config.DateFormatInput, raw)
	if err != nil {
		return Birthday{}, &ValidationError{Message: config.ErrMsgDateFormat}
	}
	return Birthday{date: t}, nil
}

// Date returns the stored date at UTC midnight.
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(config.DateFormatDisplay)
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tartampluch/go-assistant/internal/book"
	"github.com/tartampluch/go-assistant/internal/config"
	"github.com/tartampluch/go-assistant/internal/vcardio"
)

// Sentinel errors for the two non-validation failure kinds. The dispatch
// wrapper maps them to their fixed user-facing messages.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrUnknownContact  = errors.New("unknown contact")
)

// renderError converts a handler error into the string shown at the prompt.
// Validation messages pass through verbatim; the other kinds map to fixed
// texts. Nothing ever escapes to the loop.
func (b *Bot) renderError(err error) string {
	var verr *book.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, ErrMissingArgument):
		return b.T.Get(config.TKeyGiveNamePhone)
	case errors.Is(err, ErrUnknownContact):
		return b.T.Get(config.TKeyEnterUserName)
	default:
		return err.Error()
	}
}

// addContact creates the contact when absent, then appends the phone.
// The record is inserted before the phone is validated, so an invalid phone
// still leaves the contact created. Long-standing behavior, kept.
func (b *Bot) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingArgument
	}
	name, phone := args[0], args[1]

	key := config.TKeyContactUpdated
	rec := b.Book.Find(name)
	if rec == nil {
		rec = book.NewRecord(name)
		b.Book.AddRecord(rec)
		key = config.TKeyContactAdded
	}

	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return b.T.Get(key), nil
}

func (b *Bot) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", ErrMissingArgument
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec := b.Book.Find(name)
	if rec == nil {
		return b.T.Get(config.TKeyContactNotFound), nil
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return b.T.Get(config.TKeyPhoneUpdated), nil
}

func (b *Bot) showPhones(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArgument
	}

	rec := b.Book.Find(args[0])
	if rec == nil {
		return b.T.Get(config.TKeyContactNotFound), nil
	}
	return rec.String(), nil
}

func (b *Bot) allContacts(_ []string) (string, error) {
	return b.Book.String(), nil
}

func (b *Bot) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrMissingArgument
	}
	name, date := args[0], args[1]

	rec := b.Book.Find(name)
	if rec == nil {
		return b.T.Get(config.TKeyContactNotFound), nil
	}
	if err := rec.AddBirthday(date); err != nil {
		return "", err
	}
	return b.T.Get(config.TKeyBirthdayAdded), nil
}

func (b *Bot) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArgument
	}

	rec := b.Book.Find(args[0])
	if rec == nil || rec.Birthday() == nil {
		return b.T.Get(config.TKeyBirthdayNotFound), nil
	}
	return b.T.GetData(config.TKeyBirthdayOf, map[string]any{
		"Name": rec.Name().String(),
		"Date": rec.Birthday().String(),
	}), nil
}

func (b *Bot) upcomingBirthdays(_ []string) (string, error) {
	upcoming := b.Book.UpcomingBirthdays(b.Clock.Now(), config.DefaultUpcomingDays)
	if len(upcoming) == 0 {
		return b.T.Get(config.TKeyNoUpcoming), nil
	}

	lines := make([]string, len(upcoming))
	for i, d := range upcoming {
		lines[i] = d.Format(config.DateFormatDisplay)
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArgument
	}
	name := args[0]

	if b.Book.Find(name) == nil {
		return b.T.Get(config.TKeyContactNotFound), nil
	}
	b.Book.Delete(name)
	return b.T.Get(config.TKeyContactDeleted), nil
}

// importContacts merges a vCard stream into the book. The source is either a
// local file path or an http(s) URL handled by the fetcher.
func (b *Bot) importContacts(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArgument
	}
	src := args[0]

	var r io.ReadCloser
	if strings.HasPrefix(src, config.SchemeHTTP+"://") || strings.HasPrefix(src, config.SchemeHTTPS+"://") {
		if b.Fetcher == nil {
			return "", errors.New(config.ErrFetcherMissing)
		}
		rc, err := b.Fetcher.Fetch(ctx, src, b.HTTPUser, b.HTTPPass)
		if err != nil {
			return "", err
		}
		r = rc
	} else {
		f, err := os.Open(src)
		if err != nil {
			return "", fmt.Errorf("%s: %w", config.ErrOpenImport, err)
		}
		r = f
	}
	defer func() { _ = r.Close() }()

	count, err := vcardio.Import(r, b.Book)
	if err != nil {
		return "", err
	}
	return b.T.GetData(config.TKeyImported, map[string]any{"Count": count}), nil
}

func (b *Bot) exportContacts(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArgument
	}
	path := args[0]

	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateExport, err)
	}
	defer func() { _ = f.Close() }()

	if err := vcardio.Export(f, b.Book); err != nil {
		return "", err
	}
	return b.T.GetData(config.TKeyExported, map[string]any{"Path": path}), nil
}

func (b *Bot) writeCalendar(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMissingArgument
	}
	path := args[0]

	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateExport, err)
	}
	defer func() { _ = f.Close() }()

	if err := vcardio.WriteCalendar(f, b.Book, b.Clock.Now()); err != nil {
		return "", err
	}
	return b.T.GetData(config.TKeyCalendarWritten, map[string]any{"Path": path}), nil
}

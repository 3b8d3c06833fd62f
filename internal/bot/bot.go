// Package bot implements the line-based command interpreter: one command per
// line, whitespace-delimited tokens, case-insensitive keyword. Every handler
// runs to completion before the next line is read, and no handler error ever
// terminates the loop.
package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-assistant/internal/book"
	"github.com/tartampluch/go-assistant/internal/config"
	"github.com/tartampluch/go-assistant/internal/vcardio"
)

// Command keywords.
const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdImport       = "import"
	CmdExport       = "export"
	CmdCalendar     = "calendar"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// Bot wires the address book to the interpreter. All fields are plain
// dependencies so tests can substitute the clock and the fetcher.
type Bot struct {
	Book    *book.AddressBook
	Clock   book.Clock
	T       *Translator
	Fetcher vcardio.Fetcher

	// Basic auth credentials for URL imports, from the environment.
	HTTPUser string
	HTTPPass string
}

// New creates a bot with the real clock and the HTTP fetcher.
func New(ab *book.AddressBook, t *Translator) *Bot {
	return &Bot{
		Book:    ab,
		Clock:   book.RealClock{},
		T:       t,
		Fetcher: vcardio.NewHTTPFetcher(),
	}
}

// parseInput splits one input line into the lowercased command keyword and
// its positional arguments. A blank line yields an empty command.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Handle dispatches one parsed command and always returns a printable result.
func (b *Bot) Handle(ctx context.Context, command string, args []string) string {
	var (
		out string
		err error
	)

	switch command {
	case CmdHello:
		out = b.T.Get(config.TKeyGreeting)
	case CmdAdd:
		out, err = b.addContact(args)
	case CmdChange:
		out, err = b.changeContact(args)
	case CmdPhone:
		out, err = b.showPhones(args)
	case CmdAll:
		out, err = b.allContacts(args)
	case CmdAddBirthday:
		out, err = b.addBirthday(args)
	case CmdShowBirthday:
		out, err = b.showBirthday(args)
	case CmdBirthdays:
		out, err = b.upcomingBirthdays(args)
	case CmdDelete:
		out, err = b.deleteContact(args)
	case CmdImport:
		out, err = b.importContacts(ctx, args)
	case CmdExport:
		out, err = b.exportContacts(args)
	case CmdCalendar:
		out, err = b.writeCalendar(args)
	default:
		out = b.T.Get(config.TKeyInvalidCommand)
	}

	if err != nil {
		slog.Debug(config.MsgCommandDone,
			config.LogKeyComponent, config.CompBot,
			config.LogKeyCommand, command,
			config.LogKeyError, err,
		)
		return b.renderError(err)
	}
	return out
}

// Run executes the interpreter loop until an explicit close/exit command,
// end of input, or context cancellation. It reports whether the session ended
// with an explicit exit, in which case the caller persists the book.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintln(out, b.T.Get(config.TKeyWelcome))

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		fmt.Fprint(out, b.T.Get(config.TKeyPrompt))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("%s: %w", config.ErrInputRead, err)
			}
			// End of input without an exit command: changes are not saved.
			return false, nil
		}

		command, args := parseInput(scanner.Text())
		if command == "" {
			continue
		}

		if command == CmdClose || command == CmdExit {
			fmt.Fprintln(out, b.T.Get(config.TKeyGoodbye))
			return true, nil
		}

		fmt.Fprintln(out, b.Handle(ctx, command, args))
	}
}

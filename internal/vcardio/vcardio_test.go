package vcardio_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-assistant/internal/book"
	"github.com/tartampluch/go-assistant/internal/vcardio"
)

const sampleVCards = `BEGIN:VCARD
VERSION:4.0
FN:John Doe
TEL:1234567890
TEL:0987654321
BDAY:19900615
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Jane Roe
TEL:+33-1-23-45-67
BDAY:--0229
END:VCARD
`

func TestImport(t *testing.T) {
	ab := book.NewAddressBook()

	count, err := vcardio.Import(strings.NewReader(sampleVCards), ab)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	john := ab.Find("John Doe")
	require.NotNil(t, john)
	assert.Len(t, john.Phones(), 2)
	require.NotNil(t, john.Birthday())
	assert.Equal(t, "1990-06-15", john.Birthday().String())

	// Jane's phone is not 10 plain digits and her birthday has no year;
	// both are skipped but the contact itself is still created.
	jane := ab.Find("Jane Roe")
	require.NotNil(t, jane)
	assert.Empty(t, jane.Phones())
	assert.Nil(t, jane.Birthday())
}

func TestImport_MergesIntoExistingRecord(t *testing.T) {
	ab := book.NewAddressBook()
	r := book.NewRecord("John Doe")
	require.NoError(t, r.AddPhone("5555555555"))
	ab.AddRecord(r)

	count, err := vcardio.Import(strings.NewReader(sampleVCards), ab)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	john := ab.Find("John Doe")
	require.NotNil(t, john)
	assert.Len(t, john.Phones(), 3, "imported phones append to the existing record")
}

func TestImport_NameFallbacks(t *testing.T) {
	cards := `BEGIN:VCARD
VERSION:4.0
N:Smith;Ada;;;
TEL:1112223334
END:VCARD
BEGIN:VCARD
VERSION:4.0
TEL:9998887776
END:VCARD
`
	ab := book.NewAddressBook()
	count, err := vcardio.Import(strings.NewReader(cards), ab)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.NotNil(t, ab.Find("Smith;Ada;;;"), "structured name is used verbatim when FN is absent")
	assert.NotNil(t, ab.Find("Unknown"), "nameless cards fall back to the placeholder")
}

func TestExport_RoundTrip(t *testing.T) {
	ab := book.NewAddressBook()
	r := book.NewRecord("Alice")
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddBirthday("15.06.1990"))
	ab.AddRecord(r)

	var buf bytes.Buffer
	require.NoError(t, vcardio.Export(&buf, ab))

	out := buf.String()
	assert.Contains(t, out, "FN:Alice")
	assert.Contains(t, out, "TEL:1234567890")
	assert.Contains(t, out, "BDAY:19900615")

	// Re-importing must reproduce an equivalent record.
	reloaded := book.NewAddressBook()
	count, err := vcardio.Import(&buf, reloaded)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got := reloaded.Find("Alice")
	require.NotNil(t, got)
	assert.Equal(t, r.String(), got.String())
}

func TestWriteCalendar(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ab := book.NewAddressBook()
	r := book.NewRecord("Alice")
	require.NoError(t, r.AddBirthday("15.06.1990"))
	ab.AddRecord(r)
	ab.AddRecord(book.NewRecord("NoBirthday"))

	var buf bytes.Buffer
	require.NoError(t, vcardio.WriteCalendar(&buf, ab, now))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Birthday: Alice (35)", "age for the current-year event")
	assert.Contains(t, out, "SUMMARY:Birthday: Alice (34)", "previous-year event")
	assert.Contains(t, out, "SUMMARY:Birthday: Alice (36)", "next-year event")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250615")
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
}

func TestWriteCalendar_NoEventsBeforeBirthYear(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ab := book.NewAddressBook()
	r := book.NewRecord("Newborn")
	require.NoError(t, r.AddBirthday("01.03.2025"))
	ab.AddRecord(r)

	var buf bytes.Buffer
	require.NoError(t, vcardio.WriteCalendar(&buf, ab, now))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"), "no event in the year before birth")
	assert.Contains(t, out, "SUMMARY:Birthday: Newborn\r\n", "age zero renders without a number")
}

func TestWriteCalendar_EmptyBookWritesStub(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, vcardio.WriteCalendar(&buf, book.NewAddressBook(), time.Now()))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.NotContains(t, out, "VEVENT")
}

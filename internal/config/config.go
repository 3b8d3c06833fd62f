package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used by the vCard import path.
var UserAgent = "Go-Assistant/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Assistant"
	AppID       = "com.github.tartampluch.go-assistant"
	LogFileName = "app.log"

	// DefaultSnapshotFile is the address book file used when neither the
	// -file flag nor ASSISTANT_FILE is set. Relative to the working directory.
	DefaultSnapshotFile = "addressbook.json"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the snapshot file and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagFile        = "file"
	FlagLang        = "lang"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stderr"
	FlagDescFile    = "Path to the address book snapshot file"
	FlagDescLang    = "Interface language (en, fr)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	// DefaultLeapYear is the placeholder year used when parsing vCard dates
	// of the --MM-DD form. Such birthdays are treated as year-unknown.
	DefaultLeapYear = 2000

	// DefaultUpcomingDays is the window (inclusive) of the birthdays command.
	DefaultUpcomingDays = 7

	// PhoneLength is the required number of digits in a phone number.
	PhoneLength = 10

	// SnapshotVersion is written to every saved snapshot. Loading rejects
	// any other value rather than guessing at a foreign layout.
	SnapshotVersion = 1

	UIDSalt = "go-assistant-v1-" // Salt for deterministic calendar UID generation
)

// SupportedLanguages defines the list of available interface languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Assistant//Engine//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalDomain    = "goassistant"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY    = "BDAY"
	VCardFN      = "FN"
	VCardN       = "N"
	VCardTEL     = "TEL"
	VCardVersion = "4.0"

	FallbackName    = "Unknown"
	FallbackSummary = "Birthday: %s"
	SummaryWithAge  = "Birthday: %s (%d)"

	// StubVCalendar is the minimal valid iCalendar object used when the book
	// contains no birthdays. A bare VCALENDAR with no children would be
	// rejected by some consumers.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Validation Messages (User-facing, surfaced verbatim)
// -----------------------------------------------------------------------------

const (
	ErrMsgPhoneFormat  = "Phone number must be 10 digits long!"
	ErrMsgDateFormat   = "Invalid date format. Use DD.MM.YYYY"
	ErrMsgPhoneMissing = "Phone number is incorrect"
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// DateFormatInput is the only layout accepted for birthdays typed at the
	// prompt. The raw string must also be exactly DateInputLength long.
	DateFormatInput = "02.01.2006"
	DateInputLength = 10

	// DateFormatDisplay is the layout used when rendering dates back to the user.
	DateFormatDisplay = "2006-01-02"

	// Date layouts accepted when parsing vCard BDAY fields.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	MaxHTTPResponseSize = 16 * 1024 * 1024 // 16MB: generous for any address book export
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	HeaderUserAgent     = "User-Agent"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome          = "welcome"
	TKeyPrompt           = "prompt"
	TKeyGoodbye          = "goodbye"
	TKeyGreeting         = "greeting"
	TKeyInvalidCommand   = "invalid_command"
	TKeyContactAdded     = "contact_added"
	TKeyContactUpdated   = "contact_updated"
	TKeyContactDeleted   = "contact_deleted"
	TKeyContactNotFound  = "contact_not_found"
	TKeyPhoneUpdated     = "phone_updated"
	TKeyBirthdayAdded    = "birthday_added"
	TKeyBirthdayOf       = "birthday_of" // Requires Name, Date
	TKeyBirthdayNotFound = "birthday_not_found"
	TKeyNoUpcoming       = "no_upcoming"
	TKeyGiveNamePhone    = "give_name_phone"
	TKeyEnterUserName    = "enter_user_name"
	TKeyImported         = "imported" // Requires Count
	TKeyExported         = "exported" // Requires Path
	TKeyCalendarWritten  = "calendar_written" // Requires Path
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrSnapshotRead     = "failed to read snapshot file"
	ErrSnapshotDecode   = "failed to decode snapshot"
	ErrSnapshotEncode   = "failed to encode snapshot"
	ErrSnapshotWrite    = "failed to write snapshot file"
	ErrSnapshotVersion  = "unsupported snapshot version"
	ErrSnapshotRecord   = "invalid record in snapshot"
	ErrSettingsParse    = "failed to parse environment settings"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrVCardEncode      = "failed to encode vCard data"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrFetcherMissing   = "internal error: network fetcher is not initialized"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrInputRead        = "failed to read command input"
	ErrOpenImport       = "failed to open import source"
	ErrCreateExport     = "failed to create export file"

	MsgLogWarning = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down"
	MsgSnapshotLoaded = "Snapshot loaded"
	MsgSnapshotSaved  = "Snapshot saved"
	MsgSnapshotNone   = "No snapshot found, starting empty"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgSkippedPhone   = "Skipping invalid phone number"
	MsgImportDone     = "Import completed"
	MsgExportDone     = "Export completed"
	MsgCalendarDone   = "Calendar generation successful"
	MsgCommandDone    = "Command handled"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyDuration  = "duration_ms"
	LogKeyRecords   = "records"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompBot     = "bot"
	CompBook    = "book"
	CompStorage = "storage"
	CompVCard   = "vcardio"
	CompFetcher = "fetcher"
	CompI18n    = "i18n"
)

package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-assistant/internal/book"
)

// TestNewPhone covers the 10-digit invariant: exact length, digits only.
func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid 10 digits", "1234567890", false},
		{"valid all zeros", "0000000000", false},
		{"too short", "123456789", true},
		{"too long", "12345678901", true},
		{"empty", "", true},
		{"letter inside", "12345a7890", true},
		{"space inside", "12345 7890", true},
		{"plus prefix", "+123456789", true},
		{"unicode digits rejected", "１２３４５６７８９０", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := book.NewPhone(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var verr *book.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, "Phone number must be 10 digits long!", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, p.String(), "phone must round-trip to its input")
		})
	}
}

// TestNewBirthday covers the strict DD.MM.YYYY contract: exact length, fixed
// separators, and a realizable calendar date.
func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"valid", "15.06.1990", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"valid new year", "01.01.2000", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"valid leap day", "29.02.2020", time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"impossible date", "31.02.2020", time.Time{}, true},
		{"leap day in non-leap year", "29.02.2021", time.Time{}, true},
		{"wrong separators", "15-06-1990", time.Time{}, true},
		{"too short", "1.06.1990", time.Time{}, true},
		{"too long", "15.06.19900", time.Time{}, true},
		{"non numeric", "aa.bb.cccc", time.Time{}, true},
		{"iso order", "1990.06.15", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := book.NewBirthday(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid date format. Use DD.MM.YYYY", err.Error())
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(b.Date()), "stored date mismatch: got %v", b.Date())
		})
	}
}

func TestBirthday_String(t *testing.T) {
	b, err := book.NewBirthday("05.11.1987")
	require.NoError(t, err)
	assert.Equal(t, "1987-11-05", b.String())
}

func TestName_Passthrough(t *testing.T) {
	// Names are accepted as-is, including whitespace and unicode.
	assert.Equal(t, "  Álice  ", book.Name("  Álice  ").String())
}

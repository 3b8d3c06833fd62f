package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-assistant/internal/book"
)

func phones(r *book.Record) []string {
	out := make([]string, 0, len(r.Phones()))
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestRecord_AddPhone(t *testing.T) {
	r := book.NewRecord("Alice")

	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("0987654321"))
	assert.Equal(t, []string{"1234567890", "0987654321"}, phones(r), "insertion order must be preserved")

	// Duplicates are allowed.
	require.NoError(t, r.AddPhone("1234567890"))
	assert.Len(t, r.Phones(), 3)

	// Invalid input leaves the list untouched.
	err := r.AddPhone("123")
	require.Error(t, err)
	assert.Len(t, r.Phones(), 3)
}

func TestRecord_FindPhone(t *testing.T) {
	r := book.NewRecord("Alice")
	require.NoError(t, r.AddPhone("1234567890"))

	p, ok := r.FindPhone("1234567890")
	assert.True(t, ok)
	assert.Equal(t, "1234567890", p.String())

	_, ok = r.FindPhone("9999999999")
	assert.False(t, ok)
}

func TestRecord_RemovePhone(t *testing.T) {
	r := book.NewRecord("Alice")
	require.NoError(t, r.AddPhone("1111111111"))
	require.NoError(t, r.AddPhone("2222222222"))
	require.NoError(t, r.AddPhone("1111111111"))

	// Removes exactly the first matching entry.
	r.RemovePhone("1111111111")
	assert.Equal(t, []string{"2222222222", "1111111111"}, phones(r))

	// Removing an absent phone is a silent no-op.
	r.RemovePhone("9999999999")
	assert.Len(t, r.Phones(), 2)
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces exactly one phone", func(t *testing.T) {
		r := book.NewRecord("Alice")
		require.NoError(t, r.AddPhone("1111111111"))

		require.NoError(t, r.EditPhone("1111111111", "2222222222"))
		assert.Equal(t, []string{"2222222222"}, phones(r))
	})

	t.Run("unknown old phone fails and leaves list unchanged", func(t *testing.T) {
		r := book.NewRecord("Alice")
		require.NoError(t, r.AddPhone("1111111111"))

		err := r.EditPhone("9999999999", "2222222222")
		require.Error(t, err)
		assert.Equal(t, "Phone number is incorrect", err.Error())
		assert.Equal(t, []string{"1111111111"}, phones(r))
	})

	t.Run("invalid new phone fails after the old one is removed", func(t *testing.T) {
		// The removal happens before the new number is validated. A rejected
		// replacement therefore drops the old number too. Kept as-is.
		r := book.NewRecord("Alice")
		require.NoError(t, r.AddPhone("1111111111"))

		err := r.EditPhone("1111111111", "bad")
		require.Error(t, err)
		assert.Equal(t, "Phone number must be 10 digits long!", err.Error())
		assert.Empty(t, r.Phones())
	})
}

func TestRecord_AddBirthday(t *testing.T) {
	r := book.NewRecord("Alice")
	assert.Nil(t, r.Birthday())

	require.NoError(t, r.AddBirthday("15.06.1990"))
	require.NotNil(t, r.Birthday())
	assert.Equal(t, "1990-06-15", r.Birthday().String())

	// Overwriting is allowed, no "already set" error.
	require.NoError(t, r.AddBirthday("16.06.1991"))
	assert.Equal(t, "1991-06-16", r.Birthday().String())

	// Invalid input keeps the previous value.
	require.Error(t, r.AddBirthday("99.99.9999"))
	assert.Equal(t, "1991-06-16", r.Birthday().String())
}

func TestRecord_String(t *testing.T) {
	r := book.NewRecord("Alice")
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("0987654321"))

	assert.Equal(t,
		"Contact name: Alice, phones: 1234567890; 0987654321, birthday: ",
		r.String())

	require.NoError(t, r.AddBirthday("15.06.1990"))
	assert.Equal(t,
		"Contact name: Alice, phones: 1234567890; 0987654321, birthday: 1990-06-15",
		r.String())
}

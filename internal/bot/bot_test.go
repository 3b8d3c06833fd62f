package bot_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExitPersists(t *testing.T) {
	b := newTestBot()
	in := strings.NewReader("hello\nadd Alice 1234567890\nexit\n")
	var out strings.Builder

	persist, err := b.Run(context.Background(), in, &out)
	require.NoError(t, err)
	assert.True(t, persist, "an explicit exit must trigger persistence")

	got := out.String()
	assert.Contains(t, got, "Welcome to the assistant bot!")
	assert.Contains(t, got, "Enter a command: ")
	assert.Contains(t, got, "How can I help you?")
	assert.Contains(t, got, "Contact added.")
	assert.Contains(t, got, "Good bye!")
	require.NotNil(t, b.Book.Find("Alice"))
}

func TestRun_CloseAlsoExits(t *testing.T) {
	b := newTestBot()
	var out strings.Builder

	persist, err := b.Run(context.Background(), strings.NewReader("close\n"), &out)
	require.NoError(t, err)
	assert.True(t, persist)
	assert.Contains(t, out.String(), "Good bye!")
}

func TestRun_EOFWithoutExit(t *testing.T) {
	b := newTestBot()
	var out strings.Builder

	persist, err := b.Run(context.Background(), strings.NewReader("hello\n"), &out)
	require.NoError(t, err)
	assert.False(t, persist, "end of input is not a controlled shutdown")
}

func TestRun_SurvivesBadInput(t *testing.T) {
	b := newTestBot()
	in := strings.NewReader("frobnicate\n\nadd\nadd Bob 123\nADD Bob 1234567890\nexit\n")
	var out strings.Builder

	persist, err := b.Run(context.Background(), in, &out)
	require.NoError(t, err)
	assert.True(t, persist)

	got := out.String()
	assert.Contains(t, got, "Invalid command.")
	assert.Contains(t, got, "Give me phone and name please")
	assert.Contains(t, got, "Phone number must be 10 digits long!")
	// Command keywords are case-insensitive.
	assert.Contains(t, got, "Contact updated.")
}

func TestRun_CancelledContext(t *testing.T) {
	b := newTestBot()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	persist, err := b.Run(ctx, strings.NewReader("exit\n"), &out)
	assert.Error(t, err)
	assert.False(t, persist)
}

package textrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/corekit/core/textrange"
)

func TestFull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, textrange.Range{Location: 0, Length: 0}, textrange.Full(""))
	assert.Equal(t, textrange.Range{Location: 0, Length: 5}, textrange.Full("hello"))
	assert.Equal(t, textrange.Range{Location: 0, Length: 3}, textrange.Full("日本語"), "runes, not bytes")
}

func TestSlice_Success(t *testing.T) {
	t.Parallel()

	got, err := textrange.Slice("hello, world", textrange.Range{Location: 7, Length: 5})
	require.NoError(t, err)
	assert.Equal(t, "world", got)

	got, err = textrange.Slice("日本語のテキスト", textrange.Range{Location: 4, Length: 4})
	require.NoError(t, err)
	assert.Equal(t, "テキスト", got)

	got, err = textrange.Slice("hello", textrange.Range{Location: 5, Length: 0})
	require.NoError(t, err)
	assert.Equal(t, "", got, "empty range at end of string is valid")
}

func TestSlice_Errors(t *testing.T) {
	t.Parallel()

	_, err := textrange.Slice("hello", textrange.Range{Location: 3, Length: 5})
	require.ErrorIs(t, err, textrange.ErrOutOfBounds)

	_, err = textrange.Slice("hello", textrange.None)
	require.ErrorIs(t, err, textrange.ErrInvalidRange)
}

func TestReplace_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		r        textrange.Range
		with     string
		expected string
	}{
		{
			name:     "replace word",
			s:        "hello, world",
			r:        textrange.Range{Location: 7, Length: 5},
			with:     "gophers",
			expected: "hello, gophers",
		},
		{
			name:     "empty range inserts",
			s:        "ab",
			r:        textrange.Range{Location: 1, Length: 0},
			with:     "-",
			expected: "a-b",
		},
		{
			name:     "delete with empty replacement",
			s:        "hello, world",
			r:        textrange.Range{Location: 5, Length: 7},
			with:     "",
			expected: "hello",
		},
		{
			name:     "multibyte runes",
			s:        "日本語",
			r:        textrange.Range{Location: 2, Length: 1},
			with:     "列島",
			expected: "日本列島",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := textrange.Replace(tt.s, tt.r, tt.with)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReplace_OutOfBounds(t *testing.T) {
	t.Parallel()

	_, err := textrange.Replace("abc", textrange.Range{Location: 2, Length: 2}, "x")
	require.ErrorIs(t, err, textrange.ErrOutOfBounds)
}

package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInput(src string) (*Input, *bytes.Buffer) {
	var out bytes.Buffer
	return NewInput(strings.NewReader(src), &out), &out
}

func TestInputLine(t *testing.T) {
	in, out := newTestInput("  Groceries  \n\nlast")

	got, ok := in.Line()
	assert.True(t, ok)
	assert.Equal(t, "Groceries", got)

	_, ok = in.Line()
	assert.False(t, ok, "empty line cancels")

	got, ok = in.Line()
	assert.True(t, ok)
	assert.Equal(t, "last", got, "final line without newline")

	_, ok = in.Line()
	assert.False(t, ok, "end of input cancels")
	assert.Empty(t, out.String())
}

func TestInputLineRetriesInvalidEncoding(t *testing.T) {
	in, out := newTestInput("\xff\xfe\n\xc3\x28\nRent\n")

	got, ok := in.Line()
	require.True(t, ok)
	assert.Equal(t, "Rent", got)
	assert.Equal(t, 2, strings.Count(out.String(), MsgRetype))
}

func TestInputLineCancelsOnReadError(t *testing.T) {
	in := NewInput(iotest.ErrReader(errors.New("broken pipe")), io.Discard)
	_, ok := in.Line()
	assert.False(t, ok)
}

func TestInputAmount(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		want     float64
		ok       bool
		reprompt int
	}{
		{"valid", "54.20\n", 54.2, true, 0},
		{"negative", "-12\n", -12, true, 0},
		{"retry until valid", "abc\n1,5\n42.5\n", 42.5, true, 2},
		{"empty cancels", "\n", 0, false, 0},
		{"empty cancels after failed parse", "abc\n\n42.5\n", 0, false, 1},
		{"end of input cancels", "abc\n", 0, false, 1},
		{"exponent form", "1e3\n", 1000, true, 0},
		{"NaN reprompts", "NaN\n42\n", 42, true, 1},
		{"infinities reprompt", "inf\n-Inf\n+infinity\n7\n", 7, true, 3},
		{"overflow reprompts", "1e400\n7\n", 7, true, 1},
		{"hex float reprompts", "0x1p-2\n0.25\n", 0.25, true, 1},
		{"empty cancels after NaN", "nan\n\n", 0, false, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, out := newTestInput(tc.src)
			got, ok := in.Amount()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.reprompt, strings.Count(out.String(), MsgEnterNumber))
		})
	}
}

func TestInputSelection(t *testing.T) {
	in, _ := newTestInput(" 1 \n")

	got, err := in.Selection()
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = in.Selection()
	require.NoError(t, err, "end of input is not fatal")
	assert.Empty(t, got)
}

func TestInputSelectionFatalOnReadError(t *testing.T) {
	in := NewInput(iotest.ErrReader(errors.New("device gone")), io.Discard)

	_, err := in.Selection()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputUnavailable))
	assert.Contains(t, err.Error(), "device gone")
}

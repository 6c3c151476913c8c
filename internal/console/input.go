package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"bills/internal/core"
)

var (
	// ErrInputUnavailable is returned when the menu prompt cannot be read.
	ErrInputUnavailable = errors.New("no data entered")

	errInvalidEncoding = errors.New("input is not valid UTF-8")
)

// Input reads trimmed lines and amounts from a line-oriented source.
// Reprompts go to out.
type Input struct {
	r   *bufio.Reader
	out io.Writer
}

func NewInput(r io.Reader, out io.Writer) *Input {
	return &Input{r: bufio.NewReader(r), out: out}
}

// Line reads a field value. It returns false when the user entered an empty
// line, or when input ended or failed; the menu read after the aborted flow
// observes the same condition.
func (in *Input) Line() (string, bool) {
	line, err := in.read()
	if err != nil || line == "" {
		return "", false
	}
	return line, true
}

// Amount reads a number, reprompting until it parses. An empty line cancels
// on every attempt, including after a failed parse.
func (in *Input) Amount() (float64, bool) {
	for {
		line, ok := in.Line()
		if !ok {
			return 0, false
		}
		v, err := core.ParseAmount(line)
		if err == nil {
			return v, true
		}
		fmt.Fprintln(in.out, MsgEnterNumber)
	}
}

// Selection reads the menu choice. End of input yields an empty selection,
// which the menu treats as exit. Any other read failure is fatal.
func (in *Input) Selection() (string, error) {
	line, err := in.read()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	return line, nil
}

// read returns the next trimmed line, retrying lines that are not valid
// UTF-8.
func (in *Input) read() (string, error) {
	for {
		line, err := in.readRaw()
		if errors.Is(err, errInvalidEncoding) {
			fmt.Fprintln(in.out, MsgRetype)
			continue
		}
		return line, err
	}
}

func (in *Input) readRaw() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts.
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	if !utf8.ValidString(line) {
		return "", errInvalidEncoding
	}
	return strings.TrimSpace(line), nil
}

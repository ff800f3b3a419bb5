package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// ErrNotTerminal is returned by ReadKey when stdin is not a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// ReadLine reads a line of input from stdin. Used when stdin is not a
// terminal, e.g. when commands are piped in.
func ReadLine() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadKey puts the terminal into raw mode, reads one key press and returns
// its code. Keys return immediately without needing Enter.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	return decodeKey(stdinReader)
}

// decodeKey reads one key from a raw byte stream.
// Printable ASCII returns itself; control keys and escape sequences return names.
func decodeKey(r io.ByteReader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return decodeEscape(r)
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b == 127 || b == 8:
		return "backspace", nil
	case b >= 'A' && b <= 'Z':
		return string(b + ('a' - 'A')), nil
	case b > 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}

// decodeEscape handles the bytes after ESC. Both CSI (ESC [) and SS3 (ESC O)
// sequences are understood; a lone ESC cannot be told apart from the start
// of a sequence in a blocking read, so a buffered reader that has nothing
// more pending reports "escape".
func decodeEscape(r io.ByteReader) (string, error) {
	if br, ok := r.(*bufio.Reader); ok && br.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "escape", nil
		}
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	// Collect parameter bytes up to the final byte (0x40-0x7e)
	var params []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if b >= 0x40 && b <= 0x7e {
			return escapeName(b, string(params)), nil
		}
		params = append(params, b)
	}
}

func escapeName(final byte, params string) string {
	switch final {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	case '~':
		switch params {
		case "20":
			return "f9"
		case "24":
			return "f12"
		}
	}
	// Unknown escape sequence - discard it
	return ""
}

package input

import (
	"context"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	keyEscape = 0x1b
	keyCtrlC  = 3
)

// Decode turns a buffer of raw terminal bytes into key codes. Arrow keys
// arrive as CSI (ESC [) or SS3 (ESC O) sequences; modified arrows
// (ESC [1;5A) decode as the plain arrow and ESC [20~ as "f9". An ESC that
// does not start a sequence is reported as "escape"; unknown or truncated
// sequences are dropped whole.
func Decode(buf []byte) []string {
	var codes []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == keyEscape:
			if i+1 >= len(buf) {
				codes = append(codes, "escape")
				continue
			}
			switch buf[i+1] {
			case '[':
				code, n := decodeCSI(buf[i+2:])
				if code != "" {
					codes = append(codes, code)
				}
				i += 1 + n
			case 'O':
				if i+2 < len(buf) {
					if code := arrowCode(buf[i+2]); code != "" {
						codes = append(codes, code)
					}
					i += 2
				} else {
					i++
				}
			default:
				codes = append(codes, "escape")
			}
		case b == keyCtrlC:
			codes = append(codes, "ctrl_c")
		case b == '\r' || b == '\n':
			codes = append(codes, "enter")
		case b >= 'A' && b <= 'Z':
			codes = append(codes, string(rune(b+'a'-'A')))
		case b >= 32 && b < 127:
			codes = append(codes, string(rune(b)))
		}
	}
	return codes
}

// decodeCSI reads the body of a CSI sequence (after ESC [) up to and
// including its final byte in 0x40-0x7E. It returns the key code, or "" when
// the sequence is unknown, and the number of bytes consumed.
func decodeCSI(body []byte) (string, int) {
	for n, b := range body {
		if b < 0x40 || b > 0x7e {
			continue
		}
		params := string(body[:n])
		if b == '~' {
			return tildeCode(params), n + 1
		}
		return arrowCode(b), n + 1
	}
	return "", len(body)
}

// tildeCode maps the first parameter of an ESC [ <n> ~ sequence
func tildeCode(params string) string {
	if i := strings.IndexByte(params, ';'); i >= 0 {
		params = params[:i]
	}
	switch params {
	case "20":
		return "f9"
	}
	return ""
}

func arrowCode(b byte) string {
	switch b {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadTerminal reads key presses from r (normally stdin in raw mode) and
// forwards them to out until ctx is cancelled or the reader fails. The channel
// is closed on return.
func ReadTerminal(ctx context.Context, r io.Reader, out chan<- RawInput) {
	defer close(out)
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			now := time.Now()
			for _, code := range Decode(buf[:n]) {
				select {
				case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: now}:
				case <-ctx.Done():
					return
				}
			}
		}
		if err != nil {
			if err != io.EOF {
				log.WithError(err).Warn("terminal input stopped")
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

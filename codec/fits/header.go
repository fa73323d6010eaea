package fits

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	blockSize = 2880
	cardSize  = 80
)

// card renders one 80-byte FITS header card from a keyword and an
// already-formatted value field.
func card(key, value string) string {
	s := fmt.Sprintf("%-8s= %s", strings.ToUpper(key), value)
	if len(s) > cardSize {
		s = s[:cardSize]
	}
	return s + strings.Repeat(" ", cardSize-len(s))
}

func cardString(key, v string) string { return card(key, "'"+v+"'") }
func cardInt(key string, v int64) string {
	return card(key, strconv.FormatInt(v, 10))
}
func cardBool(key string, v bool) string {
	b := "F"
	if v {
		b = "T"
	}
	return card(key, b)
}

func endCard() string { return "END" + strings.Repeat(" ", cardSize-3) }

// writeHeader writes cards followed by an END card, padded to a multiple
// of blockSize with trailing spaces.
func writeHeader(w io.Writer, cards []string) error {
	var buf bytes.Buffer
	for _, c := range cards {
		buf.WriteString(c)
	}
	buf.WriteString(endCard())
	for buf.Len()%blockSize != 0 {
		buf.WriteByte(' ')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// primaryHeader is the minimal primary HDU every FITS MOC file carries
// ahead of its single binary table extension.
func primaryHeader() []string {
	return []string{
		cardBool("SIMPLE", true),
		cardInt("BITPIX", 8),
		cardInt("NAXIS", 0),
		cardBool("EXTEND", true),
	}
}

// readHeader reads consecutive blockSize blocks from r until a card whose
// keyword is END is found, and returns the parsed key/value map. Data
// immediately follows the last block consumed.
func readHeader(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)
	for {
		block := make([]byte, blockSize)
		if _, err := io.ReadFull(r, block); err != nil {
			return nil, ErrMalformed
		}
		done := false
		for i := 0; i < blockSize; i += cardSize {
			c := block[i : i+cardSize]
			key := strings.TrimSpace(string(c[:8]))
			if key == "" {
				continue
			}
			if key == "END" {
				done = true
				break
			}
			rest := string(c[8:])
			rest = strings.TrimPrefix(rest, "= ")
			if idx := strings.Index(rest, "/"); idx >= 0 {
				rest = rest[:idx]
			}
			rest = strings.TrimSpace(rest)
			rest = strings.Trim(rest, "'")
			rest = strings.TrimSpace(rest)
			values[key] = rest
		}
		if done {
			return values, nil
		}
	}
}

package dictionary

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// encodingByName maps SET directive values to decoders. Files without a SET
// directive are read as UTF-8.
func encodingByName(name string) (encoding.Encoding, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "ISO-8859", "ISO8859")
	if n == "UTF8" {
		n = "UTF-8"
	}
	switch n {
	case "", "UTF-8":
		return unicode.UTF8, nil
	case "ISO8859-1":
		return charmap.ISO8859_1, nil
	case "ISO8859-2":
		return charmap.ISO8859_2, nil
	case "ISO8859-3":
		return charmap.ISO8859_3, nil
	case "ISO8859-4":
		return charmap.ISO8859_4, nil
	case "ISO8859-5":
		return charmap.ISO8859_5, nil
	case "ISO8859-6":
		return charmap.ISO8859_6, nil
	case "ISO8859-7":
		return charmap.ISO8859_7, nil
	case "ISO8859-8":
		return charmap.ISO8859_8, nil
	case "ISO8859-9":
		return charmap.ISO8859_9, nil
	case "ISO8859-10":
		return charmap.ISO8859_10, nil
	case "ISO8859-13":
		return charmap.ISO8859_13, nil
	case "ISO8859-14":
		return charmap.ISO8859_14, nil
	case "ISO8859-15":
		return charmap.ISO8859_15, nil
	case "KOI8-R":
		return charmap.KOI8R, nil
	case "KOI8-U":
		return charmap.KOI8U, nil
	case "CP1251", "MICROSOFT-CP1251", "WINDOWS-1251":
		return charmap.Windows1251, nil
	}
	return nil, fmt.Errorf("unsupported dictionary encoding %q", name)
}

// decodeToUTF8 converts raw file bytes in the given encoding to UTF-8.
func decodeToUTF8(raw []byte, enc encoding.Encoding) (string, error) {
	if enc == unicode.UTF8 {
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding dictionary file: %w", err)
	}
	return string(out), nil
}

// findSetDirective scans raw affix bytes for the SET command before any
// decoding happens. SET values are ASCII, so a byte scan is safe.
func findSetDirective(raw []byte) string {
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "SET") {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				return fields[1]
			}
		}
	}
	return ""
}

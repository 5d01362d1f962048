package pdf

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// formatCurrency renders an amount as a fixed en-US dollar string. The
// record's currency selection is deliberately ignored; the document always
// formats in USD.
func formatCurrency(amount float64) string {
	return "$" + usPrinter.Sprintf("%.2f", amount)
}

// formatDateOr converts a YYYY-MM-DD date to M/D/YYYY, substituting the
// literal placeholder when the field is empty. Anything unparsable passes
// through verbatim.
func formatDateOr(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// parseHexColor parses a #rrggbb brand color, falling back to def on
// anything malformed.
func parseHexColor(s string, def rgb) rgb {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return def
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return def
	}
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}
}

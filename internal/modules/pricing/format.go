package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var german = message.NewPrinter(language.German)

// FormatPrice renders a per-category price the way every document view
// shows it: zero is "inklusive", surcharges get an explicit plus sign,
// credits keep their minus sign. Two decimals, German number format.
func FormatPrice(v float64) string {
	switch {
	case v == 0:
		return "inklusive"
	case v > 0:
		return german.Sprintf("+%.2f €", v)
	default:
		return german.Sprintf("%.2f €", v)
	}
}

// FormatTotal renders the grand total without the included/surcharge
// convention: always a plain signed amount.
func FormatTotal(v float64) string {
	return german.Sprintf("%.2f €", v)
}

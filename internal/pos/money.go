package pos

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The original system printed amounts and dates for a Colombian audience;
// display formatting keeps that convention. Stored values are plain numbers.
var displayPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatMoney renders an amount with es-CO digit grouping, e.g. "$88.060".
func FormatMoney(amount float64) string {
	return displayPrinter.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatDisplayTime renders the human-readable invoice date in local time.
func FormatDisplayTime(t time.Time) string {
	return t.Local().Format("2/1/2006, 15:04:05")
}

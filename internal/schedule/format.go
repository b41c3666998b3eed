package schedule

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var korean = message.NewPrinter(language.Korean)

// FormatKRW renders an amount the way the mobile client displays it,
// grouped digits with the won suffix.
func FormatKRW(amount int64) string {
	return korean.Sprintf("%v원", number.Decimal(amount))
}

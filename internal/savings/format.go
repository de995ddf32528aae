package savings

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders estimate figures with the digit grouping of a locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a Formatter for a BCP 47 locale such as "en-IN".
// Unparseable locales fall back to English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Number formats n with grouping separators.
func (f *Formatter) Number(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Rupees formats n as a rupee amount.
func (f *Formatter) Rupees(n int) string {
	return "₹" + f.Number(n)
}

// Kilowatts formats a system size.
func (f *Formatter) Kilowatts(n int) string {
	return f.printer.Sprintf("%d kW", n)
}

package folio

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// FormatCents renders an amount of minor currency units for display,
// e.g. FormatCents(150000, "USD") == "$1,500.00".
func FormatCents(cents int64, currency string) string {
	return money.New(cents, currency).Display()
}

// Percent is a percentage value (15.0 means 15%), used for rendering weights.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

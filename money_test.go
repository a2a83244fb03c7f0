package folio

import "testing"

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents    int64
		currency string
		want     string
	}{
		{150000, "USD", "$1,500.00"},
		{-2500, "USD", "-$25.00"},
		{0, "USD", "$0.00"},
		{99, "USD", "$0.99"},
	}
	for _, test := range tests {
		if got := FormatCents(test.cents, test.currency); got != test.want {
			t.Errorf("FormatCents(%d, %s) = %q, want %q", test.cents, test.currency, got, test.want)
		}
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(15).String(); got != "15.00%" {
		t.Errorf("String() = %q, want 15.00%%", got)
	}
	if got := Percent(-3.456).SignedString(); got != "-3.46%" {
		t.Errorf("SignedString() = %q, want -3.46%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := Percent(1.2).SignedString(); got != "+1.20%" {
		t.Errorf("SignedString() = %q, want +1.20%%", got)
	}
}

func TestPercentEqual(t *testing.T) {
	if !Percent(15.00001).Equal(15) {
		t.Error("near-equal percents compared unequal")
	}
	if Percent(15.1).Equal(15) {
		t.Error("distinct percents compared equal")
	}
}

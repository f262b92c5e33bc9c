package economy

import "testing"

func TestCurrencyMulFloatTruncates(t *testing.T) {
	tests := []struct {
		amount Currency
		factor float64
		want   Currency
	}{
		{Penny, 3.15, 3},
		{Doubloon, 3.15, 31},
		{Doubloon, 1, 10},
		{Doubloon, 0.99, 9},
		{0, 100, 0},
	}
	for _, test := range tests {
		if got := test.amount.MulFloat(test.factor); got != test.want {
			t.Errorf("%v * %v: got %v, want %v", test.amount, test.factor, got, test.want)
		}
	}
}

func TestCurrencyPredicates(t *testing.T) {
	if !Currency(0).IsZero() || Currency(1).IsZero() {
		t.Error("IsZero")
	}
	if !Currency(-5).IsDebt() || Currency(5).IsDebt() {
		t.Error("IsDebt")
	}
	if !Currency(5).IsSurplus() || Currency(-5).IsSurplus() {
		t.Error("IsSurplus")
	}
}

func TestCurrencyString(t *testing.T) {
	tests := []struct {
		amount Currency
		want   string
	}{
		{0, "¢0"},
		{42, "¢42"},
		{-7, "-¢7"},
	}
	for _, test := range tests {
		if got := test.amount.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

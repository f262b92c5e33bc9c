package economy

import "fmt"

// Currency is an amount of in-game money. It is signed so balances can
// carry debt.
type Currency int32

const (
	// Penny is the smallest unit of currency.
	Penny Currency = 1
	// Doubloon is the standard unit of currency.
	Doubloon Currency = 10
)

// MulFloat scales the amount by a fractional factor, truncating towards
// zero. All fractional piece values flow through this, so a bishop worth
// 3.15 pays out the same as one worth 3.
func (c Currency) MulFloat(f float64) Currency {
	return Currency(float64(c) * f)
}

func (c Currency) IsZero() bool {
	return c == 0
}

func (c Currency) IsDebt() bool {
	return c < 0
}

func (c Currency) IsSurplus() bool {
	return c > 0
}

func (c Currency) String() string {
	if c.IsDebt() {
		return fmt.Sprintf("-¢%d", -c)
	}
	return fmt.Sprintf("¢%d", int32(c))
}

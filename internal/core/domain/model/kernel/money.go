package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or NewMoneyFromInt")

// MoneyScale is the number of decimal places an amount may carry.
const MoneyScale = 2

// MaxMoneyAmount is the largest amount storage can hold (NUMERIC(12,2)).
var MaxMoneyAmount = decimal.RequireFromString("9999999999.99")

// Money is a non-negative amount in the marketplace currency (INR). Amounts
// are exact decimals, so totals computed from unit prices never drift.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates that amount is not negative, has at most two decimal
// places and does not exceed MaxMoneyAmount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is less than 0", amount.String()),
		)
	}
	if !amount.Equal(amount.Round(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), MoneyScale),
		)
	}
	if err := checkMoneyBound("amount", amount); err != nil {
		return Money{}, err
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromInt is a convenience for whole-rupee amounts.
func NewMoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Multiply returns m × quantity. Quantity is validated by callers.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// CheckBound reports a ValueIsOutOfRange error when m exceeds
// MaxMoneyAmount. Sums and products are not bounded on their own.
func (m Money) CheckBound(paramName string) error {
	return checkMoneyBound(paramName, m.amount)
}

func checkMoneyBound(paramName string, amount decimal.Decimal) error {
	if amount.GreaterThan(MaxMoneyAmount) {
		return errs.NewValueIsOutOfRangeError(paramName, amount.String(), "0", MaxMoneyAmount.String())
	}
	return nil
}

// IsEqual compares amounts numerically, so 10 and 10.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (m *Money) UnmarshalJSON(data []byte) error {
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	parsed, err := NewMoney(amount)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

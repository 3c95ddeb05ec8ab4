package money

import (
	"github.com/shopspring/decimal"
)

// Dyn represents an immutable monetary amount in a dynamically-typed
// currency: the currency is carried as a [Currency] reference resolved
// at runtime, typically looked up from a registry such as
// currencymap.Map by code. Use Dyn when the currency is only learned
// from input data; when it is known at compile time, prefer [Money].
//
// The identity of the currency is its [Currency.Code], never the
// identity of the referenced object: two distinct objects both
// reporting "USD" are the same currency for all operations.
//
// Operations involving a Dyn cannot be currency-checked by the
// compiler, so [Dyn.Add] and [Dyn.Sub] return an error when the
// operands' currency codes differ.
//
// All operations return new values, leaving the receiver unaltered,
// so Dyn values are safe for concurrent use by multiple goroutines.
// The zero value holds no currency and is not ready for use; construct
// values with [NewDyn] or [DynFromMinorUnits].
type Dyn struct {
	amount   decimal.Decimal // monetary value
	currency Currency        // runtime currency reference
}

// NewDyn returns a monetary amount in the given dynamically-typed
// currency. The currency must not be nil and must not be mutated for
// as long as the returned value or any value derived from it is in
// use.
func NewDyn(amount decimal.Decimal, curr Currency) Dyn {
	return Dyn{amount: amount, currency: curr}
}

// DynFromMinorUnits converts an integer number of the currency's minor
// units (e.g. cents, pennies, fens) to a monetary amount, using the
// currency's [Currency.MinorUnits] as the implied decimal scale.
// For example, 100 USD minor units is USD 1.00, but 100 JPY minor
// units is JPY 100.
// See also method [Dyn.MinorUnits].
func DynFromMinorUnits(units int64, curr Currency) Dyn {
	return Dyn{
		amount:   decimal.New(units, -int32(curr.MinorUnits())),
		currency: curr,
	}
}

// Amount returns the decimal amount of the monetary value.
func (d Dyn) Amount() decimal.Decimal {
	return d.amount
}

// Currency returns the held currency reference.
// Unlike [Money.Currency], which returns a copy, the reference is
// passed through unchanged.
func (d Dyn) Currency() Currency {
	return d.currency
}

// CurrencyCode returns the code of the monetary value's currency.
func (d Dyn) CurrencyCode() string {
	return d.currency.Code()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Dyn) Sign() int {
	return d.amount.Sign()
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Dyn) IsZero() bool {
	return d.amount.IsZero()
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Dyn) IsPos() bool {
	return d.amount.IsPositive()
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Dyn) IsNeg() bool {
	return d.amount.IsNegative()
}

// Add returns the sum of monetary values d and b. The right-hand side
// may be of either currency representation; the result keeps d's
// currency reference, even when b's currency is a different object
// reporting the same code.
//
// Add returns [IncompatibleCurrenciesError] if the currency codes of
// the operands differ.
func (d Dyn) Add(b Operand) (Dyn, error) {
	if d.currency.Code() != b.CurrencyCode() {
		return Dyn{}, IncompatibleCurrenciesError{d.currency.Code(), b.CurrencyCode()}
	}
	return Dyn{amount: d.amount.Add(b.Amount()), currency: d.currency}, nil
}

// Sub returns the difference between monetary values d and b. The
// right-hand side may be of either currency representation; the result
// keeps d's currency reference.
//
// Sub returns [IncompatibleCurrenciesError] if the currency codes of
// the operands differ.
func (d Dyn) Sub(b Operand) (Dyn, error) {
	if d.currency.Code() != b.CurrencyCode() {
		return Dyn{}, IncompatibleCurrenciesError{d.currency.Code(), b.CurrencyCode()}
	}
	return Dyn{amount: d.amount.Sub(b.Amount()), currency: d.currency}, nil
}

// Mul returns the product of monetary value d and factor e.
// The factor is a dimensionless number, not another monetary value:
// one multiplies a price by a quantity, not by another price.
func (d Dyn) Mul(e decimal.Decimal) Dyn {
	return Dyn{amount: d.amount.Mul(e), currency: d.currency}
}

// Div returns the quotient of monetary value d and divisor e.
// The divisor is a dimensionless number, not another monetary value.
//
// Div panics if the divisor is zero.
// To avoid this panic, verify the divisor with [decimal.Decimal.IsZero]
// before calling Div.
func (d Dyn) Div(e decimal.Decimal) Dyn {
	return Dyn{amount: d.amount.Div(e), currency: d.currency}
}

// Mod returns the remainder of dividing monetary value d by divisor e.
//
// Mod panics if the divisor is zero.
func (d Dyn) Mod(e decimal.Decimal) Dyn {
	return Dyn{amount: d.amount.Mod(e), currency: d.currency}
}

// Neg returns a monetary value with the opposite sign.
func (d Dyn) Neg() Dyn {
	return Dyn{amount: d.amount.Neg(), currency: d.currency}
}

// Abs returns the absolute monetary value.
func (d Dyn) Abs() Dyn {
	return Dyn{amount: d.amount.Abs(), currency: d.currency}
}

// Equal reports whether monetary values d and b are equal, that is,
// whether their currency codes match and their amounts are equal.
// The right-hand side may be of either currency representation.
// Amounts with different scales, such as 1 and 1.00, are considered
// equal.
func (d Dyn) Equal(b Operand) bool {
	return d.currency.Code() == b.CurrencyCode() && d.amount.Equal(b.Amount())
}

// Round returns a monetary value rounded to the given number of digits
// after the decimal point using [rounding half to even] (banker's
// rounding).
// See also method [Dyn.RoundToCurr].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (d Dyn) Round(scale int) Dyn {
	return Dyn{amount: d.amount.RoundBank(int32(scale)), currency: d.currency}
}

// RoundToCurr returns a monetary value rounded to the scale of its
// currency using [rounding half to even] (banker's rounding).
// See also method [Dyn.Round].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (d Dyn) RoundToCurr() Dyn {
	return d.Round(d.currency.MinorUnits())
}

// MinorUnits returns a (possibly rounded) amount in minor units of
// currency (e.g. cents, pennies, fens), suitable for sending to a
// payment processor. If the scale of the amount is greater than the
// scale of the currency, the fractional part is rounded using
// [rounding half to even] (banker's rounding).
// See also constructor [DynFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is
// returned.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (d Dyn) MinorUnits() (units int64, ok bool) {
	return minorUnits(d.amount, d.currency.MinorUnits())
}

// String implements the [fmt.Stringer] interface and returns the
// currency code followed by the amount, e.g. "USD 1.50".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Dyn) String() string {
	return d.currency.Code() + " " + d.amount.String()
}

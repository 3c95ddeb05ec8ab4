package money

import (
	"github.com/shopspring/decimal"
)

// Money represents an immutable monetary amount in a statically-typed
// currency. Money values in different currencies are different,
// non-interoperable types: a Money[iso.USD] cannot be added to or
// compared with a Money[iso.JPY], and a program attempting to do so
// does not compile.
//
// When the currency is only known at runtime, use [Dyn] instead.
// Values of the two representations interoperate through
// [Money.AddDyn], [Money.SubDyn], [Money.EqualDyn], [Dyn.Add],
// [Dyn.Sub], and [Dyn.Equal].
//
// All operations return new values, leaving the receiver unaltered,
// so Money values are safe for concurrent use by multiple goroutines.
// The zero value is a zero amount of currency C.
type Money[C CurrencyValue] struct {
	amount   decimal.Decimal // monetary value
	currency C               // statically-typed currency
}

// New returns a monetary amount in the given statically-typed currency.
// The currency argument is accepted without validation: eligibility is
// purely a property of its type, checked by the [CurrencyValue]
// constraint at compile time.
func New[C CurrencyValue](amount decimal.Decimal, curr C) Money[C] {
	return Money[C]{amount: amount, currency: curr}
}

// FromMinorUnits converts an integer number of the currency's minor
// units (e.g. cents, pennies, fens) to a monetary amount, using the
// currency's [Currency.MinorUnits] as the implied decimal scale.
// For example, 100 USD minor units is USD 1.00, but 100 JPY minor
// units is JPY 100.
// See also method [Money.MinorUnits].
func FromMinorUnits[C CurrencyValue](units int64, curr C) Money[C] {
	return Money[C]{
		amount:   decimal.New(units, -int32(curr.MinorUnits())),
		currency: curr,
	}
}

// Amount returns the decimal amount of the monetary value.
func (m Money[C]) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns a copy of the monetary value's currency.
// Unlike [Dyn.Currency], which passes its reference through, the
// returned currency is an independent value.
func (m Money[C]) Currency() C {
	return m.currency
}

// CurrencyCode returns the code of the monetary value's currency.
func (m Money[C]) CurrencyCode() string {
	return m.currency.Code()
}

// Dyn returns the same monetary value with its currency carried as a
// runtime reference instead of a type parameter. It is a convenience
// for handing statically-typed values to code that works on [Dyn];
// the cross-representation operations do not require it.
func (m Money[C]) Dyn() Dyn {
	return Dyn{amount: m.amount, currency: m.currency}
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money[C]) Sign() int {
	return m.amount.Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money[C]) IsZero() bool {
	return m.amount.IsZero()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money[C]) IsPos() bool {
	return m.amount.IsPositive()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money[C]) IsNeg() bool {
	return m.amount.IsNegative()
}

// Add returns the sum of monetary values m and b.
//
// Both operands are denominated in the same statically-typed currency,
// which the compiler has already guaranteed, so Add performs no
// currency comparison and cannot fail.
// See also method [Money.AddDyn].
func (m Money[C]) Add(b Money[C]) Money[C] {
	return Money[C]{amount: m.amount.Add(b.amount), currency: m.currency}
}

// Sub returns the difference between monetary values m and b.
//
// Both operands are denominated in the same statically-typed currency,
// which the compiler has already guaranteed, so Sub performs no
// currency comparison and cannot fail.
// See also method [Money.SubDyn].
func (m Money[C]) Sub(b Money[C]) Money[C] {
	return Money[C]{amount: m.amount.Sub(b.amount), currency: m.currency}
}

// AddDyn returns the sum of monetary value m and dynamically-typed
// monetary value b. The result keeps m's currency representation.
//
// AddDyn returns [IncompatibleCurrenciesError] if the currency codes
// of the operands differ.
func (m Money[C]) AddDyn(b Dyn) (Money[C], error) {
	if m.currency.Code() != b.CurrencyCode() {
		return Money[C]{}, IncompatibleCurrenciesError{m.currency.Code(), b.CurrencyCode()}
	}
	return Money[C]{amount: m.amount.Add(b.Amount()), currency: m.currency}, nil
}

// SubDyn returns the difference between monetary value m and
// dynamically-typed monetary value b. The result keeps m's currency
// representation.
//
// SubDyn returns [IncompatibleCurrenciesError] if the currency codes
// of the operands differ.
func (m Money[C]) SubDyn(b Dyn) (Money[C], error) {
	if m.currency.Code() != b.CurrencyCode() {
		return Money[C]{}, IncompatibleCurrenciesError{m.currency.Code(), b.CurrencyCode()}
	}
	return Money[C]{amount: m.amount.Sub(b.Amount()), currency: m.currency}, nil
}

// Mul returns the product of monetary value m and factor e.
// The factor is a dimensionless number, not another monetary value:
// one multiplies a price by a quantity, not by another price.
func (m Money[C]) Mul(e decimal.Decimal) Money[C] {
	return Money[C]{amount: m.amount.Mul(e), currency: m.currency}
}

// Div returns the quotient of monetary value m and divisor e.
// The divisor is a dimensionless number, not another monetary value.
//
// Div panics if the divisor is zero.
// To avoid this panic, verify the divisor with [decimal.Decimal.IsZero]
// before calling Div.
func (m Money[C]) Div(e decimal.Decimal) Money[C] {
	return Money[C]{amount: m.amount.Div(e), currency: m.currency}
}

// Mod returns the remainder of dividing monetary value m by divisor e.
//
// Mod panics if the divisor is zero.
func (m Money[C]) Mod(e decimal.Decimal) Money[C] {
	return Money[C]{amount: m.amount.Mod(e), currency: m.currency}
}

// Neg returns a monetary value with the opposite sign.
func (m Money[C]) Neg() Money[C] {
	return Money[C]{amount: m.amount.Neg(), currency: m.currency}
}

// Abs returns the absolute monetary value.
func (m Money[C]) Abs() Money[C] {
	return Money[C]{amount: m.amount.Abs(), currency: m.currency}
}

// Equal reports whether monetary values m and b are equal.
// Both operands are denominated in the same statically-typed currency,
// so equality reduces to amount equality; amounts with different
// scales, such as 1 and 1.00, are considered equal.
// See also method [Money.EqualDyn].
func (m Money[C]) Equal(b Money[C]) bool {
	return m.amount.Equal(b.amount) && m.currency == b.currency
}

// EqualDyn reports whether monetary value m and dynamically-typed
// monetary value b are equal, that is, whether their currency codes
// match and their amounts are equal.
func (m Money[C]) EqualDyn(b Dyn) bool {
	return m.currency.Code() == b.CurrencyCode() && m.amount.Equal(b.Amount())
}

// Round returns a monetary value rounded to the given number of digits
// after the decimal point using [rounding half to even] (banker's
// rounding).
// See also method [Money.RoundToCurr].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money[C]) Round(scale int) Money[C] {
	return Money[C]{amount: m.amount.RoundBank(int32(scale)), currency: m.currency}
}

// RoundToCurr returns a monetary value rounded to the scale of its
// currency using [rounding half to even] (banker's rounding).
// See also method [Money.Round].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money[C]) RoundToCurr() Money[C] {
	return m.Round(m.currency.MinorUnits())
}

// MinorUnits returns a (possibly rounded) amount in minor units of
// currency (e.g. cents, pennies, fens), suitable for sending to a
// payment processor. If the scale of the amount is greater than the
// scale of the currency, the fractional part is rounded using
// [rounding half to even] (banker's rounding).
// See also constructor [FromMinorUnits].
//
// If the result cannot be represented as an int64, then false is
// returned.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money[C]) MinorUnits() (units int64, ok bool) {
	return minorUnits(m.amount, m.currency.MinorUnits())
}

// String implements the [fmt.Stringer] interface and returns the
// currency code followed by the amount, e.g. "USD 1.50".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money[C]) String() string {
	return m.currency.Code() + " " + m.amount.String()
}

// minorUnits rescales d to the given currency scale and returns it as
// a whole number of minor units.
func minorUnits(d decimal.Decimal, scale int) (units int64, ok bool) {
	u := d.RoundBank(int32(scale)).Shift(int32(scale)).BigInt()
	if !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

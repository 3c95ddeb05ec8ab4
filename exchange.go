package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two
// statically-typed currencies: one unit of the base currency buys
// Rate units of the quote currency.
// ExchangeRate is immutable and safe for concurrent use by multiple
// goroutines.
type ExchangeRate[B, Q CurrencyValue] struct {
	base  B               // currency being exchanged
	quote Q               // currency being obtained in exchange for the base currency
	rate  decimal.Decimal // units of quote currency per 1 unit of the base currency
}

// ConversionError is returned by [ExchangeRate.ConvDyn] when the
// monetary value's currency does not match the exchange rate's base
// currency.
//
// The error is returned as a plain comparable value, never wrapped,
// so results can be checked with a direct comparison as well as with
// [errors.As].
type ConversionError struct {
	BaseCode  string // base currency code of the exchange rate
	MoneyCode string // currency code of the monetary value
}

// Error implements the error interface.
func (e ConversionError) Error() string {
	return fmt.Sprintf("the exchange rate's base currency does not match the money's currency (%s, %s)", e.BaseCode, e.MoneyCode)
}

// NewExchangeRate returns an exchange rate between the base and quote
// currencies.
//
// NewExchangeRate returns an error if:
//   - the rate is not positive;
//   - the base and quote currency codes are equal but the rate is not 1.
func NewExchangeRate[B, Q CurrencyValue](base B, quote Q, rate decimal.Decimal) (ExchangeRate[B, Q], error) {
	if !rate.IsPositive() {
		return ExchangeRate[B, Q]{}, fmt.Errorf("exchange rate must be positive")
	}
	if base.Code() == quote.Code() && !rate.Equal(decimal.NewFromInt(1)) {
		return ExchangeRate[B, Q]{}, fmt.Errorf("exchange rate between %v and %v must be equal to 1", base.Code(), quote.Code())
	}
	return ExchangeRate[B, Q]{base: base, quote: quote, rate: rate}, nil
}

// MustNewExchangeRate is like [NewExchangeRate] but panics if the rate
// cannot be constructed. It simplifies safe initialization of global
// variables holding exchange rates.
func MustNewExchangeRate[B, Q CurrencyValue](base B, quote Q, rate decimal.Decimal) ExchangeRate[B, Q] {
	r, err := NewExchangeRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("NewExchangeRate(%v, %v, %v) failed: %v", base.Code(), quote.Code(), rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate[B, Q]) Base() B {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base
// currency.
func (r ExchangeRate[B, Q]) Quote() Q {
	return r.quote
}

// Rate returns the number of units of the quote currency obtained in
// exchange for 1 unit of the base currency.
func (r ExchangeRate[B, Q]) Rate() decimal.Decimal {
	return r.rate
}

// Conv returns the monetary value converted from the base currency to
// the quote currency. The operand is denominated in the rate's base
// currency by construction, so Conv performs no currency comparison
// and cannot fail.
// See also method [ExchangeRate.ConvDyn].
func (r ExchangeRate[B, Q]) Conv(m Money[B]) Money[Q] {
	return Money[Q]{amount: m.amount.Mul(r.rate), currency: r.quote}
}

// ConvDyn returns the dynamically-typed monetary value converted from
// the base currency to the quote currency.
//
// ConvDyn returns [ConversionError] if the monetary value's currency
// code does not match the base currency's code.
func (r ExchangeRate[B, Q]) ConvDyn(d Dyn) (Money[Q], error) {
	if r.base.Code() != d.CurrencyCode() {
		return Money[Q]{}, ConversionError{r.base.Code(), d.CurrencyCode()}
	}
	return Money[Q]{amount: d.amount.Mul(r.rate), currency: r.quote}, nil
}

// Inv returns the inverse of the exchange rate.
//
// Inv panics if the rate is zero, which is only possible for the zero
// value of ExchangeRate.
func (r ExchangeRate[B, Q]) Inv() ExchangeRate[Q, B] {
	if r.rate.IsZero() {
		panic(fmt.Sprintf("%v.Inv() failed: zero rate does not have an inverse", r))
	}
	return ExchangeRate[Q, B]{
		base:  r.quote,
		quote: r.base,
		rate:  decimal.NewFromInt(1).Div(r.rate),
	}
}

// String implements the [fmt.Stringer] interface and returns the
// base and quote currency codes followed by the rate, e.g.
// "USD/EUR 0.85".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate[B, Q]) String() string {
	return r.base.Code() + "/" + r.quote.Code() + " " + r.rate.String()
}

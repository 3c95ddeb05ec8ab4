/*
Package money implements monetary values bound to a currency identity
in two interchangeable representations: a statically-typed one, where
the currency is fixed at compile time, and a dynamically-typed one,
where the currency is resolved at runtime.
Amounts are held as [decimal] values.

# Representations

A [Money] is parameterized by a concrete currency type, so amounts in
different currencies are different, non-interoperable types:

	price := money.New(decimal.NewFromInt(1), iso.USD{}) // money.Money[iso.USD]
	fare := money.New(decimal.NewFromInt(1), iso.JPY{})  // money.Money[iso.JPY]
	price.Add(fare)                                      // does not compile

A [Dyn] carries its currency as a [Currency] reference instead, for
code that only learns the currency from input data. Its arithmetic is
checked at runtime and returns an error when the currency codes differ:

	usd, _ := currencies.Get("USD")
	jpy, _ := currencies.Get("JPY")
	a := money.NewDyn(decimal.NewFromInt(1), usd)
	b := money.NewDyn(decimal.NewFromInt(1), jpy)
	_, err := a.Add(b) // IncompatibleCurrenciesError ("USD", "JPY")

The two representations combine without prior conversion: [Dyn.Add]
accepts either representation on the right-hand side, and
[Money.AddDyn] accepts a Dyn. In every successful mixed operation the
result adopts the left operand's currency representation.

# Currencies

Any type implementing [Currency] can denominate a monetary value.
The iso subpackage provides a zero-size type per ISO 4217 currency,
and the currencymap subpackage provides a code-indexed registry for
resolving dynamic currency references. A currency's identity is its
code: two currency objects reporting the same code are the same
currency for equality and arithmetic, regardless of object identity.

# Operations

Addition and subtraction combine two monetary values of compatible
currencies. Multiplication, division, and remainder take a
dimensionless decimal operand, since multiplying a price by a price
has no meaningful unit. Rounding methods operate in accordance with
the currency's number of minor units, and [Money.MinorUnits] converts
an amount to an integer count of minor units for payment processors.
Conversion between currencies is provided by [ExchangeRate].

# Immutability

All values in this package are immutable: every operation returns a
new value, so values are safe for concurrent use by multiple
goroutines without synchronization.

[decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package money

package money

import "github.com/shopspring/decimal"

//go:generate go run scripts/iso/codegen.go

// Currency is the capability every currency must provide.
// Implementations are expected to answer with constant, side-effect-free
// values for the lifetime of the process.
//
// [Currency.Code] is the unique identity of a currency: every
// compatibility and equality check in this package compares codes with
// case-sensitive exact matching, never object identity. Two
// implementations reporting the same code are the same currency for
// all money purposes, so each code must be implemented by exactly one
// static currency type in a program. The iso subpackage provides
// ready-made implementations for every ISO 4217 currency.
type Currency interface {
	// Code returns the unique alphabetic code of the currency,
	// such as "USD" or "JPY".
	Code() string

	// MinorUnits returns the number of digits after the decimal point
	// required for representing the minor unit of the currency.
	// For example, the US Dollar uses 2 and the Japanese Yen uses 0.
	MinorUnits() int

	// NumericCode returns the numeric code assigned to the currency
	// by the ISO 4217 standard, such as 840 for the US Dollar.
	NumericCode() int

	// Symbol returns the commonly used symbol of the currency,
	// such as "$". It may be empty.
	Symbol() string

	// Name returns the informal name of the currency,
	// such as "US Dollar".
	Name() string
}

// CurrencyValue constrains the currency parameter of [Money] to
// statically-typed currency values: concrete comparable types
// implementing [Currency], such as iso.USD or iso.JPY.
// The comparable requirement is what rejects the Currency interface
// type itself, so a dynamically-typed currency can only ever travel
// inside a [Dyn].
//
// One constraint admits every static currency, which is how [New] and
// [FromMinorUnits] are defined exactly once rather than per currency.
type CurrencyValue interface {
	comparable
	Currency
}

// Operand is a monetary value of either currency representation.
// It is satisfied by [Money] and [Dyn] and is accepted as the
// right-hand side of [Dyn.Add], [Dyn.Sub], and [Dyn.Equal], which is
// what lets a dynamically-typed value combine with a statically-typed
// one without converting it first.
type Operand interface {
	// Amount returns the decimal amount of the monetary value.
	Amount() decimal.Decimal

	// CurrencyCode returns the code of the monetary value's currency.
	CurrencyCode() string
}

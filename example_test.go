package money_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ducat/money"
	"github.com/ducat/money/currencymap"
	"github.com/ducat/money/iso"
)

func ExampleNew() {
	m := money.New(decimal.RequireFromString("19.99"), iso.USD{})
	fmt.Println(m)
	// Output: USD 19.99
}

func ExampleFromMinorUnits() {
	fmt.Println(money.FromMinorUnits(1999, iso.USD{}))
	fmt.Println(money.FromMinorUnits(1999, iso.JPY{}))
	// Output:
	// USD 19.99
	// JPY 1999
}

func ExampleMoney_Add() {
	price := money.FromMinorUnits(1999, iso.USD{})
	shipping := money.FromMinorUnits(500, iso.USD{})
	fmt.Println(price.Add(shipping))
	// Output: USD 24.99
}

func ExampleNewDyn() {
	currencies := currencymap.New(iso.All()...)
	usd, _ := currencies.Get("USD")
	jpy, _ := currencies.Get("JPY")

	a := money.NewDyn(decimal.NewFromInt(10), usd)
	b := money.NewDyn(decimal.NewFromInt(5), usd)
	c := money.NewDyn(decimal.NewFromInt(5), jpy)

	sum, err := a.Add(b)
	fmt.Println(sum, err)
	_, err = a.Add(c)
	fmt.Println(err)
	// Output:
	// USD 15 <nil>
	// the money instances have incompatible currencies (USD, JPY)
}

func ExampleMoney_AddDyn() {
	currencies := currencymap.New(iso.All()...)
	usd, _ := currencies.Get("USD")

	price := money.New(decimal.NewFromInt(10), iso.USD{})
	discount := money.NewDyn(decimal.NewFromInt(-2), usd)

	total, err := price.AddDyn(discount)
	fmt.Println(total, err)
	// Output: USD 8 <nil>
}

func ExampleMoney_Mul() {
	price := money.FromMinorUnits(250, iso.USD{})
	fmt.Println(price.Mul(decimal.NewFromInt(4)))
	// Output: USD 10.00
}

func ExampleMoney_MinorUnits() {
	m := money.New(decimal.RequireFromString("10.4567"), iso.USD{})
	units, ok := m.MinorUnits()
	fmt.Println(units, ok)
	// Output: 1046 true
}

func ExampleMoney_RoundToCurr() {
	m := money.New(decimal.RequireFromString("1.5678"), iso.USD{})
	fmt.Println(m.RoundToCurr())
	fmt.Println(money.New(decimal.RequireFromString("1.5678"), iso.JPY{}).RoundToCurr())
	// Output:
	// USD 1.57
	// JPY 2
}

func ExampleExchangeRate_Conv() {
	rate := money.MustNewExchangeRate(iso.USD{}, iso.EUR{}, decimal.RequireFromString("0.85"))
	price := money.New(decimal.NewFromInt(100), iso.USD{})
	fmt.Println(rate.Conv(price))
	// Output: EUR 85.00
}

func ExampleMoney_Dyn() {
	m := money.New(decimal.NewFromInt(10), iso.USD{})
	d := m.Dyn()
	fmt.Println(d.CurrencyCode(), d.Amount())
	// Output: USD 10
}

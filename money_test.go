package money_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ducat/money"
	"github.com/ducat/money/iso"
)

// testCurrency is a runtime-configured currency used to exercise
// dynamic references with distinct objects reporting the same code.
type testCurrency struct {
	code   string
	scale  int
	num    int
	symbol string
	name   string
}

func (c *testCurrency) Code() string     { return c.code }
func (c *testCurrency) MinorUnits() int  { return c.scale }
func (c *testCurrency) NumericCode() int { return c.num }
func (c *testCurrency) Symbol() string   { return c.symbol }
func (c *testCurrency) Name() string     { return c.name }

var (
	dynUSD money.Currency = iso.USD{}
	dynJPY money.Currency = iso.JPY{}
)

func one() decimal.Decimal {
	return decimal.NewFromInt(1)
}

func two() decimal.Decimal {
	return decimal.NewFromInt(2)
}

func TestNew(t *testing.T) {
	m := money.New(one(), iso.USD{})
	if !m.Amount().Equal(one()) {
		t.Errorf("m.Amount() = %v, want %v", m.Amount(), one())
	}
	if m.Currency() != (iso.USD{}) {
		t.Errorf("m.Currency() = %v, want %v", m.Currency(), iso.USD{})
	}
	if m.CurrencyCode() != "USD" {
		t.Errorf("m.CurrencyCode() = %q, want %q", m.CurrencyCode(), "USD")
	}
}

func TestNewDyn(t *testing.T) {
	d := money.NewDyn(one(), dynUSD)
	if !d.Amount().Equal(one()) {
		t.Errorf("d.Amount() = %v, want %v", d.Amount(), one())
	}
	if d.Currency() != dynUSD {
		t.Errorf("d.Currency() = %v, want %v", d.Currency(), dynUSD)
	}
	if d.CurrencyCode() != "USD" {
		t.Errorf("d.CurrencyCode() = %q, want %q", d.CurrencyCode(), "USD")
	}
}

func TestFromMinorUnits(t *testing.T) {
	t.Run("USD", func(t *testing.T) {
		m := money.FromMinorUnits(100, iso.USD{})
		if !m.Amount().Equal(one()) {
			t.Errorf("FromMinorUnits(100, USD).Amount() = %v, want 1.00", m.Amount())
		}
		if got := m.String(); got != "USD 1.00" {
			t.Errorf("FromMinorUnits(100, USD).String() = %q, want %q", got, "USD 1.00")
		}
	})

	t.Run("JPY", func(t *testing.T) {
		m := money.FromMinorUnits(100, iso.JPY{})
		if !m.Amount().Equal(decimal.NewFromInt(100)) {
			t.Errorf("FromMinorUnits(100, JPY).Amount() = %v, want 100", m.Amount())
		}
	})

	t.Run("dynamic", func(t *testing.T) {
		d := money.DynFromMinorUnits(100, dynJPY)
		if !d.Amount().Equal(decimal.NewFromInt(100)) {
			t.Errorf("DynFromMinorUnits(100, JPY).Amount() = %v, want 100", d.Amount())
		}
		if d.Currency() != dynJPY {
			t.Errorf("DynFromMinorUnits(100, JPY).Currency() = %v, want %v", d.Currency(), dynJPY)
		}
	})
}

func TestMoney_Add(t *testing.T) {
	got := money.New(one(), iso.USD{}).Add(money.New(one(), iso.USD{}))
	want := money.New(two(), iso.USD{})
	if !got.Equal(want) {
		t.Errorf("New(1, USD).Add(New(1, USD)) = %v, want %v", got, want)
	}

	got = got.Add(money.New(one(), iso.USD{}))
	if !got.Equal(money.New(decimal.NewFromInt(3), iso.USD{})) {
		t.Errorf("chained Add = %v, want USD 3", got)
	}

	// Money[iso.USD] and Money[iso.JPY] are different types, so adding
	// them does not compile:
	//
	//	money.New(one(), iso.USD{}).Add(money.New(one(), iso.JPY{}))
}

func TestMoney_Sub(t *testing.T) {
	tests := []struct {
		a, b, want decimal.Decimal
	}{
		{two(), one(), one()},
		{one(), two(), decimal.NewFromInt(-1)},
	}
	for _, tt := range tests {
		got := money.New(tt.a, iso.USD{}).Sub(money.New(tt.b, iso.USD{}))
		if !got.Equal(money.New(tt.want, iso.USD{})) {
			t.Errorf("New(%v, USD).Sub(New(%v, USD)) = %v, want USD %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDyn_Add(t *testing.T) {
	t.Run("compatible", func(t *testing.T) {
		got, err := money.NewDyn(one(), dynUSD).Add(money.NewDyn(one(), dynUSD))
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if !got.Equal(money.NewDyn(two(), dynUSD)) {
			t.Errorf("NewDyn(1, USD).Add(NewDyn(1, USD)) = %v, want USD 2", got)
		}
	})

	t.Run("incompatible", func(t *testing.T) {
		_, err := money.NewDyn(one(), dynUSD).Add(money.NewDyn(one(), dynJPY))
		want := money.IncompatibleCurrenciesError{LeftCode: "USD", RightCode: "JPY"}
		if err != want {
			t.Errorf("NewDyn(1, USD).Add(NewDyn(1, JPY)) error = %v, want %v", err, want)
		}

		// The error carries the codes in operand order.
		_, err = money.NewDyn(one(), dynJPY).Add(money.NewDyn(one(), dynUSD))
		want = money.IncompatibleCurrenciesError{LeftCode: "JPY", RightCode: "USD"}
		if err != want {
			t.Errorf("NewDyn(1, JPY).Add(NewDyn(1, USD)) error = %v, want %v", err, want)
		}

		var incompatible money.IncompatibleCurrenciesError
		if !errors.As(err, &incompatible) {
			t.Errorf("errors.As(%v, *IncompatibleCurrenciesError) = false, want true", err)
		}
	})

	t.Run("chained", func(t *testing.T) {
		// Chains short-circuit to the first error encountered.
		a := money.NewDyn(one(), dynUSD)
		sum, err := a.Add(a)
		if err == nil {
			sum, err = sum.Add(a)
		}
		if err != nil {
			t.Fatalf("chained Add failed: %v", err)
		}
		if !sum.Equal(money.NewDyn(decimal.NewFromInt(3), dynUSD)) {
			t.Errorf("chained Add = %v, want USD 3", sum)
		}

		sum, err = a.Add(money.NewDyn(one(), dynJPY))
		if err == nil {
			sum, err = sum.Add(a)
		}
		want := money.IncompatibleCurrenciesError{LeftCode: "USD", RightCode: "JPY"}
		if err != want {
			t.Errorf("chained Add error = %v, want %v", err, want)
		}
	})
}

func TestDyn_Sub(t *testing.T) {
	got, err := money.NewDyn(two(), dynUSD).Sub(money.NewDyn(one(), dynUSD))
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if !got.Equal(money.NewDyn(one(), dynUSD)) {
		t.Errorf("NewDyn(2, USD).Sub(NewDyn(1, USD)) = %v, want USD 1", got)
	}

	_, err = money.NewDyn(two(), dynJPY).Sub(money.NewDyn(one(), dynUSD))
	want := money.IncompatibleCurrenciesError{LeftCode: "JPY", RightCode: "USD"}
	if err != want {
		t.Errorf("NewDyn(2, JPY).Sub(NewDyn(1, USD)) error = %v, want %v", err, want)
	}
}

func TestDyn_Add_mixed(t *testing.T) {
	// Dynamic left, static right: the result keeps the left operand's
	// dynamic representation.
	got, err := money.NewDyn(one(), dynUSD).Add(money.New(one(), iso.USD{}))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !got.Equal(money.NewDyn(two(), dynUSD)) {
		t.Errorf("NewDyn(1, USD).Add(New(1, USD)) = %v, want USD 2", got)
	}
	if got.Currency() != dynUSD {
		t.Errorf("result currency = %v, want the left operand's reference", got.Currency())
	}

	_, err = money.NewDyn(one(), dynUSD).Add(money.New(one(), iso.JPY{}))
	want := money.IncompatibleCurrenciesError{LeftCode: "USD", RightCode: "JPY"}
	if err != want {
		t.Errorf("NewDyn(1, USD).Add(New(1, JPY)) error = %v, want %v", err, want)
	}
}

func TestMoney_AddDyn(t *testing.T) {
	// Static left, dynamic right: the result keeps the left operand's
	// static representation.
	got, err := money.New(one(), iso.USD{}).AddDyn(money.NewDyn(one(), dynUSD))
	if err != nil {
		t.Fatalf("AddDyn failed: %v", err)
	}
	if !got.Equal(money.New(two(), iso.USD{})) {
		t.Errorf("New(1, USD).AddDyn(NewDyn(1, USD)) = %v, want USD 2", got)
	}

	_, err = money.New(one(), iso.USD{}).AddDyn(money.NewDyn(one(), dynJPY))
	want := money.IncompatibleCurrenciesError{LeftCode: "USD", RightCode: "JPY"}
	if err != want {
		t.Errorf("New(1, USD).AddDyn(NewDyn(1, JPY)) error = %v, want %v", err, want)
	}
}

func TestMoney_SubDyn(t *testing.T) {
	got, err := money.New(one(), iso.USD{}).SubDyn(money.NewDyn(two(), dynUSD))
	if err != nil {
		t.Fatalf("SubDyn failed: %v", err)
	}
	if !got.Equal(money.New(decimal.NewFromInt(-1), iso.USD{})) {
		t.Errorf("New(1, USD).SubDyn(NewDyn(2, USD)) = %v, want USD -1", got)
	}

	_, err = money.New(two(), iso.JPY{}).SubDyn(money.NewDyn(one(), dynUSD))
	want := money.IncompatibleCurrenciesError{LeftCode: "JPY", RightCode: "USD"}
	if err != want {
		t.Errorf("New(2, JPY).SubDyn(NewDyn(1, USD)) error = %v, want %v", err, want)
	}
}

func TestDyn_Add_leftPreference(t *testing.T) {
	// Two distinct currency objects reporting the same code are the
	// same currency, but a successful operation keeps the left
	// operand's reference.
	left := &testCurrency{code: "USD", scale: 2, num: 840, symbol: "$", name: "US Dollar"}
	right := &testCurrency{code: "USD", scale: 2, num: 840, symbol: "$", name: "US Dollar"}

	got, err := money.NewDyn(one(), left).Add(money.NewDyn(one(), right))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got.Currency() != money.Currency(left) {
		t.Errorf("result currency = %p, want the left operand's object %p", got.Currency(), left)
	}
}

func TestMoney_Equal(t *testing.T) {
	tests := []struct {
		a, b decimal.Decimal
		want bool
	}{
		{one(), one(), true},
		{one(), decimal.RequireFromString("1.00"), true},
		{one(), two(), false},
	}
	for _, tt := range tests {
		got := money.New(tt.a, iso.USD{}).Equal(money.New(tt.b, iso.USD{}))
		if got != tt.want {
			t.Errorf("New(%v, USD).Equal(New(%v, USD)) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	// Money[iso.USD] and Money[iso.JPY] are different types, so
	// comparing them does not compile:
	//
	//	money.New(one(), iso.USD{}).Equal(money.New(one(), iso.JPY{}))
}

func TestDyn_Equal(t *testing.T) {
	tests := []struct {
		a, b decimal.Decimal
		ca   money.Currency
		cb   money.Currency
		want bool
	}{
		{one(), one(), dynUSD, dynUSD, true},
		{one(), decimal.RequireFromString("1.00"), dynUSD, dynUSD, true},
		{one(), two(), dynUSD, dynUSD, false},
		{one(), one(), dynUSD, dynJPY, false},
		{one(), one(), dynJPY, dynUSD, false},
	}
	for _, tt := range tests {
		got := money.NewDyn(tt.a, tt.ca).Equal(money.NewDyn(tt.b, tt.cb))
		if got != tt.want {
			t.Errorf("NewDyn(%v, %v).Equal(NewDyn(%v, %v)) = %v, want %v", tt.a, tt.ca, tt.b, tt.cb, got, tt.want)
		}
	}
}

func TestDyn_Equal_codeIdentity(t *testing.T) {
	// Equality is code-based, not object-based.
	a := &testCurrency{code: "USD", scale: 2}
	b := &testCurrency{code: "USD", scale: 2}
	if !money.NewDyn(one(), a).Equal(money.NewDyn(one(), b)) {
		t.Errorf("distinct currency objects with code USD compare unequal, want equal")
	}
}

func TestEqual_mixed(t *testing.T) {
	m := money.New(one(), iso.USD{})
	d := money.NewDyn(one(), dynUSD)

	if !m.EqualDyn(d) {
		t.Errorf("New(1, USD).EqualDyn(NewDyn(1, USD)) = false, want true")
	}
	if !d.Equal(m) {
		t.Errorf("NewDyn(1, USD).Equal(New(1, USD)) = false, want true")
	}
	if m.EqualDyn(money.NewDyn(one(), dynJPY)) {
		t.Errorf("New(1, USD).EqualDyn(NewDyn(1, JPY)) = true, want false")
	}
	if m.EqualDyn(money.NewDyn(two(), dynUSD)) {
		t.Errorf("New(1, USD).EqualDyn(NewDyn(2, USD)) = true, want false")
	}
}

func TestMoney_Mul(t *testing.T) {
	got := money.New(decimal.NewFromInt(10), iso.USD{}).Mul(decimal.NewFromInt(10))
	if !got.Equal(money.New(decimal.NewFromInt(100), iso.USD{})) {
		t.Errorf("New(10, USD).Mul(10) = %v, want USD 100", got)
	}
}

func TestMoney_Div(t *testing.T) {
	tests := []struct {
		a, e, want string
	}{
		{"10", "2", "5"},
		{"2", "10", "0.2"},
	}
	for _, tt := range tests {
		a := decimal.RequireFromString(tt.a)
		e := decimal.RequireFromString(tt.e)
		want := decimal.RequireFromString(tt.want)
		got := money.New(a, iso.USD{}).Div(e)
		if !got.Equal(money.New(want, iso.USD{})) {
			t.Errorf("New(%v, USD).Div(%v) = %v, want USD %v", a, e, got, want)
		}
	}
}

func TestMoney_Mod(t *testing.T) {
	got := money.New(decimal.NewFromInt(10), iso.USD{}).Mod(decimal.NewFromInt(10))
	if !got.IsZero() {
		t.Errorf("New(10, USD).Mod(10) = %v, want USD 0", got)
	}
}

func TestDyn_scalarOps(t *testing.T) {
	d := money.NewDyn(decimal.NewFromInt(10), dynUSD)

	if got := d.Mul(decimal.NewFromInt(10)); !got.Equal(money.NewDyn(decimal.NewFromInt(100), dynUSD)) {
		t.Errorf("NewDyn(10, USD).Mul(10) = %v, want USD 100", got)
	}
	if got := d.Div(two()); !got.Equal(money.NewDyn(decimal.NewFromInt(5), dynUSD)) {
		t.Errorf("NewDyn(10, USD).Div(2) = %v, want USD 5", got)
	}
	if got := d.Mod(decimal.NewFromInt(10)); !got.IsZero() {
		t.Errorf("NewDyn(10, USD).Mod(10) = %v, want USD 0", got)
	}
	if got := d.Neg(); !got.Equal(money.NewDyn(decimal.NewFromInt(-10), dynUSD)) {
		t.Errorf("NewDyn(10, USD).Neg() = %v, want USD -10", got)
	}
}

func TestMoney_Neg(t *testing.T) {
	got := money.New(one(), iso.USD{}).Neg()
	if !got.Equal(money.New(decimal.NewFromInt(-1), iso.USD{})) {
		t.Errorf("New(1, USD).Neg() = %v, want USD -1", got)
	}
}

func TestMoney_Abs(t *testing.T) {
	got := money.New(decimal.NewFromInt(-1), iso.USD{}).Abs()
	if !got.Equal(money.New(one(), iso.USD{})) {
		t.Errorf("New(-1, USD).Abs() = %v, want USD 1", got)
	}
}

func TestMoney_signs(t *testing.T) {
	if !money.New(decimal.Zero, iso.USD{}).IsZero() {
		t.Errorf("New(0, USD).IsZero() = false, want true")
	}
	if !money.New(one(), iso.USD{}).IsPos() {
		t.Errorf("New(1, USD).IsPos() = false, want true")
	}
	if !money.New(one(), iso.USD{}).Neg().IsNeg() {
		t.Errorf("New(-1, USD).IsNeg() = false, want true")
	}
	if got := money.New(decimal.NewFromInt(-5), iso.USD{}).Sign(); got != -1 {
		t.Errorf("New(-5, USD).Sign() = %v, want -1", got)
	}
	if !money.NewDyn(decimal.Zero, dynUSD).IsZero() {
		t.Errorf("NewDyn(0, USD).IsZero() = false, want true")
	}
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		amount string
		scale  int
		want   string
	}{
		{"1.555", 2, "1.56"},
		{"1.5", 0, "2"},
		{"2.5", 0, "2"}, // banker's rounding
	}
	for _, tt := range tests {
		a := decimal.RequireFromString(tt.amount)
		want := decimal.RequireFromString(tt.want)
		got := money.New(a, iso.USD{}).Round(tt.scale)
		if !got.Amount().Equal(want) {
			t.Errorf("New(%v, USD).Round(%v) = %v, want USD %v", a, tt.scale, got, want)
		}
	}
}

func TestMoney_RoundToCurr(t *testing.T) {
	a := decimal.RequireFromString("1.555")
	got := money.New(a, iso.USD{}).RoundToCurr()
	if !got.Amount().Equal(decimal.RequireFromString("1.56")) {
		t.Errorf("New(1.555, USD).RoundToCurr() = %v, want USD 1.56", got)
	}

	got2 := money.New(a, iso.JPY{}).RoundToCurr()
	if !got2.Amount().Equal(two()) {
		t.Errorf("New(1.555, JPY).RoundToCurr() = %v, want JPY 2", got2)
	}
}

func TestMoney_MinorUnits(t *testing.T) {
	if got, ok := money.New(decimal.RequireFromString("10.45"), iso.USD{}).MinorUnits(); !ok || got != 1045 {
		t.Errorf("New(10.45, USD).MinorUnits() = (%v, %v), want (1045, true)", got, ok)
	}
	if got, ok := money.New(decimal.RequireFromString("10.4567"), iso.USD{}).MinorUnits(); !ok || got != 1046 {
		t.Errorf("New(10.4567, USD).MinorUnits() = (%v, %v), want (1046, true)", got, ok)
	}
	if got, ok := money.New(decimal.RequireFromString("10.4567"), iso.JPY{}).MinorUnits(); !ok || got != 10 {
		t.Errorf("New(10.4567, JPY).MinorUnits() = (%v, %v), want (10, true)", got, ok)
	}
	if got, ok := money.NewDyn(decimal.RequireFromString("10.45"), dynUSD).MinorUnits(); !ok || got != 1045 {
		t.Errorf("NewDyn(10.45, USD).MinorUnits() = (%v, %v), want (1045, true)", got, ok)
	}

	// Out of int64 range.
	huge := decimal.New(1, 30)
	if _, ok := money.New(huge, iso.USD{}).MinorUnits(); ok {
		t.Errorf("New(1e30, USD).MinorUnits() ok = true, want false")
	}
}

func TestMoney_Dyn(t *testing.T) {
	d := money.New(one(), iso.USD{}).Dyn()
	if d.CurrencyCode() != "USD" {
		t.Errorf("New(1, USD).Dyn().CurrencyCode() = %q, want %q", d.CurrencyCode(), "USD")
	}
	if !d.Equal(money.NewDyn(one(), dynUSD)) {
		t.Errorf("New(1, USD).Dyn() = %v, want USD 1", d)
	}
}

func TestMoney_String(t *testing.T) {
	if got := money.New(decimal.NewFromInt(1000), iso.USD{}).String(); got != "USD 1000" {
		t.Errorf("New(1000, USD).String() = %q, want %q", got, "USD 1000")
	}
	if got := money.NewDyn(decimal.NewFromInt(1000), dynUSD).String(); got != "USD 1000" {
		t.Errorf("NewDyn(1000, USD).String() = %q, want %q", got, "USD 1000")
	}
}

func TestIncompatibleCurrenciesError_Error(t *testing.T) {
	err := money.IncompatibleCurrenciesError{LeftCode: "USD", RightCode: "JPY"}
	want := "the money instances have incompatible currencies (USD, JPY)"
	if got := err.Error(); got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
}

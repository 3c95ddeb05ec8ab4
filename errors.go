package money

import "fmt"

// IncompatibleCurrenciesError is returned by arithmetic between two
// monetary values whose currency codes differ. It can only arise when
// at least one operand is dynamically typed; arithmetic between values
// of the same statically-typed currency cannot fail, and arithmetic
// between different statically-typed currencies does not compile.
//
// The error is returned as a plain comparable value, never wrapped,
// so results can be checked with a direct comparison as well as with
// [errors.As].
type IncompatibleCurrenciesError struct {
	LeftCode  string // currency code of the left operand
	RightCode string // currency code of the right operand
}

// Error implements the error interface.
func (e IncompatibleCurrenciesError) Error() string {
	return fmt.Sprintf("the money instances have incompatible currencies (%s, %s)", e.LeftCode, e.RightCode)
}

// Package numio implements component D: parsing character data into
// values.Number and printing a Number back to text, including the
// Burger-Dybvig shortest-round-tripping flonum printer and Clinger's
// Algorithm R for correctly-rounding decimal-to-flonum parsing.
//
// Grounded on original_source/src/number.c's Scm_StringToNumber and
// Scm_NumberToString (the grammar, the prefix handling, and the Burger-
// Dybvig/Algorithm R algorithms themselves), rendered in the style of
// pgavlin-loom's lex.go num() function (a hand-rolled numeric-literal
// scanner) generalised to the full tower rather than loom's
// big.Float/big.Rat-only parsing.
package numio

import "errors"

// ErrParse is returned by Parse in strict mode for a malformed literal.
var ErrParse = errors.New("number/parse")

// ErrImplLimit is returned when an exact literal's exponent exceeds what
// this implementation's flonum collapse rules would otherwise silently
// approximate (|e| >= 324 under an explicit #e prefix).
var ErrImplLimit = errors.New("number/impl-limit")

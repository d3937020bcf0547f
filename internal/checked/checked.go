// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package checked provides integer arithmetic which reports overflow
// instead of silently wrapping.
package checked

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is matched by every OverflowError via errors.Is.
var ErrOverflow = errors.New("integer overflow")

// OverflowError is returned when the exact result of an operation
// does not fit in the operand type.
type OverflowError struct {
	Op   string
	X, Y int64
}

// Error implements the error interface.
func (e OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %d %s %d", e.X, e.Op, e.Y)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e OverflowError) Unwrap() error {
	return ErrOverflow
}

// Add returns x + y or an OverflowError if the sum is not representable by T.
func Add[T constraints.Signed](x, y T) (T, error) {
	sum := x + y
	if (y > 0 && sum < x) || (y < 0 && sum > x) {
		return 0, OverflowError{Op: "+", X: int64(x), Y: int64(y)}
	}
	return sum, nil
}

// Mul returns x * y or an OverflowError if the product is not representable by T.
func Mul[T constraints.Signed](x, y T) (T, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}

	// the minimum value of T is the only non-zero value equal to its own negation
	if (x == -1 && y == -y) || (y == -1 && x == -x) {
		return 0, OverflowError{Op: "*", X: int64(x), Y: int64(y)}
	}

	product := x * y
	if product/y != x {
		return 0, OverflowError{Op: "*", X: int64(x), Y: int64(y)}
	}
	return product, nil
}

// Neg returns -x or an OverflowError if x is the minimum value of T.
func Neg[T constraints.Signed](x T) (T, error) {
	return Mul(x, -1)
}

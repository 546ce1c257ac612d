// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense, kernels and the codec.
// This file intentionally contains ONLY type declarations. Errors live in
// errors.go, validators in validators.go.
package matrix

// Number is the element constraint of Dense. Every type in the set supports
// +, -, * and has a zero value that acts as the additive identity.
// Named types (e.g. `type Celsius float64`) are accepted via ~.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Shaped is anything that reports a (rows, cols) shape.
// Validators take Shaped so they stay independent of the element type.
//
// Complexity notes: both methods are expected O(1).
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}

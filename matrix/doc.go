// Package matrix offers a generic dense matrix with safe accessors,
// arithmetic kernels and a plain text exchange format.
//
// The matrix package provides:
//
//   - Dense[T]: a fixed-shape, row-major container over any Number type
//     (signed/unsigned integers, float32, float64 and named variants).
//   - Kernels Add, Sub, Hadamard, Mul, Transpose and Scale. Each returns a
//     freshly allocated result; operands are never mutated.
//   - Encode/Decode and ExportFile/ImportFile for the "MatrixDense" text format.
//   - String/Fprint for a right-aligned debug grid.
//   - ToGonum/FromGonum to hand float64 matrices to gonum.
//
// Errors are package sentinels (ErrIndexOutOfBounds, ErrDimensionMismatch,
// ErrInvalidDimensions, ErrIO, ErrFormat, ErrNilMatrix) wrapped with call-site
// context; match them with errors.Is.
//
// Dense has value semantics: every instance owns its buffer. Distinct
// instances may be used from different goroutines; concurrent mutation of
// the same instance is not supported.
package matrix

// Package densemat is a small, typed dense-matrix toolkit with a plain-text
// file format, plus flat hardware records for compute-cluster nodes.
//
// What is inside?
//
//	• matrix/  : Dense[T] over any integer or float type: At/Set with bounds
//	             checks, Add, Sub, Hadamard, Mul, Transpose, Scale, a grid
//	             printer, the "MatrixDense" text codec and a gonum bridge
//	• cluster/ : GPUSpec, CPUSpec, RAMSpec, LANSpec records, Node and
//	             Cluster, with line-oriented print/export/import
//	• cmd/densemat : CLI running the demonstration and file operations
//
// Guarantees:
//
//   - No panics on user input: shape and index problems are sentinel errors
//     matched with errors.Is.
//   - Kernels never mutate operands and always return fresh matrices.
//   - Export is deterministic; import of an exported file is exact.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	g, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	h, _ := matrix.Mul(a, g)
//	fmt.Print(h)
//	//    22    28
//	//    49    64
//
// Everything is single-threaded and synchronous; a Dense is not safe for
// concurrent mutation.
package densemat

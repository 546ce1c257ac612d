// SPDX-License-Identifier: MIT
// Package cluster: sentinel error set. Call sites wrap with context via %w;
// callers match with errors.Is.

package cluster

import "errors"

var (
	// ErrIO indicates an export destination or import source could not be
	// opened, read, written or closed. The OS error is joined.
	ErrIO = errors.New("cluster: i/o failure")

	// ErrFormat indicates a record line that does not match its fixed layout.
	ErrFormat = errors.New("cluster: malformed record")

	// ErrNotImplemented marks cluster-level import, for which no format exists.
	ErrNotImplemented = errors.New("cluster: operation not implemented")
)

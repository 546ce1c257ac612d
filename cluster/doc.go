// Package cluster holds plain hardware records for the nodes of a compute
// cluster: GPUSpec, CPUSpec, RAMSpec and LANSpec, the Node aggregate and a
// flat Cluster list.
//
// Records are data only. Each renders to one fixed-layout line, which Print
// writes to an io.Writer and Export appends to a file. Per-record and
// per-node import parse those lines back; cluster-level import is not
// supported (ErrNotImplemented).
package cluster

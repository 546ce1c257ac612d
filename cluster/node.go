// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"io"
	"strings"
)

// Separator is printed after every node by Cluster.Print.
const Separator = "---------------------"

// Node aggregates the hardware installed in one cluster node.
// Lines, Print and Export always emit groups in the order GPU, CPU, RAM, LAN.
type Node struct {
	GPU GPUSpec
	CPU CPUSpec
	RAM RAMSpec
	LAN LANSpec
}

// NewNode builds a Node from its four device records.
func NewNode(g GPUSpec, c CPUSpec, r RAMSpec, l LANSpec) Node {
	return Node{GPU: g, CPU: c, RAM: r, LAN: l}
}

// records lists the device records in output order.
func (n Node) records() []Record {
	return []Record{n.GPU, n.CPU, n.RAM, n.LAN}
}

// Lines renders the four record lines.
func (n Node) Lines() []string {
	recs := n.records()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Line()
	}

	return out
}

// Print writes the four record lines to w.
func (n Node) Print(w io.Writer) error {
	for _, r := range n.records() {
		if err := printLine(w, r); err != nil {
			return err
		}
	}

	return nil
}

// Export appends the four record lines to path.
func (n Node) Export(path string) error {
	return appendRecords(path, n.records()...)
}

// ReadNode parses four consecutive record lines (GPU, CPU, RAM, LAN) from r.
func ReadNode(r io.Reader) (Node, error) {
	lines, err := scanLines(r, 4)
	if err != nil {
		return Node{}, fmt.Errorf("node: %w", err)
	}

	return parseNode(lines)
}

// ImportNode reads the first four lines of path as a Node.
func ImportNode(path string) (Node, error) {
	lines, err := readLines(path, 4)
	if err != nil {
		return Node{}, err
	}

	return parseNode(lines)
}

func parseNode(lines []string) (Node, error) {
	var (
		n   Node
		err error
	)
	if n.GPU, err = ParseGPULine(lines[0]); err != nil {
		return Node{}, fmt.Errorf("node: %w", err)
	}
	if n.CPU, err = ParseCPULine(lines[1]); err != nil {
		return Node{}, fmt.Errorf("node: %w", err)
	}
	if n.RAM, err = ParseRAMLine(lines[2]); err != nil {
		return Node{}, fmt.Errorf("node: %w", err)
	}
	if n.LAN, err = ParseLANLine(lines[3]); err != nil {
		return Node{}, fmt.Errorf("node: %w", err)
	}

	return n, nil
}

// Cluster is a flat, ordered list of nodes. No topology is modelled.
// The zero value is an empty cluster ready to use.
type Cluster struct {
	nodes []Node
}

// AddNode appends n.
func (c *Cluster) AddNode(n Node) { c.nodes = append(c.nodes, n) }

// Len returns the number of nodes.
func (c *Cluster) Len() int { return len(c.nodes) }

// Nodes returns a copy of the node list.
func (c *Cluster) Nodes() []Node {
	out := make([]Node, len(c.nodes))
	copy(out, c.nodes)

	return out
}

// Print writes every node followed by Separator.
func (c *Cluster) Print(w io.Writer) error {
	var b strings.Builder
	for _, n := range c.nodes {
		_ = n.Print(&b) // strings.Builder never fails
		b.WriteString(Separator)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("print: %w: %w", ErrIO, err)
	}

	return nil
}

// Export appends every node's lines to path in one open/close, without separators.
func (c *Cluster) Export(path string) error {
	recs := make([]Record, 0, 4*len(c.nodes))
	for _, n := range c.nodes {
		recs = append(recs, n.records()...)
	}

	return appendRecords(path, recs...)
}

// ImportCluster always returns ErrNotImplemented. The cluster export layout
// has no defined inverse; use ImportNode for single-node files.
func ImportCluster(path string) (*Cluster, error) {
	return nil, fmt.Errorf("import %q: %w", path, ErrNotImplemented)
}

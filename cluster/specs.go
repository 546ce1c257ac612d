// SPDX-License-Identifier: MIT

// Package cluster - per-device hardware records.
//
// Each record renders to exactly one line with a fixed layout:
//
//	GPU Model: <model>, Memory: <mb> MB
//	CPU Model: <model>, Cores: <n>
//	RAM Size: <mb> MB
//	LAN Type: <type>, Speed: <mbps> Mbps
//
// Print writes that line to a writer, Export appends it to a file and the
// Parse*/Import* functions are the per-record inverse.
package cluster

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one printable/exportable hardware line.
type Record interface {
	// Line renders the record without a trailing newline.
	Line() string
}

// layout describes "<prefix><text><sep><int><suffix>". An empty sep means
// the record has no text field and the integer follows the prefix directly.
type layout struct {
	name   string
	prefix string
	sep    string
	suffix string
}

var (
	gpuLayout = layout{name: "GPU", prefix: "GPU Model: ", sep: ", Memory: ", suffix: " MB"}
	cpuLayout = layout{name: "CPU", prefix: "CPU Model: ", sep: ", Cores: "}
	ramLayout = layout{name: "RAM", prefix: "RAM Size: ", suffix: " MB"}
	lanLayout = layout{name: "LAN", prefix: "LAN Type: ", sep: ", Speed: ", suffix: " Mbps"}
)

// format renders text and n into the layout.
func (l layout) format(text string, n int) string {
	return l.prefix + text + l.sep + strconv.Itoa(n) + l.suffix
}

// parse is the inverse of format. The text field is split at the LAST
// separator, so models containing ", Memory: " etc. still round-trip.
func (l layout) parse(line string) (string, int, error) {
	line = strings.TrimRight(line, "\r\n")
	rest, ok := strings.CutPrefix(line, l.prefix)
	if !ok {
		return "", 0, fmt.Errorf("%s: %q: missing %q: %w", l.name, line, l.prefix, ErrFormat)
	}
	rest, ok = strings.CutSuffix(rest, l.suffix)
	if !ok {
		return "", 0, fmt.Errorf("%s: %q: missing %q: %w", l.name, line, l.suffix, ErrFormat)
	}

	var text, num string
	if l.sep == "" {
		num = rest
	} else {
		idx := strings.LastIndex(rest, l.sep)
		if idx < 0 {
			return "", 0, fmt.Errorf("%s: %q: missing %q: %w", l.name, line, l.sep, ErrFormat)
		}
		text, num = rest[:idx], rest[idx+len(l.sep):]
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %q: bad number %q: %w", l.name, line, num, ErrFormat)
	}

	return text, n, nil
}

// printLine writes r's line plus a newline to w.
func printLine(w io.Writer, r Record) error {
	if _, err := io.WriteString(w, r.Line()+"\n"); err != nil {
		return fmt.Errorf("print: %w: %w", ErrIO, err)
	}

	return nil
}

// ---------- GPU ----------

// GPUSpec describes a graphics accelerator.
type GPUSpec struct {
	Model    string
	MemoryMB int // on-board memory, megabytes
}

// Line implements Record.
func (g GPUSpec) Line() string { return gpuLayout.format(g.Model, g.MemoryMB) }

// Print writes the record line to w.
func (g GPUSpec) Print(w io.Writer) error { return printLine(w, g) }

// Export appends the record line to path, creating the file if needed.
func (g GPUSpec) Export(path string) error { return appendRecords(path, g) }

// ParseGPULine parses "GPU Model: <model>, Memory: <mb> MB".
func ParseGPULine(line string) (GPUSpec, error) {
	model, mem, err := gpuLayout.parse(line)
	if err != nil {
		return GPUSpec{}, err
	}

	return GPUSpec{Model: model, MemoryMB: mem}, nil
}

// ImportGPU reads the first line of path as a GPU record.
func ImportGPU(path string) (GPUSpec, error) {
	lines, err := readLines(path, 1)
	if err != nil {
		return GPUSpec{}, err
	}

	return ParseGPULine(lines[0])
}

// ---------- CPU ----------

// CPUSpec describes a processor.
type CPUSpec struct {
	Model string
	Cores int
}

// Line implements Record.
func (c CPUSpec) Line() string { return cpuLayout.format(c.Model, c.Cores) }

// Print writes the record line to w.
func (c CPUSpec) Print(w io.Writer) error { return printLine(w, c) }

// Export appends the record line to path, creating the file if needed.
func (c CPUSpec) Export(path string) error { return appendRecords(path, c) }

// ParseCPULine parses "CPU Model: <model>, Cores: <n>".
func ParseCPULine(line string) (CPUSpec, error) {
	model, cores, err := cpuLayout.parse(line)
	if err != nil {
		return CPUSpec{}, err
	}

	return CPUSpec{Model: model, Cores: cores}, nil
}

// ImportCPU reads the first line of path as a CPU record.
func ImportCPU(path string) (CPUSpec, error) {
	lines, err := readLines(path, 1)
	if err != nil {
		return CPUSpec{}, err
	}

	return ParseCPULine(lines[0])
}

// ---------- RAM ----------

// RAMSpec describes installed memory.
type RAMSpec struct {
	SizeMB int
}

// Line implements Record.
func (r RAMSpec) Line() string { return ramLayout.format("", r.SizeMB) }

// Print writes the record line to w.
func (r RAMSpec) Print(w io.Writer) error { return printLine(w, r) }

// Export appends the record line to path, creating the file if needed.
func (r RAMSpec) Export(path string) error { return appendRecords(path, r) }

// ParseRAMLine parses "RAM Size: <mb> MB".
func ParseRAMLine(line string) (RAMSpec, error) {
	_, size, err := ramLayout.parse(line)
	if err != nil {
		return RAMSpec{}, err
	}

	return RAMSpec{SizeMB: size}, nil
}

// ImportRAM reads the first line of path as a RAM record.
func ImportRAM(path string) (RAMSpec, error) {
	lines, err := readLines(path, 1)
	if err != nil {
		return RAMSpec{}, err
	}

	return ParseRAMLine(lines[0])
}

// ---------- LAN ----------

// LANSpec describes a network interface.
type LANSpec struct {
	Type      string // e.g. Ethernet, InfiniBand
	SpeedMbps int
}

// Line implements Record.
func (l LANSpec) Line() string { return lanLayout.format(l.Type, l.SpeedMbps) }

// Print writes the record line to w.
func (l LANSpec) Print(w io.Writer) error { return printLine(w, l) }

// Export appends the record line to path, creating the file if needed.
func (l LANSpec) Export(path string) error { return appendRecords(path, l) }

// ParseLANLine parses "LAN Type: <type>, Speed: <mbps> Mbps".
func ParseLANLine(line string) (LANSpec, error) {
	typ, speed, err := lanLayout.parse(line)
	if err != nil {
		return LANSpec{}, err
	}

	return LANSpec{Type: typ, SpeedMbps: speed}, nil
}

// ImportLAN reads the first line of path as a LAN record.
func ImportLAN(path string) (LANSpec, error) {
	lines, err := readLines(path, 1)
	if err != nil {
		return LANSpec{}, err
	}

	return ParseLANLine(lines[0])
}

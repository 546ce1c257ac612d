// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/densemat/cluster"
	"github.com/katalvlaran/densemat/matrix"
)

// binaryOp names a two-operand matrix kernel.
type binaryOp struct {
	name string
	help string
	fn   func(a, b *matrix.Dense[float64]) (*matrix.Dense[float64], error)
}

var binaryOps = []binaryOp{
	{"add", "Print or export A + B.", matrix.Add[float64]},
	{"sub", "Print or export A - B.", matrix.Sub[float64]},
	{"hadamard", "Print or export the element-wise product A .* B.", matrix.Hadamard[float64]},
	{"mul", "Print or export the matrix product A * B.", matrix.Mul[float64]},
}

// nodeFlags collects the node export record fields.
type nodeFlags struct {
	gpuModel  string
	gpuMemory int
	cpuModel  string
	cpuCores  int
	ramSize   int
	lanType   string
	lanSpeed  int
}

func (f nodeFlags) node() cluster.Node {
	return cluster.NewNode(
		cluster.GPUSpec{Model: f.gpuModel, MemoryMB: f.gpuMemory},
		cluster.CPUSpec{Model: f.cpuModel, Cores: f.cpuCores},
		cluster.RAMSpec{SizeMB: f.ramSize},
		cluster.LANSpec{Type: f.lanType, SpeedMbps: f.lanSpeed},
	)
}

// section prints a heading line followed by m's grid.
func section(w io.Writer, title string, m *matrix.Dense[float64]) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	return m.Fprint(w)
}

// runDemo reproduces the reference run: arithmetic on A and B, an export and
// re-import of A through out, and the product A * G.
func runDemo(w io.Writer, logger *slog.Logger, out string) error {
	a, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		return err
	}
	b, err := matrix.FromRows([][]float64{{6, 5, 4}, {3, 2, 1}})
	if err != nil {
		return err
	}

	if err = section(w, "Matrix A:", a); err != nil {
		return err
	}
	if err = section(w, "\nMatrix B:", b); err != nil {
		return err
	}

	steps := []struct {
		title string
		fn    func(a, b *matrix.Dense[float64]) (*matrix.Dense[float64], error)
	}{
		{"\nA + B:", matrix.Add[float64]},
		{"\nA - B:", matrix.Sub[float64]},
		{"\nA .* B (elementwise multiplication):", matrix.Hadamard[float64]},
	}
	for _, s := range steps {
		res, err := s.fn(a, b)
		if err != nil {
			return err
		}
		if err = section(w, s.title, res); err != nil {
			return err
		}
	}

	at, err := matrix.Transpose(a)
	if err != nil {
		return err
	}
	if err = section(w, "\nTranspose of A:", at); err != nil {
		return err
	}

	if err = matrix.ExportFile(out, a); err != nil {
		return err
	}
	logger.Info("matrix exported", slog.String("path", out), slog.Int("rows", a.Rows()), slog.Int("cols", a.Cols()))
	if _, err = fmt.Fprintf(w, "\nMatrix A saved to %s\n", out); err != nil {
		return err
	}

	f, err := matrix.ImportFile[float64](out)
	if err != nil {
		return err
	}
	if err = section(w, "\nMatrix loaded from file:", f); err != nil {
		return err
	}

	g, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		return err
	}
	if err = section(w, "\nMatrix G:", g); err != nil {
		return err
	}
	h, err := matrix.Mul(a, g)
	if err != nil {
		return err
	}

	return section(w, "\nA * G (matrix multiplication):", h)
}

// runShow imports path and prints it.
func runShow(w io.Writer, logger *slog.Logger, path string) error {
	m, err := matrix.ImportFile[float64](path)
	if err != nil {
		return err
	}
	logger.Debug("matrix imported", slog.String("path", path), slog.Int("rows", m.Rows()), slog.Int("cols", m.Cols()))

	return m.Fprint(w)
}

// emit prints res, or exports it when out is set.
func emit(w io.Writer, logger *slog.Logger, res *matrix.Dense[float64], out string) error {
	if out == "" {
		return res.Fprint(w)
	}
	if err := matrix.ExportFile(out, res); err != nil {
		return err
	}
	logger.Info("matrix exported", slog.String("path", out), slog.Int("rows", res.Rows()), slog.Int("cols", res.Cols()))

	return nil
}

func runBinary(w io.Writer, logger *slog.Logger, op binaryOp, pathA, pathB, out string) error {
	a, err := matrix.ImportFile[float64](pathA)
	if err != nil {
		return err
	}
	b, err := matrix.ImportFile[float64](pathB)
	if err != nil {
		return err
	}
	res, err := op.fn(a, b)
	if err != nil {
		return err
	}

	return emit(w, logger, res, out)
}

func runTranspose(w io.Writer, logger *slog.Logger, path, out string) error {
	m, err := matrix.ImportFile[float64](path)
	if err != nil {
		return err
	}
	res, err := matrix.Transpose(m)
	if err != nil {
		return err
	}

	return emit(w, logger, res, out)
}

func runNodeExport(logger *slog.Logger, path string, f nodeFlags) error {
	if err := f.node().Export(path); err != nil {
		return err
	}
	logger.Info("node exported", slog.String("path", path))

	return nil
}

func runNodeShow(w io.Writer, logger *slog.Logger, path string) error {
	n, err := cluster.ImportNode(path)
	if err != nil {
		return err
	}
	logger.Debug("node imported", slog.String("path", path))

	return n.Print(w)
}

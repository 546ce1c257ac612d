// SPDX-License-Identifier: MIT

// Command densemat runs the dense-matrix demonstration and exposes the matrix
// and node-record file operations as subcommands.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/common/version"

	"github.com/katalvlaran/densemat/internal/log"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// binaryCmd is one of add/sub/hadamard/mul: two operand files and an optional output.
type binaryCmd struct {
	a, b *string
	out  *string
	op   binaryOp
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		logOutput string
		logFormat string
		logFile   string
		logLevel  string
	)
	app := kingpin.New("densemat", "Dense matrix arithmetic and hardware record files.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)

	terminated := -1
	app.Terminate(func(code int) {
		if terminated < 0 {
			terminated = code
		}
	})

	app.Flag("log.level", "Log level, one of [debug, info, warn, error].").Default("info").EnumVar(&logLevel, "debug", "info", "warn", "error")
	app.Flag("log.output", "Log output, one of [stdout, stderr, file].").Default("stderr").EnumVar(&logOutput, "stdout", "stderr", "file")
	app.Flag("log.format", "Log format, one of [json, text].").Default("text").EnumVar(&logFormat, "json", "text")
	app.Flag("log.file", "Log file path when --log.output=file.").PlaceHolder("PATH").StringVar(&logFile)
	app.PreAction(func(*kingpin.ParseContext) error {
		if strings.EqualFold(logOutput, "file") && !isValidFilePath(logFile) {
			return fmt.Errorf("invalid --log.file path: %q", logFile)
		}
		return nil
	})
	app.Version(version.Print("densemat"))

	demo := app.Command("demo", "Run the reference demonstration and save matrix A.").Default()
	demoOut := demo.Flag("out", "File matrix A is exported to.").Default("matrix_output.txt").String()

	show := app.Command("show", "Import a matrix file and print it.")
	showFile := show.Arg("file", "Matrix file.").Required().String()

	binaries := make(map[string]binaryCmd, len(binaryOps))
	for _, op := range binaryOps {
		clause := app.Command(op.name, op.help)
		binaries[op.name] = binaryCmd{
			a:   clause.Arg("a", "Left operand file.").Required().String(),
			b:   clause.Arg("b", "Right operand file.").Required().String(),
			out: clause.Flag("out", "Export the result here instead of printing it.").PlaceHolder("FILE").String(),
			op:  op,
		}
	}

	transpose := app.Command("transpose", "Transpose a matrix file.")
	transposeFile := transpose.Arg("a", "Matrix file.").Required().String()
	transposeOut := transpose.Flag("out", "Export the result here instead of printing it.").PlaceHolder("FILE").String()

	node := app.Command("node", "Node hardware record files.")
	nodeExport := node.Command("export", "Append one node's four record lines to a file.")
	nodeExportFile := nodeExport.Arg("file", "Record file.").Required().String()
	var hw nodeFlags
	nodeExport.Flag("gpu.model", "GPU model name.").Required().StringVar(&hw.gpuModel)
	nodeExport.Flag("gpu.memory", "GPU memory in MB.").Required().IntVar(&hw.gpuMemory)
	nodeExport.Flag("cpu.model", "CPU model name.").Required().StringVar(&hw.cpuModel)
	nodeExport.Flag("cpu.cores", "CPU core count.").Required().IntVar(&hw.cpuCores)
	nodeExport.Flag("ram.size", "RAM size in MB.").Required().IntVar(&hw.ramSize)
	nodeExport.Flag("lan.type", "LAN adapter type.").Required().StringVar(&hw.lanType)
	nodeExport.Flag("lan.speed", "LAN speed in Mbps.").Required().IntVar(&hw.lanSpeed)
	nodeShow := node.Command("show", "Import a node record file and print it.")
	nodeShowFile := nodeShow.Arg("file", "Record file.").Required().String()

	selected, err := app.Parse(args)
	if terminated >= 0 {
		return terminated
	}
	if err != nil {
		fmt.Fprintln(stderr, fmt.Errorf("failed to parse commandline arguments: %w", err))
		app.Usage(args)
		return exitUsage
	}

	logger, logClose, err := log.NewLogger(log.Config{
		Output: logOutput,
		Format: logFormat,
		File:   logFile,
		Level:  logLevel,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "unable to create logger: %v\n", err)
		return exitFail
	}
	defer logClose()

	logger = logger.With(slog.String("command", selected))
	logger.Debug("command selected")

	switch selected {
	case demo.FullCommand():
		err = runDemo(stdout, logger, *demoOut)
	case show.FullCommand():
		err = runShow(stdout, logger, *showFile)
	case transpose.FullCommand():
		err = runTranspose(stdout, logger, *transposeFile, *transposeOut)
	case nodeExport.FullCommand():
		err = runNodeExport(logger, *nodeExportFile, hw)
	case nodeShow.FullCommand():
		err = runNodeShow(stdout, logger, *nodeShowFile)
	default:
		bc, ok := binaries[selected]
		if !ok {
			err = fmt.Errorf("unknown command %q", selected)
			break
		}
		err = runBinary(stdout, logger, bc.op, *bc.a, *bc.b, *bc.out)
	}
	if err != nil {
		logger.Error("command failed", slog.Any("err", err))
		return exitFail
	}

	return exitOK
}

// isValidFilePath accepts absolute and relative paths and rejects empty
// paths or paths that name a directory by a trailing separator.
func isValidFilePath(p string) bool {
	if strings.TrimSpace(p) == "" {
		return false
	}
	if strings.HasSuffix(p, string(os.PathSeparator)) {
		return false
	}
	base := filepath.Base(p)

	return base != "." && base != string(os.PathSeparator)
}

// Command bridgegen writes the C source of the JNI bridge for one netlib
// package to stdout.
//
//	bridgegen blas > blas_jni.c
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/jnibridge/bridge"
	"github.com/wippyai/jnibridge/cjni"
	"github.com/wippyai/jnibridge/tables"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		usage(stderr)
		return 1
	}
	lib, ok := tables.Lookup(args[0])
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown package %q\n", args[0])
		usage(stderr)
		return 1
	}

	log := newLogger(stderr, os.Getenv("BRIDGEGEN_DEBUG") == "1")
	defer func() { _ = log.Sync() }()
	bridge.SetLogger(log)

	unit, err := bridge.BuildLibrary(lib)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Debug("library built",
		zap.String("package", lib.Package),
		zap.String("class", unit.Class),
		zap.Int("routines", len(unit.Programs)))

	if err := cjni.Render(stdout, unit); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: bridgegen <%s>\n", strings.Join(tables.Names(), "|"))
}

func newLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

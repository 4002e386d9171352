// Command bridgeview browses the routine table of a netlib package and
// shows the bridge generated for each routine. When stdout is not a
// terminal it prints the routine signatures instead.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wippyai/jnibridge/bridge"
	d "github.com/wippyai/jnibridge/descriptor"
	"github.com/wippyai/jnibridge/tables"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: bridgeview <%s>\n", strings.Join(tables.Names(), "|"))
		os.Exit(1)
	}
	lib, ok := tables.Lookup(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown package %q\n", os.Args[1])
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		list(os.Stdout, lib)
		return
	}

	unit, err := bridge.BuildLibrary(lib)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(newModel(lib, unit), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// list writes one signature per routine.
func list(w io.Writer, lib d.Library) {
	for _, r := range lib.Routines {
		line := signature(r)
		if r.Stub {
			line += " (stub)"
		}
		fmt.Fprintln(w, line)
	}
}

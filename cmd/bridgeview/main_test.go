package main

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/bridge"
	d "github.com/wippyai/jnibridge/descriptor"
)

var testLib = d.Library{
	Package:    "blas",
	DefaultLib: "libblas.so.3",
	Routines: []d.Routine{
		d.BoundR(abi.Double, "dasum", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx")),
		d.Bound("daxpy", d.Int("n"), d.Double("alpha"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("y", d.InOut), d.Int("incy")),
		d.Bound("dlartg", d.Double("f"), d.DoubleW("cs"), d.StringW("equed")),
		d.Stub("dgees", d.String("jobvs"), d.Object("select"), d.BooleanArray("bwork")),
	},
}

func TestSignature(t *testing.T) {
	tests := []struct {
		routine d.Routine
		want    string
	}{
		{testLib.Routines[0], "dasum(n int, x double[] in, incx int) double"},
		{testLib.Routines[2], "dlartg(f double, cs doubleW, equed StringW)"},
		{testLib.Routines[3], "dgees(jobvs String, select Object, bwork boolean[] in)"},
	}
	for _, tt := range tests {
		if got := signature(tt.routine); got != tt.want {
			t.Errorf("signature() = %q, want %q", got, tt.want)
		}
	}
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	list(&buf, testLib)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(testLib.Routines) {
		t.Fatalf("got %d lines, want %d", len(lines), len(testLib.Routines))
	}
	if !strings.HasSuffix(lines[3], " (stub)") {
		t.Errorf("stub not marked: %q", lines[3])
	}
}

func newTestModel(t *testing.T) *model {
	t.Helper()
	unit, err := bridge.BuildLibrary(testLib)
	if err != nil {
		t.Fatalf("BuildLibrary failed: %v", err)
	}
	return newModel(testLib, unit)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Navigate(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("down"))
	m.Update(key("down"))
	if r, _ := m.current(); r.Name != "dlartg" {
		t.Fatalf("selected %q, want dlartg", r.Name)
	}
	m.Update(key("up"))
	m.Update(key("up"))
	m.Update(key("up"))
	if r, _ := m.current(); r.Name != "dasum" {
		t.Fatalf("selected %q, want dasum", r.Name)
	}

	m.Update(key("enter"))
	if m.state != stateSource {
		t.Fatal("enter did not open the source view")
	}
	if !strings.Contains(m.View(), "dasum(n int") {
		t.Error("source view missing signature")
	}
	m.Update(key("esc"))
	if m.state != stateBrowse {
		t.Error("esc did not return to browsing")
	}
}

func TestModel_Filter(t *testing.T) {
	m := newTestModel(t)

	for _, r := range "dl" {
		m.Update(key(string(r)))
	}
	if len(m.visible) != 1 {
		t.Fatalf("visible = %d, want 1", len(m.visible))
	}
	if r, _ := m.current(); r.Name != "dlartg" {
		t.Errorf("selected %q, want dlartg", r.Name)
	}

	m.Update(key("x"))
	if len(m.visible) != 0 {
		t.Errorf("visible = %d, want 0", len(m.visible))
	}
	if _, ok := m.current(); ok {
		t.Error("current() with no matches")
	}
	m.Update(key("enter"))
	if m.state != stateBrowse {
		t.Error("enter with no matches left browse state")
	}
	if !strings.Contains(m.View(), "no matching routines") {
		t.Error("empty filter result not shown")
	}
}

func TestModel_Render(t *testing.T) {
	m := newTestModel(t)

	out := m.render(testLib.Routines[3])
	if !strings.Contains(out, "Java_dev_ludovic_netlib_blas_JNIBLAS_has_1dgees") {
		t.Errorf("stub render missing probe:\n%s", out)
	}
	out = m.render(testLib.Routines[1])
	if !strings.Contains(out, "daxpy_(") {
		t.Errorf("render missing native call:\n%s", out)
	}
}

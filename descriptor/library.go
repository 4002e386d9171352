package descriptor

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wippyai/jnibridge/errors"
)

const classPrefix = "dev/ludovic/netlib/"

// Library is a named routine table bound to one shared object.
type Library struct {
	Package    string
	DefaultLib string
	Routines   []Routine
}

var upper = cases.Upper(language.Und)

// ClassName returns the simple name of the managed class, e.g. JNIBLAS.
func (l Library) ClassName() string {
	return "JNI" + upper.String(l.Package)
}

// Class returns the internal name of the managed class.
func (l Library) Class() string {
	return classPrefix + l.Package + "/" + l.ClassName()
}

// Header returns the javah header the generated source includes.
func (l Library) Header() string {
	return "dev_ludovic_netlib_" + l.Package + "_" + l.ClassName() + ".h"
}

// LibPathKey is the property naming an absolute library path.
func (l Library) LibPathKey() string {
	return "dev.ludovic.netlib." + l.Package + ".nativeLibPath"
}

// LibNameKey is the property naming a library resolved by the loader.
func (l Library) LibNameKey() string {
	return "dev.ludovic.netlib." + l.Package + ".nativeLib"
}

// Routine returns the routine with the given name.
func (l Library) Routine(name string) (Routine, bool) {
	for _, r := range l.Routines {
		if r.Name == name {
			return r, true
		}
	}
	return Routine{}, false
}

// Validate checks the library identity and every routine.
func (l Library) Validate() error {
	if !isIdent(l.Package) {
		return errors.InvalidDescriptor("", "", fmt.Sprintf("invalid package %q", l.Package))
	}
	if l.DefaultLib == "" {
		return errors.InvalidDescriptor("", "", "missing default library for "+l.Package)
	}
	seen := make(map[string]struct{}, len(l.Routines))
	for _, r := range l.Routines {
		if _, dup := seen[r.Name]; dup {
			return errors.InvalidDescriptor(r.Name, "", "duplicate routine")
		}
		seen[r.Name] = struct{}{}
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

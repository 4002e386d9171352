// Package tables holds the routine tables of the netlib libraries the
// bridge generator knows about.
package tables

import (
	"sort"

	d "github.com/wippyai/jnibridge/descriptor"
)

var libraries = map[string]func() d.Library{
	"blas":   BLAS,
	"lapack": LAPACK,
	"arpack": ARPACK,
}

// Lookup returns the library table for a package name.
func Lookup(name string) (d.Library, bool) {
	fn, ok := libraries[name]
	if !ok {
		return d.Library{}, false
	}
	return fn(), true
}

// Names returns the known package names in sorted order.
func Names() []string {
	out := make([]string, 0, len(libraries))
	for name := range libraries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

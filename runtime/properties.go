package runtime

import (
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Properties resolves configuration keys such as
// dev.ludovic.netlib.blas.nativeLibPath.
type Properties interface {
	Property(key string) (string, bool)
}

// MapProperties is a fixed set of properties.
type MapProperties map[string]string

func (m MapProperties) Property(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvProperties reads properties from environment variables. A key maps to
// its upper-snake form: dev.ludovic.netlib.blas.nativeLib becomes
// DEV_LUDOVIC_NETLIB_BLAS_NATIVELIB.
type EnvProperties struct {
	// Lookup defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
}

var upper = cases.Upper(language.Und)

// EnvName returns the environment variable consulted for key.
func EnvName(key string) string {
	return upper.String(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

func (e EnvProperties) Property(key string) (string, bool) {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(EnvName(key))
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Chain consults each source in turn and returns the first hit.
type Chain []Properties

func (c Chain) Property(key string) (string, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if v, ok := p.Property(key); ok {
			return v, true
		}
	}
	return "", false
}

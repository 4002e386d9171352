package ir

// WrapperField is a cached field identifier of a wrapper box class.
type WrapperField struct {
	Wrapper   string // short class name, e.g. intW
	Class     string // org/netlib/util/intW
	Field     string
	Signature string
}

// Var returns the C variable holding the field identifier.
func (w WrapperField) Var() string {
	return w.Wrapper + "_" + w.Field + "_fieldID"
}

// WrapperFields is the fixed set of wrapper box fields resolved at load.
var WrapperFields = []WrapperField{
	{Wrapper: "booleanW", Class: "org/netlib/util/booleanW", Field: "val", Signature: "Z"},
	{Wrapper: "intW", Class: "org/netlib/util/intW", Field: "val", Signature: "I"},
	{Wrapper: "floatW", Class: "org/netlib/util/floatW", Field: "val", Signature: "F"},
	{Wrapper: "doubleW", Class: "org/netlib/util/doubleW", Field: "val", Signature: "D"},
	{Wrapper: "StringW", Class: "org/netlib/util/StringW", Field: "val", Signature: "Ljava/lang/String;"},
}

// Unit is the lowered form of a whole library.
type Unit struct {
	Package    string
	Class      string // dev/ludovic/netlib/blas/JNIBLAS
	Header     string // dev_ludovic_netlib_blas_JNIBLAS.h
	DefaultLib string
	LibPathKey string
	LibNameKey string
	Fields     []WrapperField
	Programs   []*Program
}

// Program returns the program for a routine name.
func (u *Unit) Program(name string) (*Program, bool) {
	for _, p := range u.Programs {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Mangle returns the JNI entry point name for a method of the unit's class.
func (u *Unit) Mangle(method string) string {
	return "Java_" + mangle(u.Class) + "_" + mangle(method)
}

// mangle applies the JNI short-name escapes: '/' becomes '_' and '_' becomes "_1".
func mangle(s string) string {
	b := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '/':
			b = append(b, '_')
		case '_':
			b = append(b, '_', '1')
		case ';':
			b = append(b, '_', '2')
		case '[':
			b = append(b, '_', '3')
		default:
			b = append(b, c)
		}
	}
	return string(b)
}

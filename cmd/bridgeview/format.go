package main

import (
	"strings"

	"github.com/wippyai/jnibridge/abi"
	d "github.com/wippyai/jnibridge/descriptor"
)

// signature renders a routine as name(params) with its return type.
func signature(r d.Routine) string {
	params := make([]string, len(r.Params))
	for i, p := range r.Params {
		params[i] = p.Name() + " " + paramType(p)
	}
	s := r.Name + "(" + strings.Join(params, ", ") + ")"
	if r.Return != abi.Void {
		s += " " + r.Return.String()
	}
	return s
}

func paramType(p d.Param) string {
	switch p.Kind() {
	case d.KindScalar:
		return p.Value().String()
	case d.KindScalarWrapper:
		return p.Value().String() + "W"
	case d.KindString:
		return "String"
	case d.KindStringWrapper:
		return "StringW"
	case d.KindArray:
		return p.Value().String() + "[] " + p.Access().String()
	default:
		return "Object"
	}
}

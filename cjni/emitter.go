package cjni

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/ir"
)

var title = cases.Title(language.Und)

// Emitter renders ir units as C source against the JNI API.
type Emitter struct {
	buf    *bytes.Buffer
	indent int
	unit   *ir.Unit
}

// NewEmitter creates an emitter for a unit.
func NewEmitter(u *ir.Unit) *Emitter {
	return &Emitter{buf: &bytes.Buffer{}, unit: u}
}

// Render writes the complete C translation unit for u to w.
func Render(w io.Writer, u *ir.Unit) error {
	e := NewEmitter(u)
	e.Unit()
	_, err := w.Write(e.buf.Bytes())
	return err
}

// Bytes returns the rendered output.
func (e *Emitter) Bytes() []byte {
	return e.buf.Bytes()
}

// Unit renders the prelude, every program and the library scaffolding.
func (e *Emitter) Unit() {
	u := e.unit
	e.writef("/* Code generated by bridgegen. DO NOT EDIT. */\n\n")
	e.writef("#include <stdio.h>\n")
	e.writef("#include <stdlib.h>\n")
	e.writef("#include <string.h>\n")
	e.writef("#include <dlfcn.h>\n\n")
	e.writef("#include \"%s\"\n\n", u.Header)
	e.writef("#define UNUSED __attribute__((unused))\n\n")
	e.writef("#define TRUE 1\n")
	e.writef("#define FALSE 0\n\n")
	for _, f := range u.Fields {
		e.writef("static jfieldID %s;\n", f.Var())
	}
	e.writef("\n")

	for _, p := range u.Programs {
		e.Program(p)
	}

	e.systemProperty()
	e.loadSymbols()
	e.onLoad()
	e.onUnload()
}

// Program renders the symbol declaration, probe and call entry point of p.
func (e *Emitter) Program(p *ir.Program) {
	for _, s := range p.Body {
		switch s.Op {
		case ir.OpSymbol:
			e.symbol(p)
		case ir.OpProbe:
			e.probe(p)
			e.entry(p)
		case ir.OpCheckSymbol:
			e.checkSymbol(p, s)
		case ir.OpFlag:
			if p.Return != abi.Void {
				e.writef("%s __ret = 0;\n", p.Return.JNIType())
			}
			e.writef("jboolean __failed = FALSE;\n")
		case ir.OpDeclare:
			e.declare(p.Params[s.Param])
		case ir.OpAcquire:
			for _, a := range p.Params[s.Param].Prolog {
				e.acquire(p, a)
			}
		case ir.OpCall:
			e.call(p)
		case ir.OpLabel:
			e.indent--
			e.writef("done:\n")
			e.indent++
		case ir.OpRelease:
			e.release(p.Params[s.Param])
		case ir.OpSignal:
			e.signal(s)
		case ir.OpReturn:
			if p.Return != abi.Void {
				if p.Stub {
					e.writef("return 0;\n")
				} else {
					e.writef("return __ret;\n")
				}
			}
			e.indent--
			e.writef("}\n\n")
		}
	}
}

func (e *Emitter) symbol(p *ir.Program) {
	args := make([]string, len(p.Params))
	for i, param := range p.Params {
		args[i] = param.NativeType + param.Name
	}
	decl := fmt.Sprintf("static %s (*%s)(%s);", p.Return.NativeType(), p.Symbol, strings.Join(args, ", "))
	if p.Stub {
		decl = "// " + decl
	}
	e.writef("%s\n\n", decl)
}

func (e *Emitter) probe(p *ir.Program) {
	e.writef("jboolean %s(UNUSED JNIEnv *env, UNUSED jobject obj) {\n", e.unit.Mangle("has_"+p.Name))
	if p.Stub {
		e.writef("  return FALSE;\n")
	} else {
		e.writef("  return %s != NULL;\n", p.Symbol)
	}
	e.writef("}\n\n")
}

func (e *Emitter) entry(p *ir.Program) {
	var b strings.Builder
	for _, f := range p.Externals() {
		b.WriteString(", ")
		if p.Stub {
			b.WriteString("UNUSED ")
		}
		b.WriteString(f.JNIType())
		b.WriteByte(' ')
		b.WriteString(f.Name)
	}
	e.writef("%s %s(JNIEnv *env, UNUSED jobject obj%s) {\n", p.Return.JNIType(), e.unit.Mangle(p.Name+"K"), b.String())
	e.indent++
}

func (e *Emitter) checkSymbol(p *ir.Program, s ir.Stmt) {
	e.writef("if (!%s) {\n", p.Symbol)
	e.indent++
	e.throw(s.Signal)
	if p.Return != abi.Void {
		e.writef("return 0;\n")
	} else {
		e.writef("return;\n")
	}
	e.indent--
	e.writef("}\n")
}

func (e *Emitter) declare(param ir.Param) {
	decls := make([]string, len(param.Locals))
	for i, l := range param.Locals {
		decls[i] = local(l)
	}
	e.writef("%s\n", strings.Join(decls, " "))
}

func local(l ir.Local) string {
	var b strings.Builder
	b.WriteString(l.Type)
	if !strings.HasSuffix(l.Type, "*") {
		b.WriteByte(' ')
	}
	b.WriteString(l.Name)
	if l.Aligned {
		b.WriteString(" __attribute__((aligned(8)))")
	}
	if l.Init != "" {
		b.WriteString(" = ")
		b.WriteString(l.Init)
	}
	b.WriteByte(';')
	return b.String()
}

func (e *Emitter) call(p *ir.Program) {
	args := make([]string, 0, len(p.Params))
	for _, param := range p.Params {
		args = append(args, expr(param.Arg))
	}
	call := fmt.Sprintf("%s(%s);", p.Symbol, strings.Join(args, ", "))
	if p.Return != abi.Void {
		call = "__ret = " + call
	}
	e.writef("%s\n", call)
}

func expr(x ir.Expr) string {
	switch x.Kind {
	case ir.AddressOf:
		return "&" + x.Local
	case ir.ValueOf:
		return x.Local
	case ir.OffsetOf:
		return x.Local + " + " + x.Offset
	default:
		return "NULL"
	}
}

const fail = "{ __failed = TRUE; goto done; }"

func (e *Emitter) acquire(p *ir.Program, a ir.Action) {
	switch a.Op {
	case ir.CopyIn:
		e.writef("%s = %s;\n", a.Local, a.Param)
	case ir.GetField:
		e.writef("%s = (*env)->Get%sField(env, %s, %s_val_fieldID);\n", a.Local, title.String(a.Kind.String()), a.Param, a.Wrapper)
	case ir.GetObjectField:
		e.writef("%s = (jstring)(*env)->GetObjectField(env, %s, %s_val_fieldID);\n", a.Handle, a.Param, a.Wrapper)
	case ir.GetStringUTF:
		cast := ""
		if localType(p, a.Local) == "char *" {
			cast = "(char *)"
		}
		e.writef("if (!%s || !(%s = %s(*env)->GetStringUTFChars(env, %s, NULL))) %s\n", a.Source, a.Local, cast, a.Source, fail)
	case ir.PinArray:
		e.writef("if (!(%s = (*env)->GetPrimitiveArrayCritical(env, %s, NULL))) %s\n", a.Local, a.Param, fail)
	case ir.CopyToNative:
		e.writef("do {\n")
		e.indent++
		e.writef("int __length = (*env)->GetArrayLength(env, %s);\n", a.Param)
		e.writef("if (__length <= 0) %s\n", fail)
		e.writef("if (!(%s = malloc(sizeof(int) * __length))) %s\n", a.Local, fail)
		e.writef("for (int i = 0; i < __length; i++) { %s[i] = %s[i]; }\n", a.Local, a.Handle)
		e.indent--
		e.writef("} while (0);\n")
	}
}

func (e *Emitter) release(param ir.Param) {
	for _, a := range param.Epilog {
		switch a.Op {
		case ir.FreeNative:
			e.writef("if (%s) free(%s);\n", a.Local, a.Local)
		case ir.UnpinArray:
			mode := a.Mode.String()
			if a.AbortOnFail && a.Mode != abi.Abort {
				mode = "__failed ? JNI_ABORT : " + mode
			}
			e.writef("if (%s) (*env)->ReleasePrimitiveArrayCritical(env, %s, %s, %s);\n", a.Local, a.Param, a.Local, mode)
		case ir.ReleaseStringUTF:
			e.writef("if (%s) (*env)->ReleaseStringUTFChars(env, %s, (const char *)%s);\n", a.Local, a.Source, a.Local)
		case ir.SetField:
			val := a.Local
			if a.Kind == abi.Boolean {
				val = a.Local + " ? JNI_TRUE : JNI_FALSE"
			}
			e.writef("if (!__failed) (*env)->Set%sField(env, %s, %s_val_fieldID, %s);\n", title.String(a.Kind.String()), a.Param, a.Wrapper, val)
		case ir.SetObjectField:
			e.writef("if (!__failed && %s) (*env)->SetObjectField(env, %s, %s_val_fieldID, (*env)->NewStringUTF(env, %s));\n", a.Local, a.Param, a.Wrapper, a.Local)
		}
	}
}

func (e *Emitter) signal(s ir.Stmt) {
	if s.When == ir.IfFailed {
		e.writef("if (__failed) (*env)->ThrowNew(env, (*env)->FindClass(env, %q), %q);\n", s.Signal.Class(), s.Signal.Message())
		return
	}
	e.throw(s.Signal)
}

func (e *Emitter) throw(sig ir.Signal) {
	e.writef("(*env)->ThrowNew(env, (*env)->FindClass(env, %q), %q);\n", sig.Class(), sig.Message())
}

func localType(p *ir.Program, name string) string {
	for _, param := range p.Params {
		for _, l := range param.Locals {
			if l.Name == name {
				return l.Type
			}
		}
	}
	return ""
}

// writef writes formatted output at the current indentation.
func (e *Emitter) writef(format string, args ...any) {
	for i := 0; i < e.indent; i++ {
		e.buf.WriteString("  ")
	}
	fmt.Fprintf(e.buf, format, args...)
}

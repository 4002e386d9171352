package cjni

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wippyai/jnibridge/abi"
	"github.com/wippyai/jnibridge/bridge"
	d "github.com/wippyai/jnibridge/descriptor"
	"github.com/wippyai/jnibridge/ir"
)

func render(t *testing.T, routines ...d.Routine) string {
	t.Helper()
	u, err := bridge.BuildLibrary(d.Library{Package: "blas", DefaultLib: "libblas.so.3", Routines: routines})
	if err != nil {
		t.Fatalf("BuildLibrary failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, u); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func mustContain(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func TestRender_ValueRoutine(t *testing.T) {
	out := render(t, d.BoundR(abi.Double, "dasum", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx")))

	mustContain(t, out,
		"static double (*dasum_)(int *n, double *x, int *incx);",
		"jboolean Java_dev_ludovic_netlib_blas_JNIBLAS_has_1dasum(UNUSED JNIEnv *env, UNUSED jobject obj) {\n  return dasum_ != NULL;\n}",
		"jdouble Java_dev_ludovic_netlib_blas_JNIBLAS_dasumK(JNIEnv *env, UNUSED jobject obj, jint n, jdoubleArray x, jint offsetx, jint incx) {",
		"  if (!dasum_) {\n    (*env)->ThrowNew(env, (*env)->FindClass(env, \"java/lang/UnsupportedOperationException\"), \"symbol isn't available in native library\");\n    return 0;\n  }",
		"  jdouble __ret = 0;\n  jboolean __failed = FALSE;\n",
		"  int __nn __attribute__((aligned(8)));\n  int __nincx __attribute__((aligned(8)));\n  double *__nx = NULL;\n",
		"  if (!(__nx = (*env)->GetPrimitiveArrayCritical(env, x, NULL))) { __failed = TRUE; goto done; }",
		"  __ret = dasum_(&__nn, __nx + offsetx, &__nincx);\ndone:\n",
		"  if (__nx) (*env)->ReleasePrimitiveArrayCritical(env, x, __nx, JNI_ABORT);",
		"  if (__failed) (*env)->ThrowNew(env, (*env)->FindClass(env, \"java/lang/OutOfMemoryError\"), \"Failed to copy from heap to native memory\");\n  return __ret;\n}",
	)
}

func TestRender_VoidRoutineWithWrappers(t *testing.T) {
	out := render(t, d.Bound("dlartg",
		d.Double("f"),
		d.DoubleArray("work", d.InOut),
		d.DoubleW("cs"),
		d.BooleanW("ok"),
		d.StringW("equed")))

	mustContain(t, out,
		"void Java_dev_ludovic_netlib_blas_JNIBLAS_dlartgK(JNIEnv *env, UNUSED jobject obj, jdouble f, jdoubleArray work, jint offsetwork, jobject cs, jobject ok, jobject equed) {",
		"    return;\n  }",
		"  double __ncs = 0;",
		"  char *__nequed = NULL; jstring __jequed = NULL;",
		"  __ncs = (*env)->GetDoubleField(env, cs, doubleW_val_fieldID);",
		"  __nok = (*env)->GetBooleanField(env, ok, booleanW_val_fieldID);",
		"  __jequed = (jstring)(*env)->GetObjectField(env, equed, StringW_val_fieldID);",
		"  if (!__jequed || !(__nequed = (char *)(*env)->GetStringUTFChars(env, __jequed, NULL))) { __failed = TRUE; goto done; }",
		"  if (__nwork) (*env)->ReleasePrimitiveArrayCritical(env, work, __nwork, __failed ? JNI_ABORT : 0);",
		"  if (!__failed) (*env)->SetDoubleField(env, cs, doubleW_val_fieldID, __ncs);",
		"  if (!__failed) (*env)->SetBooleanField(env, ok, booleanW_val_fieldID, __nok ? JNI_TRUE : JNI_FALSE);",
		"  if (!__failed && __nequed) (*env)->SetObjectField(env, equed, StringW_val_fieldID, (*env)->NewStringUTF(env, __nequed));\n  if (__nequed) (*env)->ReleaseStringUTFChars(env, __jequed, (const char *)__nequed);",
	)
	if strings.Contains(out, "__ret") {
		t.Error("void routine should not declare __ret")
	}
}

func TestRender_ReleaseOrderIsReversed(t *testing.T) {
	out := render(t, d.Bound("dsyr", d.String("uplo"), d.DoubleArray("x", d.In), d.DoubleArray("a", d.InOut)))

	pinX := strings.Index(out, "GetPrimitiveArrayCritical(env, x,")
	pinA := strings.Index(out, "GetPrimitiveArrayCritical(env, a,")
	relA := strings.Index(out, "ReleasePrimitiveArrayCritical(env, a,")
	relX := strings.Index(out, "ReleasePrimitiveArrayCritical(env, x,")
	relU := strings.Index(out, "ReleaseStringUTFChars(env, uplo,")
	getU := strings.Index(out, "GetStringUTFChars(env, uplo,")

	if !(getU < pinX && pinX < pinA && pinA < relA && relA < relX && relX < relU) {
		t.Errorf("unexpected order: getU=%d pinX=%d pinA=%d relA=%d relX=%d relU=%d", getU, pinX, pinA, relA, relX, relU)
	}
}

func TestRender_BooleanArray(t *testing.T) {
	out := render(t, d.Bound("dhsein", d.BooleanArray("select"), d.Int("n")))

	mustContain(t, out,
		"  int *__nselect = NULL; jboolean *__jselect = NULL;",
		"  if (!(__jselect = (*env)->GetPrimitiveArrayCritical(env, select, NULL))) { __failed = TRUE; goto done; }",
		"    for (int i = 0; i < __length; i++) { __nselect[i] = __jselect[i]; }",
		"  if (__nselect) free(__nselect);\n  if (__jselect) (*env)->ReleasePrimitiveArrayCritical(env, select, __jselect, JNI_ABORT);",
	)
}

func TestRender_Stub(t *testing.T) {
	out := render(t, d.Stub("dgees", d.String("jobvs"), d.Object("select"), d.IntW("sdim")))

	mustContain(t, out,
		"// static void (*dgees_)(const char *jobvs, void *select, int *sdim);",
		"jboolean Java_dev_ludovic_netlib_blas_JNIBLAS_has_1dgees(UNUSED JNIEnv *env, UNUSED jobject obj) {\n  return FALSE;\n}",
		"void Java_dev_ludovic_netlib_blas_JNIBLAS_dgeesK(JNIEnv *env, UNUSED jobject obj, UNUSED jstring jobvs, UNUSED jobject select, UNUSED jobject sdim) {\n  (*env)->ThrowNew(env, (*env)->FindClass(env, \"java/lang/UnsupportedOperationException\"), \"not implemented\");\n}",
		"  // LOAD_SYMBOL(dgees_);",
	)
	if strings.Contains(out, "dgees_(") {
		t.Error("stub must not call its native symbol")
	}
}

func TestRender_Scaffolding(t *testing.T) {
	out := render(t, d.Bound("drotg", d.DoubleW("a")))

	mustContain(t, out,
		"#include \"dev_ludovic_netlib_blas_JNIBLAS.h\"",
		"static jfieldID booleanW_val_fieldID;",
		"static jfieldID StringW_val_fieldID;",
		"  name = dlsym(libhandle, #name);",
		"  LOAD_SYMBOL(drotg_);",
		"  jclass intW_class = (*env)->FindClass(env, \"org/netlib/util/intW\");",
		"  StringW_val_fieldID = (*env)->GetFieldID(env, StringW_class, \"val\", \"Ljava/lang/String;\");",
		"(*env)->NewStringUTF(env, \"dev.ludovic.netlib.blas.nativeLibPath\"), NULL, &property_nativeLibPath)",
		"(*env)->NewStringUTF(env, \"dev.ludovic.netlib.blas.nativeLib\"), (*env)->NewStringUTF(env, \"libblas.so.3\"), &property_nativeLib)",
		"    snprintf(name, sizeof(name), \"%s\", utf);",
		"  libhandle = dlopen(name, RTLD_LAZY | RTLD_GLOBAL);",
		"  return JNI_VERSION_1_6;",
		"void JNI_OnUnload(UNUSED JavaVM *vm, UNUSED void *reserved) {",
	)
}

func TestEmitter_Program(t *testing.T) {
	p, err := bridge.Build(d.Bound("noop"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	e := NewEmitter(&ir.Unit{Class: "dev/ludovic/netlib/blas/JNIBLAS"})
	e.Program(p)
	out := string(e.Bytes())

	mustContain(t, out,
		"static void (*noop_)();",
		"void Java_dev_ludovic_netlib_blas_JNIBLAS_noopK(JNIEnv *env, UNUSED jobject obj) {",
		"  noop_();\ndone:\n",
	)
}

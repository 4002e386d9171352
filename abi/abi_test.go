package abi

import (
	"math"
	"testing"
)

func TestKind_TypeNames(t *testing.T) {
	tests := []struct {
		kind      Kind
		native    string
		jni       string
		jniArray  string
		signature string
		size      int
	}{
		{Boolean, "int", "jboolean", "jbooleanArray", "Z", 4},
		{Int, "int", "jint", "jintArray", "I", 4},
		{Long, "long", "jlong", "jlongArray", "J", 8},
		{Float, "float", "jfloat", "jfloatArray", "F", 4},
		{Double, "double", "jdouble", "jdoubleArray", "D", 8},
		{Void, "void", "void", "jobject", "V", 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.NativeType(); got != tt.native {
				t.Errorf("NativeType() = %q, want %q", got, tt.native)
			}
			if got := tt.kind.JNIType(); got != tt.jni {
				t.Errorf("JNIType() = %q, want %q", got, tt.jni)
			}
			if got := tt.kind.JNIArrayType(); got != tt.jniArray {
				t.Errorf("JNIArrayType() = %q, want %q", got, tt.jniArray)
			}
			if got := tt.kind.Signature(); got != tt.signature {
				t.Errorf("Signature() = %q, want %q", got, tt.signature)
			}
			if got := tt.kind.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
		})
	}
}

func TestKind_Valid(t *testing.T) {
	if !Double.Valid() {
		t.Error("Double should be valid")
	}
	if Kind(42).Valid() {
		t.Error("Kind(42) should be invalid")
	}
	if Kind(42).String() != "kind(42)" {
		t.Errorf("String() = %q", Kind(42).String())
	}
}

func TestReleaseMode_String(t *testing.T) {
	if Commit.String() != "0" {
		t.Errorf("Commit = %q", Commit.String())
	}
	if Abort.String() != "JNI_ABORT" {
		t.Errorf("Abort = %q", Abort.String())
	}
}

func TestScalar_RoundTrip(t *testing.T) {
	if !Bool(true).Bool() || Bool(false).Bool() {
		t.Error("bool round trip failed")
	}
	if Int32(-7).Int32() != -7 {
		t.Error("int32 round trip failed")
	}
	if Int64(math.MinInt64).Int64() != math.MinInt64 {
		t.Error("int64 round trip failed")
	}
	if Float32(1.5).Float32() != 1.5 {
		t.Error("float32 round trip failed")
	}
	if Float64(math.Pi).Float64() != math.Pi {
		t.Error("float64 round trip failed")
	}
	if Zero(Double).Float64() != 0 {
		t.Error("zero double not 0")
	}
}

func TestFromGo(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		in      any
		want    any
		wantErr bool
	}{
		{"bool", Boolean, true, true, false},
		{"int from int", Int, 3, int32(3), false},
		{"int overflow", Int, math.MaxInt64, nil, true},
		{"long from int", Long, 5, int64(5), false},
		{"float from float32", Float, float32(2.5), float32(2.5), false},
		{"double from int", Double, 4, float64(4), false},
		{"double from string", Double, "x", nil, true},
		{"scalar passthrough", Int, Int32(9), int32(9), false},
		{"scalar kind mismatch", Int, Float64(1), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGo(tt.kind, tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", got.Kind, tt.kind)
			}
			if got.Interface() != tt.want {
				t.Errorf("value = %v, want %v", got.Interface(), tt.want)
			}
		})
	}
}

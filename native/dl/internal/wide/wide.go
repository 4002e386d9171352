//go:build cgo

// Package wide holds a native routine with more parameters than a direct
// foreign call carries.
package wide

/*
static int fill22(int *a0, int *a1, int *a2, int *a3, int *a4, int *a5, int *a6, int *a7, int *a8, int *a9, int *a10, int *a11, int *a12, int *a13, int *a14, int *a15, int *a16, int *a17, int *a18, int *a19, int *a20, int *a21) {
	int *a[] = {a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20, a21};
	for (int i = 0; i < 22; i++) {
		if (a[i]) {
			*a[i] = i + 1;
		}
	}
	return 22;
}

static void *fill22_addr(void) { return (void *)fill22; }
*/
import "C"

// Arity is the parameter count of the routine at Fill.
const Arity = 22

// Fill returns the address of a routine taking Arity int pointers. It
// stores i+1 through parameter i and returns Arity.
func Fill() uintptr {
	return uintptr(C.fill22_addr())
}

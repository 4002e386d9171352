package tables

import (
	"github.com/wippyai/jnibridge/abi"
	d "github.com/wippyai/jnibridge/descriptor"
)

// BLAS returns the level 1, 2 and 3 BLAS routines bound to the reference
// libblas shared object.
func BLAS() d.Library {
	return d.Library{Package: "blas", DefaultLib: "libblas.so.3", Routines: blasRoutines}
}

var blasRoutines = []d.Routine{
	d.BoundR(abi.Double, "dasum", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx")),
	d.BoundR(abi.Float, "sasum", d.Int("n"), d.FloatArray("x", d.In), d.Int("incx")),
	d.Bound("daxpy", d.Int("n"), d.Double("alpha"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("y", d.InOut), d.Int("incy")),
	d.Bound("saxpy", d.Int("n"), d.Float("alpha"), d.FloatArray("x", d.In), d.Int("incx"), d.FloatArray("y", d.InOut), d.Int("incy")),
	d.Bound("dcopy", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("y", d.InOut), d.Int("incy")),
	d.Bound("scopy", d.Int("n"), d.FloatArray("x", d.In), d.Int("incx"), d.FloatArray("y", d.InOut), d.Int("incy")),
	d.BoundR(abi.Double, "ddot", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("y", d.In), d.Int("incy")),
	d.BoundR(abi.Float, "sdot", d.Int("n"), d.FloatArray("x", d.In), d.Int("incx"), d.FloatArray("y", d.In), d.Int("incy")),
	d.BoundR(abi.Float, "sdsdot", d.Int("n"), d.Float("sb"), d.FloatArray("sx", d.In), d.Int("incsx"), d.FloatArray("sy", d.In), d.Int("incsy")),
	d.Bound("dgbmv", d.String("trans"), d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("x", d.In), d.Int("incx"), d.Double("beta"), d.DoubleArray("y", d.InOut), d.Int("incy")),
	d.Bound("sgbmv", d.String("trans"), d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("x", d.In), d.Int("incx"), d.Float("beta"), d.FloatArray("y", d.InOut), d.Int("incy")),
	d.Bound("dgemm", d.String("transa"), d.String("transb"), d.Int("m"), d.Int("n"), d.Int("k"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("b", d.In), d.Int("ldb"), d.Double("beta"), d.DoubleArray("c", d.InOut), d.Int("ldc")),
	d.Bound("sgemm", d.String("transa"), d.String("transb"), d.Int("m"), d.Int("n"), d.Int("k"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("b", d.In), d.Int("ldb"), d.Float("beta"), d.FloatArray("c", d.InOut), d.Int("ldc")),
	d.Bound("dgemv", d.String("trans"), d.Int("m"), d.Int("n"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("x", d.In), d.Int("incx"), d.Double("beta"), d.DoubleArray("y", d.InOut), d.Int("incy")),
	d.Bound("sgemv", d.String("trans"), d.Int("m"), d.Int("n"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("x", d.In), d.Int("incx"), d.Float("beta"), d.FloatArray("y", d.InOut), d.Int("incy")),
	d.Bound("dger", d.Int("m"), d.Int("n"), d.Double("alpha"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("y", d.In), d.Int("incy"), d.DoubleArray("a", d.InOut), d.Int("lda")),
	d.Bound("sger", d.Int("m"), d.Int("n"), d.Float("alpha"), d.FloatArray("x", d.In), d.Int("incx"), d.FloatArray("y", d.In), d.Int("incy"), d.FloatArray("a", d.InOut), d.Int("lda")),
	d.BoundR(abi.Double, "dnrm2", d.Int("n"), d.DoubleArray("x", d.In), d.Int("incx")),
	d.BoundR(abi.Float, "snrm2", d.Int("n"), d.FloatArray("x", d.In), d.Int("incx")),
	d.Bound("drot", d.Int("n"), d.DoubleArray("dx", d.InOut), d.Int("incx"), d.DoubleArray("dy", d.InOut), d.Int("incy"), d.Double("c"), d.Double("s")),
	d.Bound("srot", d.Int("n"), d.FloatArray("sx", d.InOut), d.Int("incx"), d.FloatArray("sy", d.InOut), d.Int("incy"), d.Float("c"), d.Float("s")),
	d.Bound("drotm", d.Int("n"), d.DoubleArray("dx", d.In), d.Int("incx"), d.DoubleArray("dy", d.InOut), d.Int("incy"), d.DoubleArray("dparam", d.In)),
	d.Bound("srotm", d.Int("n"), d.FloatArray("sx", d.In), d.Int("incx"), d.FloatArray("sy", d.InOut), d.Int("incy"), d.FloatArray("sparam", d.In)),
	d.Bound("drotmg", d.DoubleW("dd1"), d.DoubleW("dd2"), d.DoubleW("dx1"), d.Double("dy1"), d.DoubleArray("dparam", d.In)),
	d.Bound("srotmg", d.FloatW("sd1"), d.FloatW("sd2"), d.FloatW("sx1"), d.Float("sy1"), d.FloatArray("sparam", d.In)),
	d.Bound("dsbmv", d.String("uplo"), d.Int("n"), d.Int("k"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("x", d.In), d.Int("incx"), d.Double("beta"), d.DoubleArray("y", d.InOut), d.Int("incy")),
	d.Bound("ssbmv", d.String("uplo"), d.Int("n"), d.Int("k"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("x", d.In), d.Int("incx"), d.Float("beta"), d.FloatArray("y", d.InOut), d.Int("incy")),
	d.Bound("dscal", d.Int("n"), d.Double("alpha"), d.DoubleArray("x", d.InOut), d.Int("incx")),
	d.Bound("sscal", d.Int("n"), d.Float("alpha"), d.FloatArray("x", d.InOut), d.Int("incx")),
	d.Bound("dspmv", d.String("uplo"), d.Int("n"), d.Double("alpha"), d.DoubleArray("a", d.In), d.DoubleArray("x", d.In), d.Int("incx"), d.Double("beta"), d.DoubleArray("y", d.InOut), d.Int("incy")),
	d.Bound("sspmv", d.String("uplo"), d.Int("n"), d.Float("alpha"), d.FloatArray("a", d.In), d.FloatArray("x", d.In), d.Int("incx"), d.Float("beta"), d.FloatArray("y", d.InOut), d.Int("incy")),
	d.Bound("dspr", d.String("uplo"), d.Int("n"), d.Double("alpha"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("a", d.InOut)),
	d.Bound("sspr", d.String("uplo"), d.Int("n"), d.Float("alpha"), d.FloatArray("x", d.In), d.Int("incx"), d.FloatArray("a", d.InOut)),
	d.Bound("dspr2", d.String("uplo"), d.Int("n"), d.Double("alpha"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("y", d.In), d.Int("incy"), d.DoubleArray("a", d.InOut)),
	d.Bound("sspr2", d.String("uplo"), d.Int("n"), d.Float("alpha"), d.FloatArray("x", d.In), d.Int("incx"), d.FloatArray("y", d.In), d.Int("incy"), d.FloatArray("a", d.InOut)),
	d.Bound("dswap", d.Int("n"), d.DoubleArray("x", d.InOut), d.Int("incx"), d.DoubleArray("y", d.InOut), d.Int("incy")),
	d.Bound("sswap", d.Int("n"), d.FloatArray("x", d.InOut), d.Int("incx"), d.FloatArray("y", d.InOut), d.Int("incy")),
	d.Bound("dsymm", d.String("side"), d.String("uplo"), d.Int("m"), d.Int("n"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("b", d.In), d.Int("ldb"), d.Double("beta"), d.DoubleArray("c", d.InOut), d.Int("ldc")),
	d.Bound("ssymm", d.String("side"), d.String("uplo"), d.Int("m"), d.Int("n"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("b", d.In), d.Int("ldb"), d.Float("beta"), d.FloatArray("c", d.InOut), d.Int("ldc")),
	d.Bound("dsymv", d.String("uplo"), d.Int("n"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("x", d.In), d.Int("incx"), d.Double("beta"), d.DoubleArray("y", d.InOut), d.Int("incy")),
	d.Bound("ssymv", d.String("uplo"), d.Int("n"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("x", d.In), d.Int("incx"), d.Float("beta"), d.FloatArray("y", d.InOut), d.Int("incy")),
	d.Bound("dsyr", d.String("uplo"), d.Int("n"), d.Double("alpha"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("a", d.InOut), d.Int("lda")),
	d.Bound("ssyr", d.String("uplo"), d.Int("n"), d.Float("alpha"), d.FloatArray("x", d.In), d.Int("incx"), d.FloatArray("a", d.InOut), d.Int("lda")),
	d.Bound("dsyr2", d.String("uplo"), d.Int("n"), d.Double("alpha"), d.DoubleArray("x", d.In), d.Int("incx"), d.DoubleArray("y", d.In), d.Int("incy"), d.DoubleArray("a", d.InOut), d.Int("lda")),
	d.Bound("ssyr2", d.String("uplo"), d.Int("n"), d.Float("alpha"), d.FloatArray("x", d.In), d.Int("incx"), d.FloatArray("y", d.In), d.Int("incy"), d.FloatArray("a", d.InOut), d.Int("lda")),
	d.Bound("dsyr2k", d.String("uplo"), d.String("trans"), d.Int("n"), d.Int("k"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("b", d.In), d.Int("ldb"), d.Double("beta"), d.DoubleArray("c", d.InOut), d.Int("ldc")),
	d.Bound("ssyr2k", d.String("uplo"), d.String("trans"), d.Int("n"), d.Int("k"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("b", d.In), d.Int("ldb"), d.Float("beta"), d.FloatArray("c", d.InOut), d.Int("ldc")),
	d.Bound("dsyrk", d.String("uplo"), d.String("trans"), d.Int("n"), d.Int("k"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.Double("beta"), d.DoubleArray("c", d.InOut), d.Int("ldc")),
	d.Bound("ssyrk", d.String("uplo"), d.String("trans"), d.Int("n"), d.Int("k"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.Float("beta"), d.FloatArray("c", d.InOut), d.Int("ldc")),
	d.Bound("dtbmv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("x", d.InOut), d.Int("incx")),
	d.Bound("stbmv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("x", d.InOut), d.Int("incx")),
	d.Bound("dtbsv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("x", d.InOut), d.Int("incx")),
	d.Bound("stbsv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("x", d.InOut), d.Int("incx")),
	d.Bound("dtpmv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.DoubleArray("a", d.In), d.DoubleArray("x", d.InOut), d.Int("incx")),
	d.Bound("stpmv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.FloatArray("a", d.In), d.FloatArray("x", d.InOut), d.Int("incx")),
	d.Bound("dtpsv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.DoubleArray("a", d.In), d.DoubleArray("x", d.InOut), d.Int("incx")),
	d.Bound("stpsv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.FloatArray("a", d.In), d.FloatArray("x", d.InOut), d.Int("incx")),
	d.Bound("dtrmm", d.String("side"), d.String("uplo"), d.String("transa"), d.String("diag"), d.Int("m"), d.Int("n"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb")),
	d.Bound("strmm", d.String("side"), d.String("uplo"), d.String("transa"), d.String("diag"), d.Int("m"), d.Int("n"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb")),
	d.Bound("dtrmv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("x", d.InOut), d.Int("incx")),
	d.Bound("strmv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("x", d.InOut), d.Int("incx")),
	d.Bound("dtrsm", d.String("side"), d.String("uplo"), d.String("transa"), d.String("diag"), d.Int("m"), d.Int("n"), d.Double("alpha"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb")),
	d.Bound("strsm", d.String("side"), d.String("uplo"), d.String("transa"), d.String("diag"), d.Int("m"), d.Int("n"), d.Float("alpha"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb")),
	d.Bound("dtrsv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.DoubleArray("a", d.In), d.Int("lda"), d.DoubleArray("x", d.InOut), d.Int("incx")),
	d.Bound("strsv", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.FloatArray("a", d.In), d.Int("lda"), d.FloatArray("x", d.InOut), d.Int("incx")),
	d.BoundR(abi.Int, "idamax", d.Int("n"), d.DoubleArray("dx", d.In), d.Int("incdx")),
	d.BoundR(abi.Int, "isamax", d.Int("n"), d.FloatArray("sx", d.In), d.Int("incsx")),
}

package tables

import (
	"github.com/wippyai/jnibridge/abi"
	d "github.com/wippyai/jnibridge/descriptor"
)

// ARPACK returns the ARPACK reverse-communication routines.
func ARPACK() d.Library {
	return d.Library{Package: "arpack", DefaultLib: "libarpack.so.2", Routines: arpackRoutines}
}

var arpackRoutines = []d.Routine{
	d.Bound("dmout", d.Int("lout"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.Int("idigit"), d.String("ifmt")),
	d.Bound("smout", d.Int("lout"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.Int("idigit"), d.String("ifmt")),
	d.Bound("dvout", d.Int("lout"), d.Int("n"), d.DoubleArray("sx", d.InOut), d.Int("idigit"), d.String("ifmt")),
	d.Bound("svout", d.Int("lout"), d.Int("n"), d.FloatArray("sx", d.InOut), d.Int("idigit"), d.String("ifmt")),
	d.Bound("ivout", d.Int("lout"), d.Int("n"), d.IntArray("ix", d.InOut), d.Int("idigit"), d.String("ifmt")),
	d.Bound("dgetv0", d.IntW("ido"), d.String("bmat"), d.Int("itry"), d.Boolean("initv"), d.Int("n"), d.Int("j"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("resid", d.InOut), d.DoubleW("rnorm"), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.IntW("ierr")),
	d.Bound("sgetv0", d.IntW("ido"), d.String("bmat"), d.Int("itry"), d.Boolean("initv"), d.Int("n"), d.Int("j"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("resid", d.InOut), d.FloatW("rnorm"), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.IntW("ierr")),
	d.Stub("dlaqrb", d.Boolean("wantt"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.DoubleArray("z", d.InOut), d.IntW("info")),
	d.Stub("slaqrb", d.Boolean("wantt"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.FloatArray("z", d.InOut), d.IntW("info")),
	d.Bound("dnaitr", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.Int("k"), d.Int("np"), d.Int("nb"), d.DoubleArray("resid", d.InOut), d.DoubleW("rnorm"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.IntW("info")),
	d.Bound("snaitr", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.Int("k"), d.Int("np"), d.Int("nb"), d.FloatArray("resid", d.InOut), d.FloatW("rnorm"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.IntW("info")),
	d.Bound("dnapps", d.Int("n"), d.IntW("kev"), d.Int("np"), d.DoubleArray("shiftr", d.InOut), d.DoubleArray("shifti", d.InOut), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("resid", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("workl", d.InOut), d.DoubleArray("workd", d.InOut)),
	d.Bound("snapps", d.Int("n"), d.IntW("kev"), d.Int("np"), d.FloatArray("shiftr", d.InOut), d.FloatArray("shifti", d.InOut), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("resid", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("workl", d.InOut), d.FloatArray("workd", d.InOut)),
	d.Bound("dnaup2", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.String("which"), d.IntW("nev"), d.IntW("np"), d.Double("tol"), d.DoubleArray("resid", d.InOut), d.Int("mode"), d.Int("iupd"), d.Int("ishift"), d.IntW("mxiter"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("ritzr", d.InOut), d.DoubleArray("ritzi", d.InOut), d.DoubleArray("bounds", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("workl", d.InOut), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.IntW("info")),
	d.Bound("snaup2", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.String("which"), d.IntW("nev"), d.IntW("np"), d.Float("tol"), d.FloatArray("resid", d.InOut), d.Int("mode"), d.Int("iupd"), d.Int("ishift"), d.IntW("mxiter"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("ritzr", d.InOut), d.FloatArray("ritzi", d.InOut), d.FloatArray("bounds", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("workl", d.InOut), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.IntW("info")),
	d.Bound("dnaupd", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.String("which"), d.Int("nev"), d.DoubleW("tol"), d.DoubleArray("resid", d.InOut), d.Int("ncv"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.IntArray("iparam", d.InOut), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.DoubleArray("workl", d.InOut), d.Int("lworkl"), d.IntW("info")),
	d.Bound("snaupd", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.String("which"), d.Int("nev"), d.FloatW("tol"), d.FloatArray("resid", d.InOut), d.Int("ncv"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.IntArray("iparam", d.InOut), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.FloatArray("workl", d.InOut), d.Int("lworkl"), d.IntW("info")),
	d.Bound("dnconv", d.Int("n"), d.DoubleArray("ritzr", d.InOut), d.DoubleArray("ritzi", d.InOut), d.DoubleArray("bounds", d.InOut), d.Double("tol"), d.IntW("nconv")),
	d.Bound("snconv", d.Int("n"), d.FloatArray("ritzr", d.InOut), d.FloatArray("ritzi", d.InOut), d.FloatArray("bounds", d.InOut), d.Float("tol"), d.IntW("nconv")),
	d.Bound("dsconv", d.Int("n"), d.DoubleArray("ritz", d.InOut), d.DoubleArray("bounds", d.InOut), d.Double("tol"), d.IntW("nconv")),
	d.Bound("ssconv", d.Int("n"), d.FloatArray("ritz", d.InOut), d.FloatArray("bounds", d.InOut), d.Float("tol"), d.IntW("nconv")),
	d.Bound("dneigh", d.Double("rnorm"), d.IntW("n"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("ritzr", d.InOut), d.DoubleArray("ritzi", d.InOut), d.DoubleArray("bounds", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("workl", d.InOut), d.IntW("ierr")),
	d.Bound("sneigh", d.Float("rnorm"), d.IntW("n"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("ritzr", d.InOut), d.FloatArray("ritzi", d.InOut), d.FloatArray("bounds", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("workl", d.InOut), d.IntW("ierr")),
	d.Bound("dneupd", d.Boolean("rvec"), d.String("howmny"), d.BooleanArray("select"), d.DoubleArray("dr", d.InOut), d.DoubleArray("di", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.Double("sigmar"), d.Double("sigmai"), d.DoubleArray("workev", d.InOut), d.String("bmat"), d.Int("n"), d.String("which"), d.IntW("nev"), d.Double("tol"), d.DoubleArray("resid", d.InOut), d.Int("ncv"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.IntArray("iparam", d.InOut), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.DoubleArray("workl", d.InOut), d.Int("lworkl"), d.IntW("info")),
	d.Bound("sneupd", d.Boolean("rvec"), d.String("howmny"), d.BooleanArray("select"), d.FloatArray("dr", d.InOut), d.FloatArray("di", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.Float("sigmar"), d.Float("sigmai"), d.FloatArray("workev", d.InOut), d.String("bmat"), d.Int("n"), d.String("which"), d.IntW("nev"), d.Float("tol"), d.FloatArray("resid", d.InOut), d.Int("ncv"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.IntArray("iparam", d.InOut), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.FloatArray("workl", d.InOut), d.Int("lworkl"), d.IntW("info")),
	d.Bound("dngets", d.Int("ishift"), d.String("which"), d.IntW("kev"), d.IntW("np"), d.DoubleArray("ritzr", d.InOut), d.DoubleArray("ritzi", d.InOut), d.DoubleArray("bounds", d.InOut), d.DoubleArray("shiftr", d.InOut), d.DoubleArray("shifti", d.InOut)),
	d.Bound("sngets", d.Int("ishift"), d.String("which"), d.IntW("kev"), d.IntW("np"), d.FloatArray("ritzr", d.InOut), d.FloatArray("ritzi", d.InOut), d.FloatArray("bounds", d.InOut), d.FloatArray("shiftr", d.InOut), d.FloatArray("shifti", d.InOut)),
	d.Bound("dsaitr", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.Int("k"), d.Int("np"), d.Int("mode"), d.DoubleArray("resid", d.InOut), d.DoubleW("rnorm"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.IntW("info")),
	d.Bound("ssaitr", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.Int("k"), d.Int("np"), d.Int("mode"), d.FloatArray("resid", d.InOut), d.FloatW("rnorm"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.IntW("info")),
	d.Bound("dsapps", d.Int("n"), d.Int("kev"), d.Int("np"), d.DoubleArray("shift", d.InOut), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("resid", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("workd", d.InOut)),
	d.Bound("ssapps", d.Int("n"), d.Int("kev"), d.Int("np"), d.FloatArray("shift", d.InOut), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("resid", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("workd", d.InOut)),
	d.Bound("dsaup2", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.String("which"), d.IntW("nev"), d.IntW("np"), d.Double("tol"), d.DoubleArray("resid", d.InOut), d.Int("mode"), d.Int("iupd"), d.Int("ishift"), d.IntW("mxiter"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("ritz", d.InOut), d.DoubleArray("bounds", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("workl", d.InOut), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.IntW("info")),
	d.Bound("ssaup2", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.String("which"), d.IntW("nev"), d.IntW("np"), d.Float("tol"), d.FloatArray("resid", d.InOut), d.Int("mode"), d.Int("iupd"), d.Int("ishift"), d.IntW("mxiter"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("ritz", d.InOut), d.FloatArray("bounds", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("workl", d.InOut), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.IntW("info")),
	d.Bound("dseigt", d.Double("rnorm"), d.Int("n"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("eig", d.InOut), d.DoubleArray("bounds", d.InOut), d.DoubleArray("workl", d.InOut), d.IntW("ierr")),
	d.Bound("sseigt", d.Float("rnorm"), d.Int("n"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("eig", d.InOut), d.FloatArray("bounds", d.InOut), d.FloatArray("workl", d.InOut), d.IntW("ierr")),
	d.Bound("dsesrt", d.String("which"), d.Boolean("apply"), d.Int("n"), d.DoubleArray("x", d.InOut), d.Int("na"), d.DoubleArray("a", d.InOut), d.Int("lda")),
	d.Bound("ssesrt", d.String("which"), d.Boolean("apply"), d.Int("n"), d.FloatArray("x", d.InOut), d.Int("na"), d.FloatArray("a", d.InOut), d.Int("lda")),
	d.Bound("dsaupd", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.String("which"), d.Int("nev"), d.DoubleW("tol"), d.DoubleArray("resid", d.InOut), d.Int("ncv"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.IntArray("iparam", d.InOut), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.DoubleArray("workl", d.InOut), d.Int("lworkl"), d.IntW("info")),
	d.Bound("ssaupd", d.IntW("ido"), d.String("bmat"), d.Int("n"), d.String("which"), d.Int("nev"), d.FloatW("tol"), d.FloatArray("resid", d.InOut), d.Int("ncv"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.IntArray("iparam", d.InOut), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.FloatArray("workl", d.InOut), d.Int("lworkl"), d.IntW("info")),
	d.Bound("dseupd", d.Boolean("rvec"), d.String("howmny"), d.BooleanArray("select"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.Double("sigma"), d.String("bmat"), d.Int("n"), d.String("which"), d.IntW("nev"), d.Double("tol"), d.DoubleArray("resid", d.InOut), d.Int("ncv"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.IntArray("iparam", d.InOut), d.IntArray("ipntr", d.InOut), d.DoubleArray("workd", d.InOut), d.DoubleArray("workl", d.InOut), d.Int("lworkl"), d.IntW("info")),
	d.Bound("sseupd", d.Boolean("rvec"), d.String("howmny"), d.BooleanArray("select"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.Float("sigma"), d.String("bmat"), d.Int("n"), d.String("which"), d.IntW("nev"), d.Float("tol"), d.FloatArray("resid", d.InOut), d.Int("ncv"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.IntArray("iparam", d.InOut), d.IntArray("ipntr", d.InOut), d.FloatArray("workd", d.InOut), d.FloatArray("workl", d.InOut), d.Int("lworkl"), d.IntW("info")),
	d.Bound("dsgets", d.Int("ishift"), d.String("which"), d.IntW("kev"), d.IntW("np"), d.DoubleArray("ritz", d.InOut), d.DoubleArray("bounds", d.InOut), d.DoubleArray("shifts", d.InOut)),
	d.Bound("ssgets", d.Int("ishift"), d.String("which"), d.IntW("kev"), d.IntW("np"), d.FloatArray("ritz", d.InOut), d.FloatArray("bounds", d.InOut), d.FloatArray("shifts", d.InOut)),
	d.Bound("dsortc", d.String("which"), d.Boolean("apply"), d.Int("n"), d.DoubleArray("xreal", d.InOut), d.DoubleArray("ximag", d.InOut), d.DoubleArray("y", d.InOut)),
	d.Bound("ssortc", d.String("which"), d.Boolean("apply"), d.Int("n"), d.FloatArray("xreal", d.InOut), d.FloatArray("ximag", d.InOut), d.FloatArray("y", d.InOut)),
	d.Bound("dsortr", d.String("which"), d.Boolean("apply"), d.Int("n"), d.DoubleArray("x1", d.InOut), d.DoubleArray("x2", d.InOut)),
	d.Bound("ssortr", d.String("which"), d.Boolean("apply"), d.Int("n"), d.FloatArray("x1", d.InOut), d.FloatArray("x2", d.InOut)),
	d.Bound("dstatn"),
	d.Bound("sstatn"),
	d.Bound("dstats"),
	d.Bound("sstats"),
	d.Bound("dstqrb", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("sstqrb", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.BoundR(abi.Int, "icnteq", d.Int("n"), d.IntArray("array", d.InOut), d.Int("value")),
	d.Bound("icopy", d.Int("n"), d.IntArray("lx", d.InOut), d.Int("incx"), d.IntArray("ly", d.InOut), d.Int("incy")),
	d.Bound("iset", d.Int("n"), d.Int("value"), d.IntArray("array", d.InOut), d.Int("inc")),
	d.Bound("iswap", d.Int("n"), d.IntArray("sx", d.InOut), d.Int("incx"), d.IntArray("sy", d.InOut), d.Int("incy")),
	d.Bound("second", d.FloatW("t")),
}

package tables

import (
	"github.com/wippyai/jnibridge/abi"
	d "github.com/wippyai/jnibridge/descriptor"
)

// LAPACK returns the LAPACK routines. Drivers taking a selection callback
// are stubs.
func LAPACK() d.Library {
	return d.Library{Package: "lapack", DefaultLib: "liblapack.so.3", Routines: lapackRoutines}
}

var lapackRoutines = []d.Routine{
	d.Bound("dbdsdc", d.String("uplo"), d.String("compq"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.DoubleArray("q", d.InOut), d.IntArray("iq", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dbdsqr", d.String("uplo"), d.Int("n"), d.Int("ncvt"), d.Int("nru"), d.Int("ncc"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("ddisna", d.String("job"), d.Int("m"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("sep", d.InOut), d.IntW("info")),
	d.Bound("dgbbrd", d.String("vect"), d.Int("m"), d.Int("n"), d.Int("ncc"), d.Int("kl"), d.Int("ku"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("pt", d.InOut), d.Int("ldpt"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgbcon", d.String("norm"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgbequ", d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("r", d.InOut), d.DoubleArray("c", d.InOut), d.DoubleW("rowcnd"), d.DoubleW("colcnd"), d.DoubleW("amax"), d.IntW("info")),
	d.Bound("dgbrfs", d.String("trans"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("afb", d.InOut), d.Int("ldafb"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgbsv", d.Int("n"), d.Int("kl"), d.Int("ku"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dgbsvx", d.String("fact"), d.String("trans"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("afb", d.InOut), d.Int("ldafb"), d.IntArray("ipiv", d.InOut), d.StringW("equed"), d.DoubleArray("r", d.InOut), d.DoubleArray("c", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgbtf2", d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("dgbtrf", d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("dgbtrs", d.String("trans"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dgebak", d.String("job"), d.String("side"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("scale", d.InOut), d.Int("m"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.IntW("info")),
	d.Bound("dgebal", d.String("job"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("ilo"), d.IntW("ihi"), d.DoubleArray("scale", d.InOut), d.IntW("info")),
	d.Bound("dgebd2", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("tauq", d.InOut), d.DoubleArray("taup", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgebrd", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("tauq", d.InOut), d.DoubleArray("taup", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgecon", d.String("norm"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgeequ", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("r", d.InOut), d.DoubleArray("c", d.InOut), d.DoubleW("rowcnd"), d.DoubleW("colcnd"), d.DoubleW("amax"), d.IntW("info")),
	d.Stub("dgees", d.String("jobvs"), d.String("sort"), d.Object("select"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("sdim"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.DoubleArray("vs", d.InOut), d.Int("ldvs"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.BooleanArray("bwork"), d.IntW("info")),
	d.Stub("dgeesx", d.String("jobvs"), d.String("sort"), d.Object("select"), d.String("sense"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("sdim"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.DoubleArray("vs", d.InOut), d.Int("ldvs"), d.DoubleW("rconde"), d.DoubleW("rcondv"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.BooleanArray("bwork"), d.IntW("info")),
	d.Bound("dgeev", d.String("jobvl"), d.String("jobvr"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgeevx", d.String("balanc"), d.String("jobvl"), d.String("jobvr"), d.String("sense"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.IntW("ilo"), d.IntW("ihi"), d.DoubleArray("scale", d.InOut), d.DoubleW("abnrm"), d.DoubleArray("rconde", d.InOut), d.DoubleArray("rcondv", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgegs", d.String("jobvsl"), d.String("jobvsr"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("vsl", d.InOut), d.Int("ldvsl"), d.DoubleArray("vsr", d.InOut), d.Int("ldvsr"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgegv", d.String("jobvl"), d.String("jobvr"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgehd2", d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgehrd", d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgelq2", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgelqf", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgels", d.String("trans"), d.Int("m"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgelsd", d.Int("m"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("s", d.InOut), d.Double("rcond"), d.IntW("rank"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgelss", d.Int("m"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("s", d.InOut), d.Double("rcond"), d.IntW("rank"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgelsx", d.Int("m"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntArray("jpvt", d.InOut), d.Double("rcond"), d.IntW("rank"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgelsy", d.Int("m"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntArray("jpvt", d.InOut), d.Double("rcond"), d.IntW("rank"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgeql2", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgeqlf", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgeqp3", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("jpvt", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgeqpf", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("jpvt", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgeqr2", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgeqrf", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgerfs", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("af", d.InOut), d.Int("ldaf"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgerq2", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgerqf", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgesc2", d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("rhs", d.InOut), d.IntArray("ipiv", d.InOut), d.IntArray("jpiv", d.InOut), d.DoubleW("scale")),
	d.Bound("dgesdd", d.String("jobz"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("s", d.InOut), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgesv", d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dgesvd", d.String("jobu"), d.String("jobvt"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("s", d.InOut), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgesvx", d.String("fact"), d.String("trans"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("af", d.InOut), d.Int("ldaf"), d.IntArray("ipiv", d.InOut), d.StringW("equed"), d.DoubleArray("r", d.InOut), d.DoubleArray("c", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgetc2", d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.IntArray("jpiv", d.InOut), d.IntW("info")),
	d.Bound("dgetf2", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("dgetrf", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("dgetri", d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgetrs", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dggbak", d.String("job"), d.String("side"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("lscale", d.InOut), d.DoubleArray("rscale", d.InOut), d.Int("m"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.IntW("info")),
	d.Bound("dggbal", d.String("job"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("ilo"), d.IntW("ihi"), d.DoubleArray("lscale", d.InOut), d.DoubleArray("rscale", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Stub("dgges", d.String("jobvsl"), d.String("jobvsr"), d.String("sort"), d.Object("selctg"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("sdim"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("vsl", d.InOut), d.Int("ldvsl"), d.DoubleArray("vsr", d.InOut), d.Int("ldvsr"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.BooleanArray("bwork"), d.IntW("info")),
	d.Stub("dggesx", d.String("jobvsl"), d.String("jobvsr"), d.String("sort"), d.Object("selctg"), d.String("sense"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("sdim"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("vsl", d.InOut), d.Int("ldvsl"), d.DoubleArray("vsr", d.InOut), d.Int("ldvsr"), d.DoubleArray("rconde", d.InOut), d.DoubleArray("rcondv", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.BooleanArray("bwork"), d.IntW("info")),
	d.Bound("dggev", d.String("jobvl"), d.String("jobvr"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dggevx", d.String("balanc"), d.String("jobvl"), d.String("jobvr"), d.String("sense"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.IntW("ilo"), d.IntW("ihi"), d.DoubleArray("lscale", d.InOut), d.DoubleArray("rscale", d.InOut), d.DoubleW("abnrm"), d.DoubleW("bbnrm"), d.DoubleArray("rconde", d.InOut), d.DoubleArray("rcondv", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.BooleanArray("bwork"), d.IntW("info")),
	d.Bound("dggglm", d.Int("n"), d.Int("m"), d.Int("p"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("d", d.InOut), d.DoubleArray("x", d.InOut), d.DoubleArray("y", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dgghrd", d.String("compq"), d.String("compz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntW("info")),
	d.Bound("dgglse", d.Int("m"), d.Int("n"), d.Int("p"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("c", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("x", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dggqrf", d.Int("n"), d.Int("m"), d.Int("p"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("taua", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("taub", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dggrqf", d.Int("m"), d.Int("p"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("taua", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("taub", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dggsvd", d.String("jobu"), d.String("jobv"), d.String("jobq"), d.Int("m"), d.Int("n"), d.Int("p"), d.IntW("k"), d.IntW("l"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("alpha", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dggsvp", d.String("jobu"), d.String("jobv"), d.String("jobq"), d.Int("m"), d.Int("p"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.Double("tola"), d.Double("tolb"), d.IntW("k"), d.IntW("l"), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.IntArray("iwork", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dgtcon", d.String("norm"), d.Int("n"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut), d.DoubleArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgtrfs", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut), d.DoubleArray("dlf", d.InOut), d.DoubleArray("df", d.InOut), d.DoubleArray("duf", d.InOut), d.DoubleArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgtsv", d.Int("n"), d.Int("nrhs"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dgtsvx", d.String("fact"), d.String("trans"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut), d.DoubleArray("dlf", d.InOut), d.DoubleArray("df", d.InOut), d.DoubleArray("duf", d.InOut), d.DoubleArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dgttrf", d.Int("n"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut), d.DoubleArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("dgttrs", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut), d.DoubleArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dgtts2", d.Int("itrans"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut), d.DoubleArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb")),
	d.Bound("dhgeqz", d.String("job"), d.String("compq"), d.String("compz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dhsein", d.String("side"), d.String("eigsrc"), d.String("initv"), d.BooleanArray("select"), d.Int("n"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.Int("mm"), d.IntW("m"), d.DoubleArray("work", d.InOut), d.IntArray("ifaill", d.InOut), d.IntArray("ifailr", d.InOut), d.IntW("info")),
	d.Bound("dhseqr", d.String("job"), d.String("compz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.BoundR(abi.Boolean, "disnan", d.Double("din")),
	d.Bound("dlabad", d.DoubleW("small"), d.DoubleW("large")),
	d.Bound("dlabrd", d.Int("m"), d.Int("n"), d.Int("nb"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("tauq", d.InOut), d.DoubleArray("taup", d.InOut), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("y", d.InOut), d.Int("ldy")),
	d.Bound("dlacn2", d.Int("n"), d.DoubleArray("v", d.InOut), d.DoubleArray("x", d.InOut), d.IntArray("isgn", d.InOut), d.DoubleW("est"), d.IntW("kase"), d.IntArray("isave", d.InOut)),
	d.Bound("dlacon", d.Int("n"), d.DoubleArray("v", d.InOut), d.DoubleArray("x", d.InOut), d.IntArray("isgn", d.InOut), d.DoubleW("est"), d.IntW("kase")),
	d.Bound("dlacpy", d.String("uplo"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb")),
	d.Bound("dladiv", d.Double("a"), d.Double("b"), d.Double("c"), d.Double("d"), d.DoubleW("p"), d.DoubleW("q")),
	d.Bound("dlae2", d.Double("a"), d.Double("b"), d.Double("c"), d.DoubleW("rt1"), d.DoubleW("rt2")),
	d.Bound("dlaebz", d.Int("ijob"), d.Int("nitmax"), d.Int("n"), d.Int("mmax"), d.Int("minp"), d.Int("nbmin"), d.Double("abstol"), d.Double("reltol"), d.Double("pivmin"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("e2", d.InOut), d.IntArray("nval", d.InOut), d.DoubleArray("ab", d.InOut), d.DoubleArray("c", d.InOut), d.IntW("mout"), d.IntArray("nab", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlaed0", d.Int("icompq"), d.Int("qsiz"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("qstore", d.InOut), d.Int("ldqs"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlaed1", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.IntArray("indxq", d.InOut), d.DoubleW("rho"), d.Int("cutpnt"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlaed2", d.IntW("k"), d.Int("n"), d.Int("n1"), d.DoubleArray("d", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.IntArray("indxq", d.InOut), d.DoubleW("rho"), d.DoubleArray("z", d.InOut), d.DoubleArray("dlamda", d.InOut), d.DoubleArray("w", d.InOut), d.DoubleArray("q2", d.InOut), d.IntArray("indx", d.InOut), d.IntArray("indxc", d.InOut), d.IntArray("indxp", d.InOut), d.IntArray("coltyp", d.InOut), d.IntW("info")),
	d.Bound("dlaed3", d.Int("k"), d.Int("n"), d.Int("n1"), d.DoubleArray("d", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.Double("rho"), d.DoubleArray("dlamda", d.InOut), d.DoubleArray("q2", d.InOut), d.IntArray("indx", d.InOut), d.IntArray("ctot", d.InOut), d.DoubleArray("w", d.InOut), d.DoubleArray("s", d.InOut), d.IntW("info")),
	d.Bound("dlaed4", d.Int("n"), d.Int("i"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("delta", d.InOut), d.Double("rho"), d.DoubleW("dlam"), d.IntW("info")),
	d.Bound("dlaed5", d.Int("i"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("delta", d.InOut), d.Double("rho"), d.DoubleW("dlam")),
	d.Bound("dlaed6", d.Int("kniter"), d.Boolean("orgati"), d.Double("rho"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.Double("finit"), d.DoubleW("tau"), d.IntW("info")),
	d.Bound("dlaed7", d.Int("icompq"), d.Int("n"), d.Int("qsiz"), d.Int("tlvls"), d.Int("curlvl"), d.Int("curpbm"), d.DoubleArray("d", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.IntArray("indxq", d.InOut), d.DoubleW("rho"), d.Int("cutpnt"), d.DoubleArray("qstore", d.InOut), d.IntArray("qptr", d.InOut), d.IntArray("prmptr", d.InOut), d.IntArray("perm", d.InOut), d.IntArray("givptr", d.InOut), d.IntArray("givcol", d.InOut), d.DoubleArray("givnum", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlaed8", d.Int("icompq"), d.IntW("k"), d.Int("n"), d.Int("qsiz"), d.DoubleArray("d", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.IntArray("indxq", d.InOut), d.DoubleW("rho"), d.Int("cutpnt"), d.DoubleArray("z", d.InOut), d.DoubleArray("dlamda", d.InOut), d.DoubleArray("q2", d.InOut), d.Int("ldq2"), d.DoubleArray("w", d.InOut), d.IntArray("perm", d.InOut), d.IntW("givptr"), d.IntArray("givcol", d.InOut), d.DoubleArray("givnum", d.InOut), d.IntArray("indxp", d.InOut), d.IntArray("indx", d.InOut), d.IntW("info")),
	d.Bound("dlaed9", d.Int("k"), d.Int("kstart"), d.Int("kstop"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.Double("rho"), d.DoubleArray("dlamda", d.InOut), d.DoubleArray("w", d.InOut), d.DoubleArray("s", d.InOut), d.Int("lds"), d.IntW("info")),
	d.Bound("dlaeda", d.Int("n"), d.Int("tlvls"), d.Int("curlvl"), d.Int("curpbm"), d.IntArray("prmptr", d.InOut), d.IntArray("perm", d.InOut), d.IntArray("givptr", d.InOut), d.IntArray("givcol", d.InOut), d.DoubleArray("givnum", d.InOut), d.DoubleArray("q", d.InOut), d.IntArray("qptr", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("ztemp", d.InOut), d.IntW("info")),
	d.Bound("dlaein", d.Boolean("rightv"), d.Boolean("noinit"), d.Int("n"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.Double("wr"), d.Double("wi"), d.DoubleArray("vr", d.InOut), d.DoubleArray("vi", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("work", d.InOut), d.Double("eps3"), d.Double("smlnum"), d.Double("bignum"), d.IntW("info")),
	d.Bound("dlaev2", d.Double("a"), d.Double("b"), d.Double("c"), d.DoubleW("rt1"), d.DoubleW("rt2"), d.DoubleW("cs1"), d.DoubleW("sn1")),
	d.Bound("dlaexc", d.Boolean("wantq"), d.Int("n"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.Int("j1"), d.Int("n1"), d.Int("n2"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlag2", d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.Double("safmin"), d.DoubleW("scale1"), d.DoubleW("scale2"), d.DoubleW("wr1"), d.DoubleW("wr2"), d.DoubleW("wi")),
	d.Bound("dlag2s", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.FloatArray("sa", d.InOut), d.Int("ldsa"), d.IntW("info")),
	d.Bound("dlags2", d.Boolean("upper"), d.Double("a1"), d.Double("a2"), d.Double("a3"), d.Double("b1"), d.Double("b2"), d.Double("b3"), d.DoubleW("csu"), d.DoubleW("snu"), d.DoubleW("csv"), d.DoubleW("snv"), d.DoubleW("csq"), d.DoubleW("snq")),
	d.Bound("dlagtf", d.Int("n"), d.DoubleArray("a", d.InOut), d.Double("lambda"), d.DoubleArray("b", d.InOut), d.DoubleArray("c", d.InOut), d.Double("tol"), d.DoubleArray("d", d.InOut), d.IntArray("in", d.InOut), d.IntW("info")),
	d.Bound("dlagtm", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.Double("alpha"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.Double("beta"), d.DoubleArray("b", d.InOut), d.Int("ldb")),
	d.Bound("dlagts", d.Int("job"), d.Int("n"), d.DoubleArray("a", d.InOut), d.DoubleArray("b", d.InOut), d.DoubleArray("c", d.InOut), d.DoubleArray("d", d.InOut), d.IntArray("in", d.InOut), d.DoubleArray("y", d.InOut), d.DoubleW("tol"), d.IntW("info")),
	d.Bound("dlagv2", d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleW("csl"), d.DoubleW("snl"), d.DoubleW("csr"), d.DoubleW("snr")),
	d.Bound("dlahqr", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.Int("iloz"), d.Int("ihiz"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntW("info")),
	d.Bound("dlahr2", d.Int("n"), d.Int("k"), d.Int("nb"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("y", d.InOut), d.Int("ldy")),
	d.Bound("dlahrd", d.Int("n"), d.Int("k"), d.Int("nb"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("y", d.InOut), d.Int("ldy")),
	d.Bound("dlaic1", d.Int("job"), d.Int("j"), d.DoubleArray("x", d.InOut), d.Double("sest"), d.DoubleArray("w", d.InOut), d.Double("gamma"), d.DoubleW("sestpr"), d.DoubleW("s"), d.DoubleW("c")),
	d.BoundR(abi.Boolean, "dlaisnan", d.Double("din1"), d.Double("din2")),
	d.Bound("dlaln2", d.Boolean("ltrans"), d.Int("na"), d.Int("nw"), d.Double("smin"), d.Double("ca"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.Double("d1"), d.Double("d2"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.Double("wr"), d.Double("wi"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("scale"), d.DoubleW("xnorm"), d.IntW("info")),
	d.Bound("dlals0", d.Int("icompq"), d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.Int("nrhs"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("bx", d.InOut), d.Int("ldbx"), d.IntArray("perm", d.InOut), d.Int("givptr"), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.DoubleArray("givnum", d.InOut), d.Int("ldgnum"), d.DoubleArray("poles", d.InOut), d.DoubleArray("difl", d.InOut), d.DoubleArray("difr", d.InOut), d.DoubleArray("z", d.InOut), d.Int("k"), d.Double("c"), d.Double("s"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlalsa", d.Int("icompq"), d.Int("smlsiz"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("bx", d.InOut), d.Int("ldbx"), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("vt", d.InOut), d.IntArray("k", d.InOut), d.DoubleArray("difl", d.InOut), d.DoubleArray("difr", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("poles", d.InOut), d.IntArray("givptr", d.InOut), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.IntArray("perm", d.InOut), d.DoubleArray("givnum", d.InOut), d.DoubleArray("c", d.InOut), d.DoubleArray("s", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlalsd", d.String("uplo"), d.Int("smlsiz"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.Double("rcond"), d.IntW("rank"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlamrg", d.Int("n1"), d.Int("n2"), d.DoubleArray("a", d.InOut), d.Int("dtrd1"), d.Int("dtrd2"), d.IntArray("index", d.InOut)),
	d.BoundR(abi.Int, "dlaneg", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("lld", d.InOut), d.Double("sigma"), d.Double("pivmin"), d.Int("r")),
	d.BoundR(abi.Double, "dlangb", d.String("norm"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("work", d.InOut)),
	d.BoundR(abi.Double, "dlange", d.String("norm"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("work", d.InOut)),
	d.BoundR(abi.Double, "dlangt", d.String("norm"), d.Int("n"), d.DoubleArray("dl", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("du", d.InOut)),
	d.BoundR(abi.Double, "dlanhs", d.String("norm"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("work", d.InOut)),
	d.BoundR(abi.Double, "dlansb", d.String("norm"), d.String("uplo"), d.Int("n"), d.Int("k"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("work", d.InOut)),
	d.BoundR(abi.Double, "dlansp", d.String("norm"), d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("work", d.InOut)),
	d.BoundR(abi.Double, "dlanst", d.String("norm"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut)),
	d.BoundR(abi.Double, "dlansy", d.String("norm"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("work", d.InOut)),
	d.BoundR(abi.Double, "dlantb", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.Int("k"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("work", d.InOut)),
	d.BoundR(abi.Double, "dlantp", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("work", d.InOut)),
	d.BoundR(abi.Double, "dlantr", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("work", d.InOut)),
	d.Bound("dlanv2", d.DoubleW("a"), d.DoubleW("b"), d.DoubleW("c"), d.DoubleW("d"), d.DoubleW("rt1r"), d.DoubleW("rt1i"), d.DoubleW("rt2r"), d.DoubleW("rt2i"), d.DoubleW("cs"), d.DoubleW("sn")),
	d.Bound("dlapll", d.Int("n"), d.DoubleArray("x", d.InOut), d.Int("incx"), d.DoubleArray("y", d.InOut), d.Int("incy"), d.DoubleW("ssmin")),
	d.Bound("dlapmt", d.Boolean("forwrd"), d.Int("m"), d.Int("n"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.IntArray("k", d.InOut)),
	d.BoundR(abi.Double, "dlapy2", d.Double("x"), d.Double("y")),
	d.BoundR(abi.Double, "dlapy3", d.Double("x"), d.Double("y"), d.Double("z")),
	d.Bound("dlaqgb", d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("r", d.InOut), d.DoubleArray("c", d.InOut), d.Double("rowcnd"), d.Double("colcnd"), d.Double("amax"), d.StringW("equed")),
	d.Bound("dlaqge", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("r", d.InOut), d.DoubleArray("c", d.InOut), d.Double("rowcnd"), d.Double("colcnd"), d.Double("amax"), d.StringW("equed")),
	d.Bound("dlaqp2", d.Int("m"), d.Int("n"), d.Int("offset"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("jpvt", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("vn1", d.InOut), d.DoubleArray("vn2", d.InOut), d.DoubleArray("work", d.InOut)),
	d.Bound("dlaqps", d.Int("m"), d.Int("n"), d.Int("offset"), d.Int("nb"), d.IntW("kb"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("jpvt", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("vn1", d.InOut), d.DoubleArray("vn2", d.InOut), d.DoubleArray("auxv", d.InOut), d.DoubleArray("f", d.InOut), d.Int("ldf")),
	d.Bound("dlaqr0", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.Int("iloz"), d.Int("ihiz"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dlaqr1", d.Int("n"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.Double("sr1"), d.Double("si1"), d.Double("sr2"), d.Double("si2"), d.DoubleArray("v", d.InOut)),
	d.Bound("dlaqr2", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ktop"), d.Int("kbot"), d.Int("nw"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.Int("iloz"), d.Int("ihiz"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntW("ns"), d.IntW("nd"), d.DoubleArray("sr", d.InOut), d.DoubleArray("si", d.InOut), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.Int("nh"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.Int("nv"), d.DoubleArray("wv", d.InOut), d.Int("ldwv"), d.DoubleArray("work", d.InOut), d.Int("lwork")),
	d.Bound("dlaqr3", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ktop"), d.Int("kbot"), d.Int("nw"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.Int("iloz"), d.Int("ihiz"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntW("ns"), d.IntW("nd"), d.DoubleArray("sr", d.InOut), d.DoubleArray("si", d.InOut), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.Int("nh"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.Int("nv"), d.DoubleArray("wv", d.InOut), d.Int("ldwv"), d.DoubleArray("work", d.InOut), d.Int("lwork")),
	d.Bound("dlaqr4", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.Int("iloz"), d.Int("ihiz"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dlaqr5", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("kacc22"), d.Int("n"), d.Int("ktop"), d.Int("kbot"), d.Int("nshfts"), d.DoubleArray("sr", d.InOut), d.DoubleArray("si", d.InOut), d.DoubleArray("h", d.InOut), d.Int("ldh"), d.Int("iloz"), d.Int("ihiz"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.Int("nv"), d.DoubleArray("wv", d.InOut), d.Int("ldwv"), d.Int("nh"), d.DoubleArray("wh", d.InOut), d.Int("ldwh")),
	d.Bound("dlaqsb", d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("s", d.InOut), d.Double("scond"), d.Double("amax"), d.StringW("equed")),
	d.Bound("dlaqsp", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("s", d.InOut), d.Double("scond"), d.Double("amax"), d.StringW("equed")),
	d.Bound("dlaqsy", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("s", d.InOut), d.Double("scond"), d.Double("amax"), d.StringW("equed")),
	d.Bound("dlaqtr", d.Boolean("ltran"), d.Boolean("lreal"), d.Int("n"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("b", d.InOut), d.Double("w"), d.DoubleW("scale"), d.DoubleArray("x", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlar1v", d.Int("n"), d.Int("b1"), d.Int("bn"), d.Double("lambda"), d.DoubleArray("d", d.InOut), d.DoubleArray("l", d.InOut), d.DoubleArray("ld", d.InOut), d.DoubleArray("lld", d.InOut), d.Double("pivmin"), d.Double("gaptol"), d.DoubleArray("z", d.InOut), d.Boolean("wantnc"), d.IntW("negcnt"), d.DoubleW("ztz"), d.DoubleW("mingma"), d.IntW("r"), d.IntArray("isuppz", d.InOut), d.DoubleW("nrminv"), d.DoubleW("resid"), d.DoubleW("rqcorr"), d.DoubleArray("work", d.InOut)),
	d.Bound("dlar2v", d.Int("n"), d.DoubleArray("x", d.InOut), d.DoubleArray("y", d.InOut), d.DoubleArray("z", d.InOut), d.Int("incx"), d.DoubleArray("c", d.InOut), d.DoubleArray("s", d.InOut), d.Int("incc")),
	d.Bound("dlarf", d.String("side"), d.Int("m"), d.Int("n"), d.DoubleArray("v", d.InOut), d.Int("incv"), d.Double("tau"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut)),
	d.Bound("dlarfb", d.String("side"), d.String("trans"), d.String("direct"), d.String("storev"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("ldwork")),
	d.Bound("dlarfg", d.Int("n"), d.DoubleW("alpha"), d.DoubleArray("x", d.InOut), d.Int("incx"), d.DoubleW("tau")),
	d.Bound("dlarft", d.String("direct"), d.String("storev"), d.Int("n"), d.Int("k"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("tau", d.InOut), d.DoubleArray("t", d.InOut), d.Int("ldt")),
	d.Bound("dlarfx", d.String("side"), d.Int("m"), d.Int("n"), d.DoubleArray("v", d.InOut), d.Double("tau"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut)),
	d.Bound("dlargv", d.Int("n"), d.DoubleArray("x", d.InOut), d.Int("incx"), d.DoubleArray("y", d.InOut), d.Int("incy"), d.DoubleArray("c", d.InOut), d.Int("incc")),
	d.Bound("dlarnv", d.Int("idist"), d.IntArray("iseed", d.InOut), d.Int("n"), d.DoubleArray("x", d.InOut)),
	d.Bound("dlarra", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("e2", d.InOut), d.Double("spltol"), d.Double("tnrm"), d.IntW("nsplit"), d.IntArray("isplit", d.InOut), d.IntW("info")),
	d.Bound("dlarrb", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("lld", d.InOut), d.Int("ifirst"), d.Int("ilast"), d.Double("rtol1"), d.Double("rtol2"), d.Int("offset"), d.DoubleArray("w", d.InOut), d.DoubleArray("wgap", d.InOut), d.DoubleArray("werr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.Double("pivmin"), d.Double("spdiam"), d.Int("twist"), d.IntW("info")),
	d.Bound("dlarrc", d.String("jobt"), d.Int("n"), d.Double("vl"), d.Double("vu"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.Double("pivmin"), d.IntW("eigcnt"), d.IntW("lcnt"), d.IntW("rcnt"), d.IntW("info")),
	d.Bound("dlarrd", d.String("range"), d.String("order"), d.Int("n"), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.DoubleArray("gers", d.InOut), d.Double("reltol"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("e2", d.InOut), d.Double("pivmin"), d.Int("nsplit"), d.IntArray("isplit", d.InOut), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("werr", d.InOut), d.DoubleW("wl"), d.DoubleW("wu"), d.IntArray("iblock", d.InOut), d.IntArray("indexw", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlarre", d.String("range"), d.Int("n"), d.DoubleW("vl"), d.DoubleW("vu"), d.Int("il"), d.Int("iu"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("e2", d.InOut), d.Double("rtol1"), d.Double("rtol2"), d.Double("spltol"), d.IntW("nsplit"), d.IntArray("isplit", d.InOut), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("werr", d.InOut), d.DoubleArray("wgap", d.InOut), d.IntArray("iblock", d.InOut), d.IntArray("indexw", d.InOut), d.DoubleArray("gers", d.InOut), d.DoubleW("pivmin"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlarrf", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("l", d.InOut), d.DoubleArray("ld", d.InOut), d.Int("clstrt"), d.Int("clend"), d.DoubleArray("w", d.InOut), d.DoubleArray("wgap", d.InOut), d.DoubleArray("werr", d.InOut), d.Double("spdiam"), d.Double("clgapl"), d.Double("clgapr"), d.Double("pivmin"), d.DoubleW("sigma"), d.DoubleArray("dplus", d.InOut), d.DoubleArray("lplus", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlarrj", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e2", d.InOut), d.Int("ifirst"), d.Int("ilast"), d.Double("rtol"), d.Int("offset"), d.DoubleArray("w", d.InOut), d.DoubleArray("werr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.Double("pivmin"), d.Double("spdiam"), d.IntW("info")),
	d.Bound("dlarrk", d.Int("n"), d.Int("iw"), d.Double("gl"), d.Double("gu"), d.DoubleArray("d", d.InOut), d.DoubleArray("e2", d.InOut), d.Double("pivmin"), d.Double("reltol"), d.DoubleW("w"), d.DoubleW("werr"), d.IntW("info")),
	d.Bound("dlarrr", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.IntW("info")),
	d.Bound("dlarrv", d.Int("n"), d.Double("vl"), d.Double("vu"), d.DoubleArray("d", d.InOut), d.DoubleArray("l", d.InOut), d.Double("pivmin"), d.IntArray("isplit", d.InOut), d.Int("m"), d.Int("dol"), d.Int("dou"), d.Double("minrgp"), d.DoubleW("rtol1"), d.DoubleW("rtol2"), d.DoubleArray("w", d.InOut), d.DoubleArray("werr", d.InOut), d.DoubleArray("wgap", d.InOut), d.IntArray("iblock", d.InOut), d.IntArray("indexw", d.InOut), d.DoubleArray("gers", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntArray("isuppz", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlartg", d.Double("f"), d.Double("g"), d.DoubleW("cs"), d.DoubleW("sn"), d.DoubleW("r")),
	d.Bound("dlartv", d.Int("n"), d.DoubleArray("x", d.InOut), d.Int("incx"), d.DoubleArray("y", d.InOut), d.Int("incy"), d.DoubleArray("c", d.InOut), d.DoubleArray("s", d.InOut), d.Int("incc")),
	d.Bound("dlaruv", d.IntArray("iseed", d.InOut), d.Int("n"), d.DoubleArray("x", d.InOut)),
	d.Bound("dlarz", d.String("side"), d.Int("m"), d.Int("n"), d.Int("l"), d.DoubleArray("v", d.InOut), d.Int("incv"), d.Double("tau"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut)),
	d.Bound("dlarzb", d.String("side"), d.String("trans"), d.String("direct"), d.String("storev"), d.Int("m"), d.Int("n"), d.Int("k"), d.Int("l"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("ldwork")),
	d.Bound("dlarzt", d.String("direct"), d.String("storev"), d.Int("n"), d.Int("k"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("tau", d.InOut), d.DoubleArray("t", d.InOut), d.Int("ldt")),
	d.Bound("dlas2", d.Double("f"), d.Double("g"), d.Double("h"), d.DoubleW("ssmin"), d.DoubleW("ssmax")),
	d.Bound("dlascl", d.String("type"), d.Int("kl"), d.Int("ku"), d.Double("cfrom"), d.Double("cto"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("dlasd0", d.Int("n"), d.Int("sqre"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.Int("smlsiz"), d.IntArray("iwork", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlasd1", d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.DoubleArray("d", d.InOut), d.DoubleW("alpha"), d.DoubleW("beta"), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.IntArray("idxq", d.InOut), d.IntArray("iwork", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlasd2", d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.IntW("k"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.Double("alpha"), d.Double("beta"), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.DoubleArray("dsigma", d.InOut), d.DoubleArray("u2", d.InOut), d.Int("ldu2"), d.DoubleArray("vt2", d.InOut), d.Int("ldvt2"), d.IntArray("idxp", d.InOut), d.IntArray("idx", d.InOut), d.IntArray("idxc", d.InOut), d.IntArray("idxq", d.InOut), d.IntArray("coltyp", d.InOut), d.IntW("info")),
	d.Bound("dlasd3", d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.Int("k"), d.DoubleArray("d", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("dsigma", d.InOut), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("u2", d.InOut), d.Int("ldu2"), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.DoubleArray("vt2", d.InOut), d.Int("ldvt2"), d.IntArray("idxc", d.InOut), d.IntArray("ctot", d.InOut), d.DoubleArray("z", d.InOut), d.IntW("info")),
	d.Bound("dlasd4", d.Int("n"), d.Int("i"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("delta", d.InOut), d.Double("rho"), d.DoubleW("sigma"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlasd5", d.Int("i"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("delta", d.InOut), d.Double("rho"), d.DoubleW("dsigma"), d.DoubleArray("work", d.InOut)),
	d.Bound("dlasd6", d.Int("icompq"), d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.DoubleArray("d", d.InOut), d.DoubleArray("vf", d.InOut), d.DoubleArray("vl", d.InOut), d.DoubleW("alpha"), d.DoubleW("beta"), d.IntArray("idxq", d.InOut), d.IntArray("perm", d.InOut), d.IntW("givptr"), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.DoubleArray("givnum", d.InOut), d.Int("ldgnum"), d.DoubleArray("poles", d.InOut), d.DoubleArray("difl", d.InOut), d.DoubleArray("difr", d.InOut), d.DoubleArray("z", d.InOut), d.IntW("k"), d.DoubleW("c"), d.DoubleW("s"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlasd7", d.Int("icompq"), d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.IntW("k"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("zw", d.InOut), d.DoubleArray("vf", d.InOut), d.DoubleArray("vfw", d.InOut), d.DoubleArray("vl", d.InOut), d.DoubleArray("vlw", d.InOut), d.Double("alpha"), d.Double("beta"), d.DoubleArray("dsigma", d.InOut), d.IntArray("idx", d.InOut), d.IntArray("idxp", d.InOut), d.IntArray("idxq", d.InOut), d.IntArray("perm", d.InOut), d.IntW("givptr"), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.DoubleArray("givnum", d.InOut), d.Int("ldgnum"), d.DoubleW("c"), d.DoubleW("s"), d.IntW("info")),
	d.Bound("dlasd8", d.Int("icompq"), d.Int("k"), d.DoubleArray("d", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("vf", d.InOut), d.DoubleArray("vl", d.InOut), d.DoubleArray("difl", d.InOut), d.DoubleArray("difr", d.InOut), d.Int("lddifr"), d.DoubleArray("dsigma", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlasda", d.Int("icompq"), d.Int("smlsiz"), d.Int("n"), d.Int("sqre"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("vt", d.InOut), d.IntArray("k", d.InOut), d.DoubleArray("difl", d.InOut), d.DoubleArray("difr", d.InOut), d.DoubleArray("z", d.InOut), d.DoubleArray("poles", d.InOut), d.IntArray("givptr", d.InOut), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.IntArray("perm", d.InOut), d.DoubleArray("givnum", d.InOut), d.DoubleArray("c", d.InOut), d.DoubleArray("s", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dlasdq", d.String("uplo"), d.Int("sqre"), d.Int("n"), d.Int("ncvt"), d.Int("nru"), d.Int("ncc"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("vt", d.InOut), d.Int("ldvt"), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlasdt", d.Int("n"), d.IntW("lvl"), d.IntW("nd"), d.IntArray("inode", d.InOut), d.IntArray("ndiml", d.InOut), d.IntArray("ndimr", d.InOut), d.Int("msub")),
	d.Bound("dlaset", d.String("uplo"), d.Int("m"), d.Int("n"), d.Double("alpha"), d.Double("beta"), d.DoubleArray("a", d.InOut), d.Int("lda")),
	d.Bound("dlasq1", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dlasq2", d.Int("n"), d.DoubleArray("z", d.InOut), d.IntW("info")),
	d.Bound("dlasq3", d.Int("i0"), d.IntW("n0"), d.DoubleArray("z", d.InOut), d.Int("pp"), d.DoubleW("dmin"), d.DoubleW("sigma"), d.DoubleW("desig"), d.DoubleW("qmax"), d.IntW("nfail"), d.IntW("iter"), d.IntW("ndiv"), d.Boolean("ieee")),
	d.Bound("dlasq4", d.Int("i0"), d.Int("n0"), d.DoubleArray("z", d.InOut), d.Int("pp"), d.Int("n0in"), d.Double("dmin"), d.Double("dmin1"), d.Double("dmin2"), d.Double("dn"), d.Double("dn1"), d.Double("dn2"), d.DoubleW("tau"), d.IntW("ttype")),
	d.Bound("dlasq5", d.Int("i0"), d.Int("n0"), d.DoubleArray("z", d.InOut), d.Int("pp"), d.Double("tau"), d.DoubleW("dmin"), d.DoubleW("dmin1"), d.DoubleW("dmin2"), d.DoubleW("dn"), d.DoubleW("dnm1"), d.DoubleW("dnm2"), d.Boolean("ieee")),
	d.Bound("dlasq6", d.Int("i0"), d.Int("n0"), d.DoubleArray("z", d.InOut), d.Int("pp"), d.DoubleW("dmin"), d.DoubleW("dmin1"), d.DoubleW("dmin2"), d.DoubleW("dn"), d.DoubleW("dnm1"), d.DoubleW("dnm2")),
	d.Bound("dlasr", d.String("side"), d.String("pivot"), d.String("direct"), d.Int("m"), d.Int("n"), d.DoubleArray("c", d.InOut), d.DoubleArray("s", d.InOut), d.DoubleArray("a", d.InOut), d.Int("lda")),
	d.Bound("dlasrt", d.String("id"), d.Int("n"), d.DoubleArray("d", d.InOut), d.IntW("info")),
	d.Bound("dlassq", d.Int("n"), d.DoubleArray("x", d.InOut), d.Int("incx"), d.DoubleW("scale"), d.DoubleW("sumsq")),
	d.Bound("dlasv2", d.Double("f"), d.Double("g"), d.Double("h"), d.DoubleW("ssmin"), d.DoubleW("ssmax"), d.DoubleW("snr"), d.DoubleW("csr"), d.DoubleW("snl"), d.DoubleW("csl")),
	d.Bound("dlaswp", d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.Int("k1"), d.Int("k2"), d.IntArray("ipiv", d.InOut), d.Int("incx")),
	d.Bound("dlasy2", d.Boolean("ltranl"), d.Boolean("ltranr"), d.Int("isgn"), d.Int("n1"), d.Int("n2"), d.DoubleArray("tl", d.InOut), d.Int("ldtl"), d.DoubleArray("tr", d.InOut), d.Int("ldtr"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleW("scale"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("xnorm"), d.IntW("info")),
	d.Bound("dlasyf", d.String("uplo"), d.Int("n"), d.Int("nb"), d.IntW("kb"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("w", d.InOut), d.Int("ldw"), d.IntW("info")),
	d.Bound("dlatbs", d.String("uplo"), d.String("trans"), d.String("diag"), d.String("normin"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("x", d.InOut), d.DoubleW("scale"), d.DoubleArray("cnorm", d.InOut), d.IntW("info")),
	d.Bound("dlatdf", d.Int("ijob"), d.Int("n"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("rhs", d.InOut), d.DoubleW("rdsum"), d.DoubleW("rdscal"), d.IntArray("ipiv", d.InOut), d.IntArray("jpiv", d.InOut)),
	d.Bound("dlatps", d.String("uplo"), d.String("trans"), d.String("diag"), d.String("normin"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("x", d.InOut), d.DoubleW("scale"), d.DoubleArray("cnorm", d.InOut), d.IntW("info")),
	d.Bound("dlatrd", d.String("uplo"), d.Int("n"), d.Int("nb"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("e", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("w", d.InOut), d.Int("ldw")),
	d.Bound("dlatrs", d.String("uplo"), d.String("trans"), d.String("diag"), d.String("normin"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("x", d.InOut), d.DoubleW("scale"), d.DoubleArray("cnorm", d.InOut), d.IntW("info")),
	d.Bound("dlatrz", d.Int("m"), d.Int("n"), d.Int("l"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut)),
	d.Bound("dlatzm", d.String("side"), d.Int("m"), d.Int("n"), d.DoubleArray("v", d.InOut), d.Int("incv"), d.Double("tau"), d.DoubleArray("c1", d.InOut), d.DoubleArray("c2", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut)),
	d.Bound("dlauu2", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("dlauum", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Stub("dlazq3", d.Int("i0"), d.IntW("n0"), d.DoubleArray("z", d.InOut), d.Int("pp"), d.DoubleW("dmin"), d.DoubleW("sigma"), d.DoubleW("desig"), d.DoubleW("qmax"), d.IntW("nfail"), d.IntW("iter"), d.IntW("ndiv"), d.Boolean("ieee"), d.IntW("ttype"), d.DoubleW("dmin1"), d.DoubleW("dmin2"), d.DoubleW("dn"), d.DoubleW("dn1"), d.DoubleW("dn2"), d.DoubleW("tau")),
	d.Stub("dlazq4", d.Int("i0"), d.Int("n0"), d.DoubleArray("z", d.InOut), d.Int("pp"), d.Int("n0in"), d.Double("dmin"), d.Double("dmin1"), d.Double("dmin2"), d.Double("dn"), d.Double("dn1"), d.Double("dn2"), d.DoubleW("tau"), d.IntW("ttype"), d.DoubleW("g")),
	d.Bound("dopgtr", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dopmtr", d.String("side"), d.String("uplo"), d.String("trans"), d.Int("m"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dorg2l", d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dorg2r", d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dorgbr", d.String("vect"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dorghr", d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dorgl2", d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dorglq", d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dorgql", d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dorgqr", d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dorgr2", d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dorgrq", d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dorgtr", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dorm2l", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dorm2r", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dormbr", d.String("vect"), d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dormhr", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dorml2", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dormlq", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dormql", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dormqr", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dormr2", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dormr3", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.Int("l"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dormrq", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dormrz", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.Int("l"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dormtr", d.String("side"), d.String("uplo"), d.String("trans"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dpbcon", d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dpbequ", d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("s", d.InOut), d.DoubleW("scond"), d.DoubleW("amax"), d.IntW("info")),
	d.Bound("dpbrfs", d.String("uplo"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("afb", d.InOut), d.Int("ldafb"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dpbstf", d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.IntW("info")),
	d.Bound("dpbsv", d.String("uplo"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dpbsvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("afb", d.InOut), d.Int("ldafb"), d.StringW("equed"), d.DoubleArray("s", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dpbtf2", d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.IntW("info")),
	d.Bound("dpbtrf", d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.IntW("info")),
	d.Bound("dpbtrs", d.String("uplo"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dpocon", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dpoequ", d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("s", d.InOut), d.DoubleW("scond"), d.DoubleW("amax"), d.IntW("info")),
	d.Bound("dporfs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("af", d.InOut), d.Int("ldaf"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dposv", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dposvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("af", d.InOut), d.Int("ldaf"), d.StringW("equed"), d.DoubleArray("s", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dpotf2", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("dpotrf", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("dpotri", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("dpotrs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dppcon", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dppequ", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("s", d.InOut), d.DoubleW("scond"), d.DoubleW("amax"), d.IntW("info")),
	d.Bound("dpprfs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.DoubleArray("afp", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dppsv", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dppsvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.DoubleArray("afp", d.InOut), d.StringW("equed"), d.DoubleArray("s", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dpptrf", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.IntW("info")),
	d.Bound("dpptri", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.IntW("info")),
	d.Bound("dpptrs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dptcon", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dpteqr", d.String("compz"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dptrfs", d.Int("n"), d.Int("nrhs"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("df", d.InOut), d.DoubleArray("ef", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dptsv", d.Int("n"), d.Int("nrhs"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dptsvx", d.String("fact"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("df", d.InOut), d.DoubleArray("ef", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dpttrf", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.IntW("info")),
	d.Bound("dpttrs", d.Int("n"), d.Int("nrhs"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dptts2", d.Int("n"), d.Int("nrhs"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb")),
	d.Bound("drscl", d.Int("n"), d.Double("sa"), d.DoubleArray("sx", d.InOut), d.Int("incx")),
	d.Bound("dsbev", d.String("jobz"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dsbevd", d.String("jobz"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dsbevx", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("dsbgst", d.String("vect"), d.String("uplo"), d.Int("n"), d.Int("ka"), d.Int("kb"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("bb", d.InOut), d.Int("ldbb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dsbgv", d.String("jobz"), d.String("uplo"), d.Int("n"), d.Int("ka"), d.Int("kb"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("bb", d.InOut), d.Int("ldbb"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dsbgvd", d.String("jobz"), d.String("uplo"), d.Int("n"), d.Int("ka"), d.Int("kb"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("bb", d.InOut), d.Int("ldbb"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dsbgvx", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.Int("ka"), d.Int("kb"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("bb", d.InOut), d.Int("ldbb"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("dsbtrd", d.String("vect"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dsgesv", d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("work", d.InOut), d.FloatArray("swork", d.InOut), d.IntW("iter"), d.IntW("info")),
	d.Bound("dspcon", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dspev", d.String("jobz"), d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dspevd", d.String("jobz"), d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dspevx", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("dspgst", d.Int("itype"), d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("bp", d.InOut), d.IntW("info")),
	d.Bound("dspgv", d.Int("itype"), d.String("jobz"), d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("bp", d.InOut), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dspgvd", d.Int("itype"), d.String("jobz"), d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("bp", d.InOut), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dspgvx", d.Int("itype"), d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("bp", d.InOut), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("dsprfs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.DoubleArray("afp", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dspsv", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dspsvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.DoubleArray("afp", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dsptrd", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("tau", d.InOut), d.IntW("info")),
	d.Bound("dsptrf", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("dsptri", d.String("uplo"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dsptrs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dstebz", d.String("range"), d.String("order"), d.Int("n"), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.IntW("m"), d.IntW("nsplit"), d.DoubleArray("w", d.InOut), d.IntArray("iblock", d.InOut), d.IntArray("isplit", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dstedc", d.String("compz"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dstegr", d.String("jobz"), d.String("range"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntArray("isuppz", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dstein", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.Int("m"), d.DoubleArray("w", d.InOut), d.IntArray("iblock", d.InOut), d.IntArray("isplit", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("dstemr", d.String("jobz"), d.String("range"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.Int("nzc"), d.IntArray("isuppz", d.InOut), d.BooleanW("tryrac"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dsteqr", d.String("compz"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dsterf", d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.IntW("info")),
	d.Bound("dstev", d.String("jobz"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dstevd", d.String("jobz"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dstevr", d.String("jobz"), d.String("range"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntArray("isuppz", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dstevx", d.String("jobz"), d.String("range"), d.Int("n"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("dsycon", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.Double("anorm"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dsyev", d.String("jobz"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("w", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dsyevd", d.String("jobz"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("w", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dsyevr", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntArray("isuppz", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dsyevx", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("dsygs2", d.Int("itype"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dsygst", d.Int("itype"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dsygv", d.Int("itype"), d.String("jobz"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("w", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dsygvd", d.Int("itype"), d.String("jobz"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("w", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dsygvx", d.Int("itype"), d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.Double("vl"), d.Double("vu"), d.Int("il"), d.Int("iu"), d.Double("abstol"), d.IntW("m"), d.DoubleArray("w", d.InOut), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("dsyrfs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("af", d.InOut), d.Int("ldaf"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dsysv", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dsysvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("af", d.InOut), d.Int("ldaf"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleW("rcond"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dsytd2", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("tau", d.InOut), d.IntW("info")),
	d.Bound("dsytf2", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("dsytrd", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("d", d.InOut), d.DoubleArray("e", d.InOut), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dsytrf", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dsytri", d.String("uplo"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dsytrs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dtbcon", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.Int("kd"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtbrfs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtbtrs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.DoubleArray("ab", d.InOut), d.Int("ldab"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dtgevc", d.String("side"), d.String("howmny"), d.BooleanArray("select"), d.Int("n"), d.DoubleArray("s", d.InOut), d.Int("lds"), d.DoubleArray("p", d.InOut), d.Int("ldp"), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.Int("mm"), d.IntW("m"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dtgex2", d.Boolean("wantq"), d.Boolean("wantz"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.Int("j1"), d.Int("n1"), d.Int("n2"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dtgexc", d.Boolean("wantq"), d.Boolean("wantz"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntW("ifst"), d.IntW("ilst"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("dtgsen", d.Int("ijob"), d.Boolean("wantq"), d.Boolean("wantz"), d.BooleanArray("select"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("alphar", d.InOut), d.DoubleArray("alphai", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("z", d.InOut), d.Int("ldz"), d.IntW("m"), d.DoubleW("pl"), d.DoubleW("pr"), d.DoubleArray("dif", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dtgsja", d.String("jobu"), d.String("jobv"), d.String("jobq"), d.Int("m"), d.Int("p"), d.Int("n"), d.Int("k"), d.Int("l"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.Double("tola"), d.Double("tolb"), d.DoubleArray("alpha", d.InOut), d.DoubleArray("beta", d.InOut), d.DoubleArray("u", d.InOut), d.Int("ldu"), d.DoubleArray("v", d.InOut), d.Int("ldv"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("work", d.InOut), d.IntW("ncycle"), d.IntW("info")),
	d.Bound("dtgsna", d.String("job"), d.String("howmny"), d.BooleanArray("select"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.DoubleArray("s", d.InOut), d.DoubleArray("dif", d.InOut), d.Int("mm"), d.IntW("m"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtgsy2", d.String("trans"), d.Int("ijob"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("d", d.InOut), d.Int("ldd"), d.DoubleArray("e", d.InOut), d.Int("lde"), d.DoubleArray("f", d.InOut), d.Int("ldf"), d.DoubleW("scale"), d.DoubleW("rdsum"), d.DoubleW("rdscal"), d.IntArray("iwork", d.InOut), d.IntW("pq"), d.IntW("info")),
	d.Bound("dtgsyl", d.String("trans"), d.Int("ijob"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleArray("d", d.InOut), d.Int("ldd"), d.DoubleArray("e", d.InOut), d.Int("lde"), d.DoubleArray("f", d.InOut), d.Int("ldf"), d.DoubleW("scale"), d.DoubleW("dif"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtpcon", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtprfs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtptri", d.String("uplo"), d.String("diag"), d.Int("n"), d.DoubleArray("ap", d.InOut), d.IntW("info")),
	d.Bound("dtptrs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("ap", d.InOut), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dtrcon", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleW("rcond"), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtrevc", d.String("side"), d.String("howmny"), d.BooleanArray("select"), d.Int("n"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.Int("mm"), d.IntW("m"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dtrexc", d.String("compq"), d.Int("n"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.IntW("ifst"), d.IntW("ilst"), d.DoubleArray("work", d.InOut), d.IntW("info")),
	d.Bound("dtrrfs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("x", d.InOut), d.Int("ldx"), d.DoubleArray("ferr", d.InOut), d.DoubleArray("berr", d.InOut), d.DoubleArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtrsen", d.String("job"), d.String("compq"), d.BooleanArray("select"), d.Int("n"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("q", d.InOut), d.Int("ldq"), d.DoubleArray("wr", d.InOut), d.DoubleArray("wi", d.InOut), d.IntW("m"), d.DoubleW("s"), d.DoubleW("sep"), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("dtrsna", d.String("job"), d.String("howmny"), d.BooleanArray("select"), d.Int("n"), d.DoubleArray("t", d.InOut), d.Int("ldt"), d.DoubleArray("vl", d.InOut), d.Int("ldvl"), d.DoubleArray("vr", d.InOut), d.Int("ldvr"), d.DoubleArray("s", d.InOut), d.DoubleArray("sep", d.InOut), d.Int("mm"), d.IntW("m"), d.DoubleArray("work", d.InOut), d.Int("ldwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("dtrsyl", d.String("trana"), d.String("tranb"), d.Int("isgn"), d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.DoubleArray("c", d.InOut), d.Int("Ldc"), d.DoubleW("scale"), d.IntW("info")),
	d.Bound("dtrti2", d.String("uplo"), d.String("diag"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("dtrtri", d.String("uplo"), d.String("diag"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("dtrtrs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("nrhs"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("dtzrqf", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.IntW("info")),
	d.Bound("dtzrzf", d.Int("m"), d.Int("n"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.DoubleArray("tau", d.InOut), d.DoubleArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.BoundR(abi.Int, "ieeeck", d.Int("ispec"), d.Float("zero"), d.Float("one")),
	d.BoundR(abi.Int, "ilaenv", d.Int("ispec"), d.String("name"), d.String("opts"), d.Int("n1"), d.Int("n2"), d.Int("n3"), d.Int("n4")),
	d.Bound("ilaver", d.IntW("vers_major"), d.IntW("vers_minor"), d.IntW("vers_patch")),
	d.BoundR(abi.Int, "iparmq", d.Int("ispec"), d.String("name"), d.String("opts"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.Int("lwork")),
	d.BoundR(abi.Boolean, "lsamen", d.Int("n"), d.String("ca"), d.String("cb")),
	d.Bound("sbdsdc", d.String("uplo"), d.String("compq"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.FloatArray("q", d.InOut), d.IntArray("iq", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sbdsqr", d.String("uplo"), d.Int("n"), d.Int("ncvt"), d.Int("nru"), d.Int("ncc"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sdisna", d.String("job"), d.Int("m"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("sep", d.InOut), d.IntW("info")),
	d.Bound("sgbbrd", d.String("vect"), d.Int("m"), d.Int("n"), d.Int("ncc"), d.Int("kl"), d.Int("ku"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("pt", d.InOut), d.Int("ldpt"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgbcon", d.String("norm"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgbequ", d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("r", d.InOut), d.FloatArray("c", d.InOut), d.FloatW("rowcnd"), d.FloatW("colcnd"), d.FloatW("amax"), d.IntW("info")),
	d.Bound("sgbrfs", d.String("trans"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("afb", d.InOut), d.Int("ldafb"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgbsv", d.Int("n"), d.Int("kl"), d.Int("ku"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sgbsvx", d.String("fact"), d.String("trans"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("afb", d.InOut), d.Int("ldafb"), d.IntArray("ipiv", d.InOut), d.StringW("equed"), d.FloatArray("r", d.InOut), d.FloatArray("c", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgbtf2", d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("sgbtrf", d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("sgbtrs", d.String("trans"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sgebak", d.String("job"), d.String("side"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("scale", d.InOut), d.Int("m"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.IntW("info")),
	d.Bound("sgebal", d.String("job"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("ilo"), d.IntW("ihi"), d.FloatArray("scale", d.InOut), d.IntW("info")),
	d.Bound("sgebd2", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("tauq", d.InOut), d.FloatArray("taup", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgebrd", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("tauq", d.InOut), d.FloatArray("taup", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgecon", d.String("norm"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgeequ", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("r", d.InOut), d.FloatArray("c", d.InOut), d.FloatW("rowcnd"), d.FloatW("colcnd"), d.FloatW("amax"), d.IntW("info")),
	d.Stub("sgees", d.String("jobvs"), d.String("sort"), d.Object("select"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("sdim"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.FloatArray("vs", d.InOut), d.Int("ldvs"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.BooleanArray("bwork"), d.IntW("info")),
	d.Stub("sgeesx", d.String("jobvs"), d.String("sort"), d.Object("select"), d.String("sense"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("sdim"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.FloatArray("vs", d.InOut), d.Int("ldvs"), d.FloatW("rconde"), d.FloatW("rcondv"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.BooleanArray("bwork"), d.IntW("info")),
	d.Bound("sgeev", d.String("jobvl"), d.String("jobvr"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgeevx", d.String("balanc"), d.String("jobvl"), d.String("jobvr"), d.String("sense"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.IntW("ilo"), d.IntW("ihi"), d.FloatArray("scale", d.InOut), d.FloatW("abnrm"), d.FloatArray("rconde", d.InOut), d.FloatArray("rcondv", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgegs", d.String("jobvsl"), d.String("jobvsr"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("vsl", d.InOut), d.Int("ldvsl"), d.FloatArray("vsr", d.InOut), d.Int("ldvsr"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgegv", d.String("jobvl"), d.String("jobvr"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgehd2", d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgehrd", d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgelq2", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgelqf", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgels", d.String("trans"), d.Int("m"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgelsd", d.Int("m"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("s", d.InOut), d.Float("rcond"), d.IntW("rank"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgelss", d.Int("m"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("s", d.InOut), d.Float("rcond"), d.IntW("rank"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgelsx", d.Int("m"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntArray("jpvt", d.InOut), d.Float("rcond"), d.IntW("rank"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgelsy", d.Int("m"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntArray("jpvt", d.InOut), d.Float("rcond"), d.IntW("rank"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgeql2", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgeqlf", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgeqp3", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("jpvt", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgeqpf", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("jpvt", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgeqr2", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgeqrf", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgerfs", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("af", d.InOut), d.Int("ldaf"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgerq2", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgerqf", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgesc2", d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("rhs", d.InOut), d.IntArray("ipiv", d.InOut), d.IntArray("jpiv", d.InOut), d.FloatW("scale")),
	d.Bound("sgesdd", d.String("jobz"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("s", d.InOut), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgesv", d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sgesvd", d.String("jobu"), d.String("jobvt"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("s", d.InOut), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgesvx", d.String("fact"), d.String("trans"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("af", d.InOut), d.Int("ldaf"), d.IntArray("ipiv", d.InOut), d.StringW("equed"), d.FloatArray("r", d.InOut), d.FloatArray("c", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgetc2", d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.IntArray("jpiv", d.InOut), d.IntW("info")),
	d.Bound("sgetf2", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("sgetrf", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("sgetri", d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgetrs", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sggbak", d.String("job"), d.String("side"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("lscale", d.InOut), d.FloatArray("rscale", d.InOut), d.Int("m"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.IntW("info")),
	d.Bound("sggbal", d.String("job"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("ilo"), d.IntW("ihi"), d.FloatArray("lscale", d.InOut), d.FloatArray("rscale", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Stub("sgges", d.String("jobvsl"), d.String("jobvsr"), d.String("sort"), d.Object("selctg"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("sdim"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("vsl", d.InOut), d.Int("ldvsl"), d.FloatArray("vsr", d.InOut), d.Int("ldvsr"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.BooleanArray("bwork"), d.IntW("info")),
	d.Stub("sggesx", d.String("jobvsl"), d.String("jobvsr"), d.String("sort"), d.Object("selctg"), d.String("sense"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("sdim"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("vsl", d.InOut), d.Int("ldvsl"), d.FloatArray("vsr", d.InOut), d.Int("ldvsr"), d.FloatArray("rconde", d.InOut), d.FloatArray("rcondv", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.BooleanArray("bwork"), d.IntW("info")),
	d.Bound("sggev", d.String("jobvl"), d.String("jobvr"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sggevx", d.String("balanc"), d.String("jobvl"), d.String("jobvr"), d.String("sense"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.IntW("ilo"), d.IntW("ihi"), d.FloatArray("lscale", d.InOut), d.FloatArray("rscale", d.InOut), d.FloatW("abnrm"), d.FloatW("bbnrm"), d.FloatArray("rconde", d.InOut), d.FloatArray("rcondv", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.BooleanArray("bwork"), d.IntW("info")),
	d.Bound("sggglm", d.Int("n"), d.Int("m"), d.Int("p"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("d", d.InOut), d.FloatArray("x", d.InOut), d.FloatArray("y", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sgghrd", d.String("compq"), d.String("compz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntW("info")),
	d.Bound("sgglse", d.Int("m"), d.Int("n"), d.Int("p"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("c", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("x", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sggqrf", d.Int("n"), d.Int("m"), d.Int("p"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("taua", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("taub", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sggrqf", d.Int("m"), d.Int("p"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("taua", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("taub", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sggsvd", d.String("jobu"), d.String("jobv"), d.String("jobq"), d.Int("m"), d.Int("n"), d.Int("p"), d.IntW("k"), d.IntW("l"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("alpha", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sggsvp", d.String("jobu"), d.String("jobv"), d.String("jobq"), d.Int("m"), d.Int("p"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.Float("tola"), d.Float("tolb"), d.IntW("k"), d.IntW("l"), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.IntArray("iwork", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sgtcon", d.String("norm"), d.Int("n"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut), d.FloatArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgtrfs", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut), d.FloatArray("dlf", d.InOut), d.FloatArray("df", d.InOut), d.FloatArray("duf", d.InOut), d.FloatArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgtsv", d.Int("n"), d.Int("nrhs"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sgtsvx", d.String("fact"), d.String("trans"), d.Int("n"), d.Int("nrhs"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut), d.FloatArray("dlf", d.InOut), d.FloatArray("df", d.InOut), d.FloatArray("duf", d.InOut), d.FloatArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sgttrf", d.Int("n"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut), d.FloatArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("sgttrs", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut), d.FloatArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sgtts2", d.Int("itrans"), d.Int("n"), d.Int("nrhs"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut), d.FloatArray("du2", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb")),
	d.Bound("shgeqz", d.String("job"), d.String("compq"), d.String("compz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("shsein", d.String("side"), d.String("eigsrc"), d.String("initv"), d.BooleanArray("select"), d.Int("n"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.Int("mm"), d.IntW("m"), d.FloatArray("work", d.InOut), d.IntArray("ifaill", d.InOut), d.IntArray("ifailr", d.InOut), d.IntW("info")),
	d.Bound("shseqr", d.String("job"), d.String("compz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.BoundR(abi.Boolean, "sisnan", d.Float("sin")),
	d.Bound("slabad", d.FloatW("small"), d.FloatW("large")),
	d.Bound("slabrd", d.Int("m"), d.Int("n"), d.Int("nb"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("tauq", d.InOut), d.FloatArray("taup", d.InOut), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("y", d.InOut), d.Int("ldy")),
	d.Bound("slacn2", d.Int("n"), d.FloatArray("v", d.InOut), d.FloatArray("x", d.InOut), d.IntArray("isgn", d.InOut), d.FloatW("est"), d.IntW("kase"), d.IntArray("isave", d.InOut)),
	d.Bound("slacon", d.Int("n"), d.FloatArray("v", d.InOut), d.FloatArray("x", d.InOut), d.IntArray("isgn", d.InOut), d.FloatW("est"), d.IntW("kase")),
	d.Bound("slacpy", d.String("uplo"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb")),
	d.Bound("sladiv", d.Float("a"), d.Float("b"), d.Float("c"), d.Float("d"), d.FloatW("p"), d.FloatW("q")),
	d.Bound("slae2", d.Float("a"), d.Float("b"), d.Float("c"), d.FloatW("rt1"), d.FloatW("rt2")),
	d.Bound("slaebz", d.Int("ijob"), d.Int("nitmax"), d.Int("n"), d.Int("mmax"), d.Int("minp"), d.Int("nbmin"), d.Float("abstol"), d.Float("reltol"), d.Float("pivmin"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("e2", d.InOut), d.IntArray("nval", d.InOut), d.FloatArray("ab", d.InOut), d.FloatArray("c", d.InOut), d.IntW("mout"), d.IntArray("nab", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slaed0", d.Int("icompq"), d.Int("qsiz"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("qstore", d.InOut), d.Int("ldqs"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slaed1", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.IntArray("indxq", d.InOut), d.FloatW("rho"), d.Int("cutpnt"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slaed2", d.IntW("k"), d.Int("n"), d.Int("n1"), d.FloatArray("d", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.IntArray("indxq", d.InOut), d.FloatW("rho"), d.FloatArray("z", d.InOut), d.FloatArray("dlamda", d.InOut), d.FloatArray("w", d.InOut), d.FloatArray("q2", d.InOut), d.IntArray("indx", d.InOut), d.IntArray("indxc", d.InOut), d.IntArray("indxp", d.InOut), d.IntArray("coltyp", d.InOut), d.IntW("info")),
	d.Bound("slaed3", d.Int("k"), d.Int("n"), d.Int("n1"), d.FloatArray("d", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.Float("rho"), d.FloatArray("dlamda", d.InOut), d.FloatArray("q2", d.InOut), d.IntArray("indx", d.InOut), d.IntArray("ctot", d.InOut), d.FloatArray("w", d.InOut), d.FloatArray("s", d.InOut), d.IntW("info")),
	d.Bound("slaed4", d.Int("n"), d.Int("i"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("delta", d.InOut), d.Float("rho"), d.FloatW("dlam"), d.IntW("info")),
	d.Bound("slaed5", d.Int("i"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("delta", d.InOut), d.Float("rho"), d.FloatW("dlam")),
	d.Bound("slaed6", d.Int("kniter"), d.Boolean("orgati"), d.Float("rho"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.Float("finit"), d.FloatW("tau"), d.IntW("info")),
	d.Bound("slaed7", d.Int("icompq"), d.Int("n"), d.Int("qsiz"), d.Int("tlvls"), d.Int("curlvl"), d.Int("curpbm"), d.FloatArray("d", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.IntArray("indxq", d.InOut), d.FloatW("rho"), d.Int("cutpnt"), d.FloatArray("qstore", d.InOut), d.IntArray("qptr", d.InOut), d.IntArray("prmptr", d.InOut), d.IntArray("perm", d.InOut), d.IntArray("givptr", d.InOut), d.IntArray("givcol", d.InOut), d.FloatArray("givnum", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slaed8", d.Int("icompq"), d.IntW("k"), d.Int("n"), d.Int("qsiz"), d.FloatArray("d", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.IntArray("indxq", d.InOut), d.FloatW("rho"), d.Int("cutpnt"), d.FloatArray("z", d.InOut), d.FloatArray("dlamda", d.InOut), d.FloatArray("q2", d.InOut), d.Int("ldq2"), d.FloatArray("w", d.InOut), d.IntArray("perm", d.InOut), d.IntW("givptr"), d.IntArray("givcol", d.InOut), d.FloatArray("givnum", d.InOut), d.IntArray("indxp", d.InOut), d.IntArray("indx", d.InOut), d.IntW("info")),
	d.Bound("slaed9", d.Int("k"), d.Int("kstart"), d.Int("kstop"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.Float("rho"), d.FloatArray("dlamda", d.InOut), d.FloatArray("w", d.InOut), d.FloatArray("s", d.InOut), d.Int("lds"), d.IntW("info")),
	d.Bound("slaeda", d.Int("n"), d.Int("tlvls"), d.Int("curlvl"), d.Int("curpbm"), d.IntArray("prmptr", d.InOut), d.IntArray("perm", d.InOut), d.IntArray("givptr", d.InOut), d.IntArray("givcol", d.InOut), d.FloatArray("givnum", d.InOut), d.FloatArray("q", d.InOut), d.IntArray("qptr", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("ztemp", d.InOut), d.IntW("info")),
	d.Bound("slaein", d.Boolean("rightv"), d.Boolean("noinit"), d.Int("n"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.Float("wr"), d.Float("wi"), d.FloatArray("vr", d.InOut), d.FloatArray("vi", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("work", d.InOut), d.Float("eps3"), d.Float("smlnum"), d.Float("bignum"), d.IntW("info")),
	d.Bound("slaev2", d.Float("a"), d.Float("b"), d.Float("c"), d.FloatW("rt1"), d.FloatW("rt2"), d.FloatW("cs1"), d.FloatW("sn1")),
	d.Bound("slaexc", d.Boolean("wantq"), d.Int("n"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.Int("j1"), d.Int("n1"), d.Int("n2"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slag2", d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.Float("safmin"), d.FloatW("scale1"), d.FloatW("scale2"), d.FloatW("wr1"), d.FloatW("wr2"), d.FloatW("wi")),
	d.Bound("slag2d", d.Int("m"), d.Int("n"), d.FloatArray("sa", d.InOut), d.Int("ldsa"), d.DoubleArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("slags2", d.Boolean("upper"), d.Float("a1"), d.Float("a2"), d.Float("a3"), d.Float("b1"), d.Float("b2"), d.Float("b3"), d.FloatW("csu"), d.FloatW("snu"), d.FloatW("csv"), d.FloatW("snv"), d.FloatW("csq"), d.FloatW("snq")),
	d.Bound("slagtf", d.Int("n"), d.FloatArray("a", d.InOut), d.Float("lambda"), d.FloatArray("b", d.InOut), d.FloatArray("c", d.InOut), d.Float("tol"), d.FloatArray("d", d.InOut), d.IntArray("in", d.InOut), d.IntW("info")),
	d.Bound("slagtm", d.String("trans"), d.Int("n"), d.Int("nrhs"), d.Float("alpha"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut), d.FloatArray("x", d.InOut), d.Int("ldx"), d.Float("beta"), d.FloatArray("b", d.InOut), d.Int("ldb")),
	d.Bound("slagts", d.Int("job"), d.Int("n"), d.FloatArray("a", d.InOut), d.FloatArray("b", d.InOut), d.FloatArray("c", d.InOut), d.FloatArray("d", d.InOut), d.IntArray("in", d.InOut), d.FloatArray("y", d.InOut), d.FloatW("tol"), d.IntW("info")),
	d.Bound("slagv2", d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatW("csl"), d.FloatW("snl"), d.FloatW("csr"), d.FloatW("snr")),
	d.Bound("slahqr", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.Int("iloz"), d.Int("ihiz"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntW("info")),
	d.Bound("slahr2", d.Int("n"), d.Int("k"), d.Int("nb"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("y", d.InOut), d.Int("ldy")),
	d.Bound("slahrd", d.Int("n"), d.Int("k"), d.Int("nb"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("y", d.InOut), d.Int("ldy")),
	d.Bound("slaic1", d.Int("job"), d.Int("j"), d.FloatArray("x", d.InOut), d.Float("sest"), d.FloatArray("w", d.InOut), d.Float("gamma"), d.FloatW("sestpr"), d.FloatW("s"), d.FloatW("c")),
	d.BoundR(abi.Boolean, "slaisnan", d.Float("sin1"), d.Float("sin2")),
	d.Bound("slaln2", d.Boolean("ltrans"), d.Int("na"), d.Int("nw"), d.Float("smin"), d.Float("ca"), d.FloatArray("a", d.InOut), d.Int("lda"), d.Float("d1"), d.Float("d2"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.Float("wr"), d.Float("wi"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("scale"), d.FloatW("xnorm"), d.IntW("info")),
	d.Bound("slals0", d.Int("icompq"), d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.Int("nrhs"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("bx", d.InOut), d.Int("ldbx"), d.IntArray("perm", d.InOut), d.Int("givptr"), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.FloatArray("givnum", d.InOut), d.Int("ldgnum"), d.FloatArray("poles", d.InOut), d.FloatArray("difl", d.InOut), d.FloatArray("difr", d.InOut), d.FloatArray("z", d.InOut), d.Int("k"), d.Float("c"), d.Float("s"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slalsa", d.Int("icompq"), d.Int("smlsiz"), d.Int("n"), d.Int("nrhs"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("bx", d.InOut), d.Int("ldbx"), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("vt", d.InOut), d.IntArray("k", d.InOut), d.FloatArray("difl", d.InOut), d.FloatArray("difr", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("poles", d.InOut), d.IntArray("givptr", d.InOut), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.IntArray("perm", d.InOut), d.FloatArray("givnum", d.InOut), d.FloatArray("c", d.InOut), d.FloatArray("s", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slalsd", d.String("uplo"), d.Int("smlsiz"), d.Int("n"), d.Int("nrhs"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.Float("rcond"), d.IntW("rank"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slamrg", d.Int("n1"), d.Int("n2"), d.FloatArray("a", d.InOut), d.Int("strd1"), d.Int("strd2"), d.IntArray("index", d.InOut)),
	d.BoundR(abi.Int, "slaneg", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("lld", d.InOut), d.Float("sigma"), d.Float("pivmin"), d.Int("r")),
	d.BoundR(abi.Float, "slangb", d.String("norm"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("work", d.InOut)),
	d.BoundR(abi.Float, "slange", d.String("norm"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("work", d.InOut)),
	d.BoundR(abi.Float, "slangt", d.String("norm"), d.Int("n"), d.FloatArray("dl", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("du", d.InOut)),
	d.BoundR(abi.Float, "slanhs", d.String("norm"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("work", d.InOut)),
	d.BoundR(abi.Float, "slansb", d.String("norm"), d.String("uplo"), d.Int("n"), d.Int("k"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("work", d.InOut)),
	d.BoundR(abi.Float, "slansp", d.String("norm"), d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("work", d.InOut)),
	d.BoundR(abi.Float, "slanst", d.String("norm"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut)),
	d.BoundR(abi.Float, "slansy", d.String("norm"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("work", d.InOut)),
	d.BoundR(abi.Float, "slantb", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.Int("k"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("work", d.InOut)),
	d.BoundR(abi.Float, "slantp", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("work", d.InOut)),
	d.BoundR(abi.Float, "slantr", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("work", d.InOut)),
	d.Bound("slanv2", d.FloatW("a"), d.FloatW("b"), d.FloatW("c"), d.FloatW("d"), d.FloatW("rt1r"), d.FloatW("rt1i"), d.FloatW("rt2r"), d.FloatW("rt2i"), d.FloatW("cs"), d.FloatW("sn")),
	d.Bound("slapll", d.Int("n"), d.FloatArray("x", d.InOut), d.Int("incx"), d.FloatArray("y", d.InOut), d.Int("incy"), d.FloatW("ssmin")),
	d.Bound("slapmt", d.Boolean("forwrd"), d.Int("m"), d.Int("n"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.IntArray("k", d.InOut)),
	d.BoundR(abi.Float, "slapy2", d.Float("x"), d.Float("y")),
	d.BoundR(abi.Float, "slapy3", d.Float("x"), d.Float("y"), d.Float("z")),
	d.Bound("slaqgb", d.Int("m"), d.Int("n"), d.Int("kl"), d.Int("ku"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("r", d.InOut), d.FloatArray("c", d.InOut), d.Float("rowcnd"), d.Float("colcnd"), d.Float("amax"), d.StringW("equed")),
	d.Bound("slaqge", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("r", d.InOut), d.FloatArray("c", d.InOut), d.Float("rowcnd"), d.Float("colcnd"), d.Float("amax"), d.StringW("equed")),
	d.Bound("slaqp2", d.Int("m"), d.Int("n"), d.Int("offset"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("jpvt", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("vn1", d.InOut), d.FloatArray("vn2", d.InOut), d.FloatArray("work", d.InOut)),
	d.Bound("slaqps", d.Int("m"), d.Int("n"), d.Int("offset"), d.Int("nb"), d.IntW("kb"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("jpvt", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("vn1", d.InOut), d.FloatArray("vn2", d.InOut), d.FloatArray("auxv", d.InOut), d.FloatArray("f", d.InOut), d.Int("ldf")),
	d.Bound("slaqr0", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.Int("iloz"), d.Int("ihiz"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("slaqr1", d.Int("n"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.Float("sr1"), d.Float("si1"), d.Float("sr2"), d.Float("si2"), d.FloatArray("v", d.InOut)),
	d.Bound("slaqr2", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ktop"), d.Int("kbot"), d.Int("nw"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.Int("iloz"), d.Int("ihiz"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntW("ns"), d.IntW("nd"), d.FloatArray("sr", d.InOut), d.FloatArray("si", d.InOut), d.FloatArray("v", d.InOut), d.Int("ldv"), d.Int("nh"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.Int("nv"), d.FloatArray("wv", d.InOut), d.Int("ldwv"), d.FloatArray("work", d.InOut), d.Int("lwork")),
	d.Bound("slaqr3", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ktop"), d.Int("kbot"), d.Int("nw"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.Int("iloz"), d.Int("ihiz"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntW("ns"), d.IntW("nd"), d.FloatArray("sr", d.InOut), d.FloatArray("si", d.InOut), d.FloatArray("v", d.InOut), d.Int("ldv"), d.Int("nh"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.Int("nv"), d.FloatArray("wv", d.InOut), d.Int("ldwv"), d.FloatArray("work", d.InOut), d.Int("lwork")),
	d.Bound("slaqr4", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("h", d.InOut), d.Int("ldh"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.Int("iloz"), d.Int("ihiz"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("slaqr5", d.Boolean("wantt"), d.Boolean("wantz"), d.Int("kacc22"), d.Int("n"), d.Int("ktop"), d.Int("kbot"), d.Int("nshfts"), d.FloatArray("sr", d.InOut), d.FloatArray("si", d.InOut), d.FloatArray("h", d.InOut), d.Int("ldh"), d.Int("iloz"), d.Int("ihiz"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("u", d.InOut), d.Int("ldu"), d.Int("nv"), d.FloatArray("wv", d.InOut), d.Int("ldwv"), d.Int("nh"), d.FloatArray("wh", d.InOut), d.Int("ldwh")),
	d.Bound("slaqsb", d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("s", d.InOut), d.Float("scond"), d.Float("amax"), d.StringW("equed")),
	d.Bound("slaqsp", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("s", d.InOut), d.Float("scond"), d.Float("amax"), d.StringW("equed")),
	d.Bound("slaqsy", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("s", d.InOut), d.Float("scond"), d.Float("amax"), d.StringW("equed")),
	d.Bound("slaqtr", d.Boolean("ltran"), d.Boolean("lreal"), d.Int("n"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("b", d.InOut), d.Float("w"), d.FloatW("scale"), d.FloatArray("x", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slar1v", d.Int("n"), d.Int("b1"), d.Int("bn"), d.Float("lambda"), d.FloatArray("d", d.InOut), d.FloatArray("l", d.InOut), d.FloatArray("ld", d.InOut), d.FloatArray("lld", d.InOut), d.Float("pivmin"), d.Float("gaptol"), d.FloatArray("z", d.InOut), d.Boolean("wantnc"), d.IntW("negcnt"), d.FloatW("ztz"), d.FloatW("mingma"), d.IntW("r"), d.IntArray("isuppz", d.InOut), d.FloatW("nrminv"), d.FloatW("resid"), d.FloatW("rqcorr"), d.FloatArray("work", d.InOut)),
	d.Bound("slar2v", d.Int("n"), d.FloatArray("x", d.InOut), d.FloatArray("y", d.InOut), d.FloatArray("z", d.InOut), d.Int("incx"), d.FloatArray("c", d.InOut), d.FloatArray("s", d.InOut), d.Int("incc")),
	d.Bound("slarf", d.String("side"), d.Int("m"), d.Int("n"), d.FloatArray("v", d.InOut), d.Int("incv"), d.Float("tau"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut)),
	d.Bound("slarfb", d.String("side"), d.String("trans"), d.String("direct"), d.String("storev"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("ldwork")),
	d.Bound("slarfg", d.Int("n"), d.FloatW("alpha"), d.FloatArray("x", d.InOut), d.Int("incx"), d.FloatW("tau")),
	d.Bound("slarft", d.String("direct"), d.String("storev"), d.Int("n"), d.Int("k"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("tau", d.InOut), d.FloatArray("t", d.InOut), d.Int("ldt")),
	d.Bound("slarfx", d.String("side"), d.Int("m"), d.Int("n"), d.FloatArray("v", d.InOut), d.Float("tau"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut)),
	d.Bound("slargv", d.Int("n"), d.FloatArray("x", d.InOut), d.Int("incx"), d.FloatArray("y", d.InOut), d.Int("incy"), d.FloatArray("c", d.InOut), d.Int("incc")),
	d.Bound("slarnv", d.Int("idist"), d.IntArray("iseed", d.InOut), d.Int("n"), d.FloatArray("x", d.InOut)),
	d.Bound("slarra", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("e2", d.InOut), d.Float("spltol"), d.Float("tnrm"), d.IntW("nsplit"), d.IntArray("isplit", d.InOut), d.IntW("info")),
	d.Bound("slarrb", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("lld", d.InOut), d.Int("ifirst"), d.Int("ilast"), d.Float("rtol1"), d.Float("rtol2"), d.Int("offset"), d.FloatArray("w", d.InOut), d.FloatArray("wgap", d.InOut), d.FloatArray("werr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.Float("pivmin"), d.Float("spdiam"), d.Int("twist"), d.IntW("info")),
	d.Bound("slarrc", d.String("jobt"), d.Int("n"), d.Float("vl"), d.Float("vu"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.Float("pivmin"), d.IntW("eigcnt"), d.IntW("lcnt"), d.IntW("rcnt"), d.IntW("info")),
	d.Bound("slarrd", d.String("range"), d.String("order"), d.Int("n"), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.FloatArray("gers", d.InOut), d.Float("reltol"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("e2", d.InOut), d.Float("pivmin"), d.Int("nsplit"), d.IntArray("isplit", d.InOut), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("werr", d.InOut), d.FloatW("wl"), d.FloatW("wu"), d.IntArray("iblock", d.InOut), d.IntArray("indexw", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slarre", d.String("range"), d.Int("n"), d.FloatW("vl"), d.FloatW("vu"), d.Int("il"), d.Int("iu"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("e2", d.InOut), d.Float("rtol1"), d.Float("rtol2"), d.Float("spltol"), d.IntW("nsplit"), d.IntArray("isplit", d.InOut), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("werr", d.InOut), d.FloatArray("wgap", d.InOut), d.IntArray("iblock", d.InOut), d.IntArray("indexw", d.InOut), d.FloatArray("gers", d.InOut), d.FloatW("pivmin"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slarrf", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("l", d.InOut), d.FloatArray("ld", d.InOut), d.Int("clstrt"), d.Int("clend"), d.FloatArray("w", d.InOut), d.FloatArray("wgap", d.InOut), d.FloatArray("werr", d.InOut), d.Float("spdiam"), d.Float("clgapl"), d.Float("clgapr"), d.Float("pivmin"), d.FloatW("sigma"), d.FloatArray("dplus", d.InOut), d.FloatArray("lplus", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slarrj", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e2", d.InOut), d.Int("ifirst"), d.Int("ilast"), d.Float("rtol"), d.Int("offset"), d.FloatArray("w", d.InOut), d.FloatArray("werr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.Float("pivmin"), d.Float("spdiam"), d.IntW("info")),
	d.Bound("slarrk", d.Int("n"), d.Int("iw"), d.Float("gl"), d.Float("gu"), d.FloatArray("d", d.InOut), d.FloatArray("e2", d.InOut), d.Float("pivmin"), d.Float("reltol"), d.FloatW("w"), d.FloatW("werr"), d.IntW("info")),
	d.Bound("slarrr", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.IntW("info")),
	d.Bound("slarrv", d.Int("n"), d.Float("vl"), d.Float("vu"), d.FloatArray("d", d.InOut), d.FloatArray("l", d.InOut), d.Float("pivmin"), d.IntArray("isplit", d.InOut), d.Int("m"), d.Int("dol"), d.Int("dou"), d.Float("minrgp"), d.FloatW("rtol1"), d.FloatW("rtol2"), d.FloatArray("w", d.InOut), d.FloatArray("werr", d.InOut), d.FloatArray("wgap", d.InOut), d.IntArray("iblock", d.InOut), d.IntArray("indexw", d.InOut), d.FloatArray("gers", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntArray("isuppz", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slartg", d.Float("f"), d.Float("g"), d.FloatW("cs"), d.FloatW("sn"), d.FloatW("r")),
	d.Bound("slartv", d.Int("n"), d.FloatArray("x", d.InOut), d.Int("incx"), d.FloatArray("y", d.InOut), d.Int("incy"), d.FloatArray("c", d.InOut), d.FloatArray("s", d.InOut), d.Int("incc")),
	d.Bound("slaruv", d.IntArray("iseed", d.InOut), d.Int("n"), d.FloatArray("x", d.InOut)),
	d.Bound("slarz", d.String("side"), d.Int("m"), d.Int("n"), d.Int("l"), d.FloatArray("v", d.InOut), d.Int("incv"), d.Float("tau"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut)),
	d.Bound("slarzb", d.String("side"), d.String("trans"), d.String("direct"), d.String("storev"), d.Int("m"), d.Int("n"), d.Int("k"), d.Int("l"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("ldwork")),
	d.Bound("slarzt", d.String("direct"), d.String("storev"), d.Int("n"), d.Int("k"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("tau", d.InOut), d.FloatArray("t", d.InOut), d.Int("ldt")),
	d.Bound("slas2", d.Float("f"), d.Float("g"), d.Float("h"), d.FloatW("ssmin"), d.FloatW("ssmax")),
	d.Bound("slascl", d.String("type"), d.Int("kl"), d.Int("ku"), d.Float("cfrom"), d.Float("cto"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("slasd0", d.Int("n"), d.Int("sqre"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.Int("smlsiz"), d.IntArray("iwork", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slasd1", d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.FloatArray("d", d.InOut), d.FloatW("alpha"), d.FloatW("beta"), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.IntArray("idxq", d.InOut), d.IntArray("iwork", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slasd2", d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.IntW("k"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.Float("alpha"), d.Float("beta"), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.FloatArray("dsigma", d.InOut), d.FloatArray("u2", d.InOut), d.Int("ldu2"), d.FloatArray("vt2", d.InOut), d.Int("ldvt2"), d.IntArray("idxp", d.InOut), d.IntArray("idx", d.InOut), d.IntArray("idxc", d.InOut), d.IntArray("idxq", d.InOut), d.IntArray("coltyp", d.InOut), d.IntW("info")),
	d.Bound("slasd3", d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.Int("k"), d.FloatArray("d", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("dsigma", d.InOut), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("u2", d.InOut), d.Int("ldu2"), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.FloatArray("vt2", d.InOut), d.Int("ldvt2"), d.IntArray("idxc", d.InOut), d.IntArray("ctot", d.InOut), d.FloatArray("z", d.InOut), d.IntW("info")),
	d.Bound("slasd4", d.Int("n"), d.Int("i"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("delta", d.InOut), d.Float("rho"), d.FloatW("sigma"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slasd5", d.Int("i"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("delta", d.InOut), d.Float("rho"), d.FloatW("dsigma"), d.FloatArray("work", d.InOut)),
	d.Bound("slasd6", d.Int("icompq"), d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.FloatArray("d", d.InOut), d.FloatArray("vf", d.InOut), d.FloatArray("vl", d.InOut), d.FloatW("alpha"), d.FloatW("beta"), d.IntArray("idxq", d.InOut), d.IntArray("perm", d.InOut), d.IntW("givptr"), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.FloatArray("givnum", d.InOut), d.Int("ldgnum"), d.FloatArray("poles", d.InOut), d.FloatArray("difl", d.InOut), d.FloatArray("difr", d.InOut), d.FloatArray("z", d.InOut), d.IntW("k"), d.FloatW("c"), d.FloatW("s"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slasd7", d.Int("icompq"), d.Int("nl"), d.Int("nr"), d.Int("sqre"), d.IntW("k"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("zw", d.InOut), d.FloatArray("vf", d.InOut), d.FloatArray("vfw", d.InOut), d.FloatArray("vl", d.InOut), d.FloatArray("vlw", d.InOut), d.Float("alpha"), d.Float("beta"), d.FloatArray("dsigma", d.InOut), d.IntArray("idx", d.InOut), d.IntArray("idxp", d.InOut), d.IntArray("idxq", d.InOut), d.IntArray("perm", d.InOut), d.IntW("givptr"), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.FloatArray("givnum", d.InOut), d.Int("ldgnum"), d.FloatW("c"), d.FloatW("s"), d.IntW("info")),
	d.Bound("slasd8", d.Int("icompq"), d.Int("k"), d.FloatArray("d", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("vf", d.InOut), d.FloatArray("vl", d.InOut), d.FloatArray("difl", d.InOut), d.FloatArray("difr", d.InOut), d.Int("lddifr"), d.FloatArray("dsigma", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slasda", d.Int("icompq"), d.Int("smlsiz"), d.Int("n"), d.Int("sqre"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("vt", d.InOut), d.IntArray("k", d.InOut), d.FloatArray("difl", d.InOut), d.FloatArray("difr", d.InOut), d.FloatArray("z", d.InOut), d.FloatArray("poles", d.InOut), d.IntArray("givptr", d.InOut), d.IntArray("givcol", d.InOut), d.Int("ldgcol"), d.IntArray("perm", d.InOut), d.FloatArray("givnum", d.InOut), d.FloatArray("c", d.InOut), d.FloatArray("s", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("slasdq", d.String("uplo"), d.Int("sqre"), d.Int("n"), d.Int("ncvt"), d.Int("nru"), d.Int("ncc"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("vt", d.InOut), d.Int("ldvt"), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slasdt", d.Int("n"), d.IntW("lvl"), d.IntW("nd"), d.IntArray("inode", d.InOut), d.IntArray("ndiml", d.InOut), d.IntArray("ndimr", d.InOut), d.Int("msub")),
	d.Bound("slaset", d.String("uplo"), d.Int("m"), d.Int("n"), d.Float("alpha"), d.Float("beta"), d.FloatArray("a", d.InOut), d.Int("lda")),
	d.Bound("slasq1", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("slasq2", d.Int("n"), d.FloatArray("z", d.InOut), d.IntW("info")),
	d.Bound("slasq3", d.Int("i0"), d.IntW("n0"), d.FloatArray("z", d.InOut), d.Int("pp"), d.FloatW("dmin"), d.FloatW("sigma"), d.FloatW("desig"), d.FloatW("qmax"), d.IntW("nfail"), d.IntW("iter"), d.IntW("ndiv"), d.Boolean("ieee")),
	d.Bound("slasq4", d.Int("i0"), d.Int("n0"), d.FloatArray("z", d.InOut), d.Int("pp"), d.Int("n0in"), d.Float("dmin"), d.Float("dmin1"), d.Float("dmin2"), d.Float("dn"), d.Float("dn1"), d.Float("dn2"), d.FloatW("tau"), d.IntW("ttype")),
	d.Bound("slasq5", d.Int("i0"), d.Int("n0"), d.FloatArray("z", d.InOut), d.Int("pp"), d.Float("tau"), d.FloatW("dmin"), d.FloatW("dmin1"), d.FloatW("dmin2"), d.FloatW("dn"), d.FloatW("dnm1"), d.FloatW("dnm2"), d.Boolean("ieee")),
	d.Bound("slasq6", d.Int("i0"), d.Int("n0"), d.FloatArray("z", d.InOut), d.Int("pp"), d.FloatW("dmin"), d.FloatW("dmin1"), d.FloatW("dmin2"), d.FloatW("dn"), d.FloatW("dnm1"), d.FloatW("dnm2")),
	d.Bound("slasr", d.String("side"), d.String("pivot"), d.String("direct"), d.Int("m"), d.Int("n"), d.FloatArray("c", d.InOut), d.FloatArray("s", d.InOut), d.FloatArray("a", d.InOut), d.Int("lda")),
	d.Bound("slasrt", d.String("id"), d.Int("n"), d.FloatArray("d", d.InOut), d.IntW("info")),
	d.Bound("slassq", d.Int("n"), d.FloatArray("x", d.InOut), d.Int("incx"), d.FloatW("scale"), d.FloatW("sumsq")),
	d.Bound("slasv2", d.Float("f"), d.Float("g"), d.Float("h"), d.FloatW("ssmin"), d.FloatW("ssmax"), d.FloatW("snr"), d.FloatW("csr"), d.FloatW("snl"), d.FloatW("csl")),
	d.Bound("slaswp", d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.Int("k1"), d.Int("k2"), d.IntArray("ipiv", d.InOut), d.Int("incx")),
	d.Bound("slasy2", d.Boolean("ltranl"), d.Boolean("ltranr"), d.Int("isgn"), d.Int("n1"), d.Int("n2"), d.FloatArray("tl", d.InOut), d.Int("ldtl"), d.FloatArray("tr", d.InOut), d.Int("ldtr"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatW("scale"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("xnorm"), d.IntW("info")),
	d.Bound("slasyf", d.String("uplo"), d.Int("n"), d.Int("nb"), d.IntW("kb"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.FloatArray("w", d.InOut), d.Int("ldw"), d.IntW("info")),
	d.Bound("slatbs", d.String("uplo"), d.String("trans"), d.String("diag"), d.String("normin"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("x", d.InOut), d.FloatW("scale"), d.FloatArray("cnorm", d.InOut), d.IntW("info")),
	d.Bound("slatdf", d.Int("ijob"), d.Int("n"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("rhs", d.InOut), d.FloatW("rdsum"), d.FloatW("rdscal"), d.IntArray("ipiv", d.InOut), d.IntArray("jpiv", d.InOut)),
	d.Bound("slatps", d.String("uplo"), d.String("trans"), d.String("diag"), d.String("normin"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("x", d.InOut), d.FloatW("scale"), d.FloatArray("cnorm", d.InOut), d.IntW("info")),
	d.Bound("slatrd", d.String("uplo"), d.Int("n"), d.Int("nb"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("e", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("w", d.InOut), d.Int("ldw")),
	d.Bound("slatrs", d.String("uplo"), d.String("trans"), d.String("diag"), d.String("normin"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("x", d.InOut), d.FloatW("scale"), d.FloatArray("cnorm", d.InOut), d.IntW("info")),
	d.Bound("slatrz", d.Int("m"), d.Int("n"), d.Int("l"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut)),
	d.Bound("slatzm", d.String("side"), d.Int("m"), d.Int("n"), d.FloatArray("v", d.InOut), d.Int("incv"), d.Float("tau"), d.FloatArray("c1", d.InOut), d.FloatArray("c2", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut)),
	d.Bound("slauu2", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("slauum", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Stub("slazq3", d.Int("i0"), d.IntW("n0"), d.FloatArray("z", d.InOut), d.Int("pp"), d.FloatW("dmin"), d.FloatW("sigma"), d.FloatW("desig"), d.FloatW("qmax"), d.IntW("nfail"), d.IntW("iter"), d.IntW("ndiv"), d.Boolean("ieee"), d.IntW("ttype"), d.FloatW("dmin1"), d.FloatW("dmin2"), d.FloatW("dn"), d.FloatW("dn1"), d.FloatW("dn2"), d.FloatW("tau")),
	d.Stub("slazq4", d.Int("i0"), d.Int("n0"), d.FloatArray("z", d.InOut), d.Int("pp"), d.Int("n0in"), d.Float("dmin"), d.Float("dmin1"), d.Float("dmin2"), d.Float("dn"), d.Float("dn1"), d.Float("dn2"), d.FloatW("tau"), d.IntW("ttype"), d.FloatW("g")),
	d.Bound("sopgtr", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sopmtr", d.String("side"), d.String("uplo"), d.String("trans"), d.Int("m"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sorg2l", d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sorg2r", d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sorgbr", d.String("vect"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sorghr", d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sorgl2", d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sorglq", d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sorgql", d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sorgqr", d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sorgr2", d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sorgrq", d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sorgtr", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sorm2l", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sorm2r", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sormbr", d.String("vect"), d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sormhr", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("ilo"), d.Int("ihi"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sorml2", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sormlq", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sormql", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sormqr", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sormr2", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sormr3", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.Int("l"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sormrq", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sormrz", d.String("side"), d.String("trans"), d.Int("m"), d.Int("n"), d.Int("k"), d.Int("l"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("sormtr", d.String("side"), d.String("uplo"), d.String("trans"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("spbcon", d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("spbequ", d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("s", d.InOut), d.FloatW("scond"), d.FloatW("amax"), d.IntW("info")),
	d.Bound("spbrfs", d.String("uplo"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("afb", d.InOut), d.Int("ldafb"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("spbstf", d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.IntW("info")),
	d.Bound("spbsv", d.String("uplo"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("spbsvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("afb", d.InOut), d.Int("ldafb"), d.StringW("equed"), d.FloatArray("s", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("spbtf2", d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.IntW("info")),
	d.Bound("spbtrf", d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.IntW("info")),
	d.Bound("spbtrs", d.String("uplo"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("spocon", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("spoequ", d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("s", d.InOut), d.FloatW("scond"), d.FloatW("amax"), d.IntW("info")),
	d.Bound("sporfs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("af", d.InOut), d.Int("ldaf"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sposv", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sposvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("af", d.InOut), d.Int("ldaf"), d.StringW("equed"), d.FloatArray("s", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("spotf2", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("spotrf", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("spotri", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("spotrs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sppcon", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sppequ", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("s", d.InOut), d.FloatW("scond"), d.FloatW("amax"), d.IntW("info")),
	d.Bound("spprfs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.FloatArray("afp", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sppsv", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sppsvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.FloatArray("afp", d.InOut), d.StringW("equed"), d.FloatArray("s", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("spptrf", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.IntW("info")),
	d.Bound("spptri", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.IntW("info")),
	d.Bound("spptrs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sptcon", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("spteqr", d.String("compz"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sptrfs", d.Int("n"), d.Int("nrhs"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("df", d.InOut), d.FloatArray("ef", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sptsv", d.Int("n"), d.Int("nrhs"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sptsvx", d.String("fact"), d.Int("n"), d.Int("nrhs"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("df", d.InOut), d.FloatArray("ef", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("spttrf", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.IntW("info")),
	d.Bound("spttrs", d.Int("n"), d.Int("nrhs"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sptts2", d.Int("n"), d.Int("nrhs"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb")),
	d.Bound("srscl", d.Int("n"), d.Float("sa"), d.FloatArray("sx", d.InOut), d.Int("incx")),
	d.Bound("ssbev", d.String("jobz"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("ssbevd", d.String("jobz"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("ssbevx", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("ssbgst", d.String("vect"), d.String("uplo"), d.Int("n"), d.Int("ka"), d.Int("kb"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("bb", d.InOut), d.Int("ldbb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("ssbgv", d.String("jobz"), d.String("uplo"), d.Int("n"), d.Int("ka"), d.Int("kb"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("bb", d.InOut), d.Int("ldbb"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("ssbgvd", d.String("jobz"), d.String("uplo"), d.Int("n"), d.Int("ka"), d.Int("kb"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("bb", d.InOut), d.Int("ldbb"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("ssbgvx", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.Int("ka"), d.Int("kb"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("bb", d.InOut), d.Int("ldbb"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("ssbtrd", d.String("vect"), d.String("uplo"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sspcon", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sspev", d.String("jobz"), d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sspevd", d.String("jobz"), d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("sspevx", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("sspgst", d.Int("itype"), d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("bp", d.InOut), d.IntW("info")),
	d.Bound("sspgv", d.Int("itype"), d.String("jobz"), d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("bp", d.InOut), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sspgvd", d.Int("itype"), d.String("jobz"), d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("bp", d.InOut), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("sspgvx", d.Int("itype"), d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("bp", d.InOut), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("ssprfs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.FloatArray("afp", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sspsv", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sspsvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.FloatArray("afp", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("ssptrd", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("tau", d.InOut), d.IntW("info")),
	d.Bound("ssptrf", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("ssptri", d.String("uplo"), d.Int("n"), d.FloatArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("ssptrs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("sstebz", d.String("range"), d.String("order"), d.Int("n"), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.IntW("m"), d.IntW("nsplit"), d.FloatArray("w", d.InOut), d.IntArray("iblock", d.InOut), d.IntArray("isplit", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("sstedc", d.String("compz"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("sstegr", d.String("jobz"), d.String("range"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntArray("isuppz", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("sstein", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.Int("m"), d.FloatArray("w", d.InOut), d.IntArray("iblock", d.InOut), d.IntArray("isplit", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("sstemr", d.String("jobz"), d.String("range"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.Int("nzc"), d.IntArray("isuppz", d.InOut), d.BooleanW("tryrac"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("ssteqr", d.String("compz"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("ssterf", d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.IntW("info")),
	d.Bound("sstev", d.String("jobz"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("sstevd", d.String("jobz"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("sstevr", d.String("jobz"), d.String("range"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntArray("isuppz", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("sstevx", d.String("jobz"), d.String("range"), d.Int("n"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("ssycon", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.Float("anorm"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("ssyev", d.String("jobz"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("w", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("ssyevd", d.String("jobz"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("w", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("ssyevr", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntArray("isuppz", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("ssyevx", d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("ssygs2", d.Int("itype"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("ssygst", d.Int("itype"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("ssygv", d.Int("itype"), d.String("jobz"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("w", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("ssygvd", d.Int("itype"), d.String("jobz"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("w", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("ssygvx", d.Int("itype"), d.String("jobz"), d.String("range"), d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.Float("vl"), d.Float("vu"), d.Int("il"), d.Int("iu"), d.Float("abstol"), d.IntW("m"), d.FloatArray("w", d.InOut), d.FloatArray("z", d.InOut), d.Int("ldz"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntArray("ifail", d.InOut), d.IntW("info")),
	d.Bound("ssyrfs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("af", d.InOut), d.Int("ldaf"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("ssysv", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("ssysvx", d.String("fact"), d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("af", d.InOut), d.Int("ldaf"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatW("rcond"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("ssytd2", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("tau", d.InOut), d.IntW("info")),
	d.Bound("ssytf2", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.IntW("info")),
	d.Bound("ssytrd", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("d", d.InOut), d.FloatArray("e", d.InOut), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("ssytrf", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("ssytri", d.String("uplo"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("ssytrs", d.String("uplo"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntArray("ipiv", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("stbcon", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.Int("kd"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("stbrfs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("stbtrs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("kd"), d.Int("nrhs"), d.FloatArray("ab", d.InOut), d.Int("ldab"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("stgevc", d.String("side"), d.String("howmny"), d.BooleanArray("select"), d.Int("n"), d.FloatArray("s", d.InOut), d.Int("lds"), d.FloatArray("p", d.InOut), d.Int("ldp"), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.Int("mm"), d.IntW("m"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("stgex2", d.Boolean("wantq"), d.Boolean("wantz"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.Int("j1"), d.Int("n1"), d.Int("n2"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("stgexc", d.Boolean("wantq"), d.Boolean("wantz"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntW("ifst"), d.IntW("ilst"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.Bound("stgsen", d.Int("ijob"), d.Boolean("wantq"), d.Boolean("wantz"), d.BooleanArray("select"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("alphar", d.InOut), d.FloatArray("alphai", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("z", d.InOut), d.Int("ldz"), d.IntW("m"), d.FloatW("pl"), d.FloatW("pr"), d.FloatArray("dif", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("stgsja", d.String("jobu"), d.String("jobv"), d.String("jobq"), d.Int("m"), d.Int("p"), d.Int("n"), d.Int("k"), d.Int("l"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.Float("tola"), d.Float("tolb"), d.FloatArray("alpha", d.InOut), d.FloatArray("beta", d.InOut), d.FloatArray("u", d.InOut), d.Int("ldu"), d.FloatArray("v", d.InOut), d.Int("ldv"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("work", d.InOut), d.IntW("ncycle"), d.IntW("info")),
	d.Bound("stgsna", d.String("job"), d.String("howmny"), d.BooleanArray("select"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.FloatArray("s", d.InOut), d.FloatArray("dif", d.InOut), d.Int("mm"), d.IntW("m"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("stgsy2", d.String("trans"), d.Int("ijob"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("d", d.InOut), d.Int("ldd"), d.FloatArray("e", d.InOut), d.Int("lde"), d.FloatArray("f", d.InOut), d.Int("ldf"), d.FloatW("scale"), d.FloatW("rdsum"), d.FloatW("rdscal"), d.IntArray("iwork", d.InOut), d.IntW("pq"), d.IntW("info")),
	d.Bound("stgsyl", d.String("trans"), d.Int("ijob"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatArray("d", d.InOut), d.Int("ldd"), d.FloatArray("e", d.InOut), d.Int("lde"), d.FloatArray("f", d.InOut), d.Int("ldf"), d.FloatW("scale"), d.FloatW("dif"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("stpcon", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.FloatArray("ap", d.InOut), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("stprfs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("stptri", d.String("uplo"), d.String("diag"), d.Int("n"), d.FloatArray("ap", d.InOut), d.IntW("info")),
	d.Bound("stptrs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("nrhs"), d.FloatArray("ap", d.InOut), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("strcon", d.String("norm"), d.String("uplo"), d.String("diag"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatW("rcond"), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("strevc", d.String("side"), d.String("howmny"), d.BooleanArray("select"), d.Int("n"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.Int("mm"), d.IntW("m"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("strexc", d.String("compq"), d.Int("n"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.IntW("ifst"), d.IntW("ilst"), d.FloatArray("work", d.InOut), d.IntW("info")),
	d.Bound("strrfs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("x", d.InOut), d.Int("ldx"), d.FloatArray("ferr", d.InOut), d.FloatArray("berr", d.InOut), d.FloatArray("work", d.InOut), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("strsen", d.String("job"), d.String("compq"), d.BooleanArray("select"), d.Int("n"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("q", d.InOut), d.Int("ldq"), d.FloatArray("wr", d.InOut), d.FloatArray("wi", d.InOut), d.IntW("m"), d.FloatW("s"), d.FloatW("sep"), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntArray("iwork", d.InOut), d.Int("liwork"), d.IntW("info")),
	d.Bound("strsna", d.String("job"), d.String("howmny"), d.BooleanArray("select"), d.Int("n"), d.FloatArray("t", d.InOut), d.Int("ldt"), d.FloatArray("vl", d.InOut), d.Int("ldvl"), d.FloatArray("vr", d.InOut), d.Int("ldvr"), d.FloatArray("s", d.InOut), d.FloatArray("sep", d.InOut), d.Int("mm"), d.IntW("m"), d.FloatArray("work", d.InOut), d.Int("ldwork"), d.IntArray("iwork", d.InOut), d.IntW("info")),
	d.Bound("strsyl", d.String("trana"), d.String("tranb"), d.Int("isgn"), d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.FloatArray("c", d.InOut), d.Int("Ldc"), d.FloatW("scale"), d.IntW("info")),
	d.Bound("strti2", d.String("uplo"), d.String("diag"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("strtri", d.String("uplo"), d.String("diag"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.IntW("info")),
	d.Bound("strtrs", d.String("uplo"), d.String("trans"), d.String("diag"), d.Int("n"), d.Int("nrhs"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("b", d.InOut), d.Int("ldb"), d.IntW("info")),
	d.Bound("stzrqf", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.IntW("info")),
	d.Bound("stzrzf", d.Int("m"), d.Int("n"), d.FloatArray("a", d.InOut), d.Int("lda"), d.FloatArray("tau", d.InOut), d.FloatArray("work", d.InOut), d.Int("lwork"), d.IntW("info")),
	d.BoundR(abi.Double, "dlamch", d.String("cmach")),
	d.Stub("dlamc1", d.IntW("beta"), d.IntW("t"), d.BooleanW("rnd"), d.BooleanW("ieee1")),
	d.Stub("dlamc2", d.IntW("beta"), d.IntW("t"), d.BooleanW("rnd"), d.DoubleW("eps"), d.IntW("emin"), d.DoubleW("rmin"), d.IntW("emax"), d.DoubleW("rmax")),
	d.BoundR(abi.Double, "dlamc3", d.Double("a"), d.Double("b")),
	d.Stub("dlamc4", d.IntW("emin"), d.Double("start"), d.Int("base")),
	d.Stub("dlamc5", d.Int("beta"), d.Int("p"), d.Int("emin"), d.Boolean("ieee"), d.IntW("emax"), d.DoubleW("rmax")),
	d.BoundR(abi.Double, "dsecnd"),
	d.BoundR(abi.Boolean, "lsame", d.String("ca"), d.String("cb")),
	d.BoundR(abi.Float, "second"),
	d.BoundR(abi.Float, "slamch", d.String("cmach")),
	d.Stub("slamc1", d.IntW("beta"), d.IntW("t"), d.BooleanW("rnd"), d.BooleanW("ieee1")),
	d.Stub("slamc2", d.IntW("beta"), d.IntW("t"), d.BooleanW("rnd"), d.FloatW("eps"), d.IntW("emin"), d.FloatW("rmin"), d.IntW("emax"), d.FloatW("rmax")),
	d.BoundR(abi.Float, "slamc3", d.Float("a"), d.Float("b")),
	d.Stub("slamc4", d.IntW("emin"), d.Float("start"), d.Int("base")),
	d.Stub("slamc5", d.Int("beta"), d.Int("p"), d.Int("emin"), d.Boolean("ieee"), d.IntW("emax"), d.FloatW("rmax")),
}

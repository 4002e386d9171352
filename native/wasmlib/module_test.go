package wasmlib

const (
	i32 = 0x7f
	f64 = 0x7c
)

// testFunc is one function of a hand-assembled test module.
type testFunc struct {
	name    string
	params  []byte
	results []byte
	body    []byte // instructions, including the final end
}

var (
	// inc_(p): *p += 1
	incFunc = testFunc{"inc_", []byte{i32}, nil, []byte{
		0x20, 0x00, 0x20, 0x00, 0x28, 0x02, 0x00, 0x41, 0x01, 0x6a, 0x36, 0x02, 0x00, 0x0b,
	}}
	// dsum2_(x) f64: x[0] + x[1]
	dsum2Func = testFunc{"dsum2_", []byte{i32}, []byte{f64}, []byte{
		0x20, 0x00, 0x2b, 0x03, 0x00, 0x20, 0x00, 0x2b, 0x03, 0x08, 0xa0, 0x0b,
	}}
	trapFunc = testFunc{"trap_", nil, nil, []byte{0x00, 0x0b}}

	// malloc(n) i32: bump allocator over global 0, 8-byte aligned
	mallocFunc = testFunc{"malloc", []byte{i32}, []byte{i32}, []byte{
		0x23, 0x00, 0x23, 0x00, 0x20, 0x00, 0x6a, 0x41, 0x07, 0x6a, 0x41, 0x78, 0x71, 0x24, 0x00, 0x0b,
	}}
	freeFunc = testFunc{"free", []byte{i32}, nil, []byte{0x0b}}
)

// buildModule assembles a module with one page of exported memory and
// funcs exported under their names. With heap set it also defines the
// mutable i32 global the bump allocator uses, starting at 1024.
func buildModule(heap bool, funcs ...testFunc) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	var types []byte
	types = uleb(types, uint32(len(funcs)))
	for _, f := range funcs {
		types = append(types, 0x60)
		types = vec(types, f.params)
		types = vec(types, f.results)
	}
	out = section(out, 1, types)

	var fns []byte
	fns = uleb(fns, uint32(len(funcs)))
	for i := range funcs {
		fns = uleb(fns, uint32(i))
	}
	out = section(out, 3, fns)

	out = section(out, 5, []byte{0x01, 0x00, 0x01})

	if heap {
		out = section(out, 6, []byte{0x01, i32, 0x01, 0x41, 0x80, 0x08, 0x0b})
	}

	var exports []byte
	exports = uleb(exports, uint32(len(funcs)+1))
	exports = name(exports, "memory")
	exports = append(exports, 0x02, 0x00)
	for i, f := range funcs {
		exports = name(exports, f.name)
		exports = append(exports, 0x00)
		exports = uleb(exports, uint32(i))
	}
	out = section(out, 7, exports)

	var code []byte
	code = uleb(code, uint32(len(funcs)))
	for _, f := range funcs {
		body := append([]byte{0x00}, f.body...)
		code = vec(code, body)
	}
	return section(out, 10, code)
}

func uleb(b []byte, v uint32) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(b, c)
		}
		b = append(b, c|0x80)
	}
}

func vec(b, data []byte) []byte {
	return append(uleb(b, uint32(len(data))), data...)
}

func name(b []byte, s string) []byte {
	return vec(b, []byte(s))
}

func section(b []byte, id byte, payload []byte) []byte {
	return vec(append(b, id), payload)
}

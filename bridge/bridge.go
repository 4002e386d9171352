package bridge

import (
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/jnibridge/descriptor"
	"github.com/wippyai/jnibridge/ir"
)

// Build lowers a routine into a bridge program.
//
// Parameters are declared and acquired in stage order (scalar-like before
// arrays, declaration order within a stage) and released in exactly the
// reverse order. Stub routines get only a probe and a not-implemented body.
func Build(r descriptor.Routine) (*ir.Program, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return lower(r), nil
}

// lower builds the program of a validated routine.
func lower(r descriptor.Routine) *ir.Program {
	p := &ir.Program{
		Name:   r.Name,
		Symbol: r.Symbol(),
		Return: r.Return,
		Stub:   r.Stub,
		Params: make([]ir.Param, len(r.Params)),
	}
	for i, d := range r.Params {
		p.Params[i] = d.Lower()
	}

	p.Body = append(p.Body,
		ir.Stmt{Op: ir.OpSymbol, Param: -1},
		ir.Stmt{Op: ir.OpProbe, Param: -1},
	)

	if r.Stub {
		p.Body = append(p.Body,
			ir.Stmt{Op: ir.OpSignal, Param: -1, Signal: ir.SignalNotImplemented, When: ir.Always},
			ir.Stmt{Op: ir.OpReturn, Param: -1},
		)
		Logger().Debug("built stub", zap.String("routine", r.Name))
		return p
	}

	order := acquisitionOrder(p.Params)

	p.Body = append(p.Body,
		ir.Stmt{Op: ir.OpCheckSymbol, Param: -1, Signal: ir.SignalUnsupported},
		ir.Stmt{Op: ir.OpFlag, Param: -1},
	)
	for _, i := range order {
		if len(p.Params[i].Locals) > 0 {
			p.Body = append(p.Body, ir.Stmt{Op: ir.OpDeclare, Param: i})
		}
	}
	for _, i := range order {
		if len(p.Params[i].Prolog) > 0 {
			p.Body = append(p.Body, ir.Stmt{Op: ir.OpAcquire, Param: i})
		}
	}
	p.Body = append(p.Body,
		ir.Stmt{Op: ir.OpCall, Param: -1},
		ir.Stmt{Op: ir.OpLabel, Param: -1},
	)
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		if len(p.Params[i].Epilog) > 0 {
			p.Body = append(p.Body, ir.Stmt{Op: ir.OpRelease, Param: i})
		}
	}
	p.Body = append(p.Body,
		ir.Stmt{Op: ir.OpSignal, Param: -1, Signal: ir.SignalResourceExhausted, When: ir.IfFailed},
		ir.Stmt{Op: ir.OpReturn, Param: -1},
	)

	Logger().Debug("built routine",
		zap.String("routine", r.Name),
		zap.Int("params", len(r.Params)),
		zap.Int("stmts", len(p.Body)))
	return p
}

// acquisitionOrder returns parameter indices stably sorted by stage.
func acquisitionOrder(params []ir.Param) []int {
	order := make([]int, len(params))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return params[order[a]].Stage < params[order[b]].Stage
	})
	return order
}

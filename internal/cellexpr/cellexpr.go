// Package cellexpr evaluates per-column JavaScript format expressions with
// Goja. An expression sees the raw cell value as v and its completion
// value becomes the cell's display text.
package cellexpr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dop251/goja"

	"github.com/wesen/tableview/internal/log"
	"github.com/wesen/tableview/pkg/tableview"
)

// ErrorText is shown in place of a cell whose expression failed.
const ErrorText = "#ERR"

// DefaultTimeout bounds a single evaluation.
const DefaultTimeout = 50 * time.Millisecond

// ErrTimeout is returned when an evaluation is interrupted for running
// longer than the engine's Timeout.
var ErrTimeout = errors.New("expression timed out")

// Engine owns one Goja runtime shared by every compiled expression. It is
// not safe for concurrent use.
type Engine struct {
	runtime *goja.Runtime
	Timeout time.Duration
}

// NewEngine creates a runtime with the helper functions registered:
// str(x), upper(s), lower(s), pad(s, n) right-aligns s in n columns and
// trunc(s, n) cuts s to n columns with an ellipsis.
func NewEngine() *Engine {
	e := &Engine{runtime: goja.New(), Timeout: DefaultTimeout}
	rt := e.runtime

	rt.Set("str", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return rt.ToValue("")
		}
		return rt.ToValue(call.Arguments[0].String())
	})
	rt.Set("upper", func(call goja.FunctionCall) goja.Value {
		return rt.ToValue(strings.ToUpper(call.Argument(0).String()))
	})
	rt.Set("lower", func(call goja.FunctionCall) goja.Value {
		return rt.ToValue(strings.ToLower(call.Argument(0).String()))
	})
	rt.Set("pad", func(call goja.FunctionCall) goja.Value {
		s := call.Argument(0).String()
		n := int(call.Argument(1).ToInteger())
		if tableview.DisplayWidth(s) >= n {
			return rt.ToValue(s)
		}
		return rt.ToValue(tableview.PadToWidth(s, n, tableview.AlignRight))
	})
	rt.Set("trunc", func(call goja.FunctionCall) goja.Value {
		s := call.Argument(0).String()
		n := int(call.Argument(1).ToInteger())
		return rt.ToValue(tableview.Truncate(s, n, "…"))
	})
	return e
}

// Expr is one compiled column expression.
type Expr struct {
	engine  *Engine
	column  string
	source  string
	program *goja.Program
	logged  bool
}

// Compile parses src for the named column.
func (e *Engine) Compile(column, src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("compile %q: empty expression", column)
	}
	prog, err := goja.Compile(column, src, false)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", column, err)
	}
	return &Expr{engine: e, column: column, source: src, program: prog}, nil
}

func (x *Expr) Column() string { return x.column }
func (x *Expr) Source() string { return x.source }

// Eval runs the expression with v bound to value. undefined and null
// results render as the empty string.
func (x *Expr) Eval(value any) (s string, err error) {
	rt := x.engine.runtime
	if err := rt.Set("v", value); err != nil {
		return "", fmt.Errorf("eval %q: bind value: %w", x.column, err)
	}

	if d := x.engine.Timeout; d > 0 {
		fired := make(chan struct{})
		timer := time.AfterFunc(d, func() {
			rt.Interrupt(ErrTimeout)
			close(fired)
		})
		defer func() {
			// A callback that already started must finish before the
			// interrupt is cleared, or it leaks into the next Eval.
			if !timer.Stop() {
				<-fired
			}
			rt.ClearInterrupt()
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			s, err = "", fmt.Errorf("eval %q: %v", x.column, r)
		}
	}()

	val, err := rt.RunProgram(x.program)
	if err != nil {
		var ie *goja.InterruptedError
		if errors.As(err, &ie) {
			return "", fmt.Errorf("eval %q: %w", x.column, ErrTimeout)
		}
		return "", fmt.Errorf("eval %q: %w", x.column, err)
	}
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return "", nil
	}
	return val.String(), nil
}

// Format is Eval for rendering: a failure yields ErrorText and is logged
// the first time it happens for this expression.
func (x *Expr) Format(value any) string {
	s, err := x.Eval(value)
	if err != nil {
		if !x.logged {
			x.logged = true
			log.Warn("column format failed", "column", x.column, "expr", x.source, "error", err)
		}
		return ErrorText
	}
	return s
}

package cme

// Evaluator is the Laplace-domain function F: one complex argument in, one
// complex value out. The inversion calls Eval exactly Row.Evaluations()
// times per time value, in a fixed order, and never concurrently within one
// inversion. Any error aborts the inversion and is returned verbatim.
type Evaluator interface {
	Eval(s complex128) (complex128, error)
}

// StatefulEvaluator is an Evaluator that keeps state across the calls of one
// inversion (a memo, a budget, a trace). Begin is called once per time value,
// before the first Eval, with the number of Eval calls that follow.
type StatefulEvaluator interface {
	Evaluator
	Begin(evaluations int)
}

// Func adapts an infallible function to Evaluator.
type Func func(s complex128) complex128

// Eval implements Evaluator.
func (f Func) Eval(s complex128) (complex128, error) { return f(s), nil }

// FuncE adapts a fallible function to Evaluator.
type FuncE func(s complex128) (complex128, error)

// Eval implements Evaluator.
func (f FuncE) Eval(s complex128) (complex128, error) { return f(s) }

// isNil reports a nil interface or a typed-nil function adapter.
func isNil(f Evaluator) bool {
	switch fn := f.(type) {
	case nil:
		return true
	case Func:
		return fn == nil
	case FuncE:
		return fn == nil
	}

	return false
}

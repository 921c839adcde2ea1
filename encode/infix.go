package encode

import "github.com/signadot/go-recon/codec"

// InfixWriter writes lhs operator rhs, wrapping an operand in parentheses
// when its precedence is lower than precedence.
//
// Writing proceeds through these steps:
//
//	1 '(' for lhs
//	2 lhs
//	3 ')' for lhs
//	4 ' '
//	5 operator
//	6 ' '
//	7 '(' for rhs
//	8 rhs
//	9 ')' for rhs
type InfixWriter[I any] struct {
	codec.Cont
	d          Dispatch[I]
	lhs        I
	operator   string
	rhs        I
	precedence int
	part       codec.Writer
	step       int
}

// WriteInfix returns a writer for lhs operator rhs nested under precedence.
func WriteInfix[I any](d Dispatch[I], lhs I, operator string, rhs I, precedence int) codec.Writer {
	return &InfixWriter[I]{
		d:          d,
		lhs:        lhs,
		operator:   operator,
		rhs:        rhs,
		precedence: precedence,
		step:       1,
	}
}

// SizeOfInfix returns the number of bytes WriteInfix writes for the same
// arguments.
func SizeOfInfix[I any](d Dispatch[I], lhs I, operator string, rhs I, precedence int) int {
	size := parens(d.Precedence(lhs) < precedence)
	size += d.SizeOf(lhs)
	size += 1 + codec.SizeOfString(operator) + 1
	size += parens(d.Precedence(rhs) < precedence)
	size += d.SizeOf(rhs)
	return size
}

func (w *InfixWriter[I]) Pull(out codec.Output) codec.Writer {
	return writeInfix(out, w.d, w.lhs, w.operator, w.rhs, w.precedence, w.part, w.step)
}

func writeInfix[I any](out codec.Output, d Dispatch[I], lhs I, operator string, rhs I,
	precedence int, part codec.Writer, step int) codec.Writer {
	var ok bool
	if step == 1 {
		if d.Precedence(lhs) < precedence {
			if out, ok = emit(out, '('); ok {
				step = 2
			}
		} else {
			step = 2
		}
	}
	if step == 2 {
		if part == nil {
			part = d.WriterFor(lhs)
		}
		part = part.Pull(out)
		if part.IsDone() {
			part = nil
			step = 3
		} else if part.IsError() {
			return part
		}
	}
	if step == 3 {
		if d.Precedence(lhs) < precedence {
			if out, ok = emit(out, ')'); ok {
				step = 4
			}
		} else {
			step = 4
		}
	}
	if step == 4 {
		if out, ok = emit(out, ' '); ok {
			step = 5
		}
	}
	if step == 5 {
		if part == nil {
			part = codec.WriteString(operator)
		}
		part = part.Pull(out)
		if part.IsDone() {
			part = nil
			step = 6
		} else if part.IsError() {
			return part
		}
	}
	if step == 6 {
		if out, ok = emit(out, ' '); ok {
			step = 7
		}
	}
	if step == 7 {
		if d.Precedence(rhs) < precedence {
			if out, ok = emit(out, '('); ok {
				step = 8
			}
		} else {
			step = 8
		}
	}
	if step == 8 {
		if part == nil {
			part = d.WriterFor(rhs)
		}
		part = part.Pull(out)
		if part.IsDone() {
			part = nil
			step = 9
		} else if part.IsError() {
			return part
		}
	}
	if step == 9 {
		if d.Precedence(rhs) < precedence {
			if _, ok = emit(out, ')'); ok {
				return codec.Done()
			}
		} else {
			return codec.Done()
		}
	}
	return codec.Suspend(out, &InfixWriter[I]{
		d:          d,
		lhs:        lhs,
		operator:   operator,
		rhs:        rhs,
		precedence: precedence,
		part:       part,
		step:       step,
	})
}

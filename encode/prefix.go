package encode

import "github.com/signadot/go-recon/codec"

// PrefixWriter writes operator operand, wrapping the operand in parentheses
// when its precedence is lower than precedence.
type PrefixWriter[I any] struct {
	codec.Cont
	d          Dispatch[I]
	operator   string
	operand    I
	precedence int
	part       codec.Writer
	step       int
}

func WritePrefix[I any](d Dispatch[I], operator string, operand I, precedence int) codec.Writer {
	return &PrefixWriter[I]{
		d:          d,
		operator:   operator,
		operand:    operand,
		precedence: precedence,
		step:       1,
	}
}

func SizeOfPrefix[I any](d Dispatch[I], operator string, operand I, precedence int) int {
	size := codec.SizeOfString(operator)
	size += parens(d.Precedence(operand) < precedence)
	size += d.SizeOf(operand)
	return size
}

func (w *PrefixWriter[I]) Pull(out codec.Output) codec.Writer {
	return writePrefix(out, w.d, w.operator, w.operand, w.precedence, w.part, w.step)
}

func writePrefix[I any](out codec.Output, d Dispatch[I], operator string, operand I,
	precedence int, part codec.Writer, step int) codec.Writer {
	var ok bool
	wrap := d.Precedence(operand) < precedence
	if step == 1 {
		if part == nil {
			part = codec.WriteString(operator)
		}
		part = part.Pull(out)
		if part.IsDone() {
			part = nil
			step = 2
		} else if part.IsError() {
			return part
		}
	}
	if step == 2 {
		if !wrap {
			step = 3
		} else if out, ok = emit(out, '('); ok {
			step = 3
		}
	}
	if step == 3 {
		if part == nil {
			part = d.WriterFor(operand)
		}
		part = part.Pull(out)
		if part.IsDone() {
			part = nil
			step = 4
		} else if part.IsError() {
			return part
		}
	}
	if step == 4 {
		if !wrap {
			return codec.Done()
		}
		if _, ok = emit(out, ')'); ok {
			return codec.Done()
		}
	}
	return codec.Suspend(out, &PrefixWriter[I]{
		d:          d,
		operator:   operator,
		operand:    operand,
		precedence: precedence,
		part:       part,
		step:       step,
	})
}

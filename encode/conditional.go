package encode

import "github.com/signadot/go-recon/codec"

// ConditionalWriter writes cond ? then : else.
//
// The form is right associative, so the condition and the then branch are
// wrapped when their precedence is at most precedence and the else branch
// only when it is lower.
type ConditionalWriter[I any] struct {
	codec.Cont
	d          Dispatch[I]
	operands   [3]I
	precedence int
	part       codec.Writer
	step       int
}

var conditionalSeps = [2]string{" ? ", " : "}

func WriteConditional[I any](d Dispatch[I], cond, then, els I, precedence int) codec.Writer {
	return &ConditionalWriter[I]{
		d:          d,
		operands:   [3]I{cond, then, els},
		precedence: precedence,
	}
}

func SizeOfConditional[I any](d Dispatch[I], cond, then, els I, precedence int) int {
	operands := [3]I{cond, then, els}
	size := 0
	for i, x := range operands {
		size += parens(wrapConditional(d, x, i, precedence))
		size += d.SizeOf(x)
		if i < len(conditionalSeps) {
			size += codec.SizeOfString(conditionalSeps[i])
		}
	}
	return size
}

func wrapConditional[I any](d Dispatch[I], x I, i, precedence int) bool {
	if i == 2 {
		return d.Precedence(x) < precedence
	}
	return d.Precedence(x) <= precedence
}

func (w *ConditionalWriter[I]) Pull(out codec.Output) codec.Writer {
	return writeConditional(out, w.d, w.operands, w.precedence, w.part, w.step)
}

// Steps come in groups of four per operand: '(', operand, ')', separator.
// The else branch has no separator, so step 11 completes the item.
func writeConditional[I any](out codec.Output, d Dispatch[I], operands [3]I,
	precedence int, part codec.Writer, step int) codec.Writer {
	var ok bool
	for step < 11 {
		prev := step
		i := step / 4
		x := operands[i]
		switch step % 4 {
		case 0, 2:
			c := byte('(')
			if step%4 == 2 {
				c = ')'
			}
			if !wrapConditional(d, x, i, precedence) {
				step++
			} else if out, ok = emit(out, c); ok {
				step++
			}
		case 1:
			if part == nil {
				part = d.WriterFor(x)
			}
			part = part.Pull(out)
			if part.IsDone() {
				part = nil
				step++
			} else if part.IsError() {
				return part
			}
		case 3:
			if part == nil {
				part = codec.WriteString(conditionalSeps[i])
			}
			part = part.Pull(out)
			if part.IsDone() {
				part = nil
				step++
			} else if part.IsError() {
				return part
			}
		}
		if step == prev {
			break
		}
	}
	if step == 11 {
		return codec.Done()
	}
	return codec.Suspend(out, &ConditionalWriter[I]{
		d:          d,
		operands:   operands,
		precedence: precedence,
		part:       part,
		step:       step,
	})
}

package codec

// StringWriter writes a fixed string verbatim.
type StringWriter struct {
	Cont
	s     string
	index int
}

// WriteString returns a Writer emitting the bytes of s.
func WriteString(s string) Writer {
	if s == "" {
		return Done()
	}
	return &StringWriter{s: s}
}

// SizeOfString returns the number of bytes WriteString(s) emits.
func SizeOfString(s string) int {
	return len(s)
}

func (w *StringWriter) Pull(out Output) Writer {
	return writeString(out, w.s, w.index)
}

func writeString(out Output, s string, i int) Writer {
	for i < len(s) && out.IsCont() {
		out = out.Write(s[i])
		i++
	}
	if i == len(s) {
		return Done()
	}
	return Suspend(out, &StringWriter{s: s, index: i})
}

package encode

type EncodeOption func(*EncState)

// Chunk sets the number of bytes granted to the writer per pull.
func Chunk(n int) EncodeOption {
	return func(es *EncState) { es.chunk = n }
}

// Block writes a top level record without attributes as its comma
// separated items.
func Block(v bool) EncodeOption {
	return func(es *EncState) { es.block = v }
}

// Newline terminates the output with a newline.
func Newline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}

// VerifySize checks the predicted size of the document against the number
// of bytes written.
func VerifySize(v bool) EncodeOption {
	return func(es *EncState) { es.verify = v }
}

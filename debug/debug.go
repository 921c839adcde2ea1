package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Pull  bool
	Size  bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Pull = boolEnv("RECON_DEBUG_PULL")
	d.Size = boolEnv("RECON_DEBUG_SIZE")
	d.Parse = boolEnv("RECON_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Pull reports whether each pull of a writer pump is logged.
func Pull() bool {
	return d.Pull
}

// Size reports whether encoders verify predicted sizes against the bytes
// actually written.
func Size() bool {
	return d.Size
}

func Parse() bool {
	return d.Parse
}

// SetPull, SetSize and SetParse override the environment, mostly for tests.
func SetPull(v bool)  { d.Pull = v }
func SetSize(v bool)  { d.Size = v }
func SetParse(v bool) { d.Parse = v }

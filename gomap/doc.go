// Package gomap converts Go values to IR nodes.
//
// Struct fields are named by their recon tag, with the usual options:
//
//	type Point struct {
//		Kind string  `recon:"point,attr"` // written as @point(...)
//		X    int     `recon:"x"`
//		Y    int     `recon:"y,omitempty"`
//		Note *string `recon:"-"`
//	}
//
// An attr field whose value is the zero value is written as an attribute
// without an argument.  Values implementing [IRer] convert themselves.
package gomap

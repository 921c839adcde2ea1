// Package parse converts JSON, YAML and expression text to IR nodes.
//
// JSON and YAML documents are decoded with order preserved.  Objects
// become records of slots and arrays become records of values:
//
//	{"@point": null, "x": 1, "y": 2}  =>  @point{x:1,y:2}
//
// Expression text uses expr syntax; identifiers and member accesses become
// references, and the word operators and, or and not are read as &&, || and
// !:
//
//	a.b + 1 > c and not d  =>  $a.b + 1 > $c && !$d
package parse

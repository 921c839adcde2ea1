package gomap

import (
	"reflect"
	"strings"
)

type fieldTag struct {
	name      string
	skip      bool
	omitEmpty bool
	attr      bool
}

func parseTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup("recon")
	if !ok {
		return fieldTag{name: f.Name}
	}
	if tag == "-" {
		return fieldTag{skip: true}
	}
	name, rest, _ := strings.Cut(tag, ",")
	res := fieldTag{name: name}
	if res.name == "" {
		res.name = f.Name
	}
	for _, opt := range strings.Split(rest, ",") {
		switch opt {
		case "omitempty":
			res.omitEmpty = true
		case "attr":
			res.attr = true
		}
	}
	return res
}

package fern

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// DumpProgram writes an indented s-expression rendering of a parsed program
// to w, one top-level statement per top-level form. It exists for `fern
// parse`'s human-readable output and for tests that want a structural
// snapshot of an AST without hand-writing cmp.Diff expectations for every
// node kind.
func DumpProgram(w io.Writer, program []Stmt) {
	for _, stmt := range program {
		fmt.Fprintln(w, dumpValue(reflect.ValueOf(stmt), 0))
	}
}

// DumpNode renders a single AST node (Expr, Stmt, Pattern, or TypeAnn) as an
// indented s-expression.
func DumpNode(node any) string {
	return dumpValue(reflect.ValueOf(node), 0)
}

// dumpValue renders v (expected to be one of the AST's interface or struct
// types) as an s-expression, indenting nested forms by one level per call
// depth. It walks exported struct fields via reflection rather than
// type-switching over every one of the AST's ~50 variants by hand.
func dumpValue(v reflect.Value, depth int) string {
	if !v.IsValid() {
		return "nil"
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return "nil"
		}

		return dumpValue(v.Elem(), depth)
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "[]"
		}

		var b strings.Builder

		b.WriteString("[\n")

		for i := 0; i < v.Len(); i++ {
			b.WriteString(indent(depth + 1))
			b.WriteString(dumpValue(v.Index(i), depth+1))
			b.WriteByte('\n')
		}

		b.WriteString(indent(depth))
		b.WriteByte(']')

		return b.String()
	case reflect.Struct:
		return dumpStruct(v, depth)
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func dumpStruct(v reflect.Value, depth int) string {
	t := v.Type()

	var fields []string

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		fields = append(fields, fmt.Sprintf("%s%s: %s", indent(depth+1), f.Name, dumpValue(v.Field(i), depth+1)))
	}

	if len(fields) == 0 {
		return fmt.Sprintf("(%s)", t.Name())
	}

	return fmt.Sprintf("(%s\n%s\n%s)", t.Name(), strings.Join(fields, "\n"), indent(depth))
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

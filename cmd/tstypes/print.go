package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/hanpama/tstypes/internal/generate"
	"github.com/hanpama/tstypes/internal/typegen"
)

func printResult(w io.Writer, res *generate.Result) error {
	b := bufio.NewWriter(w)
	if res.MaybeDeclaration != "" {
		fmt.Fprintln(b, res.MaybeDeclaration)
		fmt.Fprintln(b)
	}
	for _, s := range res.Scalars {
		fmt.Fprintf(b, "scalar %s = %s\n", s.Name, s.Type)
	}
	for _, e := range res.Enums {
		switch e.Class.Kind {
		case typegen.EnumDefault:
			fmt.Fprintf(b, "enum %s\n", e.Name)
			for _, v := range e.Values {
				fmt.Fprintf(b, "  %s = %s\n", v.Name, v.Literal)
			}
		case typegen.EnumExternal:
			fmt.Fprintf(b, "enum %s: external %s from %s\n", e.Name, e.Class.TypeName(), e.Class.File)
		default:
			fmt.Fprintf(b, "enum %s: %s\n", e.Name, e.Class.Kind)
		}
	}
	for _, t := range res.Types {
		fmt.Fprintf(b, "%s %s\n", t.Kind, t.Name)
		printFields(b, "  ", t.Fields)
	}
	for _, d := range slices.Concat(res.Fragments, res.Operations) {
		fmt.Fprintf(b, "%s %s\n", d.Kind, d.Name)
		for _, s := range d.Selections {
			fmt.Fprintf(b, "  %s on %s%s\n", s.Path, s.OnType, s.Fragments)
			printFields(b, "    ", s.Fields)
		}
	}
	return b.Flush()
}

func printFields(w io.Writer, indent string, fields []generate.Field) {
	for _, f := range fields {
		fmt.Fprintf(w, "%s%s%s: %s\n", indent, f.Name, f.Optional, f.Type)
	}
}

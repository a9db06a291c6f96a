package swiftdsv_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oleg578/swiftdsv"
)

func ExampleReader() {
	r, err := swiftdsv.NewReader("id::name;;;1::ada;;;2::grace", swiftdsv.Dialect{Value: "::", Record: ";;;"})
	if err != nil {
		panic(err)
	}
	for r.NextRecord() {
		var cells []string
		for r.NextValue() {
			offset, _ := r.Offset()
			cells = append(cells, fmt.Sprintf("%q@%d", r.Value(), offset))
		}
		fmt.Println(strings.Join(cells, " "))
	}
	// Output:
	// "id"@0 "name"@4
	// "1"@11 "ada"@14
	// "2"@20 "grace"@23
}

func ExampleWriter() {
	var out strings.Builder
	w, err := swiftdsv.NewWriter(&out, swiftdsv.Dialect{Value: "\t", Record: "\n"})
	if err != nil {
		panic(err)
	}
	w.OmitFinalTerminator = true
	if err := w.WriteAll([][]string{{"a", "b"}, {"c"}}); err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", out.String())

	err = w.Write([]string{"tab\tinside"})
	fmt.Println(errors.Is(err, swiftdsv.ErrEmbeddedDelimiter))
	// Output:
	// "a\tb\nc"
	// true
}

func ExampleParser() {
	p, err := swiftdsv.NewParser("a||b\nc", swiftdsv.Dialect{Value: "|", Record: "\n"})
	if err != nil {
		panic(err)
	}
	fmt.Println(p.RecordCount())
	n, _ := p.ValueCount(0)
	fmt.Println(n)
	v, _ := p.Value(0, 2)
	fmt.Println(v)
	_, err = p.Value(1, 1)
	fmt.Println(err)
	// Output:
	// 2
	// 3
	// b
	// swiftdsv: index out of range: value 1 of record 1 not in [0, 1)
}

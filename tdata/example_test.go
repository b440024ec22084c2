package tdata_test

import (
	"fmt"

	"github.com/Neumenon/tdata/tdata"
)

func ExampleDecoder() {
	buf := tdata.EncodeAll(
		tdata.New(tdata.Int64(42)),
		tdata.New(tdata.Str("hi")),
		tdata.New(tdata.VecInt64{1, 2, 3}),
	)
	fmt.Println(buf)

	dec := tdata.NewDecoder([]byte(buf))
	for {
		var v tdata.Value
		if !dec.Next(&v) {
			break
		}
		fmt.Println(v)
	}
	if err := dec.Err(); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// ^i42$^shi$^I3:1:2:3$
	// int64(42)
	// str("hi")
	// vec_int64[1 2 3]
}

func ExampleValue_SetValue() {
	var v tdata.Value
	fmt.Println(v.SetValue(tdata.Int64(1)))
	fmt.Println(v.SetValue(tdata.Str("x")))
	v.Clear()
	fmt.Println(v.Kind(), v.IsNull(), v.Encode())
	// Output:
	// <nil>
	// kind mismatch: bound to int64, got str
	// int64 true ^i0$
}

func ExampleEscape() {
	s := tdata.Escape("a:b$c")
	fmt.Println(s)
	fmt.Println(tdata.Unescape([]byte(s)))
	// Output:
	// a\:b\$c
	// a:b$c
}

// Package tdata implements a tagged value holder and its compact,
// self-delimiting text encoding.
//
// A Value binds exactly one of six kinds and holds a value of that kind:
//
//	Scalars: int64 (i), real64 (r), str (s)
//	Vectors: vec_int64 (I), vec_real64 (R), vec_str (S)
//
// The first successful bind fixes the kind for the life of the Value.
// Clear resets the held value to the kind's null value but keeps the kind.
//
// # Record Syntax
//
// Every value is written as one record:
//
//	^<tag><payload>$
//
// Scalars carry their decimal text or escaped string directly. Vectors
// carry an element count followed by one ':'-prefixed element each:
//
//	^i42$           int64
//	^r0.25$         real64
//	^shello$        str
//	^I3:1:2:3$      vec_int64
//	^R0$            empty vec_real64
//	^S2:a\:b:c$     vec_str {"a:b", "c"}
//
// Inside string payloads ':' and '$' are preceded by '\'. The begin byte
// '^' is never escaped.
//
// # Decoding
//
// Records are self-delimiting, so any number of them can be concatenated
// into one buffer and read back in order with a Decoder:
//
//	buf := tdata.EncodeAll(tdata.New(tdata.Int64(42)), tdata.New(tdata.Str("hi")))
//	dec := tdata.NewDecoder([]byte(buf))
//	for {
//		var v tdata.Value
//		if !dec.Next(&v) {
//			break
//		}
//		fmt.Println(v)
//	}
//	if err := dec.Err(); err != nil {
//		// handle
//	}
//
// # Error Tolerance
//
// Structure is checked strictly: a missing begin byte, wrong tag,
// unterminated record, or a kind that conflicts with a bound target
// fails the decode. Numeric text is parsed permissively: malformed
// numbers inside a well-formed record decode as their longest valid
// prefix, or zero.
//
// # Known Limitations
//
// An end byte counts as escaped when the single byte before it is '\'.
// A string whose encoded form ends in '\' therefore cannot be framed, and
// strings containing '^' are not guaranteed to round-trip.
package tdata

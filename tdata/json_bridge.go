package tdata

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// A Value maps to a JSON object carrying its kind name and value:
//
//	{"kind":"vec_int64","value":[1,2,3]}
//	{"kind":"unbound"}
//
// NaN and infinities have no JSON form and are rejected.

type jsonValue struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	jv := jsonValue{Kind: v.kind.String()}
	if v.kind == KindUnbound {
		return json.Marshal(jv)
	}
	if err := checkFinite(v.data); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(v.data)
	if err != nil {
		return nil, fmt.Errorf("tdata: marshal %s: %w", v.kind, err)
	}
	jv.Value = raw
	return json.Marshal(jv)
}

// UnmarshalJSON implements json.Unmarshaler. A bound v only accepts a
// value of its own kind.
func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return fmt.Errorf("tdata: JSON parse error: %w", err)
	}
	k, ok := ParseKind(jv.Kind)
	if !ok {
		return fmt.Errorf("tdata: unknown kind %q", jv.Kind)
	}
	if k == KindUnbound {
		if v.kind != KindUnbound {
			return mismatchErr(v.kind, k)
		}
		return nil
	}
	p, err := PayloadFromJSON(k, jv.Value)
	if err != nil {
		return err
	}
	return v.SetValue(p)
}

// FromJSON decodes a single JSON value object into a new Value.
func FromJSON(data []byte) (Value, error) {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return Value{}, err
	}
	return v, nil
}

// PayloadFromJSON decodes a bare JSON value as a payload of kind k. An
// empty raw message yields k's null value.
func PayloadFromJSON(k Kind, raw []byte) (Payload, error) {
	if len(raw) == 0 {
		return k.Null(), nil
	}
	var (
		p   Payload
		err error
	)
	switch k {
	case KindInt64:
		var n int64
		err = json.Unmarshal(raw, &n)
		p = Int64(n)
	case KindReal64:
		var r float64
		err = json.Unmarshal(raw, &r)
		p = Real64(r)
	case KindStr:
		var s string
		err = json.Unmarshal(raw, &s)
		p = Str(s)
	case KindVecInt64:
		var vs []int64
		err = json.Unmarshal(raw, &vs)
		p = VecInt64(vs)
	case KindVecReal64:
		var vs []float64
		err = json.Unmarshal(raw, &vs)
		p = VecReal64(vs)
	case KindVecStr:
		var vs []string
		err = json.Unmarshal(raw, &vs)
		p = VecStr(vs)
	default:
		return nil, fmt.Errorf("tdata: unknown kind %s", k)
	}
	if err != nil {
		return nil, fmt.Errorf("tdata: %s value: %w", k, err)
	}
	return p, nil
}

func checkFinite(p Payload) error {
	bad := func(r float64) bool { return math.IsNaN(r) || math.IsInf(r, 0) }
	switch x := p.(type) {
	case Real64:
		if bad(float64(x)) {
			return fmt.Errorf("tdata: %v is not allowed in JSON", float64(x))
		}
	case VecReal64:
		for _, r := range x {
			if bad(r) {
				return fmt.Errorf("tdata: %v is not allowed in JSON", r)
			}
		}
	}
	return nil
}

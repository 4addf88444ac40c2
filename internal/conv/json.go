package conv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Encode returns the JSON form of value or an error when value cannot be
// represented in JSON (channels, functions, NaN, cyclic structures, ...).
func Encode(value any) (json.RawMessage, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Convert performs a best-effort conversion of the input value into the type
// pointed to by outPtr.
//
// When input is already assignable to the destination element type it is
// copied directly, otherwise Convert falls back to a JSON round-trip.
// A nil input leaves outPtr's value untouched.
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}
	if in == nil {
		return nil
	}
	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return Decode(data, outPtr)
}

// Decode unmarshals raw into outPtr. Integer destinations also accept
// integral floating point literals such as 3.0.
func Decode(raw []byte, outPtr any) error {
	if ip, ok := outPtr.(*int); ok {
		i, err := Integer(raw)
		if err != nil {
			return err
		}
		*ip = i
		return nil
	}
	return json.Unmarshal(raw, outPtr)
}

// Integer decodes a JSON number into int. null decodes to 0.
func Integer(raw []byte) (int, error) {
	raw = bytes.TrimSpace(raw)
	if string(raw) == "null" {
		return 0, nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		return 0, fmt.Errorf("%s is not a number", raw)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("%v is not an integer", n)
	}
	return int(f), nil
}

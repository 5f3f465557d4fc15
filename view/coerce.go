package view

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// coerce is the no-callback fallback of Get: a best-effort scalar conversion
// driven by the requested static type, not the stored value's type. Integer,
// unsigned, float and bool targets parse the value's textual form and fail
// soft to absent; a string target stringifies any non-null value
// unconditionally; slice targets coerce element-wise, failing the whole list
// if any element fails.
func coerce[T any](raw any) (T, bool) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil {
		// T is an interface type; the pass-through assertion already had its
		// chance.
		return zero, false
	}
	out, ok := coerceValue(raw, rt)
	if !ok {
		return zero, false
	}
	t, ok := out.Interface().(T)
	return t, ok
}

func coerceValue(raw any, rt reflect.Type) (reflect.Value, bool) {
	switch rt.Kind() {
	case reflect.String:
		return reflect.ValueOf(stringify(raw)).Convert(rt), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(stringify(raw), 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		out := reflect.New(rt).Elem()
		if out.OverflowInt(n) {
			return reflect.Value{}, false
		}
		out.SetInt(n)
		return out, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(stringify(raw), 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		out := reflect.New(rt).Elem()
		if out.OverflowUint(n) {
			return reflect.Value{}, false
		}
		out.SetUint(n)
		return out, true
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(stringify(raw), 64)
		if err != nil {
			return reflect.Value{}, false
		}
		out := reflect.New(rt).Elem()
		out.SetFloat(f)
		return out, true
	case reflect.Bool:
		b, err := strconv.ParseBool(stringify(raw))
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(b).Convert(rt), true
	case reflect.Slice:
		seq, ok := raw.([]any)
		if !ok {
			return reflect.Value{}, false
		}
		out := reflect.MakeSlice(rt, 0, len(seq))
		for _, item := range seq {
			if item == nil {
				return reflect.Value{}, false
			}
			if reflect.TypeOf(item) == rt.Elem() {
				out = reflect.Append(out, reflect.ValueOf(item))
				continue
			}
			ev, ok := coerceValue(item, rt.Elem())
			if !ok {
				return reflect.Value{}, false
			}
			out = reflect.Append(out, ev)
		}
		return out, true
	default:
		return reflect.Value{}, false
	}
}

// stringify renders a raw scalar in the textual form the coercion parsers
// consume. Integral floats render without a fractional part, so a JSON
// number decoded as float64(30) still parses as the integer 30.
func stringify(raw any) string {
	switch t := raw.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

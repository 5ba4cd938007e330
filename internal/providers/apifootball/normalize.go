package apifootball

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/valyala/fastjson"

	"github.com/preston-bernstein/superliga-data-service/internal/providers"
)

// Normalize coerces an apifootball body into a record list.
//
//   - arrays are returned element by element
//   - {} becomes an empty list
//   - an object with an "error" key becomes a *providers.APIError
//   - any other object yields its values, integer keys first in ascending order
//   - scalars and null become an empty list
func Normalize(body []byte) ([]json.RawMessage, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("apifootball: decode response: %w", err)
	}

	switch v.Type() {
	case fastjson.TypeArray:
		items, _ := v.Array()
		out := make([]json.RawMessage, 0, len(items))
		for _, item := range items {
			out = append(out, item.MarshalTo(nil))
		}
		return out, nil
	case fastjson.TypeObject:
		obj, _ := v.Object()
		if obj.Len() == 0 {
			return []json.RawMessage{}, nil
		}
		if errVal := obj.Get("error"); errVal != nil {
			return nil, apiError(obj, errVal, body)
		}
		return objectValues(obj), nil
	default:
		return []json.RawMessage{}, nil
	}
}

func apiError(obj *fastjson.Object, errVal *fastjson.Value, body []byte) *providers.APIError {
	e := &providers.APIError{
		Provider: providerName,
		Message:  text(errVal),
		Body:     string(body),
	}
	if msg := obj.Get("message"); msg != nil && msg.Type() == fastjson.TypeString {
		e.Detail = string(msg.GetStringBytes())
	}
	return e
}

func text(v *fastjson.Value) string {
	if v.Type() == fastjson.TypeString {
		return string(v.GetStringBytes())
	}
	return string(v.MarshalTo(nil))
}

type indexedValue struct {
	index uint64
	value json.RawMessage
}

// objectValues orders values the way a JavaScript Object.values call would.
func objectValues(obj *fastjson.Object) []json.RawMessage {
	var indexed []indexedValue
	var named []json.RawMessage
	obj.Visit(func(key []byte, v *fastjson.Value) {
		raw := json.RawMessage(v.MarshalTo(nil))
		if idx, ok := arrayIndex(string(key)); ok {
			indexed = append(indexed, indexedValue{index: idx, value: raw})
			return
		}
		named = append(named, raw)
	})
	sort.SliceStable(indexed, func(i, j int) bool { return indexed[i].index < indexed[j].index })

	out := make([]json.RawMessage, 0, len(indexed)+len(named))
	for _, iv := range indexed {
		out = append(out, iv.value)
	}
	return append(out, named...)
}

// arrayIndex reports whether key is a canonical non-negative integer ("0", "17", not "01" or "-1").
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return n, true
}

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	KindNone ValueKind = iota
	KindText
	KindNumber
	KindBool
	KindList
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "none"
	}
}

// Value is a single answer: a scalar (text, number, bool) or an ordered
// list of strings. Object only appears when a stored record carries a
// nested JSON object; the engine never produces one. The zero Value is None.
type Value struct {
	kind   ValueKind
	text   string
	num    float64
	flag   bool
	items  []string
	fields map[string]json.RawMessage
}

func Text(s string) Value { return Value{kind: KindText, text: s} }

func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

func None() Value { return Value{} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNone() bool { return v.kind == KindNone }

func (v Value) IsList() bool { return v.kind == KindList }

// List builds a multi-select value. The items are copied.
func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// Items returns a copy of the list items, or nil for non-list values.
func (v Value) Items() []string {
	if v.kind != KindList {
		return nil
	}
	cp := make([]string, len(v.items))
	copy(cp, v.items)
	return cp
}

// String renders the value the way it is compared by text-based rules:
// lists are comma-joined, numbers use the shortest representation.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindList:
		return strings.Join(v.items, ",")
	case KindObject:
		b, _ := json.Marshal(v.fields)
		return string(b)
	default:
		return ""
	}
}

// Float interprets the value as a number. Text is parsed after trimming;
// anything else is not numeric.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) {
			return 0, false
		}
		return v.num, true
	case KindText:
		s := strings.TrimSpace(v.text)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Contains reports whether a list value holds s, or a scalar equals s.
func (v Value) Contains(s string) bool {
	if v.kind == KindList {
		for _, item := range v.items {
			if item == s {
				return true
			}
		}
		return false
	}
	if v.kind == KindNone {
		return false
	}
	return v.String() == s
}

// Filled reports whether the value counts as answered for completion
// scoring. Only None, whitespace-only text, NaN, an empty list and an
// empty object are unanswered; false and zero count as answers.
func (v Value) Filled() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) != ""
	case KindNumber:
		return !math.IsNaN(v.num)
	case KindBool:
		return true
	case KindList:
		return len(v.items) > 0
	case KindObject:
		return len(v.fields) > 0
	default:
		return false
	}
}

// Equal compares kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if v.items[i] != o.items[i] {
				return false
			}
		}
		return true
	case KindObject:
		return v.String() == o.String()
	case KindNumber:
		return v.num == o.num || (math.IsNaN(v.num) && math.IsNaN(o.num))
	default:
		return v.text == o.text && v.flag == o.flag
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.flag)
	case KindList:
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	case KindObject:
		return json.Marshal(v.fields)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = None()
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case '[':
		var raw []any
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make([]string, 0, len(raw))
		for _, r := range raw {
			switch x := r.(type) {
			case string:
				items = append(items, x)
			case nil:
				continue
			default:
				items = append(items, fmt.Sprint(x))
			}
		}
		*v = Value{kind: KindList, items: items}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		*v = Value{kind: KindObject, fields: fields}
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decoding answer value: %w", err)
		}
		*v = Number(n)
	}
	return nil
}

// ParseInput converts raw command-line or form input into a Value. When
// asList is set the input is split on commas; otherwise numeric-looking
// input stays text so that exact-match rules see what the user typed.
func ParseInput(raw string, asList bool) Value {
	if asList {
		var items []string
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				items = append(items, p)
			}
		}
		return List(items...)
	}
	if strings.TrimSpace(raw) == "" {
		return None()
	}
	return Text(raw)
}

package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindString
	KindBool
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	}
	return "invalid"
}

// Value is a property value: a number, a string, a bool or a nested map.
// The zero Value is invalid and is rejected by validation.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	m    map[string]Value
}

func Num(v float64) Value { return Value{kind: KindNumber, num: v} }
func Str(v string) Value  { return Value{kind: KindString, str: v} }
func Bool(v bool) Value   { return Value{kind: KindBool, b: v} }

func MapOf(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindMap, m: m}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }
func (v Value) AsString() (string, bool)  { return v.str, v.kind == KindString }
func (v Value) AsBool() (bool, bool)      { return v.b, v.kind == KindBool }

func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

func (v Value) Clone() Value {
	if v.kind != KindMap {
		return v
	}
	m := make(map[string]Value, len(v.m))
	for k, e := range v.m {
		m[k] = e.Clone()
	}
	return Value{kind: KindMap, m: m}
}

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, e := range v.m {
			oe, ok := o.m[k]
			if !ok || !e.Equal(oe) {
				return false
			}
		}
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%s: %s", k, v.m[k])
		}
		buf.WriteByte('}')
		return buf.String()
	}
	return "<invalid>"
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		return json.Marshal(v.m)
	}
	return nil, fmt.Errorf("scene: marshal invalid property value")
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("scene: empty property value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Str(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case '{':
		var m map[string]Value
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*v = MapOf(m)
	case '[', 'n':
		return fmt.Errorf("scene: unsupported property value %s", data)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Num(n)
	}
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindString:
		return v.str, nil
	case KindBool:
		return v.b, nil
	case KindMap:
		return v.m, nil
	}
	return nil, fmt.Errorf("scene: marshal invalid property value")
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var m map[string]Value
		if err := node.Decode(&m); err != nil {
			return err
		}
		*v = MapOf(m)
		return nil
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*v = Bool(b)
		case "!!int", "!!float":
			var n float64
			if err := node.Decode(&n); err != nil {
				return err
			}
			*v = Num(n)
		case "!!null":
			return fmt.Errorf("scene: null property value at line %d", node.Line)
		default:
			*v = Str(node.Value)
		}
		return nil
	}
	return fmt.Errorf("scene: unsupported property value at line %d", node.Line)
}

// Properties is an open map of typed values attached to objects and assets.
type Properties map[string]Value

func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v.Clone()
	}
	return out
}

func (p Properties) Number(key string) (float64, bool) { return p[key].AsNumber() }
func (p Properties) Text(key string) (string, bool)    { return p[key].AsString() }
func (p Properties) Flag(key string) (bool, bool)      { return p[key].AsBool() }

package scene

import "fmt"

// PropertySpec documents one well-known property key.
type PropertySpec struct {
	Key  string
	Kind Kind
}

var commonProperties = []PropertySpec{{"color", KindString}}

var propertySchema = map[ObjectType][]PropertySpec{
	Player: {
		{"speed", KindNumber},
		{"jumpPower", KindNumber},
		{"health", KindNumber},
		{"mana", KindNumber},
		{"level", KindNumber},
		{"fireRate", KindNumber},
		{"weaponType", KindString},
	},
	Enemy: {
		{"health", KindNumber},
		{"speed", KindNumber},
		{"damage", KindNumber},
		{"fireRate", KindNumber},
		{"type", KindString},
		{"dialogue", KindString},
	},
	Collectible: {
		{"points", KindNumber},
		{"healing", KindNumber},
		{"duration", KindNumber},
		{"upgradeLevel", KindNumber},
		{"gridX", KindNumber},
		{"gridY", KindNumber},
		{"type", KindString},
	},
}

// Schema lists the known property keys for an object type, shared keys first.
func Schema(t ObjectType) []PropertySpec {
	out := append([]PropertySpec(nil), commonProperties...)
	return append(out, propertySchema[t]...)
}

// LookupProperty returns the spec for key on objects of type t.
func LookupProperty(t ObjectType, key string) (PropertySpec, bool) {
	for _, s := range Schema(t) {
		if s.Key == key {
			return s, true
		}
	}
	return PropertySpec{}, false
}

// CheckProperties validates props against the schema for t. Unknown keys are
// allowed; known keys must carry the documented kind.
func CheckProperties(t ObjectType, props Properties) error {
	for key, v := range props {
		if v.Kind() == KindInvalid {
			return fmt.Errorf("property %q: invalid value", key)
		}
		spec, ok := LookupProperty(t, key)
		if !ok {
			continue
		}
		if v.Kind() != spec.Kind {
			return fmt.Errorf("property %q: got %s, want %s", key, v.Kind(), spec.Kind)
		}
	}
	return nil
}

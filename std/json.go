/*
File    : koi/std/json.go

toJson/fromJson (spec.md §6): a JSON-compatible mapping between Koi
Values and Go's encoding/json generic tree. No example repo in the
retrieved pack carries a non-stdlib JSON library (the teacher has none
at all), so this is one of the few places Koi falls back to the
standard library rather than a third-party dependency; see DESIGN.md.
*/
package std

import (
	"encoding/json"

	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
)

// ToJSON renders v as a JSON string. Func and Range are not
// serializable (spec.md §6) and raise a fatal error.
func ToJSON(v objects.Value) string {
	generic := toGeneric(v)
	out, err := json.Marshal(generic)
	if err != nil {
		koierr.Raise("toJson: %v", err)
	}
	return string(out)
}

// FromJSON parses s into a Koi Value.
func FromJSON(s string) objects.Value {
	var generic interface{}
	if err := json.Unmarshal([]byte(s), &generic); err != nil {
		koierr.Raise("fromJson: %v", err)
	}
	return fromGeneric(generic)
}

func toGeneric(v objects.Value) interface{} {
	switch vv := v.(type) {
	case *objects.Nil:
		return nil
	case *objects.Num:
		return vv.Value
	case *objects.String:
		return vv.Value
	case *objects.Bool:
		return vv.Value
	case *objects.Vec:
		out := make([]interface{}, len(vv.Elements))
		for i, e := range vv.Elements {
			out[i] = toGeneric(e)
		}
		return out
	case *objects.Dict:
		out := make(map[string]interface{}, vv.Len())
		for _, k := range vv.Keys() {
			val, _ := vv.Get(k)
			out[k] = toGeneric(val)
		}
		return out
	default:
		koierr.Raise("toJson: value of type %s is not serializable", v.GetType())
		return nil
	}
}

func fromGeneric(g interface{}) objects.Value {
	switch gv := g.(type) {
	case nil:
		return &objects.Nil{}
	case float64:
		return &objects.Num{Value: gv}
	case int:
		// yaml.v3 decodes unsuffixed integers as int, not float64
		// (unlike encoding/json, which always produces float64).
		return &objects.Num{Value: float64(gv)}
	case string:
		return &objects.String{Value: gv}
	case bool:
		return &objects.Bool{Value: gv}
	case []interface{}:
		elems := make([]objects.Value, len(gv))
		for i, e := range gv {
			elems[i] = fromGeneric(e)
		}
		return objects.NewVec(elems)
	case map[string]interface{}:
		d := objects.NewDict()
		for k, val := range gv {
			d.Set(k, fromGeneric(val))
		}
		return d
	default:
		koierr.Raise("fromJson: unsupported JSON value")
		return &objects.Nil{}
	}
}

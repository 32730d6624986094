/*
File    : koi/eval/eval_access.go

Field/index access (spec.md §4.4): Vec indexed by Range yields a copy
slice, Vec indexed by Num yields an element (integer-truncated index
required), Dict indexed by String or Num (stringified) yields an entry.
When direct access fails and the index is a String, resolution falls
back to the builtin method table (see std.LookupMethod).
*/
package eval

import (
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
	"github.com/koi-lang/koi/std"
)

func (e *Evaluator) getField(base, index objects.Value) objects.Value {
	switch b := base.(type) {
	case *objects.Vec:
		if rng, ok := index.(*objects.Range); ok {
			return sliceVec(b, rng)
		}
		if n, ok := index.(*objects.Num); ok {
			return vecAt(b, n)
		}
		if name, ok := index.(*objects.String); ok {
			if m, found := std.LookupMethod(base, name.Value); found {
				return m.WithReceiver(base)
			}
		}
		koierr.Raise("vec index must be a num or range, got %s", index.GetType())

	case *objects.Dict:
		key, ok := dictKey(index)
		if ok {
			if v, found := b.Get(key); found {
				return v
			}
			if name, ok := index.(*objects.String); ok {
				if m, found := std.LookupMethod(base, name.Value); found {
					return m.WithReceiver(base)
				}
			}
			koierr.Raise("dict has no entry %q", key)
		}
		koierr.Raise("dict key must be a string or num, got %s", index.GetType())

	case *objects.String:
		if name, ok := index.(*objects.String); ok {
			if m, found := std.LookupMethod(base, name.Value); found {
				return m.WithReceiver(base)
			}
			koierr.Raise("string has no method %q", name.Value)
		}
		koierr.Raise("string index must be a method name")

	default:
		if name, ok := index.(*objects.String); ok {
			if m, found := std.LookupMethod(base, name.Value); found {
				return m.WithReceiver(base)
			}
		}
		koierr.Raise("cannot index a value of type %s", base.GetType())
	}
	return nil
}

func (e *Evaluator) setField(base, index, value objects.Value) {
	switch b := base.(type) {
	case *objects.Vec:
		n, ok := index.(*objects.Num)
		if !ok {
			koierr.Raise("vec assignment index must be a num, got %s", index.GetType())
		}
		i := vecIndex(b, n)
		b.Elements[i] = value
	case *objects.Dict:
		key, ok := dictKey(index)
		if !ok {
			koierr.Raise("dict assignment key must be a string or num, got %s", index.GetType())
		}
		b.Set(key, value)
	default:
		koierr.Raise("cannot assign into a value of type %s", base.GetType())
	}
}

func dictKey(index objects.Value) (string, bool) {
	switch k := index.(type) {
	case *objects.String:
		return k.Value, true
	case *objects.Num:
		return k.ToString(), true
	}
	return "", false
}

func vecIndex(v *objects.Vec, n *objects.Num) int {
	if !n.IsInt() {
		koierr.Raise("vec index must be an integer, got %s", n.ToString())
	}
	i := int(n.Value)
	if i < 0 {
		i += len(v.Elements)
	}
	if i < 0 || i >= len(v.Elements) {
		koierr.Raise("vec index %d out of range (len %d)", int(n.Value), len(v.Elements))
	}
	return i
}

func vecAt(v *objects.Vec, n *objects.Num) objects.Value {
	return v.Elements[vecIndex(v, n)]
}

func sliceVec(v *objects.Vec, r *objects.Range) objects.Value {
	n := int64(len(v.Elements))
	start, end := r.Start, r.End
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	cp := make([]objects.Value, end-start)
	copy(cp, v.Elements[start:end])
	return objects.NewVec(cp)
}

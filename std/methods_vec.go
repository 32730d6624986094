/*
File    : koi/std/methods_vec.go

Vec methods (spec.md §6). map/filter/forEach call back into the
evaluator through CallFunc (see methods.go).
*/
package std

import (
	"github.com/koi-lang/koi/function"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
)

func selfVec(args []objects.Value) *objects.Vec {
	v, ok := args[0].(*objects.Vec)
	if !ok {
		koierr.Raise("method called on non-vec receiver")
	}
	return v
}

var vecMethods = map[string]*function.Native{
	"len": method("len", 0, func(args []objects.Value) objects.Value {
		return &objects.Num{Value: float64(len(selfVec(args).Elements))}
	}),
	"map": method("map", 1, func(args []objects.Value) objects.Value {
		v := selfVec(args)
		out := make([]objects.Value, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = call(args[1], []objects.Value{e})
		}
		return objects.NewVec(out)
	}),
	"filter": method("filter", 1, func(args []objects.Value) objects.Value {
		v := selfVec(args)
		var out []objects.Value
		for _, e := range v.Elements {
			if objects.Truthy(call(args[1], []objects.Value{e})) {
				out = append(out, e)
			}
		}
		return objects.NewVec(out)
	}),
	"forEach": method("forEach", 1, func(args []objects.Value) objects.Value {
		v := selfVec(args)
		for _, e := range v.Elements {
			call(args[1], []objects.Value{e})
		}
		return &objects.Nil{}
	}),
	"clone": method("clone", 0, func(args []objects.Value) objects.Value {
		return selfVec(args).Clone()
	}),
	"dict": method("dict", 0, func(args []objects.Value) objects.Value {
		v := selfVec(args)
		d := objects.NewDict()
		for i, e := range v.Elements {
			pair, ok := e.(*objects.Vec)
			if !ok || len(pair.Elements) != 2 {
				koierr.Raise("dict(): element %d is not a [key, value] pair", i)
			}
			key, ok := pair.Elements[0].(*objects.String)
			if !ok {
				koierr.Raise("dict(): element %d's key is not a string", i)
			}
			d.Set(key.Value, pair.Elements[1])
		}
		return d
	}),
	"contains": method("contains", 1, func(args []objects.Value) objects.Value {
		v := selfVec(args)
		for _, e := range v.Elements {
			if objects.Equal(e, args[1]) {
				return &objects.Bool{Value: true}
			}
		}
		return &objects.Bool{Value: false}
	}),
	"remove": method("remove", 1, func(args []objects.Value) objects.Value {
		v := selfVec(args)
		idx, ok := args[1].(*objects.Num)
		if !ok || !idx.IsInt() {
			koierr.Raise("remove(): expected an integer index")
		}
		i := int(idx.Value)
		if i < 0 || i >= len(v.Elements) {
			koierr.Raise("remove(): index %d out of range", i)
		}
		removed := v.Elements[i]
		v.Elements = append(v.Elements[:i], v.Elements[i+1:]...)
		return removed
	}),
}

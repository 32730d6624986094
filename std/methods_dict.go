/*
File    : koi/std/methods_dict.go

Dict methods (spec.md §6).
*/
package std

import (
	"github.com/koi-lang/koi/function"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
)

func selfDict(args []objects.Value) *objects.Dict {
	d, ok := args[0].(*objects.Dict)
	if !ok {
		koierr.Raise("method called on non-dict receiver")
	}
	return d
}

var dictMethods = map[string]*function.Native{
	"len": method("len", 0, func(args []objects.Value) objects.Value {
		return &objects.Num{Value: float64(selfDict(args).Len())}
	}),
	"clone": method("clone", 0, func(args []objects.Value) objects.Value {
		return selfDict(args).Clone()
	}),
	"vec": method("vec", 0, func(args []objects.Value) objects.Value {
		d := selfDict(args)
		out := make([]objects.Value, 0, d.Len())
		for _, k := range d.Keys() {
			v, _ := d.Get(k)
			out = append(out, objects.NewVec([]objects.Value{&objects.String{Value: k}, v}))
		}
		return objects.NewVec(out)
	}),
	"contains": method("contains", 1, func(args []objects.Value) objects.Value {
		key, ok := args[1].(*objects.String)
		if !ok {
			koierr.Raise("contains(): expected a string key")
		}
		_, found := selfDict(args).Get(key.Value)
		return &objects.Bool{Value: found}
	}),
	"remove": method("remove", 1, func(args []objects.Value) objects.Value {
		key, ok := args[1].(*objects.String)
		if !ok {
			koierr.Raise("remove(): expected a string key")
		}
		v, found := selfDict(args).Delete(key.Value)
		if !found {
			koierr.Raise("remove(): key %q not found", key.Value)
		}
		return v
	}),
}

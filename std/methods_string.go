/*
File    : koi/std/methods_string.go

String methods (spec.md §6), grounded on the teacher's std/regex.go use
of the standard regexp package for matches()/find().
*/
package std

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/koi-lang/koi/function"
	"github.com/koi-lang/koi/koierr"
	"github.com/koi-lang/koi/objects"
)

func selfString(args []objects.Value) *objects.String {
	s, ok := args[0].(*objects.String)
	if !ok {
		koierr.Raise("method called on non-string receiver")
	}
	return s
}

func argString(args []objects.Value, i int, context string) *objects.String {
	s, ok := args[i].(*objects.String)
	if !ok {
		koierr.Raise("%s: expected a string argument", context)
	}
	return s
}

var stringMethods = map[string]*function.Native{
	"fromJson": method("fromJson", 0, func(args []objects.Value) objects.Value {
		return FromJSON(selfString(args).Value)
	}),
	"strip": method("strip", 0, func(args []objects.Value) objects.Value {
		return &objects.String{Value: strings.TrimSpace(selfString(args).Value)}
	}),
	"contains": method("contains", 1, func(args []objects.Value) objects.Value {
		needle := argString(args, 1, "contains")
		return &objects.Bool{Value: strings.Contains(selfString(args).Value, needle.Value)}
	}),
	"lower": method("lower", 0, func(args []objects.Value) objects.Value {
		return &objects.String{Value: strings.ToLower(selfString(args).Value)}
	}),
	"upper": method("upper", 0, func(args []objects.Value) objects.Value {
		return &objects.String{Value: strings.ToUpper(selfString(args).Value)}
	}),
	"bool": method("bool", 0, func(args []objects.Value) objects.Value {
		b, err := strconv.ParseBool(strings.TrimSpace(selfString(args).Value))
		if err != nil {
			koierr.Raise("bool(): %v", err)
		}
		return &objects.Bool{Value: b}
	}),
	"num": method("num", 0, func(args []objects.Value) objects.Value {
		n, err := strconv.ParseFloat(strings.TrimSpace(selfString(args).Value), 64)
		if err != nil {
			koierr.Raise("num(): %v", err)
		}
		return &objects.Num{Value: n}
	}),
	"replace": method("replace", 2, func(args []objects.Value) objects.Value {
		from := argString(args, 1, "replace")
		to := argString(args, 2, "replace")
		return &objects.String{Value: strings.ReplaceAll(selfString(args).Value, from.Value, to.Value)}
	}),
	"split": method("split", 1, func(args []objects.Value) objects.Value {
		sep := argString(args, 1, "split")
		parts := strings.Split(selfString(args).Value, sep.Value)
		elems := make([]objects.Value, len(parts))
		for i, p := range parts {
			elems[i] = &objects.String{Value: p}
		}
		return objects.NewVec(elems)
	}),
	"join": method("join", 1, func(args []objects.Value) objects.Value {
		vec, ok := args[1].(*objects.Vec)
		if !ok {
			koierr.Raise("join: expected a vec argument")
		}
		parts := make([]string, len(vec.Elements))
		for i, e := range vec.Elements {
			s, ok := e.(*objects.String)
			if !ok {
				koierr.Raise("join: vec element %d is not a string", i)
			}
			parts[i] = s.Value
		}
		return &objects.String{Value: strings.Join(parts, selfString(args).Value)}
	}),
	"matches": method("matches", 1, func(args []objects.Value) objects.Value {
		pattern := argString(args, 1, "matches")
		re, err := regexp.Compile(pattern.Value)
		if err != nil {
			koierr.Raise("matches: %v", err)
		}
		return &objects.Bool{Value: re.MatchString(selfString(args).Value)}
	}),
	"find": method("find", 1, func(args []objects.Value) objects.Value {
		pattern := argString(args, 1, "find")
		re, err := regexp.Compile(pattern.Value)
		if err != nil {
			koierr.Raise("find: %v", err)
		}
		groups := re.FindAllStringSubmatch(selfString(args).Value, -1)
		matches := make([]objects.Value, len(groups))
		for i, g := range groups {
			parts := make([]objects.Value, len(g))
			for j, s := range g {
				parts[j] = &objects.String{Value: s}
			}
			matches[i] = objects.NewVec(parts)
		}
		return objects.NewVec(matches)
	}),
	"len": method("len", 0, func(args []objects.Value) objects.Value {
		return &objects.Num{Value: float64(len([]rune(selfString(args).Value)))}
	}),
}

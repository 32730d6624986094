/*
File    : koi/objects/values.go

Package objects defines Koi's runtime Value variants: Nil, Num, String,
Bool (value semantics), and Vec, Dict, Range (Vec/Dict carry reference
semantics — two bindings holding the same Vec/Dict observe each other's
mutations, per spec.md §3's aliasing invariant). Func lives in the
sibling function package to avoid an import cycle with scope.
*/
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType identifies the runtime type of a Value.
type ValueType string

const (
	NilType    ValueType = "nil"
	NumType    ValueType = "num"
	StringType ValueType = "string"
	BoolType   ValueType = "bool"
	VecType    ValueType = "vec"
	DictType   ValueType = "dict"
	RangeType  ValueType = "range"
	FuncType   ValueType = "func"
	ErrorType  ValueType = "error"
)

// Value is the interface every Koi runtime value implements.
type Value interface {
	GetType() ValueType
	ToString() string // human-readable form, used by print() and string interpolation
	ToObject() string // debug form, used by REPL auto-display and error messages
}

// Truthy reports whether v is truthy per spec.md §4.4: everything
// except Nil and Bool(false) is truthy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case *Nil:
		return false
	case *Bool:
		return vv.Value
	default:
		return true
	}
}

// Nil is the absence of a value.
type Nil struct{}

func (*Nil) GetType() ValueType { return NilType }
func (*Nil) ToString() string   { return "nil" }
func (*Nil) ToObject() string   { return "nil" }

// Num is Koi's only numeric type, a float64.
type Num struct{ Value float64 }

func (n *Num) GetType() ValueType { return NumType }
func (n *Num) ToString() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}
func (n *Num) ToObject() string { return n.ToString() }

// IsInt reports whether n holds an integral value (spec.md §4.4: "Num
// must be an integer (trunc equals self)").
func (n *Num) IsInt() bool { return n.Value == float64(int64(n.Value)) }

// String is a Koi string value.
type String struct{ Value string }

func (s *String) GetType() ValueType { return StringType }
func (s *String) ToString() string   { return s.Value }
func (s *String) ToObject() string   { return strconv.Quote(s.Value) }

// Bool is a Koi boolean value.
type Bool struct{ Value bool }

func (b *Bool) GetType() ValueType { return BoolType }
func (b *Bool) ToString() string   { return strconv.FormatBool(b.Value) }
func (b *Bool) ToObject() string   { return b.ToString() }

// Vec is a shared-mutable ordered sequence. Two bindings holding the
// same *Vec observe each other's in-place mutations; Clone() is the
// only way to get an independent copy.
type Vec struct{ Elements []Value }

func NewVec(elems []Value) *Vec { return &Vec{Elements: elems} }

func (v *Vec) GetType() ValueType { return VecType }
func (v *Vec) ToString() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		if s, ok := e.(*String); ok {
			parts[i] = strconv.Quote(s.Value)
		} else {
			parts[i] = e.ToString()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (v *Vec) ToObject() string { return v.ToString() }

// Clone returns a new Vec with independent storage but the same
// element values (a shallow copy: nested Vec/Dict elements are still
// shared, matching spec.md's "cloning is explicit").
func (v *Vec) Clone() *Vec {
	cp := make([]Value, len(v.Elements))
	copy(cp, v.Elements)
	return &Vec{Elements: cp}
}

// Dict is a shared-mutable mapping from string keys to Values.
// Insertion order is tracked: ToString/ToObject output and Keys() (which
// `for` loops over a Dict use) both follow it.
type Dict struct {
	entries map[string]Value
	order   []string
}

func NewDict() *Dict {
	return &Dict{entries: make(map[string]Value)}
}

func (d *Dict) GetType() ValueType { return DictType }

func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.entries[key]
	return v, ok
}

func (d *Dict) Set(key string, v Value) {
	if _, exists := d.entries[key]; !exists {
		d.order = append(d.order, key)
	}
	d.entries[key] = v
}

func (d *Dict) Delete(key string) (Value, bool) {
	v, ok := d.entries[key]
	if !ok {
		return nil, false
	}
	delete(d.entries, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return v, true
}

func (d *Dict) Len() int { return len(d.entries) }

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *Dict) ToString() string {
	parts := make([]string, 0, len(d.order))
	for _, k := range d.order {
		v := d.entries[k]
		if s, ok := v.(*String); ok {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strconv.Quote(s.Value)))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", k, v.ToString()))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (d *Dict) ToObject() string { return d.ToString() }

// Clone returns a new Dict with independent storage but the same
// entry values (shallow copy, same semantics as Vec.Clone).
func (d *Dict) Clone() *Dict {
	cp := NewDict()
	for _, k := range d.order {
		cp.Set(k, d.entries[k])
	}
	return cp
}

// Merge returns a new Dict whose entries are d's overlaid by other's,
// per spec.md §4.4's `+` semantics for two Dicts.
func (d *Dict) Merge(other *Dict) *Dict {
	out := d.Clone()
	for _, k := range other.order {
		out.Set(k, other.entries[k])
	}
	return out
}

// Range is a half-open integer range [Start, End).
type Range struct{ Start, End int64 }

func (r *Range) GetType() ValueType { return RangeType }
func (r *Range) ToString() string   { return fmt.Sprintf("%d..%d", r.Start, r.End) }
func (r *Range) ToObject() string   { return r.ToString() }

// Error is a first-class error value; it is how Koi builtins signal
// recoverable failure to calling Koi code (distinct from the fatal
// koierr.Fatal panics the evaluator raises for ill-formed programs).
type Error struct{ Message string }

func (e *Error) GetType() ValueType { return ErrorType }
func (e *Error) ToString() string   { return e.Message }
func (e *Error) ToObject() string   { return "error: " + e.Message }

// Equal implements spec.md §4.4's structural equality: recursive for
// Vec/Dict, value equality for primitives, endpoint equality for Range.
// Func and other variants are handled by their own packages' equality
// (see function.Equal); this function reports false for them here.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Num:
		bv, ok := b.(*Num)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case *Range:
		bv, ok := b.(*Range)
		return ok && av.Start == bv.Start && av.End == bv.End
	case *Vec:
		bv, ok := b.(*Vec)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for k, v := range av.entries {
			bvv, ok := bv.entries[k]
			if !ok || !Equal(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

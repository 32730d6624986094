package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(&Nil{}))
	assert.False(t, Truthy(&Bool{Value: false}))
	assert.True(t, Truthy(&Bool{Value: true}))
	assert.True(t, Truthy(&Num{Value: 0}))
	assert.True(t, Truthy(&String{Value: ""}))
}

func TestNumToStringDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "3", (&Num{Value: 3}).ToString())
	assert.Equal(t, "3.5", (&Num{Value: 3.5}).ToString())
}

func TestNumIsInt(t *testing.T) {
	assert.True(t, (&Num{Value: 4}).IsInt())
	assert.False(t, (&Num{Value: 4.2}).IsInt())
}

func TestVecCloneIsIndependentStorage(t *testing.T) {
	v := NewVec([]Value{&Num{Value: 1}, &Num{Value: 2}})
	clone := v.Clone()
	clone.Elements[0] = &Num{Value: 99}
	assert.Equal(t, float64(1), v.Elements[0].(*Num).Value)
	assert.Equal(t, float64(99), clone.Elements[0].(*Num).Value)
}

func TestVecAliasingSharesMutation(t *testing.T) {
	v := NewVec([]Value{&Num{Value: 1}})
	alias := v
	alias.Elements[0] = &Num{Value: 42}
	assert.Equal(t, float64(42), v.Elements[0].(*Num).Value)
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", &Num{Value: 1})
	d.Set("a", &Num{Value: 2})
	assert.Equal(t, []string{"b", "a"}, d.Keys())
}

func TestDictMerge(t *testing.T) {
	a := NewDict()
	a.Set("x", &Num{Value: 1})
	b := NewDict()
	b.Set("x", &Num{Value: 2})
	b.Set("y", &Num{Value: 3})

	merged := a.Merge(b)
	x, _ := merged.Get("x")
	y, _ := merged.Get("y")
	assert.Equal(t, float64(2), x.(*Num).Value)
	assert.Equal(t, float64(3), y.(*Num).Value)

	origX, _ := a.Get("x")
	assert.Equal(t, float64(1), origX.(*Num).Value, "Merge must not mutate the receiver")
}

func TestEqualStructural(t *testing.T) {
	a := NewVec([]Value{&Num{Value: 1}, &Num{Value: 2}, &Num{Value: 3}})
	b := NewVec([]Value{&Num{Value: 1}, &Num{Value: 2}, &Num{Value: 3}})
	assert.True(t, Equal(a, b))

	d1 := NewDict()
	d1.Set("a", &Num{Value: 1})
	d2 := NewDict()
	d2.Set("a", &Num{Value: 1})
	assert.True(t, Equal(d1, d2))
}

func TestEqualRangeEndpoints(t *testing.T) {
	assert.True(t, Equal(&Range{Start: 0, End: 3}, &Range{Start: 0, End: 3}))
	assert.False(t, Equal(&Range{Start: 0, End: 3}, &Range{Start: 0, End: 4}))
}

package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koi-lang/koi/objects"
)

func newTestDict() *objects.Dict {
	d := objects.NewDict()
	d.Set("a", &objects.Num{Value: 1})
	d.Set("b", &objects.Num{Value: 2})
	return d
}

func TestDictLenAndContains(t *testing.T) {
	d := newTestDict()
	assert.Equal(t, float64(2), callMethod(t, d, "len").(*objects.Num).Value)
	assert.True(t, callMethod(t, d, "contains", &objects.String{Value: "a"}).(*objects.Bool).Value)
	assert.False(t, callMethod(t, d, "contains", &objects.String{Value: "z"}).(*objects.Bool).Value)
}

func TestDictCloneIndependence(t *testing.T) {
	d := newTestDict()
	clone := callMethod(t, d, "clone").(*objects.Dict)
	clone.Set("a", &objects.Num{Value: 99})
	orig, _ := d.Get("a")
	assert.Equal(t, float64(1), orig.(*objects.Num).Value)
}

func TestDictVecPreservesOrderAsPairs(t *testing.T) {
	d := newTestDict()
	vec := callMethod(t, d, "vec").(*objects.Vec)
	require.Len(t, vec.Elements, 2)
	pair := vec.Elements[0].(*objects.Vec)
	assert.Equal(t, "a", pair.Elements[0].(*objects.String).Value)
}

func TestDictRemoveReturnsValueAndDeletes(t *testing.T) {
	d := newTestDict()
	removed := callMethod(t, d, "remove", &objects.String{Value: "a"})
	assert.Equal(t, float64(1), removed.(*objects.Num).Value)
	_, found := d.Get("a")
	assert.False(t, found)
}

func TestDictRemoveMissingKeyRaises(t *testing.T) {
	d := newTestDict()
	assert.Panics(t, func() {
		callMethod(t, d, "remove", &objects.String{Value: "nope"})
	})
}

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koi-lang/koi/objects"
)

func TestDefAndLookupInSameEnvironment(t *testing.T) {
	e := New(nil)
	e.Def("x", &objects.Num{Value: 1}, false)
	v, ok := e.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, float64(1), v.(*objects.Num).Value)
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Def("x", &objects.Num{Value: 1}, false)
	child := New(parent)
	v, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, float64(1), v.(*objects.Num).Value)
}

func TestDefInChildShadowsParent(t *testing.T) {
	parent := New(nil)
	parent.Def("x", &objects.Num{Value: 1}, false)
	child := New(parent)
	child.Def("x", &objects.Num{Value: 2}, false)

	childVal, _ := child.Lookup("x")
	parentVal, _ := parent.Lookup("x")
	assert.Equal(t, float64(2), childVal.(*objects.Num).Value)
	assert.Equal(t, float64(1), parentVal.(*objects.Num).Value)
}

func TestPutMutatesNearestEnclosingBinding(t *testing.T) {
	parent := New(nil)
	parent.Def("x", &objects.Num{Value: 1}, false)
	child := New(parent)

	ok := child.Put("x", &objects.Num{Value: 99})
	require.True(t, ok)

	v, _ := parent.Lookup("x")
	assert.Equal(t, float64(99), v.(*objects.Num).Value)
}

func TestPutReportsFalseForUndefinedName(t *testing.T) {
	e := New(nil)
	ok := e.Put("nope", &objects.Num{Value: 1})
	assert.False(t, ok)
}

func TestEntriesOnlyIncludesOwnBindings(t *testing.T) {
	parent := New(nil)
	parent.Def("outer", &objects.Num{Value: 1}, false)
	child := New(parent)
	child.Def("inner", &objects.Num{Value: 2}, false)

	entries := child.Entries()
	_, hasOuter := entries["outer"]
	_, hasInner := entries["inner"]
	assert.False(t, hasOuter)
	assert.True(t, hasInner)
}

func TestOsEnvOnlyIncludesExportedBindings(t *testing.T) {
	e := New(nil)
	e.Def("secret", &objects.Num{Value: 1}, false)
	e.Def("PUBLIC", &objects.String{Value: "hi"}, true)

	pairs := e.OsEnv()
	require.Len(t, pairs, 1)
	assert.Equal(t, "PUBLIC", pairs[0][0])
	assert.Equal(t, "hi", pairs[0][1])
}

func TestOsEnvCloserScopeShadowsOuter(t *testing.T) {
	parent := New(nil)
	parent.Def("A", &objects.String{Value: "outer"}, true)
	child := New(parent)
	child.Def("A", &objects.String{Value: "inner"}, true)

	pairs := child.OsEnv()
	require.Len(t, pairs, 1)
	assert.Equal(t, "inner", pairs[0][1])
}

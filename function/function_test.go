package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koi-lang/koi/objects"
)

func TestUserWithReceiverDoesNotMutateOriginal(t *testing.T) {
	base := &User{Name: "greet"}
	bound := base.WithReceiver(&objects.String{Value: "ampere"})

	assert.Nil(t, base.Receiver)
	require.NotNil(t, bound.Receiver)
	assert.Equal(t, "ampere", bound.Receiver.(*objects.String).Value)
}

func TestNativeWithReceiverDoesNotMutateOriginal(t *testing.T) {
	base := &Native{Name: "len", ParamCount: 0, Fn: func(args []objects.Value) objects.Value {
		return &objects.Num{Value: float64(len(args))}
	}}
	bound := base.WithReceiver(&objects.Vec{})

	assert.Nil(t, base.Receiver)
	require.NotNil(t, bound.Receiver)
}

func TestEqualByNameForNative(t *testing.T) {
	a := &Native{Name: "len"}
	b := &Native{Name: "len"}
	c := &Native{Name: "print"}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqualByNameForUserExcludesLambdas(t *testing.T) {
	a := &User{Name: "add"}
	b := &User{Name: "add"}
	lambda1 := &User{Name: ""}
	lambda2 := &User{Name: ""}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(lambda1, lambda2), "two distinct lambdas are never equal")
}

func TestEqualAcrossKindsIsFalse(t *testing.T) {
	native := &Native{Name: "len"}
	user := &User{Name: "len"}
	assert.False(t, Equal(native, user))
}

func TestUserToStringUsesLambdaForAnonymous(t *testing.T) {
	named := &User{Name: "add"}
	anon := &User{Name: ""}
	assert.Equal(t, "func(add)", named.ToString())
	assert.Equal(t, "func(lambda)", anon.ToString())
}

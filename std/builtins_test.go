package std

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koi-lang/koi/objects"
)

func TestPrintWritesJoinedArgsWithNewline(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("")))
	table["print"].Fn([]objects.Value{&objects.String{Value: "a"}, &objects.Num{Value: 1}})
	assert.Equal(t, "a 1\n", out.String())
}

func TestInputReadsOneLineTrimmed(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("hello\nworld\n")))
	v := table["input"].Fn(nil)
	assert.Equal(t, "hello", v.(*objects.String).Value)
}

func TestInputReturnsNilAtEOF(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("")))
	v := table["input"].Fn(nil)
	_, isNil := v.(*objects.Nil)
	assert.True(t, isNil)
}

func TestAssertEqualRaisesOnMismatch(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("")))
	assert.Panics(t, func() {
		table["assertEqual"].Fn([]objects.Value{&objects.Num{Value: 1}, &objects.Num{Value: 2}})
	})
	assert.NotPanics(t, func() {
		table["assertEqual"].Fn([]objects.Value{&objects.Num{Value: 1}, &objects.Num{Value: 1}})
	})
}

func TestIsSameRefDistinguishesAliasFromCopy(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("")))
	v := objects.NewVec([]objects.Value{&objects.Num{Value: 1}})
	alias := v
	clone := v.Clone()

	same := table["isSameRef"].Fn([]objects.Value{v, alias})
	assert.True(t, same.(*objects.Bool).Value)

	diff := table["isSameRef"].Fn([]objects.Value{v, clone})
	assert.False(t, diff.(*objects.Bool).Value)
}

func TestIsSameRefFalseForValueTypes(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("")))
	v := table["isSameRef"].Fn([]objects.Value{&objects.Num{Value: 1}, &objects.Num{Value: 1}})
	assert.False(t, v.(*objects.Bool).Value)
}

func TestToYamlFromYamlRoundTripsDict(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("")))
	d := objects.NewDict()
	d.Set("name", &objects.String{Value: "koi"})
	d.Set("count", &objects.Num{Value: 3})

	yamlStr := table["toYaml"].Fn([]objects.Value{d}).(*objects.String).Value
	back := table["fromYaml"].Fn([]objects.Value{&objects.String{Value: yamlStr}}).(*objects.Dict)

	name, ok := back.Get("name")
	require.True(t, ok)
	assert.Equal(t, "koi", name.(*objects.String).Value)
}

func TestHumanDurationFormatsSeconds(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("")))
	v := table["humanDuration"].Fn([]objects.Value{&objects.Num{Value: 65}})
	assert.Contains(t, v.(*objects.String).Value, "minute")
}

func TestGlobMatchesNoFilesReturnsEmptyVec(t *testing.T) {
	var out bytes.Buffer
	table := NewBuiltins(&out, bufio.NewReader(strings.NewReader("")))
	v := table["glob"].Fn([]objects.Value{&objects.String{Value: "/no/such/dir/*.nope"}}).(*objects.Vec)
	assert.Empty(t, v.Elements)
}

package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stax/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.eval")
	defer teardown()
	//
	cases := []struct {
		source string
		result float64
	}{
		{"1 2 add", 3},
		{"5 3 sub", 2},
		{"3 5 sub", -2},
		{"4 2.5 mul", 10},
		{"1 4 div", 0.25},
		{"1 0 div", math.Inf(1)},
		{"-1 0 div", math.Inf(-1)},
	}
	for _, c := range cases {
		rt, _, err := runSource(t, c.source)
		require.NoError(t, err, c.source)
		assert.Equal(t, stackOf(num(c.result)), rt.Stack.Values(), c.source)
	}
	rt, _, err := runSource(t, "0 0 div")
	require.NoError(t, err)
	n, _ := rt.Stack.PopNumber()
	assert.True(t, math.IsNaN(n), "0/0 should be NaN")
}

func TestComparisonOperandOrder(t *testing.T) {
	cases := []struct {
		source string
		result float64
	}{
		{"1 2 lt", 1}, {"2 1 lt", 0}, {"2 2 lt", 0},
		{"1 2 gt", 0}, {"2 1 gt", 1},
		{"1 2 le", 1}, {"2 2 le", 1}, {"3 2 le", 0},
		{"1 2 ge", 0}, {"2 2 ge", 1}, {"3 2 ge", 1},
		{"2 2 eq", 1}, {"2 3 eq", 0},
	}
	for _, c := range cases {
		rt, _, err := runSource(t, c.source)
		require.NoError(t, err, c.source)
		assert.Equal(t, stackOf(num(c.result)), rt.Stack.Values(), c.source)
	}
}

func TestLogic(t *testing.T) {
	cases := []struct {
		source string
		result float64
	}{
		{"1 1 and", 1}, {"1 0 and", 0}, {"0.5 2 and", 1}, {"-1 1 and", 0},
		{"0 0 or", 0}, {"-1 1 or", 1}, {"0 3 or", 1},
		{"0 not", 1}, {"-3 not", 1}, {"7 not", 0}, {"0.001 not", 0},
	}
	for _, c := range cases {
		rt, _, err := runSource(t, c.source)
		require.NoError(t, err, c.source)
		assert.Equal(t, stackOf(num(c.result)), rt.Stack.Values(), c.source)
	}
}

func TestArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.eval")
	defer teardown()
	//
	cases := []struct {
		source   string
		expected int
		found    int
	}{
		{"add", 2, 0},
		{"1 add", 2, 1},
		{"1 lt", 2, 1},
		{"and", 2, 0},
		{"not", 1, 0},
		{"dup", 1, 0},
		{"pop", 1, 0},
		{"swp", 2, 0},
		{"1 swp", 2, 1},
		{"if", 3, 0},
		{"{1} if", 3, 1},
		{"{1} {2} if", 3, 2},
		{"def", 2, 0},
		{"{1} def", 2, 1},
		{"evl", 1, 0},
		{"prt", 1, 0},
	}
	for _, c := range cases {
		_, _, err := runSource(t, c.source)
		var underflow runtime.StackUnderflow
		if assert.True(t, errors.As(err, &underflow), "%s: expected StackUnderflow, got %v", c.source, err) {
			assert.Equal(t, runtime.StackUnderflow{Expected: c.expected, Found: c.found}, underflow, c.source)
		}
	}
}

func TestTypeMismatch(t *testing.T) {
	cases := []struct {
		source   string
		expected runtime.Type
		found    runtime.Type
	}{
		{"5 def", runtime.BlockType, runtime.NumberType},
		{`"x" 5 def`, runtime.BlockType, runtime.NumberType},
		{"{1} {2} def", runtime.TextType, runtime.BlockType},
		{`1 "a" add`, runtime.NumberType, runtime.TextType},
		{`"a" 1 add`, runtime.NumberType, runtime.TextType},
		{"1 {1} 2 if", runtime.BlockType, runtime.NumberType},
		{`"c" {1} {2} if`, runtime.NumberType, runtime.TextType},
		{"1 evl", runtime.BlockType, runtime.NumberType},
		{"{1} not", runtime.NumberType, runtime.BlockType},
	}
	for _, c := range cases {
		_, _, err := runSource(t, c.source)
		var mismatch runtime.TypeMismatch
		if assert.True(t, errors.As(err, &mismatch), "%s: expected TypeMismatch, got %v", c.source, err) {
			assert.Equal(t, runtime.TypeMismatch{Expected: c.expected, Found: c.found}, mismatch, c.source)
		}
	}
}

func TestIf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.eval")
	defer teardown()
	//
	rt, _, err := runSource(t, "1 {10} {20} if")
	require.NoError(t, err)
	assert.Equal(t, stackOf(num(10)), rt.Stack.Values())
	rt, _, err = runSource(t, "0 {10} {20} if")
	require.NoError(t, err)
	assert.Equal(t, stackOf(num(20)), rt.Stack.Values())
	rt, _, err = runSource(t, "-1 {10} {20} if")
	require.NoError(t, err)
	assert.Equal(t, stackOf(num(20)), rt.Stack.Values())
	// branches are not scopes
	rt, out, err := runSource(t, `1 {"w" {7} def "hi" prt 1 2} {0} if w`)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
	assert.Equal(t, stackOf(num(1), num(2), num(7)), rt.Stack.Values())
}

func TestEvl(t *testing.T) {
	rt, _, err := runSource(t, "{1 2 add} evl")
	require.NoError(t, err)
	inlined, _, err := runSource(t, "1 2 add")
	require.NoError(t, err)
	assert.Equal(t, stackOf(num(3)), rt.Stack.Values())
	assert.Equal(t, inlined.Stack.Values(), rt.Stack.Values())
	//
	rt, _, err = runSource(t, `{{5} evl} evl dup`)
	require.NoError(t, err)
	assert.Equal(t, stackOf(num(5), num(5)), rt.Stack.Values())
}

func TestDupPop(t *testing.T) {
	for _, source := range []string{"7", `"txt"`, "{1 {2} add}"} {
		rt, _, err := runSource(t, "0 "+source)
		require.NoError(t, err)
		v, _ := rt.Stack.Peek()
		depth := rt.Stack.Depth()
		require.NoError(t, EvaluateProgram(runtime.Program{runtime.WordRef("dup")}, rt))
		assert.Equal(t, depth+1, rt.Stack.Depth(), source)
		v1, _ := rt.Stack.Pop()
		v2, _ := rt.Stack.Pop()
		assert.True(t, v.Equal(v1) && v.Equal(v2), source)
	}
}

func TestSwpIsInvolution(t *testing.T) {
	for _, source := range []string{"1 2", `"a" {b}`, `{x} 3`} {
		before, _, err := runSource(t, source)
		require.NoError(t, err)
		after, _, err := runSource(t, source+" swp swp")
		require.NoError(t, err)
		assert.Equal(t, before.Stack.Values(), after.Stack.Values(), source)
	}
	rt, _, err := runSource(t, "1 2 swp")
	require.NoError(t, err)
	assert.Equal(t, stackOf(num(2), num(1)), rt.Stack.Values())
}

func TestPop(t *testing.T) {
	rt, _, err := runSource(t, "1 2 pop")
	require.NoError(t, err)
	assert.Equal(t, stackOf(num(1)), rt.Stack.Values())
}

func TestInvalidName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.eval")
	defer teardown()
	//
	for _, name := range []string{"a b", "a\tb", "a\nb", "a\rb", "a{", "}"} {
		rt := NewRuntime(nil)
		rt.Stack.Push(runtime.Text(name))
		rt.Stack.Push(runtime.Quote(runtime.Literal(num(1))))
		err := EvaluateProgram(runtime.Program{runtime.WordRef("def")}, rt)
		var invalid runtime.InvalidName
		if assert.True(t, errors.As(err, &invalid), "%q: expected InvalidName, got %v", name, err) {
			assert.Equal(t, name, invalid.Value)
		}
		assert.False(t, rt.Dict.Has(name))
	}
	// anything else goes, even names which cannot be referenced by the parser
	rt, _, err := runSource(t, `"a-1" {1} def`)
	require.NoError(t, err)
	assert.True(t, rt.Dict.Has("a-1"))
}

func TestPrintWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stax.eval")
	defer teardown()
	//
	rt, out, err := runSource(t, `3 prt "hi" prt {1 x} prt 0.5 prt 1 2 "a" stk`)
	require.NoError(t, err)
	assert.Equal(t, "3\nhi\n[Num(1) Word(x)]\n0.5\n1,2,a\n", out)
	assert.Equal(t, 3, rt.Stack.Depth(), "stk should not touch the stack")
}

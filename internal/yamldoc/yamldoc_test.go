package yamldoc_test

import (
	"strings"
	"testing"

	"github.com/aretw0/dumpable/internal/yamldoc"
	"github.com/aretw0/dumpable/pkg/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeString(t *testing.T, src string) []any {
	t.Helper()
	docs, err := yamldoc.Decode(strings.NewReader(src))
	require.NoError(t, err)
	return docs
}

func TestDecode_KeepsSourceOrder(t *testing.T) {
	docs := decodeString(t, "zeta: 1\nalpha: [true, null, 2.5]\nname: box\n")
	require.Len(t, docs, 1)

	assert.Equal(t, `{ "zeta": 1, "alpha": [true, nil, 2.5], "name": "box" }`,
		dump.NewContext().DisplayString(docs[0]))
}

func TestDecode_MultipleDocuments(t *testing.T) {
	docs := decodeString(t, "a: 1\n---\n- x\n- y\n---\n42\n")
	require.Len(t, docs, 3)

	assert.IsType(t, &dump.Map{}, docs[0])
	assert.Equal(t, []any{"x", "y"}, docs[1])
	assert.Equal(t, 42, docs[2])
}

func TestDecode_JSON(t *testing.T) {
	docs := decodeString(t, `{"b": {"c": [1, 2]}, "a": "s"}`)
	require.Len(t, docs, 1)

	assert.Equal(t, `{ "b": { "c": [1, 2] }, "a": "s" }`, dump.NewContext().DisplayString(docs[0]))
}

func TestDecode_Empty(t *testing.T) {
	assert.Empty(t, decodeString(t, ""))
}

func TestDecode_AliasesShareIdentity(t *testing.T) {
	docs := decodeString(t, "base: &b\n  x: 1\nfirst: *b\nsecond: *b\n")
	require.Len(t, docs, 1)

	m := docs[0].(*dump.Map)
	first, _ := m.Get("first")
	second, _ := m.Get("second")
	assert.Same(t, first, second)

	assert.Equal(t, `{ "base": { "x": 1 }, "first": { "x": 1 }, "second": { "x": 1 } }`,
		dump.NewContext().DisplayString(m), "siblings sharing a value are not cycles")
}

func TestDecode_RecursiveAliasBecomesCycle(t *testing.T) {
	docs := decodeString(t, "root: &r\n  name: loop\n  self: *r\nlist: &l [1, *l]\n")
	require.Len(t, docs, 1)

	assert.Equal(t, `{ "root": { "name": "loop", "self": [Circular] }, "list": [1, [Circular]] }`,
		dump.NewContext().DisplayString(docs[0]))
}

func TestDecode_UnhashableKey(t *testing.T) {
	docs := decodeString(t, "? [a, b]\n: pair\n")
	require.Len(t, docs, 1)

	v, ok := docs[0].(*dump.Map).Get(`["a", "b"]`)
	assert.True(t, ok)
	assert.Equal(t, "pair", v)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := yamldoc.Decode(strings.NewReader("a: [1, 2\n"))
	assert.Error(t, err)
}

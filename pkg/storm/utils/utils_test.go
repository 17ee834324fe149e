package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathIsBase(t *testing.T) {
	assert.True(t, pathIsBase("a/b/c", "a/b/c/d/e"))
	assert.True(t, pathIsBase("a/b/c", "a/b/c"))
	assert.False(t, pathIsBase("a/b/c", "a/b"))
	assert.False(t, pathIsBase("a/b/z", "a/b/c/d"))
	assert.False(t, pathIsBase("a/b", "a/bc"))
}

func TestStringFilter(t *testing.T) {
	f := NewStringFilterFromSlice(nil)
	assert.True(t, f.MatchAny([]string{"x"}))
	f.SetStrict()
	assert.False(t, f.MatchAny([]string{"x"}))

	f = NewStringFilterFromSlice([]string{"smoke", "login"})
	assert.True(t, f.Match("smoke"))
	assert.False(t, f.Match("nightly"))
	assert.True(t, f.MatchAny([]string{"nightly", "login"}))
}

func TestPathFilter(t *testing.T) {
	f := NewPathFilterFromSlice([]string{"web/login"}, true)
	assert.True(t, f.Match("web/login/sso"))
	assert.False(t, f.Match("web/checkout"))

	f = NewPathFilterFromSlice([]string{"web/login"}, false)
	assert.False(t, f.Match("web/login/sso"))
	assert.True(t, f.Match("web/login"))
}

func TestPathTree(t *testing.T) {
	tree := NewPathTree()
	tree.Add("web/login/sso")
	tree.Add("web/checkout")

	assert.True(t, tree.Contains("web/login"))
	assert.True(t, tree.Contains("web/checkout"))
	assert.False(t, tree.Contains("api"))
}

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "INFO hello", StripAnsi("\x1b[36mINFO\x1b[0m hello"))
}

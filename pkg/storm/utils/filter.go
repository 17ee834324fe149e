package utils

import "strings"

// StringFilter matches strings against a set. An empty filter matches
// everything unless it was made strict.
type StringFilter struct {
	emptyIsAny bool
	contents   map[string]bool
}

func NewStringFilterFromSlice(slice []string) *StringFilter {
	return &StringFilter{true, toSet(slice)}
}

// Force the filter to match nothing if it is empty.
func (f *StringFilter) SetStrict() {
	f.emptyIsAny = false
}

func (f *StringFilter) Match(item string) bool {
	if len(f.contents) == 0 {
		return f.emptyIsAny
	}
	return f.contents[item]
}

func (f *StringFilter) MatchAny(items []string) bool {
	return matchAny(f.emptyIsAny, len(f.contents), items, f.Match)
}

// PathFilter matches slash separated paths. A recursive filter also matches
// every path below one of its entries.
type PathFilter struct {
	emptyIsAny bool
	recursive  bool
	contents   map[string]bool
}

func NewPathFilterFromSlice(slice []string, recursive bool) *PathFilter {
	return &PathFilter{true, recursive, toSet(slice)}
}

// Force the filter to match nothing if it is empty.
func (f *PathFilter) SetStrict() {
	f.emptyIsAny = false
}

func (f *PathFilter) Match(item string) bool {
	if len(f.contents) == 0 {
		return f.emptyIsAny
	}

	if !f.recursive {
		return f.contents[item]
	}

	for base := range f.contents {
		if pathIsBase(base, item) {
			return true
		}
	}
	return false
}

func (f *PathFilter) MatchAny(items []string) bool {
	return matchAny(f.emptyIsAny, len(f.contents), items, f.Match)
}

func matchAny(emptyIsAny bool, size int, items []string, match func(string) bool) bool {
	if size == 0 {
		return emptyIsAny
	}

	for _, item := range items {
		if match(item) {
			return true
		}
	}
	return false
}

func toSet(slice []string) map[string]bool {
	set := make(map[string]bool, len(slice))
	for _, item := range slice {
		set[item] = true
	}
	return set
}

// Returns whether `base` is a base of `path`.
//
// For example:
//
//	pathIsBase("a/b/c", "a/b/c/d/e") == true
//	pathIsBase("a/b/c", "a/b/c") == true
//	pathIsBase("a/b/c", "a/b") == false
//	pathIsBase("a/b/z", "a/b/c/d") == false
func pathIsBase(base, path string) bool {
	baseComponents := strings.Split(base, "/")
	pathComponents := strings.Split(path, "/")

	if len(baseComponents) > len(pathComponents) {
		return false
	}

	for i, component := range baseComponents {
		if component != pathComponents[i] {
			return false
		}
	}
	return true
}

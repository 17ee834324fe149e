package utils

import "strings"

// PathTree is a nested map of path segments, marshalled as JSON by
// `list stages --json`.
type PathTree map[string]any

func NewPathTree() PathTree {
	return make(PathTree)
}

func (t PathTree) Add(path string) {
	current := t
	for _, segment := range strings.Split(path, "/") {
		next, ok := current[segment].(PathTree)
		if !ok {
			next = NewPathTree()
			current[segment] = next
		}
		current = next
	}
}

func (t PathTree) Contains(path string) bool {
	current := t
	for _, segment := range strings.Split(path, "/") {
		next, ok := current[segment].(PathTree)
		if !ok {
			return false
		}
		current = next
	}
	return true
}

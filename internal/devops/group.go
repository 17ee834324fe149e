package devops

import "fmt"

// Groups function as a stack, so we keep track of the groups in a stack.
var groups = make([]*Group, 0)

type Group struct {
	name string
}

// OpenGroup opens a new collapsible log group and pushes it on the stack.
func OpenGroup(name string) *Group {
	g := &Group{name: name}
	groups = append(groups, g)
	fmt.Fprintf(Output, "##[group]%s\n", name)
	return g
}

// Close ends the group and every group opened after it that is still open.
// Closing a group twice does nothing.
func (g *Group) Close() {
	index := -1
	for i, open := range groups {
		if open == g {
			index = i
			break
		}
	}

	if index < 0 {
		return
	}

	for range groups[index:] {
		fmt.Fprintln(Output, "##[endgroup]")
	}
	groups = groups[:index]
}

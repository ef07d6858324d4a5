// FILE: lixenwraith/settings/tree.go
package settings

import (
	"strings"
)

// treeMarker prefixes child lines; its count is the nesting depth
const treeMarker = '-'

type treeNode struct {
	label    string
	forced   bool // trailing comma
	depth    int
	children []*treeNode
}

// ParseTree turns an indented block into a nested Tree.
//
// Each non-blank line is a node whose depth is the number of leading '-'
// markers:
//
//	a
//	 - aa,
//	  -- aaa
//	 - ab,
//	b
//
// parses to Tree{Tree{"a", Tree{Tree{"aa", "aaa"}, "ab"}}, "b"}.
//
// A node with children becomes Tree{label, children}. The children collapse
// to a bare value when there is exactly one child and its line has no
// trailing comma; otherwise they form a Tree. The top level is always a Tree.
func ParseTree(text string) (Tree, error) {
	root := &treeNode{depth: -1}
	stack := []*treeNode{root}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		depth := 0
		for depth < len(line) && line[depth] == treeMarker {
			depth++
		}
		label := strings.TrimSpace(line[depth:])
		forced := strings.HasSuffix(label, ",")
		if forced {
			label = strings.TrimSpace(strings.TrimSuffix(label, ","))
		}
		if label == "" {
			return nil, configErrorf("", "tree line %d has no label", i+1)
		}

		// Pop to the nearest shallower node, which becomes the parent
		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		if depth != parent.depth+1 {
			return nil, configErrorf("", "tree line %d: depth %d has no parent at depth %d", i+1, depth, depth-1)
		}

		node := &treeNode{label: label, forced: forced, depth: depth}
		parent.children = append(parent.children, node)
		stack = append(stack, node)
	}

	tree := make(Tree, 0, len(root.children))
	for _, child := range root.children {
		tree = append(tree, child.value())
	}
	return tree, nil
}

// value unwinds a node and its subtree
func (n *treeNode) value() any {
	if len(n.children) == 0 {
		return n.label
	}
	if len(n.children) == 1 && !n.children[0].forced {
		return Tree{n.label, n.children[0].value()}
	}

	group := make(Tree, 0, len(n.children))
	for _, child := range n.children {
		group = append(group, child.value())
	}
	return Tree{n.label, group}
}

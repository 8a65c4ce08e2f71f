package flatten

import (
	"sort"
	"strings"
)

// treeNode is one level of the rendered directory tree. A node with children
// is a directory; an empty node is a file.
type treeNode map[string]treeNode

// RenderTree draws a nested-prefix tree diagram of the given '/'-separated
// relative paths. Entries at each level are sorted case-insensitively and
// directories are suffixed with '/'.
func RenderTree(paths []string) string {
	root := treeNode{}
	for _, p := range paths {
		node := root
		for _, part := range strings.Split(p, "/") {
			child, ok := node[part]
			if !ok {
				child = treeNode{}
				node[part] = child
			}
			node = child
		}
	}

	var lines []string
	drawTree(root, "", &lines)
	return strings.Join(lines, "\n")
}

func drawTree(node treeNode, prefix string, lines *[]string) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})

	for i, key := range keys {
		connector := "├── "
		extension := "│   "
		if i == len(keys)-1 {
			connector = "└── "
			extension = "    "
		}

		child := node[key]
		if len(child) > 0 {
			*lines = append(*lines, prefix+connector+key+"/")
			drawTree(child, prefix+extension, lines)
		} else {
			*lines = append(*lines, prefix+connector+key)
		}
	}
}

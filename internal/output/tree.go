package output

import (
	"path"
	"sort"
	"strings"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where descriptions start.
	descriptionColumn = 40
)

// TreeEntry is a single path to place in a rendered tree.
type TreeEntry struct {
	// Path is slash-separated and relative to the tree root.
	Path string

	// Description is printed dimmed after the name (optional).
	Description string

	// IsDir marks a leaf as a directory (empty directories have no children).
	IsDir bool
}

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderTree renders entries as a tree under rootName with aligned descriptions.
func RenderTree(rootName string, entries []TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &TreeNode{Name: rootName, IsDir: true}

	for _, e := range entries {
		parts := strings.Split(path.Clean(e.Path), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{
					Name:  part,
					IsDir: !isLast || e.IsDir,
				}
				current.Children = append(current.Children, child)
			}

			if isLast {
				child.Description = e.Description
				if e.IsDir {
					child.IsDir = true
				}
			}

			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

// RenderSimpleTree renders a tree of file paths without descriptions.
func RenderSimpleTree(rootName string, files []string) string {
	entries := make([]TreeEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, TreeEntry{Path: f})
	}
	return RenderTree(rootName, entries)
}

// sortTree recursively sorts tree nodes (directories first, then alphabetically).
func sortTree(node *TreeNode) {
	if len(node.Children) == 0 {
		return
	}

	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleSummary.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}

		line := prefix + connector + name

		if node.Description != "" {
			// Tree glyphs are multi-byte; pad on rune count.
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += StyleDim.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childIsLast := i == len(node.Children)-1

		var childPrefix string
		switch {
		case isRoot:
			childPrefix = ""
		case isLast:
			childPrefix = prefix + treeSpace
		default:
			childPrefix = prefix + treeVert
		}

		renderNode(sb, child, childPrefix, false, childIsLast)
	}
}

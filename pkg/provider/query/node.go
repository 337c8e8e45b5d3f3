package query

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is one element of a parsed provider response tree.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// Parse reads an XML response body into a Node tree rooted at the
// document element.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	var root *Node
	var stack []*Node
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("response has multiple document elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("response has no document element")
	}
	return root, nil
}

// Child returns the first direct child whose name matches, compared
// case-insensitively, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if strings.EqualFold(child.Name, name) {
			return child
		}
	}
	return nil
}

// Descend walks a chain of child names, returning nil as soon as any link
// is missing.
func (n *Node) Descend(names ...string) *Node {
	node := n
	for _, name := range names {
		node = node.Child(name)
		if node == nil {
			return nil
		}
	}
	return node
}

// ChildText returns the trimmed text of a direct child, or "" when the
// child is absent.
func (n *Node) ChildText(name string) string {
	child := n.Child(name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text)
}

// ChildrenNamed returns every direct child whose name matches, compared
// case-insensitively, in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var matched []*Node
	for _, child := range n.Children {
		if strings.EqualFold(child.Name, name) {
			matched = append(matched, child)
		}
	}
	return matched
}

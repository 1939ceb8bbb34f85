package ast

import (
	"fmt"
	"strings"
)

// Dump renders n as an indented tree, one node per line, for debugging.
func Dump(n Node) string {
	var b strings.Builder
	depth := map[Node]int{}
	Inspect(n, func(node, parent Node) bool {
		d := 0
		if parent != nil {
			d = depth[parent] + 1
		}
		depth[node] = d
		b.WriteString(strings.Repeat("  ", d))
		b.WriteString(node.Kind().String())
		if attrs := Attributes(node); attrs != "" {
			b.WriteString(" ")
			b.WriteString(attrs)
		}
		b.WriteString("\n")
		return true
	})
	return b.String()
}

// Attributes returns the scalar properties of n, such as its operator or name,
// as they appear in Dump.
func Attributes(n Node) string {
	switch n := n.(type) {
	case *Literal:
		return n.value
	case *Name:
		return n.identifier
	case *FieldAccess:
		if n.nullSafe {
			return "?." + n.name
		}
		return "." + n.name
	case *MethodCall:
		if n.nullSafe {
			return "?." + n.name + "()"
		}
		return n.name + "()"
	case *Unary:
		return n.op
	case *Postfix:
		return n.op
	case *Binary:
		return n.op
	case *Assignment:
		return n.op
	case *Type:
		return n.String()
	case *FormalParameter:
		if n.final {
			return "final " + n.name
		}
		return n.name
	case *InformalParameter:
		return n.name
	case *LocalVariable:
		return n.name
	case *Lambda:
		if n.params.IsFirst() {
			return fmt.Sprintf("formal/%d", n.ParameterCount())
		}
		return fmt.Sprintf("informal/%d", n.ParameterCount())
	}
	return ""
}

package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/token"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node ast.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText(node ast.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Span     *astJSONSpan   `json:"span,omitempty"`
	Attrs    string         `json:"attrs,omitempty"`
	Code     string         `json:"code,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func nodeToJSON(root ast.Node) *astJSONNode {
	var top *astJSONNode
	converted := map[ast.Node]*astJSONNode{}
	ast.Inspect(root, func(n, parent ast.Node) bool {
		jn := &astJSONNode{
			Kind:  n.Kind().String(),
			Span:  spanToJSON(n.Span()),
			Attrs: ast.Attributes(n),
		}
		if _, ok := n.(ast.Expression); ok && n == root {
			jn.Code = Code(n)
		}
		converted[n] = jn
		if parent == nil {
			top = jn
		} else {
			converted[parent].Children = append(converted[parent].Children, jn)
		}
		return true
	})
	return top
}

// spanToJSON drops spans of synthesized nodes, which carry no position.
func spanToJSON(s token.Span) *astJSONSpan {
	if s.Start.Line == 0 && s.End.Line == 0 {
		return nil
	}
	return &astJSONSpan{
		Start: astJSONPosition{Line: s.Start.Line, Column: s.Start.Column},
		End:   astJSONPosition{Line: s.End.Line, Column: s.End.Column},
	}
}

package jsonls

// NodeType tags the kind of an AST node.
type NodeType int

const (
	NodeNull NodeType = iota
	NodeBoolean
	NodeNumber
	NodeString
	NodeArray
	NodeObject
	NodeProperty
)

// String returns the lowercase keyword used in diagnostics and schema "type" checks.
func (t NodeType) String() string {
	switch t {
	case NodeNull:
		return "null"
	case NodeBoolean:
		return "boolean"
	case NodeNumber:
		return "number"
	case NodeString:
		return "string"
	case NodeArray:
		return "array"
	case NodeObject:
		return "object"
	case NodeProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Node is the tagged-union AST node: a sum over kinds, with shared
// offset/length/parent living in a common header.
// Ownership: a node's Children (and, for a property, Key/Value) are owned by
// it exclusively; Parent is a non-owning back reference into the same arena,
// valid for the lifetime of the containing JSONDocument.
type Node struct {
	Type   NodeType
	Offset int
	Length int
	Parent *Node

	// NodeBoolean
	BoolValue bool

	// NodeNumber. NumberLexeme is the raw source text, preserved so
	// multipleOf can decompose it exactly instead of dividing floats.
	NumberValue  float64
	NumberLexeme string
	IsInteger    bool

	// NodeString (also used for a NodeProperty's Key)
	StringValue string

	// NodeArray
	Elements []*Node

	// NodeObject
	Properties []*Node // each a NodeProperty

	// NodeProperty
	Key         *Node // always a NodeString, never nil once parsed
	Value       *Node // nil on recovery (optional value, absent on recovery)
	ColonOffset int   // -1 when no colon was seen
}

// End returns the offset one past the node's last byte.
func (n *Node) End() int { return n.Offset + n.Length }

// Contains reports whether offset falls within the node's span. When
// includeRightBound is set, an offset exactly at the end boundary counts.
func (n *Node) Contains(offset int, includeRightBound bool) bool {
	if includeRightBound {
		return n.Offset <= offset && offset <= n.End()
	}
	return n.Offset <= offset && offset < n.End()
}

// Children returns the node's direct AST children in source order,
// regardless of kind (array elements, object properties, or a property's
// key/value pair).
func (n *Node) Children() []*Node {
	switch n.Type {
	case NodeArray:
		return n.Elements
	case NodeObject:
		return n.Properties
	case NodeProperty:
		children := make([]*Node, 0, 2)
		if n.Key != nil {
			children = append(children, n.Key)
		}
		if n.Value != nil {
			children = append(children, n.Value)
		}
		return children
	default:
		return nil
	}
}

// Value projects the AST subtree rooted at n into a plain JSON value: nil,
// bool, float64, string, []any, or map[string]any. For a NodeProperty it
// projects the value child (or nil if absent).
func (n *Node) Value() any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case NodeNull:
		return nil
	case NodeBoolean:
		return n.BoolValue
	case NodeNumber:
		return n.NumberValue
	case NodeString:
		return n.StringValue
	case NodeArray:
		items := make([]any, len(n.Elements))
		for i, el := range n.Elements {
			items[i] = el.Value()
		}
		return items
	case NodeObject:
		obj := make(map[string]any, len(n.Properties))
		for _, prop := range n.Properties {
			if prop.Key == nil {
				continue
			}
			obj[prop.Key.StringValue] = prop.Value.Value()
		}
		return obj
	case NodeProperty:
		return n.Value.Value()
	default:
		return nil
	}
}

// findProperty returns the first property child with the given key, or nil.
func (n *Node) findProperty(key string) *Node {
	if n.Type != NodeObject {
		return nil
	}
	for _, prop := range n.Properties {
		if prop.Key != nil && prop.Key.StringValue == key {
			return prop
		}
	}
	return nil
}

// DocumentStats summarizes a parsed document for status-bar-style reporting.
type DocumentStats struct {
	NodeCount   int
	ErrorCount  int
	WarningCount int
}

// JSONDocument is the parser's output: the AST root plus every diagnostic
// and comment range collected while building it.
type JSONDocument struct {
	Root         *Node
	SyntaxErrors []Diagnostic
	Comments     []Range

	text *TextDocument
}

// Text returns the TextDocument backing this parse, for position mapping.
func (d *JSONDocument) Text() *TextDocument { return d.text }

// GetNodeFromOffset returns the deepest node containing offset, or nil if
// the document has no root or offset falls outside it.
func (d *JSONDocument) GetNodeFromOffset(offset int, includeRightBound bool) *Node {
	if d.Root == nil || !d.Root.Contains(offset, includeRightBound) {
		return nil
	}
	return findDeepest(d.Root, offset, includeRightBound)
}

func findDeepest(n *Node, offset int, includeRightBound bool) *Node {
	for _, child := range n.Children() {
		if child.Contains(offset, includeRightBound) {
			return findDeepest(child, offset, includeRightBound)
		}
	}
	return n
}

// Visit performs a pre-order depth-first walk of the AST, calling fn on each
// node. Traversal stops as soon as fn returns false.
func (d *JSONDocument) Visit(fn func(*Node) bool) {
	if d.Root == nil {
		return
	}
	visitNode(d.Root, fn)
}

func visitNode(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children() {
		if !visitNode(child, fn) {
			return false
		}
	}
	return true
}

// Stats returns node/diagnostic counts, a small convenience for status-bar
// style summaries; it has no effect on validation semantics.
func (d *JSONDocument) Stats() DocumentStats {
	stats := DocumentStats{}
	d.Visit(func(n *Node) bool {
		stats.NodeCount++
		return true
	})
	for _, diag := range d.SyntaxErrors {
		switch diag.Severity {
		case SeverityError:
			stats.ErrorCount++
		case SeverityWarning:
			stats.WarningCount++
		}
	}
	return stats
}

package jsx

import "encoding/json"

// Node names for the two leaf kinds. Any other name is an element tag.
const (
	TextNode       = "#text"
	ExpressionNode = "#expression"
)

// Node is a unit of a parsed markup string: literal text, an interpolation
// expression, or an element with ordered children.
type Node struct {
	NodeName   string  // "#text", "#expression", or the tag name
	Value      string  // Decoded text or verbatim "{{...}}" span (leaves only)
	ChildNodes []*Node // Element children; non-nil for elements, nil for leaves
}

// IsText reports whether n is a literal text leaf.
func (n *Node) IsText() bool {
	return n.NodeName == TextNode
}

// IsExpression reports whether n is an interpolation leaf.
func (n *Node) IsExpression() bool {
	return n.NodeName == ExpressionNode
}

// IsElement reports whether n is a tag with children.
func (n *Node) IsElement() bool {
	return !n.IsText() && !n.IsExpression()
}

type leafJSON struct {
	NodeName string `json:"nodeName"`
	Value    string `json:"value"`
}

type elementJSON struct {
	NodeName   string  `json:"nodeName"`
	ChildNodes []*Node `json:"childNodes"`
}

// MarshalJSON emits "value" for leaves and an always-present "childNodes"
// array for elements.
func (n *Node) MarshalJSON() ([]byte, error) {
	if !n.IsElement() {
		return json.Marshal(leafJSON{NodeName: n.NodeName, Value: n.Value})
	}
	children := n.ChildNodes
	if children == nil {
		children = []*Node{}
	}
	return json.Marshal(elementJSON{NodeName: n.NodeName, ChildNodes: children})
}

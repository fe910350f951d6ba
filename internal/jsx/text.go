package jsx

import (
	"strconv"
	"strings"
)

// JSXToText parses input and flattens it into i18next placeholder text:
// every expression and element becomes <N>...</N>, numbered from 1 in
// document order across all nesting levels.
func JSXToText(input string) string {
	return Serialize(ParseJSX(input))
}

// Serialize flattens an already parsed forest the same way JSXToText does.
func Serialize(nodes []*Node) string {
	var b strings.Builder
	writeNodes(&b, nodes, 1)
	return b.String()
}

// writeNodes writes nodes in pre-order and returns the next unused number.
func writeNodes(b *strings.Builder, nodes []*Node, next int) int {
	for _, n := range nodes {
		if n.IsText() {
			b.WriteString(n.Value)
			continue
		}
		id := strconv.Itoa(next)
		next++
		b.WriteString("<" + id + ">")
		if n.IsExpression() {
			b.WriteString(n.Value)
		} else {
			next = writeNodes(b, n.ChildNodes, next)
		}
		b.WriteString("</" + id + ">")
	}
	return next
}

// CountPlaceholders returns the number of non-text nodes in the forest,
// which is also the highest placeholder number Serialize assigns.
func CountPlaceholders(nodes []*Node) int {
	count := 0
	for _, n := range nodes {
		if n.IsText() {
			continue
		}
		count++
		count += CountPlaceholders(n.ChildNodes)
	}
	return count
}

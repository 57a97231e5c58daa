// Package uitree is the composable element tree every module renders
// into. It stands in for the immediate-mode GUI framework's element
// subtree type (out of scope per the spec — "assumed to provide ...
// element composition"); the bar view and popup host walk a Node tree
// and materialize it into real GTK widgets.
package uitree

// Kind discriminates the shape of a Node.
type Kind int

const (
	KindText Kind = iota
	KindIcon
	KindRow
	KindColumn
	KindSpacer
	KindSeparatorLine
	KindProgressBar
	KindSlider
	KindSkeleton
	KindGrid
	KindButton
)

// Node is one element in a module's rendered subtree. Only the fields
// relevant to Kind are meaningful; the rest are zero.
type Node struct {
	Kind Kind

	Text     string
	IconName string

	// Styling
	Color      string // resolved hex, empty = inherit
	Background string
	Bold       bool
	Muted      bool

	// Layout
	Gap      float64
	Flex     bool
	Children []Node

	// KindProgressBar / KindSlider
	Value float64 // 0..1

	// KindGrid
	Columns int

	// KindButton
	OnClick  func()
	ActionID string
}

// Text builds a leaf text node.
func Text(s string) Node { return Node{Kind: KindText, Text: s} }

// Icon builds a leaf icon node identified by a symbolic icon name.
func Icon(name string) Node { return Node{Kind: KindIcon, IconName: name} }

// Row builds a horizontal container with the given gap between children.
func Row(gap float64, children ...Node) Node {
	return Node{Kind: KindRow, Gap: gap, Children: children}
}

// Column builds a vertical container with the given gap between children.
func Column(gap float64, children ...Node) Node {
	return Node{Kind: KindColumn, Gap: gap, Children: children}
}

// Spacer builds a flexible spacer that absorbs remaining space.
func Spacer() Node { return Node{Kind: KindSpacer, Flex: true} }

// Skeleton builds a loading placeholder of the given pixel size.
func Skeleton(w, h float64) Node {
	return Node{Kind: KindSkeleton, Value: w, Gap: h}
}

// Package treebuilder implements the HTML5 tree construction algorithm: the
// 23-insertion-mode state machine that consumes tokens from the tokenizer
// package and produces a dom.Document.
package treebuilder

// FragmentContext names the element a fragment is being parsed as a child
// of (the "context element" WHATWG uses to pick the starting insertion mode
// for innerHTML-style parsing, e.g. parsing as if inside a <tr> or <select>).
type FragmentContext struct {
	TagName   string
	Namespace string
}

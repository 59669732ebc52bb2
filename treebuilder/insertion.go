package treebuilder

import (
	"github.com/html5tree/html5tree/dom"
	"github.com/html5tree/html5tree/tokenizer"
)

// insertionLocation names where a new node goes: at the end of parent's
// children (before == nil) or spliced in immediately ahead of before.
type insertionLocation struct {
	parent dom.Node
	before dom.Node
}

func (tb *TreeBuilder) insertComment(data string) {
	tb.insertNode(dom.NewComment(data), nil)
}

func (tb *TreeBuilder) insertText(data string) {
	if data == "" {
		return
	}
	parent, before := tb.appropriateInsertionLocation()
	tb.insertNode(dom.NewText(data), &insertionLocation{parent: parent, before: before})
}

// insertFosterText inserts non-whitespace pending table text, which WHATWG
// §13.2.6.4.9 requires to go through foster parenting. It always foster
// parents, without checking the current node against
// constants.TableFosterTargets as appropriateInsertionLocation does.
func (tb *TreeBuilder) insertFosterText(data string) {
	if data == "" {
		return
	}
	tb.framesetOK = false
	tb.withFosterParenting(func() bool {
		parent, before := tb.fosterInsertionLocation()
		tb.insertNode(dom.NewText(data), &insertionLocation{parent: parent, before: before})
		return false
	})
}

func (tb *TreeBuilder) insertElement(name string, attrs []tokenizer.Attr) *dom.Element {
	el := dom.NewElement(name)
	if el.TagName == "template" && el.Namespace == dom.NamespaceHTML && el.TemplateContent == nil {
		el.TemplateContent = dom.NewDocumentFragment()
	}
	for _, a := range attrs {
		if a.Namespace != "" {
			// Namespaced (non-HTML) attributes keep their namespace.
			el.Attributes.SetNS(a.Namespace, a.Name, a.Value)
			continue
		}
		el.SetAttr(a.Name, a.Value)
	}
	tb.insertNode(el, nil)
	tb.openElements = append(tb.openElements, el)
	return el
}

// insertRCDATAElement implements the "generic RCDATA element parsing
// algorithm": insert the element, remember the mode to return to, switch to
// the Text insertion mode, and drive the tokenizer into RCDATAState.
func (tb *TreeBuilder) insertRCDATAElement(name string, attrs []tokenizer.Attr) *dom.Element {
	el := tb.insertElement(name, attrs)
	tb.originalMode = tb.mode
	tb.mode = Text
	tb.tokenizer.SetLastStartTag(name)
	tb.tokenizer.SetState(tokenizer.RCDATAState)
	return el
}

// insertRawTextElement implements the "generic raw text element parsing
// algorithm". script gets ScriptDataState so that script-data escape
// handling applies; every other raw-text element gets RAWTEXTState.
func (tb *TreeBuilder) insertRawTextElement(name string, attrs []tokenizer.Attr) *dom.Element {
	el := tb.insertElement(name, attrs)
	tb.originalMode = tb.mode
	tb.mode = Text
	tb.tokenizer.SetLastStartTag(name)
	if name == "script" {
		tb.tokenizer.SetState(tokenizer.ScriptDataState)
	} else {
		tb.tokenizer.SetState(tokenizer.RAWTEXTState)
	}
	return el
}

func (tb *TreeBuilder) addMissingAttributes(el *dom.Element, attrs []tokenizer.Attr) {
	if el == nil {
		return
	}
	if len(tb.templateModes) > 0 {
		return
	}
	for _, a := range attrs {
		if a.Namespace != "" {
			if !el.Attributes.HasNS(a.Namespace, a.Name) {
				el.Attributes.SetNS(a.Namespace, a.Name, a.Value)
			}
			continue
		}
		if !el.HasAttr(a.Name) {
			el.SetAttr(a.Name, a.Value)
		}
	}
}

func (tb *TreeBuilder) appropriateInsertionLocation() (dom.Node, dom.Node) {
	if current := tb.currentElement(); current != nil && current.Namespace == dom.NamespaceHTML && current.TagName == "template" {
		if current.TemplateContent == nil {
			current.TemplateContent = dom.NewDocumentFragment()
		}
		return current.TemplateContent, nil
	}
	if !tb.fosterParenting || !shouldFosterForNode(tb.currentElement()) {
		return tb.currentNode(), nil
	}
	return tb.fosterInsertionLocation()
}

func (tb *TreeBuilder) insertNode(node dom.Node, loc *insertionLocation) {
	var parent dom.Node
	var before dom.Node
	if loc != nil && loc.parent != nil {
		parent = loc.parent
		before = loc.before
	} else {
		parent, before = tb.appropriateInsertionLocation()
	}

	if before == nil {
		// Append with text-node coalescing.
		children := parent.Children()
		if txt, ok := node.(*dom.Text); ok && len(children) > 0 {
			if last, ok := children[len(children)-1].(*dom.Text); ok {
				last.Data += txt.Data
				return
			}
		}
		parent.AppendChild(node)
		return
	}

	// InsertBefore with basic text-node coalescing around the insertion point.
	if txt, ok := node.(*dom.Text); ok {
		if mergeTarget := siblingTextBefore(parent, before); mergeTarget != nil {
			mergeTarget.Data += txt.Data
			return
		}
		if beforeText, ok := before.(*dom.Text); ok {
			beforeText.Data = txt.Data + beforeText.Data
			return
		}
	}
	parent.InsertBefore(node, before)
}

func siblingTextBefore(parent dom.Node, ref dom.Node) *dom.Text {
	children := parent.Children()
	for i := range children {
		if children[i] == ref {
			if i > 0 {
				if t, ok := children[i-1].(*dom.Text); ok {
					return t
				}
			}
			return nil
		}
	}
	return nil
}

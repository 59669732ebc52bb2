package treebuilder

import (
	"github.com/html5tree/html5tree/dom"
	"github.com/html5tree/html5tree/internal/constants"
)

// maxAdoptionRounds bounds the outer loop of the adoption agency algorithm;
// WHATWG caps it at 8 to guarantee termination on pathological markup.
const maxAdoptionRounds = 8

// maxInnerLoopNoOpStreak is how many inner-loop passes may run before a node
// met on a later pass has its active formatting entry dropped outright
// instead of being cloned.
const maxInnerLoopNoOpStreak = 3

// adoptionAgency runs the adoption agency algorithm (WHATWG §13.2.5.2.5) to
// untangle formatting elements that were left open across a block boundary,
// e.g. <b><p>text</p></b> where </b> must close out the <b> inside <p> too.
func (tb *TreeBuilder) adoptionAgency(subject string) {
	if cur := tb.currentElement(); cur != nil && cur.TagName == subject && !tb.hasActiveFormattingEntry(subject) {
		tb.popUntil(subject)
		return
	}

	for round := 0; round < maxAdoptionRounds; round++ {
		formattingIndex, ok := tb.findActiveFormattingIndex(subject)
		if !ok {
			return
		}
		entry := tb.activeFormatting[formattingIndex]
		formattingElement := entry.node
		if formattingElement == nil {
			tb.removeFormattingEntry(formattingIndex)
			return
		}

		openIndex, ok := tb.indexOfOpenElement(formattingElement)
		if !ok {
			tb.removeFormattingEntry(formattingIndex)
			return
		}
		if !tb.hasElementInScope(formattingElement.TagName, constants.DefaultScope) {
			return
		}

		furthestBlock := firstSpecialElementAfter(tb.openElements, openIndex)
		if furthestBlock == nil {
			tb.popThrough(formattingElement)
			tb.removeFormattingEntry(formattingIndex)
			return
		}

		commonAncestor := tb.openElements[openIndex-1]
		lastNode, bookmark := tb.runInnerLoop(formattingElement, furthestBlock, formattingIndex)
		tb.relocateLastNode(lastNode, furthestBlock, commonAncestor)
		tb.finishAdoptionRound(formattingIndex, furthestBlock, bookmark)
	}
}

// popThrough pops the open element stack until target (inclusive) is gone.
func (tb *TreeBuilder) popThrough(target *dom.Element) {
	for len(tb.openElements) > 0 {
		if tb.popCurrent() == target {
			return
		}
	}
}

// firstSpecialElementAfter returns the first special-category element above
// index start on the stack, i.e. the "furthest block" the spec refers to.
func firstSpecialElementAfter(stack []*dom.Element, start int) *dom.Element {
	for _, el := range stack[start+1:] {
		if isSpecialElement(el) {
			return el
		}
	}
	return nil
}

// runInnerLoop walks up the stack from furthestBlock towards formattingElement,
// cloning any active formatting elements it meets and re-parenting the chain
// built so far underneath each clone. It returns the resulting chain's top
// node (lastNode) and the bookmark index for where the rebuilt formatting
// element must be reinserted in the active formatting list.
func (tb *TreeBuilder) runInnerLoop(formattingElement, furthestBlock *dom.Element, formattingIndex int) (*dom.Element, int) {
	bookmark := formattingIndex + 1
	node := furthestBlock
	lastNode := furthestBlock

	for streak := 0; ; {
		nodeIndex, ok := tb.indexOfOpenElement(node)
		if !ok || nodeIndex == 0 {
			return lastNode, bookmark
		}
		node = tb.openElements[nodeIndex-1]
		if node == formattingElement {
			return lastNode, bookmark
		}

		streak++
		nodeFmtIndex, hasEntry := tb.findActiveFormattingIndexByNode(node)
		if streak > maxInnerLoopNoOpStreak && hasEntry {
			tb.removeFormattingEntry(nodeFmtIndex)
			if nodeFmtIndex < bookmark {
				bookmark--
			}
			hasEntry = false
		}

		if !hasEntry {
			idx, ok := tb.indexOfOpenElement(node)
			if !ok {
				return lastNode, bookmark
			}
			tb.removeOpenElementAt(idx)
			if idx < len(tb.openElements) {
				node = tb.openElements[idx]
			}
			continue
		}

		clone := cloneFormattingElement(tb.activeFormatting[nodeFmtIndex])
		tb.activeFormatting[nodeFmtIndex].node = clone
		tb.openElements[tb.mustIndexOfOpenElement(node)] = clone
		node = clone

		if lastNode == furthestBlock {
			bookmark = nodeFmtIndex + 1
		}
		detachNode(lastNode)
		node.AppendChild(lastNode)
		lastNode = node
	}
}

// relocateLastNode moves the chain built by runInnerLoop under the common
// ancestor, foster-parenting when that ancestor is a table-structure element.
func (tb *TreeBuilder) relocateLastNode(lastNode, furthestBlock, commonAncestor *dom.Element) {
	detachNode(lastNode)
	if shouldFosterParent(commonAncestor) {
		tb.insertFosterNode(lastNode)
		return
	}
	commonAncestor.AppendChild(lastNode)
}

// finishAdoptionRound clones the subject formatting element, moves the
// furthest block's children underneath the clone, and updates both the
// active formatting list and the open element stack to reflect the new tree.
func (tb *TreeBuilder) finishAdoptionRound(formattingIndex int, furthestBlock *dom.Element, bookmark int) {
	entry := tb.activeFormatting[formattingIndex]
	formattingElement := entry.node
	clone := cloneFormattingElement(entry)
	tb.activeFormatting[formattingIndex].node = clone

	for {
		children := furthestBlock.Children()
		if len(children) == 0 {
			break
		}
		child := children[0]
		furthestBlock.RemoveChild(child)
		clone.AppendChild(child)
	}
	furthestBlock.AppendChild(clone)

	moved := tb.activeFormatting[formattingIndex]
	tb.removeFormattingEntry(formattingIndex)
	tb.reinsertFormattingEntry(clampBookmark(bookmark-1, len(tb.activeFormatting)), moved)

	if idx, ok := tb.indexOfOpenElement(formattingElement); ok {
		tb.removeOpenElementAt(idx)
	}
	tb.insertOpenElementAt(tb.mustIndexOfOpenElement(furthestBlock)+1, clone)
}

func (tb *TreeBuilder) reinsertFormattingEntry(at int, entry formattingEntry) {
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{})
	copy(tb.activeFormatting[at+1:], tb.activeFormatting[at:])
	tb.activeFormatting[at] = entry
}

func clampBookmark(bookmark, max int) int {
	if bookmark < 0 {
		return 0
	}
	if bookmark > max {
		return max
	}
	return bookmark
}

func cloneFormattingElement(entry formattingEntry) *dom.Element {
	el := dom.NewElement(entry.name)
	for _, a := range entry.attrs {
		if a.Namespace != "" {
			el.Attributes.SetNS(a.Namespace, a.Name, a.Value)
			continue
		}
		el.SetAttr(a.Name, a.Value)
	}
	return el
}

func detachNode(n dom.Node) {
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
}

func isSpecialElement(el *dom.Element) bool {
	if el == nil || el.Namespace != dom.NamespaceHTML {
		return false
	}
	return constants.SpecialElements[el.TagName]
}

func shouldFosterParent(commonAncestor *dom.Element) bool {
	if commonAncestor == nil {
		return false
	}
	switch commonAncestor.TagName {
	case "table", "tbody", "tfoot", "thead", "tr":
		return true
	default:
		return false
	}
}

// insertFosterNode finds the nearest table ancestor on the open element
// stack and inserts node just before it, falling back to appending onto the
// current node when no table is open, or onto the document when the table
// has no parent.
func (tb *TreeBuilder) insertFosterNode(node dom.Node) {
	var tableEl *dom.Element
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if el := tb.openElements[i]; el.TagName == "table" && el.Namespace == dom.NamespaceHTML {
			tableEl = el
			break
		}
	}
	if tableEl == nil {
		tb.currentNode().AppendChild(node)
		return
	}
	parent := tableEl.Parent()
	if parent == nil {
		tb.document.AppendChild(node)
		return
	}
	parent.InsertBefore(node, tableEl)
}

func (tb *TreeBuilder) indexOfOpenElement(target *dom.Element) (int, bool) {
	for i, el := range tb.openElements {
		if el == target {
			return i, true
		}
	}
	return -1, false
}

func (tb *TreeBuilder) mustIndexOfOpenElement(target *dom.Element) int {
	idx, ok := tb.indexOfOpenElement(target)
	if !ok {
		panic("treebuilder: expected element on open element stack")
	}
	return idx
}

func (tb *TreeBuilder) removeOpenElementAt(index int) {
	if index < 0 || index >= len(tb.openElements) {
		return
	}
	copy(tb.openElements[index:], tb.openElements[index+1:])
	tb.openElements = tb.openElements[:len(tb.openElements)-1]
}

func (tb *TreeBuilder) insertOpenElementAt(index int, el *dom.Element) {
	if index < 0 {
		index = 0
	}
	if index > len(tb.openElements) {
		index = len(tb.openElements)
	}
	tb.openElements = append(tb.openElements, nil)
	copy(tb.openElements[index+1:], tb.openElements[index:])
	tb.openElements[index] = el
}

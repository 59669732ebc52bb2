package treebuilder

import (
	"sort"
	"strings"

	"github.com/html5tree/html5tree/dom"
	"github.com/html5tree/html5tree/tokenizer"
)

// formattingEntry is one slot in the list of active formatting elements: either
// a real element (name/attrs/node populated, signature memoized for the
// Noah's Ark duplicate check) or a scope marker (marker set, everything else
// zero) left behind by table cells, captions, and similar boundaries.
type formattingEntry struct {
	marker    bool
	name      string
	attrs     []tokenizer.Attr
	node      *dom.Element
	signature string
}

// noahsArkLimit is how many equivalent formatting entries (same name and
// attributes) may coexist before the oldest is evicted, per the "Noah's Ark
// clause" in WHATWG HTML §13.2.5.2.
const noahsArkLimit = 3

func (tb *TreeBuilder) pushFormattingMarker() {
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{marker: true})
}

func (tb *TreeBuilder) appendActiveFormattingEntry(name string, attrs []tokenizer.Attr, node *dom.Element) {
	entryAttrs := cloneTokenAttrs(attrs)
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{
		name:      name,
		attrs:     entryAttrs,
		node:      node,
		signature: attrsSignature(entryAttrs),
	})
}

func (tb *TreeBuilder) clearActiveFormattingUpToMarker() {
	for len(tb.activeFormatting) > 0 {
		n := len(tb.activeFormatting) - 1
		entry := tb.activeFormatting[n]
		tb.activeFormatting = tb.activeFormatting[:n]
		if entry.marker {
			return
		}
	}
}

// findActiveFormattingIndex searches back from the list's end for an entry
// with the given name, stopping at the nearest marker (entries before a
// marker belong to an enclosing scope and don't count).
func (tb *TreeBuilder) findActiveFormattingIndex(name string) (int, bool) {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		entry := tb.activeFormatting[i]
		if entry.marker {
			return -1, false
		}
		if entry.name == name {
			return i, true
		}
	}
	return -1, false
}

func (tb *TreeBuilder) findActiveFormattingIndexByNode(node *dom.Element) (int, bool) {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		if entry := tb.activeFormatting[i]; !entry.marker && entry.node == node {
			return i, true
		}
	}
	return -1, false
}

// findActiveFormattingDuplicate implements the Noah's Ark clause: when three
// or more entries in the current scope share a name and attribute signature,
// the earliest of them is reported so the caller can evict it before adding
// a fourth.
func (tb *TreeBuilder) findActiveFormattingDuplicate(name string, attrs []tokenizer.Attr) (int, bool) {
	sig := attrsSignature(attrs)
	earliest := -1
	count := 0
	for i, entry := range tb.activeFormatting {
		if entry.marker {
			earliest, count = -1, 0
			continue
		}
		if entry.name != name || entry.signature != sig {
			continue
		}
		if count == 0 {
			earliest = i
		}
		count++
	}
	if count >= noahsArkLimit {
		return earliest, true
	}
	return -1, false
}

func (tb *TreeBuilder) hasActiveFormattingEntry(name string) bool {
	_, ok := tb.findActiveFormattingIndex(name)
	return ok
}

func (tb *TreeBuilder) removeFormattingEntry(index int) {
	if index < 0 || index >= len(tb.activeFormatting) {
		return
	}
	tb.activeFormatting = append(tb.activeFormatting[:index], tb.activeFormatting[index+1:]...)
}

func (tb *TreeBuilder) removeLastActiveFormattingByName(name string) {
	if i, ok := tb.findActiveFormattingIndex(name); ok {
		tb.removeFormattingEntry(i)
	}
}

func (tb *TreeBuilder) removeLastOpenElementByName(name string) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if tb.openElements[i].TagName == name {
			tb.openElements = append(tb.openElements[:i], tb.openElements[i+1:]...)
			return
		}
	}
}

// reconstructActiveFormattingElements re-opens formatting elements that were
// implicitly closed by an intervening block element, per WHATWG HTML
// §13.2.5.2.1. It walks back to the last entry still on the open element
// stack (or a marker), then re-inserts clones forward from there so nesting
// order is preserved.
func (tb *TreeBuilder) reconstructActiveFormattingElements() {
	if len(tb.activeFormatting) == 0 {
		return
	}
	if last := tb.activeFormatting[len(tb.activeFormatting)-1]; last.marker || tb.elementInOpenElements(last.node) {
		return
	}

	start := tb.firstEntryNeedingReinsertion()
	for i := start; i < len(tb.activeFormatting); i++ {
		entry := tb.activeFormatting[i]
		el := tb.insertElement(entry.name, cloneTokenAttrs(entry.attrs))
		tb.activeFormatting[i].node = el
	}
}

// firstEntryNeedingReinsertion finds the earliest active-formatting index
// that reconstructActiveFormattingElements must regenerate: the entry right
// after the last one still present on the stack of open elements, or 0 if
// every entry up to a marker has fallen off the stack.
func (tb *TreeBuilder) firstEntryNeedingReinsertion() int {
	for i := len(tb.activeFormatting) - 2; i >= 0; i-- {
		entry := tb.activeFormatting[i]
		if entry.marker || tb.elementInOpenElements(entry.node) {
			return i + 1
		}
	}
	return 0
}

func (tb *TreeBuilder) elementInOpenElements(node *dom.Element) bool {
	_, ok := tb.indexOfOpenElement(node)
	return ok
}

func cloneTokenAttrs(attrs []tokenizer.Attr) []tokenizer.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]tokenizer.Attr, len(attrs))
	copy(out, attrs)
	return out
}

// attrsSignature builds a stable, order-independent fingerprint of an
// element's HTML-namespace attributes for the Noah's Ark duplicate check.
func attrsSignature(attrs []tokenizer.Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	type pair struct{ name, value string }
	pairs := make([]pair, 0, len(attrs))
	for _, a := range attrs {
		if a.Namespace == "" {
			pairs = append(pairs, pair{a.Name, a.Value})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })

	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(p.name)
		sb.WriteByte('=')
		sb.WriteString(p.value)
		sb.WriteByte(0)
	}
	return sb.String()
}

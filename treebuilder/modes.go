package treebuilder

// InsertionMode selects which token-processing rules are active. The tree
// builder switches between these as it discovers which section of the
// document (head, body, a table cell, a <select>, ...) it is building.
type InsertionMode int

// Insertion modes as defined by the HTML5 specification.
// See: https://html.spec.whatwg.org/multipage/parsing.html#insertion-mode
const (
	Initial InsertionMode = iota
	BeforeHTML
	BeforeHead
	InHead
	InHeadNoscript
	AfterHead
	InBody
	Text
	InTable
	InTableText
	InCaption
	InColumnGroup
	InTableBody
	InRow
	InCell
	InSelect
	InSelectInTable
	InTemplate
	AfterBody
	InFrameset
	AfterFrameset
	AfterAfterBody
	AfterAfterFrameset
)

// String renders the mode the way the spec names it, for log lines and
// test failure messages.
func (m InsertionMode) String() string {
	switch m {
	case Initial:
		return "initial"
	case BeforeHTML:
		return "before html"
	case BeforeHead:
		return "before head"
	case InHead:
		return "in head"
	case InHeadNoscript:
		return "in head noscript"
	case AfterHead:
		return "after head"
	case InBody:
		return "in body"
	case Text:
		return "text"
	case InTable:
		return "in table"
	case InTableText:
		return "in table text"
	case InCaption:
		return "in caption"
	case InColumnGroup:
		return "in column group"
	case InTableBody:
		return "in table body"
	case InRow:
		return "in row"
	case InCell:
		return "in cell"
	case InSelect:
		return "in select"
	case InSelectInTable:
		return "in select in table"
	case InTemplate:
		return "in template"
	case AfterBody:
		return "after body"
	case InFrameset:
		return "in frameset"
	case AfterFrameset:
		return "after frameset"
	case AfterAfterBody:
		return "after after body"
	case AfterAfterFrameset:
		return "after after frameset"
	default:
		return "unknown"
	}
}

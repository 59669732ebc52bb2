package treebuilder

import (
	"github.com/html5tree/html5tree/dom"
	"github.com/html5tree/html5tree/tokenizer"
)

// TreeBuilder implements the HTML5 tree construction stage: the insertion-mode
// state machine that consumes the tokenizer's token stream and builds the DOM.
type TreeBuilder struct {
	document *dom.Document

	openElements []*dom.Element

	mode         InsertionMode
	originalMode InsertionMode

	headElement *dom.Element

	activeFormatting []formattingEntry

	// Template insertion modes stack.
	templateModes []InsertionMode

	// Table parsing support.
	pendingTableText      []string
	tableTextOriginalMode *InsertionMode
	framesetOK            bool
	fosterParenting       bool

	fragmentContext *FragmentContext
	fragmentRoot    *dom.Element
	fragmentElement *dom.Element

	tokenizer *tokenizer.Tokenizer

	// forceHTMLMode is set by processForeignContent when it encounters a token
	// that should be reprocessed using normal HTML insertion mode rules rather
	// than foreign content rules. This prevents infinite loops when foreign
	// content contains tokens that trigger breakout to HTML mode.
	forceHTMLMode bool

	iframeSrcdoc bool

	// scripting mirrors the HTML5 "scripting flag". When enabled, <noscript>
	// content is tokenized as raw text; when disabled, <noscript> is parsed
	// as ordinary markup (its children are inspectable, matching how a
	// browser with JavaScript disabled would parse it).
	scripting bool
}

// SetScripting toggles the scripting flag that governs <noscript> handling.
func (tb *TreeBuilder) SetScripting(enabled bool) {
	tb.scripting = enabled
}

// New creates a new tree builder for full document parsing.
func New(tok *tokenizer.Tokenizer) *TreeBuilder {
	return &TreeBuilder{
		document:         dom.NewDocument(),
		mode:             Initial,
		originalMode:     Initial,
		openElements:     nil,
		activeFormatting: nil,
		templateModes:    nil,
		pendingTableText: nil,
		framesetOK:       true,
		fragmentRoot:     nil,
		fragmentContext:  nil,
		tokenizer:        tok,
	}
}

// NewFragment creates a new tree builder for fragment parsing.
func NewFragment(tok *tokenizer.Tokenizer, ctx *FragmentContext) *TreeBuilder {
	tb := &TreeBuilder{
		document:         dom.NewDocument(),
		mode:             Initial,
		originalMode:     Initial,
		openElements:     nil,
		activeFormatting: nil,
		templateModes:    nil,
		pendingTableText: nil,
		framesetOK:       false,
		fragmentContext:  ctx,
		tokenizer:        tok,
	}

	// Minimal fragment setup: create an <html> root and a context element.
	html := dom.NewElement("html")
	tb.document.AppendChild(html)
	tb.openElements = append(tb.openElements, html)
	tb.fragmentRoot = html

	if ctx != nil && ctx.TagName != "" {
		contextEl := dom.NewElement(ctx.TagName)
		switch ctx.Namespace {
		case "svg":
			contextEl = dom.NewElementNS(ctx.TagName, dom.NamespaceSVG)
		case "mathml":
			contextEl = dom.NewElementNS(ctx.TagName, dom.NamespaceMathML)
		}
		html.AppendChild(contextEl)
		tb.openElements = append(tb.openElements, contextEl)
		tb.fragmentElement = contextEl

		// Set the initial insertion mode based on the context element, per HTML5 fragment parsing.
		// A select context starts in InBody rather than InSelect, so unknown
		// children of the select are kept.
		tag := contextEl.TagName
		if ctx.Namespace != "" && ctx.Namespace != "html" {
			tb.mode = InBody
		} else {
			switch tag {
			case "html":
				tb.mode = BeforeHead
			case "tbody", "thead", "tfoot":
				tb.mode = InTableBody
			case "tr":
				tb.mode = InRow
			case "td", "th":
				tb.mode = InCell
			case "caption":
				tb.mode = InCaption
			case "colgroup":
				tb.mode = InColumnGroup
			case "table":
				tb.mode = InTable
			default:
				tb.mode = InBody
			}
		}
		tb.originalMode = tb.mode

		// Adjust tokenizer state based on the fragment context element, per HTML5 fragment parsing.
		// This is necessary because the fragment setup does not emit the context start tag token.
		if ctx.Namespace == "" || ctx.Namespace == "html" {
			switch tag {
			case "title", "textarea":
				tb.tokenizer.SetLastStartTag(tag)
				tb.tokenizer.SetState(tokenizer.RCDATAState)
			case "style", "xmp", "iframe", "noembed", "noframes":
				tb.tokenizer.SetLastStartTag(tag)
				tb.tokenizer.SetState(tokenizer.RAWTEXTState)
			case "script":
				tb.tokenizer.SetLastStartTag(tag)
				tb.tokenizer.SetState(tokenizer.ScriptDataState)
			case "plaintext":
				tb.tokenizer.SetLastStartTag(tag)
				tb.tokenizer.SetState(tokenizer.PLAINTEXTState)
			}
		}
	}

	return tb
}

// SetIframeSrcdoc toggles iframe srcdoc parsing behavior (affects quirks mode decisions).
func (tb *TreeBuilder) SetIframeSrcdoc(enabled bool) {
	tb.iframeSrcdoc = enabled
}

// Finish runs the post-parse tree walk described by the "selected content"
// rules: the first selected <option> (or else the first <option>) of every
// <select> has its children cloned into any <selectedcontent> descendant.
// Call this once after the token stream has been driven to EOF.
func (tb *TreeBuilder) Finish() {
	tb.populateSelectedContent(tb.document)
}

// Document returns the constructed document.
func (tb *TreeBuilder) Document() *dom.Document {
	return tb.document
}

// FragmentNodes returns the fragment's top-level element children.
func (tb *TreeBuilder) FragmentNodes() []*dom.Element {
	root := tb.fragmentElement
	if root == nil {
		root = tb.fragmentRoot
	}
	if root == nil {
		return nil
	}
	var out []*dom.Element
	for _, child := range root.Children() {
		if el, ok := child.(*dom.Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// ProcessToken consumes a tokenizer token and updates the DOM tree.
func (tb *TreeBuilder) ProcessToken(tok tokenizer.Token) {
	// The full HTML5 algorithm is implemented incrementally; keep the current
	// behavior non-panicking and deterministic.
	for {
		// Check if we should use foreign content rules.
		// forceHTMLMode bypasses this check when reprocessing a token that
		// triggered breakout from foreign content.
		if !tb.forceHTMLMode && tb.shouldUseForeignContent(tok) {
			reprocess := tb.processForeignContent(tok)
			if !reprocess {
				return
			}
			continue
		}
		tb.forceHTMLMode = false
		reprocess := tb.dispatchByMode(tok)
		if !reprocess {
			return
		}
	}
}

// dispatchByMode routes a token to the handler for the current insertion
// mode, mirroring the switch table WHATWG §13.2.6 names per insertion mode.
func (tb *TreeBuilder) dispatchByMode(tok tokenizer.Token) bool {
	switch tb.mode {
	case Initial:
		return tb.processInitial(tok)
	case BeforeHTML:
		return tb.processBeforeHTML(tok)
	case BeforeHead:
		return tb.processBeforeHead(tok)
	case InHead:
		return tb.processInHead(tok)
	case InHeadNoscript:
		return tb.processInHeadNoscript(tok)
	case AfterHead:
		return tb.processAfterHead(tok)
	case Text:
		return tb.processText(tok)
	case InBody:
		return tb.processInBody(tok)
	case InTable:
		return tb.processInTable(tok)
	case InTableText:
		return tb.processInTableText(tok)
	case InCaption:
		return tb.processInCaption(tok)
	case InColumnGroup:
		return tb.processInColumnGroup(tok)
	case InTableBody:
		return tb.processInTableBody(tok)
	case InRow:
		return tb.processInRow(tok)
	case InCell:
		return tb.processInCell(tok)
	case InSelect:
		return tb.processInSelect(tok)
	case InSelectInTable:
		return tb.processInSelectInTable(tok)
	case InTemplate:
		return tb.processInTemplate(tok)
	case AfterBody:
		return tb.processAfterBody(tok)
	case InFrameset:
		return tb.processInFrameset(tok)
	case AfterFrameset:
		return tb.processAfterFrameset(tok)
	case AfterAfterBody:
		return tb.processAfterAfterBody(tok)
	case AfterAfterFrameset:
		return tb.processAfterAfterFrameset(tok)
	default:
		// Fallback: treat as InBody for now.
		return tb.processInBody(tok)
	}
}

func (tb *TreeBuilder) currentNode() dom.Node {
	if len(tb.openElements) == 0 {
		return tb.document
	}
	return tb.openElements[len(tb.openElements)-1]
}

func (tb *TreeBuilder) currentElement() *dom.Element {
	if len(tb.openElements) == 0 {
		return nil
	}
	return tb.openElements[len(tb.openElements)-1]
}

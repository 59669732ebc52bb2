// Package html5tree implements the WHATWG HTML5 tokenizer and tree
// construction algorithm: it turns a string of already-decoded Unicode text
// into a conformant document tree, recovering from malformed markup exactly
// as the specification (and therefore every shipping browser) prescribes.
//
// # Basic usage
//
//	doc, err := html5tree.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Character-set sniffing, a CSS selector engine, and tree serialization are
// out of scope: callers decode bytes to text themselves and consume the
// resulting *dom.Document with whatever traversal or serialization tooling
// they already have.
//
// For more information, see https://github.com/html5tree/html5tree
package html5tree

import (
	"github.com/html5tree/html5tree/dom"
	htmlerrors "github.com/html5tree/html5tree/errors"
	"github.com/html5tree/html5tree/tokenizer"
	"github.com/html5tree/html5tree/treebuilder"
)

// Version is the current version of html5tree.
const Version = "0.1.0-dev"

// Parse parses an HTML string and returns the root of a full document tree.
//
// Parsing never fails outright: malformed markup is recovered from per the
// WHATWG rules. Parse only returns a non-nil error when WithStrictMode or
// WithCollectErrors was supplied and at least one parse error was recorded.
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	tok, tb := newPipeline(html, cfg)
	runToEOF(tok, tb)
	tb.Finish()
	return tb.Document(), pipelineErr(tok, cfg)
}

// ParseBytes parses HTML supplied as already-UTF-8 bytes. Detecting a
// non-UTF-8 source encoding is the caller's responsibility; ParseBytes only
// performs the conversion to string.
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	return Parse(string(html), opts...)
}

// ParseFragment parses an HTML fragment as it would be parsed into the
// innerHTML of the named context element (e.g. parsing "<td>" under a "tr"
// context produces different results than under a "div" context).
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	cfg := newConfig(opts...)
	cfg.fragmentContext = &treebuilder.FragmentContext{TagName: context, Namespace: "html"}
	tok, tb := newFragmentPipeline(html, cfg)
	runToEOF(tok, tb)
	tb.Finish()
	return tb.FragmentNodes(), pipelineErr(tok, cfg)
}

func newPipeline(html string, cfg *config) (*tokenizer.Tokenizer, *treebuilder.TreeBuilder) {
	tok := tokenizer.New(html)
	tok.SetDiscardBOM(cfg.discardBOM)
	tok.SetXMLCoercion(cfg.xmlCoercion)
	tb := treebuilder.New(tok)
	tb.SetIframeSrcdoc(cfg.iframeSrcdoc)
	tb.SetScripting(cfg.scripting)
	return tok, tb
}

func newFragmentPipeline(html string, cfg *config) (*tokenizer.Tokenizer, *treebuilder.TreeBuilder) {
	tok := tokenizer.New(html)
	tok.SetDiscardBOM(cfg.discardBOM)
	tok.SetXMLCoercion(cfg.xmlCoercion)
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	tb.SetIframeSrcdoc(cfg.iframeSrcdoc)
	tb.SetScripting(cfg.scripting)
	return tok, tb
}

// runToEOF drives the tokenizer/tree-builder pipeline described in §5: a
// single-threaded, fully synchronous loop with no out-of-order processing.
// The tree builder may rewrite the tokenizer's state between tokens (raw
// text, RCDATA, PLAINTEXT); that's the only cross-component mutation.
func runToEOF(tok *tokenizer.Tokenizer, tb *treebuilder.TreeBuilder) {
	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			return
		}
	}
}

func pipelineErr(tok *tokenizer.Tokenizer, cfg *config) error {
	if !cfg.strict && !cfg.collectErrors {
		return nil
	}
	parseErrs := convertTokenizerErrors(tok.Errors())
	if len(parseErrs) == 0 {
		return nil
	}
	if cfg.strict {
		return parseErrs[0]
	}
	return htmlerrors.ParseErrors(parseErrs)
}

func convertTokenizerErrors(errs []tokenizer.ParseError) []*htmlerrors.ParseError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.Message(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}

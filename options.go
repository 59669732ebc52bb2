package html5tree

import (
	"github.com/html5tree/html5tree/treebuilder"
)

// config holds parser configuration.
type config struct {
	fragmentContext *treebuilder.FragmentContext
	iframeSrcdoc    bool
	scripting       bool
	strict          bool
	collectErrors   bool
	discardBOM      bool
	xmlCoercion     bool
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{discardBOM: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithFragment sets the parsing context for fragment parsing.
// This is typically used internally by ParseFragment.
func WithFragment(tagName string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: "html",
		}
	}
}

// WithFragmentNS sets the parsing context with a specific namespace.
// Use this for parsing SVG or MathML fragments.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode doctype processing always resolves to no-quirks, matching
// how a browser parses the value of an iframe's srcdoc attribute.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithScripting enables the scripting flag. With scripting enabled,
// <noscript> content is tokenized as raw text, as it would be in a browser
// that executes scripts. The default (disabled) parses <noscript> content
// as ordinary markup.
func WithScripting() Option {
	return func(c *config) {
		c.scripting = true
	}
}

// WithoutDiscardBOM disables discarding of a leading U+FEFF BOM. By default
// a leading BOM is stripped before tokenization begins.
func WithoutDiscardBOM() Option {
	return func(c *config) {
		c.discardBOM = false
	}
}

// WithXMLCoercion enables the XML-output coercion rules used by the
// html5lib conformance suite: form-feed becomes space, noncharacters become
// U+FFFD in emitted text, and "--" inside comments becomes "- -".
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, the first parse error causes Parse to return an error.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors are collected and returned as a ParseErrors error
// (which can be unwrapped to get individual errors).
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}

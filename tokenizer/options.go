package tokenizer

// Options configure tokenizer behavior. The zero value keeps a leading BOM
// and disables XML coercion; NewOptions returns the default configuration.
type Options struct {
	// DiscardBOM controls whether a leading U+FEFF BOM is removed from the
	// input before tokenization starts.
	DiscardBOM bool

	// XMLCoercion enables XML output coercions used by conformance suites
	// that compare against an XML serialization rather than HTML:
	//   - U+000C FORM FEED becomes a space in text tokens
	//   - some non-XML characters become U+FFFD
	//   - comments replace "--" with "- -"
	XMLCoercion bool
}

// NewOptions returns the tokenizer's default configuration: BOM stripping
// enabled, XML coercion off.
func NewOptions() Options {
	return Options{DiscardBOM: true}
}

func defaultOptions() Options {
	return NewOptions()
}

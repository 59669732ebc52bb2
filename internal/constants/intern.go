package constants

// Interning for common HTML tag and attribute names: the tokenizer sees the
// same few hundred names over and over, so mapping them to a shared string
// avoids re-allocating an identical value on every occurrence.

// commonTagNames lists the tag names worth interning, grouped the way the
// HTML element catalog groups them (structure, sectioning, text content,
// lists, tables, forms, media, interactive, formatting, misc).
var commonTagNames = []string{
	"html", "head", "body", "title", "meta", "link", "style",
	"header", "footer", "nav", "section", "article", "aside", "main",
	"div", "p", "span", "h1", "h2", "h3", "h4", "h5", "h6",
	"blockquote", "pre", "code",
	"ul", "ol", "li", "dl", "dt", "dd",
	"table", "thead", "tbody", "tfoot", "tr", "th", "td",
	"caption", "colgroup", "col",
	"form", "input", "button", "select", "option", "textarea",
	"label", "fieldset", "legend",
	"img", "video", "audio", "source", "track", "canvas", "svg",
	"a", "script", "noscript", "iframe",
	"b", "i", "u", "s", "em", "strong", "small", "mark", "del", "ins", "sub", "sup",
	"br", "hr", "template", "slot", "base",
}

// commonAttributeNames lists the attribute names worth interning.
var commonAttributeNames = []string{
	"id", "class", "style", "title", "lang", "dir",
	"data-id", "data-name", "data-value",
	"href", "rel", "target", "type",
	"src", "alt", "width", "height",
	"name", "value", "placeholder", "disabled", "readonly", "required",
	"checked", "selected", "action", "method", "for",
	"onclick", "onchange", "onsubmit", "onload", "tabindex", "aria-label", "role",
	"content", "charset", "property",
	"hidden", "data", "download", "enctype", "accept", "autocomplete",
	"autofocus", "maxlength", "minlength", "pattern", "multiple", "size",
	"min", "max", "step", "colspan", "rowspan", "scope", "headers",
}

// CommonTagNames maps each interned tag name to itself, so callers can reuse
// the canonical string instance instead of allocating a fresh one.
var CommonTagNames = internSet(commonTagNames)

// CommonAttributeNames maps each interned attribute name to itself.
var CommonAttributeNames = internSet(commonAttributeNames)

func internSet(names []string) map[string]string {
	out := make(map[string]string, len(names))
	for _, n := range names {
		out[n] = n
	}
	return out
}

// InternTagName returns the shared string for name if it's a common tag,
// otherwise returns name unchanged.
func InternTagName(name string) string {
	if interned, ok := CommonTagNames[name]; ok {
		return interned
	}
	return name
}

// InternAttributeName returns the shared string for name if it's a common
// attribute, otherwise returns name unchanged.
func InternAttributeName(name string) string {
	if interned, ok := CommonAttributeNames[name]; ok {
		return interned
	}
	return name
}

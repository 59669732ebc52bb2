package treebuilder

// pushTemplateInsertionMode pushes mode onto the stack of template insertion
// modes and switches the current mode to it per WHATWG §13.2.6.4.17.
func (tb *TreeBuilder) pushTemplateInsertionMode(mode InsertionMode) {
	tb.templateModes = append(tb.templateModes, mode)
	tb.mode = mode
}

// popTemplateInsertionMode discards the top of the template insertion mode
// stack, called when a template element is popped off the stack of open
// elements.
func (tb *TreeBuilder) popTemplateInsertionMode() {
	if len(tb.templateModes) == 0 {
		return
	}
	tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
}

// replaceTemplateInsertionMode swaps the current template insertion mode for
// a more specific one (e.g. "in table" once a <tbody> appears inside a
// <template>) and switches the builder to that mode.
func (tb *TreeBuilder) replaceTemplateInsertionMode(mode InsertionMode) {
	tb.popTemplateInsertionMode()
	tb.pushTemplateInsertionMode(mode)
}

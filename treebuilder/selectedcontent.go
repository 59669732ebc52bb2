package treebuilder

import "github.com/html5tree/html5tree/dom"

// populateSelectedContent mirrors every <select>'s chosen <option> into any
// <selectedcontent> descendant it has, per element, after the document tree
// is otherwise complete. The first option carrying a "selected" attribute
// wins; with none marked, the first option in tree order stands in for it.
func (tb *TreeBuilder) populateSelectedContent(root dom.Node) {
	var selects []*dom.Element
	findElements(root, "select", &selects)

	for _, sel := range selects {
		target := findElement(sel, "selectedcontent")
		if target == nil {
			continue
		}

		var options []*dom.Element
		findElements(sel, "option", &options)
		if len(options) == 0 {
			continue
		}

		chosen := options[0]
		for _, opt := range options {
			if opt.Namespace == dom.NamespaceHTML && opt.HasAttr("selected") {
				chosen = opt
				break
			}
		}

		cloneChildren(chosen, target)
	}
}

func findElements(node dom.Node, name string, out *[]*dom.Element) {
	if el, ok := node.(*dom.Element); ok {
		if el.Namespace == dom.NamespaceHTML && el.TagName == name {
			*out = append(*out, el)
		}
		if el.TemplateContent != nil {
			for _, child := range el.TemplateContent.Children() {
				findElements(child, name, out)
			}
		}
	}
	for _, child := range node.Children() {
		findElements(child, name, out)
	}
}

func findElement(node dom.Node, name string) *dom.Element {
	if el, ok := node.(*dom.Element); ok {
		if el.Namespace == dom.NamespaceHTML && el.TagName == name {
			return el
		}
		if el.TemplateContent != nil {
			for _, child := range el.TemplateContent.Children() {
				if found := findElement(child, name); found != nil {
					return found
				}
			}
		}
	}
	for _, child := range node.Children() {
		if found := findElement(child, name); found != nil {
			return found
		}
	}
	return nil
}

func cloneChildren(source, target *dom.Element) {
	for _, child := range append([]dom.Node(nil), target.Children()...) {
		target.RemoveChild(child)
	}
	for _, child := range source.Children() {
		target.AppendChild(child.Clone(true))
	}
}

package treebuilder_test

import (
	"testing"

	"github.com/html5tree/html5tree"
	"github.com/html5tree/html5tree/internal/testutil"
)

func TestTemplate_TableRowsGoIntoContent(t *testing.T) {
	doc, err := html5tree.Parse("<template><tr><td>x</td></tr></template>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	got := testutil.SerializeHTML5LibTree(doc)
	want := `| <html>
|   <head>
|     <template>
|       content
|         <tr>
|           <td>
|             "x"
|   <body>`
	if got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

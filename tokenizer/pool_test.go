package tokenizer

import (
	"testing"
)

// TestTokenizerTokenStream verifies that tokenizing a simple document
// produces the expected stream of tokens, independent of how the
// tokenizer recycles its internal scratch buffers between tags.
func TestTokenizerTokenStream(t *testing.T) {
	tok := New("<div class='test'>hello</div>")

	var tokens []Token
	for {
		token := tok.Next()
		if token.Type == EOF {
			break
		}
		tokens = append(tokens, token)
	}

	// We should have 3 tokens: StartTag, Character, EndTag
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}

	if tokens[0].Type != StartTag {
		t.Errorf("tokens[0].Type = %v, want StartTag", tokens[0].Type)
	}
	if tokens[1].Type != Character {
		t.Errorf("tokens[1].Type = %v, want Character", tokens[1].Type)
	}
	if tokens[2].Type != EndTag {
		t.Errorf("tokens[2].Type = %v, want EndTag", tokens[2].Type)
	}

	if tokens[0].Name != "div" {
		t.Errorf("tokens[0].Name = %q, want 'div'", tokens[0].Name)
	}
	if tokens[1].Data != "hello" {
		t.Errorf("tokens[1].Data = %q, want 'hello'", tokens[1].Data)
	}
	if tokens[2].Name != "div" {
		t.Errorf("tokens[2].Name = %q, want 'div'", tokens[2].Name)
	}
}

// TestAttrIndexPoolReuse verifies acquireAttrIndex hands back a clean map
// even when it comes from the pool instead of being freshly allocated.
func TestAttrIndexPoolReuse(t *testing.T) {
	m := acquireAttrIndex()
	m["class"] = struct{}{}
	m["id"] = struct{}{}
	releaseAttrIndex(m)

	reused := acquireAttrIndex()
	if len(reused) != 0 {
		t.Errorf("acquireAttrIndex returned a dirty map with %d entries, want 0", len(reused))
	}
	releaseAttrIndex(reused)
}

// TestAttrIndexPoolAcrossTags verifies that duplicate-attribute detection
// does not leak state from one tag's scratch index into the next tag
// scanned by the same tokenizer.
func TestAttrIndexPoolAcrossTags(t *testing.T) {
	tok := New(`<div class="a" class="b"><span class="c"></span>`)

	div := tok.Next()
	if div.Type != StartTag || div.Name != "div" {
		t.Fatalf("got %v %q, want StartTag div", div.Type, div.Name)
	}
	if n := len(div.Attrs); n != 1 {
		t.Fatalf("div has %d attrs, want 1 (duplicate class dropped)", n)
	}

	span := tok.Next()
	if span.Type != StartTag || span.Name != "span" {
		t.Fatalf("got %v %q, want StartTag span", span.Type, span.Name)
	}
	if v := span.AttrVal("class"); v != "c" {
		t.Errorf("span class = %q, want %q (no leakage from div's index)", v, "c")
	}
}

package tokenizer

import "unicode"

// rcdataLikeMain runs the body shared by the RCDATA and RAWTEXT bulk-text
// states: both just scan runs of characters until a "<" might start their
// own closing tag, differing only in which less-than-sign state to hand
// off to.
func (t *Tokenizer) rcdataLikeMain(mode State, lessThanSign State) {
	t.textMode = mode
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitEOF()
			return
		}
		switch c {
		case '<':
			t.flushText()
			t.state = lessThanSign
			return
		case 0:
			t.emitError("unexpected-null-character")
			t.appendTextRune(unicode.ReplacementChar)
		default:
			t.appendTextRune(c)
		}
	}
}

func (t *Tokenizer) stateRCDATA() {
	t.rcdataLikeMain(RCDATAState, RCDATALessThanSignState)
}

func (t *Tokenizer) stateRAWTEXT() {
	t.rcdataLikeMain(RAWTEXTState, RAWTEXTLessThanSignState)
}

func (t *Tokenizer) lessThanSignCommon(endTagOpen State, textState State) {
	c, ok := t.getChar()
	if ok && c == '/' {
		t.tempBuffer = t.tempBuffer[:0]
		t.state = endTagOpen
		return
	}
	t.appendTextRune('<')
	t.reconsumeCurrent()
	t.state = textState
}

func (t *Tokenizer) stateRCDATALessThanSign() {
	t.lessThanSignCommon(RCDATAEndTagOpenState, RCDATAState)
}

func (t *Tokenizer) stateRAWTEXTLessThanSign() {
	t.lessThanSignCommon(RAWTEXTEndTagOpenState, RAWTEXTState)
}

func (t *Tokenizer) endTagOpenCommon(endTagName State, textState State) {
	c, ok := t.getChar()
	if ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
		t.startTag(EndTag, c)
		t.tempBuffer = append(t.tempBuffer, c)
		t.state = endTagName
		return
	}
	t.appendTextRune('<')
	t.appendTextRune('/')
	t.reconsumeCurrent()
	t.state = textState
}

func (t *Tokenizer) stateRCDATAEndTagOpen() {
	t.endTagOpenCommon(RCDATAEndTagNameState, RCDATAState)
}

func (t *Tokenizer) stateRAWTEXTEndTagOpen() {
	t.endTagOpenCommon(RAWTEXTEndTagNameState, RAWTEXTState)
}

// endTagNameIsAppropriate reports whether the tag name accumulated so far
// (lowercased as it's scanned) matches the name of the start tag that
// switched the tokenizer into this RCDATA/RAWTEXT/script-data run; only an
// "appropriate" end tag is allowed to close out of it.
func (t *Tokenizer) endTagNameIsAppropriate() bool {
	return string(t.currentTagName) == t.rawtextTagName
}

func (t *Tokenizer) stateRCDATAEndTagName() {
	c, ok := t.getChar()
	if !ok {
		t.appendTextRune('<')
		t.appendTextRune('/')
		for _, r := range t.tempBuffer {
			t.appendTextRune(r)
		}
		t.reconsumeCurrent()
		t.state = RCDATAState
		return
	}
	switch {
	case isHTMLSpace(c) && t.endTagNameIsAppropriate():
		t.state = BeforeAttributeNameState
		return
	case c == '/' && t.endTagNameIsAppropriate():
		t.state = SelfClosingStartTagState
		return
	case c == '>' && t.endTagNameIsAppropriate():
		t.emitCurrentTag()
		t.state = DataState
		return
	case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
		lower := c
		if lower >= 'A' && lower <= 'Z' {
			lower += 32
		}
		t.currentTagName = append(t.currentTagName, lower)
		t.tempBuffer = append(t.tempBuffer, c)
		return
	}
	t.appendTextRune('<')
	t.appendTextRune('/')
	for _, r := range t.tempBuffer {
		t.appendTextRune(r)
	}
	t.reconsumeCurrent()
	t.state = RCDATAState
}

func (t *Tokenizer) stateRAWTEXTEndTagName() {
	c, ok := t.getChar()
	if !ok {
		t.appendTextRune('<')
		t.appendTextRune('/')
		for _, r := range t.tempBuffer {
			t.appendTextRune(r)
		}
		t.emitEOF()
		return
	}
	switch {
	case isHTMLSpace(c) && t.endTagNameIsAppropriate():
		t.state = BeforeAttributeNameState
		return
	case c == '/' && t.endTagNameIsAppropriate():
		t.state = SelfClosingStartTagState
		return
	case c == '>' && t.endTagNameIsAppropriate():
		t.emitCurrentTag()
		t.state = DataState
		return
	case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
		lower := c
		if lower >= 'A' && lower <= 'Z' {
			lower += 32
		}
		t.currentTagName = append(t.currentTagName, lower)
		t.tempBuffer = append(t.tempBuffer, c)
		return
	}
	t.appendTextRune('<')
	t.appendTextRune('/')
	for _, r := range t.tempBuffer {
		t.appendTextRune(r)
	}
	t.reconsumeCurrent()
	t.state = RAWTEXTState
}

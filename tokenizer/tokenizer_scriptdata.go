package tokenizer

import "unicode"

// stateScriptData behaves like stateRAWTEXT except "<" hands off to the
// script-specific less-than-sign state, which alone knows how to recognize
// an escape-start sequence.
func (t *Tokenizer) stateScriptData() {
	t.textMode = ScriptDataState
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitEOF()
			return
		}
		switch c {
		case '<':
			t.flushText()
			t.state = ScriptDataLessThanSignState
			return
		case 0:
			t.emitError("unexpected-null-character")
			t.appendTextRune(unicode.ReplacementChar)
		default:
			t.appendTextRune(c)
		}
	}
}

func (t *Tokenizer) stateScriptDataLessThanSign() {
	c, ok := t.getChar()
	if ok && c == '/' {
		t.tempBuffer = t.tempBuffer[:0]
		t.state = ScriptDataEndTagOpenState
		return
	}
	if ok && c == '!' {
		t.appendTextRune('<')
		t.appendTextRune('!')
		t.state = ScriptDataEscapeStartState
		return
	}
	t.appendTextRune('<')
	t.reconsumeCurrent()
	t.state = ScriptDataState
}

func (t *Tokenizer) stateScriptDataEndTagOpen() {
	c, ok := t.getChar()
	if ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
		t.startTag(EndTag, c)
		t.tempBuffer = append(t.tempBuffer, c)
		t.state = ScriptDataEndTagNameState
		return
	}
	t.appendTextRune('<')
	t.appendTextRune('/')
	t.reconsumeCurrent()
	t.state = ScriptDataState
}

func (t *Tokenizer) stateScriptDataEndTagName() {
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
	t.state = ScriptDataState
}

func (t *Tokenizer) stateScriptDataEscapeStart() {
	c, ok := t.getChar()
	if ok && c == '-' {
		t.appendTextRune('-')
		t.state = ScriptDataEscapeStartDashState
		return
	}
	t.reconsumeCurrent()
	t.state = ScriptDataState
}

func (t *Tokenizer) stateScriptDataEscapeStartDash() {
	c, ok := t.getChar()
	if ok && c == '-' {
		t.appendTextRune('-')
		t.state = ScriptDataEscapedDashDashState
		return
	}
	t.reconsumeCurrent()
	t.state = ScriptDataState
}

func (t *Tokenizer) stateScriptDataEscaped() {
	t.textMode = ScriptDataState
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-script-html-comment-like-text")
			t.emitEOF()
			return
		}
		switch c {
		case '-':
			t.appendTextRune('-')
			t.state = ScriptDataEscapedDashState
			return
		case '<':
			t.flushText()
			t.state = ScriptDataEscapedLessThanSignState
			return
		case 0:
			t.emitError("unexpected-null-character")
			t.appendTextRune(unicode.ReplacementChar)
		default:
			t.appendTextRune(c)
		}
	}
}

func (t *Tokenizer) stateScriptDataEscapedDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-script-html-comment-like-text")
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.appendTextRune('-')
		t.state = ScriptDataEscapedDashDashState
	case '<':
		t.flushText()
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.emitError("unexpected-null-character")
		t.appendTextRune(unicode.ReplacementChar)
		t.state = ScriptDataEscapedState
	default:
		t.appendTextRune(c)
		t.state = ScriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataEscapedDashDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-script-html-comment-like-text")
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.appendTextRune('-')
	case '<':
		t.flushText()
		t.state = ScriptDataEscapedLessThanSignState
	case '>':
		t.appendTextRune('>')
		t.state = ScriptDataState
	case 0:
		t.emitError("unexpected-null-character")
		t.appendTextRune(unicode.ReplacementChar)
		t.state = ScriptDataEscapedState
	default:
		t.appendTextRune(c)
		t.state = ScriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataEscapedLessThanSign() {
	c, ok := t.getChar()
	if ok && c == '/' {
		t.tempBuffer = t.tempBuffer[:0]
		t.state = ScriptDataEscapedEndTagOpenState
		return
	}
	if ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
		t.tempBuffer = t.tempBuffer[:0]
		t.appendTextRune('<')
		t.reconsumeCurrent()
		t.state = ScriptDataDoubleEscapeStartState
		return
	}
	t.appendTextRune('<')
	t.reconsumeCurrent()
	t.state = ScriptDataEscapedState
}

func (t *Tokenizer) stateScriptDataEscapedEndTagOpen() {
	c, ok := t.getChar()
	if ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
		t.startTag(EndTag, c)
		t.tempBuffer = append(t.tempBuffer, c)
		t.state = ScriptDataEscapedEndTagNameState
		return
	}
	t.appendTextRune('<')
	t.appendTextRune('/')
	t.reconsumeCurrent()
	t.state = ScriptDataEscapedState
}

func (t *Tokenizer) stateScriptDataEscapedEndTagName() {
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
	t.state = ScriptDataEscapedState
}

// scriptDataDoubleEscapeBoundary implements the shared switch-in/switch-out
// test used by both "double escape start" and "double escape end": the
// accumulated temp buffer must spell "script" exactly.
func (t *Tokenizer) scriptDataDoubleEscapeBoundary() bool {
	return string(t.tempBuffer) == "script"
}

func (t *Tokenizer) stateScriptDataDoubleEscapeStart() {
	c, ok := t.getChar()
	if !ok {
		t.reconsumeCurrent()
		t.state = ScriptDataEscapedState
		return
	}
	switch {
	case isHTMLSpace(c) || c == '/' || c == '>':
		if t.scriptDataDoubleEscapeBoundary() {
			t.state = ScriptDataDoubleEscapedState
		} else {
			t.state = ScriptDataEscapedState
		}
		t.appendTextRune(c)
	case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
		lower := c
		if lower >= 'A' && lower <= 'Z' {
			lower += 32
		}
		t.tempBuffer = append(t.tempBuffer, lower)
		t.appendTextRune(c)
	default:
		t.reconsumeCurrent()
		t.state = ScriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscaped() {
	t.textMode = ScriptDataState
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-script-html-comment-like-text")
			t.emitEOF()
			return
		}
		switch c {
		case '-':
			t.appendTextRune('-')
			t.state = ScriptDataDoubleEscapedDashState
			return
		case '<':
			t.appendTextRune('<')
			t.state = ScriptDataDoubleEscapedLessThanSignState
			return
		case 0:
			t.emitError("unexpected-null-character")
			t.appendTextRune(unicode.ReplacementChar)
		default:
			t.appendTextRune(c)
		}
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-script-html-comment-like-text")
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.appendTextRune('-')
		t.state = ScriptDataDoubleEscapedDashDashState
	case '<':
		t.appendTextRune('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.emitError("unexpected-null-character")
		t.appendTextRune(unicode.ReplacementChar)
		t.state = ScriptDataDoubleEscapedState
	default:
		t.appendTextRune(c)
		t.state = ScriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDashDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-script-html-comment-like-text")
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.appendTextRune('-')
	case '<':
		t.appendTextRune('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case '>':
		t.appendTextRune('>')
		t.state = ScriptDataState
	case 0:
		t.emitError("unexpected-null-character")
		t.appendTextRune(unicode.ReplacementChar)
		t.state = ScriptDataDoubleEscapedState
	default:
		t.appendTextRune(c)
		t.state = ScriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedLessThanSign() {
	c, ok := t.getChar()
	if ok && c == '/' {
		t.tempBuffer = t.tempBuffer[:0]
		t.appendTextRune('/')
		t.state = ScriptDataDoubleEscapeEndState
		return
	}
	t.reconsumeCurrent()
	t.state = ScriptDataDoubleEscapedState
}

func (t *Tokenizer) stateScriptDataDoubleEscapeEnd() {
	c, ok := t.getChar()
	if !ok {
		t.reconsumeCurrent()
		t.state = ScriptDataDoubleEscapedState
		return
	}
	switch {
	case isHTMLSpace(c) || c == '/' || c == '>':
		if t.scriptDataDoubleEscapeBoundary() {
			t.state = ScriptDataEscapedState
		} else {
			t.state = ScriptDataDoubleEscapedState
		}
		t.appendTextRune(c)
	case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
		lower := c
		if lower >= 'A' && lower <= 'Z' {
			lower += 32
		}
		t.tempBuffer = append(t.tempBuffer, lower)
		t.appendTextRune(c)
	default:
		t.reconsumeCurrent()
		t.state = ScriptDataDoubleEscapedState
	}
}

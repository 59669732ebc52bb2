package tokenizer

import "unicode"

func (t *Tokenizer) stateDoctype() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-doctype")
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isHTMLSpace(c):
		t.state = BeforeDOCTYPENameState
	case c == '>':
		t.reconsumeCurrent()
		t.state = BeforeDOCTYPENameState
	default:
		t.emitError("missing-whitespace-before-doctype-name")
		t.reconsumeCurrent()
		t.state = BeforeDOCTYPENameState
	}
}

func (t *Tokenizer) stateBeforeDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-doctype")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isHTMLSpace(c):
			continue
		case c == 0:
			t.emitError("unexpected-null-character")
			t.currentDoctypeName = append(t.currentDoctypeName, unicode.ReplacementChar)
			t.state = DOCTYPENameState
			return
		case c == '>':
			t.emitError("missing-doctype-name")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		default:
			if c >= 'A' && c <= 'Z' {
				c += 32
			}
			t.currentDoctypeName = append(t.currentDoctypeName, c)
			t.state = DOCTYPENameState
			return
		}
	}
}

func (t *Tokenizer) stateDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-doctype")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isHTMLSpace(c):
			t.state = AfterDOCTYPENameState
			return
		case c == '>':
			t.emitDoctype()
			t.state = DataState
			return
		case c == 0:
			t.emitError("unexpected-null-character")
			t.currentDoctypeName = append(t.currentDoctypeName, unicode.ReplacementChar)
		default:
			if c >= 'A' && c <= 'Z' {
				c += 32
			}
			t.currentDoctypeName = append(t.currentDoctypeName, c)
		}
	}
}

// stateAfterDoctypeName looks for the PUBLIC or SYSTEM keyword; anything
// else is a bogus DOCTYPE that still gets emitted, with quirks forced.
func (t *Tokenizer) stateAfterDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-doctype")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		if isHTMLSpace(c) {
			continue
		}
		if c == '>' {
			t.emitDoctype()
			t.state = DataState
			return
		}
		// Rewind to re-examine c as the first character of a possible
		// PUBLIC/SYSTEM keyword: consumeCaseInsensitive reads from t.pos
		// directly and does not know about the single-character reconsume
		// flag, so the rewind has to be done by hand here.
		t.pos--
		if t.consumeCaseInsensitive("PUBLIC") {
			t.state = AfterDOCTYPEPublicKeywordState
			return
		}
		if t.consumeCaseInsensitive("SYSTEM") {
			t.state = AfterDOCTYPESystemKeywordState
			return
		}
		t.emitError("invalid-character-sequence-after-doctype-name")
		t.currentDoctypeForceQuirks = true
		t.state = BogusDOCTYPEState
		return
	}
}

func (t *Tokenizer) stateAfterDoctypePublicKeyword() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-doctype")
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isHTMLSpace(c):
		t.state = BeforeDOCTYPEPublicIdentifierState
	case c == '"':
		t.emitError("missing-whitespace-after-doctype-public-keyword")
		empty := []rune{}
		t.currentDoctypePublic = &empty
		t.state = DOCTYPEPublicIdentifierDoubleQuotedState
	case c == '\'':
		t.emitError("missing-whitespace-after-doctype-public-keyword")
		empty := []rune{}
		t.currentDoctypePublic = &empty
		t.state = DOCTYPEPublicIdentifierSingleQuotedState
	case c == '>':
		t.emitError("missing-doctype-public-identifier")
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.emitError("missing-quote-before-doctype-public-identifier")
		t.currentDoctypeForceQuirks = true
		t.reconsumeCurrent()
		t.state = BogusDOCTYPEState
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemKeyword() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-doctype")
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isHTMLSpace(c):
		t.state = BeforeDOCTYPESystemIdentifierState
	case c == '"':
		t.emitError("missing-whitespace-after-doctype-system-keyword")
		empty := []rune{}
		t.currentDoctypeSystem = &empty
		t.state = DOCTYPESystemIdentifierDoubleQuotedState
	case c == '\'':
		t.emitError("missing-whitespace-after-doctype-system-keyword")
		empty := []rune{}
		t.currentDoctypeSystem = &empty
		t.state = DOCTYPESystemIdentifierSingleQuotedState
	case c == '>':
		t.emitError("missing-doctype-system-identifier")
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.emitError("missing-quote-before-doctype-system-identifier")
		t.currentDoctypeForceQuirks = true
		t.reconsumeCurrent()
		t.state = BogusDOCTYPEState
	}
}

func (t *Tokenizer) stateBeforeDoctypePublicIdentifier() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-doctype")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isHTMLSpace(c):
			continue
		case c == '"':
			empty := []rune{}
			t.currentDoctypePublic = &empty
			t.state = DOCTYPEPublicIdentifierDoubleQuotedState
			return
		case c == '\'':
			empty := []rune{}
			t.currentDoctypePublic = &empty
			t.state = DOCTYPEPublicIdentifierSingleQuotedState
			return
		case c == '>':
			t.emitError("missing-doctype-public-identifier")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.emitError("missing-quote-before-doctype-public-identifier")
			t.currentDoctypeForceQuirks = true
			t.reconsumeCurrent()
			t.state = BogusDOCTYPEState
			return
		}
	}
}

// doctypeIdentifierQuoted shares the body of the four quoted
// public/system identifier states: each only differs in which rune closes
// the string, which field it fills in, and which error an early ">" reports.
func (t *Tokenizer) doctypeIdentifierQuoted(quote rune, field **[]rune, nextState State) {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-doctype")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case quote:
			t.state = nextState
			return
		case 0:
			t.emitError("unexpected-null-character")
			**field = append(**field, unicode.ReplacementChar)
		case '>':
			if field == &t.currentDoctypeSystem {
				t.emitError("abrupt-doctype-system-identifier")
			} else {
				t.emitError("abrupt-doctype-public-identifier")
			}
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		default:
			**field = append(**field, c)
		}
	}
}

func (t *Tokenizer) stateDoctypePublicIdentifierDoubleQuoted() {
	t.doctypeIdentifierQuoted('"', &t.currentDoctypePublic, AfterDOCTYPEPublicIdentifierState)
}

func (t *Tokenizer) stateDoctypePublicIdentifierSingleQuoted() {
	t.doctypeIdentifierQuoted('\'', &t.currentDoctypePublic, AfterDOCTYPEPublicIdentifierState)
}

func (t *Tokenizer) stateAfterDoctypePublicIdentifier() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-doctype")
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isHTMLSpace(c):
		t.state = BetweenDOCTYPEPublicAndSystemIdentifiersState
	case c == '>':
		t.emitDoctype()
		t.state = DataState
	case c == '"':
		t.emitError("missing-whitespace-between-doctype-public-and-system-identifiers")
		empty := []rune{}
		t.currentDoctypeSystem = &empty
		t.state = DOCTYPESystemIdentifierDoubleQuotedState
	case c == '\'':
		t.emitError("missing-whitespace-between-doctype-public-and-system-identifiers")
		empty := []rune{}
		t.currentDoctypeSystem = &empty
		t.state = DOCTYPESystemIdentifierSingleQuotedState
	default:
		t.emitError("missing-quote-before-doctype-system-identifier")
		t.currentDoctypeForceQuirks = true
		t.reconsumeCurrent()
		t.state = BogusDOCTYPEState
	}
}

func (t *Tokenizer) stateBetweenDoctypePublicAndSystemIdentifiers() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-doctype")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isHTMLSpace(c):
			continue
		case c == '>':
			t.emitDoctype()
			t.state = DataState
			return
		case c == '"':
			empty := []rune{}
			t.currentDoctypeSystem = &empty
			t.state = DOCTYPESystemIdentifierDoubleQuotedState
			return
		case c == '\'':
			empty := []rune{}
			t.currentDoctypeSystem = &empty
			t.state = DOCTYPESystemIdentifierSingleQuotedState
			return
		default:
			t.emitError("missing-quote-before-doctype-system-identifier")
			t.currentDoctypeForceQuirks = true
			t.reconsumeCurrent()
			t.state = BogusDOCTYPEState
			return
		}
	}
}

func (t *Tokenizer) stateBeforeDoctypeSystemIdentifier() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError("eof-in-doctype")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isHTMLSpace(c):
			continue
		case c == '"':
			empty := []rune{}
			t.currentDoctypeSystem = &empty
			t.state = DOCTYPESystemIdentifierDoubleQuotedState
			return
		case c == '\'':
			empty := []rune{}
			t.currentDoctypeSystem = &empty
			t.state = DOCTYPESystemIdentifierSingleQuotedState
			return
		case c == '>':
			t.emitError("missing-doctype-system-identifier")
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.emitError("missing-quote-before-doctype-system-identifier")
			t.currentDoctypeForceQuirks = true
			t.reconsumeCurrent()
			t.state = BogusDOCTYPEState
			return
		}
	}
}

func (t *Tokenizer) stateDoctypeSystemIdentifierDoubleQuoted() {
	t.doctypeIdentifierQuoted('"', &t.currentDoctypeSystem, AfterDOCTYPESystemIdentifierState)
}

func (t *Tokenizer) stateDoctypeSystemIdentifierSingleQuoted() {
	t.doctypeIdentifierQuoted('\'', &t.currentDoctypeSystem, AfterDOCTYPESystemIdentifierState)
}

func (t *Tokenizer) stateAfterDoctypeSystemIdentifier() {
	c, ok := t.getChar()
	if !ok {
		t.emitError("eof-in-doctype")
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isHTMLSpace(c):
		return
	case c == '>':
		t.emitDoctype()
		t.state = DataState
	default:
		t.emitError("unexpected-character-after-doctype-system-identifier")
		t.reconsumeCurrent()
		t.state = BogusDOCTYPEState
	}
}

// stateBogusDoctype discards the remainder of a malformed DOCTYPE up to
// its closing ">", still emitting the token. It does not change the
// force-quirks flag; the state that detected the malformation has already
// set it where that applies.
func (t *Tokenizer) stateBogusDoctype() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case '>':
			t.emitDoctype()
			t.state = DataState
			return
		case 0:
			t.emitError("unexpected-null-character")
		}
	}
}

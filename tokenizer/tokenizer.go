package tokenizer

import (
	"strings"
	"sync"
	"unicode"

	"github.com/html5tree/html5tree/internal/constants"
)

// attrIndexPool recycles the per-tag "have we seen this attribute name
// already" sets so tokenizing a document full of tags doesn't allocate one
// map per tag.
var attrIndexPool = sync.Pool{
	New: func() interface{} {
		return make(map[string]struct{}, 8)
	},
}

func acquireAttrIndex() map[string]struct{} {
	m := attrIndexPool.Get().(map[string]struct{})
	for k := range m {
		delete(m, k)
	}
	return m
}

func releaseAttrIndex(m map[string]struct{}) {
	if m != nil {
		attrIndexPool.Put(m)
	}
}

// Tokenizer implements the HTML5 tokenization state machine: input
// preprocessing, character reference decoding, and the full set of
// data/tag/attribute/comment/doctype states through to token emission.
//
// A Tokenizer produces a stream of tokens on demand via Next and collects
// parse errors as it goes; it does not buffer the whole token stream.
type Tokenizer struct {
	opts Options

	origInput string

	buf []rune
	pos int

	// isASCIIOnly and asciiBuf drive a byte-indexed fast path through
	// getChar for the common case of a document with no multi-byte runes;
	// it is computed once from origInput and mirrors buf index-for-index.
	isASCIIOnly bool
	asciiBuf    []byte

	state    State
	textMode State

	reconsume bool
	ignoreLF  bool

	line   int
	column int

	// Current tag token under construction.
	currentTagKind        TokenKind
	currentTagName        []rune
	currentTagAttrs       []Attr
	currentTagAttrIndex   map[string]struct{}
	currentTagSelfClosing bool

	currentAttrName        []rune
	currentAttrValue       []rune
	currentAttrValueHasAmp bool

	currentComment []rune
	commentEOF     bool

	currentDoctypeName        []rune
	currentDoctypePublic      *[]rune // nil = not set, empty slice = empty string
	currentDoctypeSystem      *[]rune
	currentDoctypeForceQuirks bool

	// rawtextTagName is the name the current RCDATA/RAWTEXT/script-data run
	// must match to recognize its closing tag; originalTagName and
	// tempBuffer are scratch space for that matching.
	rawtextTagName  string
	originalTagName []rune
	tempBuffer      []rune

	lastStartTagName string

	textBuffer strings.Builder
	textHasAmp bool

	pendingTokens []Token
	errors        []ParseError

	allowCDATA bool
}

// ParseError represents a tokenizer parse error.
type ParseError struct {
	Code    string
	Message string
	Line    int
	Column  int
}

// New creates a new tokenizer for the given input.
func New(input string) *Tokenizer {
	return NewWithOptions(input, defaultOptions())
}

// NewWithOptions creates a new tokenizer for the given input and options.
func NewWithOptions(input string, opts Options) *Tokenizer {
	t := &Tokenizer{
		opts:     opts,
		state:    DataState,
		textMode: DataState,
		line:     1,
		column:   0,
	}
	t.origInput = input
	t.reset(input)
	return t
}

func (t *Tokenizer) reset(input string) {
	if input != "" && t.opts.DiscardBOM {
		r := []rune(input)
		if len(r) > 0 && r[0] == 0xFEFF {
			r = r[1:]
		}
		t.buf = r
	} else {
		t.buf = []rune(input)
	}

	t.isASCIIOnly = isASCIIString(input)
	if t.isASCIIOnly {
		t.asciiBuf = make([]byte, len(t.buf))
		for i, r := range t.buf {
			t.asciiBuf[i] = byte(r)
		}
	} else {
		t.asciiBuf = nil
	}

	t.pos = 0
	t.reconsume = false
	t.ignoreLF = false
	t.line = 1
	t.column = 0
	t.textMode = t.state

	t.currentTagKind = StartTag
	t.currentTagName = t.currentTagName[:0]
	t.resetCurrentTagAttrs()
	t.currentTagSelfClosing = false
	t.resetCurrentAttr()
	t.currentComment = t.currentComment[:0]
	t.currentDoctypeName = t.currentDoctypeName[:0]
	t.currentDoctypePublic = nil
	t.currentDoctypeSystem = nil
	t.currentDoctypeForceQuirks = false

	t.rawtextTagName = ""
	t.originalTagName = t.originalTagName[:0]
	t.tempBuffer = t.tempBuffer[:0]

	t.textBuffer.Reset()
	t.textHasAmp = false

	t.pendingTokens = nil
	t.errors = nil
}

// resetCurrentAttr clears the attribute name/value scratch buffers used
// while scanning a single attribute.
func (t *Tokenizer) resetCurrentAttr() {
	t.currentAttrName = t.currentAttrName[:0]
	t.currentAttrValue = t.currentAttrValue[:0]
	t.currentAttrValueHasAmp = false
}

// resetCurrentTagAttrs discards the attribute list and duplicate-name index
// accumulated for the tag under construction, returning the old index map to
// the pool rather than letting the garbage collector reclaim it.
func (t *Tokenizer) resetCurrentTagAttrs() {
	t.currentTagAttrs = t.currentTagAttrs[:0]
	releaseAttrIndex(t.currentTagAttrIndex)
	t.currentTagAttrIndex = acquireAttrIndex()
}

// SetDiscardBOM controls whether the leading U+FEFF BOM is discarded.
// For correctness, this should be called before consuming tokens.
func (t *Tokenizer) SetDiscardBOM(discard bool) {
	if t.opts.DiscardBOM == discard {
		return
	}
	t.opts.DiscardBOM = discard
	// BOM handling affects the rune stream itself, so the buffer must be rebuilt.
	t.reset(t.origInput)
}

// SetXMLCoercion enables/disables XML coercion for text/comment output.
func (t *Tokenizer) SetXMLCoercion(enabled bool) {
	t.opts.XMLCoercion = enabled
}

// SetAllowCDATA toggles CDATA section parsing for foreign content.
func (t *Tokenizer) SetAllowCDATA(enabled bool) {
	t.allowCDATA = enabled
}

// SetState sets the tokenizer state. The tree builder calls this to switch
// into RCDATA, RAWTEXT, script data, or PLAINTEXT once it has decided how
// the element it just inserted should consume its content.
func (t *Tokenizer) SetState(state State) {
	t.state = state
	switch state {
	case DataState, RCDATAState, RAWTEXTState, ScriptDataState, PLAINTEXTState, CDATASectionState:
		t.textMode = state
	default:
	}
	// Rawtext/RCDATA/script-data end-tag matching needs a tag name to compare
	// against even if the tree builder only called SetState.
	if (state == RCDATAState || state == RAWTEXTState || state == ScriptDataState) && t.rawtextTagName == "" && t.lastStartTagName != "" {
		t.rawtextTagName = t.lastStartTagName
	}
}

// SetLastStartTag sets the last start tag name, used for appropriate
// end-tag matching in RCDATA/RAWTEXT/script-data states. Exposed mainly for
// tokenizer-level tests that drive states directly without a tree builder.
func (t *Tokenizer) SetLastStartTag(name string) {
	t.lastStartTagName = name
	t.rawtextTagName = name
}

// Errors returns the parse errors encountered during tokenization.
func (t *Tokenizer) Errors() []ParseError {
	return t.errors
}

// Next returns the next token, or a token with Type == EOF once the input
// is exhausted and stays exhausted on every subsequent call.
func (t *Tokenizer) Next() Token {
	for len(t.pendingTokens) == 0 {
		t.step()
	}
	token := t.pendingTokens[0]
	t.pendingTokens = t.pendingTokens[1:]
	return token
}

// stateHandlers dispatches on the tokenizer's current state. It is an array
// keyed by the State constants (see states.go) rather than a switch, so
// adding a state handler is a one-line addition here instead of a new case
// in a second, separately-maintained switch.
var stateHandlers = [...]func(*Tokenizer){
	DataState:                                      (*Tokenizer).stateData,
	TagOpenState:                                    (*Tokenizer).stateTagOpen,
	EndTagOpenState:                                 (*Tokenizer).stateEndTagOpen,
	TagNameState:                                    (*Tokenizer).stateTagName,
	RCDATALessThanSignState:                         (*Tokenizer).stateRCDATALessThanSign,
	RCDATAEndTagOpenState:                           (*Tokenizer).stateRCDATAEndTagOpen,
	RCDATAEndTagNameState:                           (*Tokenizer).stateRCDATAEndTagName,
	RAWTEXTLessThanSignState:                        (*Tokenizer).stateRAWTEXTLessThanSign,
	RAWTEXTEndTagOpenState:                          (*Tokenizer).stateRAWTEXTEndTagOpen,
	RAWTEXTEndTagNameState:                          (*Tokenizer).stateRAWTEXTEndTagName,
	ScriptDataLessThanSignState:                     (*Tokenizer).stateScriptDataLessThanSign,
	ScriptDataEndTagOpenState:                       (*Tokenizer).stateScriptDataEndTagOpen,
	ScriptDataEndTagNameState:                       (*Tokenizer).stateScriptDataEndTagName,
	ScriptDataEscapeStartState:                      (*Tokenizer).stateScriptDataEscapeStart,
	ScriptDataEscapeStartDashState:                  (*Tokenizer).stateScriptDataEscapeStartDash,
	ScriptDataEscapedState:                          (*Tokenizer).stateScriptDataEscaped,
	ScriptDataEscapedDashState:                      (*Tokenizer).stateScriptDataEscapedDash,
	ScriptDataEscapedDashDashState:                  (*Tokenizer).stateScriptDataEscapedDashDash,
	ScriptDataEscapedLessThanSignState:               (*Tokenizer).stateScriptDataEscapedLessThanSign,
	ScriptDataEscapedEndTagOpenState:                (*Tokenizer).stateScriptDataEscapedEndTagOpen,
	ScriptDataEscapedEndTagNameState:                (*Tokenizer).stateScriptDataEscapedEndTagName,
	ScriptDataDoubleEscapeStartState:                (*Tokenizer).stateScriptDataDoubleEscapeStart,
	ScriptDataDoubleEscapedState:                    (*Tokenizer).stateScriptDataDoubleEscaped,
	ScriptDataDoubleEscapedDashState:                (*Tokenizer).stateScriptDataDoubleEscapedDash,
	ScriptDataDoubleEscapedDashDashState:            (*Tokenizer).stateScriptDataDoubleEscapedDashDash,
	ScriptDataDoubleEscapedLessThanSignState:        (*Tokenizer).stateScriptDataDoubleEscapedLessThanSign,
	ScriptDataDoubleEscapeEndState:                  (*Tokenizer).stateScriptDataDoubleEscapeEnd,
	BeforeAttributeNameState:                        (*Tokenizer).stateBeforeAttributeName,
	AttributeNameState:                              (*Tokenizer).stateAttributeName,
	AfterAttributeNameState:                         (*Tokenizer).stateAfterAttributeName,
	BeforeAttributeValueState:                       (*Tokenizer).stateBeforeAttributeValue,
	AttributeValueDoubleQuotedState:                 (*Tokenizer).stateAttributeValueDoubleQuoted,
	AttributeValueSingleQuotedState:                 (*Tokenizer).stateAttributeValueSingleQuoted,
	AttributeValueUnquotedState:                     (*Tokenizer).stateAttributeValueUnquoted,
	AfterAttributeValueQuotedState:                  (*Tokenizer).stateAfterAttributeValueQuoted,
	SelfClosingStartTagState:                        (*Tokenizer).stateSelfClosingStartTag,
	BogusCommentState:                               (*Tokenizer).stateBogusComment,
	MarkupDeclarationOpenState:                      (*Tokenizer).stateMarkupDeclarationOpen,
	CommentStartState:                               (*Tokenizer).stateCommentStart,
	CommentStartDashState:                           (*Tokenizer).stateCommentStartDash,
	CommentState:                                    (*Tokenizer).stateComment,
	CommentLessThanSignState:                        (*Tokenizer).stateCommentLessThanSign,
	CommentLessThanSignBangState:                    (*Tokenizer).stateCommentLessThanSignBang,
	CommentLessThanSignBangDashState:                (*Tokenizer).stateCommentLessThanSignBangDash,
	CommentLessThanSignBangDashDashState:            (*Tokenizer).stateCommentLessThanSignBangDashDash,
	CommentEndDashState:                             (*Tokenizer).stateCommentEndDash,
	CommentEndState:                                 (*Tokenizer).stateCommentEnd,
	CommentEndBangState:                             (*Tokenizer).stateCommentEndBang,
	DOCTYPEState:                                     (*Tokenizer).stateDoctype,
	BeforeDOCTYPENameState:                          (*Tokenizer).stateBeforeDoctypeName,
	DOCTYPENameState:                                (*Tokenizer).stateDoctypeName,
	AfterDOCTYPENameState:                           (*Tokenizer).stateAfterDoctypeName,
	AfterDOCTYPEPublicKeywordState:                  (*Tokenizer).stateAfterDoctypePublicKeyword,
	BeforeDOCTYPEPublicIdentifierState:              (*Tokenizer).stateBeforeDoctypePublicIdentifier,
	DOCTYPEPublicIdentifierDoubleQuotedState:        (*Tokenizer).stateDoctypePublicIdentifierDoubleQuoted,
	DOCTYPEPublicIdentifierSingleQuotedState:        (*Tokenizer).stateDoctypePublicIdentifierSingleQuoted,
	AfterDOCTYPEPublicIdentifierState:               (*Tokenizer).stateAfterDoctypePublicIdentifier,
	BetweenDOCTYPEPublicAndSystemIdentifiersState:   (*Tokenizer).stateBetweenDoctypePublicAndSystemIdentifiers,
	AfterDOCTYPESystemKeywordState:                  (*Tokenizer).stateAfterDoctypeSystemKeyword,
	BeforeDOCTYPESystemIdentifierState:              (*Tokenizer).stateBeforeDoctypeSystemIdentifier,
	DOCTYPESystemIdentifierDoubleQuotedState:        (*Tokenizer).stateDoctypeSystemIdentifierDoubleQuoted,
	DOCTYPESystemIdentifierSingleQuotedState:        (*Tokenizer).stateDoctypeSystemIdentifierSingleQuoted,
	AfterDOCTYPESystemIdentifierState:               (*Tokenizer).stateAfterDoctypeSystemIdentifier,
	BogusDOCTYPEState:                               (*Tokenizer).stateBogusDoctype,
	CDATASectionState:                               (*Tokenizer).stateCDATASection,
	CDATASectionBracketState:                        (*Tokenizer).stateCDATASectionBracket,
	CDATASectionEndState:                            (*Tokenizer).stateCDATASectionEnd,
	RCDATAState:                                      (*Tokenizer).stateRCDATA,
	RAWTEXTState:                                     (*Tokenizer).stateRAWTEXT,
	ScriptDataState:                                  (*Tokenizer).stateScriptData,
	PLAINTEXTState:                                   (*Tokenizer).statePLAINTEXT,
}

// step runs a single state-machine transition. States with no registered
// handler (the dedicated character-reference states, which this tokenizer
// folds into flushText's post-processing instead) fall back to Data,
// matching how an unrecognized state would behave if it were ever reached.
func (t *Tokenizer) step() {
	s := t.state
	if s < 0 || int(s) >= len(stateHandlers) || stateHandlers[s] == nil {
		t.state = DataState
		return
	}
	stateHandlers[s](t)
}

// isASCIIString reports whether s contains only bytes below 0x80. It is
// checked against the raw input, before BOM stripping, so a byte-order-mark
// still routes the tokenizer to the rune-based path even once the BOM
// itself is discarded from buf.
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func (t *Tokenizer) getChar() (rune, bool) {
	if t.reconsume {
		t.reconsume = false
		if t.pos == 0 {
			return 0, false
		}
		t.pos--
	}

	if t.isASCIIOnly {
		return t.getCharASCII()
	}
	return t.getCharRune()
}

// getCharASCII is byte-indexed, skipping the rune-width bookkeeping
// getCharRune needs, for the common case of an all-ASCII document.
func (t *Tokenizer) getCharASCII() (rune, bool) {
	for {
		if t.pos >= len(t.asciiBuf) {
			return 0, false
		}

		c := rune(t.asciiBuf[t.pos])
		t.pos++

		if c == '\r' {
			t.ignoreLF = true
			t.advance('\n')
			return '\n', true
		}
		if c == '\n' {
			if t.ignoreLF {
				t.ignoreLF = false
				continue
			}
			t.advance('\n')
			return '\n', true
		}

		t.ignoreLF = false
		t.advance(c)
		return c, true
	}
}

func (t *Tokenizer) getCharRune() (rune, bool) {
	for {
		if t.pos >= len(t.buf) {
			return 0, false
		}

		c := t.buf[t.pos]
		t.pos++

		if c == '\r' {
			t.ignoreLF = true
			t.advance('\n')
			return '\n', true
		}
		if c == '\n' {
			if t.ignoreLF {
				t.ignoreLF = false
				continue
			}
			t.advance('\n')
			return '\n', true
		}

		t.ignoreLF = false
		t.advance(c)
		return c, true
	}
}

func (t *Tokenizer) peek(offset int) (rune, bool) {
	i := t.pos + offset
	if t.reconsume {
		i--
	}
	if i < 0 || i >= len(t.buf) {
		return 0, false
	}
	return t.buf[i], true
}

func (t *Tokenizer) advance(c rune) {
	if c == '\n' {
		t.line++
		t.column = 0
		return
	}
	t.column++
}

func (t *Tokenizer) emit(tok Token) {
	t.pendingTokens = append(t.pendingTokens, tok)
}

func (t *Tokenizer) emitEOF() {
	t.flushText()
	t.emit(Token{Type: EOF})
}

func (t *Tokenizer) emitError(code string) {
	t.errors = append(t.errors, ParseError{
		Code:   code,
		Line:   t.line,
		Column: max(1, t.column),
	})
}

func (t *Tokenizer) reconsumeCurrent() {
	t.reconsume = true
}

// isHTMLSpace reports whether c is one of the five characters the
// tokenizer's "whitespace" branches treat as a space: tab, line feed, form
// feed, carriage return, or U+0020. getChar already folds CR and CRLF into
// a single LF, so CR never actually reaches callers, but the algorithm
// lists it alongside the others and so does this helper.
func isHTMLSpace(c rune) bool {
	switch c {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

func (t *Tokenizer) appendTextRune(r rune) {
	if r == '&' {
		t.textHasAmp = true
	}
	t.textBuffer.WriteRune(r)
}

func (t *Tokenizer) flushText() {
	if t.textBuffer.Len() == 0 {
		return
	}
	data := t.textBuffer.String()
	t.textBuffer.Reset()

	// Decode character references in Data/RCDATA modes (including their helper states).
	if (t.textMode == DataState || t.textMode == RCDATAState) && t.textHasAmp {
		data = decodeEntitiesInText(data, false)
	}
	t.textHasAmp = false

	if t.opts.XMLCoercion {
		data = coerceTextForXML(data)
	}

	t.emit(Token{Type: Character, Data: data})
}

func (t *Tokenizer) finishAttribute() {
	if len(t.currentAttrName) == 0 {
		return
	}
	name := constants.InternAttributeName(string(t.currentAttrName))
	t.currentAttrName = t.currentAttrName[:0]

	if _, exists := t.currentTagAttrIndex[name]; exists {
		t.emitError("duplicate-attribute")
		t.currentAttrValue = t.currentAttrValue[:0]
		t.currentAttrValueHasAmp = false
		return
	}

	value := ""
	if len(t.currentAttrValue) > 0 {
		value = string(t.currentAttrValue)
	}
	if t.currentAttrValueHasAmp {
		value = decodeEntitiesInText(value, true)
	}
	t.currentTagAttrs = append(t.currentTagAttrs, Attr{Name: name, Value: value})
	t.currentTagAttrIndex[name] = struct{}{}

	t.currentAttrValue = t.currentAttrValue[:0]
	t.currentAttrValueHasAmp = false
}

func (t *Tokenizer) emitCurrentTag() {
	name := constants.InternTagName(string(t.currentTagName))
	attrs := append([]Attr(nil), t.currentTagAttrs...)
	tok := Token{
		Type:        t.currentTagKind,
		Name:        name,
		Attrs:       attrs,
		SelfClosing: t.currentTagSelfClosing,
	}

	// Raw-text/RCDATA/PLAINTEXT state switching is NOT done here: the tree
	// builder drives it via SetState/SetLastStartTag once it knows the
	// namespace of the element the tag was inserted as (see SetState). This
	// keeps the tokenizer a pure function of its own state plus the bytes it
	// consumes, matching the WHATWG division of responsibility.
	if tok.Type == StartTag {
		t.lastStartTagName = name
	}

	t.currentTagName = t.currentTagName[:0]
	t.resetCurrentTagAttrs()
	t.resetCurrentAttr()
	t.currentTagSelfClosing = false
	t.currentTagKind = StartTag

	t.emit(tok)
}

func (t *Tokenizer) emitComment() {
	data := string(t.currentComment)
	t.currentComment = t.currentComment[:0]
	if t.opts.XMLCoercion {
		data = coerceCommentForXML(data)
	}
	t.emit(Token{Type: Comment, Data: data, CommentEOF: t.commentEOF})
	t.commentEOF = false
}

func (t *Tokenizer) emitDoctype() {
	name := string(t.currentDoctypeName)
	var publicID *string
	var systemID *string
	if t.currentDoctypePublic != nil {
		s := string(*t.currentDoctypePublic)
		publicID = &s
	}
	if t.currentDoctypeSystem != nil {
		s := string(*t.currentDoctypeSystem)
		systemID = &s
	}

	t.emit(Token{
		Type:        DOCTYPE,
		Name:        name,
		PublicID:    publicID,
		SystemID:    systemID,
		ForceQuirks: t.currentDoctypeForceQuirks,
	})
}

func (t *Tokenizer) consumeIf(lit string) bool {
	r := []rune(lit)
	if t.pos+len(r) > len(t.buf) {
		return false
	}
	for i := range r {
		if t.buf[t.pos+i] != r[i] {
			return false
		}
	}
	t.pos += len(r)
	// These literals are all ASCII, so treating each rune as one column is exact.
	t.column += len(r)
	return true
}

func (t *Tokenizer) consumeCaseInsensitive(lit string) bool {
	r := []rune(lit)
	if t.pos+len(r) > len(t.buf) {
		return false
	}
	for i := range r {
		a := t.buf[t.pos+i]
		b := r[i]
		if unicode.ToLower(a) != unicode.ToLower(b) {
			return false
		}
	}
	t.pos += len(r)
	t.column += len(r)
	return true
}

// startTag begins a new start or end tag token, seeding its name with the
// first (already lowercased) letter.
func (t *Tokenizer) startTag(kind TokenKind, first rune) {
	t.currentTagKind = kind
	t.currentTagName = t.currentTagName[:0]
	t.resetCurrentTagAttrs()
	t.resetCurrentAttr()
	t.currentTagSelfClosing = false

	if first >= 'A' && first <= 'Z' {
		first += 32
	}
	t.currentTagName = append(t.currentTagName, first)
}

func coerceTextForXML(text string) string {
	isASCII := true
	for _, r := range text {
		if r > 0x7f {
			isASCII = false
			break
		}
	}
	if isASCII {
		return strings.ReplaceAll(text, "\f", " ")
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\f':
			b.WriteRune(' ')
		case r >= 0xFDD0 && r <= 0xFDEF:
			b.WriteRune(unicode.ReplacementChar)
		case r&0xFFFF == 0xFFFE || r&0xFFFF == 0xFFFF:
			b.WriteRune(unicode.ReplacementChar)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func coerceCommentForXML(text string) string {
	return strings.ReplaceAll(text, "--", "- -")
}

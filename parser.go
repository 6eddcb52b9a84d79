package jsonls

import (
	"math"
	"strconv"
	"strings"
)

// ParseOptions controls optional parser behavior.
type ParseOptions struct {
	// CollectComments enables collection of comment ranges into JSONDocument.Comments.
	CollectComments bool
}

// parser drives a Scanner to build a JSONDocument. It never fails: every
// malformed construct becomes a Diagnostic and parsing continues.
type parser struct {
	scanner         *Scanner
	doc             *JSONDocument
	token           TokenKind
	lastErrorOffset int
	collectComments bool
}

// Parse builds a JSONDocument from text. The returned document always has a
// valid SyntaxErrors slice (possibly empty) and a nil Root only when no
// value could be recovered at all (e.g. empty input).
func Parse(text string, opts ParseOptions) *JSONDocument {
	doc := &JSONDocument{text: NewTextDocument(text)}
	p := &parser{
		scanner:         NewScanner(text),
		doc:             doc,
		lastErrorOffset: -1,
		collectComments: opts.CollectComments,
	}

	p.scanNext()
	doc.Root = p.parseValueOrReport(nil, TokenEOF)

	if p.token != TokenEOF {
		p.errorAtCurrent(ErrEndOfFileExpected, "End of file expected.")
	}
	return doc
}

// scanNext advances past trivia, line breaks, and comments, collecting
// comment ranges when requested and mapping any scan-level error on the
// resulting token to a diagnostic.
func (p *parser) scanNext() {
	for {
		kind := p.scanner.Scan()
		switch kind {
		case TokenTrivia, TokenLineBreak:
			continue
		case TokenLineComment, TokenBlockComment:
			if p.collectComments {
				p.doc.Comments = append(p.doc.Comments, Range{
					Start: p.doc.text.PositionAt(p.scanner.TokenOffset()),
					End:   p.doc.text.PositionAt(p.scanner.TokenOffset() + p.scanner.TokenLength()),
				})
			}
			if p.scanner.TokenError() == ScanErrorUnexpectedEndOfComment {
				p.error(ErrUnexpectedEndOfComment, "Unexpected end of comment.", p.scanner.TokenOffset(), p.scanner.TokenLength())
			}
			continue
		default:
			p.token = kind
			p.handleScanErrors()
			return
		}
	}
}

func (p *parser) handleScanErrors() {
	switch p.scanner.TokenError() {
	case ScanErrorNone:
	case ScanErrorInvalidUnicode:
		p.errorAtCurrent(ErrInvalidUnicode, "Invalid unicode sequence in string.")
	case ScanErrorInvalidEscape:
		p.errorAtCurrent(ErrInvalidEscapeCharacter, "Invalid escape character in string.")
	case ScanErrorUnexpectedEndOfNumber:
		p.errorAtCurrent(ErrUnexpectedEndOfNumber, "Invalid number format.")
	case ScanErrorUnexpectedEndOfString:
		p.errorAtCurrent(ErrUnexpectedEndOfString, "Unexpected end of string.")
	case ScanErrorInvalidCharacter:
		p.errorAtCurrent(ErrInvalidCharacter, "Invalid character.")
	}
}

func (p *parser) errorAtCurrent(code ErrorCode, message string) {
	length := p.scanner.TokenLength()
	if length < 0 {
		length = 0
	}
	p.error(code, message, p.scanner.TokenOffset(), length)
}

func (p *parser) error(code ErrorCode, message string, offset, length int) {
	p.emit(SeverityError, code, message, offset, length)
}

func (p *parser) warn(code ErrorCode, message string, offset, length int) {
	p.emit(SeverityWarning, code, message, offset, length)
}

// emit enforces "at most one diagnostic per source offset".
func (p *parser) emit(severity Severity, code ErrorCode, message string, offset, length int) {
	if offset == p.lastErrorOffset {
		return
	}
	p.lastErrorOffset = offset
	p.doc.SyntaxErrors = append(p.doc.SyntaxErrors, Diagnostic{
		Range: Range{
			Start: p.doc.text.PositionAt(offset),
			End:   p.doc.text.PositionAt(offset + length),
		},
		Message:  message,
		Severity: severity,
		Code:     code,
	})
}

// parseValue implements `value := object | array | string | number | true | false | null`.
// Returns nil when the current token cannot start a value.
func (p *parser) parseValue(parent *Node) *Node {
	switch p.token {
	case TokenOpenBrace:
		return p.parseObject(parent)
	case TokenOpenBracket:
		return p.parseArray(parent)
	case TokenString:
		return p.parseStringNode(parent)
	case TokenNumber:
		return p.parseNumber(parent)
	case TokenTrue:
		return p.parseBoolean(parent, true)
	case TokenFalse:
		return p.parseBoolean(parent, false)
	case TokenNull:
		return p.parseNull(parent)
	default:
		return nil
	}
}

// parseValueOrReport parses a value, reporting and recovering from its
// absence: an unrecognized token is "Invalid symbol" and consumed; a
// structurally absent value (e.g. `,,`) is "Value expected" and left in
// place. Either way the parser then skips to one of skip.
func (p *parser) parseValueOrReport(parent *Node, skip ...TokenKind) *Node {
	value := p.parseValue(parent)
	if value != nil {
		return value
	}
	if p.token == TokenUnknown {
		p.errorAtCurrent(ErrInvalidSymbol, "Invalid symbol.")
		p.scanNext()
	} else {
		p.errorAtCurrent(ErrValueExpected, "Value expected.")
	}
	p.skipUntilAny(skip...)
	return nil
}

func (p *parser) skipUntilAny(kinds ...TokenKind) {
	for p.token != TokenEOF && !tokenIn(p.token, kinds) {
		p.scanNext()
	}
}

func tokenIn(t TokenKind, kinds []TokenKind) bool {
	for _, k := range kinds {
		if t == k {
			return true
		}
	}
	return false
}

func (p *parser) parseStringNode(parent *Node) *Node {
	n := &Node{
		Type:        NodeString,
		Offset:      p.scanner.TokenOffset(),
		Length:      p.scanner.TokenLength(),
		Parent:      parent,
		StringValue: p.scanner.TokenValue(),
	}
	p.scanNext()
	return n
}

func (p *parser) parseNumber(parent *Node) *Node {
	offset, length := p.scanner.TokenOffset(), p.scanner.TokenLength()
	lexeme := p.scanner.TokenValue()
	n := &Node{
		Type:         NodeNumber,
		Offset:       offset,
		Length:       length,
		Parent:       parent,
		NumberLexeme: lexeme,
		IsInteger:    !strings.Contains(lexeme, "."),
	}

	val, err := strconv.ParseFloat(lexeme, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		p.error(ErrInvalidNumberFormat, "Invalid number format.", offset, length)
	} else {
		n.NumberValue = val
	}

	p.scanNext()
	return n
}

func (p *parser) parseBoolean(parent *Node, value bool) *Node {
	n := &Node{
		Type:      NodeBoolean,
		Offset:    p.scanner.TokenOffset(),
		Length:    p.scanner.TokenLength(),
		Parent:    parent,
		BoolValue: value,
	}
	p.scanNext()
	return n
}

func (p *parser) parseNull(parent *Node) *Node {
	n := &Node{
		Type:   NodeNull,
		Offset: p.scanner.TokenOffset(),
		Length: p.scanner.TokenLength(),
		Parent: parent,
	}
	p.scanNext()
	return n
}

func (p *parser) parseArray(parent *Node) *Node {
	n := &Node{Type: NodeArray, Offset: p.scanner.TokenOffset(), Parent: parent}
	p.scanNext() // consume '['

	needsComma := false
	for p.token != TokenCloseBracket && p.token != TokenEOF {
		if needsComma {
			if p.token == TokenComma {
				commaOffset, commaLength := p.scanner.TokenOffset(), p.scanner.TokenLength()
				p.scanNext()
				if p.token == TokenCloseBracket {
					p.error(ErrTrailingComma, "Trailing comma", commaOffset, commaLength)
					break
				}
			} else {
				p.errorAtCurrent(ErrCommaExpected, "Expected comma")
			}
		}
		item := p.parseValueOrReport(n, TokenCloseBracket, TokenComma)
		if item != nil {
			n.Elements = append(n.Elements, item)
		}
		needsComma = true
	}

	if p.token == TokenCloseBracket {
		n.Length = p.scanner.TokenOffset() + p.scanner.TokenLength() - n.Offset
		p.scanNext()
	} else {
		p.errorAtCurrent(ErrCommaOrCloseBracketExpected, "Expected comma or closing bracket")
		n.Length = p.scanner.TokenOffset() - n.Offset
	}
	return n
}

func (p *parser) parseObject(parent *Node) *Node {
	n := &Node{Type: NodeObject, Offset: p.scanner.TokenOffset(), Parent: parent}
	p.scanNext() // consume '{'

	seenKeys := map[string]*Node{}
	reportedDup := map[string]bool{}
	needsComma := false
	for p.token != TokenCloseBrace && p.token != TokenEOF {
		if needsComma {
			if p.token == TokenComma {
				commaOffset, commaLength := p.scanner.TokenOffset(), p.scanner.TokenLength()
				p.scanNext()
				if p.token == TokenCloseBrace {
					p.error(ErrTrailingComma, "Trailing comma", commaOffset, commaLength)
					break
				}
			} else {
				p.errorAtCurrent(ErrCommaExpected, "Expected comma")
			}
		}
		prop := p.parseProperty(n, seenKeys, reportedDup)
		if prop == nil {
			p.errorAtCurrent(ErrPropertyNameExpected, "Property name expected")
			p.skipUntilAny(TokenCloseBrace, TokenComma)
		} else {
			n.Properties = append(n.Properties, prop)
		}
		needsComma = true
	}

	if p.token == TokenCloseBrace {
		n.Length = p.scanner.TokenOffset() + p.scanner.TokenLength() - n.Offset
		p.scanNext()
	} else {
		p.errorAtCurrent(ErrCommaOrCloseBraceExpected, "Expected comma or closing brace")
		n.Length = p.scanner.TokenOffset() - n.Offset
	}
	return n
}

// parseProperty implements the object-member production, including the
// unquoted-key, duplicate-key, and missing-colon recovery rules.
func (p *parser) parseProperty(parent *Node, seenKeys map[string]*Node, reportedDup map[string]bool) *Node {
	propOffset := p.scanner.TokenOffset()

	var keyNode *Node
	switch {
	case p.token == TokenString:
		keyNode = p.parseStringNode(nil)
	case p.token == TokenUnknown && p.scanner.TokenError() == ScanErrorNone:
		offset, length, text := p.scanner.TokenOffset(), p.scanner.TokenLength(), p.scanner.TokenValue()
		p.error(ErrPropertyNameExpected, "Property keys must be doublequoted", offset, length)
		keyNode = &Node{Type: NodeString, Offset: offset, Length: length, StringValue: text}
		p.scanNext()
	default:
		return nil
	}

	propNode := &Node{Type: NodeProperty, Offset: propOffset, Parent: parent, ColonOffset: -1, Key: keyNode}
	keyNode.Parent = propNode

	if existing, dup := seenKeys[keyNode.StringValue]; dup {
		if !reportedDup[keyNode.StringValue] {
			p.warn(ErrDuplicateKey, "Duplicate object key", existing.Offset, existing.Length)
			reportedDup[keyNode.StringValue] = true
		}
		p.warn(ErrDuplicateKey, "Duplicate object key", keyNode.Offset, keyNode.Length)
	} else {
		seenKeys[keyNode.StringValue] = keyNode
	}

	if p.token == TokenColon {
		propNode.ColonOffset = p.scanner.TokenOffset()
		p.scanNext()
		value := p.parseValueOrReport(propNode, TokenCloseBrace, TokenComma)
		propNode.Value = value
		propNode.Length = propertyEnd(value, keyNode) - propNode.Offset
		return propNode
	}

	// Colon missing. Heuristic: if the next token is a
	// string literal on a later source line, it is almost certainly the
	// next property's key, not this property's value — finalize with a
	// missing value rather than swallowing it.
	keyLine := p.doc.text.PositionAt(keyNode.Offset).Line
	currentLine := p.doc.text.PositionAt(p.scanner.TokenOffset()).Line
	p.errorAtCurrent(ErrColonExpected, "Colon expected.")

	if p.token == TokenString && currentLine > keyLine {
		propNode.Length = keyNode.End() - propNode.Offset
		return propNode
	}

	value := p.parseValueOrReport(propNode, TokenCloseBrace, TokenComma)
	propNode.Value = value
	propNode.Length = propertyEnd(value, keyNode) - propNode.Offset
	return propNode
}

func propertyEnd(value, key *Node) int {
	if value != nil {
		return value.End()
	}
	return key.End()
}

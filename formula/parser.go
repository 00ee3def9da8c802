package formula

import (
	"strconv"

	"github.com/cellgraph/spreadsheet/ast"
	"github.com/cellgraph/spreadsheet/position"
)

// Parser is a recursive-descent, precedence-climbing parser for the
// grammar documented in lexer.go, modeled after vogtb-go-spreadsheet's
// Parser (parseAddition/parseMultiplication/parseUnary chain), cut
// down to the two precedence levels plus unary that spec.md names.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse turns formula text (without the leading '=' sigil) into an
// ast.Node, failing with a *ParseError on malformed input.
func Parse(text string) (ast.Node, error) {
	lexer := NewLexer(text)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}

	p := &Parser{tokens: tokens}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenEOF {
		return nil, &ParseError{Message: "unexpected trailing input", Pos: p.current().Start}
	}
	return node, nil
}

func (p *Parser) current() Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// parseExpr handles the lowest precedence level: expr = term (('+'|'-') term)*
func (p *Parser) parseExpr() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Type {
		case TokenPlus:
			p.advance()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryNode{Op: ast.Add, Left: left, Right: right}
		case TokenMinus:
			p.advance()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryNode{Op: ast.Sub, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

// parseTerm handles the next precedence level: term = factor (('*'|'/') factor)*
func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Type {
		case TokenStar:
			p.advance()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryNode{Op: ast.Mul, Left: left, Right: right}
		case TokenSlash:
			p.advance()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryNode{Op: ast.Div, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

// parseFactor handles: factor = NUMBER | CELL | '(' expr ')' | ('+'|'-') factor
func (p *Parser) parseFactor() (ast.Node, error) {
	tok := p.current()

	switch tok.Type {
	case TokenPlus:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryNode{Sign: ast.Plus, Operand: operand}, nil

	case TokenMinus:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryNode{Sign: ast.Minus, Operand: operand}, nil

	case TokenLParen:
		p.advance()
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRParen {
			return nil, &ParseError{Message: "expected ')'", Pos: p.current().Start}
		}
		p.advance()
		return node, nil

	case TokenNumber:
		p.advance()
		n, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &ParseError{Message: "malformed number", Pos: tok.Start}
		}
		return &ast.NumNode{Value: n}, nil

	case TokenCell:
		p.advance()
		// ParseUnbounded, not Parse: a CELL token past MaxRows/MaxCols is
		// syntactically fine and must defer to ast.ErrRef at evaluation
		// time, not fail here at parse time.
		pos, err := position.ParseUnbounded(tok.Text)
		if err != nil {
			return nil, &ParseError{Message: "malformed cell reference", Pos: tok.Start}
		}
		return &ast.CellNode{Pos: pos}, nil

	default:
		return nil, &ParseError{Message: "expected a number, cell reference, or '('", Pos: tok.Start}
	}
}

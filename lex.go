package golisp

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenLParen TokenType = iota
	TokenRParen
	TokenNumber
	TokenSymbol
)

// Token is one lexical unit. Pos is the byte offset of the token's first
// character in the source line.
type Token struct {
	Type TokenType
	Text string
	Num  int64
	Pos  int
}

func isSymbolLetter(r rune) bool {
	return strings.ContainsRune(`+-*/<>=&%?.@_#$:*`, r)
}

func isAtomRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || isSymbolLetter(r)
}

// Tokenize scans src left to right into a flat token sequence. Whitespace
// separates tokens and produces none.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += w
		case r == '(':
			toks = append(toks, Token{Type: TokenLParen, Text: "(", Pos: i})
			i += w
		case r == ')':
			toks = append(toks, Token{Type: TokenRParen, Text: ")", Pos: i})
			i += w
		case isAtomRune(r):
			start := i
			for i < len(src) {
				r, w = utf8.DecodeRuneInString(src[i:])
				if !isAtomRune(r) {
					break
				}
				i += w
			}
			tok, err := atomToken(src[start:i], start)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		default:
			return nil, &LexError{Pos: i, Text: string(r)}
		}
	}
	return toks, nil
}

// A sign is part of a number only when a digit follows it directly, so "-1"
// is the literal -1 while "-" and "(- 1 2)" see the subtraction operator.
func atomToken(text string, pos int) (Token, error) {
	if !numberLike(text) {
		return Token{Type: TokenSymbol, Text: text, Pos: pos}, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &LexError{Pos: pos, Text: text, Err: err}
	}
	return Token{Type: TokenNumber, Text: text, Num: n, Pos: pos}, nil
}

func numberLike(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Package highlight supplies styled spans for rendered lines: a theme
// maps token types to styles, and a resolver tokenizes line text into
// byte-ranged spans the renderer can look up per character.
package highlight

// TokenType represents the semantic type of a token.
type TokenType uint8

// Token types for syntax highlighting.
const (
	TokenNone TokenType = iota
	TokenComment
	TokenString
	TokenNumber
	TokenKeyword
	TokenTypeName
	TokenFunction
	TokenConstant
	TokenOperator
)

// String returns the scope name of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenComment:
		return "comment"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenKeyword:
		return "keyword"
	case TokenTypeName:
		return "type"
	case TokenFunction:
		return "function"
	case TokenConstant:
		return "constant"
	case TokenOperator:
		return "operator"
	default:
		return "none"
	}
}

// TokenTypeFromString maps a scope name back to a token type.
// Unknown names map to TokenNone.
func TokenTypeFromString(s string) TokenType {
	switch s {
	case "comment":
		return TokenComment
	case "string":
		return TokenString
	case "number":
		return TokenNumber
	case "keyword":
		return TokenKeyword
	case "type":
		return TokenTypeName
	case "function":
		return TokenFunction
	case "constant":
		return TokenConstant
	case "operator":
		return TokenOperator
	default:
		return TokenNone
	}
}

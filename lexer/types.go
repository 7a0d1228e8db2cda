package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota

	TokenID    // Identifier: foo, bar_2
	TokenConst // Constant: 1, -2.5, "str", #t, #f

	TokenDefine    // Keyword: "define"
	TokenIf        // Keyword: "if"
	TokenList      // Keyword: "list"
	TokenCons      // Keyword: "cons"
	TokenLambda    // Keyword: "lambda"
	TokenDisplay   // Keyword: "display"
	TokenQuote     // Keyword: "quote"
	TokenQuoteMark // Quote mark: "'"

	TokenPlus  // Plus: "+"
	TokenMinus // Minus: "-"
	TokenMul   // Star: "*"
	TokenDiv   // Slash: "/"

	TokenLess      // Less than: "<"
	TokenGreater   // Greater than: ">"
	TokenLessEq    // Less or equal: "<="
	TokenGreaterEq // Greater or equal: ">="
	TokenEq        // Equal: "="

	TokenOpenParen  // Open parenthesis: "("
	TokenCloseParen // Close parenthesis: ")"
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenID:         "id",
	TokenConst:      "const",
	TokenDefine:     "define",
	TokenIf:         "if",
	TokenList:       "list",
	TokenCons:       "cons",
	TokenLambda:     "lambda",
	TokenDisplay:    "display",
	TokenQuote:      "quote",
	TokenQuoteMark:  "quote_mark",
	TokenPlus:       "plus_op",
	TokenMinus:      "minus_op",
	TokenMul:        "mul_op",
	TokenDiv:        "div_op",
	TokenLess:       "less_than",
	TokenGreater:    "greater_than",
	TokenLessEq:     "less_eq",
	TokenGreaterEq:  "greater_eq",
	TokenEq:         "eq",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
}

var keywords = map[string]TokenType{
	"define":  TokenDefine,
	"if":      TokenIf,
	"list":    TokenList,
	"cons":    TokenCons,
	"lambda":  TokenLambda,
	"display": TokenDisplay,
	"quote":   TokenQuote,
}

var arithmeticOps = map[string]TokenType{
	"+": TokenPlus,
	"-": TokenMinus,
	"*": TokenMul,
	"/": TokenDiv,
}

// Two-character operators go first so they are not cut short.
var comparisonOps = []struct {
	text string
	tt   TokenType
}{
	{"<=", TokenLessEq},
	{">=", TokenGreaterEq},
	{"<", TokenLess},
	{">", TokenGreater},
	{"=", TokenEq},
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsAtom returns true if the token type can stand alone as a form, that is,
// anything but a parenthesis.
func (tt TokenType) IsAtom() bool {
	return tt != TokenInvalid && tt != TokenOpenParen && tt != TokenCloseParen
}

func isDelimiter(r rune) bool {
	return r == '(' || r == ')'
}

func isRunBreak(r rune) bool {
	return isDelimiter(r) || r == '"' || isWhitespace(r)
}

package timelang

type tokenType int

const (
	tokNumber tokenType = iota // run of ASCII digits
	tokWord                    // run of ASCII letters
	tokSlash
	tokColon
	tokComma
	tokEOF
)

// token is a single lexeme with its starting byte offset in the input.
type token struct {
	typ tokenType
	lit string
	pos int
}

// lex tokenizes input. Whitespace separates tokens and is otherwise
// discarded; any byte that cannot start a token is a parse failure at its
// offset. The returned slice always ends with a tokEOF token whose pos is
// len(input).
func lex(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		ch := input[i]

		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			i++
			continue
		}

		switch {
		case ch == '/':
			tokens = append(tokens, token{typ: tokSlash, lit: "/", pos: i})
			i++
		case ch == ':':
			tokens = append(tokens, token{typ: tokColon, lit: ":", pos: i})
			i++
		case ch == ',':
			tokens = append(tokens, token{typ: tokComma, lit: ",", pos: i})
			i++
		case isDigit(ch):
			start := i
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			tokens = append(tokens, token{typ: tokNumber, lit: input[start:i], pos: start})
		case isLetter(ch):
			start := i
			for i < len(input) && isLetter(input[i]) {
				i++
			}
			tokens = append(tokens, token{typ: tokWord, lit: input[start:i], pos: start})
		default:
			return nil, &SyntaxError{Input: input, Pos: i, Want: "a number, a word, '/', ':', or ','"}
		}
	}
	tokens = append(tokens, token{typ: tokEOF, pos: len(input)})
	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

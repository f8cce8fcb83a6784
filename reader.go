package conslisp

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var macros map[rune]func(r *bufio.Reader) (Value, error)

func init() {
	macros = map[rune]func(r *bufio.Reader) (Value, error){
		';':  commentReader,
		'(':  listReader,
		')':  unmatchedDelimiterReader,
		'\'': quoteReader,
	}
}

// Read reads the next expression from r. It returns io.EOF once the input
// holds nothing but whitespace and comments.
func Read(r *bufio.Reader) (Value, error) {
	for {
		ch, err := skipWhitespace(r)
		if err != nil {
			return nil, err
		}

		val, err := readForm(r, ch)
		if err != nil {
			return nil, err
		}
		if val != nil {
			return val, nil
		}
	}
}

// ReadAll reads every expression in src.
func ReadAll(src string) ([]Value, error) {
	r := bufio.NewReader(strings.NewReader(src))
	var exprs []Value
	for {
		val, err := Read(r)
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, val)
	}
}

// IsIncomplete reports whether err was caused by input ending in the middle
// of an expression, so more input could complete it.
func IsIncomplete(err error) bool {
	var lispErr *Error
	return errors.As(err, &lispErr) && lispErr.incomplete
}

func skipWhitespace(r *bufio.Reader) (rune, error) {
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(ch) {
			return ch, nil
		}
	}
}

// next non-whitespace rune inside an unfinished expression
func nextRune(r *bufio.Reader) (rune, error) {
	ch, err := skipWhitespace(r)
	if err == io.EOF {
		return 0, &Error{Kind: SyntaxError, Msg: "unexpected end of input", incomplete: true}
	}
	return ch, err
}

func isMacro(ch rune) bool {
	_, ismacro := macros[ch]
	return ismacro
}

// readForm reads the expression starting at ch. A nil value without an error
// means ch started a comment.
func readForm(r *bufio.Reader, ch rune) (Value, error) {
	if macroFn, isMacro := macros[ch]; isMacro {
		return macroFn(r)
	}
	return interpretToken(readToken(r, ch))
}

func readToken(r *bufio.Reader, initch rune) string {
	var sb strings.Builder
	sb.WriteRune(initch)

	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return sb.String()
		}
		if unicode.IsSpace(ch) || isMacro(ch) {
			r.UnreadRune()
			return sb.String()
		}
		sb.WriteRune(ch)
	}
}

func interpretToken(token string) (Value, error) {
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Integer(i), nil
	}
	if ValidSymbol(token) {
		return Symbol(token), nil
	}
	return nil, newError(SyntaxError, "invalid token: %s", token)
}

// readNested reads one expression that must be present before the input ends
func readNested(r *bufio.Reader) (Value, error) {
	for {
		ch, err := nextRune(r)
		if err != nil {
			return nil, err
		}
		if ch == ')' {
			return nil, newError(SyntaxError, "missing expression before )")
		}

		val, err := readForm(r, ch)
		if err != nil || val != nil {
			return val, err
		}
	}
}

func commentReader(r *bufio.Reader) (Value, error) {
	for {
		ch, _, err := r.ReadRune()
		if err != nil || ch == '\n' || ch == '\r' {
			return nil, nil
		}
	}
}

func quoteReader(r *bufio.Reader) (Value, error) {
	val, err := readNested(r)
	if err != nil {
		return nil, err
	}
	return Quoted{Value: val}, nil
}

func listReader(r *bufio.Reader) (Value, error) {
	var elems []Value
	for {
		ch, err := nextRune(r)
		if err != nil {
			return nil, err
		}
		if ch == ')' {
			return List(elems...), nil
		}

		if !isMacro(ch) {
			token := readToken(r, ch)
			if token == "." {
				return dottedReader(r, elems)
			}
			val, err := interpretToken(token)
			if err != nil {
				return nil, err
			}
			elems = append(elems, val)
			continue
		}

		val, err := macros[ch](r)
		if err != nil {
			return nil, err
		}
		if val != nil {
			elems = append(elems, val)
		}
	}
}

// dottedReader finishes a list after its " . " separator
func dottedReader(r *bufio.Reader, elems []Value) (Value, error) {
	if len(elems) == 0 {
		return nil, newError(SyntaxError, "unexpected . at start of list")
	}

	tail, err := readNested(r)
	if err != nil {
		return nil, err
	}

	for {
		ch, err := nextRune(r)
		if err != nil {
			return nil, err
		}
		if ch == ';' {
			commentReader(r)
			continue
		}
		if ch != ')' {
			return nil, newError(SyntaxError, "expected ) after dotted tail")
		}
		break
	}

	ret := tail
	for i := len(elems) - 1; i >= 0; i-- {
		ret = Cons(elems[i], ret)
	}
	return ret, nil
}

func unmatchedDelimiterReader(r *bufio.Reader) (Value, error) {
	return nil, newError(SyntaxError, "unmatched delimiter")
}

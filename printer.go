package conslisp

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a value the way the reader would accept it back, except for
// procedures which get a fixed label.
func Print(val Value) string {
	switch t := val.(type) {
	case nil:
		return "nil"
	case Integer:
		return strconv.FormatInt(int64(t), 10)
	case Bool:
		return strconv.FormatBool(bool(t))
	case Symbol:
		return string(t)
	case Quoted:
		return fmt.Sprintf("(quote %s)", Print(t.Value))
	case *Pair:
		return printPair(t)
	case *Closure:
		return fmt.Sprintf("#<lambda %s %s>", Print(t.Params), Print(t.Body))
	case *Builtin:
		return fmt.Sprintf("#<builtin %s>", t.Name)
	default:
		return fmt.Sprintf("#<%T>", val)
	}
}

// PrintError renders an evaluation failure in place of a result.
func PrintError(err error) string {
	return "Error: " + err.Error()
}

func printPair(p *Pair) string {
	if p.IsEmpty() {
		return "()"
	}

	var sb strings.Builder
	sb.WriteByte('(')
	for {
		sb.WriteString(Print(p.car))
		next, isPair := p.cdr.(*Pair)
		if !isPair {
			sb.WriteString(" . ")
			sb.WriteString(Print(p.cdr))
			break
		}
		if next.IsEmpty() {
			break
		}
		sb.WriteByte(' ')
		p = next
	}
	sb.WriteByte(')')
	return sb.String()
}

package editor

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// operationNames maps the accepted operation tokens to their codes.
var operationNames = map[string]OperationID{
	"1":      OpAppend,
	"2":      OpDelete,
	"3":      OpPrint,
	"4":      OpUndo,
	"append": OpAppend,
	"delete": OpDelete,
	"print":  OpPrint,
	"undo":   OpUndo,
}

// splitLine cuts line at its first whitespace rune. Only that one rune is consumed,
// so the rest of the line is returned verbatim. hasRest is false when no separator exists.
func splitLine(line string) (token, rest string, hasRest bool) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, "", false
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return line[:i], line[i+size:], true
}

// ParseCommand maps one raw input line to a Command.
func ParseCommand(line string) (Command, error) {
	token, rest, hasRest := splitLine(line)

	op, ok := operationNames[strings.ToLower(token)]
	if !ok {
		return nil, &ParseError{Line: line, Token: token, Err: ErrUnsupportedOperation}
	}

	switch op {
	case OpAppend:
		if !hasRest {
			return nil, &ParseError{Line: line, Token: token, Err: ErrMalformedArgument}
		}
		return AppendText{Text: rest}, nil
	case OpDelete:
		n, err := parseCount(rest)
		if err != nil {
			return nil, &ParseError{Line: line, Token: token, Err: err}
		}
		return DeleteLastCharacters{Count: n}, nil
	case OpPrint:
		n, err := parseCount(rest)
		if err != nil {
			return nil, &ParseError{Line: line, Token: token, Err: err}
		}
		return PrintCharacter{Position: n}, nil
	default:
		// Undo takes no argument; anything after the token is ignored.
		return UndoLastEdit{}, nil
	}
}

// parseCount reads a non-negative decimal integer argument.
func parseCount(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return 0, ErrMalformedArgument
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, ErrMalformedArgument
	}
	return n, nil
}

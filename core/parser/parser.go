package parser

import (
	"strconv"
	"strings"

	"github.com/sophiajt/onehour/core/lang"
)

// Parse translates source text into Code, one Command per non-blank line.
// Lines are split on ASCII whitespace and the first token selects the
// keyword. Arity and literal syntax are validated here, not at evaluation
// time. The first error aborts the parse.
func Parse(input string) (lang.Code, error) {
	code := lang.Code{}

	for _, line := range strings.Split(input, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		cmd, err := parseCommand(tokens)
		if err != nil {
			return nil, err
		}
		code = append(code, cmd)
	}

	return code, nil
}

func parseCommand(tokens []string) (lang.Command, error) {
	switch tokens[0] {

	case "set":
		return parseSet(tokens)

	case "get":
		return parseGet(tokens)

	case "push":
		return parsePush(tokens)

	case "pushvar":
		return parsePushVar(tokens)

	case "pop":
		if len(tokens) != 1 {
			return nil, lang.ErrMismatchNumParams
		}
		return lang.CommandPop{}, nil

	case "add":
		if len(tokens) != 1 {
			return nil, lang.ErrMismatchNumParams
		}
		return lang.CommandAdd{}, nil

	default:
		return nil, lang.NewUnknownCommandError(tokens[0])
	}
}

func parseSet(tokens []string) (lang.Command, error) {
	if len(tokens) != 3 {
		return nil, lang.ErrMismatchNumParams
	}

	value, err := parseValue(tokens[2])
	if err != nil {
		return nil, err
	}

	return lang.CommandSetVar{
		Name:  tokens[1],
		Value: value,
	}, nil
}

func parseGet(tokens []string) (lang.Command, error) {
	if len(tokens) != 2 {
		return nil, lang.ErrMismatchNumParams
	}

	return lang.CommandGetVar{
		Name: tokens[1],
	}, nil
}

func parsePush(tokens []string) (lang.Command, error) {
	if len(tokens) != 2 {
		return nil, lang.ErrMismatchNumParams
	}

	value, err := parseValue(tokens[1])
	if err != nil {
		return nil, err
	}

	return lang.CommandPush{
		Value: value,
	}, nil
}

func parsePushVar(tokens []string) (lang.Command, error) {
	if len(tokens) != 2 {
		return nil, lang.ErrMismatchNumParams
	}

	return lang.CommandPushVar{
		Name: tokens[1],
	}, nil
}

// parseValue parses a literal token. A token that starts and ends with a
// double quote, and is longer than one character, is a string literal with
// the delimiting quotes stripped and no escape processing. Anything else,
// including a lone double quote, must parse as a signed 64-bit integer.
func parseValue(token string) (lang.Value, error) {
	if strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) && len(token) > 1 {
		return lang.ValueString{
			Str: token[1 : len(token)-1],
		}, nil
	}

	i, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, lang.ErrTypeMismatch
	}

	return lang.ValueInt{
		Int: i,
	}, nil
}

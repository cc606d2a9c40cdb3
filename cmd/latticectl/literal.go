package main

import (
	"fmt"
	"strconv"
	"strings"

	"lattice/internal/core"
)

// parseLiteral builds a *core.Value by joining the facets named in toks.
// Each token is one of: "undef", "null", "true", "false", "bool",
// "absent", "unknown", "num:<float>", "numAny", "str:<text>", "strAny".
// This is a debug-only literal syntax for exercising the library from the
// command line; it has nothing to do with the scripting language the
// embedding analyzer actually processes (core never parses source).
func parseLiteral(toks []string) (*core.Value, error) {
	if len(toks) == 0 {
		return nil, fmt.Errorf("at least one value token is required")
	}
	result := core.None()
	for _, tok := range toks {
		v, err := parseLiteralToken(tok)
		if err != nil {
			return nil, err
		}
		result = core.Join(result, v, false)
	}
	return result, nil
}

func parseLiteralToken(tok string) (*core.Value, error) {
	switch {
	case tok == "undef":
		return core.Undef(), nil
	case tok == "null":
		return core.Null(), nil
	case tok == "true":
		return core.BoolTrue(), nil
	case tok == "false":
		return core.BoolFalse(), nil
	case tok == "bool":
		return core.BoolAny(), nil
	case tok == "absent":
		return core.Absent(), nil
	case tok == "unknown":
		return core.Unknown(), nil
	case tok == "numAny":
		return core.NumAny(), nil
	case tok == "strAny":
		return core.StrAny(), nil
	case strings.HasPrefix(tok, "num:"):
		f, err := strconv.ParseFloat(strings.TrimPrefix(tok, "num:"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid num literal %q: %w", tok, err)
		}
		return core.MakeNum(f), nil
	case strings.HasPrefix(tok, "str:"):
		return core.MakeStr(strings.TrimPrefix(tok, "str:")), nil
	default:
		return nil, fmt.Errorf("unrecognized value token %q", tok)
	}
}

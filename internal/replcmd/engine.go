// Package replcmd implements the small line-oriented command language that
// drives a multimap from the REPL and script-running front ends. It plays
// the role the teacher repo's internal/parser package plays for SQL-ish
// commands, but the commands here are the multimap's own public interface:
// ADD, CONTAINS_KEY, CONTAINS_PAIR, TRAVERSE, CLEAR, STATS, EXIT/QUIT.
package replcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Hareesh108/cachetree/pkg/multimap"
)

// Engine owns the multimap a session of commands operates on.
type Engine struct {
	Tree *multimap.Tree
}

// NewEngine returns an Engine wrapping a fresh, empty multimap.
func NewEngine() *Engine {
	return &Engine{Tree: multimap.New()}
}

// Done reports whether line, once trimmed, is exactly EXIT or QUIT (in any
// case). It inspects only its argument; the Engine keeps no record of what
// it executed.
func (e *Engine) Done(line string) bool {
	upper := strings.ToUpper(strings.TrimSpace(line))
	return upper == "EXIT" || upper == "QUIT"
}

// Execute parses and runs a single line against e.Tree, returning the text
// to print. A malformed line returns an "error: ..." string and leaves the
// tree untouched; it is a command-language mistake, not a core multimap
// error.
func (e *Engine) Execute(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	cmd := strings.ToUpper(fields[0])
	args := fields[1:]

	switch cmd {
	case "ADD":
		key, value, err := parseKeyValue(args)
		if err != nil {
			return "error: " + err.Error()
		}
		e.Tree.AddValue(key, value)
		return "OK"

	case "CONTAINS_KEY":
		key, err := parseOneInt(args)
		if err != nil {
			return "error: " + err.Error()
		}
		return formatBool(e.Tree.ContainsKey(key))

	case "CONTAINS_PAIR":
		key, value, err := parseKeyValue(args)
		if err != nil {
			return "error: " + err.Error()
		}
		return formatBool(e.Tree.ContainsPair(key, value))

	case "TRAVERSE":
		if len(args) != 0 {
			return "error: TRAVERSE takes no arguments"
		}
		var sb strings.Builder
		e.Tree.Traverse(func(k int64, v multimap.Value) {
			fmt.Fprintf(&sb, "%d %d\n", k, v)
		})
		return strings.TrimSuffix(sb.String(), "\n")

	case "CLEAR":
		if len(args) != 0 {
			return "error: CLEAR takes no arguments"
		}
		e.Tree.Clear()
		return "OK"

	case "STATS":
		if len(args) != 0 {
			return "error: STATS takes no arguments"
		}
		keys, values := 0, 0
		var lastKey int64
		seenKey := false
		e.Tree.Traverse(func(k int64, _ multimap.Value) {
			values++
			if !seenKey || k != lastKey {
				keys++
				lastKey = k
				seenKey = true
			}
		})
		return fmt.Sprintf("keys=%d values=%d", keys, values)

	case "EXIT", "QUIT":
		return "Goodbye"

	default:
		return "error: unknown command " + fields[0]
	}
}

func parseOneInt(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one argument, got %d", len(args))
	}
	return strconv.ParseInt(args[0], 10, 64)
}

func parseKeyValue(args []string) (int64, multimap.Value, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected exactly two arguments, got %d", len(args))
	}
	key, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid key %q: %w", args[0], err)
	}
	value, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", args[1], err)
	}
	return key, multimap.Value(value), nil
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

package exomiser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// ResolveField tries candidates in order and returns the first present,
// truthy value. A candidate may be a dotted path into nested objects
// (e.g. "gene.geneSymbol").
//
// When no candidate is truthy, the last candidate's value is returned if it
// is present and not null, so a single-candidate field keeps a literal 0.
// Otherwise the result is null.
func ResolveField(rec domain.RawRecord, candidates []string) domain.Cell {
	var last any
	for _, key := range candidates {
		v, ok := lookup(rec, key)
		if ok && truthy(v) {
			return RenderValue(v)
		}
		last = nil
		if ok {
			last = v
		}
	}
	if last == nil {
		return domain.Cell{}
	}
	return RenderValue(last)
}

// lookup finds key in rec, walking nested objects for dotted paths.
// An intermediate value that is not an object makes the key absent.
func lookup(rec domain.RawRecord, key string) (any, bool) {
	if v, ok := rec[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	var cur any = map[string]any(rec)
	for _, part := range strings.Split(key, ".") {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case domain.RawRecord:
		return obj, true
	default:
		return nil, false
	}
}

// truthy reports whether v would survive an "a or b" fallback:
// null, "", false, zero, and empty collections do not.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val != ""
		}
		return f != 0
	case float64:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case map[string]any:
		return len(val) > 0
	case domain.RawRecord:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}

// RenderValue converts a decoded JSON value into a table cell.
// Numbers keep their source text, booleans render as True/False,
// nested values render as compact JSON and null is an empty cell.
func RenderValue(v any) domain.Cell {
	switch val := v.(type) {
	case nil:
		return domain.Cell{}
	case string:
		return domain.NewCell(val)
	case json.Number:
		return domain.NewCell(val.String())
	case bool:
		if val {
			return domain.NewCell("True")
		}
		return domain.NewCell("False")
	case float64:
		return domain.NewCell(strconv.FormatFloat(val, 'g', -1, 64))
	case int:
		return domain.NewCell(strconv.Itoa(val))
	case map[string]any, domain.RawRecord, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return domain.NewCell(fmt.Sprint(val))
		}
		return domain.NewCell(string(b))
	default:
		return domain.NewCell(fmt.Sprint(val))
	}
}

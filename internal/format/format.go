// Package format writes command output as JSON or EDN.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const (
	JSON = "json"
	EDN  = "edn"
)

// Write writes v in the requested format ("" means json).
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteEDN writes v as EDN. Values go through their JSON encoding first so
// struct tags and MarshalText methods decide field names and scalar forms.
// Map keys become kebab-case keywords (entityId -> :entity-id).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	var sb strings.Builder
	writeEDN(&sb, x, 0, pretty)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

func writeEDN(sb *strings.Builder, v any, depth int, pretty bool) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(t))
	case string:
		sb.WriteString(strconv.Quote(t))
	case float64:
		if t == float64(int64(t)) {
			sb.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		writeSeq(sb, "[", "]", len(t), depth, pretty, func(i int) {
			writeEDN(sb, t[i], depth+1, pretty)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		writeSeq(sb, "{", "}", len(keys), depth, pretty, func(i int) {
			sb.WriteString(keyword(keys[i]))
			sb.WriteByte(' ')
			writeEDN(sb, t[keys[i]], depth+1, pretty)
		})
	default:
		sb.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func writeSeq(sb *strings.Builder, open, close string, n, depth int, pretty bool, elem func(i int)) {
	sb.WriteString(open)
	if n == 0 {
		sb.WriteString(close)
		return
	}
	for i := 0; i < n; i++ {
		switch {
		case pretty:
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("  ", depth+1))
		case i > 0:
			sb.WriteByte(' ')
		}
		elem(i)
	}
	if pretty {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("  ", depth))
	}
	sb.WriteString(close)
}

func keyword(k string) string {
	var sb strings.Builder
	sb.WriteByte(':')
	for i, r := range strings.TrimSpace(k) {
		switch {
		case unicode.IsSpace(r) || r == '_':
			sb.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

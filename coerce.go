package mtschema

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/kujaku11/mtschema/i18n"
)

// coerceField normalizes a raw input value through the field's kind union in
// declared priority order, then applies style and range constraints. The
// first kind that accepts the value wins.
func coerceField(f FieldSpec, raw any) (any, Issues) {
	if raw == nil {
		if f.acceptsKind(KindNull) {
			return nil, nil
		}
		return nil, Issues{typeIssue(f, raw)}
	}
	for _, k := range f.Kinds {
		v, ok := tryKind(k, raw)
		if !ok {
			continue
		}
		v, iss := checkConstraints(f, v)
		if len(iss) > 0 {
			return nil, iss
		}
		return v, nil
	}
	if _, ok := raw.(string); ok && (f.acceptsKind(KindDate) || f.acceptsKind(KindDateTime)) {
		return nil, Issues{{
			Path:    f.Path,
			Code:    CodeInvalidFormat,
			Message: i18n.T(CodeInvalidFormat, nil),
			Hint:    "expected an ISO-8601 date/time",
			Params:  map[string]any{"got": raw},
		}}
	}
	return nil, Issues{typeIssue(f, raw)}
}

func typeIssue(f FieldSpec, raw any) Issue {
	kinds := make([]string, len(f.Kinds))
	for i, k := range f.Kinds {
		kinds[i] = k.String()
	}
	return Issue{
		Path:    f.Path,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, nil),
		Hint:    "expected " + strings.Join(kinds, " | "),
		Params:  map[string]any{"got": fmt.Sprintf("%T", raw)},
	}
}

func tryKind(k Kind, raw any) (any, bool) {
	switch k {
	case KindString:
		return tryString(raw)
	case KindInt:
		return tryInt(raw)
	case KindFloat:
		return tryFloat(raw)
	case KindBool:
		return tryBool(raw)
	case KindDate:
		return tryDate(raw)
	case KindDateTime:
		return tryDateTime(raw)
	case KindStringList:
		return tryStringList(raw)
	case KindFloatList:
		return tryFloatList(raw)
	case KindBoolList:
		return tryBoolList(raw)
	case KindNull:
		return nil, raw == nil
	}
	return nil, false
}

func tryString(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return nil, false
}

func tryInt(raw any) (any, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, true
		}
	}
	return nil, false
}

func tryFloat(raw any) (any, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		if n, err := v.Float64(); err == nil {
			return n, true
		}
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return n, true
		}
	}
	return nil, false
}

func tryBool(raw any) (any, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return nil, false
}

func tryDate(raw any) (any, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC().Truncate(24 * time.Hour), true
	case string:
		if t, err := ParseDate(v); err == nil {
			return t, true
		}
	}
	return nil, false
}

func tryDateTime(raw any) (any, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), true
	case string:
		if t, err := ParseDateTime(v); err == nil {
			return t, true
		}
	}
	return nil, false
}

func tryStringList(raw any) (any, bool) {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := tryString(e)
			if !ok {
				return nil, false
			}
			out = append(out, s.(string))
		}
		return out, true
	case string:
		// Acquisition systems commonly hand channel lists over as a single
		// comma-separated string.
		if strings.TrimSpace(v) == "" {
			return []string{}, true
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, true
	}
	return nil, false
}

func tryFloatList(raw any) (any, bool) {
	switch v := raw.(type) {
	case []float64:
		out := make([]float64, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]float64, 0, len(v))
		for _, e := range v {
			n, ok := tryFloat(e)
			if !ok {
				return nil, false
			}
			out = append(out, n.(float64))
		}
		return out, true
	case string:
		if strings.TrimSpace(v) == "" {
			return []float64{}, true
		}
		parts := strings.Split(v, ",")
		out := make([]float64, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	}
	return nil, false
}

func tryBoolList(raw any) (any, bool) {
	switch v := raw.(type) {
	case []bool:
		out := make([]bool, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]bool, 0, len(v))
		for _, e := range v {
			b, ok := tryBool(e)
			if !ok {
				return nil, false
			}
			out = append(out, b.(bool))
		}
		return out, true
	case string:
		if strings.TrimSpace(v) == "" {
			return []bool{}, true
		}
		parts := strings.Split(v, ",")
		out := make([]bool, 0, len(parts))
		for _, p := range parts {
			b, ok := tryBool(p)
			if !ok {
				return nil, false
			}
			out = append(out, b.(bool))
		}
		return out, true
	}
	return nil, false
}

var alphaNumericRe = regexp.MustCompile(`^[A-Za-z0-9 _.\-]+$`)
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// checkConstraints applies style and range rules to an already-coerced value
// and returns it, normalized to the canonical vocabulary casing when the
// style demands one. Empty optional strings are exempt from lexical checks.
func checkConstraints(f FieldSpec, v any) (any, Issues) {
	var iss Issues
	switch f.Style {
	case StyleVocabulary:
		s, ok := v.(string)
		if !ok {
			break
		}
		if canon, found := vocabMatch(f.Vocab, s); found {
			v = canon
		} else {
			iss = AppendIssues(iss, Issue{
				Path:    f.Path,
				Code:    CodeInvalidEnum,
				Message: i18n.T(CodeInvalidEnum, nil),
				Hint:    "allowed: " + strings.Join(f.Vocab, ", "),
				Params:  map[string]any{"got": s, "allowed": f.Vocab},
			})
		}
	case StyleAlphaNumeric:
		if s, ok := v.(string); ok && s != "" && !alphaNumericRe.MatchString(s) {
			iss = AppendIssues(iss, formatIssue(f, s, "alpha-numeric value"))
		}
	case StyleEmail:
		if s, ok := v.(string); ok && s != "" && !emailRe.MatchString(s) {
			iss = AppendIssues(iss, formatIssue(f, s, "email address"))
		}
	case StyleURL:
		if s, ok := v.(string); ok && s != "" {
			u, err := url.Parse(s)
			if err != nil || u.Scheme == "" || u.Host == "" {
				iss = AppendIssues(iss, formatIssue(f, s, "absolute URL"))
			}
		}
	case StyleNameList:
		if names, ok := v.([]string); ok {
			for _, n := range names {
				if strings.TrimSpace(n) == "" {
					iss = AppendIssues(iss, formatIssue(f, n, "non-empty names"))
					break
				}
			}
		}
	}
	if f.Min != nil || f.Max != nil {
		iss = AppendIssues(iss, checkRange(f, v)...)
	}
	return v, iss
}

func formatIssue(f FieldSpec, got any, expected string) Issue {
	return Issue{
		Path:    f.Path,
		Code:    CodeInvalidFormat,
		Message: i18n.T(CodeInvalidFormat, nil),
		Hint:    "expected " + expected,
		Params:  map[string]any{"got": got},
	}
}

func checkRange(f FieldSpec, v any) Issues {
	check := func(n float64) Issues {
		if f.Min != nil && n < *f.Min || f.Max != nil && n > *f.Max {
			min, max := "-inf", "+inf"
			if f.Min != nil {
				min = strconv.FormatFloat(*f.Min, 'g', -1, 64)
			}
			if f.Max != nil {
				max = strconv.FormatFloat(*f.Max, 'g', -1, 64)
			}
			return Issues{{
				Path:    f.Path,
				Code:    CodeOutOfRange,
				Message: i18n.T(CodeOutOfRange, nil),
				Hint:    fmt.Sprintf("expected value in [%s, %s]", min, max),
				Params:  map[string]any{"got": n, "min": f.Min, "max": f.Max},
			}}
		}
		return nil
	}
	switch n := v.(type) {
	case int64:
		return check(float64(n))
	case float64:
		return check(n)
	case []float64:
		for _, e := range n {
			if iss := check(e); len(iss) > 0 {
				return iss
			}
		}
	}
	return nil
}

// vocabMatch performs a case-insensitive lookup and returns the canonical
// casing declared by the schema.
func vocabMatch(vocab []string, s string) (string, bool) {
	for _, allowed := range vocab {
		if strings.EqualFold(allowed, strings.TrimSpace(s)) {
			return allowed, true
		}
	}
	return "", false
}

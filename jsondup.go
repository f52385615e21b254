package mtschema

import (
	"bytes"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/kujaku11/mtschema/i18n"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	curKey       string
	index        int
}

// detectDuplicateKeys scans a JSON document's tokens and reports every
// duplicated object key with its dotted path. Decoders keep the last value
// for a repeated key, so duplicates mean silent data loss.
func detectDuplicateKeys(data []byte) Issues {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var iss Issues
	var stack []dupFrame

	path := func(key string) string {
		out := ""
		for _, fr := range stack[:len(stack)-1] {
			var seg string
			if fr.kind == kindObject {
				seg = fr.curKey
			} else {
				seg = strconv.Itoa(fr.index)
			}
			if out == "" {
				out = seg
			} else {
				out += "." + seg
			}
		}
		if out == "" {
			return key
		}
		return out + "." + key
	}

	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		switch top.kind {
		case kindObject:
			top.expectingKey = true
		case kindArray:
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Well-formedness failures are reported by the real decode pass.
			return iss
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, seen := top.keys[v]; seen {
						iss = AppendIssues(iss, Issue{
							Path:    path(v),
							Code:    CodeDuplicateKey,
							Message: i18n.T(CodeDuplicateKey, nil),
							Hint:    "key " + strconv.Quote(v) + " appears more than once",
						})
					}
					top.keys[v] = struct{}{}
					top.curKey = v
					top.expectingKey = false
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}
	return iss
}

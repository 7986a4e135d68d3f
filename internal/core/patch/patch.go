// Package patch applies RFC 6902 JSON Patch documents to typed values.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/magicvilla/villa-api/internal/core/domain"
)

var supported = map[string]bool{
	"add":     true,
	"remove":  true,
	"replace": true,
	"move":    true,
	"copy":    true,
	"test":    true,
}

// Apply patches target, which must be a non-nil pointer to a struct, with the
// operations in document.
//
// Operations run in order against the JSON form of target. A failing "test"
// aborts immediately. Any other failing operation is recorded and skipped.
// The result is decoded into a fresh value of target's type and passed to
// validate. If anything failed, Apply returns a *domain.ValidationError with
// every message and target is left untouched.
func Apply(target any, document []byte, validate func(any) error) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("patch target must be a non-nil pointer, got %T", target)
	}

	var ops []map[string]json.RawMessage
	if err := json.Unmarshal(document, &ops); err != nil || ops == nil {
		return domain.NewValidationError("patch document must be a JSON array of operations")
	}

	doc, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("encode patch target: %w", err)
	}

	var msgs []string
	for i, raw := range ops {
		op, encoded, err := normalize(raw, doc)
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("operation %d: %v", i, err))
			continue
		}
		p, err := jsonpatch.DecodePatch(encoded)
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("operation %d: %v", i, err))
			continue
		}
		next, err := p.Apply(doc)
		if err != nil {
			if op == "test" {
				return domain.NewValidationError(fmt.Sprintf("operation %d: test failed: %v", i, err))
			}
			msgs = append(msgs, fmt.Sprintf("operation %d (%s): %v", i, op, err))
			continue
		}
		doc = next
	}

	fresh := reflect.New(rv.Elem().Type())
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()
	if err := dec.Decode(fresh.Interface()); err != nil {
		msgs = append(msgs, fmt.Sprintf("patched document is invalid: %v", err))
	} else if validate != nil {
		if err := validate(fresh.Interface()); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				msgs = append(msgs, ve.Messages...)
			} else {
				msgs = append(msgs, err.Error())
			}
		}
	}

	if len(msgs) > 0 {
		return domain.NewValidationError(msgs...)
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

// normalize lowercases member names, resolves "path" and "from" against doc
// ignoring case, then re-encodes the operation as a single-element patch.
func normalize(raw map[string]json.RawMessage, doc []byte) (string, []byte, error) {
	op := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		op[strings.ToLower(k)] = v
	}

	var name string
	if err := json.Unmarshal(op["op"], &name); err != nil {
		return "", nil, errors.New(`"op" must be a string`)
	}
	name = strings.ToLower(name)
	if !supported[name] {
		return name, nil, fmt.Errorf("unsupported op %q", name)
	}
	nameJSON, _ := json.Marshal(name)
	op["op"] = nameJSON

	for _, member := range []string{"path", "from"} {
		v, ok := op[member]
		if !ok {
			continue
		}
		var ptr string
		if err := json.Unmarshal(v, &ptr); err != nil {
			return name, nil, fmt.Errorf("%q must be a string", member)
		}
		ptrJSON, _ := json.Marshal(resolvePointer(doc, ptr))
		op[member] = ptrJSON
	}

	encoded, err := json.Marshal([]map[string]json.RawMessage{op})
	if err != nil {
		return name, nil, err
	}
	return name, encoded, nil
}

// resolvePointer rewrites every object member segment of ptr to the key doc
// actually uses, matching case-insensitively. An exact match wins. Segments
// with no match are kept so "add" can still create new members.
func resolvePointer(doc []byte, ptr string) string {
	if ptr == "" || !strings.HasPrefix(ptr, "/") {
		return ptr
	}
	var node any
	if err := json.Unmarshal(doc, &node); err != nil {
		return ptr
	}

	segs := strings.Split(ptr[1:], "/")
	for i, seg := range segs {
		switch n := node.(type) {
		case map[string]any:
			key := unescape(seg)
			if v, ok := n[key]; ok {
				node = v
				continue
			}
			node = nil
			for k, v := range n {
				if strings.EqualFold(k, key) {
					segs[i] = escape(k)
					node = v
					break
				}
			}
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(n) {
				node = nil
				continue
			}
			node = n[idx]
		default:
			node = nil
		}
	}
	return "/" + strings.Join(segs, "/")
}

var (
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
)

func unescape(seg string) string { return pointerUnescaper.Replace(seg) }

func escape(key string) string { return pointerEscaper.Replace(key) }

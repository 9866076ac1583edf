// Package jsontok walks JSON token streams with goccy/go-json.
package jsontok

import (
	"errors"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Duplicate records an object key that appeared more than once.
type Duplicate struct {
	Path string // JSON Pointer of the repeated member.
	Key  string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
}

// FindDuplicateKeys reports repeated object keys in document order. maxDups < 0
// means unlimited; 0 disables detection. Malformed input returns the duplicates
// seen so far together with the decode error.
func FindDuplicateKeys(r io.Reader, maxDups int) ([]Duplicate, error) {
	if maxDups == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var dups []Duplicate
	var stack []frame

	// valuePath returns the pointer of the value about to be read in the
	// current container and advances array indices.
	valuePath := func(key string) string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := top.path + "/" + strconv.Itoa(top.nextIndex)
			top.nextIndex++
			return p
		}
		return top.path + "/" + escape(key)
	}
	var pendingKey string
	endValue := func() {
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.kind == kindObject && !top.expectingKey {
				top.expectingKey = true
			}
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return dups, io.ErrUnexpectedEOF
			}
			return dups, nil
		}
		if err != nil {
			return dups, err
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true, path: valuePath(pendingKey)})
			case '[':
				stack = append(stack, frame{kind: kindArray, path: valuePath(pendingKey)})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				endValue()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						dups = append(dups, Duplicate{Path: top.path + "/" + escape(v), Key: v})
						if maxDups > 0 && len(dups) >= maxDups {
							return dups, nil
						}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					pendingKey = v
					continue
				}
			}
			valuePath(pendingKey)
			endValue()
		default:
			valuePath(pendingKey)
			endValue()
		}
	}
}

func escape(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}

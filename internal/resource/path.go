package resource

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var indexedSegment = regexp.MustCompile(`^([^\[]+)\[(\d+)\]$`)

type segment struct {
	key      string
	index    int
	hasIndex bool
}

// parsePath splits a dotted path into segments. A segment may carry a single
// array index, e.g. "Origins[0].CustomOriginConfig.OriginProtocolPolicy".
func parsePath(path string) ([]segment, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}

	parts := strings.Split(path, ".")
	segments := make([]segment, 0, len(parts))

	for _, part := range parts {
		if strings.Contains(part, "[") {
			match := indexedSegment.FindStringSubmatch(part)
			if len(match) != 3 {
				return nil, fmt.Errorf("malformed path segment %q", part)
			}
			index, err := strconv.Atoi(match[2])
			if err != nil {
				return nil, fmt.Errorf("malformed index in segment %q", part)
			}
			segments = append(segments, segment{key: match[1], index: index, hasIndex: true})
		} else {
			segments = append(segments, segment{key: part})
		}
	}

	return segments, nil
}

// Get resolves a dotted path against a nested structure. The second return
// value reports whether every segment resolved.
func Get(root map[string]interface{}, path string) (interface{}, bool) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, false
	}

	var current interface{} = root
	for _, seg := range segments {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		val, ok := obj[seg.key]
		if !ok {
			return nil, false
		}
		if seg.hasIndex {
			arr, ok := Sequence(val)
			if !ok || seg.index < 0 || seg.index >= len(arr) {
				return nil, false
			}
			val = arr[seg.index]
		}
		current = val
	}

	return current, true
}

// Sequence normalizes the slice shapes a YAML or JSON decoder can produce.
// Scalars and mappings are not sequences.
func Sequence(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

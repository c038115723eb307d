package resource

import "fmt"

type op struct {
	path   string
	value  interface{}
	remove bool
}

// Patch accumulates field assignments and deletions and applies them to a
// deep copy of a base structure. The base is never touched, so one base
// template can seed any number of builds.
type Patch struct {
	ops []op
}

func NewPatch() *Patch {
	return &Patch{}
}

// Set records an assignment of value at path.
func (p *Patch) Set(path string, value interface{}) {
	p.ops = append(p.ops, op{path: path, value: value})
}

// Delete records removal of the field at path. Deleting a field that is
// already absent is a no-op at apply time.
func (p *Patch) Delete(path string) {
	p.ops = append(p.ops, op{path: path, remove: true})
}

// Len returns the number of recorded operations.
func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply clones base and replays every recorded operation against the clone,
// in order. An assignment through a missing or mistyped intermediate node is
// a structural error: the base template did not carry a sub-structure the
// build requires, and the build must abort.
func (p *Patch) Apply(base map[string]interface{}) (map[string]interface{}, error) {
	out := Clone(base)

	for _, o := range p.ops {
		if o.remove {
			if err := deletePath(out, o.path); err != nil {
				return nil, err
			}
			continue
		}
		if err := setPath(out, o.path, o.value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func setPath(root map[string]interface{}, path string, value interface{}) error {
	segments, err := parsePath(path)
	if err != nil {
		return fmt.Errorf("cannot set %q: %w", path, err)
	}

	current := root
	for i, seg := range segments {
		last := i == len(segments)-1

		if last && !seg.hasIndex {
			current[seg.key] = value
			return nil
		}

		val, ok := current[seg.key]
		if !ok {
			return fmt.Errorf("cannot set %q: missing %q in base structure", path, seg.key)
		}

		if seg.hasIndex {
			arr, ok := val.([]interface{})
			if !ok {
				return fmt.Errorf("cannot set %q: %q is not a sequence", path, seg.key)
			}
			if seg.index < 0 || seg.index >= len(arr) {
				return fmt.Errorf("cannot set %q: index %d out of range for %q", path, seg.index, seg.key)
			}
			if last {
				arr[seg.index] = value
				return nil
			}
			val = arr[seg.index]
		}

		next, ok := val.(map[string]interface{})
		if !ok {
			return fmt.Errorf("cannot set %q: %q is not a mapping", path, seg.key)
		}
		current = next
	}

	return nil
}

// deletePath removes the field at path. Missing parents make the delete a
// no-op rather than an error: the owning step has already decided the field
// should not exist.
func deletePath(root map[string]interface{}, path string) error {
	segments, err := parsePath(path)
	if err != nil {
		return fmt.Errorf("cannot delete %q: %w", path, err)
	}

	current := root
	for i, seg := range segments {
		last := i == len(segments)-1

		if last {
			if seg.hasIndex {
				return fmt.Errorf("cannot delete %q: indexed deletes are not supported", path)
			}
			delete(current, seg.key)
			return nil
		}

		val, ok := current[seg.key]
		if !ok {
			return nil
		}
		if seg.hasIndex {
			arr, ok := val.([]interface{})
			if !ok || seg.index < 0 || seg.index >= len(arr) {
				return nil
			}
			val = arr[seg.index]
		}

		next, ok := val.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// Clone deep-copies a nested structure of mappings, sequences, and scalars.
func Clone(src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(src))
	for k, v := range src {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return Clone(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

package extract

type Kind int

const (
	Absent Kind = iota
	Mapping
	List
	ScalarKind
)

// Node wraps a value produced by decoding JSON into interface{} so that
// nested lookups can be chained without type assertions at every step.
type Node struct {
	kind  Kind
	value any
}

func Of(v any) Node {
	switch v.(type) {
	case nil:
		return Node{}
	case map[string]any:
		return Node{kind: Mapping, value: v}
	case []any:
		return Node{kind: List, value: v}
	default:
		return Node{kind: ScalarKind, value: v}
	}
}

func (n Node) Kind() Kind {
	return n.kind
}

// Get walks keys through nested mappings. Any step that is not a mapping,
// or a missing key, yields an Absent node.
func (n Node) Get(keys ...string) Node {
	current := n
	for _, key := range keys {
		if current.kind != Mapping {
			return Node{}
		}
		current = Of(current.value.(map[string]any)[key])
	}
	return current
}

// Items returns the elements of a list node, or nil for anything else.
func (n Node) Items() []Node {
	if n.kind != List {
		return nil
	}
	raw := n.value.([]any)
	items := make([]Node, len(raw))
	for i, v := range raw {
		items[i] = Of(v)
	}
	return items
}

// String returns a non-empty string scalar.
func (n Node) String() (string, bool) {
	s, ok := n.value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

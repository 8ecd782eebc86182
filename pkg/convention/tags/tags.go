package tags

// Canonical tag keys applied to every resource.
const (
	KeyOwner        = "Owner"
	KeyCreatedBy    = "CreatedBy"
	KeyCreationDate = "CreationDate"
	KeyEnvironment  = "Environment"
	KeyProject      = "Project"
	KeyAutoTagged   = "AutoTagged"
)

// Set is an insertion ordered mapping of tag keys to values.
// The zero value is an empty set ready to use.
type Set struct {
	keys   []string
	values map[string]string
}

// FromPairs builds a Set from alternating key, value arguments.
func FromPairs(kv ...string) Set {
	var s Set
	for i := 0; i+1 < len(kv); i += 2 {
		s.Put(kv[i], kv[i+1])
	}
	return s
}

// Build assembles the standard tag set for a newly created resource.
func Build(owner, arn, eventTime, environment, project string) Set {
	return FromPairs(
		KeyOwner, owner,
		KeyCreatedBy, arn,
		KeyCreationDate, eventTime,
		KeyEnvironment, environment,
		KeyProject, project,
		KeyAutoTagged, "true",
	)
}

// Put sets key to value. Existing keys keep their position.
func (s *Set) Put(key, value string) {
	if s.values == nil {
		s.values = map[string]string{}
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s Set) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s Set) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the keys in insertion order.
func (s Set) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Map returns a copy of the set as a plain map.
func (s Set) Map() map[string]string {
	m := make(map[string]string, len(s.keys))
	for _, k := range s.keys {
		m[k] = s.values[k]
	}
	return m
}

// Each calls fn for every tag in insertion order.
func (s Set) Each(fn func(key, value string)) {
	for _, k := range s.keys {
		fn(k, s.values[k])
	}
}

// Merge returns a new set holding base overlaid with overlay. Keys from
// overlay win on collision, keys only present in base are preserved.
func Merge(base, overlay Set) Set {
	var merged Set
	base.Each(merged.Put)
	overlay.Each(merged.Put)
	return merged
}

// Equal reports whether both sets hold the same keys, in the same order, with the same values.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, k := range s.keys {
		if other.keys[i] != k || other.values[k] != s.values[k] {
			return false
		}
	}
	return true
}

package tags

import "strings"

const (
	pairSeparator = ", "
	kvSeparator   = "="
)

// Print renders a set for logs, e.g. "Owner=alice, AutoTagged=true".
// Keys and values containing "=" or "," do not survive a Parse round trip.
func Print(s Set) string {
	pairs := make([]string, 0, s.Len())
	s.Each(func(k, v string) {
		pairs = append(pairs, k+kvSeparator+v)
	})
	return strings.Join(pairs, pairSeparator)
}

// Parse reads back the output of Print.
func Parse(printed string) Set {
	var s Set
	if strings.TrimSpace(printed) == "" {
		return s
	}
	for _, pair := range strings.Split(printed, pairSeparator) {
		k, v, _ := strings.Cut(pair, kvSeparator)
		s.Put(k, v)
	}
	return s
}

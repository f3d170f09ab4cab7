package github

import (
	"maps"
	"slices"
	"strings"

	"github.com/jmgilman/ghrest/github/field"
)

// RepositoryLanguages maps each language detected in a repository to the
// number of bytes of code written in it.
type RepositoryLanguages struct {
	bytes map[string]int64
}

// NewRepositoryLanguages returns a RepositoryLanguages holding a copy of
// bytes.
func NewRepositoryLanguages(bytes map[string]int64) *RepositoryLanguages {
	return &RepositoryLanguages{bytes: maps.Clone(bytes)}
}

// DecodeRepositoryLanguages builds a RepositoryLanguages from its JSON
// object. Members that are not integers are skipped.
func DecodeRepositoryLanguages(obj field.Object) (*RepositoryLanguages, error) {
	bytes := make(map[string]int64, len(obj))
	for name := range obj {
		if n := obj.Int64(name, -1); n >= 0 {
			bytes[name] = n
		}
	}
	return &RepositoryLanguages{bytes: bytes}, nil
}

// Bytes returns the byte count for language.
func (l *RepositoryLanguages) Bytes(language string) (int64, bool) {
	n, ok := l.bytes[language]
	return n, ok
}

// Names returns the languages ordered by byte count, largest first. Ties are
// broken by name.
func (l *RepositoryLanguages) Names() []string {
	names := slices.Collect(maps.Keys(l.bytes))
	slices.SortFunc(names, func(a, b string) int {
		if l.bytes[a] != l.bytes[b] {
			if l.bytes[a] > l.bytes[b] {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
	return names
}

// Map returns a copy of the language to byte count mapping.
func (l *RepositoryLanguages) Map() map[string]int64 {
	return maps.Clone(l.bytes)
}

// Total returns the sum of all byte counts.
func (l *RepositoryLanguages) Total() int64 {
	var total int64
	for _, n := range l.bytes {
		total += n
	}
	return total
}

// Len returns the number of languages.
func (l *RepositoryLanguages) Len() int {
	return len(l.bytes)
}

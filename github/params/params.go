// Package params accumulates named parameters for an outbound GitHub request
// and renders them as a query string or a JSON request body.
//
// Parameters that were never added never appear in the output, matching
// GitHub's convention that an omitted field means "leave unchanged". To send
// an explicit JSON null (for example to clear a Pages custom domain), add
// the Null value.
package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jmgilman/ghrest/errors"
)

// Null is an explicit JSON null. In a query string it renders as an empty
// value.
var Null = null{}

type null struct{}

func (null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

type pair struct {
	key   string
	value any
}

// Params is an ordered list of key-value pairs. Keys are not deduplicated:
// QueryString emits every pair, so for repeated keys the server's last-wins
// rule applies; Body keeps the last value written for each key. The zero
// value and a nil *Params are both empty and ready to use.
type Params struct {
	pairs []pair
}

// New returns an empty Params.
func New() *Params {
	return &Params{}
}

// Add appends a key-value pair and returns p for chaining.
func (p *Params) Add(key string, value any) *Params {
	p.pairs = append(p.pairs, pair{key: key, value: value})
	return p
}

// AddIf appends the pair only when ok is true.
func (p *Params) AddIf(ok bool, key string, value any) *Params {
	if ok {
		p.Add(key, value)
	}
	return p
}

// Len returns the number of pairs, counting duplicates.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pairs)
}

// Get returns the last value added for key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	for i := len(p.pairs) - 1; i >= 0; i-- {
		if p.pairs[i].key == key {
			return p.pairs[i].value, true
		}
	}
	return nil, false
}

// QueryString renders the pairs as "?k=v&k2=v2" in insertion order, with
// keys and values escaped. An empty Params renders as "".
func (p *Params) QueryString() string {
	if p.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for i, kv := range p.pairs {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(formatQueryValue(kv.value)))
	}
	return b.String()
}

// Body renders the pairs as a JSON object. An empty Params renders as "{}".
func (p *Params) Body() ([]byte, error) {
	data, err := p.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to encode request body")
	}
	return data, nil
}

// MarshalJSON implements json.Marshaler. Keys appear in the order they were
// first added; each key carries the last value written for it. Nested
// *Params and maps are encoded recursively.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p.Len() == 0 {
		return []byte("{}"), nil
	}

	order := make([]string, 0, len(p.pairs))
	last := make(map[string]any, len(p.pairs))
	for _, kv := range p.pairs {
		if _, seen := last[kv.key]; !seen {
			order = append(order, kv.key)
		}
		last[kv.key] = kv.value
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(last[key])
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func formatQueryValue(v any) string {
	switch val := v.(type) {
	case nil, null:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case []string:
		return strings.Join(val, ",")
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}

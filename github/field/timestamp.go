package field

import "time"

// InvalidTimestamp is returned by Timestamp.UnixMilli when the timestamp is
// absent or cannot be parsed.
const InvalidTimestamp int64 = -1

// Timestamp is an ISO-8601 timestamp as it appeared on the wire. The raw
// string is kept verbatim; the parsed time is derived on demand.
type Timestamp struct {
	raw string
	set bool
}

// NewTimestamp wraps a raw wire timestamp. Malformed input is accepted and
// reported through Time and UnixMilli.
func NewTimestamp(raw string) Timestamp {
	return Timestamp{raw: raw, set: true}
}

// TimestampOf formats t the way GitHub does (RFC 3339, UTC, second precision).
func TimestampOf(t time.Time) Timestamp {
	return NewTimestamp(t.UTC().Format(time.RFC3339))
}

// IsSet reports whether the timestamp was present.
func (t Timestamp) IsSet() bool {
	return t.set
}

// Raw returns the wire string, or "" when absent.
func (t Timestamp) Raw() string {
	return t.raw
}

// Time parses the timestamp. The boolean is false when the timestamp is
// absent or malformed.
func (t Timestamp) Time() (time.Time, bool) {
	if !t.set {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, t.raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// UnixMilli returns milliseconds since the Unix epoch, or InvalidTimestamp.
func (t Timestamp) UnixMilli() int64 {
	parsed, ok := t.Time()
	if !ok {
		return InvalidTimestamp
	}
	return parsed.UnixMilli()
}

// String returns the raw wire value.
func (t Timestamp) String() string {
	return t.raw
}

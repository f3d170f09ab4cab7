// Package field reads typed values out of decoded GitHub JSON.
//
// GitHub omits members freely: a repository nested inside another payload
// carries a fraction of the fields of a top-level fetch, and many fields are
// null until something sets them. Object therefore never fails on a missing
// key. Every accessor returns a documented default (nil, "", 0, false, or a
// caller-supplied value) and reads are independent of each other.
//
// Enum-valued fields are the exception. EnumTable maps wire strings to Go
// constants explicitly and reports an unknown non-null value as a
// DECODE_FAILED error instead of guessing.
package field

// Package hostwrap adapts values whose semantics are implemented by the
// host runtime rather than by IR bodies: regex, long (on hosts where a
// native 64-bit integer is unavailable), char, unsigned integers, and
// arrays.
package hostwrap

import "strconv"

// Long64 is the host representation of the source language's 64-bit
// integer type, constructed from a (high, low) 32-bit pair:
// value = (high << 32) + low. Go has a native int64, so this wrapper
// exists purely to preserve the "platforms with 32-bit numbers"
// construction contract rather than to work around a host limitation.
type Long64 struct {
	Value int64
}

// NewLong64FromParts builds a Long64 from the high/low 32-bit halves an
// intrinsic Long constructor call supplies.
func NewLong64FromParts(high, low int32) Long64 {
	return Long64{Value: (int64(high) << 32) + int64(uint32(low))}
}

func (l Long64) String() string { return strconv.FormatInt(l.Value, 10) }

// High and Low decompose the value back into its 32-bit halves, the
// inverse of NewLong64FromParts.
func (l Long64) High() int32 { return int32(l.Value >> 32) }
func (l Long64) Low() int32  { return int32(uint32(l.Value)) }

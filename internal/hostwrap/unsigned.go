package hostwrap

import "strconv"

// UWidth selects the bit width of an unsigned wrapper.
type UWidth int

const (
	UByte UWidth = iota
	UShort
	UInt
	ULong
)

// Unsigned is the host representation of an unsigned integer class.
// Unsigned-typed constants are synthesized as constructor calls on the
// corresponding unsigned class, whose single backing field is the signed
// representation — Bits stores that backing value masked to Width (its
// unsigned reading); SignedBackingField recovers the signed form.
type Unsigned struct {
	Width UWidth
	Bits  uint64 // the unsigned magnitude, masked to Width
}

func mask(w UWidth, v uint64) uint64 {
	switch w {
	case UByte:
		return v & 0xff
	case UShort:
		return v & 0xffff
	case UInt:
		return v & 0xffffffff
	default:
		return v
	}
}

// NewUnsigned builds an Unsigned from the signed backing-field value a
// constructor call supplies, masking it to the wrapper's width.
func NewUnsigned(w UWidth, signed int64) Unsigned {
	return Unsigned{Width: w, Bits: mask(w, uint64(signed))}
}

// SignedBackingField returns the single backing field value: the IR
// class's one signed-representation field.
func (u Unsigned) SignedBackingField() int64 {
	switch u.Width {
	case UByte:
		return int64(int8(u.Bits))
	case UShort:
		return int64(int16(u.Bits))
	case UInt:
		return int64(int32(u.Bits))
	default:
		return int64(u.Bits)
	}
}

func (u Unsigned) String() string { return strconv.FormatUint(u.Bits, 10) }

// Add, Sub, Mul perform wrapping arithmetic at the wrapper's width, the
// host semantics an intrinsic unsigned class's operators dispatch to.
func (u Unsigned) Add(other Unsigned) Unsigned {
	return Unsigned{Width: u.Width, Bits: mask(u.Width, u.Bits+other.Bits)}
}

func (u Unsigned) Sub(other Unsigned) Unsigned {
	return Unsigned{Width: u.Width, Bits: mask(u.Width, u.Bits-other.Bits)}
}

func (u Unsigned) Mul(other Unsigned) Unsigned {
	return Unsigned{Width: u.Width, Bits: mask(u.Width, u.Bits*other.Bits)}
}

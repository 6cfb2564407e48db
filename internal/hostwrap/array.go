package hostwrap

import "fmt"

// ArrayBuffer is a mutable fixed-size buffer backing a primitive or
// object array: allocate a mutable buffer of the given size; if an
// initializer lambda is supplied, invoke it once per index in order,
// writing each result. Element is interface{} here because the
// interpreter's Value type lives in package ireval, which itself imports
// hostwrap; elements are stored as ireval.Value under the hood in the
// Elements slice, type-asserted back by the walker.
type ArrayBuffer struct {
	Elements []interface{}
}

// NewArrayBuffer allocates a buffer of the given size with all elements
// set to the supplied zero value.
func NewArrayBuffer(size int, zero interface{}) *ArrayBuffer {
	buf := &ArrayBuffer{Elements: make([]interface{}, size)}
	for i := range buf.Elements {
		buf.Elements[i] = zero
	}
	return buf
}

func (b *ArrayBuffer) Len() int { return len(b.Elements) }

func (b *ArrayBuffer) Get(index int) (interface{}, error) {
	if index < 0 || index >= len(b.Elements) {
		return nil, fmt.Errorf("index %d out of bounds for length %d", index, len(b.Elements))
	}
	return b.Elements[index], nil
}

func (b *ArrayBuffer) Set(index int, v interface{}) error {
	if index < 0 || index >= len(b.Elements) {
		return fmt.Errorf("index %d out of bounds for length %d", index, len(b.Elements))
	}
	b.Elements[index] = v
	return nil
}

func (b *ArrayBuffer) String() string {
	return fmt.Sprintf("array[%d]", len(b.Elements))
}

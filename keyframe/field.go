package keyframe

import "fmt"

// Field reads and replaces one field of a root value. Both functions must be
// pure: set returns a new root and leaves its argument untouched.
type Field[R any, V any] struct {
	name string
	get  func(R) V
	set  func(R, V) R
}

// NewField creates a Field from a getter and setter. It panics if either is
// nil, so a broken accessor fails when the animation is defined rather than
// on some later frame.
func NewField[R any, V any](name string, get func(R) V, set func(R, V) R) Field[R, V] {
	if get == nil || set == nil {
		panic(fmt.Sprintf("keyframe: field %q needs both a getter and a setter", name))
	}

	return Field[R, V]{name: name, get: get, set: set}
}

func (f Field[R, V]) Name() string {
	return f.name
}

func (f Field[R, V]) Get(root R) V {
	return f.get(root)
}

func (f Field[R, V]) Set(root R, value V) R {
	return f.set(root, value)
}

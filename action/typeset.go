package action

import "fmt"

// TypeSet is a closed set of action type tags for one subsystem.
//
// Building a set validates its members: empty tags and duplicates are
// rejected when the set is constructed, not later at dispatch time. The set
// is immutable after construction.
type TypeSet struct {
	types map[Type]struct{}
	order []Type
}

// NewTypeSet builds a TypeSet from the given tags.
//
// Returns an error if the set is empty, if any tag is the empty string, or
// if the same tag appears more than once.
func NewTypeSet(types ...Type) (TypeSet, error) {
	if len(types) == 0 {
		return TypeSet{}, fmt.Errorf("type set cannot be empty")
	}

	set := TypeSet{
		types: make(map[Type]struct{}, len(types)),
		order: make([]Type, 0, len(types)),
	}

	for _, t := range types {
		if t == "" {
			return TypeSet{}, fmt.Errorf("action type cannot be empty")
		}
		if _, exists := set.types[t]; exists {
			return TypeSet{}, fmt.Errorf("duplicate action type: %s", t)
		}
		set.types[t] = struct{}{}
		set.order = append(set.order, t)
	}

	return set, nil
}

// MustTypeSet is like NewTypeSet but panics on invalid input.
//
// Intended for package-level declarations, where a duplicate tag is a
// programming error that should fail at process start:
//
//	var Types = action.MustTypeSet(TypeAdd, TypeToggle)
func MustTypeSet(types ...Type) TypeSet {
	set, err := NewTypeSet(types...)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether t is a member of the set.
func (s TypeSet) Contains(t Type) bool {
	_, exists := s.types[t]
	return exists
}

// Types returns the member tags in declaration order.
func (s TypeSet) Types() []Type {
	out := make([]Type, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of tags in the set.
func (s TypeSet) Len() int {
	return len(s.order)
}

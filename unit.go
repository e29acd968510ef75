package nbgen

import (
	"fmt"
	"strconv"
	"strings"
)

// unitArity is the number of components of a normalized unit
// (chapter.section.subsection).
const unitArity = 3

// Unit is a normalized hierarchical position. It is comparable, so two
// units can be checked for equality with ==.
type Unit [unitArity]int

// ParseUnit normalizes a dotted unit string such as "1.2" or "1.2.3".
// Two components are right-padded with 0; anything other than two or three
// non-negative integers fails with ErrMalformedUnit.
func ParseUnit(s string) (Unit, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Unit{}, fmt.Errorf("%w: %q: component %q is not an integer", ErrMalformedUnit, s, p)
		}
		nums = append(nums, n)
	}

	u, err := NewUnit(nums...)
	if err != nil {
		return Unit{}, fmt.Errorf("%w (input %q)", err, s)
	}
	return u, nil
}

// NewUnit normalizes an already-split unit. It applies the same arity and
// sign rules as ParseUnit.
func NewUnit(parts ...int) (Unit, error) {
	if len(parts) != unitArity && len(parts) != unitArity-1 {
		return Unit{}, fmt.Errorf("%w: want 2 or 3 components, got %d", ErrMalformedUnit, len(parts))
	}

	var u Unit
	for i, n := range parts {
		if n < 0 {
			return Unit{}, fmt.Errorf("%w: component %d is negative (%d)", ErrMalformedUnit, i, n)
		}
		u[i] = n
	}
	return u, nil
}

// String joins the components with dots. It doubles as the section label.
func (u Unit) String() string {
	return strconv.Itoa(u[0]) + "." + strconv.Itoa(u[1]) + "." + strconv.Itoa(u[2])
}

// Compare orders units component by component.
// It returns -1, 0, or +1.
func (u Unit) Compare(other Unit) int {
	for i := range u {
		switch {
		case u[i] < other[i]:
			return -1
		case u[i] > other[i]:
			return 1
		}
	}
	return 0
}

// SPDX-License-Identifier: MIT

package decision

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownHousehold is returned by ParseHousehold for unrecognised names.
var ErrUnknownHousehold = errors.New("decision: unknown household")

// Household enumerates the household configurations.
type Household int

const (
	// HouseholdSingle is a lone individual.
	HouseholdSingle Household = iota
	// HouseholdCouple is an intact couple pooling income.
	HouseholdCouple
	// HouseholdJoint is a divorced couple with joint custody.
	HouseholdJoint
	// HouseholdSole is a divorced couple where the mother holds sole custody.
	HouseholdSole
)

var householdNames = [...]string{"single", "couple", "joint", "sole"}

// Households lists every configuration in declaration order.
func Households() []Household {
	return []Household{HouseholdSingle, HouseholdCouple, HouseholdJoint, HouseholdSole}
}

// String implements fmt.Stringer.
func (h Household) String() string {
	if h < 0 || int(h) >= len(householdNames) {
		return fmt.Sprintf("Household(%d)", int(h))
	}

	return householdNames[h]
}

// ParseHousehold maps a case-insensitive name to a Household.
func ParseHousehold(s string) (Household, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range householdNames {
		if n == name {
			return Household(i), nil
		}
	}

	return 0, fmt.Errorf("ParseHousehold(%q): %w", s, ErrUnknownHousehold)
}

// Evaluate dispatches to the rule of h. For HouseholdSingle only rw is used
// and moveM is always false.
func Evaluate(h Household, rw, rm, shareW, delta float64) (moveW, moveM bool, err error) {
	switch h {
	case HouseholdSingle:
		return Single(rw), false, nil
	case HouseholdCouple:
		moveW, moveM = Couple(rw, rm)
	case HouseholdJoint:
		moveW, moveM = JointCustody(rw, rm, shareW, delta)
	case HouseholdSole:
		moveW, moveM = SoleCustody(rw, rm, shareW, delta)
	default:
		return false, false, fmt.Errorf("Evaluate(%v): %w", h, ErrUnknownHousehold)
	}

	return moveW, moveM, nil
}

// SPDX-License-Identifier: MIT

package decision

// Single reports whether a lone individual with net return r migrates.
func Single(r float64) bool {
	return r > 0
}

// Couple returns the joint decision of an intact couple with transferable
// utility: the household moves iff the summed return is positive.
func Couple(rw, rm float64) (moveW, moveM bool) {
	move := (rw + rm) > 0

	return move, move
}

// JointCustody returns the decisions of separated parents sharing custody,
// shareW being the mother's fraction of time with the child.
//
// If both parents gain from moving they both move. Only otherwise is each
// parent checked against the custody time they would give up.
func JointCustody(rw, rm, shareW, delta float64) (moveW, moveM bool) {
	if rw > 0 && rm > 0 {
		return true, true
	}

	// father benefits enough to move without the child
	if rm > (1.0-shareW)*delta {
		moveM = true
	}
	// mother benefits enough to move without the child
	if rw > shareW*delta {
		moveW = true
	}

	return moveW, moveM
}

// SoleCustody returns the decisions when the mother holds sole custody and
// the child follows her.
func SoleCustody(rw, rm, shareW, delta float64) (moveW, moveM bool) {
	moveW = rw > 0

	shareFather := (1.0 - shareW) * delta
	if moveW {
		// staying behind would cost him the time with the child
		moveM = rm > -shareFather
	} else {
		moveM = rm > shareFather
	}

	return moveW, moveM
}

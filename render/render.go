// SPDX-License-Identifier: MIT

// Package render draws decision regions of a solved model as a character map.
//
// Rows run over the mother's return (highest at the top), columns over the
// father's return (lowest at the left). Each cell shows:
//
//	B  both parents move
//	W  only the mother moves
//	M  only the father moves
//	.  nobody moves
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/relocate/decision"
	"github.com/katalvlaran/relocate/grid"
	"github.com/katalvlaran/relocate/table"
)

// ErrNoMap is returned for households without a two-parent map (single).
var ErrNoMap = errors.New("render: household has no decision map")

var (
	styleBoth   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	styleMother = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7"))
	styleFather = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	styleNone   = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	styleTitle  = lipgloss.NewStyle().Bold(true).Underline(true)
	styleAxis   = lipgloss.NewStyle().Faint(true)
)

// Cell returns the map symbol for a decision pair.
func Cell(moveW, moveM bool) byte {
	switch {
	case moveW && moveM:
		return 'B'
	case moveW:
		return 'W'
	case moveM:
		return 'M'
	default:
		return '.'
	}
}

func styled(c byte) string {
	s := string(c)
	switch c {
	case 'B':
		return styleBoth.Render(s)
	case 'W':
		return styleMother.Render(s)
	case 'M':
		return styleFather.Render(s)
	default:
		return styleNone.Render(s)
	}
}

// lookup returns the decision pair of household h at (iShare, iRw, iRm).
func lookup(h decision.Household, sol *table.Solution, iShare, iRw, iRm int) (w, m bool, err error) {
	switch h {
	case decision.HouseholdCouple:
		if w, err = sol.CoupleW.At(iRw, iRm); err != nil {
			return
		}
		m, err = sol.CoupleM.At(iRw, iRm)
	case decision.HouseholdJoint:
		if w, err = sol.JointW.At(iShare, iRw, iRm); err != nil {
			return
		}
		m, err = sol.JointM.At(iShare, iRw, iRm)
	case decision.HouseholdSole:
		if w, err = sol.SoleW.At(iShare, iRw, iRm); err != nil {
			return
		}
		m, err = sol.SoleM.At(iShare, iRw, iRm)
	default:
		err = fmt.Errorf("Map(%v): %w", h, ErrNoMap)
	}

	return w, m, err
}

// Map writes the decision map of h at custody share index iShare (ignored
// for couples) to w.
// Complexity: O(NumR²).
func Map(w io.Writer, h decision.Household, space *grid.Space, sol *table.Solution, iShare int) error {
	r := space.R.Values()
	n := len(r)

	title := fmt.Sprintf("%s household", h)
	if h != decision.HouseholdCouple {
		share, err := space.Share.At(iShare)
		if err != nil {
			return fmt.Errorf("Map: %w", err)
		}
		title += fmt.Sprintf(", mother's share %.3g", share)
	}

	var sb strings.Builder
	sb.WriteString(styleTitle.Render(title))
	sb.WriteByte('\n')
	for iRw := n - 1; iRw >= 0; iRw-- {
		sb.WriteString(styleAxis.Render(fmt.Sprintf("%8.2f ", r[iRw])))
		for iRm := 0; iRm < n; iRm++ {
			mw, mm, err := lookup(h, sol, iShare, iRw, iRm)
			if err != nil {
				return err
			}
			sb.WriteString(styled(Cell(mw, mm)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(styleAxis.Render(fmt.Sprintf("%8s Rm %.2f .. %.2f, rows Rw", "", space.R.Min(), space.R.Max())))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return err
}

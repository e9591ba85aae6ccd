// SPDX-License-Identifier: MIT

// Package report condenses a solved model into per-household move statistics
// and encodes them as YAML or JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relocate/decision"
	"github.com/katalvlaran/relocate/grid"
	"github.com/katalvlaran/relocate/model"
	"github.com/katalvlaran/relocate/table"
)

// ErrUnknownFormat is returned by Encode for formats other than yaml/json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names accepted by Encode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Counts tallies moving cells for one household.
type Counts struct {
	Household string  `yaml:"household" json:"household"`
	Cells     int     `yaml:"cells" json:"cells"`
	MovesW    int     `yaml:"moves_w" json:"moves_w"`
	MovesM    int     `yaml:"moves_m" json:"moves_m"`
	ShareW    float64 `yaml:"share_w" json:"share_w"`
	ShareM    float64 `yaml:"share_m" json:"share_m"`
}

// ShareCounts tallies divorced-household moves at one custody share.
type ShareCounts struct {
	Index  int     `yaml:"index" json:"index"`
	ShareW float64 `yaml:"share_w" json:"share_w"`
	JointW int     `yaml:"joint_w" json:"joint_w"`
	JointM int     `yaml:"joint_m" json:"joint_m"`
	SoleW  int     `yaml:"sole_w" json:"sole_w"`
	SoleM  int     `yaml:"sole_m" json:"sole_m"`
}

// Summary is the encodable digest of one run.
type Summary struct {
	RunID     uuid.UUID     `yaml:"run_id" json:"run_id"`
	CreatedAt time.Time     `yaml:"created_at" json:"created_at"`
	Params    model.Params  `yaml:"params" json:"params"`
	GridR     []float64     `yaml:"grid_r" json:"grid_r"`
	GridShare []float64     `yaml:"grid_share" json:"grid_share"`
	Totals    []Counts      `yaml:"totals" json:"totals"`
	ByShare   []ShareCounts `yaml:"by_share" json:"by_share"`
}

func counts(h decision.Household, cells, w, m int) Counts {
	c := Counts{Household: h.String(), Cells: cells, MovesW: w, MovesM: m}
	if cells > 0 {
		c.ShareW = float64(w) / float64(cells)
		c.ShareM = float64(m) / float64(cells)
	}

	return c
}

// Summarize tallies every table of sol. space must be the grid sol was solved on.
// Complexity: O(NumR²·NumShare).
func Summarize(runID uuid.UUID, createdAt time.Time, p model.Params, space *grid.Space, sol *table.Solution) Summary {
	shape := sol.Shape()
	pairs := shape.NumR * shape.NumR
	divorced := pairs * shape.NumShare

	s := Summary{
		RunID:     runID,
		CreatedAt: createdAt,
		Params:    p,
		GridR:     space.R.Values(),
		GridShare: space.Share.Values(),
		Totals: []Counts{
			counts(decision.HouseholdSingle, shape.NumR, sol.Single.Count(), 0),
			counts(decision.HouseholdCouple, pairs, sol.CoupleW.Count(), sol.CoupleM.Count()),
			counts(decision.HouseholdJoint, divorced, sol.JointW.Count(), sol.JointM.Count()),
			counts(decision.HouseholdSole, divorced, sol.SoleW.Count(), sol.SoleM.Count()),
		},
		ByShare: make([]ShareCounts, shape.NumShare),
	}
	for i, share := range s.GridShare {
		s.ByShare[i] = ShareCounts{
			Index:  i,
			ShareW: share,
			JointW: sol.JointW.CountLayer(i),
			JointM: sol.JointM.CountLayer(i),
			SoleW:  sol.SoleW.CountLayer(i),
			SoleM:  sol.SoleM.CountLayer(i),
		}
	}

	return s
}

// Encode writes s to w in the given format.
func Encode(w io.Writer, format string, s Summary) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("Encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("Encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Encode(%q): %w", format, ErrUnknownFormat)
	}
}

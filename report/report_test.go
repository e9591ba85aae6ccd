package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relocate/model"
	"github.com/katalvlaran/relocate/report"
	"github.com/katalvlaran/relocate/sweep"
)

func solved(t *testing.T) *model.Model {
	t.Helper()
	p := model.DefaultParams()
	p.NumR, p.MinR, p.MaxR, p.NumShare = 5, -2, 2, 3
	m, err := model.New(p)
	require.NoError(t, err)
	require.NoError(t, m.Solve(context.Background(), sweep.WithLogger(slog.New(slog.DiscardHandler))))

	return m
}

func TestSummarize_CountsMatchTables(t *testing.T) {
	m := solved(t)
	id := uuid.New()
	s := report.Summarize(id, time.Unix(0, 0).UTC(), m.Params, m.Space, m.Sol)

	assert.Equal(t, id, s.RunID)
	assert.Equal(t, []float64{-2, -1, 0, 1, 2}, s.GridR)
	assert.Equal(t, []float64{0, 0.5, 1}, s.GridShare)
	require.Len(t, s.Totals, 4)

	single := s.Totals[0]
	assert.Equal(t, "single", single.Household)
	assert.Equal(t, 2, single.MovesW)
	assert.InDelta(t, 0.4, single.ShareW, 1e-12)

	couple := s.Totals[1]
	assert.Equal(t, 25, couple.Cells)
	assert.Equal(t, m.Sol.CoupleW.Count(), couple.MovesW)
	assert.Equal(t, couple.MovesW, couple.MovesM)
	// pairs with positive sum on [-2..2]²: 10
	assert.Equal(t, 10, couple.MovesW)

	joint, sole := s.Totals[2], s.Totals[3]
	assert.Equal(t, 75, joint.Cells)
	assert.Equal(t, m.Sol.JointM.Count(), joint.MovesM)
	assert.Equal(t, m.Sol.SoleW.Count(), sole.MovesW)

	var sumSole int
	for _, bs := range s.ByShare {
		sumSole += bs.SoleM
	}
	assert.Equal(t, sole.MovesM, sumSole)
}

func TestEncode(t *testing.T) {
	m := solved(t)
	s := report.Summarize(uuid.New(), time.Now().UTC(), m.Params, m.Space, m.Sol)

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf, report.FormatJSON, s))
	var back report.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, s.Totals, back.Totals)

	buf.Reset()
	require.NoError(t, report.Encode(&buf, report.FormatYAML, s))
	var generic map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &generic))
	assert.Contains(t, generic, "totals")
	assert.Contains(t, buf.String(), "household: couple")

	assert.ErrorIs(t, report.Encode(&buf, "xml", s), report.ErrUnknownFormat)
}

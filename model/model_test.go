package model_test

import (
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/relocate/grid"
	"github.com/katalvlaran/relocate/model"
	"github.com/katalvlaran/relocate/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := model.DefaultParams()
	assert.Equal(t, 1.0, p.Delta)
	assert.Equal(t, 100, p.NumR)
	assert.Equal(t, -20.0, p.MinR)
	assert.Equal(t, 20.0, p.MaxR)
	assert.Equal(t, 20, p.NumShare)
	assert.Equal(t, 0.0, p.MinShare)
	assert.Equal(t, 1.0, p.MaxShare)
	require.NoError(t, p.Validate())
}

func TestParams_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Params)
		want   error
	}{
		{"zero num_r", func(p *model.Params) { p.NumR = 0 }, grid.ErrInvalidGridSpec},
		{"zero num_share", func(p *model.Params) { p.NumShare = 0 }, grid.ErrInvalidGridSpec},
		{"inverted r", func(p *model.Params) { p.MinR, p.MaxR = 5, -5 }, grid.ErrInvalidGridSpec},
		{"inverted share", func(p *model.Params) { p.MinShare, p.MaxShare = 1, 0 }, grid.ErrInvalidGridSpec},
		{"nan bound", func(p *model.Params) { p.MaxR = math.NaN() }, grid.ErrInvalidGridSpec},
		{"negative delta", func(p *model.Params) { p.Delta = -1 }, model.ErrInvalidParams},
		{"infinite delta", func(p *model.Params) { p.Delta = math.Inf(1) }, model.ErrInvalidParams},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.DefaultParams()
			tc.mutate(&p)
			_, err := model.New(p)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestModel_Lifecycle(t *testing.T) {
	p := model.DefaultParams()
	p.NumR, p.NumShare = 11, 3

	m, err := model.New(p)
	require.NoError(t, err)
	assert.Nil(t, m.Sol)
	assert.False(t, m.Solved())

	require.NoError(t, m.Solve(context.Background(), sweep.WithLogger(slog.New(slog.DiscardHandler))))
	assert.True(t, m.Solved())
	require.NotNil(t, m.Space)
	assert.Equal(t, 11, m.Space.R.Len())
	assert.Equal(t, 3, m.Sol.JointW.Layers())

	// grid [-20..20] step 4 has five strictly positive returns
	assert.Equal(t, 5, m.Sol.Single.Count())
}

// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/relocate/model"
	"github.com/katalvlaran/relocate/table"
)

// timeLayout is fixed-width so created_at sorts lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one persisted solve.
type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Params    model.Params
	Solution  *table.Solution
}

// RunInfo is the listing view of a Run.
type RunInfo struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Params    model.Params
}

type counted interface {
	encoding.BinaryMarshaler
	Count() int
}

type namedTable struct {
	name string
	tbl  counted
}

// tablesOf lists the tables of sol under their stored names.
func tablesOf(sol *table.Solution) []namedTable {
	return []namedTable{
		{"single", sol.Single},
		{"couple_w", sol.CoupleW},
		{"couple_m", sol.CoupleM},
		{"joint_w", sol.JointW},
		{"joint_m", sol.JointM},
		{"sole_w", sol.SoleW},
		{"sole_m", sol.SoleM},
	}
}

// SaveRun writes the run and its tables in one transaction.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	if run.Solution == nil {
		return fmt.Errorf("SaveRun %s: nil solution", run.ID)
	}
	params, err := json.Marshal(run.Params)
	if err != nil {
		return fmt.Errorf("SaveRun %s: params: %w", run.ID, err)
	}

	return withTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (id, created_at, params) VALUES (?, ?, ?)`,
			run.ID.String(), run.CreatedAt.UTC().Format(timeLayout), string(params),
		); err != nil {
			return fmt.Errorf("SaveRun %s: insert run: %w", run.ID, err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO decision_tables (run_id, name, cells, moves) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, nt := range tablesOf(run.Solution) {
			blob, err := nt.tbl.MarshalBinary()
			if err != nil {
				return fmt.Errorf("SaveRun %s: encode %s: %w", run.ID, nt.name, err)
			}
			if _, err := stmt.ExecContext(ctx, run.ID.String(), nt.name, blob, nt.tbl.Count()); err != nil {
				return fmt.Errorf("SaveRun %s: insert %s: %w", run.ID, nt.name, err)
			}
		}
		return nil
	})
}

// LoadRun reads a run and decodes its tables.
func (s *Store) LoadRun(ctx context.Context, id uuid.UUID) (Run, error) {
	run := Run{ID: id, Solution: &table.Solution{
		Single:  &table.Vector{},
		CoupleW: &table.Matrix{},
		CoupleM: &table.Matrix{},
		JointW:  &table.Tensor{},
		JointM:  &table.Tensor{},
		SoleW:   &table.Tensor{},
		SoleM:   &table.Tensor{},
	}}

	var createdAt, params string
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, params FROM runs WHERE id = ?`, id.String(),
	).Scan(&createdAt, &params)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("LoadRun %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("LoadRun %s: %w", id, err)
	}
	if run.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return Run{}, fmt.Errorf("LoadRun %s: created_at: %w", id, err)
	}
	if err := json.Unmarshal([]byte(params), &run.Params); err != nil {
		return Run{}, fmt.Errorf("LoadRun %s: params: %w", id, err)
	}

	targets := map[string]encoding.BinaryUnmarshaler{
		"single":   run.Solution.Single,
		"couple_w": run.Solution.CoupleW,
		"couple_m": run.Solution.CoupleM,
		"joint_w":  run.Solution.JointW,
		"joint_m":  run.Solution.JointM,
		"sole_w":   run.Solution.SoleW,
		"sole_m":   run.Solution.SoleM,
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, cells FROM decision_tables WHERE run_id = ?`, id.String())
	if err != nil {
		return Run{}, fmt.Errorf("LoadRun %s: tables: %w", id, err)
	}
	defer rows.Close()

	seen := 0
	for rows.Next() {
		var (
			name string
			blob []byte
		)
		if err := rows.Scan(&name, &blob); err != nil {
			return Run{}, fmt.Errorf("LoadRun %s: scan: %w", id, err)
		}
		dst, ok := targets[name]
		if !ok {
			continue
		}
		if err := dst.UnmarshalBinary(blob); err != nil {
			return Run{}, fmt.Errorf("LoadRun %s: decode %s: %w", id, name, err)
		}
		seen++
	}
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("LoadRun %s: %w", id, err)
	}
	if seen != len(targets) {
		return Run{}, fmt.Errorf("LoadRun %s: %d of %d tables: %w", id, seen, len(targets), table.ErrCorrupt)
	}

	return run, nil
}

// ListRuns returns stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, params FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListRuns: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var id, createdAt, params string
		if err := rows.Scan(&id, &createdAt, &params); err != nil {
			return nil, fmt.Errorf("ListRuns: scan: %w", err)
		}
		info := RunInfo{}
		if info.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("ListRuns: id %q: %w", id, err)
		}
		if info.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("ListRuns: created_at: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &info.Params); err != nil {
			return nil, fmt.Errorf("ListRuns: params: %w", err)
		}
		out = append(out, info)
	}

	return out, rows.Err()
}

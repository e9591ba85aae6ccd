// SPDX-License-Identifier: MIT

// Package relocate computes who migrates in families with children, from
// closed-form threshold rules evaluated over a discretized state space.
//
// 🚀 What is relocate?
//
//	For every combination of the mother's net return to moving (Rw), the
//	father's (Rm) and the mother's custody share, relocate decides whether
//	each parent migrates in three household configurations:
//		• Couple        — income pooling; both move iff Rw + Rm > 0
//		• Joint custody — parents weigh their custody time against the return
//		• Sole custody  — the child follows the mother; the father may follow at a loss
//
// ✨ Why relocate?
//
//   - Typed parameters and tables, no attribute bags
//   - Deterministic, allocation-once sweep, parallel across rows
//   - Pure rules you can call on their own (package decision)
//
// Packages:
//
//	grid/     — evenly spaced R and custody-share axes
//	decision/ — the Single, Couple, JointCustody and SoleCustody rules
//	table/    — fixed-shape boolean decision tables
//	sweep/    — exhaustive, parallel evaluation into a table.Solution
//	model/    — validated Params and the New → Allocate → Solve lifecycle
//	config/   — defaults, file and RELOCATE_* env configuration
//	metrics/  — Prometheus instrumentation of the sweep
//	report/   — YAML/JSON summaries of a solved run
//	store/    — SQLite persistence of runs
//	render/   — terminal maps of decision regions
//
// Quick example:
//
//	m, _ := model.New(model.DefaultParams())
//	_ = m.Solve(ctx)
//	move, _ := m.Sol.SoleM.At(iShare, iRw, iRm)
//
//	go install github.com/katalvlaran/relocate/cmd/relocate@latest
package relocate

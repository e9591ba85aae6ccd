// SPDX-License-Identifier: MIT

// Package sweep evaluates every decision rule over the whole state space
// and fills a table.Solution.
//
// Algorithm:
//
//	for iRw in R:
//	  for iRm in R:
//	    couple[iRw,iRm] = Couple(R[iRw], R[iRm])
//	    for iShare in Share:
//	      joint[iShare,iRw,iRm] = JointCustody(R[iRw], R[iRm], Share[iShare], δ)
//	      sole[iShare,iRw,iRm]  = SoleCustody(R[iRw], R[iRm], Share[iShare], δ)
//
// Every write target is disjoint, so rows (iRw) are handed to a bounded
// errgroup and joined once; no locks are taken. Work is O(NumR²·NumShare).
//
// Options:
//
//	WithWorkers(n)  — parallel rows; 1 runs serially. Default GOMAXPROCS.
//	WithLogger(l)   — *slog.Logger for run boundaries (Info) and rows (Debug).
//	WithMetrics(m)  — Prometheus sink, see package metrics.
package sweep

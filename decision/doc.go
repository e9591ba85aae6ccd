// SPDX-License-Identifier: MIT

// Package decision holds the myopic migration rules of the model.
//
// Every rule is a pure, total function of grid values (never indices):
//
//	Single(R)                          move iff R > 0
//	Couple(Rw, Rm)                     both move iff Rw + Rm > 0 (income pooling)
//	JointCustody(Rw, Rm, share, δ)     both move if Rw > 0 and Rm > 0; otherwise
//	                                   father iff Rm > (1-share)·δ,
//	                                   mother iff Rw > share·δ
//	SoleCustody(Rw, Rm, share, δ)      mother iff Rw > 0 (child follows her);
//	                                   father iff Rm > -(1-share)·δ when she moves,
//	                                   Rm > (1-share)·δ when she stays
//
// share is the mother's fraction of time with the child and δ the value of
// that time. The rules never fail; share outside [0,1] is still well defined.
package decision

// SPDX-License-Identifier: MIT

// Package experiment runs randomized checks of algebraic laws on top of
// package linalg and summarizes each run in a Report.
//
// Each experiment is a named sequence of independent trials. A trial draws
// fresh random operands, applies the law under test and records whether it
// held within linalg.DefaultTolerance. Some laws hold always
// (distributivity, trace linearity, symmetric closure under + and ⊙); others
// are there to show that they do not (symmetric closure under ×).
//
// Experiments:
//
//	distributivity      k(M1+M2) == kM1 + kM2
//	trace-linearity     tr(M1+M2) == tr M1 + tr M2 and tr(kM) == k·tr M
//	symmetric-add       S1 + S2 is symmetric
//	symmetric-mul       S1 × S2 is symmetric
//	symmetric-hadamard  S1 ⊙ S2 is symmetric
//	dot-commutativity   a·b == b·a
//	dot-sign            scaling both operands keeps the sign of a·b;
//	                    scaling one flips it exactly when k < 0
//	identity            M × I == I × M == M
//	circle-transform    unit-circle points post-multiplied by T stay on the
//	                    image ellipse
//
// Use Names and Lookup to inspect the registry, Run for one experiment and
// RunAll to run several concurrently. Reports encode to YAML with
// EncodeYAML. Configuration comes from Config (DefaultConfig, ParseConfig,
// LoadConfig) and is checked by Config.Validate.
//
// The package never logs; all failures are returned as errors.
package experiment

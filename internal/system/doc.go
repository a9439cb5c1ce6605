// Package system implements the interacting particle system: pairwise
// force accumulation from a pair potential, energy and momentum
// accounting, and initial-condition builders.
package system

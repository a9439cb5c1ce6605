// Package analysis provides post-run trajectory analysis: radial
// distribution functions, mean-square displacement, per-frame energy
// decomposition, and phase-space portraits.
package analysis

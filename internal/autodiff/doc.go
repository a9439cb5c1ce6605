// Package autodiff implements forward-mode automatic differentiation
// over dual numbers.
//
// A scalar function written against [Dual] arithmetic yields exact
// first derivatives in a single evaluation, with no finite-difference
// truncation error. The potential package uses this to derive forces
// from pair potentials: F(r) = -dV/dr.
package autodiff

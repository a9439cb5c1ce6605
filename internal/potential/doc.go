// Package potential defines scalar pair potentials and their exact
// derivatives.
//
// Every potential is written once as a dual-number formula; the force
// law F(r) = -dV/dr is obtained by automatic differentiation rather
// than a hand-derived (and hand-maintained) expression.
package potential

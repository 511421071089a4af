// Package collisions computes inter-species Coulomb collision
// frequencies and the shared Coulomb logarithm they depend on.
//
// Three published parameterizations of the collision frequency of a
// species pair are provided as [Variant] values (Hellinger 2009, 2010
// and 2016), dispatched through [Frequency]. All formulas are
// closed-form evaluations over validated scalar inputs; the 2010 and
// 2016 variants additionally use Gauss hypergeometric corrections for
// temperature anisotropy.
//
// The 2016 parameterization is provisional: the upstream description
// of its drift-speed correction is incomplete, and the implementation
// here follows the literature form documented in DESIGN.md.
package collisions

// Package vector implements the three-dimensional vector algebra shared by
// the electromagnetism evaluators: magnitude, normalization, subtraction,
// addition, cross product and scalar scaling over [Vector3D].
//
// All arithmetic is plain IEEE-754 double precision. Nothing is rounded,
// clamped or compared against a tolerance, so identical inputs evaluated in
// the same order produce bit-identical results. Degenerate inputs are not
// guarded: [Normalize] of the zero vector returns NaN components.
package vector

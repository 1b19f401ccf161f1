// Package funcparse compiles short arithmetic formulas over complex numbers,
// like "z*z+c", into syntax trees and evaluates them repeatedly against
// caller-mutable variable bindings.
//
// The grammar knows five binary operators (+ - * / ^), thirteen unary
// functions, the imaginary unit i, the parameter c, and the iteration
// variables z, z1, z2, …. All operators, including ^, associate to the left:
// "2^3^2" is "(2^3)^2". Unary minus is not an operator; a leading '-' is part
// of a number literal.
//
// A formula is parsed once and evaluated many times. The Evaluator binds the
// tree to mutable variable slots under a chosen number system, so the typical
// loop of an iterative process writes a slot, evaluates, and repeats without
// touching the parser again.
package funcparse

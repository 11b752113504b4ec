// Package minilogic implements a small propositional logic kernel.
//
// Formulas are built from variables, the constants true and false, and the
// connectives not, and, or and => (implication). The package provides:
//   - evaluation of a formula against variable bindings
//   - truth tables over all assignments of a formula's variables
//   - exhaustive equivalence checking with counterexamples
//   - normalization into negation normal form
//
// Enumeration is limited to MaxTableVars variables; beyond that,
// equivalence is reported as Unknown.
package minilogic

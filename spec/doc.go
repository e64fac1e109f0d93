// Package spec is the object model for Upgrade Spec Language (USL) trees.
//
// A tree is made of Nodes, each with at most one outgoing Relation. A
// Relation fans out to Multiplicity successors, either exclusively (pick
// one) or inclusively (any combination), and either consistently (one
// shared successor node standing for all of them) or divergently (one
// independent subtree per successor).
//
// Trees are built once, with a Builder or by the uslparser package, and are
// read-only afterwards. Equality is structural and String renders USL text
// that parses back to an equal tree.
package spec

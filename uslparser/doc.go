// Package uslparser parses Upgrade Spec Language (USL) text into spec trees.
//
// USL describes branching upgrade paths. All whitespace is ignored. The
// grammar is:
//
//	spec       := nodeSpec (relSpec? "->" target)*
//	target     := nodeSpec | branchSpec
//	nodeSpec   := name                        ; no '{' '}' '(' ')' ',' '-' '>'
//	relSpec    := "{" digit combo structure "}"
//	branchSpec := "(" spec ("," spec)* ")"
//
// digit is 1-9, combo is X (exclusive) or I (inclusive), and structure is C
// (the target is one node standing for all digit successors) or D (the
// target is a branch of exactly digit sub-specs). A relation without a spec
// is {1XC}. A relation spec after a branch applies to the tip of every
// branch:
//
//	A {2XD}-> (B, C) -> D
//
// gives both B and C a D successor.
//
// The parser is recursive descent over the stripped text, using the scan
// package to find matching parentheses and top-level commas.
//
// Usage:
//
//	root, err := uslparser.Parse("A -> B {2IC}-> C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(root)
package uslparser

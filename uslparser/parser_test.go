package uslparser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmrman99/treespec/spec"
)

func assertTree(t *testing.T, want *spec.Node, src string) {
	t.Helper()
	got, err := Parse(src)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(%q) mismatch (-want +got):\n%s\nwant: %+v\ngot:  %+v", src, diff, want, got)
	}
}

func assertKind(t *testing.T, kind Kind, src string) *ParseError {
	t.Helper()
	root, err := Parse(src)
	assert.Nil(t, root)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, kind, pe.Kind, "Parse(%q): %v", src, err)
	assert.True(t, errors.Is(err, kind))
	assert.Equal(t, src, pe.Input)
	return pe
}

func TestParseEmpty(t *testing.T) {
	root, err := Parse("")
	require.NoError(t, err)
	assert.Nil(t, root)

	root, err = Parse(" \t\n ")
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestParseOne(t *testing.T) {
	assertTree(t, spec.NewNode("a"), "a")
}

func TestParseTwo(t *testing.T) {
	assertTree(t, spec.NewBuilder("a").Default().Node("b").Root(), "a->b")
}

func TestParseExplicitDefaultRelationSpec(t *testing.T) {
	want := spec.NewBuilder("a").Default().Node("b").Root()
	assertTree(t, want, "a{1XC}->b")

	implicit, err := Parse("a->b")
	require.NoError(t, err)
	explicit, err := Parse("a{1XC}->b")
	require.NoError(t, err)
	assert.True(t, implicit.Equal(explicit))
}

func TestParseConsistent(t *testing.T) {
	assertTree(t, spec.NewBuilder("a").To(2, spec.Exclusive).Node("b").Root(), "a{2XC}->b")

	root, err := Parse("a{2XC}->b")
	require.NoError(t, err)
	rel := root.Relation()
	assert.Equal(t, 2, rel.Multiplicity())
	assert.False(t, rel.Inclusive())
	assert.Equal(t, spec.Consistent, rel.Structure())
	targets := rel.Targets()
	require.Len(t, targets, 2)
	assert.Same(t, targets[0], targets[1])
}

func TestParseConsistentInclusive(t *testing.T) {
	assertTree(t, spec.NewBuilder("a").To(2, spec.Inclusive).Node("b").Root(), "a{2IC}->b")
}

func TestParseDivergent(t *testing.T) {
	want := spec.NewBuilder("a").
		To(2, spec.Exclusive).Branch(spec.NewBuilder("b"), spec.NewBuilder("b")).
		Root()
	assertTree(t, want, "a{2XD}->(b,b)")

	root, err := Parse("a{2XD}->(b,b)")
	require.NoError(t, err)
	branches := root.Relation().Branches()
	require.Len(t, branches, 2)
	assert.NotSame(t, branches[0], branches[1])
}

func TestParseDivergentInclusive(t *testing.T) {
	want := spec.NewBuilder("a").
		To(2, spec.Inclusive).Branch(spec.NewBuilder("b"), spec.NewBuilder("b")).
		Root()
	assertTree(t, want, "a{2ID}->(b,b)")
}

func TestParseComplexConsistent(t *testing.T) {
	want := spec.NewBuilder("L0").
		To(3, spec.Inclusive).Node("L1").
		Default().Node("L2").
		To(2, spec.Exclusive).Node("L3").
		Default().Node("L4").
		Root()
	assertTree(t, want, "L0 {3IC}-> L1 -> L2 {2XC}-> L3 -> L4")
}

func TestParseComplexDivergent(t *testing.T) {
	want := spec.NewBuilder("L0").
		Default().Node("L1").
		To(2, spec.Inclusive).Branch(
			spec.NewBuilder("L2").Default().Node("L3"),
			spec.NewBuilder("L2").To(2, spec.Inclusive).Branch(
				spec.NewBuilder("L3").Default().Node("L4"),
				spec.NewBuilder("L3").Default().Node("L4").
					To(2, spec.Exclusive).Node("L5").
					Default().Node("L6"),
			),
		).
		Root()
	assertTree(t, want, "L0 -> L1 {2ID}-> (L2 -> L3, L2 {2ID}-> (L3 -> L4, L3 -> L4 {2XC}-> L5 -> L6))")
}

func TestParseBranchContinuation(t *testing.T) {
	want := spec.NewBuilder("a").
		To(2, spec.Exclusive).Branch(spec.NewBuilder("b"), spec.NewBuilder("c")).
		Default().Node("d").
		Root()
	assertTree(t, want, "a {2XD}-> (b, c) -> d")

	root, err := Parse("a{2XD}->(b,c)->d")
	require.NoError(t, err)
	branches := root.Relation().Branches()
	require.Len(t, branches, 2)
	for _, b := range branches {
		require.NotNil(t, b.Relation(), "branch %s", b.Name())
		assert.Equal(t, "d", b.Relation().Target().Name())
	}
	assert.Same(t, branches[0].Relation(), branches[1].Relation())
}

func TestParseBranchContinuationWithRelationSpec(t *testing.T) {
	want := spec.NewBuilder("a").
		To(2, spec.Inclusive).Branch(spec.NewBuilder("b"), spec.NewBuilder("c").Default().Node("e")).
		To(3, spec.Exclusive).Node("d").
		Root()
	assertTree(t, want, "a{2ID}->(b, c->e){3XC}->d")
}

func TestParseBranchInsideConsistentChain(t *testing.T) {
	want := spec.NewBuilder("a").
		Default().Node("b").
		To(2, spec.Exclusive).Branch(
			spec.NewBuilder("c").Default().Node("d"),
			spec.NewBuilder("e"),
		).
		Root()
	assertTree(t, want, "a->b{2XD}->(c->d,e)")
}

func TestParseStripsAllWhitespace(t *testing.T) {
	want := spec.NewBuilder("v1").To(2, spec.Inclusive).Node("v2").Root()
	assertTree(t, want, "v 1\t{2 I C}\n-> v2")
}

func TestParseBuilderCanBeExtended(t *testing.T) {
	b, err := ParseBuilder("a{2XD}->(b,c)")
	require.NoError(t, err)
	require.NotNil(t, b)

	root := b.Default().Node("d").Root()
	assert.Equal(t, "a{2XD}->(b->d, c->d)", root.String())

	b, err = ParseBuilder("")
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"->", DanglingRelation},
		{"a->", DanglingRelation},
		{"->a", DanglingRelation},
		{"a->->b", DanglingRelation},
		{"a{2XC}->", RelationSpecWithoutRelation},
		{"a->b{1IC}->", RelationSpecWithoutRelation},
		{"a{2XD}->(b,c){2XC}->", RelationSpecWithoutRelation},
		{"a{1}->b", MalformedRelationSpec},
		{"a{}->b", MalformedRelationSpec},
		{"a{1XCX}->b", MalformedRelationSpec},
		{"a{0XC}->b", MalformedRelationSpec},
		{"a{2QC}->b", MalformedRelationSpec},
		{"a{2XQ}->b", MalformedRelationSpec},
		{"a}->b", MalformedRelationSpec},
		{"a{1IC->b", UnterminatedRelationSpec},
		{"a{1IC->b{1IC}->c", UnterminatedRelationSpec},
		{"a{2XD}->(b,c", UnterminatedBranch},
		{"a{2XD}->(b,(c,d)", UnterminatedBranch},
		{"a{2XD}->b", ExpectedBranch},
		{"a{2XD}->(b,c,d)", BranchArity},
		{"a{3ID}->(b,c)", BranchArity},
		{"a{2XC}", RelationSpecWithoutRelation},
		{"a->b{2XC}", RelationSpecWithoutRelation},
		{"a{2XD}->(b,c){2XC}", RelationSpecWithoutRelation},
		{"{2XC}->b", BlankName},
		{"a{2XD}->(b,)", BlankName},
		{"a->(b)", InvalidName},
		{"a-b", InvalidName},
		{"a}b{2XC}->c", InvalidName},
		{"a{2XC}b->c", UnexpectedText},
		{"a{2XD}->(b,c)x->d", UnexpectedText},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assertKind(t, tt.kind, tt.src)
		})
	}
}

func TestParseErrorInNestedBranch(t *testing.T) {
	src := "a{2XD}->(b, c{1}->d)"
	pe := assertKind(t, MalformedRelationSpec, src)
	assert.Equal(t, "{1}", pe.Fragment)
	assert.Contains(t, pe.Error(), src)
}

func TestParseErrorMessage(t *testing.T) {
	pe := assertKind(t, RelationSpecWithoutRelation, "a {2XC}")
	assert.Equal(t, "{2XC}", pe.Fragment)
	assert.Equal(t, `cannot have relation spec without relation: "{2XC}", in: "a {2XC}"`, pe.Error())
	assert.Equal(t, "relation spec without relation", pe.Kind.Error())
}

func TestRelationSpecBeforeEndOfInput(t *testing.T) {
	pe := assertKind(t, RelationSpecWithoutRelation, "a{2XD}->(b,c){2XC}->")
	assert.Equal(t, "{2XC}", pe.Fragment)

	assertKind(t, DanglingRelation, "a{2XD}->(b,c)->")
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a", "a"},
		{"a -> b -> c", "a->b->c"},
		{"a{1XC}->b", "a->b"},
		{"a{2XC}->b", "a{2XC}->b"},
		{"a{1IC}->b", "a{1IC}->b"},
		{"a{1XD}->(b)", "a{1XD}->(b)"},
		{"a{2ID}->(b,c)->d", "a{2ID}->(b->d, c->d)"},
		{
			"L0 -> L1 {2ID}-> (L2 -> L3, L2 {2ID}-> (L3 -> L4, L3 -> L4 {2XC}-> L5 -> L6))",
			"L0->L1{2ID}->(L2->L3, L2{2ID}->(L3->L4, L3->L4{2XC}->L5->L6))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root, err := Parse(tt.src)
			require.NoError(t, err)
			text := root.String()
			assert.Equal(t, tt.want, text)

			again, err := Parse(text)
			require.NoError(t, err)
			assert.True(t, root.Equal(again), "%q does not re-parse to an equal tree", text)
		})
	}
}

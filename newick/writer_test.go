package newick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewickRoundTrip(t *testing.T) {
	cases := []string{
		"(,,(,));",
		"(A,B,(C,D));",
		"(A,B,(C,D)E)F;",
		"(:0.1,:0.2,(:0.3,:0.4):0.5);",
		"(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;",
		"('A;B','C''D')E;",
		"(1[x&dmv={1}]:1.14538397925438,(2[x&dmv={1}]:1.14538397925438,3[xx&dmv={1}]:1.14538397925438)[x&dmv={2}]:1.14538397925438);",
	}
	for _, src := range cases {
		trees, err := ParseString(src)
		require.NoError(t, err)
		assert.Equal(t, src, Format(trees...), "input %q", src)
	}
}

func TestNewickLengthFormatting(t *testing.T) {
	n := &Node{}
	n.SetLength(2.0)
	assert.Equal(t, ":2", n.Newick())
	n.SetLength(0.5)
	assert.Equal(t, ":0.5", n.Newick())
	n.SetLength(0)
	assert.Equal(t, ":0", n.Newick())

	// A "0.0" in the source still parses, but serializes in shortest form.
	root := parseOne(t, "(:0.1,:0.2):0.0;")
	assert.Equal(t, "(:0.1,:0.2):0", root.Newick())
}

func TestNewickCommentPositions(t *testing.T) {
	root := parseOne(t, "(a[x]:2,b)c;")
	assert.Equal(t, "(a[x]:2,b)c", root.Newick())

	root = parseOne(t, "(a:[x]2,b)c;")
	a := root.Descendants()[0]
	require.Len(t, a.Comments, 1)
	assert.True(t, a.Comments[0].AfterColon)
	assert.Equal(t, "(a:[x]2,b)c", root.Newick())

	// Without a length there is no colon to carry an after-colon comment.
	a.ClearLength()
	assert.Equal(t, "(a[x],b)c", root.Newick())
}

func TestNewickCommentsMerged(t *testing.T) {
	root := parseOne(t, "(A,B)C [% ] [% ];")
	assert.Equal(t, "(A,B)C[% |% ]", root.Newick())
}

func TestFormatMultipleTrees(t *testing.T) {
	trees, err := ParseString("A;B;")
	require.NoError(t, err)
	assert.Equal(t, "A;\nB;", Format(trees...))
}

func TestSerializationIdempotent(t *testing.T) {
	src := "[&R] ('A;B':1,(C[x]:[y]2.5,D))'E''F';"
	trees, err := ParseString(src)
	require.NoError(t, err)
	once := Format(trees...)
	again, err := ParseString(once)
	require.NoError(t, err)
	assert.Equal(t, once, Format(again...))
}

func TestNeedsQuoting(t *testing.T) {
	assert.False(t, NeedsQuoting("A-B.C"))
	assert.False(t, NeedsQuoting(""))
	for _, name := range []string{"a b", "a\tb", "a,b", "a:b", "a;b", "a(b", "a)b", "a[b", "a]b", "a'b"} {
		assert.Truef(t, NeedsQuoting(name), "name %q", name)
	}
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "A", Unquote("A"))
	assert.Equal(t, "a b", Unquote("'a b'"))
	assert.Equal(t, "a'b", Unquote("'a''b'"))
	assert.Equal(t, "a'b", Unquote(`'a\'b'`))
	assert.Equal(t, "", Unquote("''"))
	// Not a single well-formed quoted label: returned unchanged.
	assert.Equal(t, "'a'b'", Unquote("'a'b'"))
	assert.Equal(t, "'a", Unquote("'a"))
}

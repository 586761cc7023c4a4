package cubefold_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cubewalk/cubefold"
	"github.com/katalvlaran/cubewalk/gridmap"
)

// DiscoverSuite exercises face discovery on valid and broken nets.
type DiscoverSuite struct {
	suite.Suite
}

// TestSampleNet checks the orientation map of the sample net.
func (s *DiscoverSuite) TestSampleNet() {
	net, err := cubefold.Discover(mustGrid(s.T(), sampleRows...))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, net.FaceWidth())
	require.Equal(s.T(), gridmap.Cell{X: 8, Y: 0}, net.Root())
	require.Len(s.T(), net.Faces(), 6)

	want := map[gridmap.Cell]cubefold.Vec3{
		{X: 8, Y: 0}:  {0, 0, -1},
		{X: 0, Y: 4}:  {0, -1, 0},
		{X: 4, Y: 4}:  {-1, 0, 0},
		{X: 8, Y: 4}:  {0, 1, 0},
		{X: 8, Y: 8}:  {0, 0, 1},
		{X: 12, Y: 8}: {1, 0, 0},
	}
	for anchor, normal := range want {
		got, ok := net.Normal(anchor)
		require.True(s.T(), ok, "face %v not discovered", anchor)
		require.Equal(s.T(), normal, got, "normal of %v", anchor)

		back, ok := net.FaceAt(normal)
		require.True(s.T(), ok)
		require.Equal(s.T(), anchor, back)
	}
	rootRot, ok := net.Orientation(net.Root())
	require.True(s.T(), ok)
	require.Equal(s.T(), cubefold.Identity, rootRot)
}

// TestEveryNormalIsAnAxis checks the bijection onto ±X/±Y/±Z for several nets.
func (s *DiscoverSuite) TestEveryNormalIsAnAxis() {
	for name, rows := range map[string][]string{"sample": sampleRows, "tall": tallRows, "cross": crossRows} {
		net, err := cubefold.Discover(mustGrid(s.T(), rows...))
		require.NoError(s.T(), err, name)

		seen := make(map[cubefold.Vec3]bool)
		for _, a := range net.Faces() {
			n, ok := net.Normal(a)
			require.True(s.T(), ok)
			require.True(s.T(), n.IsAxis(), "%s: %v has normal %v", name, a, n)
			require.False(s.T(), seen[n], "%s: duplicate normal %v", name, n)
			seen[n] = true

			r, _ := net.Orientation(a)
			require.True(s.T(), r.IsOrthonormal())
			require.Equal(s.T(), 1, r.Det())
		}
		require.Len(s.T(), seen, 6, name)
	}
}

// TestRootChoicePreservesGeometry verifies that every pair of faces keeps the
// same angle between normals whichever face is the root.
func (s *DiscoverSuite) TestRootChoicePreservesGeometry() {
	g := mustGrid(s.T(), sampleRows...)
	base, err := cubefold.Discover(g)
	require.NoError(s.T(), err)

	for _, root := range g.Anchors(4) {
		net, err := cubefold.Discover(g, cubefold.WithRoot(root))
		require.NoError(s.T(), err, "root %v", root)
		require.Equal(s.T(), root, net.Root())

		for _, a := range base.Faces() {
			for _, b := range base.Faces() {
				na, _ := base.Normal(a)
				nb, _ := base.Normal(b)
				ma, _ := net.Normal(a)
				mb, _ := net.Normal(b)
				require.Equal(s.T(), na.Dot(nb), ma.Dot(mb), "root %v faces %v/%v", root, a, b)
			}
		}
	}
}

// TestDeterministic runs discovery twice and compares the results.
func (s *DiscoverSuite) TestDeterministic() {
	g := mustGrid(s.T(), tallRows...)
	first, err := cubefold.Discover(g)
	require.NoError(s.T(), err)
	second, err := cubefold.Discover(g)
	require.NoError(s.T(), err)

	require.Equal(s.T(), first.Faces(), second.Faces())
	for _, a := range first.Faces() {
		r1, _ := first.Orientation(a)
		r2, _ := second.Orientation(a)
		require.Equal(s.T(), r1, r2)
	}
}

// TestOnFaceHook checks the hook sees each face once, root first.
func (s *DiscoverSuite) TestOnFaceHook() {
	var visited []gridmap.Cell
	net, err := cubefold.Discover(mustGrid(s.T(), crossRows...),
		cubefold.WithOnFace(func(a gridmap.Cell, _ cubefold.Rotation) { visited = append(visited, a) }))
	require.NoError(s.T(), err)
	require.Equal(s.T(), net.Faces(), visited)
	require.Equal(s.T(), gridmap.Cell{X: 4, Y: 0}, visited[0])
}

// TestFiveBlocks expects an invariant violation when a face is missing.
func (s *DiscoverSuite) TestFiveBlocks() {
	rows := withoutBlock(sampleRows, gridmap.Cell{X: 12, Y: 8}, 4)
	_, err := cubefold.Discover(mustGrid(s.T(), rows...), cubefold.WithFaceWidth(4))
	require.ErrorIs(s.T(), err, cubefold.ErrInvariantViolation)
}

// TestSevenBlocks expects an invariant violation when a face is extra.
func (s *DiscoverSuite) TestSevenBlocks() {
	rows := withBlock(sampleRows, gridmap.Cell{X: 4, Y: 8}, 4)
	_, err := cubefold.Discover(mustGrid(s.T(), rows...), cubefold.WithFaceWidth(4))
	require.ErrorIs(s.T(), err, cubefold.ErrInvariantViolation)
}

// TestStripOfSix rejects six faces in a row: they wrap onto themselves.
func (s *DiscoverSuite) TestStripOfSix() {
	rows := []string{"........................", "........................", "........................", "........................"}
	_, err := cubefold.Discover(mustGrid(s.T(), rows...))
	require.ErrorIs(s.T(), err, cubefold.ErrInvariantViolation)
}

// TestInferredWidthRejectsWrongBlockCount checks that five or seven blocks
// with an inferred width are reported as invariant violations that still
// carry gridmap.ErrFaceWidth.
func (s *DiscoverSuite) TestInferredWidthRejectsWrongBlockCount() {
	cases := map[string][]string{
		"five":  withoutBlock(sampleRows, gridmap.Cell{X: 12, Y: 8}, 4),
		"seven": withBlock(sampleRows, gridmap.Cell{X: 4, Y: 8}, 4),
	}
	for name, rows := range cases {
		_, err := cubefold.Discover(mustGrid(s.T(), rows...))
		require.ErrorIs(s.T(), err, cubefold.ErrInvariantViolation, name)
		require.ErrorIs(s.T(), err, gridmap.ErrFaceWidth, name)
	}
}

// TestExplicitWidthMismatch rejects a width that does not divide the extents.
func (s *DiscoverSuite) TestExplicitWidthMismatch() {
	_, err := cubefold.Discover(mustGrid(s.T(), sampleRows...), cubefold.WithFaceWidth(3))
	require.ErrorIs(s.T(), err, cubefold.ErrInvariantViolation)
	require.ErrorIs(s.T(), err, gridmap.ErrFaceWidth)
}

// TestBadOptions covers nil grid, negative width and misplaced roots.
func (s *DiscoverSuite) TestBadOptions() {
	_, err := cubefold.Discover(nil)
	require.ErrorIs(s.T(), err, cubefold.ErrGridNil)

	g := mustGrid(s.T(), sampleRows...)
	_, err = cubefold.Discover(g, cubefold.WithFaceWidth(-1))
	require.ErrorIs(s.T(), err, cubefold.ErrOptionViolation)

	_, err = cubefold.Discover(g, cubefold.WithFaceWidth(3))
	require.ErrorIs(s.T(), err, gridmap.ErrFaceWidth)
	require.ErrorIs(s.T(), err, cubefold.ErrInvariantViolation)

	_, err = cubefold.Discover(g, cubefold.WithRoot(gridmap.Cell{X: 9, Y: 0}))
	require.ErrorIs(s.T(), err, cubefold.ErrOptionViolation, "not a multiple of W")

	_, err = cubefold.Discover(g, cubefold.WithRoot(gridmap.Cell{X: 0, Y: 0}))
	require.ErrorIs(s.T(), err, cubefold.ErrOptionViolation, "not on the net")
}

func TestDiscoverSuite(t *testing.T) {
	suite.Run(t, new(DiscoverSuite))
}

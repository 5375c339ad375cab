package sysboundary

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimespecCarriesOverflow(t *testing.T) {
	sec, nsec := NormalizeTimespec(10, 1_500_000_000)
	assert.Equal(t, int64(11), sec)
	assert.Equal(t, int64(500_000_000), nsec)
}

func TestNormalizeTimespecBorrowsOnNegative(t *testing.T) {
	sec, nsec := NormalizeTimespec(10, -1)
	assert.Equal(t, int64(9), sec)
	assert.Equal(t, int64(999_999_999), nsec)
}

func TestDeadlineIsInTheFuture(t *testing.T) {
	before := Now()
	sec, nsec := Deadline(5 * time.Second)
	assert.True(t, nsec >= 0 && nsec < int64(time.Second))
	assert.True(t, sec >= before.Unix()+4)
}

func TestCanonicalizeCollapsesDotAndDotDot(t *testing.T) {
	assert.Equal(t, "a/c", canonicalizeComponents("a/b/../c"))
	assert.Equal(t, "a/c", canonicalizeComponents("a/./c"))
	assert.Equal(t, "../b", canonicalizeComponents("../b"))
	assert.Equal(t, "a", canonicalizeComponents("a//"))
}

func TestNormalizePathnameCanonicalize(t *testing.T) {
	got, err := NormalizePathname("a/../b", PathCanonicalize)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	got, err = NormalizePathname("/a//b/./c", PathCanonicalize)
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", got)
}

func TestNormalizePathnameExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := NormalizePathname("~/x", PathExpand)
	require.NoError(t, err)
	assert.Equal(t, ensureTrailingSlash(home)+"x", got)
}

func TestNormalizePathnameAbsolutePrependsCwd(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := NormalizePathname("rel/path", PathAbsolute)
	require.NoError(t, err)
	assert.Equal(t, ensureTrailingSlash(cwd)+"rel/path", got)
}

func TestBasenameDirname(t *testing.T) {
	assert.Equal(t, "c", Basename("/a/b/c"))
	assert.Equal(t, "/a/b", Dirname("/a/b/c"))
	assert.Equal(t, "c", Basename("/a/b/c///"))
	assert.Equal(t, "/", Dirname("/"))
	assert.Equal(t, ".", Dirname("c"))
}

func TestReadDirSkipsDotfilesByDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/visible", []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(dir+"/.hidden", []byte("x"), 0o644))

	names, err := ReadDir(dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"visible"}, names)

	names, err = ReadDir(dir, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"visible", ".hidden"}, names)
}

func TestCPUTimesReturnsNonNegative(t *testing.T) {
	user, system, err := CPUTimes()
	if err != nil {
		t.Skipf("CPU time unsupported on this platform: %v", err)
	}
	assert.True(t, user >= 0)
	assert.True(t, system >= 0)
}

// pkg/executor/executor_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS
// PURPOSE: Test rename run execution, dry-run isolation, and failure policy

package executor_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renum/pkg/errors"
	"github.com/arthur-debert/renum/pkg/executor"
	"github.com/arthur-debert/renum/pkg/pattern"
	"github.com/arthur-debert/renum/pkg/sequence"
	"github.com/arthur-debert/renum/pkg/testutil"
	"github.com/arthur-debert/renum/pkg/types"
)

func mustParse(t *testing.T, s string) *pattern.Pattern {
	t.Helper()
	p, err := pattern.Parse(s)
	require.NoError(t, err)
	return p
}

func TestExecute_DryRun(t *testing.T) {
	// Setup
	fsys := testutil.NewMemoryFS()
	fsys.WriteFile("/p0.txt", []byte("zero"), 0644)
	fsys.WriteFile("/p1.txt", []byte("one"), 0644)
	fsys.WriteFile("/p2.txt", []byte("two"), 0644)
	reads0, writes0 := fsys.Stats()

	exec := executor.New(executor.Options{DryRun: true, FS: fsys})

	// Execute
	report, err := exec.Execute(
		[]string{"/p0.txt", "/p1.txt", "/p2.txt"},
		mustParse(t, "photo-{padded_idx}.jpg"),
		sequence.OrderSequential,
	)

	// Verify
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.True(t, report.DryRun)
	assert.Equal(t, "photo-{padded_idx}.jpg", report.Pattern)
	assert.Equal(t, "sequential", report.Order)

	require.Len(t, report.Items, 3)
	for i, item := range report.Items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, types.StatusPlanned, item.Status)
	}
	assert.Equal(t, "photo-0.jpg", report.Items[0].Dest)
	assert.Equal(t, "photo-1.jpg", report.Items[1].Dest)
	assert.Equal(t, "photo-2.jpg", report.Items[2].Dest)

	// A dry run performs no filesystem operations at all
	reads, writes := fsys.Stats()
	assert.Equal(t, reads0, reads)
	assert.Equal(t, writes0, writes)
	assert.True(t, fsys.Exists("/p0.txt"))
	assert.False(t, fsys.Exists("/photo-0.jpg"))
}

func TestExecute_RealRun(t *testing.T) {
	// Setup
	fsys := testutil.NewMemoryFS()
	fsys.WriteFile("/a.txt", []byte("alpha"), 0644)
	fsys.WriteFile("/b.txt", []byte("beta"), 0644)

	exec := executor.New(executor.Options{DryRun: false, FS: fsys})

	// Execute
	report, err := exec.Execute(
		[]string{"/a.txt", "/b.txt"},
		mustParse(t, "img-{padded_idx}.png"),
		sequence.OrderSequential,
	)

	// Verify
	require.NoError(t, err)
	assert.False(t, report.DryRun)

	require.Len(t, report.Items, 2)
	for _, item := range report.Items {
		assert.Equal(t, types.StatusRenamed, item.Status)
		assert.Empty(t, item.Error)
	}

	assert.False(t, fsys.Exists("/a.txt"))
	assert.False(t, fsys.Exists("/b.txt"))

	content, err := fsys.ReadFile("/img-0.png")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(content))
	content, err = fsys.ReadFile("/img-1.png")
	require.NoError(t, err)
	assert.Equal(t, "beta", string(content))
}

func TestExecute_RealRun_ContinuesPastFailure(t *testing.T) {
	// Setup: the middle destination is poisoned so its rename fails
	fsys := testutil.NewMemoryFS()
	fsys.WriteFile("/a.txt", []byte("a"), 0644)
	fsys.WriteFile("/b.txt", []byte("b"), 0644)
	fsys.WriteFile("/c.txt", []byte("c"), 0644)
	fsys.WithError("/img-1.png", os.ErrPermission)

	exec := executor.New(executor.Options{FS: fsys})

	// Execute
	report, err := exec.Execute(
		[]string{"/a.txt", "/b.txt", "/c.txt"},
		mustParse(t, "img-{padded_idx}.png"),
		sequence.OrderSequential,
	)

	// Verify: the run finished and later items were still renamed
	require.NoError(t, err)
	require.Len(t, report.Items, 3)

	assert.Equal(t, types.StatusRenamed, report.Items[0].Status)
	assert.Equal(t, types.StatusFailed, report.Items[1].Status)
	assert.Contains(t, report.Items[1].Error, "failed to rename file")
	assert.Equal(t, types.StatusRenamed, report.Items[2].Status)

	assert.True(t, report.HasFailures())
	renamed, planned, failed := report.Counts()
	assert.Equal(t, 2, renamed)
	assert.Equal(t, 0, planned)
	assert.Equal(t, 1, failed)

	// The failed source is left in place
	assert.True(t, fsys.Exists("/b.txt"))
	assert.True(t, fsys.Exists("/img-0.png"))
	assert.True(t, fsys.Exists("/img-2.png"))
}

func TestExecute_RealRun_MissingSource(t *testing.T) {
	// Setup
	fsys := testutil.NewMemoryFS()
	fsys.WriteFile("/here.txt", []byte("h"), 0644)

	exec := executor.New(executor.Options{FS: fsys})

	// Execute
	report, err := exec.Execute(
		[]string{"/ghost.txt", "/here.txt"},
		mustParse(t, "out-{padded_idx}.txt"),
		sequence.OrderSequential,
	)

	// Verify
	require.NoError(t, err)
	require.Len(t, report.Items, 2)
	assert.Equal(t, types.StatusFailed, report.Items[0].Status)
	assert.Contains(t, report.Items[0].Error, "failed to rename file")
	assert.Equal(t, types.StatusRenamed, report.Items[1].Status)
	assert.True(t, fsys.Exists("/out-1.txt"))
}

func TestExecute_ZigZagOrder(t *testing.T) {
	// Setup
	fsys := testutil.NewMemoryFS()
	files := []string{"/a.txt", "/b.txt", "/c.txt", "/d.txt", "/e.txt"}
	for _, f := range files {
		fsys.WriteFile(f, []byte(f), 0644)
	}

	exec := executor.New(executor.Options{FS: fsys})

	// Execute
	report, err := exec.Execute(files, mustParse(t, "pg-{padded_idx}.txt"), sequence.OrderZigZag)

	// Verify: indices alternate ends, front first
	require.NoError(t, err)
	assert.Equal(t, "zigzag", report.Order)
	require.Len(t, report.Items, 5)

	wantPairs := []struct {
		source string
		dest   string
	}{
		{"/a.txt", "pg-0.txt"},
		{"/e.txt", "pg-1.txt"},
		{"/b.txt", "pg-2.txt"},
		{"/d.txt", "pg-3.txt"},
		{"/c.txt", "pg-4.txt"},
	}
	for i, want := range wantPairs {
		assert.Equal(t, want.source, report.Items[i].Source)
		assert.Equal(t, want.dest, report.Items[i].Dest)
		assert.Equal(t, i, report.Items[i].Index)
	}

	for i := range files {
		assert.True(t, fsys.Exists("/pg-"+string(rune('0'+i))+".txt"))
	}
}

func TestExecute_UnknownOrder(t *testing.T) {
	exec := executor.New(executor.Options{FS: testutil.NewMemoryFS()})

	report, err := exec.Execute([]string{"/a.txt"}, mustParse(t, "x{padded_idx}"), sequence.Order("bogus"))

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOrderUnsupported))
}

func TestExecute_EmptySelection(t *testing.T) {
	exec := executor.New(executor.Options{FS: testutil.NewMemoryFS()})

	report, err := exec.Execute(nil, mustParse(t, "x-{padded_idx}"), "")

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Empty(t, report.Items)
	assert.Equal(t, "sequential", report.Order)
	assert.False(t, report.HasFailures())
}

func TestExecute_PaddingWidthFromSelectionSize(t *testing.T) {
	// Setup: ten files pad to two digits
	fsys := testutil.NewMemoryFS()
	files := make([]string, 10)
	for i := range files {
		files[i] = "/src-" + string(rune('a'+i)) + ".dat"
		fsys.WriteFile(files[i], []byte("x"), 0644)
	}

	exec := executor.New(executor.Options{DryRun: true, FS: fsys})

	// Execute
	report, err := exec.Execute(files, mustParse(t, "f{padded_idx}.dat"), sequence.OrderSequential)

	// Verify
	require.NoError(t, err)
	require.Len(t, report.Items, 10)
	assert.Equal(t, "f00.dat", report.Items[0].Dest)
	assert.Equal(t, "f09.dat", report.Items[9].Dest)
}

func TestRenamer_StandaloneVisitor(t *testing.T) {
	// Setup: the visitor can drive sequence.Run without an Executor
	fsys := testutil.NewMemoryFS()
	fsys.WriteFile("/one.txt", []byte("1"), 0644)
	fsys.WriteFile("/two.txt", []byte("2"), 0644)

	renamer := executor.NewRenamer(fsys, false)
	src := sequence.NewSliceSource([]string{"/one.txt", "/two.txt"})

	// Execute
	_, stopped := sequence.Run[error](src, mustParse(t, "n{padded_idx}"), renamer)

	// Verify
	assert.False(t, stopped)
	items := renamer.Items()
	require.Len(t, items, 2)
	assert.Equal(t, types.StatusRenamed, items[0].Status)
	assert.Equal(t, "n0", items[0].Dest)
	assert.True(t, fsys.Exists("/n1"))
	assert.False(t, fsys.Exists("/two.txt"))
}

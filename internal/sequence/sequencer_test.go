package sequence_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/chainharness/internal/overrides"
	"github.com/vk/chainharness/internal/provision"
	"github.com/vk/chainharness/internal/scenario"
	"github.com/vk/chainharness/internal/sequence"
	"github.com/vk/chainharness/internal/testutil"
)

func TestRunAllExecutesInOrder(t *testing.T) {
	root := t.TempDir()
	runlog := filepath.Join(root, "run.log")
	testutil.WriteScript(t, root, "itst01.sh", `echo itst01 >> "$RUNLOG"`)
	testutil.WriteScript(t, root, "itst02.sh", `echo itst02 >> "$RUNLOG"`)

	tk := &testutil.FakeToolkit{}
	prov := provision.New(tk, 0, 0)
	runner := scenario.NewRunner(prov, overrides.Resolver{}, root, []string{"RUNLOG=" + runlog}, io.Discard)
	seq := sequence.New(runner)

	results, err := seq.RunAll(context.Background(), []scenario.Spec{
		{Name: "itst01.sh"},
		{Name: "itst02.sh"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, []string{"itst01", "itst02"}, testutil.ReadLines(t, runlog))

	for _, r := range results {
		require.Zero(t, r.Status)
	}
}

func TestRunAllFailsFast(t *testing.T) {
	root := t.TempDir()
	runlog := filepath.Join(root, "run.log")
	testutil.WriteScript(t, root, "s1.sh", `echo s1 >> "$RUNLOG"`)
	testutil.WriteScript(t, root, "s2.sh", `echo s2 >> "$RUNLOG"; exit 7`)
	testutil.WriteScript(t, root, "s3.sh", `echo s3 >> "$RUNLOG"`)

	tk := &testutil.FakeToolkit{}
	prov := provision.New(tk, 0, 0)
	runner := scenario.NewRunner(prov, overrides.Resolver{}, root, []string{"RUNLOG=" + runlog}, io.Discard)
	seq := sequence.New(runner)

	results, err := seq.RunAll(context.Background(), []scenario.Spec{
		{Name: "s1.sh"},
		{Name: "s2.sh"},
		{Name: "s3.sh"},
	})

	var failure *scenario.Failure
	require.ErrorAs(t, err, &failure)
	require.Equal(t, "s2.sh", failure.Name)
	require.Equal(t, 7, failure.Status)

	// s3 must never run; results cover only what executed.
	require.Equal(t, []string{"s1", "s2"}, testutil.ReadLines(t, runlog))
	require.Len(t, results, 2)
	require.False(t, tk.Active(context.Background()), "failed sequence still leaves the machine clean")
}

func TestRunAllEmptySequence(t *testing.T) {
	tk := &testutil.FakeToolkit{}
	prov := provision.New(tk, 0, 0)
	runner := scenario.NewRunner(prov, overrides.Resolver{}, t.TempDir(), nil, io.Discard)
	seq := sequence.New(runner)

	results, err := seq.RunAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, results)
	require.Empty(t, tk.Calls())
}

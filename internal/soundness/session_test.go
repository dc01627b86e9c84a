package soundness_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/chainharness/internal/provision"
	"github.com/vk/chainharness/internal/scenario"
	"github.com/vk/chainharness/internal/soundness"
	"github.com/vk/chainharness/internal/testutil"
)

func TestRunBracketsDriverWithTeardowns(t *testing.T) {
	root := t.TempDir()
	testutil.WriteScript(t, root, "soundness.sh", "exit 0")

	tk := &testutil.FakeToolkit{}
	prov := provision.New(tk, 0, 0)
	sess := soundness.New(prov, root, nil, "/usr/local/bin/netctl", false, io.Discard)

	require.NoError(t, sess.Run(context.Background(), soundness.Spec{Command: "soundness.sh"}))
	require.Equal(t, []string{"teardown", "teardown"}, tk.Calls(),
		"the harness only guarantees cleanliness before and after")
}

func TestRunCIActivatesToolkitForChildren(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "seen.log")
	testutil.WriteScript(t, root, "soundness.sh", `echo "$HARNESS_TOOLKIT" >> "`+out+`"`)

	tk := &testutil.FakeToolkit{}
	prov := provision.New(tk, 0, 0)
	sess := soundness.New(prov, root, nil, "/usr/local/bin/netctl", true, io.Discard)

	require.NoError(t, sess.Run(context.Background(), soundness.Spec{Command: "soundness.sh"}))
	require.Equal(t, []string{"/usr/local/bin/netctl"}, testutil.ReadLines(t, out))
}

func TestRunFailureIsFatalAndStillTearsDown(t *testing.T) {
	root := t.TempDir()
	testutil.WriteScript(t, root, "soundness.sh", "exit 4")

	tk := &testutil.FakeToolkit{}
	prov := provision.New(tk, 0, 0)
	sess := soundness.New(prov, root, nil, "netctl", false, io.Discard)

	err := sess.Run(context.Background(), soundness.Spec{Command: "soundness.sh"})

	var failure *scenario.Failure
	require.ErrorAs(t, err, &failure)
	require.Equal(t, 4, failure.Status)
	require.Equal(t, 2, tk.Count("teardown"))
}

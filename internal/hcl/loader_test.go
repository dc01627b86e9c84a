package hcl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vk/chainharness/internal/config"
	"github.com/vk/chainharness/internal/hcl"
	"github.com/vk/chainharness/internal/testutil"
)

const fullManifest = `
session {
  scenarios_root   = "/opt/net/scenarios"
  overrides_root   = "/opt/net/overrides"
  toolkit          = "/opt/net/bin/netctl"
  global_config    = "/opt/net/nightly.toml"
  settle_seconds   = 3
  cooldown_seconds = 1

  scenario "itst01.sh" {
    args = ["timeout=300"]
  }

  scenario "bond.sh" {
    self_managed = true
  }

  chain "upgrade" {
    command = "upgrade_step.sh"
    args    = ["branch=${env.HARNESS_TEST_BRANCH}"]

    step {
      test = 1
    }
    step {
      test       = 2
      skip_setup = true
    }
  }

  soundness {
    command = "soundness.sh"
    args    = ["nodes=5"]
  }
}
`

func TestLoadFullManifest(t *testing.T) {
	t.Setenv("HARNESS_TEST_BRANCH", "dev")
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "session.hcl", fullManifest)

	session, err := hcl.NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, "/opt/net/scenarios", session.ScenariosRoot)
	require.Equal(t, "/opt/net/overrides", session.OverridesRoot)
	require.Equal(t, "/opt/net/bin/netctl", session.Toolkit)
	require.Equal(t, "/opt/net/nightly.toml", session.GlobalConfig)
	require.Equal(t, 3*time.Second, session.Settle)
	require.Equal(t, time.Second, session.Cooldown)

	require.Equal(t, []config.Scenario{
		{Name: "itst01.sh", Args: []string{"timeout=300"}},
		{Name: "bond.sh", SelfManaged: true},
	}, session.Scenarios)

	require.Len(t, session.Chains, 1)
	upgrade := session.Chains[0]
	require.Equal(t, "upgrade", upgrade.Name)
	require.Equal(t, "upgrade_step.sh", upgrade.Command)
	require.Equal(t, []string{"branch=dev"}, upgrade.Args,
		"env references resolve at load time")
	require.Equal(t, []config.ChainStep{
		{Test: 1},
		{Test: 2, SkipSetup: true},
	}, upgrade.Steps)

	require.NotNil(t, session.Soundness)
	require.Equal(t, "soundness.sh", session.Soundness.Command)
	require.Equal(t, []string{"nodes=5"}, session.Soundness.Args)
}

func TestLoadAppliesDefaultDelays(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "session.hcl", `
session {
  scenarios_root = "/s"
  toolkit        = "/bin/netctl"
}
`)

	session, err := hcl.NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, config.DefaultSettle, session.Settle)
	require.Equal(t, config.DefaultCooldown, session.Cooldown)
	require.Empty(t, session.Scenarios)
	require.Nil(t, session.Soundness)
}

func TestLoadSingleFilePath(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "session.hcl", `
session {
  scenarios_root = "/s"
  toolkit        = "/bin/netctl"
}
`)

	session, err := hcl.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "/s", session.ScenariosRoot)
}

func TestLoadRejectsDuplicateSessionBlocks(t *testing.T) {
	dir := t.TempDir()
	body := `
session {
  scenarios_root = "/s"
  toolkit        = "/bin/netctl"
}
`
	testutil.WriteFile(t, dir, "a.hcl", body)
	testutil.WriteFile(t, dir, "b.hcl", body)

	_, err := hcl.NewLoader().Load(context.Background(), dir)
	require.ErrorContains(t, err, "duplicate session block")
}

func TestLoadRequiresSessionBlock(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "empty.hcl", "\n")

	_, err := hcl.NewLoader().Load(context.Background(), dir)
	require.ErrorContains(t, err, "no session block")
}

func TestLoadRejectsMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "bad.hcl", "session {\n")

	_, err := hcl.NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
}

func TestLoadWithoutManifestFiles(t *testing.T) {
	_, err := hcl.NewLoader().Load(context.Background(), t.TempDir())
	require.ErrorContains(t, err, "no .hcl manifest files")
}

package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/chainharness/internal/session"
	"github.com/vk/chainharness/internal/testutil"
)

func TestActivateGlobalConfig(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "nightly.toml", "[network]\nname = \"nightly\"\n")

	entry, err := session.ActivateGlobalConfig(path)
	require.NoError(t, err)
	require.Equal(t, session.GlobalConfigEnv+"="+path, entry)
}

func TestActivateGlobalConfigRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "broken.toml", "[network\n")

	_, err := session.ActivateGlobalConfig(path)
	require.ErrorContains(t, err, "not valid TOML")
}

func TestActivateGlobalConfigMissingFile(t *testing.T) {
	_, err := session.ActivateGlobalConfig("/nope/nightly.toml")
	require.Error(t, err)
}

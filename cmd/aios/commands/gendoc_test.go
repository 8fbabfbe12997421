package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenDoc(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ref")

	res := execute(t, "", "gen-doc", "--dir", dir)
	require.NoError(t, res.err, res.stderr)

	data, err := os.ReadFile(filepath.Join(dir, "aios_install.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `title: "aios install"`)
	assert.Contains(t, string(data), "--language")
	assert.NotContains(t, string(data), "--aios-version")
}

func TestGenDoc_RequiresDir(t *testing.T) {
	res := execute(t, "", "gen-doc")
	require.Error(t, res.err)
}

func TestLinkHandler(t *testing.T) {
	assert.Equal(t, "/reference/aios_doctor/", linkHandler("aios_doctor.md"))
}

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Flags(t *testing.T) {
	cmd := Apply()
	require.NotNil(t, cmd)

	file := cmd.Flags().Lookup("file")
	require.NotNil(t, file)
	assert.Equal(t, "uaconf.yaml", file.DefValue)
	assert.Equal(t, "f", file.Shorthand)

	verbose := cmd.Flags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "false", verbose.DefValue)

	metrics := cmd.Flags().Lookup("metrics-textfile")
	require.NotNil(t, metrics)
	assert.Empty(t, metrics.DefValue)
}

func TestPlan_Flags(t *testing.T) {
	cmd := Plan()
	require.NotNil(t, cmd)

	file := cmd.Flags().Lookup("file")
	require.NotNil(t, file)
	assert.Equal(t, "uaconf.yaml", file.DefValue)

	assert.Nil(t, cmd.Flags().Lookup("metrics-textfile"), "plan writes nothing worth scraping")
}

func TestInit_Flags(t *testing.T) {
	cmd := Init()
	require.NotNil(t, cmd)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "uaconf.yaml", output.DefValue)
	assert.Equal(t, "o", output.Shorthand)
}

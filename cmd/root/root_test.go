package root_test

import (
	"testing"

	"iltracker/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "iltracker", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "MLB injured-list datasets")
	assert.Contains(t, root.Cmd.Long, "three CSV tables")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestInit_RegistersPersistentFlags(t *testing.T) {
	root.Init()

	outdirFlag := root.Cmd.PersistentFlags().Lookup("outdir")
	require.NotNil(t, outdirFlag)
	assert.Equal(t, "o", outdirFlag.Shorthand)
	assert.Equal(t, "data", outdirFlag.DefValue)
	assert.NotEmpty(t, outdirFlag.Usage)

	keywordsFlag := root.Cmd.PersistentFlags().Lookup("keywords")
	require.NotNil(t, keywordsFlag)
	assert.Equal(t, "k", keywordsFlag.Shorthand)
	assert.Equal(t, "", keywordsFlag.DefValue)
	assert.NotEmpty(t, keywordsFlag.Usage)
}

func TestRootCommand_Run(t *testing.T) {
	assert.NotPanics(t, func() {
		root.Cmd.Run(&cobra.Command{}, []string{})
	})
}

func TestSharedFlags_Access(t *testing.T) {
	originalOutDir := root.SharedFlags.OutDir
	originalKeywords := root.SharedFlags.Keywords
	defer func() {
		root.SharedFlags.OutDir = originalOutDir
		root.SharedFlags.Keywords = originalKeywords
	}()

	root.SharedFlags.OutDir = "exports"
	root.SharedFlags.Keywords = "keywords.yaml"

	assert.Equal(t, "exports", root.SharedFlags.OutDir)
	assert.Equal(t, "keywords.yaml", root.SharedFlags.Keywords)
}

func TestGlobalVariables_Initialization(t *testing.T) {
	assert.NotNil(t, root.Log)
	assert.NotNil(t, root.Cmd)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"file_in": "run1234.dat",
		"no_db": true,
		"num_adc": 2,
		"num_tdc": 1,
		"adc_names": "A B",
		"tdc_names": "T",
		"map_file": "ptrig.map",
		"verbosity": 2
	}`
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))

	config, err := LoadConfiguration(filename)
	require.NoError(t, err)
	assert.Equal(t, "run1234.dat", config.FileIn)
	assert.True(t, config.NoDB)
	assert.Equal(t, 2, config.NumAdc)
	assert.Equal(t, 1, config.NumTdc)
	assert.Equal(t, "A B", config.AdcNames)
	assert.Equal(t, 2, config.Verbosity)
	// Defaults survive for keys the file does not set
	assert.Equal(t, "PTRIG", config.Detector)
	assert.Equal(t, "p_ptrig", config.Prefix)
	assert.True(t, config.Discard)
	assert.Equal(t, 1000000000, config.MaxEvents)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

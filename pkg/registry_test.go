package trigdet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannelRegistry(t *testing.T) {
	registry, err := NewChannelRegistry(2, 1, "A B", "T")
	require.NoError(t, err)
	assert.Equal(t, 2, registry.NumAdc)
	assert.Equal(t, 1, registry.NumTdc)
	assert.Equal(t, []string{"A", "B"}, registry.AdcNames)
	assert.Equal(t, []string{"T"}, registry.TdcNames)
}

func TestNewChannelRegistryEmpty(t *testing.T) {
	registry, err := NewChannelRegistry(0, 0, "", "")
	require.NoError(t, err)
	assert.Empty(t, registry.AdcNames)
	assert.Empty(t, registry.TdcNames)
}

func TestNewChannelRegistryErrors(t *testing.T) {
	manyNames := strings.Repeat("ch ", MaxAdcChannels+1)

	tests := []struct {
		name     string
		numAdc   int
		numTdc   int
		adcNames string
		tdcNames string
	}{
		{"adc count over capacity", MaxAdcChannels + 1, 0, manyNames, ""},
		{"tdc count over capacity", 0, MaxTdcChannels + 1, "", manyNames},
		{"negative adc count", -1, 0, "", ""},
		{"negative tdc count", 0, -3, "", ""},
		{"adc name count mismatch", 2, 1, "A", "T"},
		{"tdc name count mismatch", 2, 1, "A B", "T1 T2"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewChannelRegistry(test.numAdc, test.numTdc, test.adcNames, test.tdcNames)
			var confErr *ErrConfiguration
			require.ErrorAs(t, err, &confErr)
		})
	}
}

package trigdet

import (
	"fmt"
	"strings"
)

// Up to 100 channels per kind. It just seemed like a reasonable starting
// value; raise it if a source ever needs more.
const MaxAdcChannels = 100
const MaxTdcChannels = 100

// ChannelRegistry holds the configured number and names of ADC and TDC
// channels for one data source. It is built once per run and never mutated.
type ChannelRegistry struct {
	NumAdc   int
	NumTdc   int
	AdcNames []string
	TdcNames []string
}

// NewChannelRegistry parses the whitespace-separated channel name lists and
// checks them against the declared counts and the fixed capacities.
func NewChannelRegistry(numAdc int, numTdc int, adcNames string, tdcNames string) (ChannelRegistry, error) {
	if numAdc < 0 || numAdc > MaxAdcChannels {
		message := fmt.Sprintf("numAdc is %d, must be between 0 and %d", numAdc, MaxAdcChannels)
		return ChannelRegistry{}, &ErrConfiguration{Message: message}
	}
	if numTdc < 0 || numTdc > MaxTdcChannels {
		message := fmt.Sprintf("numTdc is %d, must be between 0 and %d", numTdc, MaxTdcChannels)
		return ChannelRegistry{}, &ErrConfiguration{Message: message}
	}

	registry := ChannelRegistry{
		NumAdc:   numAdc,
		NumTdc:   numTdc,
		AdcNames: strings.Fields(adcNames),
		TdcNames: strings.Fields(tdcNames),
	}
	if len(registry.AdcNames) != numAdc {
		message := fmt.Sprintf("numAdc is %d but %d ADC names given", numAdc, len(registry.AdcNames))
		return ChannelRegistry{}, &ErrConfiguration{Message: message}
	}
	if len(registry.TdcNames) != numTdc {
		message := fmt.Sprintf("numTdc is %d but %d TDC names given", numTdc, len(registry.TdcNames))
		return ChannelRegistry{}, &ErrConfiguration{Message: message}
	}
	return registry, nil
}

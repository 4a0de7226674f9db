package trigdet

type AdcChannel struct {
	Val      float64
	Pedestal float64
	Mult     float64
}

type TdcChannel struct {
	Val  float64
	Mult float64
}

// ChannelState holds the per-event values for every channel of one detector.
// Both slices are allocated once at full capacity and never reallocated, so
// the address of each slot stays valid for a whole run.
type ChannelState struct {
	Adc []AdcChannel
	Tdc []TdcChannel
}

// NewChannelState fills every slot with the -1 sentinel. Slots beyond the
// configured channel count keep it forever, which makes them easy to tell
// apart from a real zero reading.
func NewChannelState() *ChannelState {
	state := &ChannelState{
		Adc: make([]AdcChannel, MaxAdcChannels),
		Tdc: make([]TdcChannel, MaxTdcChannels),
	}
	for i := range state.Adc {
		state.Adc[i] = AdcChannel{Val: -1, Pedestal: -1, Mult: -1}
	}
	for i := range state.Tdc {
		state.Tdc[i] = TdcChannel{Val: -1, Mult: -1}
	}
	return state
}

func (s *ChannelState) resetForEvent(numAdc int, numTdc int) {
	for i := 0; i < numAdc; i++ {
		s.Adc[i] = AdcChannel{}
	}
	for i := 0; i < numTdc; i++ {
		s.Tdc[i] = TdcChannel{}
	}
}

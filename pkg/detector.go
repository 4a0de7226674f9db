package trigdet

import "fmt"

type DetStatus int

const (
	Unconfigured DetStatus = iota
	Configured
	Bound
	Ready
)

func (s DetStatus) String() string {
	switch s {
	case Unconfigured:
		return "Unconfigured"
	case Configured:
		return "Configured"
	case Bound:
		return "Bound"
	case Ready:
		return "Ready"
	default:
		return fmt.Sprintf("DetStatus(%d)", int(s))
	}
}

// TrigDet decodes the trigger channels of one logical data source. The
// required call order is Configure, BindVariables, then ResetForEvent and
// Decode once per event. Calls made out of order fail with ErrLifecycle.
type TrigDet struct {
	Name string

	status     DetStatus
	registry   ChannelRegistry
	detMap     *DetectorMap
	state      *ChannelState
	vars       []Variable
	varsByName map[string]*float64
}

func NewTrigDet(name string) *TrigDet {
	return &TrigDet{
		Name:  name,
		state: NewChannelState(),
	}
}

func (d *TrigDet) Status() DetStatus {
	return d.status
}

func (d *TrigDet) Registry() ChannelRegistry {
	return d.registry
}

// Configure stores the channel registry and the detector map for the run.
func (d *TrigDet) Configure(registry ChannelRegistry, detMap *DetectorMap) error {
	if d.status != Unconfigured {
		return &ErrLifecycle{Op: "Configure", Status: d.status}
	}
	if detMap == nil || detMap.Size() == 0 {
		message := fmt.Sprintf("empty detector map for %s", d.Name)
		return &ErrConfiguration{Message: message}
	}

	d.registry = registry
	d.detMap = detMap
	d.status = Configured
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("%s configured with %d ADC and %d TDC channels",
			d.Name, registry.NumAdc, registry.NumTdc)
		logger.Info(message, "detector")
	}
	return nil
}

// ResetForEvent zeroes the configured channels. It must run before every
// Decode; slots beyond the configured counts keep the -1 sentinel.
func (d *TrigDet) ResetForEvent() error {
	if d.status != Bound && d.status != Ready {
		return &ErrLifecycle{Op: "ResetForEvent", Status: d.status}
	}
	d.state.resetForEvent(d.registry.NumAdc, d.registry.NumTdc)
	d.status = Ready
	return nil
}

// Decode extracts the structured hits of one event and writes each one into
// the channel state. A channel hit more than once keeps the last hit. A hit
// on an unknown plane or on a counter beyond the configured count stops the
// decode; hits applied before it stay applied. Decode returns the number of
// hits applied.
func (d *TrigDet) Decode(header EventHeaderStruct, eventData []byte) (int, error) {
	if d.status != Ready {
		return 0, &ErrLifecycle{Op: "Decode", Status: d.status}
	}
	// The next event needs a fresh reset, whatever happens below.
	d.status = Bound

	hits, err := DecodeToHitList(eventData, d.detMap)
	if err != nil {
		return 0, err
	}
	if configuration.Verbosity > 1 {
		message := fmt.Sprintf("Event %d: %d hits for %s", header.EventId, len(hits), d.Name)
		logger.Info(message, "detector")
	}

	applied := 0
	for _, hit := range hits {
		switch hit.Plane {
		case ADC_PLANE:
			i := hit.Counter - 1
			if i < 0 || i >= d.registry.NumAdc {
				return applied, &ErrChannelOutOfRange{
					Plane:      hit.Plane,
					Counter:    hit.Counter,
					Configured: d.registry.NumAdc,
				}
			}
			d.state.Adc[i] = AdcChannel{
				Val:      float64(hit.Value),
				Pedestal: float64(hit.Pedestal),
				Mult:     float64(hit.Multiplicity),
			}
		case TDC_PLANE:
			i := hit.Counter - 1
			if i < 0 || i >= d.registry.NumTdc {
				return applied, &ErrChannelOutOfRange{
					Plane:      hit.Plane,
					Counter:    hit.Counter,
					Configured: d.registry.NumTdc,
				}
			}
			d.state.Tdc[i] = TdcChannel{
				Val:  float64(hit.Value),
				Mult: float64(hit.Multiplicity),
			}
		default:
			return applied, &ErrUnknownChannelKind{Plane: hit.Plane, Counter: hit.Counter}
		}
		applied++
	}
	return applied, nil
}

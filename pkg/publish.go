package trigdet

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Variable is one published (name, slot) pair. The pointer targets a fixed
// slot in the channel state, so values written by later decodes are visible
// through entries handed out at setup time.
type Variable struct {
	Name  string
	Value *float64
}

// BindVariables builds the published variable set: three entries per ADC
// channel (name_adc, name_adcPed, name_adcMult) and two per TDC channel
// (name_tdc, name_tdcMult). It runs once at setup; calling it again returns
// the same entries without rebinding.
func (d *TrigDet) BindVariables() ([]Variable, error) {
	if d.status == Bound || d.status == Ready {
		return d.vars, nil
	}
	if d.status != Configured {
		return nil, &ErrLifecycle{Op: "BindVariables", Status: d.status}
	}

	vars := make([]Variable, 0, 3*d.registry.NumAdc+2*d.registry.NumTdc)
	for i := 0; i < d.registry.NumAdc; i++ {
		name := d.registry.AdcNames[i]
		vars = append(vars,
			Variable{Name: name + "_adc", Value: &d.state.Adc[i].Val},
			Variable{Name: name + "_adcPed", Value: &d.state.Adc[i].Pedestal},
			Variable{Name: name + "_adcMult", Value: &d.state.Adc[i].Mult},
		)
	}
	for i := 0; i < d.registry.NumTdc; i++ {
		name := d.registry.TdcNames[i]
		vars = append(vars,
			Variable{Name: name + "_tdc", Value: &d.state.Tdc[i].Val},
			Variable{Name: name + "_tdcMult", Value: &d.state.Tdc[i].Mult},
		)
	}

	varsByName := make(map[string]*float64, len(vars))
	for _, v := range vars {
		varsByName[v.Name] = v.Value
	}

	d.vars = vars
	d.varsByName = varsByName
	d.status = Bound
	return d.vars, nil
}

// VariableByName returns the slot bound to a published name.
func (d *TrigDet) VariableByName(name string) (*float64, bool) {
	value, ok := d.varsByName[name]
	return value, ok
}

// VariableNames returns the published names in sorted order.
func (d *TrigDet) VariableNames() []string {
	names := maps.Keys(d.varsByName)
	sort.Strings(names)
	return names
}

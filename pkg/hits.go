package trigdet

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"
)

// RawWordStruct is one raw measurement as the front-end writes it: a
// hardware address plus the extracted scalars. Pedestal only carries a
// meaningful value for ADC channels.
type RawWordStruct struct {
	Address      uint32
	Value        int32
	Pedestal     int32
	Multiplicity uint32
}

// TrigRawHit is a raw word whose address has been resolved through the
// detector map. Hits are produced fresh for every event and not retained.
type TrigRawHit struct {
	Plane        int
	Counter      int
	Value        int32
	Pedestal     int32
	Multiplicity uint32
}

// DecodeToHitList extracts the structured hits of one event, in stream
// order. Addresses missing from the map belong to other detectors sharing
// the data source and are skipped. The plane is passed through unchecked;
// the decode engine rejects planes it does not know.
func DecodeToHitList(eventData []byte, detMap *DetectorMap) ([]TrigRawHit, error) {
	var word RawWordStruct
	wordSize := int(unsafe.Sizeof(word))
	if len(eventData)%wordSize != 0 {
		return nil, fmt.Errorf("event payload size %d is not a multiple of the raw word size %d",
			len(eventData), wordSize)
	}

	hits := make([]TrigRawHit, 0, len(eventData)/wordSize)
	reader := bytes.NewReader(eventData)
	skipped := 0
	for position := 0; position < len(eventData); position += wordSize {
		if err := binary.Read(reader, binary.LittleEndian, &word); err != nil {
			return nil, fmt.Errorf("error reading raw word at position %d: %w", position, err)
		}
		entry, ok := detMap.Lookup(word.Address)
		if !ok {
			skipped++
			continue
		}
		hits = append(hits, TrigRawHit{
			Plane:        entry.Plane,
			Counter:      entry.Counter,
			Value:        word.Value,
			Pedestal:     word.Pedestal,
			Multiplicity: word.Multiplicity,
		})
	}

	if skipped > 0 && configuration.Verbosity > 1 {
		message := fmt.Sprintf("Skipped %d raw words with unmapped addresses", skipped)
		logger.Info(message, "hits")
	}
	return hits, nil
}

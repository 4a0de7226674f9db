package trigdet

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Map planes. ADC channels are assigned plane 1, TDC channels plane 2.
// Any other plane is rejected at decode time.
const (
	ADC_PLANE = 1
	TDC_PLANE = 2
)

type DetectorMapEntry struct {
	Plane   int
	Counter int
}

// DetectorMap resolves raw hardware addresses to (plane, counter) pairs.
// Counters are numbered consecutively from 1 within each plane and index
// into the registry name lists.
type DetectorMap struct {
	Detector string
	entries  map[uint32]DetectorMapEntry
}

func NewDetectorMap(detector string) *DetectorMap {
	return &DetectorMap{
		Detector: detector,
		entries:  make(map[uint32]DetectorMapEntry),
	}
}

func (m *DetectorMap) Add(address uint32, plane int, counter int) {
	m.entries[address] = DetectorMapEntry{Plane: plane, Counter: counter}
}

func (m *DetectorMap) Lookup(address uint32) (DetectorMapEntry, bool) {
	entry, ok := m.entries[address]
	return entry, ok
}

func (m *DetectorMap) Size() int {
	return len(m.entries)
}

// LoadMapFile fills a detector map from a text file with one
// "address plane counter" triplet per line. Empty lines and lines starting
// with # are skipped. Addresses may be decimal or 0x-prefixed hex.
func LoadMapFile(filename string, detector string) (*DetectorMap, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	defer file.Close()

	detMap := NewDetectorMap(detector)
	scanner := bufio.NewScanner(file)
	lineNb := 0
	for scanner.Scan() {
		lineNb++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			message := fmt.Sprintf("map file %s, line %d: expected 3 fields, got %d", filename, lineNb, len(fields))
			return nil, &ErrConfiguration{Message: message}
		}
		address, err := strconv.ParseUint(fields[0], 0, 32)
		if err != nil {
			message := fmt.Sprintf("map file %s, line %d: bad address %q", filename, lineNb, fields[0])
			return nil, &ErrConfiguration{Message: message}
		}
		plane, err := strconv.Atoi(fields[1])
		if err != nil {
			message := fmt.Sprintf("map file %s, line %d: bad plane %q", filename, lineNb, fields[1])
			return nil, &ErrConfiguration{Message: message}
		}
		counter, err := strconv.Atoi(fields[2])
		if err != nil {
			message := fmt.Sprintf("map file %s, line %d: bad counter %q", filename, lineNb, fields[2])
			return nil, &ErrConfiguration{Message: message}
		}
		detMap.Add(uint32(address), plane, counter)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file %s: %w", filename, err)
	}

	if detMap.Size() == 0 {
		message := fmt.Sprintf("no map entries for detector %s in %s", detector, filename)
		return nil, &ErrConfiguration{Message: message}
	}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Loaded %d map entries for %s from %s", detMap.Size(), detector, filename)
		logger.Info(message, "detmap")
	}
	return detMap, nil
}

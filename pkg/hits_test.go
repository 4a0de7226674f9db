package trigdet

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Map used across the decoder tests: two ADC channels, one TDC channel,
// plus an entry with a bogus plane and an ADC counter beyond the usual
// two-channel registry.
func testDetMap() *DetectorMap {
	detMap := NewDetectorMap("PTRIG")
	detMap.Add(0x100, ADC_PLANE, 1)
	detMap.Add(0x101, ADC_PLANE, 2)
	detMap.Add(0x102, ADC_PLANE, 3)
	detMap.Add(0x200, TDC_PLANE, 1)
	detMap.Add(0x300, 3, 1)
	return detMap
}

func encodeWords(t *testing.T, words []RawWordStruct) []byte {
	t.Helper()
	buffer := new(bytes.Buffer)
	for _, word := range words {
		require.NoError(t, binary.Write(buffer, binary.LittleEndian, word))
	}
	return buffer.Bytes()
}

func TestDecodeToHitList(t *testing.T) {
	payload := encodeWords(t, []RawWordStruct{
		{Address: 0x100, Value: 10, Pedestal: 1, Multiplicity: 1},
		{Address: 0x200, Value: 5, Multiplicity: 1},
	})

	hits, err := DecodeToHitList(payload, testDetMap())
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, TrigRawHit{Plane: ADC_PLANE, Counter: 1, Value: 10, Pedestal: 1, Multiplicity: 1}, hits[0])
	assert.Equal(t, TrigRawHit{Plane: TDC_PLANE, Counter: 1, Value: 5, Multiplicity: 1}, hits[1])
}

func TestDecodeToHitListSkipsUnmappedAddresses(t *testing.T) {
	payload := encodeWords(t, []RawWordStruct{
		{Address: 0xdead, Value: 99, Multiplicity: 1},
		{Address: 0x100, Value: 10, Pedestal: 1, Multiplicity: 1},
		{Address: 0xbeef, Value: 98, Multiplicity: 1},
	})

	hits, err := DecodeToHitList(payload, testDetMap())
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].Counter)
}

func TestDecodeToHitListEmptyPayload(t *testing.T) {
	hits, err := DecodeToHitList(nil, testDetMap())
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestDecodeToHitListTruncatedPayload(t *testing.T) {
	payload := encodeWords(t, []RawWordStruct{
		{Address: 0x100, Value: 10, Pedestal: 1, Multiplicity: 1},
	})
	_, err := DecodeToHitList(payload[:len(payload)-2], testDetMap())
	assert.Error(t, err)
}

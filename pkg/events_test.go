package trigdet

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEvent(t *testing.T, buffer *bytes.Buffer, header EventHeaderStruct, payload []byte) {
	t.Helper()
	header.EventSize = uint32(unsafe.Sizeof(header)) + uint32(len(payload))
	require.NoError(t, binary.Write(buffer, binary.LittleEndian, header))
	_, err := buffer.Write(payload)
	require.NoError(t, err)
}

func TestReadEventFromFile(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	buffer := new(bytes.Buffer)
	writeEvent(t, buffer, EventHeaderStruct{
		EventId:    7,
		EventType:  PHYSICS_EVENT,
		EventRunNb: 1234,
		HitCount:   1,
	}, payload)

	filename := filepath.Join(t.TempDir(), "run1234.dat")
	require.NoError(t, os.WriteFile(filename, buffer.Bytes(), 0o644))
	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	header, eventData, err := ReadEventFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), header.EventId)
	assert.Equal(t, PHYSICS_EVENT, header.EventType)
	assert.Equal(t, uint32(1234), header.EventRunNb)
	assert.Equal(t, payload, eventData)

	_, _, err = ReadEventFromFile(file)
	assert.Equal(t, io.EOF, err)
}

func TestValidEvent(t *testing.T) {
	assert.True(t, ValidEvent(EventHeaderStruct{EventType: PHYSICS_EVENT}))
	assert.True(t, ValidEvent(EventHeaderStruct{EventType: CALIBRATION_EVENT}))
	assert.False(t, ValidEvent(EventHeaderStruct{EventType: START_OF_RUN}))
	assert.False(t, ValidEvent(EventHeaderStruct{EventType: END_OF_RUN}))
}

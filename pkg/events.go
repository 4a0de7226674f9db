package trigdet

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unsafe"
)

type EventTypeType uint32

const (
	START_OF_RUN EventTypeType = iota + 1
	END_OF_RUN
	PHYSICS_EVENT
	CALIBRATION_EVENT
	EVENT_FORMAT_ERROR
)

// EventHeaderStruct is the fixed little-endian header preceding every event
// payload in a raw file. EventSize covers the header itself plus the payload.
type EventHeaderStruct struct {
	EventSize  uint32
	EventId    uint32
	EventType  EventTypeType
	EventRunNb uint32
	HitCount   uint32
}

func ReadEventFromFile(file *os.File) (EventHeaderStruct, []byte, error) {
	var header EventHeaderStruct
	headerSize := unsafe.Sizeof(header)
	headerBinary := make([]byte, headerSize)
	nRead, err := file.Read(headerBinary)
	if err != nil {
		return header, nil, err
	}
	if nRead < int(headerSize) {
		return header, nil, io.ErrUnexpectedEOF
	}

	headerReader := bytes.NewReader(headerBinary)
	binary.Read(headerReader, binary.LittleEndian, &header)
	if header.EventSize < uint32(headerSize) {
		return header, nil, fmt.Errorf("event %d declares size %d, smaller than the header itself",
			header.EventId, header.EventSize)
	}

	payloadSize := uint32(header.EventSize) - uint32(headerSize)
	eventData := make([]byte, payloadSize)
	if _, err := io.ReadFull(file, eventData); err != nil {
		return header, nil, err
	}
	return header, eventData, nil
}

func ValidEvent(header EventHeaderStruct) bool {
	return header.EventType == PHYSICS_EVENT || header.EventType == CALIBRATION_EVENT
}

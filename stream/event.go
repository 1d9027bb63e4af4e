package stream

import "fmt"

// Event is a single structural event produced by the Decoder.
type Event struct {
	Type EventType

	// Value holds the scalar text for EventScalar.
	Value string

	// Version holds the %YAML directive declared ahead of an
	// EventDocumentStart, or nil if the document declared none.
	Version *Version
}

// Version is a YAML version directive value.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// EventType identifies the kind of a structural event.
type EventType int

const (
	EventDocumentStart EventType = iota
	EventDocumentEnd
	EventScalar
	EventMappingStart
	EventMappingEnd
	EventSequenceStart
	EventSequenceEnd
	EventStreamEnd
)

func (t EventType) String() string {
	switch t {
	case EventDocumentStart:
		return "DocumentStart"
	case EventDocumentEnd:
		return "DocumentEnd"
	case EventScalar:
		return "Scalar"
	case EventMappingStart:
		return "MappingStart"
	case EventMappingEnd:
		return "MappingEnd"
	case EventSequenceStart:
		return "SequenceStart"
	case EventSequenceEnd:
		return "SequenceEnd"
	case EventStreamEnd:
		return "StreamEnd"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	pt, ok := map[string]EventType{
		"DocumentStart": EventDocumentStart,
		"DocumentEnd":   EventDocumentEnd,
		"Scalar":        EventScalar,
		"MappingStart":  EventMappingStart,
		"MappingEnd":    EventMappingEnd,
		"SequenceStart": EventSequenceStart,
		"SequenceEnd":   EventSequenceEnd,
		"StreamEnd":     EventStreamEnd,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unknown event type %q", d)
	}
	*t = pt
	return nil
}

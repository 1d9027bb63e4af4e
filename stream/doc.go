// Package stream turns raw YAML configuration text into an ordered
// stream of structural events.
//
// The stream package is the event source for the load package's tree
// builder. Low-level lexing and syntax validation are delegated to
// goccy/go-yaml; stream flattens the parsed document into the fixed
// event vocabulary the builder reacts to:
//
//	DocumentStart (carrying an optional %YAML version directive)
//	Scalar(value)
//	MappingStart / MappingEnd
//	SequenceStart / SequenceEnd
//	DocumentEnd
//	StreamEnd
//
// # Example
//
//	dec, err := stream.NewDecoder(bytes.NewReader(data))
//	if err != nil {
//	    return err // syntax error, with goccy's diagnostic
//	}
//	ev, _ := dec.ReadEvent() // DocumentStart, Version 1.1
//	ev, _ = dec.ReadEvent()  // MappingStart
//	...
//
// ReadEvent returns io.EOF once the StreamEnd event has been consumed.
//
// Anchors are resolved by the underlying parser; aliases are out of
// scope for configuration ingestion and produce no events.
package stream

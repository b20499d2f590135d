// Package eventstreams defines the wire types for the append-only
// event stream capability.
package eventstreams

import (
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// Operation names for the event streams capability
const (
	// OpDeliverEvent delivers an event to an actor
	OpDeliverEvent = "EventStreams.DeliverEvent"
	// OpWriteEvent writes an event to a stream
	OpWriteEvent = "EventStreams.WriteEvent"
	// OpQueryStream executes a query against a stream
	OpQueryStream = "EventStreams.QueryStream"
)

// Schemas for the event stream message set
var (
	EventType = schema.NewType("Event",
		schema.Required("eventId", schema.FieldString),
		schema.Required("stream", schema.FieldString),
		schema.Optional("values", schema.FieldStringMap),
	)
	WriteResponseType = schema.NewType("WriteResponse",
		schema.Required("eventId", schema.FieldString),
	)
	StreamQueryType = schema.NewType("StreamQuery",
		schema.Required("streamId", schema.FieldString),
		schema.Optional("range", schema.FieldValue),
		schema.Required("count", schema.FieldUint64),
	)
	StreamResultsType = schema.NewType("StreamResults",
		schema.Optional("events", schema.FieldValue),
	)
	TimeRangeType = schema.NewType("TimeRange",
		schema.Required("minTime", schema.FieldUint64),
		schema.Required("maxTime", schema.FieldUint64),
	)
)

// Event is an immutable event within a stream
type Event struct {
	// The unique ID of the event
	EventID string
	// The stream in which the event occurs
	Stream string
	// Application-defined key-value payload
	Values map[string]string
}

func (m *Event) Schema() *schema.Type { return EventType }

func (m *Event) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("eventId", m.EventID)
	b.String("stream", m.Stream)
	b.StringMap("values", m.Values)
	return b.Value()
}

func (m *Event) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(EventType, v)
	m.EventID = d.String("eventId")
	m.Stream = d.String("stream")
	m.Values = d.StringMap("values")
	return d.Err()
}

// WriteResponse is the provider's reply after writing an event
type WriteResponse struct {
	// Unique ID of the event written
	EventID string
}

func (m *WriteResponse) Schema() *schema.Type { return WriteResponseType }

func (m *WriteResponse) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("eventId", m.EventID)
	return b.Value()
}

func (m *WriteResponse) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(WriteResponseType, v)
	m.EventID = d.String("eventId")
	return d.Err()
}

// TimeRange is a timeslice limiter on a stream query, in seconds since
// the epoch
type TimeRange struct {
	// Minimum time after which events must have occurred
	MinTime uint64
	// Maximum time before which events must have occurred
	MaxTime uint64
}

func (m *TimeRange) Schema() *schema.Type { return TimeRangeType }

func (m *TimeRange) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Uint64("minTime", m.MinTime)
	b.Uint64("maxTime", m.MaxTime)
	return b.Value()
}

func (m *TimeRange) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(TimeRangeType, v)
	m.MinTime = d.Uint64("minTime")
	m.MaxTime = d.Uint64("maxTime")
	return d.Err()
}

// StreamQuery is a query against a given stream
type StreamQuery struct {
	// ID of the stream to query
	StreamID string
	// An optional time range limiter on the results
	Range *TimeRange
	// A maximum count to return. 0 returns the provider's maximum,
	// which may not include every event.
	Count uint64
}

func (m *StreamQuery) Schema() *schema.Type { return StreamQueryType }

func (m *StreamQuery) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.String("streamId", m.StreamID)
	if m.Range != nil {
		b.Message("range", m.Range)
	}
	b.Uint64("count", m.Count)
	return b.Value()
}

func (m *StreamQuery) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(StreamQueryType, v)
	m.StreamID = d.String("streamId")
	if rv, ok := d.Value("range"); ok && !rv.IsNil() {
		m.Range = &TimeRange{}
		if err := m.Range.FromValue(rv); err != nil {
			return err
		}
	} else {
		m.Range = nil
	}
	m.Count = d.Uint64("count")
	return d.Err()
}

// StreamResults carries the events returned by a query
type StreamResults struct {
	Events []Event
}

func (m *StreamResults) Schema() *schema.Type { return StreamResultsType }

func (m *StreamResults) ToValue() msgpack.Value {
	elems := make([]msgpack.Value, len(m.Events))
	for i := range m.Events {
		elems[i] = m.Events[i].ToValue()
	}
	b := schema.NewBuilder()
	b.Array("events", elems)
	return b.Value()
}

func (m *StreamResults) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(StreamResultsType, v)
	elems := d.Array("events")
	if err := d.Err(); err != nil {
		return err
	}
	m.Events = make([]Event, len(elems))
	for i, elem := range elems {
		if err := m.Events[i].FromValue(elem); err != nil {
			return err
		}
	}
	return nil
}

// SampleStreamQuery returns a representative StreamQuery for codec
// validation tooling
func SampleStreamQuery() *StreamQuery {
	return &StreamQuery{
		StreamID: "stream1",
		Range:    &TimeRange{MinTime: 0, MaxTime: 1000},
		Count:    42,
	}
}

// Package logging defines the wire types for the log-writing
// capability.
package logging

import (
	"github.com/wippyai/actor-codec/errors"
	"github.com/wippyai/actor-codec/msgpack"
	"github.com/wippyai/actor-codec/schema"
)

// OpWriteLog requests a log write
const OpWriteLog = "Logging.WriteLog"

// Log levels carried in WriteLogRequest.Level. The set is closed; a
// level outside it fails decode.
const (
	LevelOff uint32 = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// WriteLogRequestType is the schema of WriteLogRequest
var WriteLogRequestType = schema.NewType("WriteLogRequest",
	schema.Required("level", schema.FieldUint32),
	schema.Required("body", schema.FieldString),
)

// WriteLogRequest asks the host to write a log entry attributed to the
// calling actor. Actors that just need debug output use the built-in
// console functions instead.
type WriteLogRequest struct {
	// Level is one of the Level constants
	Level uint32
	// Body of the log message
	Body string
}

func (m *WriteLogRequest) Schema() *schema.Type { return WriteLogRequestType }

func (m *WriteLogRequest) ToValue() msgpack.Value {
	b := schema.NewBuilder()
	b.Uint32("level", m.Level)
	b.String("body", m.Body)
	return b.Value()
}

func (m *WriteLogRequest) FromValue(v msgpack.Value) error {
	d := schema.NewTypeDecoder(WriteLogRequestType, v)
	m.Level = d.Uint32("level")
	m.Body = d.String("body")
	if err := d.Err(); err != nil {
		return err
	}
	if m.Level > LevelTrace {
		return errors.New(errors.PhaseBind, errors.KindSchemaMismatch).
			Path("WriteLogRequest", "level").
			Value(m.Level).
			Detail("level %d is not in the enumerated set (0-%d)", m.Level, LevelTrace).
			Build()
	}
	return nil
}

// SampleWriteLogRequest returns a representative WriteLogRequest for
// codec validation tooling
func SampleWriteLogRequest() *WriteLogRequest {
	return &WriteLogRequest{
		Level: LevelDebug,
		Body:  "This is a debug message",
	}
}

// report_json.go — JSON export of frames, traces, and carriers.
//
// This serializes the diagnostic VALUE for transport across a process
// boundary (crash dumps, report sinks); it is not a logging pipeline.
// jsoniter in stdlib-compatible mode keeps encoding cheap on exceptional
// paths without changing the wire shape.
package xgxtrace

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// frameJSON is the wire shape of a Frame. Field order mirrors Frame so the
// two stay convertible.
type frameJSON struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     uint   `json:"line"`
	Column   uint   `json:"column"`
}

// MarshalJSON implements json.Marshaler.
func (f Frame) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(frameJSON(f))
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var wire frameJSON
	if err := jsonAPI.Unmarshal(data, &wire); err != nil {
		return err
	}
	*f = Frame(wire)
	return nil
}

// traceJSON is the wire shape of a Trace: the tier's stable name plus the
// rendered frame list (creation frame only under TierLocation).
type traceJSON struct {
	Tier   Tier    `json:"tier"`
	Frames []Frame `json:"frames,omitempty"`
}

// MarshalJSON implements json.Marshaler. Frames are emitted oldest first,
// matching the default report ordering.
func (t Trace) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(traceJSON{
		Tier:   t.captureTier,
		Frames: t.Frames(),
	})
}

// carrierJSON is the wire shape of a carrier. The payload rides along as-is;
// callers own its serializability. A wrapped cause flattens to its text.
type carrierJSON struct {
	Message  string `json:"message"`
	Payload  any    `json:"payload,omitempty"`
	Cause    string `json:"cause,omitempty"`
	Location Frame  `json:"location"`
	Trace    Trace  `json:"trace"`
}

// MarshalJSON implements json.Marshaler for the full diagnostic value.
func (c *Carrier[P]) MarshalJSON() ([]byte, error) {
	wire := carrierJSON{
		Message:  c.msg,
		Payload:  any(c.payload),
		Location: c.creation,
		Trace:    c.trace,
	}
	if c.cause != nil {
		wire.Cause = c.cause.Error()
	}
	return jsonAPI.Marshal(wire)
}

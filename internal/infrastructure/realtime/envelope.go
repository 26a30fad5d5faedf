package realtime

import (
	"encoding/json"
	"errors"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// Frame types handled by the relay itself rather than forwarded.
const (
	TypePing      = "ping"
	TypePong      = "pong"
	TypeError     = "error"
	TypeConnected = "connected"
)

var ErrInvalidEnvelope = errors.New("realtime: envelope must be a JSON object with a type")

// Envelope is a client frame. Data is kept raw and forwarded untouched.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ParseEnvelope decodes a client frame.
func ParseEnvelope(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Type == "" {
		return Envelope{}, ErrInvalidEnvelope
	}
	return env, nil
}

// Encode marshals env back to wire form.
func (env Envelope) Encode() ([]byte, error) {
	return json.Marshal(env)
}

// EncodeEvent marshals a server event.
func EncodeEvent(evt shared.Event) ([]byte, error) {
	return json.Marshal(evt)
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

// ErrorFrame builds the frame sent back on a rejected client message.
func ErrorFrame(code, msg string) []byte {
	b, _ := json.Marshal(errorFrame{Type: TypeError, Code: code, Error: msg})
	return b
}

// ControlFrame builds a data-less frame such as pong or connected.
func ControlFrame(typ string, data any) []byte {
	b, _ := json.Marshal(shared.Event{Type: typ, Data: data})
	return b
}

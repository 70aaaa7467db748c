package parser

import "strconv"

// Type of packet.
type Type byte

const (
	// Connect type
	Connect Type = iota
	// Disconnect type
	Disconnect
	// Event type
	Event
	// Ack type
	Ack
	// Error type
	Error
)

func (t Type) String() string {
	switch t {
	case Connect:
		return "CONNECT"
	case Disconnect:
		return "DISCONNECT"
	case Event:
		return "EVENT"
	case Ack:
		return "ACK"
	case Error:
		return "ERROR"
	}

	return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
}

// validPayload reports whether a decoded payload has the shape the
// packet type requires. Event and Ack carry positional arguments, so
// their payload must be a JSON array. Error carries any diagnostic
// value, and Connect/Disconnect payloads are application-defined.
func (t Type) validPayload(data interface{}) bool {
	switch t {
	case Event, Ack:
		_, ok := data.([]interface{})
		return ok
	}

	return true
}

const defaultNamespace = "/"

// Packet is one protocol message between two peers.
//
// A packet is a value: it is created per encode/decode call, handed to
// exactly one owner and never mutated afterwards. NeedAck keeps an ID
// of 0 distinct from no id at all.
type Packet struct {
	Type      Type
	ID        uint64
	NeedAck   bool
	Namespace string
	Data      interface{}
}

const errorPrefix = "parser error: "

// newErrorPacket builds the packet a Decoder hands out in place of one
// it could not parse.
func newErrorPacket(msg string) Packet {
	return Packet{
		Type:      Error,
		Namespace: defaultNamespace,
		Data:      errorPrefix + msg,
	}
}

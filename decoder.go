package parser

import (
	"sync"

	"github.com/googollee/go-socket.io-parser/logger"
)

var decoderLogger = logger.GetLogger("parser")

// Decoder turns wire frames back into packets. A frame that fails the
// grammar or the payload shape rules comes back as a synthesized Error
// packet on the normal completion path, so one bad frame never aborts
// the caller's control flow.
type Decoder struct {
	json Serializer

	mu        sync.Mutex
	listeners []func(Packet)
}

// NewDecoder returns a decoder parsing payloads with json. A nil json
// selects DefaultSerializer.
func NewDecoder(json Serializer) *Decoder {
	if json == nil {
		json = DefaultSerializer()
	}

	return &Decoder{json: json}
}

// OnDecoded registers fn to observe every decoded packet, in addition
// to the per-call channel Add returns. fn runs on the goroutine that
// decoded the frame it observes.
func (d *Decoder) OnDecoded(fn func(Packet)) {
	d.mu.Lock()
	d.listeners = append(d.listeners, fn)
	d.mu.Unlock()
}

// Add ingests one frame. Non-string input is a caller error and fails
// right here. Otherwise the frame is decoded off the calling goroutine
// and the result, a packet or a synthesized error packet, is sent on
// the returned channel exactly once before it closes. Concurrent Add
// calls are independent; nothing is shared between their decodes.
func (d *Decoder) Add(data interface{}) (<-chan Packet, error) {
	frame, ok := data.(string)
	if !ok {
		return nil, ErrInvalidFrameType
	}

	decoded := make(chan Packet, 1)
	go func() {
		p := d.decodeFrame(frame)
		decoded <- p
		close(decoded)
		d.emit(p)
	}()

	return decoded, nil
}

// Destroy drops all listeners registered with OnDecoded. Calling it
// more than once is fine. Decodes already in flight still complete on
// their own channels.
func (d *Decoder) Destroy() {
	d.mu.Lock()
	d.listeners = nil
	d.mu.Unlock()
}

func (d *Decoder) emit(p Packet) {
	d.mu.Lock()
	listeners := make([]func(Packet), len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.Unlock()

	for _, fn := range listeners {
		fn(p)
	}
}

// decodeFrame runs the four scan stages: type digit, namespace, ack id,
// JSON payload. All scan state lives in this call frame.
func (d *Decoder) decodeFrame(frame string) Packet {
	if len(frame) == 0 {
		return newErrorPacket("unknown packet type")
	}

	if frame[0] < '0' || frame[0] > '0'+byte(Error) {
		decoderLogger.V(1).Info("rejected frame", "head", string(frame[0]))
		return newErrorPacket("unknown packet type " + string(frame[0]))
	}

	p := Packet{Type: Type(frame[0] - '0')}

	pos := 1
	p.Namespace, pos = scanNamespace(frame, pos)
	p.ID, p.NeedAck, pos = scanID(frame, pos)

	if pos < len(frame) {
		data, err := d.json.Parse(frame[pos:])
		if err != nil {
			decoderLogger.V(1).Info("payload did not parse", "type", p.Type.String())
			return newErrorPacket("invalid payload")
		}

		if !p.Type.validPayload(data) {
			return newErrorPacket("invalid payload")
		}

		p.Data = data
	}

	return p
}

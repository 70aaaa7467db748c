package parser

import (
	"strconv"
	"strings"
)

// encodeErrorFrame replaces the whole frame when payload serialization
// fails, so an Encode call always completes with exactly one frame.
const encodeErrorFrame = `4"encode error"`

// Encoder turns packets into wire frames. It keeps no state between
// calls; a single Encoder serves concurrent Encode calls.
type Encoder struct {
	json Serializer
}

// NewEncoder returns an encoder serializing payloads with json. A nil
// json selects DefaultSerializer.
func NewEncoder(json Serializer) *Encoder {
	if json == nil {
		json = DefaultSerializer()
	}

	return &Encoder{json: json}
}

// Encode builds the frame for p and hands it to onFrames as a
// one-element slice. onFrames runs exactly once, on its own goroutine,
// whether or not serialization succeeded.
func (e *Encoder) Encode(p Packet, onFrames func(frames []string)) {
	go func() {
		onFrames([]string{e.encodeFrame(p)})
	}()
}

func (e *Encoder) encodeFrame(p Packet) string {
	var b strings.Builder

	b.WriteByte(byte(p.Type) + '0')

	if p.Namespace != "" && p.Namespace != defaultNamespace {
		b.WriteString(p.Namespace)
		b.WriteByte(',')
	}

	if p.NeedAck {
		b.WriteString(strconv.FormatUint(p.ID, 10))
	}

	if p.Data != nil {
		text, err := e.json.Serialize(p.Data)
		if err != nil {
			return encodeErrorFrame
		}
		b.WriteString(text)
	}

	return b.String()
}

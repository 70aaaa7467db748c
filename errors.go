package parser

import "errors"

var (
	// ErrInvalidFrameType is returned by Decoder.Add when the input is
	// not a string frame. It signals misuse of the interface, not a
	// malformed remote frame, so it is never delivered as a packet.
	ErrInvalidFrameType = errors.New("frame should be a string")
)

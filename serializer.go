package parser

import (
	jsoniter "github.com/json-iterator/go"
)

// Serializer is the JSON capability used by Encoder and Decoder. Both
// methods may fail. The codec calls each at most once per frame and
// never holds a result across calls.
type Serializer interface {
	Serialize(v interface{}) (string, error)
	Parse(text string) (interface{}, error)
}

// DefaultSerializer returns the json-iterator backed Serializer used
// when a constructor gets a nil one.
func DefaultSerializer() Serializer {
	return jsonSerializer{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

type jsonSerializer struct {
	api jsoniter.API
}

func (s jsonSerializer) Serialize(v interface{}) (string, error) {
	return s.api.MarshalToString(v)
}

func (s jsonSerializer) Parse(text string) (interface{}, error) {
	var v interface{}
	if err := s.api.UnmarshalFromString(text, &v); err != nil {
		return nil, err
	}

	return v, nil
}

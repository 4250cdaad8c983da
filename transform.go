package apiclient

//
// Response transformers
//

import (
	"encoding/json"

	"github.com/ooni/apiclient/optional"
)

// Transformer converts raw response bytes into a typed value.
//
// Transform returns an empty [optional.Value] when data is nil or cannot
// be decoded. An empty result is not an error signal: the dispatcher
// pairs it with the independently computed domain error, and the caller
// distinguishes "no data" from "error occurred" by inspecting the error
// slot of the completion.
type Transformer[Output any] interface {
	// Transform converts data into a value or into None.
	Transform(data []byte) optional.Value[Output]
}

// RawTransformer is a [Transformer] passing response bytes through
// unmodified, with nil bytes mapping to None.
type RawTransformer struct{}

var _ Transformer[[]byte] = RawTransformer{}

// Transform implements [Transformer].
func (RawTransformer) Transform(data []byte) optional.Value[[]byte] {
	if data == nil {
		return optional.None[[]byte]()
	}
	return optional.Some(data)
}

// JSONTransformer is a [Transformer] decoding a JSON document
// into an Output.
type JSONTransformer[Output any] struct{}

// Transform implements [Transformer]. Nil data and data that does not
// parse as an Output yield None.
func (JSONTransformer[Output]) Transform(data []byte) optional.Value[Output] {
	if data == nil {
		return optional.None[Output]()
	}
	var output Output
	if err := json.Unmarshal(data, &output); err != nil {
		return optional.None[Output]()
	}
	return optional.Some(output)
}

// JSONListTransformer is a [Transformer] decoding a JSON array into a
// []Output preserving the order of the elements.
type JSONListTransformer[Output any] struct{}

// Transform implements [Transformer]. Nil data and data that does not
// parse as a JSON array of Output yield None.
func (JSONListTransformer[Output]) Transform(data []byte) optional.Value[[]Output] {
	if data == nil {
		return optional.None[[]Output]()
	}
	var outputs []Output
	if err := json.Unmarshal(data, &outputs); err != nil {
		return optional.None[[]Output]()
	}
	return optional.Some(outputs)
}

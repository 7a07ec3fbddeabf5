// Package grpcjson registers a JSON codec for gRPC so services can be
// described with plain Go structs instead of generated protobuf messages.
// Clients select it per call with grpc.CallContentSubtype(grpcjson.Name).
package grpcjson

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const Name = "json"

type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (Codec) Name() string { return Name }

func init() {
	encoding.RegisterCodec(Codec{})
}

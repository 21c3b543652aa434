package archive

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
)

// Marshal encodes o as a JSON record.
func Marshal(o *directions.RouteOptions) ([]byte, error) {
	data, err := json.Marshal(Encode(o))
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a JSON record produced by Marshal.
func Unmarshal(data []byte) (*directions.RouteOptions, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return Decode(&r)
}

// MarshalBinary encodes o as a protobuf google.protobuf.Struct.
func MarshalBinary(o *directions.RouteOptions) ([]byte, error) {
	data, err := Marshal(o)
	if err != nil {
		return nil, err
	}
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to convert record to struct: %w", err)
	}
	out, err := proto.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record struct: %w", err)
	}
	return out, nil
}

// UnmarshalBinary decodes a record produced by MarshalBinary.
func UnmarshalBinary(data []byte) (*directions.RouteOptions, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	jsonData, err := protojson.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return Unmarshal(jsonData)
}

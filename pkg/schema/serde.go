package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type serde struct {
	avroSchema avro.Schema
}

func (s serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}

// NewSerdeFeedRecordV1 builds the binary Avro serde for
// serializer.Record values.
func NewSerdeFeedRecordV1() (Serde, error) {
	const op = "NewSerdeFeedRecordV1"

	avroSchema, err := avro.Parse(FeedRecordSchemaTextV1)
	if err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}
	return serde{avroSchema: avroSchema}, nil
}

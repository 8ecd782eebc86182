// Package codec converts tag sets to and from the wire shapes of the
// provider tagging APIs. All three families currently share the
// [{Key, Value}] layout but are kept apart so each can follow its
// provider's quirks.
package codec

import (
	"errors"
	"fmt"

	"github.com/linecard/autotag/pkg/convention/tags"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrMalformedWireFormat = errors.New("malformed tag wire format")

// Pair is the generic key/value shape used by ARN addressed services.
type Pair struct {
	Key   *string
	Value *string
}

type ec2Codec struct{}
type s3Codec struct{}
type arnCodec struct{}

var (
	EC2 ec2Codec
	S3  s3Codec
	ARN arnCodec
)

func (ec2Codec) Serialize(s tags.Set) []ec2types.Tag {
	wire := make([]ec2types.Tag, 0, s.Len())
	s.Each(func(k, v string) {
		wire = append(wire, ec2types.Tag{Key: aws.String(k), Value: aws.String(v)})
	})
	return wire
}

func (ec2Codec) Deserialize(wire []ec2types.Tag) (tags.Set, error) {
	var s tags.Set
	for i, t := range wire {
		if err := put(&s, i, t.Key, t.Value); err != nil {
			return tags.Set{}, err
		}
	}
	return s, nil
}

func (s3Codec) Serialize(s tags.Set) []s3types.Tag {
	wire := make([]s3types.Tag, 0, s.Len())
	s.Each(func(k, v string) {
		wire = append(wire, s3types.Tag{Key: aws.String(k), Value: aws.String(v)})
	})
	return wire
}

func (s3Codec) Deserialize(wire []s3types.Tag) (tags.Set, error) {
	var s tags.Set
	for i, t := range wire {
		if err := put(&s, i, t.Key, t.Value); err != nil {
			return tags.Set{}, err
		}
	}
	return s, nil
}

func (arnCodec) Serialize(s tags.Set) []Pair {
	wire := make([]Pair, 0, s.Len())
	s.Each(func(k, v string) {
		wire = append(wire, Pair{Key: aws.String(k), Value: aws.String(v)})
	})
	return wire
}

func (arnCodec) Deserialize(wire []Pair) (tags.Set, error) {
	var s tags.Set
	for i, t := range wire {
		if err := put(&s, i, t.Key, t.Value); err != nil {
			return tags.Set{}, err
		}
	}
	return s, nil
}

// Flat renders a set for the APIs that take tags as a plain map (Lambda, SQS).
func Flat(s tags.Set) map[string]string {
	return s.Map()
}

func put(s *tags.Set, i int, key, value *string) error {
	switch {
	case key == nil:
		return fmt.Errorf("%w: entry %d has no Key", ErrMalformedWireFormat, i)
	case value == nil:
		return fmt.Errorf("%w: entry %d has no Value", ErrMalformedWireFormat, i)
	}
	s.Put(*key, *value)
	return nil
}

package cas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrNotFound  = errors.New("hash not found in CAS")
	ErrCollision = errors.New("hash collision")
)

type CAS interface {
	Put(item Hashable) (Hash, error)
	Has(hash Hash) bool
	Len() int
}

type Serde interface {
	Serialize(w io.Writer) error
	Deserialize(r io.Reader) error
}

type Hashable interface {
	Serde
}

type directStore interface {
	getValue(h Hash) (bool, []byte, error)
}

type Hash uint64

// Retrieve decodes the item stored under hash. PT is inferred from T, so
// callers write cas.Retrieve[puzzle.State](c, h).
func Retrieve[T any, PT interface {
	*T
	Hashable
}](c CAS, hash Hash) (T, error) {
	var t T
	v, ok := c.(directStore)
	if !ok {
		return t, errors.New("CAS does not support direct retrieval")
	}

	has, data, err := v.getValue(hash)
	if err != nil {
		return t, err
	}
	if !has {
		return t, fmt.Errorf("%w: 0x%x", ErrNotFound, hash)
	}

	entry := &TypedEntry{}
	if err := entry.Deserialize(bytes.NewReader(data)); err != nil {
		return t, fmt.Errorf("deserializing TypedEntry: %w", err)
	}
	if want := getTypeTag(PT(&t)); entry.TypeTag != want {
		return t, fmt.Errorf("type mismatch: expected %s, got %s", want, entry.TypeTag)
	}
	if err := PT(&t).Deserialize(bytes.NewReader(entry.Data)); err != nil {
		return t, fmt.Errorf("deserializing data: %w", err)
	}
	return t, nil
}

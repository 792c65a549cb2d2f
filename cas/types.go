package cas

import (
	"bytes"
	"io"
	"reflect"

	"github.com/shamaton/msgpack/v2"
)

// TypedEntry wraps a serialized Hashable with a type tag, so two types with the
// same encoding never share a hash.
type TypedEntry struct {
	TypeTag string
	Data    []byte
}

func (t *TypedEntry) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, t)
}

func (t *TypedEntry) Deserialize(r io.Reader) error {
	return msgpack.UnmarshalRead(r, t)
}

// getTypeTag returns the type tag for a given item
func getTypeTag(item Hashable) string {
	t := reflect.TypeOf(item)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// encode produces the stored bytes for item.
func encode(item Hashable) ([]byte, error) {
	var data bytes.Buffer
	if err := item.Serialize(&data); err != nil {
		return nil, err
	}
	entry := &TypedEntry{
		TypeTag: getTypeTag(item),
		Data:    data.Bytes(),
	}
	var buf bytes.Buffer
	if err := entry.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

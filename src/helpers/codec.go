package helpers

import (
	"go.mongodb.org/mongo-driver/bson"
)

// The backing file is text, so the store round-trips through relaxed
// Extended JSON rather than raw BSON. When decoding into map types the
// driver reuses the enclosing map's type for embedded documents, so
// nested values come back as plain maps; arrays decode as bson.A.

// EncodeExtJSON serializes val as relaxed Extended JSON.
func EncodeExtJSON(val interface{}) ([]byte, error) {
	return bson.MarshalExtJSON(val, false, false)
}

// DecodeExtJSON deserializes relaxed Extended JSON into val.
func DecodeExtJSON(data []byte, val interface{}) error {
	return bson.UnmarshalExtJSON(data, false, val)
}

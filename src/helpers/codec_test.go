package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEncodeDecodeExtJSON(t *testing.T) {
	in := map[string]map[string]interface{}{
		"person": {
			"doc-1": map[string]interface{}{
				"name":   "Craig",
				"age":    31,
				"height": 1.8,
				"active": true,
				"notes":  nil,
				"address": map[string]interface{}{
					"city": "Leicester",
				},
				"tags": []interface{}{"a", "b"},
			},
		},
	}

	data, err := EncodeExtJSON(in)
	require.NoError(t, err)

	var out map[string]map[string]interface{}
	require.NoError(t, DecodeExtJSON(data, &out))

	// Embedded documents take the enclosing map's type, so nested
	// values come back as plain maps
	doc, ok := out["person"]["doc-1"].(map[string]interface{})
	require.True(t, ok, "documents should decode as plain maps, got %T", out["person"]["doc-1"])
	assert.Equal(t, "Craig", doc["name"])
	assert.EqualValues(t, 31, doc["age"])
	assert.EqualValues(t, 1.8, doc["height"])
	assert.Equal(t, true, doc["active"])
	assert.Nil(t, doc["notes"])

	address, ok := doc["address"].(map[string]interface{})
	require.True(t, ok, "nested maps should decode as plain maps, got %T", doc["address"])
	assert.Equal(t, "Leicester", address["city"])

	tags, ok := doc["tags"].(bson.A)
	require.True(t, ok, "arrays should decode as bson.A, got %T", doc["tags"])
	assert.Equal(t, bson.A{"a", "b"}, tags)
}

func TestEncodeExtJSONIsText(t *testing.T) {
	data, err := EncodeExtJSON(map[string]interface{}{"name": "Craig", "age": 31})
	require.NoError(t, err)

	for _, b := range data {
		assert.True(t, b >= 0x20 && b < 0x7f, "output should be printable, got byte %#x", b)
	}
	assert.Contains(t, string(data), `"name":"Craig"`)
}

func TestEncodeExtJSONEmpty(t *testing.T) {
	data, err := EncodeExtJSON(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestDecodeExtJSONErrors(t *testing.T) {
	var out map[string]interface{}

	assert.Error(t, DecodeExtJSON([]byte("{not json!"), &out))
	assert.Error(t, DecodeExtJSON(nil, &out))
	assert.Error(t, DecodeExtJSON([]byte(`"just a string"`), &out))
}

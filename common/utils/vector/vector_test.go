package vector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(MakeVector3(1.5, -2.25, 100))
	assert.NoError(t, err)
	assert.Equal(t, "[1.5000,-2.2500,100.0000]", string(data))

	var decoded Vector3
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equals(MakeVector3(1.5, -2.25, 100)))
}

func TestVector3UnmarshalInsideStruct(t *testing.T) {
	var holder struct {
		Position Vector3 `json:"position"`
	}

	assert.NoError(t, json.Unmarshal([]byte(`{"position":[1,2,3]}`), &holder))
	assert.True(t, holder.Position.Equals(MakeVector3(1, 2, 3)))
}

func TestVector3UnmarshalRejectsBadPayloads(t *testing.T) {
	var v Vector3
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &v))
	assert.Error(t, json.Unmarshal([]byte(`"not a vector"`), &v))
}

func TestVector2JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(MakeVector2(0.5, -7))
	assert.NoError(t, err)

	var decoded Vector2
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equals(MakeVector2(0.5, -7)))

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &decoded))
}

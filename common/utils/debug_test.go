package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEmitsJSONLine(t *testing.T) {
	var buffer bytes.Buffer
	debugOutput = &buffer
	defer func() { debugOutput = os.Stdout }()

	SetDebugContext("simid", "debug-test-sim")
	Debug("unit-test", "hello")

	var msg Message
	assert.NoError(t, json.Unmarshal(buffer.Bytes(), &msg))

	assert.Equal(t, "unit-test", msg.Service)
	assert.Equal(t, "hello", msg.Message)
	assert.Equal(t, "debug-test-sim", msg.Context["simid"])
	assert.NotEmpty(t, msg.Time)
}

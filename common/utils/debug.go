package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

var (
	debugMutex   sync.RWMutex
	debugContext = Context{}
	debugOutput  io.Writer = os.Stdout
)

// SetDebugContext attaches a key to every subsequent debug line; the
// entrypoint uses it to tag all output with the simulation id.
func SetDebugContext(key string, value interface{}) {
	debugMutex.Lock()
	debugContext[key] = value
	debugMutex.Unlock()
}

func Debug(service string, message string) {
	context := make(Context)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	debugMutex.RLock()
	for key, value := range debugContext {
		context[key] = value
	}
	debugMutex.RUnlock()

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Fprintln(debugOutput, string(data))
}

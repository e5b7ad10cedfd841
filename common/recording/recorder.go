package recording

import (
	"github.com/motorarena/motorarena/common/types/scenariomap"
)

// Recorder persists simulation frames for later replay.
type Recorder interface {
	RecordMetadata(simId string, scenario *scenariomap.ScenarioContainer) error
	Record(simId string, msg string) error
	Close()
}

package recording

import (
	"github.com/motorarena/motorarena/common/types/scenariomap"
)

type EmptyRecorder struct{}

func MakeEmptyRecorder() EmptyRecorder {
	return EmptyRecorder{}
}

func (r EmptyRecorder) RecordMetadata(simId string, scenario *scenariomap.ScenarioContainer) error {
	return nil
}

func (r EmptyRecorder) Record(simId string, msg string) error {
	return nil
}

func (r EmptyRecorder) Close() {}

package recording

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/motorarena/motorarena/common/types/scenariomap"
	"github.com/motorarena/motorarena/common/utils"
)

type recordMetadata struct {
	SimId    string                         `json:"simid"`
	Date     string                         `json:"date"`
	Scenario *scenariomap.ScenarioContainer `json:"scenario"`
}

// FileRecorder appends one frame per line into <dir>/<simId>.record, with
// the scenario written alongside as <simId>.meta.json.
type FileRecorder struct {
	directory string
	files     map[string]*os.File
	mutex     *sync.Mutex
}

func MakeFileRecorder(directory string) *FileRecorder {
	return &FileRecorder{
		directory: directory,
		files:     make(map[string]*os.File),
		mutex:     &sync.Mutex{},
	}
}

func (r *FileRecorder) RecordMetadata(simId string, scenario *scenariomap.ScenarioContainer) error {
	metadata := recordMetadata{
		SimId:    simId,
		Date:     time.Now().Format(time.RFC3339),
		Scenario: scenario,
	}

	data, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(r.directory, simId+".meta.json"), data, 0644)
}

func (r *FileRecorder) Record(simId string, msg string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	file, ok := r.files[simId]
	if !ok {
		var err error
		file, err = os.OpenFile(
			filepath.Join(r.directory, simId+".record"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			return err
		}

		r.files[simId] = file
	}

	_, err := file.WriteString(msg + "\n")
	return err
}

func (r *FileRecorder) Close() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for simId, file := range r.files {
		file.Close()
		delete(r.files, simId)
	}

	utils.Debug("recording", "closed record files")
}

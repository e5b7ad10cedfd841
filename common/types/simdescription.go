package types

import (
	"encoding/json"
	"io/ioutil"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/motorarena/motorarena/common/types/scenariomap"
)

type SimDescriptionInterface interface {
	GetId() string
	GetName() string
	GetTps() int
	GetScenario() *scenariomap.ScenarioContainer
}

type SimDescriptionFile struct {
	id       string
	name     string
	tps      int
	scenario *scenariomap.ScenarioContainer
}

func NewSimDescriptionFromFile(id string, name string, tps int, path string) (*SimDescriptionFile, error) {
	jsonsource, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, bettererrors.
			New("Could not read scenario file").
			With(bettererrors.NewFromErr(err)).
			SetContext("path", path)
	}

	var scenario scenariomap.ScenarioContainer
	if err := json.Unmarshal(jsonsource, &scenario); err != nil {
		return nil, bettererrors.
			New("Could not parse scenario JSON").
			With(bettererrors.NewFromErr(err)).
			SetContext("path", path)
	}

	return &SimDescriptionFile{
		id:       id,
		name:     name,
		tps:      tps,
		scenario: &scenario,
	}, nil
}

func (d *SimDescriptionFile) GetId() string {
	return d.id
}

func (d *SimDescriptionFile) GetName() string {
	return d.name
}

func (d *SimDescriptionFile) GetTps() int {
	return d.tps
}

func (d *SimDescriptionFile) GetScenario() *scenariomap.ScenarioContainer {
	return d.scenario
}

package types

import (
	commontypes "github.com/motorarena/motorarena/common/types"
	"github.com/motorarena/motorarena/common/types/scenariomap"
	"github.com/motorarena/motorarena/common/utils"
)

type VizSim struct {
	simDescription commontypes.SimDescriptionInterface
	pool           *WatcherMap
}

func NewVizSim(simDescription commontypes.SimDescriptionInterface) *VizSim {
	return &VizSim{
		simDescription: simDescription,
		pool:           NewWatcherMap(),
	}
}

func (vizsim *VizSim) GetSim() commontypes.SimDescriptionInterface {
	return vizsim.simDescription
}

func (vizsim *VizSim) GetId() string {
	return vizsim.simDescription.GetId()
}

func (vizsim *VizSim) GetName() string {
	return vizsim.simDescription.GetName()
}

func (vizsim *VizSim) GetTps() int {
	return vizsim.simDescription.GetTps()
}

type VizInitMessageData struct {
	Scenario *scenariomap.ScenarioContainer `json:"scenario"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

// SetWatcher registers a websocket consumer and sends it the scenario so
// it can draw the road network before the first frame arrives.
func (vizsim *VizSim) SetWatcher(watcher *Watcher) {
	vizsim.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Scenario: vizsim.simDescription.GetScenario(),
		},
	}

	err := watcher.GetConn().WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON;"+err.Error())
	}
}

func (vizsim *VizSim) RemoveWatcher(watcherid string) {
	vizsim.pool.Remove(watcherid)
}

func (vizsim *VizSim) GetNumberWatchers() int {
	return vizsim.pool.Size()
}

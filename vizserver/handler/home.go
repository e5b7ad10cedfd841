package handler

import (
	"encoding/json"
	"net/http"

	"github.com/motorarena/motorarena/vizserver/types"
)

type homeSimEntry struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Tps      int    `json:"tps"`
	Watchers int    `json:"watchers"`
}

func Home(sims *types.VizSimMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := make([]homeSimEntry, 0)

		for _, item := range sims.ToArrayGeneric() {
			if sim, ok := item.(*types.VizSim); ok {
				entries = append(entries, homeSimEntry{
					Id:       sim.GetId(),
					Name:     sim.GetName(),
					Tps:      sim.GetTps(),
					Watchers: sim.GetNumberWatchers(),
				})
			}
		}

		data, _ := json.Marshal(entries)

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

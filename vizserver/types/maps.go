package types

import (
	commontypes "github.com/motorarena/motorarena/common/types"
)

type WatcherMap struct {
	*commontypes.SyncMap
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		commontypes.NewSyncMap(),
	}
}

func (wmap *WatcherMap) Get(id string) *Watcher {
	if res, ok := (wmap.GetGeneric(id)).(*Watcher); ok {
		return res
	}

	return nil
}

type VizSimMap struct {
	*commontypes.SyncMap
}

func NewVizSimMap() *VizSimMap {
	return &VizSimMap{
		commontypes.NewSyncMap(),
	}
}

func (smap *VizSimMap) Get(id string) *VizSim {
	if res, ok := (smap.GetGeneric(id)).(*VizSim); ok {
		return res
	}

	return nil
}

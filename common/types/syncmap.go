package types

import "sync"

type SyncMap struct {
	data map[string]interface{}
	lock *sync.RWMutex
}

func NewSyncMap() *SyncMap {
	return &SyncMap{
		data: make(map[string]interface{}, 0),
		lock: &sync.RWMutex{},
	}
}

func (smap *SyncMap) GetGeneric(id string) interface{} {
	var res interface{}
	present := false

	smap.lock.RLock()
	if res, present = smap.data[id]; !present {
		res = nil
	}
	smap.lock.RUnlock()

	return res
}

func (smap *SyncMap) Set(id string, item interface{}) error {
	smap.lock.Lock()
	smap.data[id] = item
	smap.lock.Unlock()

	return nil
}

func (smap *SyncMap) Remove(id string) {
	smap.lock.Lock()
	delete(smap.data, id)
	smap.lock.Unlock()
}

func (smap *SyncMap) Size() int {
	smap.lock.RLock()
	size := len(smap.data)
	smap.lock.RUnlock()

	return size
}

func (smap *SyncMap) ToArrayGeneric() []interface{} {
	smap.lock.RLock()
	res := make([]interface{}, 0, len(smap.data))
	for _, item := range smap.data {
		res = append(res, item)
	}
	smap.lock.RUnlock()

	return res
}

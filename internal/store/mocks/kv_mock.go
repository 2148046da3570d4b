package mocks

import (
	"errors"
	"sync"
)

var errBackendDown = errors.New("mocks: backend unavailable")

// MemKV is an in-memory store.KV.
type MemKV struct {
	mu      sync.Mutex
	data    map[string]string
	FailSet bool
	FailGet bool
}

func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string]string)}
}

func (kv *MemKV) Get(key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.FailGet {
		return "", false, errBackendDown
	}
	v, ok := kv.data[key]
	return v, ok, nil
}

func (kv *MemKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.FailSet {
		return errBackendDown
	}
	kv.data[key] = value
	return nil
}

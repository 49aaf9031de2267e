// Package model defines the model interface contracts and shared trained-state
// management.
package model

import "sync"

// StateManager tracks whether a model has been trained, plus the data shape
// seen at training time. The mutex makes the trained flag safe to read from
// concurrent Predict calls while a Train call is serialized by the caller.
type StateManager struct {
	mu        sync.RWMutex
	trained   bool
	nFeatures int
	nSamples  int
}

// NewStateManager returns an untrained state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsTrained reports whether the model has completed a successful Train.
func (s *StateManager) IsTrained() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trained
}

// SetTrained marks the model as trained with the given data shape.
func (s *StateManager) SetTrained(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trained = true
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// Reset returns the model to the untrained state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trained = false
	s.nFeatures = 0
	s.nSamples = 0
}

// Dimensions returns the feature and sample counts seen at training time.
func (s *StateManager) Dimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

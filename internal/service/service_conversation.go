// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/proxy-desk-bot/models"
)

// conversationService keeps pending prompts in memory. State is lost on
// restart, which simply returns every user to Idle.
type conversationService struct {
	mu     sync.RWMutex
	states map[int64]models.ConversationState

	// ttl expires prompts older than it on Take and Peek. Zero disables
	// expiry.
	ttl time.Duration
	now func() time.Time
}

func NewConversationService(ttl time.Duration) ConversationService {
	return newConversationService(ttl, time.Now)
}

func newConversationService(ttl time.Duration, now func() time.Time) *conversationService {
	return &conversationService{
		states: make(map[int64]models.ConversationState),
		ttl:    ttl,
		now:    now,
	}
}

func (c *conversationService) Begin(userID int64, kind models.PromptKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if kind == models.PromptNone {
		delete(c.states, userID)
		return
	}
	c.states[userID] = models.ConversationState{Prompt: kind, SetAt: c.now()}
}

func (c *conversationService) Take(userID int64) (models.PromptKind, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.states[userID]
	if !ok {
		return models.PromptNone, false
	}
	delete(c.states, userID)

	if c.expired(state) {
		return models.PromptNone, false
	}
	return state.Prompt, true
}

func (c *conversationService) Cancel(userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, ok := c.states[userID]
	delete(c.states, userID)
	return ok && !c.expired(state)
}

func (c *conversationService) Peek(userID int64) models.ConversationState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state := c.states[userID]
	if c.expired(state) {
		return models.ConversationState{}
	}
	return state
}

func (c *conversationService) expired(state models.ConversationState) bool {
	if c.ttl <= 0 || state.Idle() {
		return false
	}
	return c.now().Sub(state.SetAt) > c.ttl
}

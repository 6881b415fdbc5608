// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// BlockState is the canonical folded state of one entity.
type BlockState struct {
	EntityID    string `json:"entity_id"`
	ContainerID string `json:"container_id"`
	Text        string `json:"text"`
	SortKey     string `json:"sort_key"`
	Indent      int    `json:"indent"`
	Deleted     bool   `json:"deleted"`
}

// FoldBlockOps computes the canonical state of every entity touched by the
// given operation set. The result is a pure function of the set: two devices
// holding the same operations converge on identical state regardless of the
// real-time order in which they received them.
//
// Algorithm: deduplicate by operation id (first occurrence wins), sort by
// (logical clock ascending, operation id ascending), then fold sequentially
// per entity. The operation-id tie-break matters because two devices can
// produce the same clock value independently.
func FoldBlockOps(ops []BlockOp) map[string]BlockState {
	deduped := make([]BlockOp, 0, len(ops))
	seen := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		id := op.Meta().OpID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, op)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		a, b := deduped[i].Meta(), deduped[j].Meta()
		if a.Clock != b.Clock {
			return a.Clock < b.Clock
		}
		return a.OpID < b.OpID
	})

	states := make(map[string]BlockState)
	for _, op := range deduped {
		entityID := op.Meta().EntityID
		state, exists := states[entityID]

		switch v := op.(type) {
		case AddOp:
			// first creator wins under the sort order, not first-received
			if exists && !state.Deleted {
				continue
			}
			states[entityID] = BlockState{
				EntityID:    entityID,
				ContainerID: v.ContainerID,
				Text:        v.Text,
				SortKey:     v.SortKey,
				Indent:      v.Indent,
			}
		case EditOp:
			if !exists || state.Deleted {
				continue
			}
			state.Text = v.Text
			states[entityID] = state
		case MoveOp:
			if !exists || state.Deleted {
				continue
			}
			state.SortKey = v.SortKey
			state.Indent = v.Indent
			states[entityID] = state
		case DeleteOp:
			if !exists {
				state = BlockState{EntityID: entityID}
			}
			state.Deleted = true
			states[entityID] = state
		}
	}

	return states
}

// FoldEntity folds the subset of operations targeting a single entity and
// reports whether any operation touched it at all.
func FoldEntity(entityID string, ops []BlockOp) (BlockState, bool) {
	scoped := make([]BlockOp, 0, len(ops))
	for _, op := range ops {
		if op.Meta().EntityID == entityID {
			scoped = append(scoped, op)
		}
	}
	if len(scoped) == 0 {
		return BlockState{}, false
	}

	state, ok := FoldBlockOps(scoped)[entityID]
	return state, ok
}

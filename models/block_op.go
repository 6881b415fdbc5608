package models

import (
	"encoding/json"
	"fmt"
)

// OpKind discriminates the block operation variants carried inside an
// envelope payload. The server never sees these; encoding and decoding
// belong entirely to the client.
type OpKind string

const (
	OpKindAdd    OpKind = "add"
	OpKindEdit   OpKind = "edit"
	OpKindMove   OpKind = "move"
	OpKindDelete OpKind = "delete"
)

// OpMeta carries the fields shared by every block operation variant.
//
// Clock is a per-device monotonically increasing counter, not wall-clock
// time. Two devices can independently produce the same clock value; the
// operation id breaks such ties deterministically.
type OpMeta struct {
	OpID     string `json:"operationId"`
	EntityID string `json:"entityId"`
	DeviceID string `json:"deviceId"`
	Clock    int64  `json:"logicalClock"`
}

// BlockOp is the tagged union of block operations. Each variant carries
// only the fields relevant to its kind so the merge fold stays exhaustive
// and type-checked.
type BlockOp interface {
	Kind() OpKind
	Meta() OpMeta
}

// AddOp creates a block inside a container (page). It only takes effect if
// no live state exists yet for the entity.
type AddOp struct {
	OpMeta
	ContainerID string
	Text        string
	SortKey     string
	Indent      int
}

func (op AddOp) Kind() OpKind { return OpKindAdd }
func (op AddOp) Meta() OpMeta { return op.OpMeta }

// EditOp overwrites a live block's text.
type EditOp struct {
	OpMeta
	Text string
}

func (op EditOp) Kind() OpKind { return OpKindEdit }
func (op EditOp) Meta() OpMeta { return op.OpMeta }

// MoveOp overwrites a live block's position.
type MoveOp struct {
	OpMeta
	SortKey string
	Indent  int
}

func (op MoveOp) Kind() OpKind { return OpKindMove }
func (op MoveOp) Meta() OpMeta { return op.OpMeta }

// DeleteOp marks a block deleted regardless of prior state. The tombstone
// is sticky: only a later AddOp (which checks for live state) can revive
// the entity.
type DeleteOp struct {
	OpMeta
}

func (op DeleteOp) Kind() OpKind { return OpKindDelete }
func (op DeleteOp) Meta() OpMeta { return op.OpMeta }

// blockOpWire is the flat JSON shape of a block operation with a "kind"
// discriminant and optional per-kind fields.
type blockOpWire struct {
	OpID        string `json:"operationId"`
	EntityID    string `json:"entityId"`
	DeviceID    string `json:"deviceId"`
	Clock       int64  `json:"logicalClock"`
	Kind        OpKind `json:"kind"`
	ContainerID string `json:"containerId,omitempty"`
	Text        string `json:"text,omitempty"`
	SortKey     string `json:"sortKey,omitempty"`
	Indent      int    `json:"indent,omitempty"`
}

// EncodeBlockOp serializes a block operation to its flat JSON wire form.
func EncodeBlockOp(op BlockOp) ([]byte, error) {
	meta := op.Meta()
	wire := blockOpWire{
		OpID:     meta.OpID,
		EntityID: meta.EntityID,
		DeviceID: meta.DeviceID,
		Clock:    meta.Clock,
		Kind:     op.Kind(),
	}

	switch v := op.(type) {
	case AddOp:
		wire.ContainerID = v.ContainerID
		wire.Text = v.Text
		wire.SortKey = v.SortKey
		wire.Indent = v.Indent
	case EditOp:
		wire.Text = v.Text
	case MoveOp:
		wire.SortKey = v.SortKey
		wire.Indent = v.Indent
	case DeleteOp:
		// no extra fields
	default:
		return nil, fmt.Errorf("encode block op: unknown variant %T", op)
	}

	return json.Marshal(wire)
}

// DecodeBlockOp parses the flat JSON wire form back into the matching
// variant. Unknown kinds are rejected rather than silently dropped so a
// newer device's operations are never misfolded by an older one.
func DecodeBlockOp(data []byte) (BlockOp, error) {
	var wire blockOpWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode block op: %w", err)
	}

	meta := OpMeta{
		OpID:     wire.OpID,
		EntityID: wire.EntityID,
		DeviceID: wire.DeviceID,
		Clock:    wire.Clock,
	}

	switch wire.Kind {
	case OpKindAdd:
		return AddOp{OpMeta: meta, ContainerID: wire.ContainerID, Text: wire.Text, SortKey: wire.SortKey, Indent: wire.Indent}, nil
	case OpKindEdit:
		return EditOp{OpMeta: meta, Text: wire.Text}, nil
	case OpKindMove:
		return MoveOp{OpMeta: meta, SortKey: wire.SortKey, Indent: wire.Indent}, nil
	case OpKindDelete:
		return DeleteOp{OpMeta: meta}, nil
	default:
		return nil, fmt.Errorf("decode block op %s: unknown kind %q", wire.OpID, wire.Kind)
	}
}

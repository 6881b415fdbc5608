package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestEncodeBlockOp_CarriesKindDiscriminant(t *testing.T) {
	data, err := EncodeBlockOp(AddOp{
		OpMeta:      OpMeta{OpID: "op-1", EntityID: "b1", DeviceID: "d1", Clock: 1},
		ContainerID: "page-1",
		Text:        "hello",
		SortKey:     "000001",
	})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	for _, fragment := range []string{`"kind":"add"`, `"operationId":"op-1"`, `"containerId":"page-1"`} {
		if !strings.Contains(string(data), fragment) {
			t.Fatalf("expected %s in %s", fragment, data)
		}
	}
}

func TestDecodeBlockOp_RestoresVariants(t *testing.T) {
	ops := []BlockOp{
		AddOp{
			OpMeta:      OpMeta{OpID: "op-1", EntityID: "b1", DeviceID: "d1", Clock: 1},
			ContainerID: "page-1",
			Text:        "hello",
			SortKey:     "000001",
			Indent:      2,
		},
		EditOp{OpMeta: OpMeta{OpID: "op-2", EntityID: "b1", DeviceID: "d1", Clock: 2}, Text: "changed"},
		MoveOp{OpMeta: OpMeta{OpID: "op-3", EntityID: "b1", DeviceID: "d2", Clock: 3}, SortKey: "000005", Indent: 1},
		DeleteOp{OpMeta: OpMeta{OpID: "op-4", EntityID: "b1", DeviceID: "d2", Clock: 4}},
	}

	for _, op := range ops {
		data, err := EncodeBlockOp(op)
		if err != nil {
			t.Fatalf("encode %s: %v", op.Kind(), err)
		}

		decoded, err := DecodeBlockOp(data)
		if err != nil {
			t.Fatalf("decode %s: %v", op.Kind(), err)
		}
		if !reflect.DeepEqual(decoded, op) {
			t.Fatalf("round trip changed the op: %+v != %+v", decoded, op)
		}
	}
}

// A newer client may ship operation kinds this build does not know. They
// must fail decoding loudly instead of folding as something else.
func TestDecodeBlockOp_RejectsUnknownKind(t *testing.T) {
	_, err := DecodeBlockOp([]byte(`{"operationId":"op-1","entityId":"b1","kind":"transmute"}`))
	if err == nil {
		t.Fatalf("expected an error for an unknown kind")
	}
	if !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeBlockOp_RejectsMalformedJSON(t *testing.T) {
	if _, err := DecodeBlockOp([]byte(`{not json`)); err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}

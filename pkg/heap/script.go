package heap

import (
	"strings"

	"github.com/matzehuels/algoviz/pkg/keys"
)

// OpKind identifies a scripted heap operation.
type OpKind int

const (
	OpInsert OpKind = iota
	OpExtract
	OpClear
)

// Op is one scripted heap operation. Value is only meaningful for OpInsert.
type Op struct {
	Kind  OpKind
	Value float64
}

// ParseScript reads a sequence of heap operations separated by commas,
// semicolons or newlines. Recognized forms:
//
//	insert 5   (also "push 5" or a bare "5")
//	extract    (also "pop")
//	clear
//
// Entries that match none of these, including inserts of non-numeric values,
// are dropped silently.
func ParseScript(s string) []Op {
	entries := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	var ops []Op
	for _, entry := range entries {
		if op, ok := parseOp(entry); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

func parseOp(entry string) (Op, bool) {
	fields := strings.Fields(strings.ToLower(entry))
	switch len(fields) {
	case 1:
		switch fields[0] {
		case "extract", "pop":
			return Op{Kind: OpExtract}, true
		case "clear":
			return Op{Kind: OpClear}, true
		}
		if v, ok := keys.Parse(fields[0]); ok {
			return Op{Kind: OpInsert, Value: v}, true
		}
	case 2:
		if fields[0] != "insert" && fields[0] != "push" {
			return Op{}, false
		}
		if v, ok := keys.Parse(fields[1]); ok {
			return Op{Kind: OpInsert, Value: v}, true
		}
	}
	return Op{}, false
}

// Apply runs ops in order and returns the keys removed by OpExtract.
// Extracts on an empty heap contribute nothing.
func (h *Heap) Apply(ops []Op) []float64 {
	var extracted []float64
	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			h.Insert(op.Value)
		case OpExtract:
			if v, ok := h.ExtractRoot(); ok {
				extracted = append(extracted, v)
			}
		case OpClear:
			h.Clear()
		}
	}
	return extracted
}

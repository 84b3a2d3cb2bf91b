package history

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gridio/go-grid-editor/core/grid"
)

const defaultLimit = 300

var ErrNoHistory = errors.New("no history")

type Kind string

const (
	KindUpdateCell   Kind = "cell.update"
	KindInsertRow    Kind = "row.insert"
	KindDeleteRow    Kind = "row.delete"
	KindInsertColumn Kind = "column.insert"
	KindDeleteColumn Kind = "column.delete"
	KindMerge        Kind = "cells.merge"
	KindSplit        Kind = "cells.split"
	KindPaste        Kind = "cells.paste"
	KindSort         Kind = "rows.sort"
)

// Operation is a reversible document transformation stored as plain data:
// complete before and after snapshots, no closures over outer state. Undo
// installs Before, redo installs After, no matter how many operations have
// intervened.
type Operation struct {
	Id          string
	Kind        Kind
	Description string
	Before      *grid.Grid
	After       *grid.Grid
	CreatedAt   time.Time
}

func NewOperation(kind Kind, description string, before, after *grid.Grid) *Operation {
	return &Operation{
		Id:          uuid.New().String(),
		Kind:        kind,
		Description: description,
		Before:      before,
		After:       after,
		CreatedAt:   time.Now(),
	}
}

// IsEmpty reports whether the operation changes nothing. Empty operations
// must not be recorded: undoing one restores the identical state.
func (op *Operation) IsEmpty() bool {
	return op == nil || op.Before.Equal(op.After)
}

type History interface {
	Add(op *Operation)
	Len() int
	Previous() (*Operation, error)
	Next() (*Operation, error)
	CanUndo() bool
	CanRedo() bool
	Reset()
}

func NewHistory(limit int) History {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &history{limit: limit}
}

type history struct {
	limit      int
	operations []*Operation
	pointer    int
}

// Add pushes an operation, discarding any redo tail.
func (h *history) Add(op *Operation) {
	if op.IsEmpty() {
		return
	}
	if len(h.operations) != h.pointer {
		h.operations = h.operations[:h.pointer]
	}
	h.operations = append(h.operations, op)
	h.pointer = len(h.operations)
	if h.pointer > h.limit {
		h.operations[0] = nil
		h.operations = h.operations[1:]
		h.pointer--
	}
}

func (h *history) Len() int {
	return h.pointer
}

func (h *history) Previous() (*Operation, error) {
	if h.pointer > 0 {
		h.pointer--
		return h.operations[h.pointer], nil
	}
	return nil, ErrNoHistory
}

func (h *history) Next() (*Operation, error) {
	if h.pointer < len(h.operations) {
		op := h.operations[h.pointer]
		h.pointer++
		return op, nil
	}
	return nil, ErrNoHistory
}

func (h *history) CanUndo() bool {
	return h.pointer > 0
}

func (h *history) CanRedo() bool {
	return h.pointer < len(h.operations)
}

func (h *history) Reset() {
	h.pointer = 0
	h.operations = h.operations[:0]
}

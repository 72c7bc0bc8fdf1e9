package evaluator

import (
	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/symbols"
)

// Heap is the per-evaluation symbol store: variables by id, and
// user-declared function bodies by id. It is never shared across two
// concurrent evaluations.
type Heap struct {
	vars  map[symbols.ID]Value
	funcs map[symbols.ID]*bound.Block
}

func NewHeap() *Heap {
	return &Heap{vars: map[symbols.ID]Value{}, funcs: map[symbols.ID]*bound.Block{}}
}

func (h *Heap) Get(id symbols.ID) (Value, bool) {
	v, ok := h.vars[id]
	return v, ok
}

func (h *Heap) Set(id symbols.ID, v Value) {
	h.vars[id] = v
}

func (h *Heap) DeclareFunc(id symbols.ID, body *bound.Block) {
	h.funcs[id] = body
}

func (h *Heap) Func(id symbols.ID) (*bound.Block, bool) {
	b, ok := h.funcs[id]
	return b, ok
}

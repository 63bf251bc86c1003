// Package cabi computes C struct layouts from header declarations so that
// Go mirrors of foreign records can be checked against the native ABI.
package cabi

import "sync"

// Layout is the ABI layout of a type for a specific Target.
type Layout struct {
	Size  int
	Align int

	// Struct-only:
	FieldOffsets []int
	FieldAligns  []int
}

// Engine computes memory layout for C type descriptors.
type Engine struct {
	Target Target

	mu    sync.Mutex
	cache map[*Type]cacheEntry
}

type cacheEntry struct {
	layout Layout
	err    error
}

// New creates a new Engine for the specified target.
func New(target Target) *Engine {
	return &Engine{
		Target: target,
		cache:  make(map[*Type]cacheEntry, 64),
	}
}

type layoutState struct {
	stack []*Type
	index map[*Type]int
}

// LayoutOf computes and caches the layout of a type.
func (e *Engine) LayoutOf(t *Type) (Layout, error) {
	if e == nil {
		return Layout{Size: 0, Align: 1}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cache == nil {
		e.cache = make(map[*Type]cacheEntry, 64)
	}
	state := &layoutState{index: make(map[*Type]int, 16)}
	layout, err := e.layoutOf(t, state)
	if err != nil {
		return layout, err
	}
	return layout, nil
}

func (e *Engine) layoutOf(t *Type, state *layoutState) (Layout, *LayoutError) {
	if t == nil {
		return Layout{Size: 0, Align: 1}, &LayoutError{Kind: LayoutErrNilType, Type: "<nil>"}
	}
	if cached, ok := e.cache[t]; ok {
		if cached.err != nil {
			return cached.layout, cached.err.(*LayoutError)
		}
		return cached.layout, nil
	}

	if idx, ok := state.index[t]; ok {
		cycle := make([]string, 0, len(state.stack)-idx+1)
		for _, s := range state.stack[idx:] {
			cycle = append(cycle, s.Name)
		}
		cycle = append(cycle, t.Name)
		err := &LayoutError{Kind: LayoutErrRecursiveUnsized, Type: t.Name, Cycle: cycle}
		e.cache[t] = cacheEntry{layout: Layout{Size: 0, Align: 1}, err: err}
		return Layout{Size: 0, Align: 1}, err
	}

	state.index[t] = len(state.stack)
	state.stack = append(state.stack, t)
	layout, err := e.computeLayout(t, state)
	state.stack = state.stack[:len(state.stack)-1]
	delete(state.index, t)

	entry := cacheEntry{layout: layout}
	if err != nil {
		entry.err = err
	}
	e.cache[t] = entry
	return layout, err
}

// SizeOf returns the size of a type in bytes.
func (e *Engine) SizeOf(t *Type) (int, error) {
	l, err := e.LayoutOf(t)
	return l.Size, err
}

// AlignOf returns the alignment requirement of a type in bytes.
func (e *Engine) AlignOf(t *Type) (int, error) {
	l, err := e.LayoutOf(t)
	return l.Align, err
}

// FieldOffset returns the byte offset of a struct field.
func (e *Engine) FieldOffset(structT *Type, fieldIdx int) (int, error) {
	l, err := e.LayoutOf(structT)
	if err != nil {
		return 0, err
	}
	if fieldIdx < 0 || fieldIdx >= len(l.FieldOffsets) {
		return 0, nil
	}
	return l.FieldOffsets[fieldIdx], nil
}

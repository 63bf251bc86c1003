package cabi

import (
	"fortio.org/safecast"
)

func (e *Engine) computeLayout(t *Type, state *layoutState) (Layout, *LayoutError) {
	switch t.Kind {
	case KindScalar:
		switch t.Size {
		case 1, 2, 4, 8:
			return Layout{Size: t.Size, Align: t.Size}, nil
		}
		return Layout{Size: 0, Align: 1}, &LayoutError{Kind: LayoutErrInvalidScalar, Type: t.Name, Value: int64(t.Size)}

	case KindPointer:
		return e.ptrLayout(), nil

	case KindArray:
		return e.arrayFixedLayout(t, state)

	case KindFlexArray:
		elem, err := e.layoutOf(t.Elem, state)
		if err != nil {
			return Layout{Size: 0, Align: 1}, err
		}
		return Layout{Size: 0, Align: elem.Align}, nil

	case KindStruct:
		return e.structLayout(t, state)

	case KindUnion:
		return e.unionLayout(t, state)

	default:
		return Layout{Size: 0, Align: 1}, nil
	}
}

func (e *Engine) ptrLayout() Layout {
	ptrSize := e.Target.PtrSize
	ptrAlign := e.Target.PtrAlign
	if ptrSize <= 0 {
		ptrSize = 8
	}
	if ptrAlign <= 0 {
		ptrAlign = ptrSize
	}
	return Layout{Size: ptrSize, Align: ptrAlign}
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	r := n % align
	if r == 0 {
		return n
	}
	return n + (align - r)
}

// RoundUp rounds n up to the next multiple of align.
func RoundUp(n, align int) int {
	return roundUp(n, align)
}

func (e *Engine) arrayFixedLayout(t *Type, state *layoutState) (Layout, *LayoutError) {
	if t.Len < 0 {
		return Layout{Size: 0, Align: 1}, &LayoutError{Kind: LayoutErrNegativeLength, Type: t.Name, Value: t.Len}
	}
	n, convErr := safecast.Conv[int](t.Len)
	if convErr != nil {
		return Layout{Size: 0, Align: 1}, &LayoutError{Kind: LayoutErrLengthConversion, Type: t.Name, Err: convErr}
	}
	elemLayout, err := e.layoutOf(t.Elem, state)
	if err != nil {
		return Layout{Size: 0, Align: 1}, err
	}
	elemAlign := max(elemLayout.Align, 1)
	stride := roundUp(elemLayout.Size, elemAlign)
	return Layout{
		Size:  stride * n,
		Align: elemAlign,
	}, nil
}

func (e *Engine) structLayout(t *Type, state *layoutState) (Layout, *LayoutError) {
	if len(t.Fields) == 0 {
		return Layout{Size: 0, Align: 1}, nil
	}
	offsets := make([]int, len(t.Fields))
	aligns := make([]int, len(t.Fields))

	size := 0
	align := 1
	for i, f := range t.Fields {
		if f.Type != nil && f.Type.Kind == KindFlexArray && i != len(t.Fields)-1 {
			return Layout{Size: 0, Align: 1}, &LayoutError{Kind: LayoutErrMisplacedFlexArray, Type: t.Name}
		}
		fl, err := e.layoutOf(f.Type, state)
		if err != nil {
			return Layout{Size: 0, Align: 1}, err
		}
		fAlign := max(fl.Align, 1)
		size = roundUp(size, fAlign)
		offsets[i] = size
		aligns[i] = fAlign
		size += fl.Size
		align = max(align, fAlign)
	}
	size = roundUp(size, align)

	return Layout{
		Size:         size,
		Align:        align,
		FieldOffsets: offsets,
		FieldAligns:  aligns,
	}, nil
}

// unionLayout sizes a union to its largest variant rounded up to its
// strictest variant alignment. Every variant sits at offset zero.
func (e *Engine) unionLayout(t *Type, state *layoutState) (Layout, *LayoutError) {
	if len(t.Fields) == 0 {
		return Layout{Size: 0, Align: 1}, nil
	}
	maxSize := 0
	align := 1
	offsets := make([]int, len(t.Fields))
	aligns := make([]int, len(t.Fields))
	for i, v := range t.Fields {
		vl, err := e.layoutOf(v.Type, state)
		if err != nil {
			return Layout{Size: 0, Align: 1}, err
		}
		aligns[i] = max(vl.Align, 1)
		maxSize = max(maxSize, vl.Size)
		align = max(align, aligns[i])
	}
	return Layout{
		Size:         roundUp(maxSize, align),
		Align:        align,
		FieldOffsets: offsets,
		FieldAligns:  aligns,
	}, nil
}

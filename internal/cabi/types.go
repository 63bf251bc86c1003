package cabi

// Kind classifies a C type descriptor.
type Kind uint8

const (
	KindScalar Kind = iota + 1
	KindPointer
	KindArray
	KindFlexArray
	KindStruct
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindPointer:
		return "pointer"
	case KindArray:
		return "array"
	case KindFlexArray:
		return "flexible array"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	default:
		return "invalid"
	}
}

// Type is a C type as written in a header: scalars carry their width,
// aggregates carry their members in declaration order.
type Type struct {
	Name   string
	Kind   Kind
	Size   int // scalars only
	Elem   *Type
	Len    int64
	Fields []Field
}

// Field is one struct member or union variant.
type Field struct {
	Name string
	Type *Type
}

// F pairs a member name with its type.
func F(name string, t *Type) Field {
	return Field{Name: name, Type: t}
}

// Scalar describes a naturally aligned primitive of the given width.
func Scalar(name string, size int) *Type {
	return &Type{Name: name, Kind: KindScalar, Size: size}
}

var (
	Bool   = Scalar("bool", 1)
	Char   = Scalar("char", 1)
	U8     = Scalar("uint8_t", 1)
	I8     = Scalar("int8_t", 1)
	U16    = Scalar("uint16_t", 2)
	U32    = Scalar("uint32_t", 4)
	I32    = Scalar("int32_t", 4)
	U64    = Scalar("uint64_t", 8)
	I64    = Scalar("int64_t", 8)
	Int    = Scalar("int", 4)
	Enum   = Scalar("enum", 4)
	Float  = Scalar("float", 4)
	Double = Scalar("double", 8)
)

// Ptr describes any data or function pointer.
func Ptr() *Type {
	return &Type{Name: "void*", Kind: KindPointer}
}

// SizeT is pointer sized on every supported target.
func SizeT() *Type {
	return &Type{Name: "size_t", Kind: KindPointer}
}

// Array describes a fixed-capacity array.
func Array(elem *Type, n int64) *Type {
	return &Type{Name: "array", Kind: KindArray, Elem: elem, Len: n}
}

// FlexArray describes a trailing `T name[]` member. It contributes its
// element alignment but no size.
func FlexArray(elem *Type) *Type {
	return &Type{Name: "flexible array", Kind: KindFlexArray, Elem: elem}
}

// Struct describes a record laid out in declaration order.
func Struct(name string, fields ...Field) *Type {
	return &Type{Name: name, Kind: KindStruct, Fields: fields}
}

// Union describes overlapping storage for its variants.
func Union(name string, variants ...Field) *Type {
	return &Type{Name: name, Kind: KindUnion, Fields: variants}
}

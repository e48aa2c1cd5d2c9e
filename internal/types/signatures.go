package types

import (
	"fmt"
	"sort"
	"strings"
)

// MaxValueSize bounds the byte size of any analyzable type. Types larger
// than this are rejected during analysis so that size computation (and the
// cost metering built on it) stays bounded on adversarial input.
const MaxValueSize uint64 = 1024 * 1024

// TypeKind discriminates the TypeSignature variants.
type TypeKind int

const (
	NoType TypeKind = iota
	BoolType
	IntType
	UIntType
	PrincipalType
	BufferType
	OptionalType
	ResponseType
	ListType
	TupleType
	// TraitReferenceType is the nominal escape hatch: it carries a local
	// alias that must be resolved to a TraitIdentifier through the
	// enclosing contract's trait namespace. Structural admission never
	// crosses between two distinct aliases.
	TraitReferenceType
)

// TypeSignature is the tagged type value used throughout analysis.
// The zero value is NoType.
type TypeSignature struct {
	Kind TypeKind

	// Length is the maximum length for BufferType and ListType.
	Length uint32
	// Inner is the element type for OptionalType and ListType.
	Inner *TypeSignature
	// OkType and ErrType are the components of ResponseType.
	OkType  *TypeSignature
	ErrType *TypeSignature
	// Fields are the named components of TupleType, sorted by name.
	Fields []TupleField
	// TraitAlias is the local alias of TraitReferenceType.
	TraitAlias string
}

type TupleField struct {
	Name string
	Type TypeSignature
}

func None() TypeSignature      { return TypeSignature{Kind: NoType} }
func Bool() TypeSignature      { return TypeSignature{Kind: BoolType} }
func Int() TypeSignature       { return TypeSignature{Kind: IntType} }
func UInt() TypeSignature      { return TypeSignature{Kind: UIntType} }
func Principal() TypeSignature { return TypeSignature{Kind: PrincipalType} }

func Buffer(maxLen uint32) TypeSignature {
	return TypeSignature{Kind: BufferType, Length: maxLen}
}

func Optional(inner TypeSignature) TypeSignature {
	return TypeSignature{Kind: OptionalType, Inner: &inner}
}

func Response(okType, errType TypeSignature) TypeSignature {
	return TypeSignature{Kind: ResponseType, OkType: &okType, ErrType: &errType}
}

func List(maxLen uint32, inner TypeSignature) TypeSignature {
	return TypeSignature{Kind: ListType, Length: maxLen, Inner: &inner}
}

// Tuple builds a tuple signature with fields sorted by name so that
// equality and admission are independent of declaration order.
func Tuple(fields []TupleField) TypeSignature {
	sorted := make([]TupleField, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return TypeSignature{Kind: TupleType, Fields: sorted}
}

func TraitReference(alias string) TypeSignature {
	return TypeSignature{Kind: TraitReferenceType, TraitAlias: alias}
}

// Admits reports whether a value of type other may be used wherever
// a value of the receiver's type is required. Admission is structural
// and one-directional: buffers and lists widen toward larger maximum
// lengths, optional and response components admit member-wise, and
// NoType slots (e.g. the err side of (ok ...)) are admitted anywhere.
// Trait references only admit the identical alias; resolving aliases to
// nominal identities is the trait checker's job, not admission's.
func (t TypeSignature) Admits(other TypeSignature) bool {
	if other.Kind == NoType {
		// A never-materialized component (such as the error branch of a
		// response that can only be ok) fits any expected slot.
		return true
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case NoType, BoolType, IntType, UIntType, PrincipalType:
		return true
	case BufferType:
		return t.Length >= other.Length
	case OptionalType:
		return t.Inner.Admits(*other.Inner)
	case ResponseType:
		return t.OkType.Admits(*other.OkType) && t.ErrType.Admits(*other.ErrType)
	case ListType:
		return t.Length >= other.Length && t.Inner.Admits(*other.Inner)
	case TupleType:
		if len(t.Fields) != len(other.Fields) {
			return false
		}
		for i, field := range t.Fields {
			if field.Name != other.Fields[i].Name || !field.Type.Admits(other.Fields[i].Type) {
				return false
			}
		}
		return true
	case TraitReferenceType:
		return t.TraitAlias == other.TraitAlias
	default:
		return false
	}
}

// Equal is exact structural equality, used where admission's widening
// would be too permissive (e.g. comparing declared against redeclared).
func (t TypeSignature) Equal(other TypeSignature) bool {
	return t.Admits(other) && other.Admits(t)
}

// Component sizes mirror the value representation: 128-bit integers,
// a version byte plus hash for principals, length prefixes for
// variable-sized values.
const (
	sizeBool      = 1
	sizeInteger   = 16
	sizePrincipal = 149
	sizePrefix    = 4
	sizeTraitRef  = 276
)

// Size returns the byte-size cost metric of the type, used as the input
// to static-analysis cost metering. It fails rather than overflowing when
// a type exceeds MaxValueSize.
func (t TypeSignature) Size() (uint64, error) {
	var size uint64
	switch t.Kind {
	case NoType:
		size = sizeBool
	case BoolType:
		size = sizeBool
	case IntType, UIntType:
		size = sizeInteger
	case PrincipalType:
		size = sizePrincipal
	case BufferType:
		size = uint64(t.Length) + sizePrefix
	case OptionalType:
		inner, err := t.Inner.Size()
		if err != nil {
			return 0, err
		}
		size = inner + 1
	case ResponseType:
		okSize, err := t.OkType.Size()
		if err != nil {
			return 0, err
		}
		errSize, err := t.ErrType.Size()
		if err != nil {
			return 0, err
		}
		size = okSize + errSize + 1
	case ListType:
		inner, err := t.Inner.Size()
		if err != nil {
			return 0, err
		}
		size = uint64(t.Length)*inner + sizePrefix
	case TupleType:
		size = sizePrefix
		for _, field := range t.Fields {
			fieldSize, err := field.Type.Size()
			if err != nil {
				return 0, err
			}
			size += uint64(len(field.Name)) + fieldSize
		}
	case TraitReferenceType:
		size = sizeTraitRef
	default:
		return 0, fmt.Errorf("unknown type kind %d", t.Kind)
	}
	if size > MaxValueSize {
		return 0, fmt.Errorf("type size %d exceeds maximum value size", size)
	}
	return size, nil
}

func (t TypeSignature) String() string {
	switch t.Kind {
	case NoType:
		return "none"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case UIntType:
		return "uint"
	case PrincipalType:
		return "principal"
	case BufferType:
		return fmt.Sprintf("(buff %d)", t.Length)
	case OptionalType:
		return fmt.Sprintf("(optional %s)", t.Inner)
	case ResponseType:
		return fmt.Sprintf("(response %s %s)", t.OkType, t.ErrType)
	case ListType:
		return fmt.Sprintf("(list %d %s)", t.Length, t.Inner)
	case TupleType:
		var fields []string
		for _, field := range t.Fields {
			fields = append(fields, fmt.Sprintf("(%s %s)", field.Name, field.Type))
		}
		return fmt.Sprintf("(tuple %s)", strings.Join(fields, " "))
	case TraitReferenceType:
		return fmt.Sprintf("<%s>", t.TraitAlias)
	default:
		return "unknown"
	}
}

// ContainsTraitReference reports whether a trait reference occurs anywhere
// inside the type. Persisted storage (data vars, maps, token schemas) may
// not contain trait references.
func (t TypeSignature) ContainsTraitReference() bool {
	switch t.Kind {
	case TraitReferenceType:
		return true
	case OptionalType, ListType:
		return t.Inner.ContainsTraitReference()
	case ResponseType:
		return t.OkType.ContainsTraitReference() || t.ErrType.ContainsTraitReference()
	case TupleType:
		for _, field := range t.Fields {
			if field.Type.ContainsTraitReference() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

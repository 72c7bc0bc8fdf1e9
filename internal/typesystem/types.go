// Package typesystem defines IB's closed type universe: four primitives
// and four generic container kinds, plus the reflection method tables the
// binder uses to type-check container member access.
package typesystem

import "fmt"

// Kind enumerates the primitive type tags. Container types additionally
// carry an Elem.
type Kind int

const (
	Void Kind = iota
	Int
	String
	Boolean
	Array
	Collection
	Stack
	Queue
)

func (k Kind) isContainer() bool {
	switch k {
	case Array, Collection, Stack, Queue:
		return true
	default:
		return false
	}
}

// Type is a fully resolved IB type: a primitive, or a container
// parameterised by a single element Type. Equality is structural, so two
// Types are interchangeable whenever ==  holds after normalising Elem to
// a pointer-free comparison via Equals.
type Type struct {
	Kind Kind
	Elem *Type // non-nil iff Kind.isContainer()
}

var (
	TVoid    = Type{Kind: Void}
	TInt     = Type{Kind: Int}
	TString  = Type{Kind: String}
	TBoolean = Type{Kind: Boolean}
)

// NewContainer builds a parameterised container type.
func NewContainer(kind Kind, elem Type) Type {
	e := elem
	return Type{Kind: kind, Elem: &e}
}

// Equals reports structural equality.
func (t Type) Equals(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if !t.Kind.isContainer() {
		return true
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equals(*other.Elem)
}

// String renders the canonical name, e.g. "Array<Int>".
func (t Type) String() string {
	switch t.Kind {
	case Void:
		return "Void"
	case Int:
		return "Int"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	case Array:
		return fmt.Sprintf("Array<%s>", t.Elem.String())
	case Collection:
		return fmt.Sprintf("Collection<%s>", t.Elem.String())
	case Stack:
		return fmt.Sprintf("Stack<%s>", t.Elem.String())
	case Queue:
		return fmt.Sprintf("Queue<%s>", t.Elem.String())
	default:
		return "<unknown>"
	}
}

// Method describes one entry of a container's reflection method table.
type Method struct {
	Name       string
	ReturnType Type
	Params     []Type
}

// ReflectionMethods returns the built-in method table for a type. Only
// container kinds have entries; primitives return nil.
func (t Type) ReflectionMethods() []Method {
	if t.Elem == nil {
		return nil
	}
	elem := *t.Elem
	switch t.Kind {
	case Array:
		return []Method{
			{Name: "push", ReturnType: TVoid, Params: []Type{elem}},
			{Name: "get", ReturnType: elem, Params: []Type{TInt}},
			{Name: "len", ReturnType: TInt},
		}
	case Collection:
		return []Method{
			{Name: "hasNext", ReturnType: TBoolean},
			{Name: "getItem", ReturnType: elem},
			{Name: "resetNext", ReturnType: TVoid},
			{Name: "addItem", ReturnType: TVoid, Params: []Type{elem}},
			{Name: "isEmpty", ReturnType: TBoolean},
		}
	case Stack:
		return []Method{
			{Name: "push", ReturnType: TVoid, Params: []Type{elem}},
			{Name: "pop", ReturnType: elem},
			{Name: "isEmpty", ReturnType: TBoolean},
		}
	case Queue:
		return []Method{
			{Name: "enqueue", ReturnType: TVoid, Params: []Type{elem}},
			{Name: "dequeue", ReturnType: elem},
			{Name: "isEmpty", ReturnType: TBoolean},
		}
	default:
		return nil
	}
}

// Method looks up a single reflection method by name.
func (t Type) Method(name string) (Method, bool) {
	for _, m := range t.ReflectionMethods() {
		if m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}

// FromName resolves a type-keyword plus optional generic parameter into a
// Type. ok is false for an unrecognised name; needsGeneric is true when
// the name requires a generic parameter that wasn't supplied.
func FromName(name string, generic *Type) (t Type, needsGeneric bool, ok bool) {
	switch name {
	case "Void":
		return TVoid, false, true
	case "Int":
		return TInt, false, true
	case "String":
		return TString, false, true
	case "Boolean":
		return TBoolean, false, true
	case "Array", "Collection", "Stack", "Queue":
		var kind Kind
		switch name {
		case "Array":
			kind = Array
		case "Collection":
			kind = Collection
		case "Stack":
			kind = Stack
		case "Queue":
			kind = Queue
		}
		if generic == nil {
			return Type{}, true, true
		}
		return NewContainer(kind, *generic), false, true
	default:
		return Type{}, false, false
	}
}

package domain

import (
	"fmt"
	"strings"
)

// Type is a type expression node. The set of implementations is closed:
// FundamentalType, DeclaratedType, PointerType, ReferenceType, ArrayType,
// CvQualifiedType and FunctionType. Type objects are shared; many
// declarations may reference the same node.
type Type interface {
	String() string
}

// FundamentalType is a built-in type such as int or char. It references no
// other record and needs no linking.
type FundamentalType struct {
	Name string
}

func (t *FundamentalType) String() string { return t.Name }

// DeclaratedType is a type expression that denotes a declaration (a class,
// enum or typedef used as a type). DeclID holds the declaration's record id
// until linking fills Decl.
type DeclaratedType struct {
	DeclID RecordID
	Decl   Decl
}

func (t *DeclaratedType) String() string {
	if t.Decl == nil {
		return "<unlinked>"
	}
	return t.Decl.Name()
}

// PointerType is a pointer to Base.
type PointerType struct {
	BaseID RecordID
	Base   Type
}

func (t *PointerType) String() string { return t.Base.String() + " *" }

// ReferenceType is a reference to Base.
type ReferenceType struct {
	BaseID RecordID
	Base   Type
}

func (t *ReferenceType) String() string { return t.Base.String() + " &" }

// ArrayType is an array of Base with Size elements. Size is zero when the
// dump does not report a bound.
type ArrayType struct {
	BaseID RecordID
	Base   Type
	Size   int
}

func (t *ArrayType) String() string {
	if t.Size == 0 {
		return t.Base.String() + "[]"
	}
	return fmt.Sprintf("%s[%d]", t.Base.String(), t.Size)
}

// CvQualifiedType wraps Base with const and/or volatile qualification.
type CvQualifiedType struct {
	BaseID   RecordID
	Base     Type
	Const    bool
	Volatile bool
}

func (t *CvQualifiedType) String() string {
	var b strings.Builder
	if t.Const {
		b.WriteString("const ")
	}
	if t.Volatile {
		b.WriteString("volatile ")
	}
	b.WriteString(t.Base.String())
	return b.String()
}

// FunctionType is a free function type expression.
type FunctionType struct {
	ReturnsID RecordID
	Returns   Type
	Arguments []Argument
}

func (t *FunctionType) String() string {
	args := make([]string, len(t.Arguments))
	for i, a := range t.Arguments {
		if a.Type != nil {
			args[i] = a.Type.String()
		}
	}
	return fmt.Sprintf("%s (*)(%s)", t.Returns.String(), strings.Join(args, ", "))
}

// RemoveAlias chases typedef chains until the type no longer denotes a
// typedef. The visited set guards against malformed self-referential alias
// chains, which would otherwise loop forever.
func RemoveAlias(t Type) Type {
	visited := make(map[*Typedef]struct{})
	for {
		dt, ok := t.(*DeclaratedType)
		if !ok {
			return t
		}
		td, ok := dt.Decl.(*Typedef)
		if !ok {
			return t
		}
		if _, seen := visited[td]; seen || td.Type == nil {
			return t
		}
		visited[td] = struct{}{}
		t = td.Type
	}
}

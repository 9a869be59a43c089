// Package domain defines the declaration and type node model produced by
// reading a compiler front-end dump.
package domain

// RecordID is an opaque identifier emitted by the external front-end tool.
// It is unique within a single dump and meaningless across dumps; it only
// exists between scanning and linking.
type RecordID string

// AccessKind describes the access qualifier of a class member.
type AccessKind string

const (
	// AccessPublic marks a publicly accessible member.
	AccessPublic AccessKind = "public"
	// AccessProtected marks a protected member.
	AccessProtected AccessKind = "protected"
	// AccessPrivate marks a private member.
	AccessPrivate AccessKind = "private"
)

// Location is the source position of a declaration. FileID holds the dump's
// file id until linking rewrites File to a normalized absolute path.
type Location struct {
	FileID RecordID
	File   string
	Line   int
}

// Decl is a named program entity. The set of implementations is closed:
// Namespace, Class, Typedef, Enumeration, Variable and Calldef. Every
// non-root declaration has exactly one enclosing scope after linking.
type Decl interface {
	Name() string
	Scope() Decl
	SetScope(Decl)
	Base() *DeclBase
}

// DeclBase carries the attributes shared by every declaration kind.
type DeclBase struct {
	DeclName  string
	Enclosing Decl
	Access    AccessKind
	Loc       Location
}

// Name returns the declaration's unqualified name.
func (b *DeclBase) Name() string { return b.DeclName }

// Scope returns the enclosing scope, or nil for root declarations.
func (b *DeclBase) Scope() Decl { return b.Enclosing }

// SetScope records the enclosing scope.
func (b *DeclBase) SetScope(d Decl) { b.Enclosing = d }

// Base returns the shared declaration attributes.
func (b *DeclBase) Base() *DeclBase { return b }

// Namespace is a C++ namespace. The global namespace is named "::" and has
// no enclosing scope.
type Namespace struct {
	DeclBase
	Decls []Decl
}

// ClassVariant distinguishes class, struct and union declarations.
type ClassVariant string

const (
	// ClassKindClass is a declaration introduced with the class keyword.
	ClassKindClass ClassVariant = "class"
	// ClassKindStruct is a declaration introduced with the struct keyword.
	ClassKindStruct ClassVariant = "struct"
	// ClassKindUnion is a declaration introduced with the union keyword.
	ClassKindUnion ClassVariant = "union"
)

// Class is a class, struct or union declaration. Aliases holds the typedefs
// that (transitively) name this class, rebuilt on every linking run.
type Class struct {
	DeclBase
	Variant ClassVariant
	Decls   []Decl
	Aliases []*Typedef
}

// Typedef is a type alias declaration. TypeID holds the aliased type's
// record id until linking fills Type.
type Typedef struct {
	DeclBase
	TypeID RecordID
	Type   Type
}

// EnumValue is a single enumerator of an Enumeration.
type EnumValue struct {
	Name  string
	Value int64
}

// Enumeration is an enum declaration.
type Enumeration struct {
	DeclBase
	Values []EnumValue
}

// Variable is a variable or data-member declaration.
type Variable struct {
	DeclBase
	TypeID RecordID
	Type   Type
}

// CalldefVariant distinguishes the callable declaration kinds.
type CalldefVariant string

const (
	// CalldefFunction is a free function.
	CalldefFunction CalldefVariant = "function"
	// CalldefMethod is a member function.
	CalldefMethod CalldefVariant = "method"
	// CalldefConstructor is a constructor.
	CalldefConstructor CalldefVariant = "constructor"
	// CalldefDestructor is a destructor.
	CalldefDestructor CalldefVariant = "destructor"
)

// Argument is a single parameter of a Calldef or FunctionType.
type Argument struct {
	ArgName string
	TypeID  RecordID
	Type    Type
	Default string
}

// Calldef is a callable declaration (function, method, constructor or
// destructor).
type Calldef struct {
	DeclBase
	Variant   CalldefVariant
	ReturnsID RecordID
	Returns   Type
	Arguments []Argument
}

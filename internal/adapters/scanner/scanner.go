// Package scanner reads GCC-XML compatible dump files (as emitted by
// castxml --castxml-gccxml) into unlinked record tables.
package scanner

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner implements ports.Scanner for the GCC-XML dump format.
type Scanner struct{}

// New creates a new Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan streams the dump at path and fills the record tables. Elements it
// does not recognize are skipped; cross-record consistency is left to the
// linker.
func (s *Scanner) Scan(path string) (*ports.ScanResult, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open dump"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	res := &ports.ScanResult{
		Decls:      make(map[domain.RecordID]domain.Decl),
		Types:      make(map[domain.RecordID]domain.Type),
		Access:     make(map[domain.RecordID]domain.AccessKind),
		Membership: make(map[domain.RecordID]domain.RecordID),
		Files:      make(map[domain.RecordID]string),
	}

	st := &scanState{res: res}
	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse dump"), "path", path)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			st.startElement(el)
		case xml.EndElement:
			st.endElement(el)
		}
	}
	return res, nil
}

// scanState tracks the enclosing record while streaming, so EnumValue and
// Argument child elements can attach to their owner.
type scanState struct {
	res     *ports.ScanResult
	enum    *domain.Enumeration
	calldef *domain.Calldef
	fntype  *domain.FunctionType
}

func (st *scanState) startElement(el xml.StartElement) {
	switch el.Name.Local {
	case "Namespace":
		st.addDecl(el, &domain.Namespace{DeclBase: declBase(el)})
	case "Class":
		st.addDecl(el, &domain.Class{DeclBase: declBase(el), Variant: domain.ClassKindClass})
	case "Struct":
		st.addDecl(el, &domain.Class{DeclBase: declBase(el), Variant: domain.ClassKindStruct})
	case "Union":
		st.addDecl(el, &domain.Class{DeclBase: declBase(el), Variant: domain.ClassKindUnion})
	case "Typedef":
		st.addDecl(el, &domain.Typedef{DeclBase: declBase(el), TypeID: recordID(el, "type")})
	case "Enumeration":
		st.enum = &domain.Enumeration{DeclBase: declBase(el)}
		st.addDecl(el, st.enum)
	case "EnumValue":
		if st.enum != nil {
			value, _ := strconv.ParseInt(attr(el, "init"), 10, 64)
			st.enum.Values = append(st.enum.Values, domain.EnumValue{Name: attr(el, "name"), Value: value})
		}
	case "Variable", "Field":
		st.addDecl(el, &domain.Variable{DeclBase: declBase(el), TypeID: recordID(el, "type")})
	case "Function", "OperatorFunction":
		st.startCalldef(el, domain.CalldefFunction)
	case "Method", "OperatorMethod":
		st.startCalldef(el, domain.CalldefMethod)
	case "Constructor":
		st.startCalldef(el, domain.CalldefConstructor)
	case "Destructor":
		st.startCalldef(el, domain.CalldefDestructor)
	case "Argument":
		st.addArgument(el)
	case "FundamentalType":
		st.res.Types[recordID(el, "id")] = &domain.FundamentalType{Name: attr(el, "name")}
	case "PointerType":
		st.res.Types[recordID(el, "id")] = &domain.PointerType{BaseID: recordID(el, "type")}
	case "ReferenceType":
		st.res.Types[recordID(el, "id")] = &domain.ReferenceType{BaseID: recordID(el, "type")}
	case "ArrayType":
		st.res.Types[recordID(el, "id")] = &domain.ArrayType{
			BaseID: recordID(el, "type"),
			Size:   arraySize(attr(el, "max")),
		}
	case "CvQualifiedType":
		st.res.Types[recordID(el, "id")] = &domain.CvQualifiedType{
			BaseID:   recordID(el, "type"),
			Const:    attr(el, "const") == "1",
			Volatile: attr(el, "volatile") == "1",
		}
	case "FunctionType":
		st.fntype = &domain.FunctionType{ReturnsID: recordID(el, "returns")}
		st.res.Types[recordID(el, "id")] = st.fntype
	case "File":
		st.res.Files[recordID(el, "id")] = attr(el, "name")
	}
}

func (st *scanState) endElement(el xml.EndElement) {
	switch el.Name.Local {
	case "Enumeration":
		st.enum = nil
	case "Function", "OperatorFunction", "Method", "OperatorMethod", "Constructor", "Destructor":
		st.calldef = nil
	case "FunctionType":
		st.fntype = nil
	}
}

// addDecl registers a declaration record plus its membership and access
// table rows. Named declarations are also visible as types: a class or enum
// id referenced from a type field resolves to a declarated wrapper under the
// same id.
func (st *scanState) addDecl(el xml.StartElement, d domain.Decl) {
	id := recordID(el, "id")
	if id == "" {
		return
	}
	st.res.Decls[id] = d
	st.res.DeclOrder = append(st.res.DeclOrder, id)
	st.res.Types[id] = &domain.DeclaratedType{DeclID: id}

	if ctx := recordID(el, "context"); ctx != "" {
		st.res.Membership[id] = ctx
	}
	if access := attr(el, "access"); access != "" {
		st.res.Access[id] = domain.AccessKind(access)
	}
}

func (st *scanState) startCalldef(el xml.StartElement, variant domain.CalldefVariant) {
	st.calldef = &domain.Calldef{
		DeclBase:  declBase(el),
		Variant:   variant,
		ReturnsID: recordID(el, "returns"),
	}
	st.addDecl(el, st.calldef)
}

func (st *scanState) addArgument(el xml.StartElement) {
	arg := domain.Argument{
		ArgName: attr(el, "name"),
		TypeID:  recordID(el, "type"),
		Default: attr(el, "default"),
	}
	switch {
	case st.calldef != nil:
		st.calldef.Arguments = append(st.calldef.Arguments, arg)
	case st.fntype != nil:
		st.fntype.Arguments = append(st.fntype.Arguments, arg)
	}
}

func declBase(el xml.StartElement) domain.DeclBase {
	line, _ := strconv.Atoi(attr(el, "line"))
	return domain.DeclBase{
		DeclName: attr(el, "name"),
		Loc: domain.Location{
			FileID: recordID(el, "file"),
			Line:   line,
		},
	}
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func recordID(el xml.StartElement, name string) domain.RecordID {
	return domain.RecordID(attr(el, name))
}

// arraySize parses the max attribute, which GCC-XML reports as the highest
// valid index with an optional integer-suffix letter.
func arraySize(max string) int {
	max = strings.TrimRight(max, "ulUL")
	if max == "" {
		return 0
	}
	n, err := strconv.Atoi(max)
	if err != nil {
		return 0
	}
	return n + 1
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/declgraph/internal/core/domain"
)

func TestRemoveAlias_ChasesTypedefChain(t *testing.T) {
	cls := &domain.Class{DeclBase: domain.DeclBase{DeclName: "point"}}
	clsType := &domain.DeclaratedType{Decl: cls}
	inner := &domain.Typedef{DeclBase: domain.DeclBase{DeclName: "coord"}, Type: clsType}
	outer := &domain.Typedef{
		DeclBase: domain.DeclBase{DeclName: "vec2"},
		Type:     &domain.DeclaratedType{Decl: inner},
	}

	got := domain.RemoveAlias(&domain.DeclaratedType{Decl: outer})
	assert.Same(t, clsType, got)
}

func TestRemoveAlias_NonAliasUnchanged(t *testing.T) {
	fundamental := &domain.FundamentalType{Name: "int"}
	assert.Same(t, domain.Type(fundamental), domain.RemoveAlias(fundamental))

	ptr := &domain.PointerType{Base: fundamental}
	assert.Same(t, domain.Type(ptr), domain.RemoveAlias(ptr))
}

func TestRemoveAlias_SelfReferentialChainTerminates(t *testing.T) {
	td := &domain.Typedef{DeclBase: domain.DeclBase{DeclName: "loop"}}
	td.Type = &domain.DeclaratedType{Decl: td}

	got := domain.RemoveAlias(td.Type)
	assert.NotNil(t, got)
}

func TestTypeString(t *testing.T) {
	cls := &domain.Class{DeclBase: domain.DeclBase{DeclName: "widget"}}
	inner := &domain.DeclaratedType{Decl: cls}

	assert.Equal(t, "widget *", (&domain.PointerType{Base: inner}).String())
	assert.Equal(t, "widget &", (&domain.ReferenceType{Base: inner}).String())
	assert.Equal(t, "const int", (&domain.CvQualifiedType{Base: &domain.FundamentalType{Name: "int"}, Const: true}).String())
	assert.Equal(t, "int[4]", (&domain.ArrayType{Base: &domain.FundamentalType{Name: "int"}, Size: 4}).String())
}

package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/declgraph/internal/adapters/scanner"
	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
)

const sampleDump = `<?xml version="1.0"?>
<GCC_XML>
  <Namespace id="_1" name="::"/>
  <Class id="_2" name="widget" context="_1" file="f1" line="3"/>
  <Field id="_3" name="count" type="_7" context="_2" access="private"/>
  <Method id="_4" name="resize" returns="_8" context="_2" access="public">
    <Argument name="w" type="_7"/>
    <Argument name="h" type="_7" default="0"/>
  </Method>
  <Typedef id="_5" name="widget_t" type="_2" context="_1" file="f1" line="9"/>
  <Enumeration id="_6" name="mode" context="_1">
    <EnumValue name="off" init="0"/>
    <EnumValue name="on" init="1"/>
  </Enumeration>
  <FundamentalType id="_7" name="int"/>
  <FundamentalType id="_8" name="void"/>
  <PointerType id="_9" type="_2"/>
  <CvQualifiedType id="_10" type="_7" const="1"/>
  <ArrayType id="_11" type="_7" max="7"/>
  <File id="f1" name="widget.hpp"/>
</GCC_XML>`

func scanSample(t *testing.T) *ports.ScanResult {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDump), 0o600))

	res, err := scanner.New().Scan(path)
	require.NoError(t, err)
	return res
}

func TestScan_Declarations(t *testing.T) {
	res := scanSample(t)

	require.Len(t, res.Decls, 6)
	assert.Equal(t, []domain.RecordID{"_1", "_2", "_3", "_4", "_5", "_6"}, res.DeclOrder)

	ns, ok := res.Decls["_1"].(*domain.Namespace)
	require.True(t, ok)
	assert.Equal(t, "::", ns.Name())

	cls, ok := res.Decls["_2"].(*domain.Class)
	require.True(t, ok)
	assert.Equal(t, domain.ClassKindClass, cls.Variant)
	assert.Equal(t, domain.RecordID("f1"), cls.Loc.FileID)
	assert.Equal(t, 3, cls.Loc.Line)

	td, ok := res.Decls["_5"].(*domain.Typedef)
	require.True(t, ok)
	assert.Equal(t, domain.RecordID("_2"), td.TypeID)
}

func TestScan_CalldefArguments(t *testing.T) {
	res := scanSample(t)

	method, ok := res.Decls["_4"].(*domain.Calldef)
	require.True(t, ok)
	assert.Equal(t, domain.CalldefMethod, method.Variant)
	assert.Equal(t, domain.RecordID("_8"), method.ReturnsID)
	require.Len(t, method.Arguments, 2)
	assert.Equal(t, "w", method.Arguments[0].ArgName)
	assert.Equal(t, domain.RecordID("_7"), method.Arguments[0].TypeID)
	assert.Equal(t, "0", method.Arguments[1].Default)
}

func TestScan_EnumValues(t *testing.T) {
	res := scanSample(t)

	enum, ok := res.Decls["_6"].(*domain.Enumeration)
	require.True(t, ok)
	require.Equal(t, []domain.EnumValue{{Name: "off", Value: 0}, {Name: "on", Value: 1}}, enum.Values)
}

func TestScan_Types(t *testing.T) {
	res := scanSample(t)

	fundamental, ok := res.Types["_7"].(*domain.FundamentalType)
	require.True(t, ok)
	assert.Equal(t, "int", fundamental.Name)

	ptr, ok := res.Types["_9"].(*domain.PointerType)
	require.True(t, ok)
	assert.Equal(t, domain.RecordID("_2"), ptr.BaseID)

	cv, ok := res.Types["_10"].(*domain.CvQualifiedType)
	require.True(t, ok)
	assert.True(t, cv.Const)
	assert.False(t, cv.Volatile)

	arr, ok := res.Types["_11"].(*domain.ArrayType)
	require.True(t, ok)
	assert.Equal(t, 8, arr.Size)

	// Named declarations double as declarated type records under their id.
	declarated, ok := res.Types["_2"].(*domain.DeclaratedType)
	require.True(t, ok)
	assert.Equal(t, domain.RecordID("_2"), declarated.DeclID)
}

func TestScan_AuxiliaryTables(t *testing.T) {
	res := scanSample(t)

	assert.Equal(t, domain.RecordID("_1"), res.Membership["_2"])
	assert.Equal(t, domain.RecordID("_2"), res.Membership["_3"])
	assert.Equal(t, domain.AccessPrivate, res.Access["_3"])
	assert.Equal(t, domain.AccessPublic, res.Access["_4"])
	assert.Equal(t, map[domain.RecordID]string{"f1": "widget.hpp"}, res.Files)
}

func TestScan_MissingDump(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "absent.xml"))
	require.Error(t, err)
}

func TestScan_TruncatedDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.xml")
	require.NoError(t, os.WriteFile(path, []byte("<GCC_XML><Namespace id="), 0o600))

	_, err := scanner.New().Scan(path)
	require.Error(t, err)
}

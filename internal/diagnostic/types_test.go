package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrorJoinsErrorsOnly(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("w", "just a warning", "Command", "")
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddError("setter_conflict", "setter Build collides with the build method", "Command", "Build")
	d.AddError("slot_conflict", "duplicate field slot", "Command", "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[Command] Build: [setter_conflict] setter Build collides with the build method; "+
			"[Command]: [slot_conflict] duplicate field slot",
		err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[c] m", Diagnostic{Code: "c", Message: "m"}.String())
	assert.Equal(t, "Env: m", Diagnostic{Field: "Env", Message: "m"}.String())
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("i", "info", "", "")
	b.AddError("e", "error", "", "")
	b.AddWarning("w", "warning", "", "")

	a.Merge(b)

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

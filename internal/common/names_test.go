package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "CurrentDir", UpperFirst("currentDir"))
	assert.Equal(t, "Env", UpperFirst("Env"))
	assert.Equal(t, "", UpperFirst(""))
	assert.Equal(t, "Élan", UpperFirst("élan"))
}

func TestLowerFirst(t *testing.T) {
	tests := map[string]string{
		"Executable":  "executable",
		"CurrentDir":  "currentDir",
		"ID":          "id",
		"URL":         "url",
		"HTTPClient":  "httpClient",
		"currentDir":  "currentDir",
		"X":           "x",
		"":            "",
		"A1":          "a1",
		"IDs":         "iDs",
		"XMLHTTPLink": "xmlhttpLink",
	}

	for in, want := range tests {
		assert.Equal(t, want, LowerFirst(in), "LowerFirst(%q)", in)
	}
}

func TestSafeIdent(t *testing.T) {
	assert.Equal(t, "type_", SafeIdent("type"))
	assert.Equal(t, "func_", SafeIdent("func"))
	assert.Equal(t, "env", SafeIdent("env"))
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Command":     "command",
		"HTTPRequest": "http_request",
		"OrderItem":   "order_item",
		"order":       "order",
		"V2Config":    "v2_config",
		"already_ok":  "already_ok",
		"Builder":     "builder",
	}

	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), "SnakeCase(%q)", in)
	}
}

func TestIsGoVersionSuffix(t *testing.T) {
	assert.True(t, IsGoVersionSuffix("v2"))
	assert.True(t, IsGoVersionSuffix("v10"))
	assert.False(t, IsGoVersionSuffix("v"))
	assert.False(t, IsGoVersionSuffix("vx"))
	assert.False(t, IsGoVersionSuffix("yaml"))
}

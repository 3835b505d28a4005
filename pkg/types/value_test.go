package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAccessorsAreTotal(t *testing.T) {
	text := Text("host.example.com")
	assert.Equal(t, KindText, text.Kind())
	assert.Equal(t, "host.example.com", text.Text())
	assert.Equal(t, uint32(0), text.Integer(), "integer access on a text value defaults to 0")

	num := Integer(22)
	assert.Equal(t, KindInteger, num.Kind())
	assert.Equal(t, uint32(22), num.Integer())
	assert.Equal(t, "", num.Text(), "text access on an integer value defaults to empty")
}

func TestValueZeroValueIsEmptyText(t *testing.T) {
	var v Value
	assert.Equal(t, KindText, v.Kind())
	assert.Equal(t, "", v.Text())
	assert.Equal(t, uint32(0), v.Integer())
}

func TestValueMapLookups(t *testing.T) {
	m := ValueMap{
		"HostName":   Text("  10.0.0.1  "),
		"PortNumber": Integer(2222),
		"AgentFwd":   Integer(0),
	}

	assert.Equal(t, "10.0.0.1", m.Text("HostName"), "text lookups trim surrounding whitespace")
	assert.Equal(t, "", m.Text("Missing"))
	assert.Equal(t, "", m.Text("PortNumber"), "tag mismatch yields the text default")

	assert.Equal(t, uint32(2222), m.Integer("PortNumber", 22))
	assert.Equal(t, uint32(22), m.Integer("Missing", 22))
	assert.Equal(t, uint32(22), m.Integer("HostName", 22), "tag mismatch yields the caller's default")
	assert.Equal(t, uint32(0), m.Integer("AgentFwd", 7), "a stored zero is not replaced by the default")
}

func TestValueMapClone(t *testing.T) {
	m := ValueMap{"HostName": Text("a")}
	clone := m.Clone()
	clone["HostName"] = Text("b")
	assert.Equal(t, "a", m.Text("HostName"), "mutating the clone must not touch the source")
}

package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	name := ObjectName(7, "logo.png")
	assert.True(t, strings.HasPrefix(name, "attachments/7/"))
	assert.True(t, strings.HasSuffix(name, "-logo.png"))

	assert.NotEqual(t, name, ObjectName(7, "logo.png"))
}

func TestObjectName_StripsDirectories(t *testing.T) {
	name := ObjectName(1, `..\..\etc/passwd`)
	assert.True(t, strings.HasSuffix(name, "-passwd"))
	assert.NotContains(t, strings.TrimPrefix(name, "attachments/1/"), "/")

	assert.True(t, strings.HasSuffix(ObjectName(1, ""), "-file"))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_WritesOneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Info("fetching")
	c.Success("done")
	c.Warn("missing")
	c.Failure("broken")
	c.KeyValue("path:", "/tmp/config.json")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[0], "fetching")
	assert.Contains(t, lines[1], "done")
	assert.Contains(t, lines[2], "missing")
	assert.Contains(t, lines[3], "broken")
	assert.Contains(t, lines[4], "path:")
	assert.Contains(t, lines[4], "/tmp/config.json")
}

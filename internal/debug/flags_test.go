// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package debug

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/learn-bcos/go-bcos/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreRoot(t *testing.T) {
	old := log.Root()
	t.Cleanup(func() {
		closeLogFile()
		log.SetDefault(old)
	})
}

func TestSetupLoggingTerminal(t *testing.T) {
	restoreRoot(t)
	out := new(bytes.Buffer)
	require.NoError(t, SetupLogging(LogConfig{Verbosity: 2}, out))

	log.Info("hidden")
	log.Warn("shown", "items", 3)
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "items=3")
	// buffers are never colour terminals
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestSetupLoggingJSON(t *testing.T) {
	restoreRoot(t)
	out := new(bytes.Buffer)
	require.NoError(t, SetupLogging(LogConfig{Verbosity: 3, Format: "json"}, out))

	log.Info("decoded", "size", 7)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "decoded", rec["msg"])
	assert.Equal(t, float64(7), rec["size"])
}

func TestSetupLoggingVmodule(t *testing.T) {
	restoreRoot(t)
	out := new(bytes.Buffer)
	require.NoError(t, SetupLogging(LogConfig{Verbosity: 1, Vmodule: "debug=5"}, out))
	log.Debug("from debug package")
	assert.Contains(t, out.String(), "from debug package")

	err := SetupLogging(LogConfig{Vmodule: "nonsense"}, out)
	assert.Error(t, err)
}

func TestSetupLoggingFile(t *testing.T) {
	restoreRoot(t)
	file := filepath.Join(t.TempDir(), "logs", "rlpdump.log")
	out := new(bytes.Buffer)
	require.NoError(t, SetupLogging(LogConfig{Verbosity: 3, Format: "logfmt", File: file}, out))

	log.Info("written twice")
	closeLogFile()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="written twice"`)
	assert.Contains(t, out.String(), `msg="written twice"`)
	assert.Contains(t, string(data), "Logging configured")
}

func TestSetupLoggingRotate(t *testing.T) {
	restoreRoot(t)
	file := filepath.Join(t.TempDir(), "rotated.log")
	out := new(bytes.Buffer)
	require.NoError(t, SetupLogging(LogConfig{Verbosity: 3, File: file, Rotate: true, MaxSizeMB: 1}, out))

	log.Info("rotating")
	closeLogFile()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "rotating"))
}

func TestSetupLoggingUnknownFormat(t *testing.T) {
	restoreRoot(t)
	err := SetupLogging(LogConfig{Format: "xml"}, new(bytes.Buffer))
	assert.ErrorContains(t, err, "unknown log format")
}

func TestCPUProfile(t *testing.T) {
	restoreRoot(t)
	file := filepath.Join(t.TempDir(), "cpu.prof")
	require.NoError(t, startCPUProfile(file))
	assert.Error(t, startCPUProfile(file))
	Exit()

	st, err := os.Stat(file)
	require.NoError(t, err)
	assert.NotZero(t, st.Size())
}

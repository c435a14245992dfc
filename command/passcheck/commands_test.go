// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/passcheck/fault"
)

func testConfiguration(dir string) *Configuration {
	c := defaultConfiguration(dir)
	c.Logging.Directory = testingDirName
	return c
}

func TestValidateCommand(t *testing.T) {
	dir, cleanup := makeFiles(t, map[string]string{
		"data.txt":      "1 a\n2 b\n",
		"test_data.txt": "1 a\n2 x\n3 z\n",
	})
	defer cleanup()

	var out bytes.Buffer
	cmd := commandOptions{out: &out}

	err := processCommand(logger.New("test"), "validate", nil, testConfiguration(dir), cmd)
	assert.Nil(t, err, "validate")
	assert.Equal(t, "Correct Passwords: 2\nIncorrect Passwords: 4\n", out.String(), "report")
}

func TestValidateCommandArguments(t *testing.T) {
	dir, cleanup := makeFiles(t, map[string]string{
		"users.txt": "10 ten\n20 twenty\n30 thirty\n",
		"check.txt": "10 ten\n20 twenty\n30 wrong\n",
	})
	defer cleanup()

	var out bytes.Buffer
	cmd := commandOptions{out: &out, verbose: true}
	arguments := []string{filepath.Join(dir, "users.txt"), filepath.Join(dir, "check.txt")}

	err := processCommand(logger.New("test"), "validate", arguments, testConfiguration(dir), cmd)
	assert.Nil(t, err, "validate")
	assert.Equal(t, "Data Records: 3\n"+
		"Unique Identifiers: 3\n"+
		"Tree Height: 2\n"+
		"Test Records: 3\n"+
		"Correct Passwords: 4\n"+
		"Incorrect Passwords: 2\n", out.String(), "report")

	err = processCommand(logger.New("test"), "validate", arguments[:1], testConfiguration(dir), cmd)
	assert.Equal(t, fault.ErrMissingFileName, err, "single argument")
}

func TestValidateCommandMissingData(t *testing.T) {
	dir, cleanup := makeFiles(t, map[string]string{
		"test_data.txt": "1 a\n",
	})
	defer cleanup()

	var out bytes.Buffer
	err := processCommand(logger.New("test"), "validate", nil, testConfiguration(dir), commandOptions{out: &out})
	assert.True(t, errors.Is(err, fault.ErrSourceUnavailable), "missing data: %v", err)
	assert.Equal(t, 0, out.Len(), "no report")
}

func TestValidateCommandMalformed(t *testing.T) {
	dir, cleanup := makeFiles(t, map[string]string{
		"data.txt":      "1 a\n2 b c\n",
		"test_data.txt": "1 a\n",
	})
	defer cleanup()

	var out bytes.Buffer
	err := processCommand(logger.New("test"), "validate", nil, testConfiguration(dir), commandOptions{out: &out})
	assert.True(t, fault.IsErrRecord(err), "malformed data: %v", err)
}

func TestImportAndValidateLevelDB(t *testing.T) {
	dir, cleanup := makeFiles(t, map[string]string{
		"data.txt":      "1 a\n2 b\n1 later\n",
		"test_data.txt": "1 a\n2 x\n3 z\n",
	})
	defer cleanup()

	var out bytes.Buffer
	database := filepath.Join(dir, "data.leveldb")
	arguments := []string{filepath.Join(dir, "data.txt"), database}

	err := processCommand(logger.New("test"), "import", arguments, testConfiguration(dir), commandOptions{out: &out})
	assert.Nil(t, err, "import")
	assert.Equal(t, "imported: 2 records\n", out.String(), "import report")

	out.Reset()
	c := testConfiguration(dir)
	c.Data = database
	c.Format = "leveldb"
	err = processCommand(logger.New("test"), "validate", nil, c, commandOptions{out: &out})
	assert.Nil(t, err, "validate")
	assert.Equal(t, "Correct Passwords: 2\nIncorrect Passwords: 4\n", out.String(), "report")

	err = processCommand(logger.New("test"), "import", arguments[:1], c, commandOptions{out: &out})
	assert.Equal(t, fault.ErrMissingFileName, err, "single argument")
}

func TestPrintCommand(t *testing.T) {
	dir, cleanup := makeFiles(t, map[string]string{
		"data.txt": "1 a\n2 b\n3 c\n",
	})
	defer cleanup()

	var out bytes.Buffer
	err := processCommand(logger.New("test"), "print", nil, testConfiguration(dir), commandOptions{out: &out})
	assert.Nil(t, err, "print")
	assert.Equal(t, "       /------+ 3 h:1\n"+
		"|------+ 2 h:2\n"+
		"       \\------+ 1 h:1\n"+
		"nodes: 3  height: 2\n", out.String(), "drawing")
}

func TestUnknownCommand(t *testing.T) {
	err := processCommand(logger.New("test"), "frobnicate", nil, testConfiguration("."), commandOptions{})
	assert.True(t, errors.Is(err, fault.ErrUnknownCommand), "unknown command: %v", err)
}

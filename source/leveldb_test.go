// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/passcheck/fault"
	"github.com/bitmark-inc/passcheck/source"
)

func makeDatabase(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "leveldb")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	name := filepath.Join(dir, "records.leveldb")

	db, err := leveldb.OpenFile(name, nil)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("create database error: %s", err)
	}
	defer db.Close()

	if _, err := source.Import(db, source.NewText(strings.NewReader(text))); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("import error: %s", err)
	}
	return name, func() { os.RemoveAll(dir) }
}

func TestLevelDBRoundTrip(t *testing.T) {
	name, cleanup := makeDatabase(t, "3 c\n1 a\n2 b\n")
	defer cleanup()

	l, err := source.OpenLevelDB(name)
	assert.Nil(t, err, "open")

	records, err := readAll(l)
	assert.Nil(t, err, "read")
	assert.Equal(t, []expected{{1, "a"}, {2, "b"}, {3, "c"}}, records, "records in key order")
	assert.Nil(t, l.Close(), "close")
}

// the first secret imported for an identifier is kept
func TestImportFirstWins(t *testing.T) {
	dir, err := ioutil.TempDir("", "leveldb")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	db, err := leveldb.OpenFile(filepath.Join(dir, "db"), nil)
	if nil != err {
		t.Fatalf("create database error: %s", err)
	}
	defer db.Close()

	n, err := source.Import(db, source.NewText(strings.NewReader("5 first\n6 six\n5 second\n")))
	assert.Nil(t, err, "first import")
	assert.Equal(t, 2, n, "records stored")

	n, err = source.Import(db, source.NewText(strings.NewReader("6 changed\n7 seven\n")))
	assert.Nil(t, err, "second import")
	assert.Equal(t, 1, n, "records stored")

	for key, secret := range map[string]string{"5": "first", "6": "six", "7": "seven"} {
		value, err := db.Get([]byte(key), nil)
		assert.Nil(t, err, "key: %s", key)
		assert.Equal(t, secret, string(value), "key: %s", key)
	}
}

func TestImportStopsOnError(t *testing.T) {
	dir, err := ioutil.TempDir("", "leveldb")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	db, err := leveldb.OpenFile(filepath.Join(dir, "db"), nil)
	if nil != err {
		t.Fatalf("create database error: %s", err)
	}
	defer db.Close()

	_, err = source.Import(db, source.NewText(strings.NewReader("1 a\nbad\n")))
	assert.True(t, fault.IsErrRecord(err), "malformed input: %v", err)

	// nothing is written from a failed import
	_, err = db.Get([]byte("1"), nil)
	assert.Equal(t, leveldb.ErrNotFound, err, "partial import written")
}

func TestLevelDBMalformedKey(t *testing.T) {
	dir, err := ioutil.TempDir("", "leveldb")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "db")
	db, err := leveldb.OpenFile(name, nil)
	if nil != err {
		t.Fatalf("create database error: %s", err)
	}
	_ = db.Put([]byte("not-a-number"), []byte("secret"), nil)
	db.Close()

	l, err := source.OpenLevelDB(name)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	defer l.Close()

	_, err = l.Next()
	assert.True(t, fault.IsErrRecord(err), "malformed key: %v", err)
}

func TestOpenLevelDBMissing(t *testing.T) {
	dir, err := ioutil.TempDir("", "leveldb")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	_, err = source.OpenLevelDB(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, fault.ErrSourceUnavailable), "missing database: %v", err)

	_, err = source.Open(source.FormatLevelDB, filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, fault.ErrSourceUnavailable), "open missing database: %v", err)
}

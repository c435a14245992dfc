// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/passcheck/configuration"
	"github.com/bitmark-inc/passcheck/fault"
	"github.com/bitmark-inc/passcheck/source"
)

// basic defaults (files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataFile = "data.txt"
	defaultTestFile = "test_data.txt"

	defaultLogDirectory = "log"
	defaultLogFile      = "passcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - items from the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Data          string               `gluamapper:"data" json:"data"`
	Test          string               `gluamapper:"test" json:"test"`
	Format        string               `gluamapper:"format" json:"format"`
	Watch         bool                 `gluamapper:"watch" json:"watch"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// configuration used when no file is given: everything relative to
// the current directory
func defaultConfiguration(directory string) *Configuration {
	return &Configuration{
		DataDirectory: directory,
		Data:          filepath.Join(directory, defaultDataFile),
		Test:          filepath.Join(directory, defaultTestFile),
		Format:        string(source.FormatText),
		Watch:         false,
		Logging: logger.Configuration{
			Directory: directory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: ".",
		Data:          defaultDataFile,
		Test:          defaultTestFile,
		Format:        string(source.FormatText),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Format = strings.ToLower(options.Format)
	if !source.Format(options.Format).Valid() {
		return nil, fmt.Errorf("format: %q: %w", options.Format, fault.ErrInvalidFormat)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Data,
		&options.Test,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		if "" == *f {
			return nil, fault.ErrMissingFileName
		}
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// the log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// create log directory if it does not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

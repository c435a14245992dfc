// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/passcheck/source"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const usage = "usage: %s [--help] [--verbose] [--quiet] [--version] [--config-file=FILE] [--format=text|leveldb] [--watch]\n" +
	"       validate [DATA TEST]  load DATA into both indexes and check TEST against them (default)\n" +
	"       import TEXT LEVELDB   store a text data file in a database\n" +
	"       print [DATA]          draw the balanced index built from DATA"

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "format", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message(usage, program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	var theConfiguration *Configuration
	if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	} else {
		directory, err := os.Getwd()
		if nil != err {
			exitwithstatus.Message("%s: current directory error: %s", program, err)
		}
		theConfiguration = defaultConfiguration(directory)
	}

	// command line overrides
	if n := len(options["format"]); n > 0 {
		format := strings.ToLower(options["format"][n-1])
		if !source.Format(format).Valid() {
			exitwithstatus.Message("%s: unsupported format: %q", program, format)
		}
		theConfiguration.Format = format
	}
	if len(options["watch"]) > 0 {
		theConfiguration.Watch = true
	}

	verbose := len(options["verbose"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	command := "validate"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	cmd := commandOptions{
		verbose: verbose,
		quiet:   len(options["quiet"]) > 0,
		out:     os.Stdout,
	}

	err = processCommand(logger.New("verify"), command, arguments, theConfiguration, cmd)
	if nil != err {
		log.Criticalf("%s error: %s", command, err)
		exitwithstatus.Message("%s: %s error: %s", program, command, err)
	}
}

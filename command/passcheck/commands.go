// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/passcheck/avl"
	"github.com/bitmark-inc/passcheck/fault"
	"github.com/bitmark-inc/passcheck/list"
	"github.com/bitmark-inc/passcheck/source"
	"github.com/bitmark-inc/passcheck/verify"
)

// settings shared by all commands
type commandOptions struct {
	verbose bool
	quiet   bool
	out     io.Writer
}

// run the named command
func processCommand(log *logger.L, command string, arguments []string, theConfiguration *Configuration, cmd commandOptions) error {

	switch command {
	case "validate", "check":
		data := theConfiguration.Data
		test := theConfiguration.Test
		if len(arguments) >= 2 {
			data = arguments[0]
			test = arguments[1]
		} else if 1 == len(arguments) {
			return fault.ErrMissingFileName
		}
		return runValidate(log, source.Format(theConfiguration.Format), data, test, theConfiguration.Watch, cmd)

	case "import":
		if len(arguments) < 2 {
			return fault.ErrMissingFileName
		}
		return runImport(log, arguments[0], arguments[1], cmd)

	case "print":
		data := theConfiguration.Data
		if len(arguments) >= 1 {
			data = arguments[0]
		}
		return runPrint(log, source.Format(theConfiguration.Format), data, cmd)

	default:
		return fmt.Errorf("%q: %w", command, fault.ErrUnknownCommand)
	}
}

// fill both indexes from the data source
func loadData(log *logger.L, format source.Format, name string) (*list.List, *avl.Tree, error) {
	sequential := list.New()
	balanced := avl.New()

	reader, err := source.Open(format, name)
	if nil != err {
		log.Errorf("open data: %q  error: %s", name, err)
		return sequential, balanced, err
	}
	defer reader.Close()

	if _, err := verify.Load(log, sequential, balanced, reader); nil != err {
		return sequential, balanced, fmt.Errorf("data: %q: %w", name, err)
	}
	log.Infof("list: %d entries  tree: %d nodes  height: %d", sequential.Count(), balanced.Count(), balanced.Height())
	return sequential, balanced, nil
}

// check the test records against both indexes
func validateTest(log *logger.L, sequential *list.List, balanced *avl.Tree, name string) (verify.Result, error) {
	reader, err := source.OpenFile(name)
	if nil != err {
		log.Errorf("open test: %q  error: %s", name, err)
		return verify.Result{}, err
	}
	defer reader.Close()

	result, err := verify.Validate(log, sequential, balanced, reader)
	if nil != err {
		return result, fmt.Errorf("test: %q: %w", name, err)
	}
	return result, nil
}

func printResult(cmd commandOptions, result verify.Result) {
	if cmd.verbose {
		fmt.Fprintf(cmd.out, "Test Records: %d\n", result.Records)
	}
	fmt.Fprintf(cmd.out, "Correct Passwords: %d\n", result.Matches)
	fmt.Fprintf(cmd.out, "Incorrect Passwords: %d\n", result.Mismatches)
}

func runValidate(log *logger.L, format source.Format, data string, test string, watch bool, cmd commandOptions) error {
	sequential, balanced, err := loadData(log, format, data)
	defer sequential.Clear()
	defer balanced.Clear()
	if nil != err {
		return err
	}

	if cmd.verbose {
		fmt.Fprintf(cmd.out, "Data Records: %d\n", sequential.Count())
		fmt.Fprintf(cmd.out, "Unique Identifiers: %d\n", balanced.Count())
		fmt.Fprintf(cmd.out, "Tree Height: %d\n", balanced.Height())
	}

	result, err := validateTest(log, sequential, balanced, test)
	if nil != err {
		return err
	}
	printResult(cmd, result)

	if !watch {
		return nil
	}

	w, err := newFileWatcher(test, logger.New(watcherLoggerPrefix))
	if nil != err {
		return err
	}
	if err := w.Start(); nil != err {
		return err
	}
	defer w.Stop()

	if !cmd.quiet {
		fmt.Fprintf(cmd.out, "\nwatching: %q  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", test)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	return watchLoop(log, w, ch, func() {
		result, err := validateTest(log, sequential, balanced, test)
		if nil != err {
			fmt.Fprintf(cmd.out, "validate error: %s\n", err)
			return
		}
		printResult(cmd, result)
	})
}

// convert a text data file to a database
func runImport(log *logger.L, text string, database string, cmd commandOptions) error {
	reader, err := source.OpenFile(text)
	if nil != err {
		return err
	}
	defer reader.Close()

	db, err := leveldb.OpenFile(database, nil)
	if nil != err {
		return err
	}
	defer db.Close()

	n, err := source.Import(db, reader)
	if nil != err {
		return fmt.Errorf("import: %q: %w", text, err)
	}
	log.Infof("imported: %d records from: %q to: %q", n, text, database)
	if !cmd.quiet {
		fmt.Fprintf(cmd.out, "imported: %d records\n", n)
	}
	return nil
}

// draw the balanced index built from the data
func runPrint(log *logger.L, format source.Format, data string, cmd commandOptions) error {
	sequential, balanced, err := loadData(log, format, data)
	defer sequential.Clear()
	defer balanced.Clear()
	if nil != err {
		return err
	}

	depth := balanced.Print(cmd.out, cmd.verbose)
	if !cmd.quiet {
		fmt.Fprintf(cmd.out, "nodes: %d  height: %d\n", balanced.Count(), depth)
	}
	return nil
}

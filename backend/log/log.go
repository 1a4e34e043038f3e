// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Package log centralizes Fresh's logging so every package logs at the
// same set of levels through the same sink, instead of reaching for
// fmt.Println or the standard library log package directly.
package log

import (
	"os"

	"github.com/limetext/log4go"
)

var logger log4go.Logger

func init() {
	logger = make(log4go.Logger)
	logger.AddFilter("stdout", log4go.DEBUG, log4go.NewConsoleLogWriter())
}

// AddFilter installs an additional log4go writer, e.g. a rotating file
// writer for --show-paths' reported log path.
func AddFilter(name string, level log4go.Level, writer log4go.LogWriter) {
	logger.AddFilter(name, level, writer)
}

// SetLevel restricts the console filter to the given level.
func SetLevel(level log4go.Level) {
	if w, ok := logger["stdout"]; ok {
		w.Level = level
	}
}

func Finest(arg0 interface{}, args ...interface{}) { logger.Finest(arg0, args...) }
func Fine(arg0 interface{}, args ...interface{})   { logger.Fine(arg0, args...) }
func Debug(arg0 interface{}, args ...interface{})  { logger.Debug(arg0, args...) }
func Trace(arg0 interface{}, args ...interface{})  { logger.Trace(arg0, args...) }
func Info(arg0 interface{}, args ...interface{})   { logger.Info(arg0, args...) }
func Warn(arg0 interface{}, args ...interface{})   { logger.Warn(arg0, args...) }
func Error(arg0 interface{}, args ...interface{})  { logger.Error(arg0, args...) }

// Critical logs at the highest level and, matching the teacher's use of
// panics only at true programmer-error boundaries, terminates the process.
// Reserved for failures that leave the editor unable to make progress at
// all (e.g. the workspace state directory can't be created at startup).
func Critical(arg0 interface{}, args ...interface{}) {
	logger.Critical(arg0, args...)
	os.Exit(1)
}

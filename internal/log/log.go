// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides centralized logging functionality using zap logger.
//
// The package logger starts as a no-op so that library calls do no I/O
// until the host program calls Init or SetLogger.
package log

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

var sugared atomic.Pointer[zap.SugaredLogger]

func init() {
	sugared.Store(zap.NewNop().Sugar())
}

// Init replaces the package-level logger with a zap development logger
// (debug) or a production logger.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	sugared.Store(zapLogger.Sugar())
	return nil
}

// SetLogger installs l as the package-level logger. A nil l restores the
// no-op logger. Callers should build l with zap.AddCallerSkip(1) so that
// caller annotations point at the logging site.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	sugared.Store(l.Sugar())
}

// GetSugaredLogger returns the sugared logger instance.
func GetSugaredLogger() *zap.SugaredLogger {
	return sugared.Load()
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = sugared.Load().Sync()
}

// Package-level convenience functions
func Debugf(template string, args ...interface{}) {
	sugared.Load().Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	sugared.Load().Debugw(msg, keysAndValues...)
}

func Infof(template string, args ...interface{}) {
	sugared.Load().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	sugared.Load().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	sugared.Load().Warnw(msg, keysAndValues...)
}

func Errorf(template string, args ...interface{}) {
	sugared.Load().Errorf(template, args...)
}

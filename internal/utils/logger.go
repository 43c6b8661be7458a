// Copyright 2024 The nutsdb Author. All rights reserved.
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

package utils

import (
	"log"
	"os"
	"sync/atomic"
)

var current atomic.Pointer[loggerHolder]

type loggerHolder struct {
	l ILogger
}

type ILogger interface {
	// Printf formats according to a format specifier and writes to the logger.
	// Arguments are handled in the manner of fmt.Printf.
	Printf(string, ...any)
}

type defaultPrintLogger struct {
	l *log.Logger
}

func (dpl *defaultPrintLogger) Printf(fmt string, args ...any) {
	dpl.l.Printf(fmt, args...)
}

func defaultLogger() ILogger {
	return &defaultPrintLogger{
		l: log.New(os.Stderr, "tryiter: ", log.LstdFlags),
	}
}

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(logger ILogger) {
	if logger == nil {
		logger = defaultLogger()
	}
	current.Store(&loggerHolder{l: logger})
}

func GetLogger() ILogger {
	if h := current.Load(); h != nil {
		return h.l
	}
	return defaultLogger()
}

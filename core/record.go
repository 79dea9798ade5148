package core

import (
	"runtime"
	"sync"
	"time"
)

// Record represents a single log record with all its metadata.
// It is the unit handed to formatters: every template token resolves
// against exactly one of its fields. A Record is immutable for the
// duration of one format call.
type Record struct {
	Time    time.Time
	Level   Level
	Name    string // logger name, rendered by the {name} token
	Message string
	Caller  CallerInfo
}

// CallerInfo contains information about the call site that produced a record
type CallerInfo struct {
	File     string
	Line     int
	Function string
	Defined  bool
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool with its timestamp set
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Name = ""
	r.Message = ""
	r.Caller = CallerInfo{}
	recordPool.Put(r)
}

// GetCaller retrieves caller information for the given number of stack
// frames above the caller of GetCaller itself
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:     file,
		Line:     line,
		Function: funcName,
		Defined:  true,
	}
}

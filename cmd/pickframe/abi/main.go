// Command abi is the C ABI surface of pickframe (spec §6): a native video
// decoder host links this as a c-shared library (`go build
// -buildmode=c-shared`) and calls parse()/free_parse(), the get_* field
// accessors, create_video_info()/free_video_info(), and
// get_from_timestamp()/get_to_timestamp() to resolve the --from/--to
// bounds against its own video description.
//
// Handles are opaque: each is a tiny C-allocated token whose pointer
// identity keys a Go-side registry, following the pack's own cgo-export
// convention (e.g. wazerolib's //export run_wazero) of exposing plain
// extern C functions from a `package main` rather than round-tripping Go
// pointers through C memory.
package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import (
	"os"
	"sync"
	"unsafe"

	"github.com/yyxxryrx/pickframe/internal/cliparse"
	"github.com/yyxxryrx/pickframe/internal/config"
	"github.com/yyxxryrx/pickframe/internal/orchestrator"
	"github.com/yyxxryrx/pickframe/internal/timeexpr"
	"github.com/yyxxryrx/pickframe/internal/videoinfo"
)

func main() {}

// parseResult is the Go-side payload behind a *ParseResult handle.
type parseResult struct {
	cfg     config.Config
	pair    *orchestrator.BoundPair
	cInput  *C.char
	cOutput *C.char
	cFormat *C.char
}

var (
	registryMu sync.Mutex
	results    = map[uintptr]*parseResult{}
	videoInfos = map[uintptr]*videoinfo.Info{}
)

// newHandle allocates a 1-byte C buffer whose address is used purely as a
// unique, stable token; it is never dereferenced.
func newHandle() unsafe.Pointer {
	return C.malloc(1)
}

func keyOf(p unsafe.Pointer) uintptr { return uintptr(p) }

//export parse
func parse() unsafe.Pointer {
	cfg, err := cliparse.Parse(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	pair, buildErr := orchestrator.Build(cfg.From, cfg.To)
	if buildErr != nil {
		if isParseFailure(buildErr) {
			os.Exit(1)
		}
		os.Exit(2)
	}

	handle := newHandle()
	registryMu.Lock()
	results[keyOf(handle)] = &parseResult{
		cfg:     cfg,
		pair:    pair,
		cInput:  C.CString(cfg.Input),
		cOutput: C.CString(cfg.Output),
		cFormat: C.CString(cfg.Format),
	}
	registryMu.Unlock()
	return handle
}

func isParseFailure(err error) bool {
	be, ok := err.(*orchestrator.BoundError)
	if !ok {
		return false
	}
	_, isParse := be.Err.(*timeexpr.ParseError)
	return isParse
}

//export free_parse
func free_parse(handle unsafe.Pointer) {
	if handle == nil {
		return
	}
	registryMu.Lock()
	r, ok := results[keyOf(handle)]
	if ok {
		delete(results, keyOf(handle))
	}
	registryMu.Unlock()
	if !ok {
		return
	}
	C.free(unsafe.Pointer(r.cInput))
	C.free(unsafe.Pointer(r.cOutput))
	C.free(unsafe.Pointer(r.cFormat))
	C.free(handle)
}

func lookup(handle unsafe.Pointer) *parseResult {
	registryMu.Lock()
	defer registryMu.Unlock()
	return results[keyOf(handle)]
}

//export get_input
func get_input(handle unsafe.Pointer) *C.char {
	if r := lookup(handle); r != nil {
		return r.cInput
	}
	return nil
}

//export get_output
func get_output(handle unsafe.Pointer) *C.char {
	if r := lookup(handle); r != nil {
		return r.cOutput
	}
	return nil
}

//export get_format
func get_format(handle unsafe.Pointer) *C.char {
	if r := lookup(handle); r != nil {
		return r.cFormat
	}
	return nil
}

//export get_thread_count
func get_thread_count(handle unsafe.Pointer) C.uint16_t {
	if r := lookup(handle); r != nil {
		return C.uint16_t(r.cfg.ThreadCount.Resolve())
	}
	return 0
}

//export create_video_info
func create_video_info(fps C.double, tbDen C.int64_t, tbNum C.int64_t, startTime C.int64_t, duration C.int64_t) unsafe.Pointer {
	handle := newHandle()
	info := &videoinfo.Info{
		FPS:         float64(fps),
		TimeBaseNum: int64(tbNum),
		TimeBaseDen: int64(tbDen),
		StartTime:   int64(startTime),
		Duration:    int64(duration),
	}
	registryMu.Lock()
	videoInfos[keyOf(handle)] = info
	registryMu.Unlock()
	return handle
}

//export free_video_info
func free_video_info(handle unsafe.Pointer) {
	if handle == nil {
		return
	}
	registryMu.Lock()
	delete(videoInfos, keyOf(handle))
	registryMu.Unlock()
	C.free(handle)
}

func lookupVideoInfo(handle unsafe.Pointer) *videoinfo.Info {
	registryMu.Lock()
	defer registryMu.Unlock()
	return videoInfos[keyOf(handle)]
}

//export get_from_timestamp
func get_from_timestamp(resultHandle unsafe.Pointer, videoHandle unsafe.Pointer) C.int64_t {
	r := lookup(resultHandle)
	vi := lookupVideoInfo(videoHandle)
	if r == nil || vi == nil {
		return 0
	}
	ts, err := orchestrator.Resolve(r.pair, *vi, orchestrator.WhichFrom)
	if err != nil {
		return 0
	}
	return C.int64_t(ts)
}

//export get_to_timestamp
func get_to_timestamp(resultHandle unsafe.Pointer, videoHandle unsafe.Pointer) C.int64_t {
	r := lookup(resultHandle)
	vi := lookupVideoInfo(videoHandle)
	if r == nil || vi == nil {
		return 0
	}
	ts, err := orchestrator.Resolve(r.pair, *vi, orchestrator.WhichTo)
	if err != nil {
		return 0
	}
	return C.int64_t(ts)
}

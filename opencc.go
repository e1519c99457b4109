package opencc

/*
#cgo LDFLAGS: -lopencc

#include <stdlib.h>
#include <opencc/opencc.h>

opencc_t opencc_open_error = (opencc_t) -1;
size_t opencc_convert_error = (size_t) -1;
*/
import "C"

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"
	"unsafe"
)

// Converter owns one native OpenCC handle. All conversions through a
// Converter are serialized on an internal lock, so a single Converter is
// safe for concurrent use; independent Converters run fully in parallel.
//
// A Converter holds native memory until Close is called. A finalizer
// releases the handle should the owner forget, but explicit Close is the
// deterministic way.
type Converter struct {
	mu sync.Mutex
	cc C.opencc_t // nil after Close
}

// New opens a native converter for the JSON config file at configPath.
// The config references binary dictionaries resolved relative to itself;
// GenerateStaticDictionary lays out a complete set from the embedded data.
func New(configPath string) (*Converter, error) {
	if !utf8.ValidString(configPath) || strings.IndexByte(configPath, 0) >= 0 {
		return nil, ErrInvalidConfigPath
	}
	cpath := C.CString(configPath)
	defer C.free(unsafe.Pointer(cpath))

	cc := C.opencc_open(cpath)
	if cc == nil || cc == C.opencc_open_error {
		return nil, fmt.Errorf("%w: %s", ErrNewInstanceFailed, lastError())
	}
	c := &Converter{cc: cc}
	runtime.SetFinalizer(c, (*Converter).Close)
	tracer().Debugf("opened converter for config %q", configPath)
	return c, nil
}

// Convert returns the converted form of input as a new string. An empty
// input converts to an empty output.
func (c *Converter) Convert(input string) (string, error) {
	if strings.IndexByte(input, 0) >= 0 {
		return "", ErrInputContainsNull
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return "", fmt.Errorf("%w: converter has been closed", ErrNewInstanceFailed)
	}
	cinput := C.CString(input)
	defer C.free(unsafe.Pointer(cinput))

	out := C.opencc_convert_utf8(c.cc, cinput, C.size_t(len(input)))
	if out == nil {
		return "", fmt.Errorf("%w: %s", ErrConversionFailed, lastError())
	}
	// The library allocated out; give it back on every path.
	defer C.opencc_convert_utf8_free(out)
	return C.GoString(out), nil
}

// ConvertAppend appends the converted form of input to dst and returns the
// extended slice, following the append conventions of package strconv. It
// converts into a caller-provided buffer instead of library-allocated
// memory and, unlike Convert, validates the result strictly: bytes that are
// not well-formed UTF-8 yield ErrInvalidUTF8.
func (c *Converter) ConvertAppend(dst []byte, input string) ([]byte, error) {
	if strings.IndexByte(input, 0) >= 0 {
		return dst, ErrInputContainsNull
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return dst, fmt.Errorf("%w: converter has been closed", ErrNewInstanceFailed)
	}
	cinput := C.CString(input)
	defer C.free(unsafe.Pointer(cinput))

	// Conversion grows at most threefold in UTF-8 byte length, plus one
	// byte for the trailing NUL the library writes.
	buf := make([]byte, 3*len(input)+1)
	n := C.opencc_convert_utf8_to_buffer(c.cc, cinput, C.size_t(len(input)),
		(*C.char)(unsafe.Pointer(&buf[0])))
	if n == C.opencc_convert_error {
		return dst, fmt.Errorf("%w: %s", ErrConversionFailed, lastError())
	}
	out := buf[:int(n)]
	if !utf8.Valid(out) {
		return dst, ErrInvalidUTF8
	}
	return append(dst, out...), nil
}

// Close releases the native handle. It is idempotent and safe to call
// concurrently with conversions; conversions issued after Close fail with
// ErrNewInstanceFailed. Errors from the native close are discarded.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return nil
	}
	C.opencc_close(c.cc)
	c.cc = nil
	runtime.SetFinalizer(c, nil)
	tracer().Debugf("closed converter")
	return nil
}

// lastError fetches the diagnostic of the most recent native failure.
func lastError() string {
	err := C.opencc_error()
	if err == nil {
		return "Unknown error from OpenCC library"
	}
	return C.GoString(err)
}

package native

/*
#include <stdlib.h>
#include <shaderc/shaderc.h>
#include "bridge.h"
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"
)

// Include results handed to the library live in C memory owned by this
// package. They are freed in goReleaseInclude, never earlier.

func newIncludeResult(name, content string, id uint64) *C.shaderc_include_result {
	res := (*C.shaderc_include_result)(C.calloc(1, C.sizeof_shaderc_include_result))
	res.source_name = C.CString(name)
	res.source_name_length = C.size_t(len(name))
	res.content = C.CString(content)
	res.content_length = C.size_t(len(content))
	C.shadercgo_set_result_id(res, C.uintptr_t(id))
	return res
}

func freeIncludeResult(res *C.shaderc_include_result) {
	C.free(unsafe.Pointer(res.source_name))
	C.free(unsafe.Pointer(res.content))
	C.free(unsafe.Pointer(res))
}

//export goResolveInclude
func goResolveInclude(handle C.uintptr_t, requested *C.char, typ C.int, requesting *C.char, depth C.size_t) *C.shaderc_include_result {
	inc, ok := cgo.Handle(handle).Value().(Includer)
	if !ok {
		return newIncludeResult("", "include callbacks are not bound to an includer", 0)
	}

	name, content, id := inc.ResolveInclude(C.GoString(requested), int(typ), C.GoString(requesting), int(depth))
	return newIncludeResult(name, content, id)
}

//export goReleaseInclude
func goReleaseInclude(handle C.uintptr_t, res *C.shaderc_include_result) {
	if res == nil {
		return
	}
	id := uint64(C.shadercgo_result_id(res))
	freeIncludeResult(res)

	if inc, ok := cgo.Handle(handle).Value().(Includer); ok && id != 0 {
		inc.ReleaseInclude(id)
	}
}

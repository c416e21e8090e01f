// Package native is the call surface into libshaderc.
//
// Each native object kind gets its own opaque handle type so a compile
// options pointer can never be passed where a compiler is expected. The
// zero value of every handle is the NULL pointer.
//
// Everything above this package talks to the library through the API
// interface; Default returns the cgo implementation.
package native

import (
	"runtime/cgo"
	"unsafe"
)

// Compiler is a shaderc_compiler_t.
type Compiler struct {
	p unsafe.Pointer
}

// Options is a shaderc_compile_options_t.
type Options struct {
	p unsafe.Pointer
}

// Result is a shaderc_compilation_result_t.
type Result struct {
	p unsafe.Pointer
}

func WrapCompiler(p unsafe.Pointer) Compiler { return Compiler{p: p} }
func WrapOptions(p unsafe.Pointer) Options   { return Options{p: p} }
func WrapResult(p unsafe.Pointer) Result     { return Result{p: p} }

func (c Compiler) Pointer() unsafe.Pointer { return c.p }
func (o Options) Pointer() unsafe.Pointer  { return o.p }
func (r Result) Pointer() unsafe.Pointer   { return r.p }

func (c Compiler) IsNil() bool { return c.p == nil }
func (o Options) IsNil() bool  { return o.p == nil }
func (r Result) IsNil() bool   { return r.p == nil }

// Includer is what the exported include callbacks dispatch to. The value
// behind the cgo.Handle passed to SetIncludeCallbacks must implement it.
//
// ResolveInclude returns the resolved name (empty on failure), the content
// (the error message on failure) and an id that is handed back to
// ReleaseInclude once the library is done with the result.
type Includer interface {
	ResolveInclude(requested string, typ int, requesting string, depth int) (name, content string, id uint64)
	ReleaseInclude(id uint64)
}

// API mirrors the subset of shaderc.h used by the binding. Enum arguments
// are passed as their raw C values.
type API interface {
	CompilerInitialize() Compiler
	CompilerRelease(c Compiler)

	OptionsInitialize() Options
	OptionsClone(o Options) Options
	OptionsRelease(o Options)

	AddMacroDefinition(o Options, name, value string)
	SetSourceLanguage(o Options, lang int)
	SetGenerateDebugInfo(o Options)
	SetOptimizationLevel(o Options, level int)
	SetForcedVersionProfile(o Options, version, profile int)
	SetIncludeCallbacks(o Options, h cgo.Handle)
	SetSuppressWarnings(o Options)
	SetTargetEnv(o Options, env int, version uint32)
	SetTargetSpirv(o Options, version uint32)
	SetWarningsAsErrors(o Options)
	SetLimit(o Options, limit, value int)
	SetAutoBindUniforms(o Options, enable bool)
	SetAutoCombinedImageSampler(o Options, enable bool)
	SetHLSLIOMapping(o Options, enable bool)
	SetHLSLOffsets(o Options, enable bool)
	SetBindingBase(o Options, kind int, base uint32)
	SetBindingBaseForStage(o Options, stage, kind int, base uint32)
	SetPreserveBindings(o Options, enable bool)
	SetAutoMapLocations(o Options, enable bool)
	SetHLSLRegisterSetAndBindingForStage(o Options, stage int, reg, set, binding string)
	SetHLSLRegisterSetAndBinding(o Options, reg, set, binding string)
	SetHLSLFunctionality1(o Options, enable bool)
	SetHLSL16BitTypes(o Options, enable bool)
	SetVulkanRulesRelaxed(o Options, enable bool)
	SetInvertY(o Options, enable bool)
	SetNaNClamp(o Options, enable bool)

	CompileIntoSPV(c Compiler, source []byte, kind int, file, entry string, o Options) Result
	CompileIntoSPVAssembly(c Compiler, source []byte, kind int, file, entry string, o Options) Result
	CompileIntoPreprocessedText(c Compiler, source []byte, kind int, file, entry string, o Options) Result
	AssembleIntoSPV(c Compiler, source []byte, o Options) Result

	ResultLength(r Result) int
	ResultBytes(r Result) []byte
	ResultNumWarnings(r Result) int
	ResultNumErrors(r Result) int
	ResultStatus(r Result) int
	ResultErrorMessage(r Result) string
	ResultRelease(r Result)

	SpvVersion() (version, revision uint32)
	ParseVersionProfile(s string) (version, profile int, ok bool)
}

package native

/*
#cgo pkg-config: shaderc
#include <shaderc/shaderc.h>
#include <stdlib.h>
#include "bridge.h"
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"
)

type shaderc struct{}

// Default returns the API backed by the linked libshaderc.
func Default() API {
	return shaderc{}
}

func compilerT(c Compiler) C.shaderc_compiler_t {
	return C.shaderc_compiler_t(c.p)
}

func optionsT(o Options) C.shaderc_compile_options_t {
	return C.shaderc_compile_options_t(o.p)
}

func resultT(r Result) C.shaderc_compilation_result_t {
	return C.shaderc_compilation_result_t(r.p)
}

// sourceText returns a pointer into source valid for the duration of a
// single call. The library never keeps it.
func sourceText(source []byte) (*C.char, C.size_t) {
	if len(source) == 0 {
		return nil, 0
	}
	return (*C.char)(unsafe.Pointer(&source[0])), C.size_t(len(source))
}

// Compiler

func (shaderc) CompilerInitialize() Compiler {
	return Compiler{p: unsafe.Pointer(C.shaderc_compiler_initialize())}
}

func (shaderc) CompilerRelease(c Compiler) {
	C.shaderc_compiler_release(compilerT(c))
}

// Options

func (shaderc) OptionsInitialize() Options {
	return Options{p: unsafe.Pointer(C.shaderc_compile_options_initialize())}
}

func (shaderc) OptionsClone(o Options) Options {
	return Options{p: unsafe.Pointer(C.shaderc_compile_options_clone(optionsT(o)))}
}

func (shaderc) OptionsRelease(o Options) {
	C.shaderc_compile_options_release(optionsT(o))
}

func (shaderc) AddMacroDefinition(o Options, name, value string) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	// A NULL value with zero length defines the macro without a value.
	var cValue *C.char
	if value != "" {
		cValue = C.CString(value)
		defer C.free(unsafe.Pointer(cValue))
	}

	C.shaderc_compile_options_add_macro_definition(
		optionsT(o),
		cName,
		C.size_t(len(name)),
		cValue,
		C.size_t(len(value)),
	)
}

func (shaderc) SetSourceLanguage(o Options, lang int) {
	C.shaderc_compile_options_set_source_language(optionsT(o), C.shaderc_source_language(lang))
}

func (shaderc) SetGenerateDebugInfo(o Options) {
	C.shaderc_compile_options_set_generate_debug_info(optionsT(o))
}

func (shaderc) SetOptimizationLevel(o Options, level int) {
	C.shaderc_compile_options_set_optimization_level(optionsT(o), C.shaderc_optimization_level(level))
}

func (shaderc) SetForcedVersionProfile(o Options, version, profile int) {
	C.shaderc_compile_options_set_forced_version_profile(optionsT(o), C.int(version), C.shaderc_profile(profile))
}

func (shaderc) SetIncludeCallbacks(o Options, h cgo.Handle) {
	C.shadercgo_set_include_callbacks(optionsT(o), C.uintptr_t(h))
}

func (shaderc) SetSuppressWarnings(o Options) {
	C.shaderc_compile_options_set_suppress_warnings(optionsT(o))
}

func (shaderc) SetTargetEnv(o Options, env int, version uint32) {
	C.shaderc_compile_options_set_target_env(
		optionsT(o),
		C.shaderc_target_env(env),
		C.uint32_t(version),
	)
}

func (shaderc) SetTargetSpirv(o Options, version uint32) {
	C.shaderc_compile_options_set_target_spirv(optionsT(o), C.shaderc_spirv_version(version))
}

func (shaderc) SetWarningsAsErrors(o Options) {
	C.shaderc_compile_options_set_warnings_as_errors(optionsT(o))
}

func (shaderc) SetLimit(o Options, limit, value int) {
	C.shaderc_compile_options_set_limit(optionsT(o), C.shaderc_limit(limit), C.int(value))
}

func (shaderc) SetAutoBindUniforms(o Options, enable bool) {
	C.shaderc_compile_options_set_auto_bind_uniforms(optionsT(o), C.bool(enable))
}

func (shaderc) SetAutoCombinedImageSampler(o Options, enable bool) {
	C.shaderc_compile_options_set_auto_combined_image_sampler(optionsT(o), C.bool(enable))
}

func (shaderc) SetHLSLIOMapping(o Options, enable bool) {
	C.shaderc_compile_options_set_hlsl_io_mapping(optionsT(o), C.bool(enable))
}

func (shaderc) SetHLSLOffsets(o Options, enable bool) {
	C.shaderc_compile_options_set_hlsl_offsets(optionsT(o), C.bool(enable))
}

func (shaderc) SetBindingBase(o Options, kind int, base uint32) {
	C.shaderc_compile_options_set_binding_base(optionsT(o), C.shaderc_uniform_kind(kind), C.uint32_t(base))
}

func (shaderc) SetBindingBaseForStage(o Options, stage, kind int, base uint32) {
	C.shaderc_compile_options_set_binding_base_for_stage(
		optionsT(o),
		C.shaderc_shader_kind(stage),
		C.shaderc_uniform_kind(kind),
		C.uint32_t(base),
	)
}

func (shaderc) SetPreserveBindings(o Options, enable bool) {
	C.shaderc_compile_options_set_preserve_bindings(optionsT(o), C.bool(enable))
}

func (shaderc) SetAutoMapLocations(o Options, enable bool) {
	C.shaderc_compile_options_set_auto_map_locations(optionsT(o), C.bool(enable))
}

func (shaderc) SetHLSLRegisterSetAndBindingForStage(o Options, stage int, reg, set, binding string) {
	cReg, cSet, cBinding := C.CString(reg), C.CString(set), C.CString(binding)
	defer C.free(unsafe.Pointer(cReg))
	defer C.free(unsafe.Pointer(cSet))
	defer C.free(unsafe.Pointer(cBinding))

	C.shaderc_compile_options_set_hlsl_register_set_and_binding_for_stage(
		optionsT(o),
		C.shaderc_shader_kind(stage),
		cReg, cSet, cBinding,
	)
}

func (shaderc) SetHLSLRegisterSetAndBinding(o Options, reg, set, binding string) {
	cReg, cSet, cBinding := C.CString(reg), C.CString(set), C.CString(binding)
	defer C.free(unsafe.Pointer(cReg))
	defer C.free(unsafe.Pointer(cSet))
	defer C.free(unsafe.Pointer(cBinding))

	C.shaderc_compile_options_set_hlsl_register_set_and_binding(optionsT(o), cReg, cSet, cBinding)
}

func (shaderc) SetHLSLFunctionality1(o Options, enable bool) {
	C.shaderc_compile_options_set_hlsl_functionality1(optionsT(o), C.bool(enable))
}

func (shaderc) SetHLSL16BitTypes(o Options, enable bool) {
	C.shaderc_compile_options_set_hlsl_16bit_types(optionsT(o), C.bool(enable))
}

func (shaderc) SetVulkanRulesRelaxed(o Options, enable bool) {
	C.shaderc_compile_options_set_vulkan_rules_relaxed(optionsT(o), C.bool(enable))
}

func (shaderc) SetInvertY(o Options, enable bool) {
	C.shaderc_compile_options_set_invert_y(optionsT(o), C.bool(enable))
}

func (shaderc) SetNaNClamp(o Options, enable bool) {
	C.shaderc_compile_options_set_nan_clamp(optionsT(o), C.bool(enable))
}

// Compile entry points

func (shaderc) CompileIntoSPV(c Compiler, source []byte, kind int, file, entry string, o Options) Result {
	src, size := sourceText(source)
	cFile, cEntry := C.CString(file), C.CString(entry)
	defer C.free(unsafe.Pointer(cFile))
	defer C.free(unsafe.Pointer(cEntry))

	return Result{p: unsafe.Pointer(C.shaderc_compile_into_spv(
		compilerT(c), src, size, C.shaderc_shader_kind(kind), cFile, cEntry, optionsT(o),
	))}
}

func (shaderc) CompileIntoSPVAssembly(c Compiler, source []byte, kind int, file, entry string, o Options) Result {
	src, size := sourceText(source)
	cFile, cEntry := C.CString(file), C.CString(entry)
	defer C.free(unsafe.Pointer(cFile))
	defer C.free(unsafe.Pointer(cEntry))

	return Result{p: unsafe.Pointer(C.shaderc_compile_into_spv_assembly(
		compilerT(c), src, size, C.shaderc_shader_kind(kind), cFile, cEntry, optionsT(o),
	))}
}

func (shaderc) CompileIntoPreprocessedText(c Compiler, source []byte, kind int, file, entry string, o Options) Result {
	src, size := sourceText(source)
	cFile, cEntry := C.CString(file), C.CString(entry)
	defer C.free(unsafe.Pointer(cFile))
	defer C.free(unsafe.Pointer(cEntry))

	return Result{p: unsafe.Pointer(C.shaderc_compile_into_preprocessed_text(
		compilerT(c), src, size, C.shaderc_shader_kind(kind), cFile, cEntry, optionsT(o),
	))}
}

func (shaderc) AssembleIntoSPV(c Compiler, source []byte, o Options) Result {
	src, size := sourceText(source)
	return Result{p: unsafe.Pointer(C.shaderc_assemble_into_spv(compilerT(c), src, size, optionsT(o)))}
}

// Result accessors

func (shaderc) ResultLength(r Result) int {
	return int(C.shaderc_result_get_length(resultT(r)))
}

func (shaderc) ResultBytes(r Result) []byte {
	ptr := C.shaderc_result_get_bytes(resultT(r))
	if ptr == nil {
		return nil
	}
	length := C.shaderc_result_get_length(resultT(r))
	return C.GoBytes(unsafe.Pointer(ptr), C.int(length))
}

func (shaderc) ResultNumWarnings(r Result) int {
	return int(C.shaderc_result_get_num_warnings(resultT(r)))
}

func (shaderc) ResultNumErrors(r Result) int {
	return int(C.shaderc_result_get_num_errors(resultT(r)))
}

func (shaderc) ResultStatus(r Result) int {
	return int(C.shaderc_result_get_compilation_status(resultT(r)))
}

func (shaderc) ResultErrorMessage(r Result) string {
	return C.GoString(C.shaderc_result_get_error_message(resultT(r)))
}

func (shaderc) ResultRelease(r Result) {
	C.shaderc_result_release(resultT(r))
}

// Library info

func (shaderc) SpvVersion() (uint32, uint32) {
	var version, revision C.uint
	C.shaderc_get_spv_version(&version, &revision)
	return uint32(version), uint32(revision)
}

func (shaderc) ParseVersionProfile(s string) (int, int, bool) {
	cStr := C.CString(s)
	defer C.free(unsafe.Pointer(cStr))

	var version C.int
	var profile C.shaderc_profile
	ok := C.shaderc_parse_version_profile(cStr, &version, &profile)
	return int(version), int(profile), bool(ok)
}

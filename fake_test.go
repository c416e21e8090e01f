package shaderc

import (
	"fmt"
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/NOT-REAL-GAMES/shaderc/internal/native"
)

type fakeResult struct {
	bytes    []byte
	warnings int
	errors   int
	status   CompilationStatus
	message  string
}

// fakeAPI records every native call by name so tests can check ordering
// and release counts without libshaderc.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	failCompiler bool
	failOptions  bool
	nullResult   bool
	result       fakeResult

	// onCompile runs inside the compile call with the include handle that
	// was installed on the options, if any.
	onCompile func(inc native.Includer)

	handles map[unsafe.Pointer]cgo.Handle
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		result:  fakeResult{bytes: spirvModule("main"), status: StatusSuccess},
		handles: make(map[unsafe.Pointer]cgo.Handle),
	}
}

func (f *fakeAPI) record(format string, args ...any) {
	f.mu.Lock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	f.mu.Unlock()
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Count(name string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func ptr() unsafe.Pointer { return unsafe.Pointer(new(byte)) }

func (f *fakeAPI) CompilerInitialize() native.Compiler {
	f.record("CompilerInitialize")
	if f.failCompiler {
		return native.Compiler{}
	}
	return native.WrapCompiler(ptr())
}

func (f *fakeAPI) CompilerRelease(native.Compiler) { f.record("CompilerRelease") }

func (f *fakeAPI) OptionsInitialize() native.Options {
	f.record("OptionsInitialize")
	if f.failOptions {
		return native.Options{}
	}
	return native.WrapOptions(ptr())
}

func (f *fakeAPI) OptionsClone(native.Options) native.Options {
	f.record("OptionsClone")
	return native.WrapOptions(ptr())
}

func (f *fakeAPI) OptionsRelease(native.Options) { f.record("OptionsRelease") }

func (f *fakeAPI) AddMacroDefinition(_ native.Options, name, value string) {
	f.record("AddMacroDefinition %s=%s", name, value)
}

func (f *fakeAPI) SetSourceLanguage(_ native.Options, lang int) {
	f.record("SetSourceLanguage %d", lang)
}

func (f *fakeAPI) SetGenerateDebugInfo(native.Options) { f.record("SetGenerateDebugInfo") }

func (f *fakeAPI) SetOptimizationLevel(_ native.Options, level int) {
	f.record("SetOptimizationLevel %d", level)
}

func (f *fakeAPI) SetForcedVersionProfile(_ native.Options, version, profile int) {
	f.record("SetForcedVersionProfile %d %d", version, profile)
}

func (f *fakeAPI) SetIncludeCallbacks(o native.Options, h cgo.Handle) {
	f.record("SetIncludeCallbacks")
	f.mu.Lock()
	f.handles[o.Pointer()] = h
	f.mu.Unlock()
}

func (f *fakeAPI) SetSuppressWarnings(native.Options) { f.record("SetSuppressWarnings") }

func (f *fakeAPI) SetTargetEnv(_ native.Options, env int, version uint32) {
	f.record("SetTargetEnv %d %#x", env, version)
}

func (f *fakeAPI) SetTargetSpirv(_ native.Options, version uint32) {
	f.record("SetTargetSpirv %#x", version)
}

func (f *fakeAPI) SetWarningsAsErrors(native.Options) { f.record("SetWarningsAsErrors") }

func (f *fakeAPI) SetLimit(_ native.Options, limit, value int) {
	f.record("SetLimit %s=%d", Limit(limit), value)
}

func (f *fakeAPI) SetAutoBindUniforms(_ native.Options, enable bool) {
	f.record("SetAutoBindUniforms %t", enable)
}

func (f *fakeAPI) SetAutoCombinedImageSampler(_ native.Options, enable bool) {
	f.record("SetAutoCombinedImageSampler %t", enable)
}

func (f *fakeAPI) SetHLSLIOMapping(_ native.Options, enable bool) {
	f.record("SetHLSLIOMapping %t", enable)
}

func (f *fakeAPI) SetHLSLOffsets(_ native.Options, enable bool) {
	f.record("SetHLSLOffsets %t", enable)
}

func (f *fakeAPI) SetBindingBase(_ native.Options, kind int, base uint32) {
	f.record("SetBindingBase %s=%d", UniformKind(kind), base)
}

func (f *fakeAPI) SetBindingBaseForStage(_ native.Options, stage, kind int, base uint32) {
	f.record("SetBindingBaseForStage %s %s=%d", ShaderKind(stage), UniformKind(kind), base)
}

func (f *fakeAPI) SetPreserveBindings(_ native.Options, enable bool) {
	f.record("SetPreserveBindings %t", enable)
}

func (f *fakeAPI) SetAutoMapLocations(_ native.Options, enable bool) {
	f.record("SetAutoMapLocations %t", enable)
}

func (f *fakeAPI) SetHLSLRegisterSetAndBindingForStage(_ native.Options, stage int, reg, set, binding string) {
	f.record("SetHLSLRegisterSetAndBindingForStage %s %s %s %s", ShaderKind(stage), reg, set, binding)
}

func (f *fakeAPI) SetHLSLRegisterSetAndBinding(_ native.Options, reg, set, binding string) {
	f.record("SetHLSLRegisterSetAndBinding %s %s %s", reg, set, binding)
}

func (f *fakeAPI) SetHLSLFunctionality1(_ native.Options, enable bool) {
	f.record("SetHLSLFunctionality1 %t", enable)
}

func (f *fakeAPI) SetHLSL16BitTypes(_ native.Options, enable bool) {
	f.record("SetHLSL16BitTypes %t", enable)
}

func (f *fakeAPI) SetVulkanRulesRelaxed(_ native.Options, enable bool) {
	f.record("SetVulkanRulesRelaxed %t", enable)
}

func (f *fakeAPI) SetInvertY(_ native.Options, enable bool) {
	f.record("SetInvertY %t", enable)
}

func (f *fakeAPI) SetNaNClamp(_ native.Options, enable bool) {
	f.record("SetNaNClamp %t", enable)
}

func (f *fakeAPI) compile(name string, o native.Options) native.Result {
	f.record("%s", name)

	if f.onCompile != nil && !o.IsNil() {
		f.mu.Lock()
		h, ok := f.handles[o.Pointer()]
		f.mu.Unlock()
		if ok {
			f.onCompile(h.Value().(native.Includer))
		}
	}

	if f.nullResult {
		return native.Result{}
	}
	return native.WrapResult(ptr())
}

func (f *fakeAPI) CompileIntoSPV(_ native.Compiler, _ []byte, _ int, _, _ string, o native.Options) native.Result {
	return f.compile("CompileIntoSPV", o)
}

func (f *fakeAPI) CompileIntoSPVAssembly(_ native.Compiler, _ []byte, _ int, _, _ string, o native.Options) native.Result {
	return f.compile("CompileIntoSPVAssembly", o)
}

func (f *fakeAPI) CompileIntoPreprocessedText(_ native.Compiler, _ []byte, _ int, _, _ string, o native.Options) native.Result {
	return f.compile("CompileIntoPreprocessedText", o)
}

func (f *fakeAPI) AssembleIntoSPV(_ native.Compiler, _ []byte, o native.Options) native.Result {
	return f.compile("AssembleIntoSPV", o)
}

func (f *fakeAPI) ResultLength(native.Result) int {
	f.record("ResultLength")
	return len(f.result.bytes)
}

func (f *fakeAPI) ResultBytes(native.Result) []byte {
	f.record("ResultBytes")
	if f.result.bytes == nil {
		return nil
	}
	return append([]byte{}, f.result.bytes...)
}

func (f *fakeAPI) ResultNumWarnings(native.Result) int {
	f.record("ResultNumWarnings")
	return f.result.warnings
}

func (f *fakeAPI) ResultNumErrors(native.Result) int {
	f.record("ResultNumErrors")
	return f.result.errors
}

func (f *fakeAPI) ResultStatus(native.Result) int {
	f.record("ResultStatus")
	return int(f.result.status)
}

func (f *fakeAPI) ResultErrorMessage(native.Result) string {
	f.record("ResultErrorMessage")
	return f.result.message
}

func (f *fakeAPI) ResultRelease(native.Result) { f.record("ResultRelease") }

func (f *fakeAPI) SpvVersion() (uint32, uint32) {
	f.record("SpvVersion")
	return uint32(SpirvVersion1_6), 4
}

func (f *fakeAPI) ParseVersionProfile(s string) (int, int, bool) {
	f.record("ParseVersionProfile %s", s)
	vp, err := ParseVersionProfile(s)
	if err != nil {
		return 0, 0, false
	}
	return vp.Version, int(vp.Profile), true
}

// spirvModule builds a minimal SPIR-V binary: a header followed by one
// OpEntryPoint per name (GLCompute, function id 1, no interface).
func spirvModule(names ...string) []byte {
	words := []uint32{0x07230203, uint32(SpirvVersion1_0), 0x000d000b, 8, 0}
	for _, name := range names {
		lit := encodeLiteral(name)
		words = append(words, uint32(3+len(lit))<<16|15, 5, 1)
		words = append(words, lit...)
	}

	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = append(out, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return out
}

func encodeLiteral(s string) []uint32 {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}

package shaderc

import (
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/NOT-REAL-GAMES/shaderc/internal/native"
)

// Compiler wraps one native shaderc compiler.
//
// Compile may be called from many goroutines at once. Release must not race
// with in-flight compiles; it waits for them, but a compile started after
// Release returns ErrReleased.
type Compiler struct {
	api native.API

	mu       sync.RWMutex
	handle   native.Compiler
	released bool
}

// NewCompiler creates a compiler backed by libshaderc.
func NewCompiler() (*Compiler, error) {
	return newCompiler(native.Default())
}

func newCompiler(api native.API) (*Compiler, error) {
	handle := api.CompilerInitialize()
	if handle.IsNil() {
		return nil, initError("create compiler")
	}

	c := &Compiler{api: api, handle: handle}
	runtime.SetFinalizer(c, (*Compiler).finalize)

	Logger().Debug("compiler created")
	return c, nil
}

func (c *Compiler) finalize() {
	Logger().Warn("compiler was not released, releasing from finalizer")
	c.Release()
}

// Release frees the native compiler. It is safe to call more than once.
func (c *Compiler) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.released {
		return
	}
	c.released = true

	c.api.CompilerRelease(c.handle)
	c.handle = native.Compiler{}
	runtime.SetFinalizer(c, nil)

	Logger().Debug("compiler released")
}

// Close releases the compiler. It always returns nil.
func (c *Compiler) Close() error {
	c.Release()
	return nil
}

// Released reports whether Release has been called.
func (c *Compiler) Released() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.released
}

// Compile runs one compilation. opts may be nil for library defaults; it is
// materialized into a native options object that lives only for this call.
//
// A failed compilation is not an error: inspect the result's Status, or use
// its Err method. The returned error is reserved for a released compiler,
// invalid arguments and native allocation failures.
//
// For AssembleTextToSPIRV, kind and entryPoint are ignored.
func (c *Compiler) Compile(source []byte, mode CompileMode, kind ShaderKind, filename, entryPoint string, opts *CompileOptions) (*CompilationResult, error) {
	const op = "compile"

	if mode < ToSPIRV || mode > AssembleTextToSPIRV {
		return nil, invalidInput(op, "unknown compile mode %d", int(mode))
	}
	if len(source) == 0 && mode != AssembleTextToSPIRV {
		return nil, invalidInput(op, "source is empty")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.released {
		return nil, releasedError(op)
	}

	h, err := materialize(c.api, opts)
	if err != nil {
		return nil, err
	}
	defer h.release()

	var res native.Result
	switch mode {
	case ToSPIRV:
		res = c.api.CompileIntoSPV(c.handle, source, int(kind), filename, entryPoint, h.opts)
	case ToAssembly:
		res = c.api.CompileIntoSPVAssembly(c.handle, source, int(kind), filename, entryPoint, h.opts)
	case ToPreprocessedText:
		res = c.api.CompileIntoPreprocessedText(c.handle, source, int(kind), filename, entryPoint, h.opts)
	case AssembleTextToSPIRV:
		res = c.api.AssembleIntoSPV(c.handle, source, h.opts)
	}

	result := newResult(c.api, res)

	Logger().Debug("compile finished",
		zap.Stringer("mode", mode),
		zap.Stringer("kind", kind),
		zap.String("file", filename),
		zap.Stringer("status", result.Status()),
		zap.Int("warnings", result.Warnings()),
		zap.Int("errors", result.Errors()),
		zap.Int("bytes", result.Len()))

	return result, nil
}

// CompileIntoSPV compiles GLSL or HLSL source to a SPIR-V binary using the
// "main" entry point.
func (c *Compiler) CompileIntoSPV(source, filename string, kind ShaderKind, opts *CompileOptions) (*CompilationResult, error) {
	return c.Compile([]byte(source), ToSPIRV, kind, filename, "main", opts)
}

// CompileIntoSPVAssembly compiles to SPIR-V assembly text.
func (c *Compiler) CompileIntoSPVAssembly(source, filename string, kind ShaderKind, opts *CompileOptions) (*CompilationResult, error) {
	return c.Compile([]byte(source), ToAssembly, kind, filename, "main", opts)
}

// PreprocessText runs only the preprocessor.
func (c *Compiler) PreprocessText(source, filename string, kind ShaderKind, opts *CompileOptions) (*CompilationResult, error) {
	return c.Compile([]byte(source), ToPreprocessedText, kind, filename, "main", opts)
}

// AssembleIntoSPV assembles SPIR-V assembly text into a binary.
func (c *Compiler) AssembleIntoSPV(source string, opts *CompileOptions) (*CompilationResult, error) {
	return c.Compile([]byte(source), AssembleTextToSPIRV, 0, "", "", opts)
}

// SpvVersion returns the SPIR-V version and revision the linked library
// produces by default.
func SpvVersion() (SpirvVersion, uint32) {
	return spvVersion(native.Default())
}

func spvVersion(api native.API) (SpirvVersion, uint32) {
	version, revision := api.SpvVersion()
	return SpirvVersion(version), revision
}

// LibraryParseVersionProfile parses a version profile string with the
// linked library. ParseVersionProfile gives the same answer without cgo.
func LibraryParseVersionProfile(s string) (VersionProfile, error) {
	return libraryParseVersionProfile(native.Default(), s)
}

func libraryParseVersionProfile(api native.API, s string) (VersionProfile, error) {
	version, profile, ok := api.ParseVersionProfile(s)
	if !ok {
		return VersionProfile{}, configError("version profile", s)
	}
	return VersionProfile{Version: version, Profile: Profile(profile)}, nil
}

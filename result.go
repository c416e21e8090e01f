package shaderc

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga/spirv"

	"github.com/NOT-REAL-GAMES/shaderc/internal/native"
)

// CompilationResult is a snapshot of a native compilation result. All fields
// are copied out when it is created and the native result is released right
// away, so a CompilationResult holds no native memory and is safe to share.
type CompilationResult struct {
	length   int
	code     []byte
	warnings int
	errors   int
	status   CompilationStatus
	message  string
}

func newResult(api native.API, res native.Result) *CompilationResult {
	if res.IsNil() {
		return &CompilationResult{
			status:  StatusNullResultObject,
			message: "native compiler returned no result",
		}
	}
	defer api.ResultRelease(res)

	r := &CompilationResult{}
	r.length = api.ResultLength(res)
	r.code = api.ResultBytes(res)
	r.warnings = api.ResultNumWarnings(res)
	r.errors = api.ResultNumErrors(res)
	r.status = CompilationStatus(api.ResultStatus(res))
	r.message = api.ResultErrorMessage(res)
	return r
}

// Len is the output length in bytes.
func (r *CompilationResult) Len() int { return r.length }

// Bytes returns a copy of the output. It is nil when the library produced no
// output buffer.
func (r *CompilationResult) Bytes() []byte {
	if r.code == nil {
		return nil
	}
	return bytes.Clone(r.code)
}

// GetBytes is Bytes.
func (r *CompilationResult) GetBytes() []byte { return r.Bytes() }

// Text returns the output as a string, for assembly and preprocessed text.
func (r *CompilationResult) Text() string { return string(r.code) }

func (r *CompilationResult) Warnings() int { return r.warnings }

func (r *CompilationResult) Errors() int { return r.errors }

func (r *CompilationResult) Status() CompilationStatus { return r.status }

// ErrorMessage holds the diagnostics, warnings included.
func (r *CompilationResult) ErrorMessage() string { return r.message }

func (r *CompilationResult) Succeeded() bool { return r.status == StatusSuccess }

// Err returns nil for a successful compile and a KindCompilation error
// otherwise. errors.Is(err, StatusCompilationError) works on it.
func (r *CompilationResult) Err() error {
	if r.status == StatusSuccess {
		return nil
	}
	return &Error{
		Op:     "compile",
		Kind:   KindCompilation,
		Status: r.status,
		Detail: r.message,
		Cause:  r.status,
	}
}

// Release is a no-op. The native result was released when the
// CompilationResult was created.
func (r *CompilationResult) Release() {}

// Words decodes a SPIR-V binary into little-endian words. It fails if the
// output is not a whole number of words.
func (r *CompilationResult) Words() ([]uint32, error) {
	if len(r.code)%4 != 0 {
		return nil, invalidInput("words", "output length %d is not a multiple of 4", len(r.code))
	}
	words := make([]uint32, len(r.code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(r.code[i*4:])
	}
	return words, nil
}

// SpirvHeader is the five-word header of a SPIR-V module.
type SpirvHeader struct {
	Magic     uint32
	Version   SpirvVersion
	Generator uint32
	Bound     uint32
	Schema    uint32
}

const spirvHeaderWords = 5

// Header parses the SPIR-V header of a binary result.
func (r *CompilationResult) Header() (SpirvHeader, error) {
	words, err := r.Words()
	if err != nil {
		return SpirvHeader{}, err
	}
	if len(words) < spirvHeaderWords {
		return SpirvHeader{}, invalidInput("header", "output has %d words, a SPIR-V header needs %d", len(words), spirvHeaderWords)
	}
	if words[0] != spirv.MagicNumber {
		return SpirvHeader{}, invalidInput("header", "bad magic number %#08x", words[0])
	}
	return SpirvHeader{
		Magic:     words[0],
		Version:   SpirvVersion(words[1]),
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
	}, nil
}

// EntryPoint is one OpEntryPoint of a SPIR-V module.
type EntryPoint struct {
	// ExecutionModel is the raw SPIR-V execution model (0 vertex, 4 fragment,
	// 5 GLCompute, ...).
	ExecutionModel uint32
	Name           string
}

// EntryPoints lists the entry points declared in a binary result.
func (r *CompilationResult) EntryPoints() ([]EntryPoint, error) {
	if _, err := r.Header(); err != nil {
		return nil, err
	}
	words, _ := r.Words()

	var eps []EntryPoint
	for i := spirvHeaderWords; i < len(words); {
		count := int(words[i] >> 16)
		opcode := spirv.OpCode(words[i] & 0xffff)
		if count == 0 || i+count > len(words) {
			return nil, invalidInput("entry points", "malformed instruction at word %d", i)
		}
		// OpEntryPoint: model, function id, name literal, interface ids.
		if opcode == spirv.OpEntryPoint && count >= 4 {
			eps = append(eps, EntryPoint{
				ExecutionModel: words[i+1],
				Name:           decodeLiteral(words[i+3 : i+count]),
			})
		}
		i += count
	}
	return eps, nil
}

// decodeLiteral reads a nul-terminated UTF-8 string packed into words.
func decodeLiteral(words []uint32) string {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

func (r *CompilationResult) String() string {
	return fmt.Sprintf("%s: %d bytes, %d warnings, %d errors", r.status, r.length, r.warnings, r.errors)
}

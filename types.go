package shaderc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ShaderKind selects the pipeline stage a source is compiled for
// (shaderc_shader_kind).
type ShaderKind int

const (
	// Forced kinds compile the source as the given stage.
	VertexShader ShaderKind = iota
	FragmentShader
	ComputeShader
	GeometryShader
	TessControlShader
	TessEvaluationShader

	// InferFromSource deduces the stage from a #pragma shader_stage
	// annotation and fails if there is none.
	InferFromSource

	// Default kinds fall back to the given stage when the source has no
	// #pragma shader_stage annotation.
	DefaultVertexShader
	DefaultFragmentShader
	DefaultComputeShader
	DefaultGeometryShader
	DefaultTessControlShader
	DefaultTessEvaluationShader

	SPIRVAssembly

	RayGenShader
	AnyHitShader
	ClosestHitShader
	MissShader
	IntersectionShader
	CallableShader
	DefaultRayGenShader
	DefaultAnyHitShader
	DefaultClosestHitShader
	DefaultMissShader
	DefaultIntersectionShader
	DefaultCallableShader

	TaskShader
	MeshShader
	DefaultTaskShader
	DefaultMeshShader
)

var shaderKindNames = [...]string{
	VertexShader:                "vertex",
	FragmentShader:              "fragment",
	ComputeShader:               "compute",
	GeometryShader:              "geometry",
	TessControlShader:           "tesscontrol",
	TessEvaluationShader:        "tesseval",
	InferFromSource:             "infer",
	DefaultVertexShader:         "default-vertex",
	DefaultFragmentShader:       "default-fragment",
	DefaultComputeShader:        "default-compute",
	DefaultGeometryShader:       "default-geometry",
	DefaultTessControlShader:    "default-tesscontrol",
	DefaultTessEvaluationShader: "default-tesseval",
	SPIRVAssembly:               "spirv-assembly",
	RayGenShader:                "rgen",
	AnyHitShader:                "rahit",
	ClosestHitShader:            "rchit",
	MissShader:                  "rmiss",
	IntersectionShader:          "rint",
	CallableShader:              "rcall",
	DefaultRayGenShader:         "default-rgen",
	DefaultAnyHitShader:         "default-rahit",
	DefaultClosestHitShader:     "default-rchit",
	DefaultMissShader:           "default-rmiss",
	DefaultIntersectionShader:   "default-rint",
	DefaultCallableShader:       "default-rcall",
	TaskShader:                  "task",
	MeshShader:                  "mesh",
	DefaultTaskShader:           "default-task",
	DefaultMeshShader:           "default-mesh",
}

// glslc stage spellings and file extensions.
var shaderKindAliases = map[string]ShaderKind{
	"vert": VertexShader,
	"frag": FragmentShader,
	"comp": ComputeShader,
	"geom": GeometryShader,
	"tesc": TessControlShader,
	"tese": TessEvaluationShader,
}

func (k ShaderKind) String() string {
	if k >= 0 && int(k) < len(shaderKindNames) {
		return shaderKindNames[k]
	}
	return fmt.Sprintf("ShaderKind(%d)", int(k))
}

// ParseShaderKind accepts the names returned by String and the short glslc
// stage names (vert, frag, comp, geom, tesc, tese).
func ParseShaderKind(s string) (ShaderKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, ok := shaderKindAliases[s]; ok {
		return k, nil
	}
	for k, name := range shaderKindNames {
		if name == s {
			return ShaderKind(k), nil
		}
	}
	return 0, configError("shader kind", s)
}

// KindForFile returns the stage glslc would pick for a file name from its
// extension (shader.vert, raygen.rgen, ...).
func KindForFile(name string) (ShaderKind, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return 0, false
	}
	switch ext {
	case "spvasm":
		return SPIRVAssembly, true
	case "vertex", "fragment", "compute", "geometry", "tesscontrol", "tesseval":
		return 0, false
	}
	k, err := ParseShaderKind(ext)
	if err != nil || strings.HasPrefix(k.String(), "default-") || k == InferFromSource {
		return 0, false
	}
	return k, true
}

// SourceLanguage is shaderc_source_language. GLSL is the zero value and the
// library default.
type SourceLanguage int

const (
	GLSL SourceLanguage = iota
	HLSL
)

func (l SourceLanguage) String() string {
	switch l {
	case GLSL:
		return "glsl"
	case HLSL:
		return "hlsl"
	default:
		return fmt.Sprintf("SourceLanguage(%d)", int(l))
	}
}

func ParseSourceLanguage(s string) (SourceLanguage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "glsl":
		return GLSL, nil
	case "hlsl":
		return HLSL, nil
	}
	return 0, configError("source language", s)
}

// TargetEnv is shaderc_target_env.
type TargetEnv int

const (
	TargetEnvVulkan TargetEnv = iota
	TargetEnvOpenGL
	// SPIR-V generation is not supported under the compatibility profile.
	TargetEnvOpenGLCompat
	// Deprecated: the WebGPU environment was removed from shaderc.
	TargetEnvWebGPU

	TargetEnvDefault = TargetEnvVulkan
)

func (e TargetEnv) String() string {
	switch e {
	case TargetEnvVulkan:
		return "vulkan"
	case TargetEnvOpenGL:
		return "opengl"
	case TargetEnvOpenGLCompat:
		return "opengl_compat"
	case TargetEnvWebGPU:
		return "webgpu"
	default:
		return fmt.Sprintf("TargetEnv(%d)", int(e))
	}
}

// CompilationStatus is shaderc_compilation_status.
type CompilationStatus int

const (
	StatusSuccess CompilationStatus = iota
	// Stage deduction failed.
	StatusInvalidStage
	StatusCompilationError
	// Unexpected failure inside the library.
	StatusInternalError
	StatusNullResultObject
	StatusInvalidAssembly
	StatusValidationError
	StatusTransformationError
	StatusConfigurationError
)

func (s CompilationStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidStage:
		return "invalid stage"
	case StatusCompilationError:
		return "compilation error"
	case StatusInternalError:
		return "internal error"
	case StatusNullResultObject:
		return "null result object"
	case StatusInvalidAssembly:
		return "invalid assembly"
	case StatusValidationError:
		return "validation error"
	case StatusTransformationError:
		return "transformation error"
	case StatusConfigurationError:
		return "configuration error"
	default:
		return fmt.Sprintf("CompilationStatus(%d)", int(s))
	}
}

// Error lets a status be used as an error value.
func (s CompilationStatus) Error() string {
	return s.String()
}

// Profile is the GLSL profile of a forced #version (shaderc_profile).
type Profile int

const (
	// ProfileNone is for GLSL versions that predate profiles (below 150).
	ProfileNone Profile = iota
	ProfileCore
	// ProfileCompatibility is rejected by the library.
	ProfileCompatibility
	ProfileES
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCore:
		return "core"
	case ProfileCompatibility:
		return "compatibility"
	case ProfileES:
		return "es"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

// OptimizationLevel is shaderc_optimization_level.
type OptimizationLevel int

const (
	OptimizationZero OptimizationLevel = iota
	OptimizationSize
	OptimizationPerformance
)

func (o OptimizationLevel) String() string {
	switch o {
	case OptimizationZero:
		return "zero"
	case OptimizationSize:
		return "size"
	case OptimizationPerformance:
		return "performance"
	default:
		return fmt.Sprintf("OptimizationLevel(%d)", int(o))
	}
}

// ParseOptimizationLevel accepts zero/size/performance and the glslc flags
// 0, s and the empty string (plain -O).
func ParseOptimizationLevel(s string) (OptimizationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero", "0", "none":
		return OptimizationZero, nil
	case "size", "s":
		return OptimizationSize, nil
	case "performance", "", "perf":
		return OptimizationPerformance, nil
	}
	return 0, configError("optimization level", s)
}

// UniformKind is shaderc_uniform_kind. In Vulkan uniform resources are
// bound through descriptors with numbered sets and bindings.
type UniformKind int

const (
	// Image and image buffer.
	UniformImage UniformKind = iota
	// Pure sampler.
	UniformSampler
	// Sampled texture in GLSL, shader resource view in HLSL.
	UniformTexture
	// UBO in GLSL, cbuffer in HLSL.
	UniformBuffer
	// SSBO in GLSL.
	UniformStorageBuffer
	// Unordered access view in HLSL.
	UniformUnorderedAccessView
)

var uniformKindNames = [...]string{
	UniformImage:               "image",
	UniformSampler:             "sampler",
	UniformTexture:             "texture",
	UniformBuffer:              "buffer",
	UniformStorageBuffer:       "storage-buffer",
	UniformUnorderedAccessView: "uav",
}

func (k UniformKind) String() string {
	if k >= 0 && int(k) < len(uniformKindNames) {
		return uniformKindNames[k]
	}
	return fmt.Sprintf("UniformKind(%d)", int(k))
}

// ParseUniformKind accepts the String names plus glslc's ubo, ssbo, cbuffer
// and srv spellings.
func ParseUniformKind(s string) (UniformKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "ubo", "cbuffer":
		return UniformBuffer, nil
	case "ssbo":
		return UniformStorageBuffer, nil
	case "srv":
		return UniformTexture, nil
	}
	for k, name := range uniformKindNames {
		if name == s {
			return UniformKind(k), nil
		}
	}
	return 0, configError("uniform kind", s)
}

// IncludeType is the kind of #include request.
type IncludeType int

const (
	// IncludeRelative is #include "source".
	IncludeRelative IncludeType = iota
	// IncludeStandard is #include <source>.
	IncludeStandard
)

func (t IncludeType) String() string {
	if t == IncludeStandard {
		return "standard"
	}
	return "relative"
}

// CompileMode picks which of the four native entry points Compile calls.
type CompileMode int

const (
	// ToSPIRV compiles GLSL/HLSL to a SPIR-V binary.
	ToSPIRV CompileMode = iota
	// ToAssembly compiles GLSL/HLSL to SPIR-V assembly text.
	ToAssembly
	// ToPreprocessedText only runs the preprocessor.
	ToPreprocessedText
	// AssembleTextToSPIRV assembles SPIR-V assembly text. The native entry
	// point takes no shader kind or entry point.
	AssembleTextToSPIRV
)

func (m CompileMode) String() string {
	switch m {
	case ToSPIRV:
		return "spirv"
	case ToAssembly:
		return "assembly"
	case ToPreprocessedText:
		return "preprocess"
	case AssembleTextToSPIRV:
		return "assemble"
	default:
		return fmt.Sprintf("CompileMode(%d)", int(m))
	}
}

// Limit is a glslang resource limit (shaderc_limit).
type Limit int

const (
	LimitMaxLights Limit = iota
	LimitMaxClipPlanes
	LimitMaxTextureUnits
	LimitMaxTextureCoords
	LimitMaxVertexAttribs
	LimitMaxVertexUniformComponents
	LimitMaxVaryingFloats
	LimitMaxVertexTextureImageUnits
	LimitMaxCombinedTextureImageUnits
	LimitMaxTextureImageUnits
	LimitMaxFragmentUniformComponents
	LimitMaxDrawBuffers
	LimitMaxVertexUniformVectors
	LimitMaxVaryingVectors
	LimitMaxFragmentUniformVectors
	LimitMaxVertexOutputVectors
	LimitMaxFragmentInputVectors
	LimitMinProgramTexelOffset
	LimitMaxProgramTexelOffset
	LimitMaxClipDistances
	LimitMaxComputeWorkGroupCountX
	LimitMaxComputeWorkGroupCountY
	LimitMaxComputeWorkGroupCountZ
	LimitMaxComputeWorkGroupSizeX
	LimitMaxComputeWorkGroupSizeY
	LimitMaxComputeWorkGroupSizeZ
	LimitMaxComputeUniformComponents
	LimitMaxComputeTextureImageUnits
	LimitMaxComputeImageUniforms
	LimitMaxComputeAtomicCounters
	LimitMaxComputeAtomicCounterBuffers
	LimitMaxVaryingComponents
	LimitMaxVertexOutputComponents
	LimitMaxGeometryInputComponents
	LimitMaxGeometryOutputComponents
	LimitMaxFragmentInputComponents
	LimitMaxImageUnits
	LimitMaxCombinedImageUnitsAndFragmentOutputs
	LimitMaxCombinedShaderOutputResources
	LimitMaxImageSamples
	LimitMaxVertexImageUniforms
	LimitMaxTessControlImageUniforms
	LimitMaxTessEvaluationImageUniforms
	LimitMaxGeometryImageUniforms
	LimitMaxFragmentImageUniforms
	LimitMaxCombinedImageUniforms
	LimitMaxGeometryTextureImageUnits
	LimitMaxGeometryOutputVertices
	LimitMaxGeometryTotalOutputComponents
	LimitMaxGeometryUniformComponents
	LimitMaxGeometryVaryingComponents
	LimitMaxTessControlInputComponents
	LimitMaxTessControlOutputComponents
	LimitMaxTessControlTextureImageUnits
	LimitMaxTessControlUniformComponents
	LimitMaxTessControlTotalOutputComponents
	LimitMaxTessEvaluationInputComponents
	LimitMaxTessEvaluationOutputComponents
	LimitMaxTessEvaluationTextureImageUnits
	LimitMaxTessEvaluationUniformComponents
	LimitMaxTessPatchComponents
	LimitMaxPatchVertices
	LimitMaxTessGenLevel
	LimitMaxViewports
	LimitMaxVertexAtomicCounters
	LimitMaxTessControlAtomicCounters
	LimitMaxTessEvaluationAtomicCounters
	LimitMaxGeometryAtomicCounters
	LimitMaxFragmentAtomicCounters
	LimitMaxCombinedAtomicCounters
	LimitMaxAtomicCounterBindings
	LimitMaxVertexAtomicCounterBuffers
	LimitMaxTessControlAtomicCounterBuffers
	LimitMaxTessEvaluationAtomicCounterBuffers
	LimitMaxGeometryAtomicCounterBuffers
	LimitMaxFragmentAtomicCounterBuffers
	LimitMaxCombinedAtomicCounterBuffers
	LimitMaxAtomicCounterBufferSize
	LimitMaxTransformFeedbackBuffers
	LimitMaxTransformFeedbackInterleavedComponents
	LimitMaxCullDistances
	LimitMaxCombinedClipAndCullDistances
	LimitMaxSamples
	LimitMaxMeshOutputVerticesNV
	LimitMaxMeshOutputPrimitivesNV
	LimitMaxMeshWorkGroupSizeXNV
	LimitMaxMeshWorkGroupSizeYNV
	LimitMaxMeshWorkGroupSizeZNV
	LimitMaxTaskWorkGroupSizeXNV
	LimitMaxTaskWorkGroupSizeYNV
	LimitMaxTaskWorkGroupSizeZNV
	LimitMaxMeshViewCountNV
	LimitMaxMeshOutputVerticesEXT
	LimitMaxMeshOutputPrimitivesEXT
	LimitMaxMeshWorkGroupSizeXEXT
	LimitMaxMeshWorkGroupSizeYEXT
	LimitMaxMeshWorkGroupSizeZEXT
	LimitMaxTaskWorkGroupSizeXEXT
	LimitMaxTaskWorkGroupSizeYEXT
	LimitMaxTaskWorkGroupSizeZEXT
	LimitMaxMeshViewCountEXT
	LimitMaxDualSourceDrawBuffersEXT
)

var limitNames = [...]string{
	LimitMaxLights:                                 "MaxLights",
	LimitMaxClipPlanes:                             "MaxClipPlanes",
	LimitMaxTextureUnits:                           "MaxTextureUnits",
	LimitMaxTextureCoords:                          "MaxTextureCoords",
	LimitMaxVertexAttribs:                          "MaxVertexAttribs",
	LimitMaxVertexUniformComponents:                "MaxVertexUniformComponents",
	LimitMaxVaryingFloats:                          "MaxVaryingFloats",
	LimitMaxVertexTextureImageUnits:                "MaxVertexTextureImageUnits",
	LimitMaxCombinedTextureImageUnits:              "MaxCombinedTextureImageUnits",
	LimitMaxTextureImageUnits:                      "MaxTextureImageUnits",
	LimitMaxFragmentUniformComponents:              "MaxFragmentUniformComponents",
	LimitMaxDrawBuffers:                            "MaxDrawBuffers",
	LimitMaxVertexUniformVectors:                   "MaxVertexUniformVectors",
	LimitMaxVaryingVectors:                         "MaxVaryingVectors",
	LimitMaxFragmentUniformVectors:                 "MaxFragmentUniformVectors",
	LimitMaxVertexOutputVectors:                    "MaxVertexOutputVectors",
	LimitMaxFragmentInputVectors:                   "MaxFragmentInputVectors",
	LimitMinProgramTexelOffset:                     "MinProgramTexelOffset",
	LimitMaxProgramTexelOffset:                     "MaxProgramTexelOffset",
	LimitMaxClipDistances:                          "MaxClipDistances",
	LimitMaxComputeWorkGroupCountX:                 "MaxComputeWorkGroupCountX",
	LimitMaxComputeWorkGroupCountY:                 "MaxComputeWorkGroupCountY",
	LimitMaxComputeWorkGroupCountZ:                 "MaxComputeWorkGroupCountZ",
	LimitMaxComputeWorkGroupSizeX:                  "MaxComputeWorkGroupSizeX",
	LimitMaxComputeWorkGroupSizeY:                  "MaxComputeWorkGroupSizeY",
	LimitMaxComputeWorkGroupSizeZ:                  "MaxComputeWorkGroupSizeZ",
	LimitMaxComputeUniformComponents:               "MaxComputeUniformComponents",
	LimitMaxComputeTextureImageUnits:               "MaxComputeTextureImageUnits",
	LimitMaxComputeImageUniforms:                   "MaxComputeImageUniforms",
	LimitMaxComputeAtomicCounters:                  "MaxComputeAtomicCounters",
	LimitMaxComputeAtomicCounterBuffers:            "MaxComputeAtomicCounterBuffers",
	LimitMaxVaryingComponents:                      "MaxVaryingComponents",
	LimitMaxVertexOutputComponents:                 "MaxVertexOutputComponents",
	LimitMaxGeometryInputComponents:                "MaxGeometryInputComponents",
	LimitMaxGeometryOutputComponents:               "MaxGeometryOutputComponents",
	LimitMaxFragmentInputComponents:                "MaxFragmentInputComponents",
	LimitMaxImageUnits:                             "MaxImageUnits",
	LimitMaxCombinedImageUnitsAndFragmentOutputs:   "MaxCombinedImageUnitsAndFragmentOutputs",
	LimitMaxCombinedShaderOutputResources:          "MaxCombinedShaderOutputResources",
	LimitMaxImageSamples:                           "MaxImageSamples",
	LimitMaxVertexImageUniforms:                    "MaxVertexImageUniforms",
	LimitMaxTessControlImageUniforms:               "MaxTessControlImageUniforms",
	LimitMaxTessEvaluationImageUniforms:            "MaxTessEvaluationImageUniforms",
	LimitMaxGeometryImageUniforms:                  "MaxGeometryImageUniforms",
	LimitMaxFragmentImageUniforms:                  "MaxFragmentImageUniforms",
	LimitMaxCombinedImageUniforms:                  "MaxCombinedImageUniforms",
	LimitMaxGeometryTextureImageUnits:              "MaxGeometryTextureImageUnits",
	LimitMaxGeometryOutputVertices:                 "MaxGeometryOutputVertices",
	LimitMaxGeometryTotalOutputComponents:          "MaxGeometryTotalOutputComponents",
	LimitMaxGeometryUniformComponents:              "MaxGeometryUniformComponents",
	LimitMaxGeometryVaryingComponents:              "MaxGeometryVaryingComponents",
	LimitMaxTessControlInputComponents:             "MaxTessControlInputComponents",
	LimitMaxTessControlOutputComponents:            "MaxTessControlOutputComponents",
	LimitMaxTessControlTextureImageUnits:           "MaxTessControlTextureImageUnits",
	LimitMaxTessControlUniformComponents:           "MaxTessControlUniformComponents",
	LimitMaxTessControlTotalOutputComponents:       "MaxTessControlTotalOutputComponents",
	LimitMaxTessEvaluationInputComponents:          "MaxTessEvaluationInputComponents",
	LimitMaxTessEvaluationOutputComponents:         "MaxTessEvaluationOutputComponents",
	LimitMaxTessEvaluationTextureImageUnits:        "MaxTessEvaluationTextureImageUnits",
	LimitMaxTessEvaluationUniformComponents:        "MaxTessEvaluationUniformComponents",
	LimitMaxTessPatchComponents:                    "MaxTessPatchComponents",
	LimitMaxPatchVertices:                          "MaxPatchVertices",
	LimitMaxTessGenLevel:                           "MaxTessGenLevel",
	LimitMaxViewports:                              "MaxViewports",
	LimitMaxVertexAtomicCounters:                   "MaxVertexAtomicCounters",
	LimitMaxTessControlAtomicCounters:              "MaxTessControlAtomicCounters",
	LimitMaxTessEvaluationAtomicCounters:           "MaxTessEvaluationAtomicCounters",
	LimitMaxGeometryAtomicCounters:                 "MaxGeometryAtomicCounters",
	LimitMaxFragmentAtomicCounters:                 "MaxFragmentAtomicCounters",
	LimitMaxCombinedAtomicCounters:                 "MaxCombinedAtomicCounters",
	LimitMaxAtomicCounterBindings:                  "MaxAtomicCounterBindings",
	LimitMaxVertexAtomicCounterBuffers:             "MaxVertexAtomicCounterBuffers",
	LimitMaxTessControlAtomicCounterBuffers:        "MaxTessControlAtomicCounterBuffers",
	LimitMaxTessEvaluationAtomicCounterBuffers:     "MaxTessEvaluationAtomicCounterBuffers",
	LimitMaxGeometryAtomicCounterBuffers:           "MaxGeometryAtomicCounterBuffers",
	LimitMaxFragmentAtomicCounterBuffers:           "MaxFragmentAtomicCounterBuffers",
	LimitMaxCombinedAtomicCounterBuffers:           "MaxCombinedAtomicCounterBuffers",
	LimitMaxAtomicCounterBufferSize:                "MaxAtomicCounterBufferSize",
	LimitMaxTransformFeedbackBuffers:               "MaxTransformFeedbackBuffers",
	LimitMaxTransformFeedbackInterleavedComponents: "MaxTransformFeedbackInterleavedComponents",
	LimitMaxCullDistances:                          "MaxCullDistances",
	LimitMaxCombinedClipAndCullDistances:           "MaxCombinedClipAndCullDistances",
	LimitMaxSamples:                                "MaxSamples",
	LimitMaxMeshOutputVerticesNV:                   "MaxMeshOutputVerticesNV",
	LimitMaxMeshOutputPrimitivesNV:                 "MaxMeshOutputPrimitivesNV",
	LimitMaxMeshWorkGroupSizeXNV:                   "MaxMeshWorkGroupSizeX_NV",
	LimitMaxMeshWorkGroupSizeYNV:                   "MaxMeshWorkGroupSizeY_NV",
	LimitMaxMeshWorkGroupSizeZNV:                   "MaxMeshWorkGroupSizeZ_NV",
	LimitMaxTaskWorkGroupSizeXNV:                   "MaxTaskWorkGroupSizeX_NV",
	LimitMaxTaskWorkGroupSizeYNV:                   "MaxTaskWorkGroupSizeY_NV",
	LimitMaxTaskWorkGroupSizeZNV:                   "MaxTaskWorkGroupSizeZ_NV",
	LimitMaxMeshViewCountNV:                        "MaxMeshViewCountNV",
	LimitMaxMeshOutputVerticesEXT:                  "MaxMeshOutputVerticesEXT",
	LimitMaxMeshOutputPrimitivesEXT:                "MaxMeshOutputPrimitivesEXT",
	LimitMaxMeshWorkGroupSizeXEXT:                  "MaxMeshWorkGroupSizeX_EXT",
	LimitMaxMeshWorkGroupSizeYEXT:                  "MaxMeshWorkGroupSizeY_EXT",
	LimitMaxMeshWorkGroupSizeZEXT:                  "MaxMeshWorkGroupSizeZ_EXT",
	LimitMaxTaskWorkGroupSizeXEXT:                  "MaxTaskWorkGroupSizeX_EXT",
	LimitMaxTaskWorkGroupSizeYEXT:                  "MaxTaskWorkGroupSizeY_EXT",
	LimitMaxTaskWorkGroupSizeZEXT:                  "MaxTaskWorkGroupSizeZ_EXT",
	LimitMaxMeshViewCountEXT:                       "MaxMeshViewCountEXT",
	LimitMaxDualSourceDrawBuffersEXT:               "MaxDualSourceDrawBuffersEXT",
}

func (l Limit) String() string {
	if l >= 0 && int(l) < len(limitNames) {
		return limitNames[l]
	}
	return fmt.Sprintf("Limit(%d)", int(l))
}

// ParseLimit takes a glslang resource name such as MaxLights or
// MinProgramTexelOffset. Matching ignores case.
func ParseLimit(s string) (Limit, error) {
	s = strings.TrimSpace(s)
	for l, name := range limitNames {
		if strings.EqualFold(name, s) {
			return Limit(l), nil
		}
	}
	return 0, configError("limit", s)
}

package shaderc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// OptionsDocument is the file form of CompileOptions. Enums are written the
// way glslc spells them, e.g.
//
//	language = "hlsl"
//	optimization = "performance"
//	target-env = "vulkan1.3"
//	target-spirv = "1.6"
//	forced-version-profile = "450core"
//	include-paths = ["shaders/include"]
//
//	[macros]
//	USE_FOG = "1"
//	DEBUG = ""
//
//	[limits]
//	MaxDrawBuffers = 8
//
//	[binding-base-for-stage.fragment]
//	texture = 4
type OptionsDocument struct {
	Macros               map[string]string `toml:"macros,omitempty" yaml:"macros,omitempty"`
	Language             string            `toml:"language,omitempty" yaml:"language,omitempty"`
	DebugInfo            bool              `toml:"debug-info,omitempty" yaml:"debug-info,omitempty"`
	Optimization         *string           `toml:"optimization,omitempty" yaml:"optimization,omitempty"`
	ForcedVersionProfile string            `toml:"forced-version-profile,omitempty" yaml:"forced-version-profile,omitempty"`
	IncludePaths         []string          `toml:"include-paths,omitempty" yaml:"include-paths,omitempty"`
	SuppressWarnings     bool              `toml:"suppress-warnings,omitempty" yaml:"suppress-warnings,omitempty"`
	TargetEnv            string            `toml:"target-env,omitempty" yaml:"target-env,omitempty"`
	TargetSpirv          string            `toml:"target-spirv,omitempty" yaml:"target-spirv,omitempty"`
	WarningsAsErrors     bool              `toml:"warnings-as-errors,omitempty" yaml:"warnings-as-errors,omitempty"`
	Limits               map[string]int    `toml:"limits,omitempty" yaml:"limits,omitempty"`

	AutoBindUniforms         bool `toml:"auto-bind-uniforms,omitempty" yaml:"auto-bind-uniforms,omitempty"`
	AutoCombinedImageSampler bool `toml:"auto-combined-image-sampler,omitempty" yaml:"auto-combined-image-sampler,omitempty"`
	HLSLIOMapping            bool `toml:"hlsl-io-mapping,omitempty" yaml:"hlsl-io-mapping,omitempty"`
	HLSLOffsets              bool `toml:"hlsl-offsets,omitempty" yaml:"hlsl-offsets,omitempty"`

	BindingBase         map[string]uint32            `toml:"binding-base,omitempty" yaml:"binding-base,omitempty"`
	BindingBaseForStage map[string]map[string]uint32 `toml:"binding-base-for-stage,omitempty" yaml:"binding-base-for-stage,omitempty"`

	PreserveBindings bool `toml:"preserve-bindings,omitempty" yaml:"preserve-bindings,omitempty"`
	AutoMapLocations bool `toml:"auto-map-locations,omitempty" yaml:"auto-map-locations,omitempty"`

	HLSLRegisterSetAndBindingForStage map[string][]RegisterDocument `toml:"hlsl-register-set-and-binding-for-stage,omitempty" yaml:"hlsl-register-set-and-binding-for-stage,omitempty"`
	HLSLRegisterSetAndBinding         []RegisterDocument            `toml:"hlsl-register-set-and-binding,omitempty" yaml:"hlsl-register-set-and-binding,omitempty"`

	HLSLFunctionality1 bool `toml:"hlsl-functionality1,omitempty" yaml:"hlsl-functionality1,omitempty"`
	HLSL16BitTypes     bool `toml:"hlsl-16bit-types,omitempty" yaml:"hlsl-16bit-types,omitempty"`
	VulkanRulesRelaxed bool `toml:"vulkan-rules-relaxed,omitempty" yaml:"vulkan-rules-relaxed,omitempty"`
	InvertY            bool `toml:"invert-y,omitempty" yaml:"invert-y,omitempty"`
	NaNClamp           bool `toml:"nan-clamp,omitempty" yaml:"nan-clamp,omitempty"`
}

// RegisterDocument is the file form of RegisterBinding.
type RegisterDocument struct {
	Register string `toml:"register" yaml:"register"`
	Set      string `toml:"set" yaml:"set"`
	Binding  string `toml:"binding" yaml:"binding"`
}

// LoadOptionsTOML decodes a TOML options document. fsys backs include-paths
// and may be nil when the document has none.
func LoadOptionsTOML(data []byte, fsys fs.FS) (*CompileOptions, error) {
	var doc OptionsDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, wrapConfig("decode toml options", err)
	}
	return doc.CompileOptions(fsys)
}

// LoadOptionsYAML decodes a YAML options document. fsys backs include-paths
// and may be nil when the document has none.
func LoadOptionsYAML(data []byte, fsys fs.FS) (*CompileOptions, error) {
	var doc OptionsDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, wrapConfig("decode yaml options", err)
	}
	return doc.CompileOptions(fsys)
}

// CompileOptions converts the document. Include paths become an FSIncluder
// over fsys.
func (d *OptionsDocument) CompileOptions(fsys fs.FS) (*CompileOptions, error) {
	o := NewCompileOptions()

	for name, value := range d.Macros {
		o.AddMacroDefinition(name, value)
	}

	lang, err := ParseSourceLanguage(d.Language)
	if err != nil {
		return nil, err
	}
	o.SourceLanguage = lang
	o.GenerateDebugInfo = d.DebugInfo

	if d.Optimization != nil {
		level, err := ParseOptimizationLevel(*d.Optimization)
		if err != nil {
			return nil, err
		}
		o.SetOptimizationLevel(level)
	}

	if d.ForcedVersionProfile != "" {
		vp, err := ParseVersionProfile(d.ForcedVersionProfile)
		if err != nil {
			return nil, err
		}
		o.ForcedVersionProfile = &vp
	}

	if len(d.IncludePaths) > 0 {
		if fsys == nil {
			return nil, wrapConfig("include-paths needs a file system", nil)
		}
		o.Includer = CallbacksFor(&FSIncluder{FS: fsys, SearchPaths: slices.Clone(d.IncludePaths)})
	}

	o.SuppressWarnings = d.SuppressWarnings

	if d.TargetEnv != "" {
		env, err := ParseTargetEnvironment(d.TargetEnv)
		if err != nil {
			return nil, err
		}
		o.TargetEnv = &env
	}

	if d.TargetSpirv != "" {
		ver, err := ParseSpirvVersion(d.TargetSpirv)
		if err != nil {
			return nil, err
		}
		o.SetTargetSpirv(ver)
	}

	o.WarningsAsErrors = d.WarningsAsErrors

	for name, value := range d.Limits {
		limit, err := ParseLimit(name)
		if err != nil {
			return nil, err
		}
		o.SetLimit(limit, value)
	}

	o.AutoBindUniforms = d.AutoBindUniforms
	o.AutoCombinedImageSampler = d.AutoCombinedImageSampler
	o.HLSLIOMapping = d.HLSLIOMapping
	o.HLSLOffsets = d.HLSLOffsets

	for name, base := range d.BindingBase {
		kind, err := ParseUniformKind(name)
		if err != nil {
			return nil, err
		}
		o.SetBindingBase(kind, base)
	}

	for stageName, bases := range d.BindingBaseForStage {
		stage, err := ParseShaderKind(stageName)
		if err != nil {
			return nil, err
		}
		for name, base := range bases {
			kind, err := ParseUniformKind(name)
			if err != nil {
				return nil, err
			}
			o.SetBindingBaseForStage(stage, kind, base)
		}
	}

	o.PreserveBindings = d.PreserveBindings
	o.AutoMapLocations = d.AutoMapLocations

	// Sorted so a stage listed under two spellings (vert, vertex) merges in
	// a fixed order.
	for _, stageName := range slices.Sorted(maps.Keys(d.HLSLRegisterSetAndBindingForStage)) {
		stage, err := ParseShaderKind(stageName)
		if err != nil {
			return nil, err
		}
		for _, rb := range d.HLSLRegisterSetAndBindingForStage[stageName] {
			if err := rb.validate(); err != nil {
				return nil, err
			}
			o.AddHLSLRegisterSetAndBindingForStage(stage, rb.Register, rb.Set, rb.Binding)
		}
	}

	for _, rb := range d.HLSLRegisterSetAndBinding {
		if err := rb.validate(); err != nil {
			return nil, err
		}
		o.AddHLSLRegisterSetAndBinding(rb.Register, rb.Set, rb.Binding)
	}

	o.HLSLFunctionality1 = d.HLSLFunctionality1
	o.HLSL16BitTypes = d.HLSL16BitTypes
	o.VulkanRulesRelaxed = d.VulkanRulesRelaxed
	o.InvertY = d.InvertY
	o.NaNClamp = d.NaNClamp

	return o, nil
}

func (r RegisterDocument) validate() error {
	if r.Register == "" || r.Set == "" || r.Binding == "" {
		return wrapConfig(fmt.Sprintf("register binding %+v needs register, set and binding", r), nil)
	}
	return nil
}

package shaderc

import (
	"github.com/jinzhu/copier"
)

// RegisterBinding maps an HLSL register to a descriptor set and binding.
// All three are passed to the library as decimal strings, e.g. "b1", "0", "3".
type RegisterBinding struct {
	Register string
	Set      string
	Binding  string
}

// CompileOptions is a declarative set of compile settings. It has no native
// counterpart: every Compile call materializes a fresh native options object
// from it and releases that object before returning. A CompileOptions is
// never modified by the package and may be shared between goroutines as long
// as the caller does not mutate it concurrently.
//
// The zero value compiles GLSL with library defaults.
type CompileOptions struct {
	// Macros are predefined as with -DNAME=VALUE. An empty value defines the
	// macro without a value (-DNAME).
	Macros map[string]string

	SourceLanguage SourceLanguage

	// GenerateDebugInfo is one-way: the library has no call to turn it off.
	GenerateDebugInfo bool

	OptimizationLevel *OptimizationLevel

	// ForcedVersionProfile overrides the #version line in the source.
	ForcedVersionProfile *VersionProfile

	// Includer resolves #include directives. It is shared, not copied, by
	// Clone.
	Includer *IncludeCallbacks `copier:"-"`

	// SuppressWarnings overrides WarningsAsErrors.
	SuppressWarnings bool

	TargetEnv *TargetEnvironment

	TargetSpirv *SpirvVersion

	WarningsAsErrors bool

	Limits map[Limit]int

	AutoBindUniforms         bool
	AutoCombinedImageSampler bool

	HLSLIOMapping bool
	HLSLOffsets   bool

	// BindingBase is the lowest binding assigned automatically per uniform
	// kind. For HLSL the register number is added to it.
	BindingBase map[UniformKind]uint32
	// BindingBaseForStage is BindingBase for a single stage.
	BindingBaseForStage map[ShaderKind]map[UniformKind]uint32

	PreserveBindings bool
	AutoMapLocations bool

	HLSLRegisterSetAndBindingForStage map[ShaderKind][]RegisterBinding
	HLSLRegisterSetAndBinding         []RegisterBinding

	HLSLFunctionality1 bool
	HLSL16BitTypes     bool

	VulkanRulesRelaxed bool
	InvertY            bool
	NaNClamp           bool
}

// NewCompileOptions returns empty options.
func NewCompileOptions() *CompileOptions {
	return &CompileOptions{}
}

// Clone returns a deep copy. The include callbacks are shared with o.
func (o *CompileOptions) Clone() *CompileOptions {
	if o == nil {
		return nil
	}
	c := &CompileOptions{}
	if err := copier.CopyWithOption(c, o, copier.Option{DeepCopy: true, IgnoreEmpty: true}); err != nil {
		// Source and destination share a type.
		panic(err)
	}
	c.Includer = o.Includer
	return c
}

// AddMacroDefinition adds or replaces a macro. Pass an empty value for a
// valueless macro.
func (o *CompileOptions) AddMacroDefinition(name, value string) {
	if o.Macros == nil {
		o.Macros = make(map[string]string)
	}
	o.Macros[name] = value
}

func (o *CompileOptions) SetOptimizationLevel(level OptimizationLevel) {
	o.OptimizationLevel = &level
}

func (o *CompileOptions) SetForcedVersionProfile(version int, profile Profile) {
	o.ForcedVersionProfile = &VersionProfile{Version: version, Profile: profile}
}

func (o *CompileOptions) SetTargetEnv(env TargetEnv, version EnvVersion) {
	o.TargetEnv = &TargetEnvironment{Env: env, Version: version}
}

func (o *CompileOptions) SetTargetSpirv(version SpirvVersion) {
	o.TargetSpirv = &version
}

func (o *CompileOptions) SetLimit(limit Limit, value int) {
	if o.Limits == nil {
		o.Limits = make(map[Limit]int)
	}
	o.Limits[limit] = value
}

func (o *CompileOptions) SetBindingBase(kind UniformKind, base uint32) {
	if o.BindingBase == nil {
		o.BindingBase = make(map[UniformKind]uint32)
	}
	o.BindingBase[kind] = base
}

func (o *CompileOptions) SetBindingBaseForStage(stage ShaderKind, kind UniformKind, base uint32) {
	if o.BindingBaseForStage == nil {
		o.BindingBaseForStage = make(map[ShaderKind]map[UniformKind]uint32)
	}
	if o.BindingBaseForStage[stage] == nil {
		o.BindingBaseForStage[stage] = make(map[UniformKind]uint32)
	}
	o.BindingBaseForStage[stage][kind] = base
}

func (o *CompileOptions) AddHLSLRegisterSetAndBinding(reg, set, binding string) {
	o.HLSLRegisterSetAndBinding = append(o.HLSLRegisterSetAndBinding, RegisterBinding{reg, set, binding})
}

func (o *CompileOptions) AddHLSLRegisterSetAndBindingForStage(stage ShaderKind, reg, set, binding string) {
	if o.HLSLRegisterSetAndBindingForStage == nil {
		o.HLSLRegisterSetAndBindingForStage = make(map[ShaderKind][]RegisterBinding)
	}
	o.HLSLRegisterSetAndBindingForStage[stage] = append(o.HLSLRegisterSetAndBindingForStage[stage], RegisterBinding{reg, set, binding})
}

package shaderc

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlOptions = `
language = "hlsl"
debug-info = true
optimization = "size"
forced-version-profile = "450core"
target-env = "vulkan1.2"
target-spirv = "spv1.5"
warnings-as-errors = true
auto-bind-uniforms = true
hlsl-io-mapping = true
invert-y = true
include-paths = ["include"]

[macros]
USE_FOG = "1"
DEBUG = ""

[limits]
MaxDrawBuffers = 8

[binding-base]
ubo = 2

[binding-base-for-stage.frag]
texture = 4

[[hlsl-register-set-and-binding]]
register = "b0"
set = "0"
binding = "1"

[[hlsl-register-set-and-binding-for-stage.vert]]
register = "t1"
set = "1"
binding = "2"
`

const yamlOptions = `
language: hlsl
debug-info: true
optimization: size
forced-version-profile: 450core
target-env: vulkan1.2
target-spirv: spv1.5
warnings-as-errors: true
auto-bind-uniforms: true
hlsl-io-mapping: true
invert-y: true
include-paths: [include]
macros:
  USE_FOG: "1"
  DEBUG: ""
limits:
  MaxDrawBuffers: 8
binding-base:
  ubo: 2
binding-base-for-stage:
  frag:
    texture: 4
hlsl-register-set-and-binding:
  - {register: b0, set: "0", binding: "1"}
hlsl-register-set-and-binding-for-stage:
  vert:
    - {register: t1, set: "1", binding: "2"}
`

func assertLoadedOptions(t *testing.T, o *CompileOptions) {
	t.Helper()

	assert.Equal(t, map[string]string{"USE_FOG": "1", "DEBUG": ""}, o.Macros)
	assert.Equal(t, HLSL, o.SourceLanguage)
	assert.True(t, o.GenerateDebugInfo)
	require.NotNil(t, o.OptimizationLevel)
	assert.Equal(t, OptimizationSize, *o.OptimizationLevel)
	assert.Equal(t, &VersionProfile{Version: 450, Profile: ProfileCore}, o.ForcedVersionProfile)
	assert.Equal(t, &TargetEnvironment{Env: TargetEnvVulkan, Version: EnvVersionVulkan1_2}, o.TargetEnv)
	require.NotNil(t, o.TargetSpirv)
	assert.Equal(t, SpirvVersion1_5, *o.TargetSpirv)
	assert.True(t, o.WarningsAsErrors)
	assert.False(t, o.SuppressWarnings)
	assert.Equal(t, map[Limit]int{LimitMaxDrawBuffers: 8}, o.Limits)
	assert.True(t, o.AutoBindUniforms)
	assert.True(t, o.HLSLIOMapping)
	assert.True(t, o.InvertY)
	assert.Equal(t, map[UniformKind]uint32{UniformBuffer: 2}, o.BindingBase)
	assert.Equal(t, map[ShaderKind]map[UniformKind]uint32{FragmentShader: {UniformTexture: 4}}, o.BindingBaseForStage)
	assert.Equal(t, []RegisterBinding{{"b0", "0", "1"}}, o.HLSLRegisterSetAndBinding)
	assert.Equal(t, map[ShaderKind][]RegisterBinding{VertexShader: {{"t1", "1", "2"}}}, o.HLSLRegisterSetAndBindingForStage)

	require.NotNil(t, o.Includer)
	res := o.Includer.Resolve(nil, "common.hlsl", IncludeStandard, "main.hlsl", 1)
	assert.Equal(t, "include/common.hlsl", res.SourceName)
}

var configFS = fstest.MapFS{
	"include/common.hlsl": {Data: []byte("float4 tint;")},
}

func TestLoadOptionsTOML(t *testing.T) {
	o, err := LoadOptionsTOML([]byte(tomlOptions), configFS)
	require.NoError(t, err)
	assertLoadedOptions(t, o)
}

func TestLoadOptionsYAML(t *testing.T) {
	o, err := LoadOptionsYAML([]byte(yamlOptions), configFS)
	require.NoError(t, err)
	assertLoadedOptions(t, o)
}

func TestLoadOptionsEmpty(t *testing.T) {
	o, err := LoadOptionsTOML(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, NewCompileOptions(), o)

	o, err = LoadOptionsYAML(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, NewCompileOptions(), o)
}

func TestLoadOptionsErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":      `optimisation = "size"`,
		"bad language":     `language = "wgsl"`,
		"bad target env":   `target-env = "metal"`,
		"bad limit":        "[limits]\nMaxEverything = 1",
		"bad stage":        "[binding-base-for-stage.pixel]\nubo = 1",
		"bad uniform kind": "[binding-base]\nvbo = 1",
		"short register":   "[[hlsl-register-set-and-binding]]\nregister = \"b0\"",
		"include no fs":    `include-paths = ["include"]`,
		"syntax":           `language = `,
	}
	for name, doc := range tests {
		_, err := LoadOptionsTOML([]byte(doc), nil)
		assert.ErrorIs(t, err, ErrConfig, name)
	}

	_, err := LoadOptionsYAML([]byte("optimisation: size\n"), nil)
	assert.ErrorIs(t, err, ErrConfig)
}

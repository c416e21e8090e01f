package shaderc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/gogpu/naga/spirv"
)

// EnvVersion is the version of a target environment (shaderc_env_version).
// Vulkan versions use Vulkan's API version packing; OpenGL versions are the
// number from #version.
type EnvVersion uint32

const (
	EnvVersionVulkan1_0 EnvVersion = 1 << 22
	EnvVersionVulkan1_1 EnvVersion = 1<<22 | 1<<12
	EnvVersionVulkan1_2 EnvVersion = 1<<22 | 2<<12
	EnvVersionVulkan1_3 EnvVersion = 1<<22 | 3<<12
	EnvVersionVulkan1_4 EnvVersion = 1<<22 | 4<<12

	EnvVersionOpenGL4_5 EnvVersion = 450

	// Deprecated: WebGPU never defined versions.
	EnvVersionWebGPU EnvVersion = 451
)

// MakeVulkanVersion packs a version the way VK_MAKE_API_VERSION does:
// variant in bits 29-31, major in 22-28, minor in 12-21, patch in 0-11.
func MakeVulkanVersion(variant, major, minor, patch uint32) EnvVersion {
	return EnvVersion(variant<<29 | major<<22 | minor<<12 | patch)
}

func (v EnvVersion) Variant() uint32 { return uint32(v) >> 29 }
func (v EnvVersion) Major() uint32   { return uint32(v) >> 22 & 0x7f }
func (v EnvVersion) Minor() uint32   { return uint32(v) >> 12 & 0x3ff }
func (v EnvVersion) Patch() uint32   { return uint32(v) & 0xfff }

func (v EnvVersion) String() string {
	switch {
	case v == 0:
		return "default"
	case v == EnvVersionOpenGL4_5:
		return "opengl4.5"
	case v == EnvVersionWebGPU:
		return "webgpu"
	case v.Major() > 0:
		return fmt.Sprintf("vulkan%d.%d", v.Major(), v.Minor())
	default:
		return fmt.Sprintf("EnvVersion(%d)", uint32(v))
	}
}

// TargetEnvironment pairs an environment with its version. A zero Version
// means Vulkan 1.0 for Vulkan and OpenGL 4.5 for OpenGL.
type TargetEnvironment struct {
	Env     TargetEnv
	Version EnvVersion
}

func (t TargetEnvironment) String() string {
	if t.Version == 0 {
		return t.Env.String()
	}
	if t.Env == TargetEnvVulkan {
		return t.Version.String()
	}
	if t.Version == EnvVersionOpenGL4_5 {
		return t.Env.String() + "4.5"
	}
	return fmt.Sprintf("%s/%d", t.Env, uint32(t.Version))
}

// parseMajorMinor accepts exactly MAJOR.MINOR. semver alone would also take
// "v1.2", "1.2.7" and "1.2-rc1", which glslc rejects.
func parseMajorMinor(s string) (*semver.Version, error) {
	if s == "" || s[0] < '0' || s[0] > '9' || strings.Count(s, ".") != 1 {
		return nil, fmt.Errorf("%q is not MAJOR.MINOR", s)
	}
	ver, err := semver.NewVersion(s)
	if err != nil {
		return nil, err
	}
	if ver.Prerelease() != "" || ver.Metadata() != "" {
		return nil, fmt.Errorf("%q is not MAJOR.MINOR", s)
	}
	return ver, nil
}

// ParseTargetEnvironment parses glslc --target-env values: vulkan,
// vulkan1.0 through vulkan1.4, opengl, opengl4.5 and opengl_compat.
func ParseTargetEnvironment(s string) (TargetEnvironment, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	var env TargetEnv
	var rest string
	switch {
	case strings.HasPrefix(s, "vulkan"):
		env, rest = TargetEnvVulkan, strings.TrimPrefix(s, "vulkan")
	case strings.HasPrefix(s, "opengl_compat"):
		env, rest = TargetEnvOpenGLCompat, strings.TrimPrefix(s, "opengl_compat")
	case strings.HasPrefix(s, "opengl"):
		env, rest = TargetEnvOpenGL, strings.TrimPrefix(s, "opengl")
	default:
		return TargetEnvironment{}, configError("target environment", s)
	}
	if rest == "" {
		return TargetEnvironment{Env: env}, nil
	}

	ver, err := parseMajorMinor(rest)
	if err != nil {
		return TargetEnvironment{}, wrapConfig(fmt.Sprintf("target environment %q", s), err)
	}

	if env == TargetEnvVulkan {
		if ver.Major() != 1 || ver.Minor() > 4 {
			return TargetEnvironment{}, configError("vulkan version", rest)
		}
		return TargetEnvironment{Env: env, Version: MakeVulkanVersion(0, 1, uint32(ver.Minor()), 0)}, nil
	}

	if ver.Major() != 4 || ver.Minor() != 5 {
		return TargetEnvironment{}, configError("opengl version", rest)
	}
	return TargetEnvironment{Env: env, Version: EnvVersionOpenGL4_5}, nil
}

// SpirvVersion is shaderc_spirv_version: the value of word 1 of a SPIR-V
// binary, major version in bits 16-23 and minor in bits 8-15.
type SpirvVersion uint32

const (
	SpirvVersion1_0 SpirvVersion = 0x010000
	SpirvVersion1_1 SpirvVersion = 0x010100
	SpirvVersion1_2 SpirvVersion = 0x010200
	SpirvVersion1_3 SpirvVersion = 0x010300
	SpirvVersion1_4 SpirvVersion = 0x010400
	SpirvVersion1_5 SpirvVersion = 0x010500
	SpirvVersion1_6 SpirvVersion = 0x010600
)

func MakeSpirvVersion(major, minor uint8) SpirvVersion {
	return SpirvVersion(uint32(major)<<16 | uint32(minor)<<8)
}

func (v SpirvVersion) Major() uint8 { return uint8(v >> 16) }
func (v SpirvVersion) Minor() uint8 { return uint8(v >> 8) }

func (v SpirvVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Naga converts to the naga SPIR-V backend's version type.
func (v SpirvVersion) Naga() spirv.Version {
	return spirv.Version{Major: v.Major(), Minor: v.Minor()}
}

func SpirvVersionFromNaga(v spirv.Version) SpirvVersion {
	return MakeSpirvVersion(v.Major, v.Minor)
}

// ParseSpirvVersion accepts "1.5", "spv1.5" and "spirv1.5". Only versions the
// library knows (1.0 to 1.6) are accepted.
func ParseSpirvVersion(s string) (SpirvVersion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "spirv"), "spv")

	ver, err := parseMajorMinor(s)
	if err != nil {
		return 0, wrapConfig(fmt.Sprintf("spir-v version %q", s), err)
	}
	if ver.Major() != 1 || ver.Minor() > 6 {
		return 0, configError("spir-v version", s)
	}
	return MakeSpirvVersion(1, uint8(ver.Minor())), nil
}

// VersionProfile is a forced GLSL #version and profile pair.
type VersionProfile struct {
	Version int
	Profile Profile
}

func (vp VersionProfile) String() string {
	if vp.Profile == ProfileNone {
		return strconv.Itoa(vp.Version)
	}
	return strconv.Itoa(vp.Version) + vp.Profile.String()
}

// ParseVersionProfile parses strings like "450core", "310es" or "110" with
// the same rules as shaderc_parse_version_profile, without calling into the
// library.
func ParseVersionProfile(s string) (VersionProfile, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return VersionProfile{}, configError("version profile", s)
	}
	version, err := strconv.Atoi(s[:i])
	if err != nil {
		return VersionProfile{}, wrapConfig(fmt.Sprintf("version profile %q", s), err)
	}

	vp := VersionProfile{Version: version}
	switch s[i:] {
	case "":
		vp.Profile = ProfileNone
	case "core":
		vp.Profile = ProfileCore
	case "compatibility":
		vp.Profile = ProfileCompatibility
	case "es":
		vp.Profile = ProfileES
	default:
		return VersionProfile{}, configError("version profile", s)
	}
	return vp, nil
}

package native

/*
#include <shaderc/shaderc.h>
*/
import "C"

// HeaderValues maps shaderc.h enumerator names to the values the linked
// header gives them.
var HeaderValues = map[string]int{
	// Shader kinds
	"shaderc_vertex_shader":                       int(C.shaderc_vertex_shader),
	"shaderc_fragment_shader":                     int(C.shaderc_fragment_shader),
	"shaderc_compute_shader":                      int(C.shaderc_compute_shader),
	"shaderc_geometry_shader":                     int(C.shaderc_geometry_shader),
	"shaderc_tess_control_shader":                 int(C.shaderc_tess_control_shader),
	"shaderc_tess_evaluation_shader":              int(C.shaderc_tess_evaluation_shader),
	"shaderc_glsl_infer_from_source":              int(C.shaderc_glsl_infer_from_source),
	"shaderc_glsl_default_vertex_shader":          int(C.shaderc_glsl_default_vertex_shader),
	"shaderc_glsl_default_fragment_shader":        int(C.shaderc_glsl_default_fragment_shader),
	"shaderc_glsl_default_compute_shader":         int(C.shaderc_glsl_default_compute_shader),
	"shaderc_glsl_default_geometry_shader":        int(C.shaderc_glsl_default_geometry_shader),
	"shaderc_glsl_default_tess_control_shader":    int(C.shaderc_glsl_default_tess_control_shader),
	"shaderc_glsl_default_tess_evaluation_shader": int(C.shaderc_glsl_default_tess_evaluation_shader),
	"shaderc_spirv_assembly":                      int(C.shaderc_spirv_assembly),
	"shaderc_raygen_shader":                       int(C.shaderc_raygen_shader),
	"shaderc_anyhit_shader":                       int(C.shaderc_anyhit_shader),
	"shaderc_closesthit_shader":                   int(C.shaderc_closesthit_shader),
	"shaderc_miss_shader":                         int(C.shaderc_miss_shader),
	"shaderc_intersection_shader":                 int(C.shaderc_intersection_shader),
	"shaderc_callable_shader":                     int(C.shaderc_callable_shader),
	"shaderc_glsl_default_raygen_shader":          int(C.shaderc_glsl_default_raygen_shader),
	"shaderc_glsl_default_anyhit_shader":          int(C.shaderc_glsl_default_anyhit_shader),
	"shaderc_glsl_default_closesthit_shader":      int(C.shaderc_glsl_default_closesthit_shader),
	"shaderc_glsl_default_miss_shader":            int(C.shaderc_glsl_default_miss_shader),
	"shaderc_glsl_default_intersection_shader":    int(C.shaderc_glsl_default_intersection_shader),
	"shaderc_glsl_default_callable_shader":        int(C.shaderc_glsl_default_callable_shader),
	"shaderc_task_shader":                         int(C.shaderc_task_shader),
	"shaderc_mesh_shader":                         int(C.shaderc_mesh_shader),
	"shaderc_glsl_default_task_shader":            int(C.shaderc_glsl_default_task_shader),
	"shaderc_glsl_default_mesh_shader":            int(C.shaderc_glsl_default_mesh_shader),

	// Languages
	"shaderc_source_language_glsl": int(C.shaderc_source_language_glsl),
	"shaderc_source_language_hlsl": int(C.shaderc_source_language_hlsl),

	// Environments
	"shaderc_target_env_vulkan":        int(C.shaderc_target_env_vulkan),
	"shaderc_target_env_opengl":        int(C.shaderc_target_env_opengl),
	"shaderc_target_env_opengl_compat": int(C.shaderc_target_env_opengl_compat),
	"shaderc_target_env_default":       int(C.shaderc_target_env_default),

	// Environment versions
	"shaderc_env_version_vulkan_1_0": int(C.shaderc_env_version_vulkan_1_0),
	"shaderc_env_version_vulkan_1_1": int(C.shaderc_env_version_vulkan_1_1),
	"shaderc_env_version_vulkan_1_2": int(C.shaderc_env_version_vulkan_1_2),
	"shaderc_env_version_vulkan_1_3": int(C.shaderc_env_version_vulkan_1_3),
	"shaderc_env_version_opengl_4_5": int(C.shaderc_env_version_opengl_4_5),

	// SPIR-V versions
	"shaderc_spirv_version_1_0": int(C.shaderc_spirv_version_1_0),
	"shaderc_spirv_version_1_1": int(C.shaderc_spirv_version_1_1),
	"shaderc_spirv_version_1_2": int(C.shaderc_spirv_version_1_2),
	"shaderc_spirv_version_1_3": int(C.shaderc_spirv_version_1_3),
	"shaderc_spirv_version_1_4": int(C.shaderc_spirv_version_1_4),
	"shaderc_spirv_version_1_5": int(C.shaderc_spirv_version_1_5),
	"shaderc_spirv_version_1_6": int(C.shaderc_spirv_version_1_6),

	// Statuses
	"shaderc_compilation_status_success":              int(C.shaderc_compilation_status_success),
	"shaderc_compilation_status_invalid_stage":        int(C.shaderc_compilation_status_invalid_stage),
	"shaderc_compilation_status_compilation_error":    int(C.shaderc_compilation_status_compilation_error),
	"shaderc_compilation_status_internal_error":       int(C.shaderc_compilation_status_internal_error),
	"shaderc_compilation_status_null_result_object":   int(C.shaderc_compilation_status_null_result_object),
	"shaderc_compilation_status_invalid_assembly":     int(C.shaderc_compilation_status_invalid_assembly),
	"shaderc_compilation_status_validation_error":     int(C.shaderc_compilation_status_validation_error),
	"shaderc_compilation_status_transformation_error": int(C.shaderc_compilation_status_transformation_error),
	"shaderc_compilation_status_configuration_error":  int(C.shaderc_compilation_status_configuration_error),

	// Optimization levels
	"shaderc_optimization_level_zero":        int(C.shaderc_optimization_level_zero),
	"shaderc_optimization_level_size":        int(C.shaderc_optimization_level_size),
	"shaderc_optimization_level_performance": int(C.shaderc_optimization_level_performance),

	// Profiles
	"shaderc_profile_none":          int(C.shaderc_profile_none),
	"shaderc_profile_core":          int(C.shaderc_profile_core),
	"shaderc_profile_compatibility": int(C.shaderc_profile_compatibility),
	"shaderc_profile_es":            int(C.shaderc_profile_es),

	// Uniform kinds
	"shaderc_uniform_kind_image":                 int(C.shaderc_uniform_kind_image),
	"shaderc_uniform_kind_sampler":               int(C.shaderc_uniform_kind_sampler),
	"shaderc_uniform_kind_texture":               int(C.shaderc_uniform_kind_texture),
	"shaderc_uniform_kind_buffer":                int(C.shaderc_uniform_kind_buffer),
	"shaderc_uniform_kind_storage_buffer":        int(C.shaderc_uniform_kind_storage_buffer),
	"shaderc_uniform_kind_unordered_access_view": int(C.shaderc_uniform_kind_unordered_access_view),

	// Include types
	"shaderc_include_type_relative": int(C.shaderc_include_type_relative),
	"shaderc_include_type_standard": int(C.shaderc_include_type_standard),

	// Limits
	"shaderc_limit_max_lights":                     int(C.shaderc_limit_max_lights),
	"shaderc_limit_max_clip_planes":                int(C.shaderc_limit_max_clip_planes),
	"shaderc_limit_max_compute_work_group_count_x": int(C.shaderc_limit_max_compute_work_group_count_x),
	"shaderc_limit_max_samples":                    int(C.shaderc_limit_max_samples),
}

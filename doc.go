// Package shaderc compiles GLSL and HLSL to SPIR-V with libshaderc.
//
// A Compiler wraps one native compiler and may be used from many goroutines.
// Settings live in a plain CompileOptions value that is turned into a native
// options object for each Compile call and released before the call
// returns. Results are copied out of the library immediately, so a
// CompilationResult needs no cleanup.
//
//	c, err := shaderc.NewCompiler()
//	if err != nil {
//		return err
//	}
//	defer c.Release()
//
//	opts := shaderc.NewCompileOptions()
//	opts.AddMacroDefinition("USE_FOG", "1")
//	opts.SetTargetEnv(shaderc.TargetEnvVulkan, shaderc.EnvVersionVulkan1_3)
//
//	res, err := c.CompileIntoSPV(src, "fog.frag", shaderc.FragmentShader, opts)
//	if err != nil {
//		return err
//	}
//	if err := res.Err(); err != nil {
//		return fmt.Errorf("%w\n%s", err, res.ErrorMessage())
//	}
//	spirv := res.Bytes()
//
// The package links against libshaderc through pkg-config (package
// "shaderc"), so cgo must be enabled.
package shaderc

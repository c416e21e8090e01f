package shaderc

import (
	"cmp"
	"maps"
	"runtime/cgo"
	"slices"

	"go.uber.org/zap"

	"github.com/NOT-REAL-GAMES/shaderc/internal/native"
)

// optionsHandle is the native options object built from one CompileOptions
// for a single compile call. It owns the native object, the cgo handle the
// include callbacks see as user data, and the include bridge behind it.
type optionsHandle struct {
	api    native.API
	opts   native.Options
	handle cgo.Handle
	bridge *includeBridge
	calls  int
}

// materialize builds a native options object from o. A nil o yields a
// handle with a NULL native object, which the library accepts as
// "defaults". The caller must call release once the compile returns.
func materialize(api native.API, o *CompileOptions) (*optionsHandle, error) {
	h := &optionsHandle{api: api}
	if o == nil {
		return h, nil
	}

	h.opts = api.OptionsInitialize()
	if h.opts.IsNil() {
		return nil, initError("materialize options")
	}
	h.calls++

	h.apply(o)

	Logger().Debug("options materialized", zap.Int("native_calls", h.calls))
	return h, nil
}

func (h *optionsHandle) count() { h.calls++ }

func (h *optionsHandle) apply(o *CompileOptions) {
	api, opts := h.api, h.opts

	for _, name := range slices.Sorted(maps.Keys(o.Macros)) {
		api.AddMacroDefinition(opts, name, o.Macros[name])
		h.count()
	}

	api.SetSourceLanguage(opts, int(o.SourceLanguage))
	h.count()

	if o.GenerateDebugInfo {
		api.SetGenerateDebugInfo(opts)
		h.count()
	}

	if o.OptimizationLevel != nil {
		api.SetOptimizationLevel(opts, int(*o.OptimizationLevel))
		h.count()
	}

	if o.ForcedVersionProfile != nil {
		api.SetForcedVersionProfile(opts, o.ForcedVersionProfile.Version, int(o.ForcedVersionProfile.Profile))
		h.count()
	}

	if o.Includer != nil {
		h.bridge = newIncludeBridge(o.Includer)
		h.handle = cgo.NewHandle(native.Includer(h.bridge))
		api.SetIncludeCallbacks(opts, h.handle)
		h.count()
	}

	if o.SuppressWarnings {
		api.SetSuppressWarnings(opts)
		h.count()
	}

	if o.TargetEnv != nil {
		api.SetTargetEnv(opts, int(o.TargetEnv.Env), uint32(o.TargetEnv.Version))
		h.count()
	}

	if o.TargetSpirv != nil {
		api.SetTargetSpirv(opts, uint32(*o.TargetSpirv))
		h.count()
	}

	if o.WarningsAsErrors {
		api.SetWarningsAsErrors(opts)
		h.count()
	}

	for _, limit := range slices.Sorted(maps.Keys(o.Limits)) {
		api.SetLimit(opts, int(limit), o.Limits[limit])
		h.count()
	}

	h.applyBindings(o)
}

// applyBindings is step 13: toggles and binding maps, each only if set.
func (h *optionsHandle) applyBindings(o *CompileOptions) {
	api, opts := h.api, h.opts

	toggle := func(enabled bool, set func(native.Options, bool)) {
		if enabled {
			set(opts, true)
			h.count()
		}
	}

	toggle(o.AutoBindUniforms, api.SetAutoBindUniforms)
	toggle(o.AutoCombinedImageSampler, api.SetAutoCombinedImageSampler)
	toggle(o.HLSLIOMapping, api.SetHLSLIOMapping)
	toggle(o.HLSLOffsets, api.SetHLSLOffsets)

	for _, kind := range slices.Sorted(maps.Keys(o.BindingBase)) {
		api.SetBindingBase(opts, int(kind), o.BindingBase[kind])
		h.count()
	}

	for _, stage := range slices.Sorted(maps.Keys(o.BindingBaseForStage)) {
		bases := o.BindingBaseForStage[stage]
		for _, kind := range slices.Sorted(maps.Keys(bases)) {
			api.SetBindingBaseForStage(opts, int(stage), int(kind), bases[kind])
			h.count()
		}
	}

	toggle(o.PreserveBindings, api.SetPreserveBindings)
	toggle(o.AutoMapLocations, api.SetAutoMapLocations)

	for _, stage := range slices.Sorted(maps.Keys(o.HLSLRegisterSetAndBindingForStage)) {
		for _, rb := range sortedRegisters(o.HLSLRegisterSetAndBindingForStage[stage]) {
			api.SetHLSLRegisterSetAndBindingForStage(opts, int(stage), rb.Register, rb.Set, rb.Binding)
			h.count()
		}
	}

	for _, rb := range sortedRegisters(o.HLSLRegisterSetAndBinding) {
		api.SetHLSLRegisterSetAndBinding(opts, rb.Register, rb.Set, rb.Binding)
		h.count()
	}

	toggle(o.HLSLFunctionality1, api.SetHLSLFunctionality1)
	toggle(o.HLSL16BitTypes, api.SetHLSL16BitTypes)
	toggle(o.VulkanRulesRelaxed, api.SetVulkanRulesRelaxed)
	toggle(o.InvertY, api.SetInvertY)
	toggle(o.NaNClamp, api.SetNaNClamp)
}

// sortedRegisters orders register bindings by register name. The sort is
// stable, so for a register listed twice the later entry is applied last
// and wins.
func sortedRegisters(in []RegisterBinding) []RegisterBinding {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b RegisterBinding) int {
		return cmp.Compare(a.Register, b.Register)
	})
	return out
}

// release frees the native options and the include bridge. The compile that
// used them must have returned.
func (h *optionsHandle) release() {
	if h == nil {
		return
	}
	if !h.opts.IsNil() {
		h.api.OptionsRelease(h.opts)
		h.opts = native.Options{}
	}
	if h.bridge != nil {
		h.handle.Delete()
		h.bridge.close()
		h.bridge = nil
	}
}

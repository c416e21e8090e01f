package shaderc

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NOT-REAL-GAMES/shaderc/internal/native"
)

type recordingIncluder struct {
	mu       sync.Mutex
	files    map[string]string
	released []IncludeResult
}

func (r *recordingIncluder) Resolve(requested string, _ IncludeType, _ string, _ int) IncludeResult {
	content, ok := r.files[requested]
	if !ok {
		return IncludeFailure("not found: " + requested)
	}
	return IncludeResult{SourceName: "/" + requested, Content: content, UserData: requested}
}

func (r *recordingIncluder) Release(res IncludeResult) {
	r.mu.Lock()
	r.released = append(r.released, res)
	r.mu.Unlock()
}

func TestIncludeBridgeResolveRelease(t *testing.T) {
	inc := &recordingIncluder{files: map[string]string{"common.glsl": "float x;"}}
	b := newIncludeBridge(CallbacksFor(inc))

	name, content, id := b.ResolveInclude("common.glsl", int(IncludeRelative), "main.frag", 1)
	assert.Equal(t, "/common.glsl", name)
	assert.Equal(t, "float x;", content)
	assert.NotZero(t, id)
	assert.Equal(t, 1, b.pending())

	b.ReleaseInclude(id)
	assert.Zero(t, b.pending())
	require.Len(t, inc.released, 1)
	assert.Equal(t, IncludeResult{SourceName: "/common.glsl", Content: "float x;", UserData: "common.glsl"}, inc.released[0])

	// Unknown and repeated ids are ignored.
	b.ReleaseInclude(id)
	b.ReleaseInclude(12345)
	assert.Len(t, inc.released, 1)
}

func TestIncludeBridgeFailureIsReleasedToUser(t *testing.T) {
	inc := &recordingIncluder{}
	b := newIncludeBridge(CallbacksFor(inc))

	name, content, id := b.ResolveInclude("missing.glsl", int(IncludeStandard), "main.frag", 1)
	assert.Empty(t, name)
	assert.Equal(t, "not found: missing.glsl", content)

	b.ReleaseInclude(id)
	require.Len(t, inc.released, 1)
	assert.True(t, inc.released[0].Failed())
}

func TestIncludeBridgeUserData(t *testing.T) {
	type token struct{ n int }
	tok := &token{n: 7}

	var gotResolve, gotRelease any
	b := newIncludeBridge(&IncludeCallbacks{
		Resolve: func(ud any, requested string, typ IncludeType, requesting string, depth int) IncludeResult {
			gotResolve = ud
			assert.Equal(t, "a.h", requested)
			assert.Equal(t, IncludeStandard, typ)
			assert.Equal(t, "b.frag", requesting)
			assert.Equal(t, 3, depth)
			return IncludeResult{SourceName: "a.h", Content: "x"}
		},
		Release:  func(ud any, _ IncludeResult) { gotRelease = ud },
		UserData: tok,
	})

	_, _, id := b.ResolveInclude("a.h", int(IncludeStandard), "b.frag", 3)
	b.ReleaseInclude(id)
	assert.Same(t, tok, gotResolve)
	assert.Same(t, tok, gotRelease)
}

func TestIncludeBridgePanic(t *testing.T) {
	released := 0
	b := newIncludeBridge(&IncludeCallbacks{
		Resolve: func(any, string, IncludeType, string, int) IncludeResult { panic("boom") },
		Release: func(any, IncludeResult) { released++ },
	})

	name, content, id := b.ResolveInclude("a.h", int(IncludeRelative), "b.frag", 1)
	assert.Empty(t, name)
	assert.Contains(t, content, "boom")

	// The user never produced this result, so it is not handed back.
	b.ReleaseInclude(id)
	assert.Zero(t, released)
}

func TestIncludeBridgeReleasePanic(t *testing.T) {
	b := newIncludeBridge(&IncludeCallbacks{
		Resolve: func(any, string, IncludeType, string, int) IncludeResult {
			return IncludeResult{SourceName: "a.h"}
		},
		Release: func(any, IncludeResult) { panic("boom") },
	})

	_, _, id := b.ResolveInclude("a.h", int(IncludeRelative), "b.frag", 1)
	assert.NotPanics(t, func() { b.ReleaseInclude(id) })
}

func TestIncludeBridgeNoResolver(t *testing.T) {
	b := newIncludeBridge(&IncludeCallbacks{})
	name, content, _ := b.ResolveInclude("a.h", int(IncludeRelative), "b.frag", 1)
	assert.Empty(t, name)
	assert.NotEmpty(t, content)
}

func TestIncludeBridgeCloseReleasesOutstanding(t *testing.T) {
	inc := &recordingIncluder{files: map[string]string{"a.h": "1", "b.h": "2"}}
	b := newIncludeBridge(CallbacksFor(inc))

	_, _, idA := b.ResolveInclude("a.h", int(IncludeRelative), "x.frag", 1)
	b.ResolveInclude("b.h", int(IncludeRelative), "x.frag", 1)
	b.ReleaseInclude(idA)

	b.close()
	assert.Zero(t, b.pending())
	assert.Len(t, inc.released, 2)
}

func TestCompileWithIncluder(t *testing.T) {
	inc := &recordingIncluder{files: map[string]string{"common.glsl": "float x;"}}

	api := newFakeAPI()
	api.onCompile = func(ni native.Includer) {
		_, _, id := ni.ResolveInclude("common.glsl", int(IncludeRelative), "main.frag", 1)
		ni.ReleaseInclude(id)
		// Left for teardown.
		ni.ResolveInclude("common.glsl", int(IncludeRelative), "main.frag", 1)
	}

	c, err := newCompiler(api)
	require.NoError(t, err)
	defer c.Release()

	opts := NewCompileOptions()
	opts.Includer = CallbacksFor(inc)

	_, err = c.CompileIntoSPV("#include \"common.glsl\"\nvoid main() {}", "main.frag", FragmentShader, opts)
	require.NoError(t, err)
	assert.Len(t, inc.released, 2)
	assert.Equal(t, 1, api.Count("SetIncludeCallbacks"))
}

func TestFSIncluder(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/main.frag":        {Data: []byte("main")},
		"shaders/lib/light.glsl":   {Data: []byte("local light")},
		"include/light.glsl":       {Data: []byte("global light")},
		"include/util/math.glsl":   {Data: []byte("math")},
		"other/include/noise.glsl": {Data: []byte("noise")},
	}
	inc := &FSIncluder{FS: fsys, SearchPaths: []string{"include", "other/include"}}

	res := inc.Resolve("lib/light.glsl", IncludeRelative, "shaders/main.frag", 1)
	assert.Equal(t, IncludeResult{SourceName: "shaders/lib/light.glsl", Content: "local light"}, res)

	res = inc.Resolve("light.glsl", IncludeRelative, "shaders/main.frag", 1)
	assert.Equal(t, "include/light.glsl", res.SourceName)

	res = inc.Resolve("lib/light.glsl", IncludeStandard, "shaders/main.frag", 1)
	assert.True(t, res.Failed())

	res = inc.Resolve("noise.glsl", IncludeStandard, "shaders/main.frag", 1)
	assert.Equal(t, "noise", res.Content)

	res = inc.Resolve("math.glsl", IncludeRelative, "include/util/x.glsl", 2)
	assert.Equal(t, "include/util/math.glsl", res.SourceName)

	res = inc.Resolve("../../etc/passwd", IncludeRelative, "shaders/main.frag", 1)
	assert.True(t, res.Failed())

	inc.MaxDepth = 1
	res = inc.Resolve("noise.glsl", IncludeStandard, "shaders/main.frag", 2)
	assert.True(t, res.Failed())
	assert.Contains(t, res.Content, "depth")
}

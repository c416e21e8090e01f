package shaderc

import (
	"fmt"
	"io/fs"
	"path"
	"sync"

	"go.uber.org/zap"
)

// IncludeResult answers one #include request. An empty SourceName marks a
// failed include and Content then holds the error message.
//
// SourceName should be unique for the includer, e.g. an absolute path, so
// that diagnostics and nested relative includes resolve against it.
type IncludeResult struct {
	SourceName string
	Content    string
	// UserData is handed back unchanged on release.
	UserData any
}

// IncludeFailure builds a failed result carrying msg.
func IncludeFailure(msg string) IncludeResult {
	return IncludeResult{Content: msg}
}

func (r IncludeResult) Failed() bool {
	return r.SourceName == ""
}

// ResolveFunc maps an #include request to a result. requesting is the name
// of the source containing the directive and depth its nesting level.
type ResolveFunc func(userData any, requested string, typ IncludeType, requesting string, depth int) IncludeResult

// ReleaseFunc is called once per result returned by a ResolveFunc, after the
// compiler is done with it.
type ReleaseFunc func(userData any, result IncludeResult)

// IncludeCallbacks is a resolve/release pair plus an opaque token passed to
// both. The package never inspects UserData.
//
// Resolve may be called from a thread other than the one calling Compile and
// concurrently for different compiles sharing the same callbacks.
type IncludeCallbacks struct {
	Resolve  ResolveFunc
	Release  ReleaseFunc
	UserData any
}

// Includer is the interface form of IncludeCallbacks.
type Includer interface {
	Resolve(requested string, typ IncludeType, requesting string, depth int) IncludeResult
	Release(result IncludeResult)
}

// CallbacksFor adapts an Includer.
func CallbacksFor(inc Includer) *IncludeCallbacks {
	return &IncludeCallbacks{
		Resolve: func(_ any, requested string, typ IncludeType, requesting string, depth int) IncludeResult {
			return inc.Resolve(requested, typ, requesting, depth)
		},
		Release: func(_ any, result IncludeResult) {
			inc.Release(result)
		},
	}
}

type includeRecord struct {
	result IncludeResult
	// fromUser is false for failures the bridge made up itself; those are
	// not handed to the user's Release.
	fromUser bool
}

// includeBridge is what the native callbacks dispatch to for one
// materialized options object. It lives until that object is released.
type includeBridge struct {
	cb  IncludeCallbacks
	log *zap.Logger

	mu          sync.Mutex
	nextID      uint64
	outstanding map[uint64]includeRecord
}

func newIncludeBridge(cb *IncludeCallbacks) *includeBridge {
	return &includeBridge{
		cb:          *cb,
		log:         Logger().Named("include"),
		outstanding: make(map[uint64]includeRecord),
	}
}

func (b *includeBridge) ResolveInclude(requested string, typ int, requesting string, depth int) (string, string, uint64) {
	rec := b.resolve(requested, IncludeType(typ), requesting, depth)

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.outstanding[id] = rec
	b.mu.Unlock()

	b.log.Debug("include resolved",
		zap.String("requested", requested),
		zap.String("requesting", requesting),
		zap.Int("depth", depth),
		zap.String("source", rec.result.SourceName),
		zap.Bool("failed", rec.result.Failed()))

	return rec.result.SourceName, rec.result.Content, id
}

func (b *includeBridge) resolve(requested string, typ IncludeType, requesting string, depth int) (rec includeRecord) {
	if b.cb.Resolve == nil {
		return includeRecord{result: IncludeFailure("no include resolver configured")}
	}

	// A panic must not unwind into the native compiler.
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("include resolver panicked",
				zap.String("requested", requested),
				zap.Any("panic", r))
			rec = includeRecord{result: IncludeFailure(fmt.Sprintf("include resolver panicked: %v", r))}
		}
	}()

	return includeRecord{
		result:   b.cb.Resolve(b.cb.UserData, requested, typ, requesting, depth),
		fromUser: true,
	}
}

func (b *includeBridge) ReleaseInclude(id uint64) {
	b.mu.Lock()
	rec, ok := b.outstanding[id]
	delete(b.outstanding, id)
	b.mu.Unlock()

	if ok {
		b.release(rec)
	}
}

func (b *includeBridge) release(rec includeRecord) {
	if !rec.fromUser || b.cb.Release == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("include release panicked",
				zap.String("source", rec.result.SourceName),
				zap.Any("panic", r))
		}
	}()
	b.cb.Release(b.cb.UserData, rec.result)
}

func (b *includeBridge) pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.outstanding)
}

// close releases results the library never handed back.
func (b *includeBridge) close() {
	b.mu.Lock()
	left := b.outstanding
	b.outstanding = make(map[uint64]includeRecord)
	b.mu.Unlock()

	if len(left) == 0 {
		return
	}
	b.log.Warn("include results outstanding at options release", zap.Int("count", len(left)))
	for _, rec := range left {
		b.release(rec)
	}
}

// FSIncluder resolves includes from a file system. Relative includes
// ("file") are looked up next to the requesting source first, then in
// SearchPaths; standard includes (<file>) only in SearchPaths. Names use
// io/fs path syntax.
type FSIncluder struct {
	FS          fs.FS
	SearchPaths []string
	// MaxDepth rejects includes nested deeper than this. Zero means no
	// limit.
	MaxDepth int
}

func (f *FSIncluder) Resolve(requested string, typ IncludeType, requesting string, depth int) IncludeResult {
	if f.MaxDepth > 0 && depth > f.MaxDepth {
		return IncludeFailure(fmt.Sprintf("include depth %d exceeds limit of %d", depth, f.MaxDepth))
	}

	var candidates []string
	if typ == IncludeRelative {
		candidates = append(candidates, path.Join(path.Dir(requesting), requested))
	}
	for _, dir := range f.SearchPaths {
		candidates = append(candidates, path.Join(dir, requested))
	}

	for _, name := range candidates {
		if !fs.ValidPath(name) {
			continue
		}
		data, err := fs.ReadFile(f.FS, name)
		if err != nil {
			continue
		}
		return IncludeResult{SourceName: name, Content: string(data)}
	}
	return IncludeFailure(fmt.Sprintf("cannot find or open include file %q", requested))
}

func (f *FSIncluder) Release(IncludeResult) {}

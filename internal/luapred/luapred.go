// Package luapred builds catalog predicates from Lua chunks.
//
// A chunk is compiled once and evaluated per event with two globals: "key",
// the event's identity string, and "mac", the platform classification at
// call time. The chunk's return value is taken as a Lua truth value:
//
//	p, err := luapred.New(`return key == "Enter" or (mac and key == "Meta")`, nil)
//
// gopher-lua states are not goroutine-safe, so each predicate owns one
// state guarded by a mutex; evaluation is serialized per predicate.
package luapred

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keywatch/internal/catalog"
	"github.com/dshills/keywatch/internal/key"
	"github.com/dshills/keywatch/internal/platform"
)

// Predicate is a catalog predicate scripted in Lua.
type Predicate struct {
	mu       sync.Mutex
	state    *lua.LState
	fn       *lua.LFunction
	detector *platform.Detector
	closed   bool
}

// New compiles the chunk and returns a predicate bound to the given
// detector. A nil detector uses the default ambient detector. Compile
// errors surface here; runtime errors later make the predicate false.
func New(chunk string, d *platform.Detector) (*Predicate, error) {
	if d == nil {
		d = platform.Default
	}

	L := lua.NewState()
	fn, err := L.LoadString(chunk)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("compiling predicate chunk: %w", err)
	}

	return &Predicate{
		state:    L,
		fn:       fn,
		detector: d,
	}, nil
}

// Check evaluates the chunk against the event. A chunk that errors at
// runtime, returns nothing, or returns a non-truthy value yields false.
func (p *Predicate) Check(ev key.Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}

	L := p.state
	L.SetGlobal("key", lua.LString(string(ev.Key)))
	L.SetGlobal("mac", lua.LBool(p.detector.IsMacOS()))

	L.Push(p.fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return false
	}

	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret)
}

// Func returns the predicate in catalog form.
func (p *Predicate) Func() catalog.Predicate {
	return p.Check
}

// Close releases the Lua state. A closed predicate is always false.
func (p *Predicate) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.state.Close()
}

// Package script runs user-supplied JavaScript style mutations on spans.
// It uses the goja JavaScript engine (pure Go ES5.1+ implementation).
//
// A script sees a global "span" object:
//
//	span.text           // read-only characters of the span
//	span.bold, span.italic, span.underline, span.strikethrough
//	span.foreground     // CSS color string or null
//	span.background     // CSS color string or null
//	span.fontFamily     // string, or null when the span has no font
//	span.fontSize       // number, or null when the span has no font
//
// Changes made to the object are written back to the span after the run.
package script

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dop251/goja"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultCacheSize = 64
	DefaultTimeout   = time.Second
)

// ErrTimeout is reported when a script runs longer than the engine's
// timeout.
var ErrTimeout = errors.New("script timed out")

// Engine compiles and runs style scripts. A single goja runtime is shared
// and guarded by a mutex.
type Engine struct {
	vm      *goja.Runtime
	mu      sync.Mutex
	cache   *lru.Cache[string, *goja.Program]
	timeout time.Duration
	log     *slog.Logger

	cacheSize int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCacheSize sets how many compiled programs are kept.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cacheSize = n
		}
	}
}

// WithTimeout bounds the run time of a single script application.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the engine's logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates a new script engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		vm:        goja.New(),
		timeout:   DefaultTimeout,
		log:       slog.Default(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "script")

	cache, err := lru.New[string, *goja.Program](e.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating program cache: %w", err)
	}
	e.cache = cache
	return e, nil
}

// Compile compiles src into a style mutation. Compiled programs are cached
// by source text.
func (e *Engine) Compile(src string) (m *Mutation, err error) {
	if prog, ok := e.cache.Get(src); ok {
		return &Mutation{engine: e, src: src, prog: prog}, nil
	}

	// Recover from panics in the goja parser/compiler
	defer func() {
		if p := recover(); p != nil {
			m, err = nil, fmt.Errorf("script compilation panic: %v", p)
		}
	}()

	prog, err := goja.Compile("style.js", src, false)
	if err != nil {
		return nil, fmt.Errorf("compiling style script: %w", err)
	}
	e.cache.Add(src, prog)
	return &Mutation{engine: e, src: src, prog: prog}, nil
}

// run executes prog with span bound as the global "span" object.
func (e *Engine) run(prog *goja.Program, span *goja.Object) (err error) {
	timer := time.AfterFunc(e.timeout, func() {
		e.vm.Interrupt(ErrTimeout)
	})
	defer func() {
		timer.Stop()
		e.vm.ClearInterrupt()
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
		}
	}()

	if err := e.vm.Set("span", span); err != nil {
		return err
	}
	_, err = e.vm.RunProgram(prog)
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return ErrTimeout
	}
	return err
}

// Package discovery probes configured MCP servers to learn which tools
// they expose. A probe is best-effort: the server is launched, sent one
// tools/list request, given a bounded amount of time to answer, and
// whatever it printed is run through a chain of extraction strategies.
// Results are memoized per server until the cache is cleared.
package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
	"github.com/Saml1211/mcp-config-watcher/internal/logger"
)

// Defaults applied when the settings file supplies nothing.
const (
	DefaultTimeout = 10 * time.Second
	DefaultGrace   = 500 * time.Millisecond
)

// Engine coordinates discovery calls. Calls for distinct servers run
// concurrently, each owning its own subprocess and buffers; the cache
// is the only shared state.
type Engine struct {
	mu       sync.Mutex
	cache    map[string][]string
	inflight map[string]chan struct{}

	spawn   func(ctx context.Context, cfg mcpconfig.ServerConfig) (*processSession, error)
	timeout time.Duration
	grace   time.Duration
	script  *ScriptStrategy
	sink    logger.Sink
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the discovery deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithGrace sets the post-spawn delay before the request is written.
func WithGrace(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.grace = d
		}
	}
}

// WithSink sets the diagnostic sink.
func WithSink(s logger.Sink) Option {
	return func(e *Engine) {
		if s != nil {
			e.sink = s
		}
	}
}

// WithScript adds a user-supplied extraction hook consulted after the
// built-in strategies.
func WithScript(s *ScriptStrategy) Option {
	return func(e *Engine) { e.script = s }
}

// NewEngine creates a discovery engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache:    make(map[string][]string),
		inflight: make(map[string]chan struct{}),
		spawn:    launch,
		timeout:  DefaultTimeout,
		grace:    DefaultGrace,
		sink:     nopSink{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DiscoverTools returns the tool names the given server exposes. It is
// a total function: every failure degrades to an empty result plus a
// diagnostic. An empty result is a valid outcome ("no tools found") and
// is cached; only spawn failures are left uncached so the next call may
// retry. Concurrent calls for the same server share one probe.
func (e *Engine) DiscoverTools(ctx context.Context, serverID string, cfg mcpconfig.ServerConfig) []string {
	for {
		e.mu.Lock()
		if names, ok := e.cache[serverID]; ok {
			e.mu.Unlock()
			e.sink.Debugf("cache hit for %s", serverID)
			return append([]string{}, names...)
		}
		ch, busy := e.inflight[serverID]
		if !busy {
			ch = make(chan struct{})
			e.inflight[serverID] = ch
			e.mu.Unlock()

			names := e.probe(ctx, serverID, cfg)

			e.mu.Lock()
			delete(e.inflight, serverID)
			e.mu.Unlock()
			close(ch)
			return names
		}
		e.mu.Unlock()

		// Another call is already probing this server; wait for it,
		// then re-check the cache. If its spawn failed nothing was
		// cached and this call takes its own turn.
		select {
		case <-ch:
		case <-ctx.Done():
			return []string{}
		}
	}
}

// ClearCache empties the memo unconditionally. The next call for any
// server spawns a fresh probe.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	e.cache = make(map[string][]string)
	e.mu.Unlock()
	e.sink.Debugf("discovery cache cleared")
}

// probe runs one full discovery pass: spawn, exchange, extract, cache.
func (e *Engine) probe(ctx context.Context, serverID string, cfg mcpconfig.ServerConfig) []string {
	e.sink.Infof("discovering tools for %s", serverID)

	sess, err := e.spawn(ctx, cfg)
	if err != nil {
		e.sink.Errorf("failed to spawn %s: %v", serverID, err)
		return []string{}
	}
	defer sess.close()

	sess.exchange(ctx, e.grace, e.timeout, e.sink)

	names := e.extract(serverID, sess.stdoutText(), sess.stderrText())

	e.mu.Lock()
	e.cache[serverID] = names
	e.mu.Unlock()

	return append([]string{}, names...)
}

// extract applies the strategy chain to stdout and, only if that yields
// nothing, to stderr as an independent fallback corpus.
func (e *Engine) extract(serverID, stdout, stderr string) []string {
	names := e.runChain(stdout)
	if len(names) == 0 {
		names = e.runChain(stderr)
	}
	names = dedupe(names)

	if len(names) == 0 {
		e.sink.Infof("no tools discovered for %s", serverID)
		return []string{}
	}
	e.sink.Infof("discovered %d tools for %s", len(names), serverID)
	return names
}

func (e *Engine) runChain(text string) []string {
	names := runStrategies(text)
	if len(names) == 0 && e.script != nil {
		scripted, err := e.script.Extract(text)
		if err != nil {
			e.sink.Debugf("scripted extraction failed (non-fatal): %v", err)
		} else {
			names = scripted
		}
	}
	return names
}

type nopSink struct{}

func (nopSink) Debugf(string, ...any) {}
func (nopSink) Infof(string, ...any)  {}
func (nopSink) Warnf(string, ...any)  {}
func (nopSink) Errorf(string, ...any) {}

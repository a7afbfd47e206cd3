package discovery

import (
	"fmt"
	"os"
	"sync"

	"github.com/dop251/goja"
)

// ScriptStrategy runs a user-supplied JavaScript extraction hook. The
// script must define a global function extract(text) returning an array
// of strings; it is consulted only after every built-in strategy came
// up empty for a corpus.
type ScriptStrategy struct {
	mu sync.Mutex
	vm *goja.Runtime
	fn goja.Callable
}

// LoadScriptStrategy reads and compiles the hook at path.
func LoadScriptStrategy(path string) (*ScriptStrategy, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extraction script: %w", err)
	}
	return NewScriptStrategy(string(src))
}

// NewScriptStrategy compiles the given script source.
func NewScriptStrategy(src string) (*ScriptStrategy, error) {
	vm := goja.New()
	if _, err := vm.RunString(src); err != nil {
		return nil, fmt.Errorf("extraction script failed to load: %w", err)
	}
	fn, ok := goja.AssertFunction(vm.Get("extract"))
	if !ok {
		return nil, fmt.Errorf("extraction script must define a global extract(text) function")
	}
	return &ScriptStrategy{vm: vm, fn: fn}, nil
}

// Extract invokes the hook. The VM is not safe for concurrent use, so
// calls are serialized.
func (s *ScriptStrategy) Extract(text string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := s.fn(goja.Undefined(), s.vm.ToValue(text))
	if err != nil {
		return nil, fmt.Errorf("extraction script error: %w", err)
	}

	var names []string
	if err := s.vm.ExportTo(val, &names); err != nil {
		return nil, fmt.Errorf("extraction script must return an array of strings: %w", err)
	}
	return dedupe(names), nil
}

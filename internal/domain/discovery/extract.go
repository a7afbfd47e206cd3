package discovery

import (
	"encoding/json"
	"regexp"
	"strings"
)

// An extractFunc maps captured raw process output to zero or more
// candidate tool names. Strategies are pure and independent; the chain
// below applies them in decreasing order of precision and stops at the
// first one that yields anything.
type extractFunc func(text string) []string

var strategies = []extractFunc{
	extractJSONRPCTools,
	extractFunctionManifest,
	extractNameLines,
	extractKeyDeclarations,
	extractIdentifierTokens,
}

// runStrategies applies the chain to one output corpus.
func runStrategies(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	for _, strat := range strategies {
		if names := strat(text); len(names) > 0 {
			return names
		}
	}
	return nil
}

// extractJSONRPCTools looks for a proper JSON-RPC 2.0 tools/list
// response: a complete JSON object with "jsonrpc":"2.0" whose
// result.tools is a list of objects carrying a name field. The first
// such response wins.
func extractJSONRPCTools(text string) []string {
	if !strings.Contains(text, "jsonrpc") {
		return nil
	}
	for _, obj := range jsonObjects(text) {
		if !strings.Contains(obj, "jsonrpc") {
			continue
		}
		var resp struct {
			JSONRPC string `json:"jsonrpc"`
			Result  struct {
				Tools []struct {
					Name string `json:"name"`
				} `json:"tools"`
			} `json:"result"`
		}
		if err := json.Unmarshal([]byte(obj), &resp); err != nil {
			continue
		}
		if resp.JSONRPC != "2.0" {
			continue
		}
		var names []string
		for _, t := range resp.Result.Tools {
			if t.Name != "" {
				names = append(names, t.Name)
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	return nil
}

// extractFunctionManifest handles servers that dump an OpenAI-style
// manifest instead of speaking JSON-RPC: any complete JSON object with
// a "functions" list, a "tools" list, or a bare "name" field
// contributes candidates.
func extractFunctionManifest(text string) []string {
	var names []string
	for _, obj := range jsonObjects(text) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(obj), &doc); err != nil {
			continue
		}
		switch {
		case hasList(doc, "functions"):
			names = append(names, namesFromList(doc["functions"])...)
		case hasList(doc, "tools"):
			names = append(names, namesFromList(doc["tools"])...)
		default:
			if name, ok := doc["name"].(string); ok && name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func hasList(doc map[string]any, key string) bool {
	_, ok := doc[key].([]any)
	return ok
}

func namesFromList(v any) []string {
	items, _ := v.([]any)
	var names []string
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := obj["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}

var nameLineRe = regexp.MustCompile(`["']name["']\s*:\s*["']([^"']+)["']`)

// extractNameLines scans line by line for a quoted name key. Lines that
// parse as JSON on their own are trusted; otherwise a targeted pattern
// pulls just the name's string value out of the line.
func extractNameLines(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, `"name"`) && !strings.Contains(line, `'name'`) {
			continue
		}
		trimmed := strings.TrimSuffix(strings.TrimSpace(line), ",")
		var doc map[string]any
		if err := json.Unmarshal([]byte(trimmed), &doc); err == nil {
			if name, ok := doc["name"].(string); ok && name != "" {
				names = append(names, name)
				continue
			}
		}
		if m := nameLineRe.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}

var keyDeclRe = regexp.MustCompile(`["']?(?:function|name)["']?\s*:\s*(?:"([^"]+)"|'([^']+)')`)

// extractKeyDeclarations matches function:/name: declarations anywhere
// in the text, with either quote style around the value.
func extractKeyDeclarations(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range keyDeclRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

var snakeTokenRe = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9]*_[A-Za-z0-9_]+\b`)

// extractIdentifierTokens is the last resort: bare snake_case-looking
// tokens anywhere in the text. Low precision, but servers that only
// print usage text often mention their tool names this way.
func extractIdentifierTokens(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, tok := range snakeTokenRe.FindAllString(text, -1) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		names = append(names, tok)
	}
	return names
}

// jsonObjects returns every balanced top-level {...} substring in text,
// skipping braces inside JSON strings. Truncated fragments (a killed
// process mid-write) simply never close and are dropped.
func jsonObjects(text string) []string {
	var objs []string
	depth := 0
	start := -1
	inStr := false
	esc := false
	for i, r := range text {
		if esc {
			esc = false
			continue
		}
		switch r {
		case '\\':
			if inStr {
				esc = true
			}
		case '"':
			inStr = !inStr
		case '{':
			if !inStr {
				if depth == 0 {
					start = i
				}
				depth++
			}
		case '}':
			if !inStr && depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					objs = append(objs, text[start:i+1])
					start = -1
				}
			}
		}
	}
	return objs
}

// dedupe removes duplicates while keeping first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

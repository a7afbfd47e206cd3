package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONObjects_BalancedScan(t *testing.T) {
	text := `INFO starting {"a":1} trailing {"b":{"c":2}} junk`
	objs := jsonObjects(text)
	require.Len(t, objs, 2)
	assert.Equal(t, `{"a":1}`, objs[0])
	assert.Equal(t, `{"b":{"c":2}}`, objs[1])
}

func TestJSONObjects_IgnoresBracesInStrings(t *testing.T) {
	text := `{"msg":"brace } inside"} tail`
	objs := jsonObjects(text)
	require.Len(t, objs, 1)
	assert.Equal(t, `{"msg":"brace } inside"}`, objs[0])
}

func TestJSONObjects_DropsTruncatedFragment(t *testing.T) {
	text := `{"jsonrpc":"2.0","result":{"tools":[{"name":"a"`
	assert.Empty(t, jsonObjects(text))
}

func TestExtractJSONRPCTools(t *testing.T) {
	text := `server booting...
{"jsonrpc":"2.0","id":1,"result":{"tools":[{"name":"a"},{"name":"b"}]}}
done`
	assert.Equal(t, []string{"a", "b"}, extractJSONRPCTools(text))
}

func TestExtractJSONRPCTools_RejectsWrongVersion(t *testing.T) {
	text := `{"jsonrpc":"1.0","id":1,"result":{"tools":[{"name":"a"}]}}`
	assert.Empty(t, extractJSONRPCTools(text))
}

func TestExtractJSONRPCTools_RejectsStringTools(t *testing.T) {
	// result.tools must be a list of objects, not bare strings
	text := `{"jsonrpc":"2.0","id":1,"result":{"tools":["a","b"]}}`
	assert.Empty(t, extractJSONRPCTools(text))
}

func TestExtractFunctionManifest_Functions(t *testing.T) {
	text := `{"functions":[{"name":"search"},{"name":"fetch"}]}`
	assert.Equal(t, []string{"search", "fetch"}, extractFunctionManifest(text))
}

func TestExtractFunctionManifest_ToolsFallback(t *testing.T) {
	text := `{"tools":[{"name":"ping"}]}`
	assert.Equal(t, []string{"ping"}, extractFunctionManifest(text))
}

func TestExtractFunctionManifest_SingleNamedObject(t *testing.T) {
	text := `{"name":"solo_tool","description":"x"}`
	assert.Equal(t, []string{"solo_tool"}, extractFunctionManifest(text))
}

func TestExtractNameLines_BareNameKey(t *testing.T) {
	// No valid JSON envelope anywhere, just the quoted key on a line.
	text := "garbage before\n  \"name\": \"sleep\"\ngarbage after"
	assert.Equal(t, []string{"sleep"}, extractNameLines(text))
}

func TestExtractNameLines_JSONLine(t *testing.T) {
	text := `{"name":"alpha","description":"first"}` + "\n" + `{"name":"beta"}`
	assert.Equal(t, []string{"alpha", "beta"}, extractNameLines(text))
}

func TestExtractKeyDeclarations(t *testing.T) {
	text := `function: "do_work" name: 'other_thing' function: "do_work"`
	assert.Equal(t, []string{"do_work", "other_thing"}, extractKeyDeclarations(text))
}

func TestExtractIdentifierTokens(t *testing.T) {
	text := "usage: run web_search or file_read, maybe web_search again"
	assert.Equal(t, []string{"web_search", "file_read"}, extractIdentifierTokens(text))
}

func TestRunStrategies_PriorityOrder(t *testing.T) {
	// A valid JSON-RPC response and an unrelated OpenAI-style functions
	// block: only the JSON-RPC names may win.
	text := `{"functions":[{"name":"loser_fn"}]}
{"jsonrpc":"2.0","id":1,"result":{"tools":[{"name":"winner"}]}}`
	assert.Equal(t, []string{"winner"}, runStrategies(text))
}

func TestRunStrategies_FallsThroughToWeakest(t *testing.T) {
	text := "nothing structured here, but a stray tool_name token"
	assert.Equal(t, []string{"tool_name"}, runStrategies(text))
}

func TestRunStrategies_EmptyInput(t *testing.T) {
	assert.Empty(t, runStrategies(""))
	assert.Empty(t, runStrategies("   \n\t  "))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, dedupe([]string{"a", "b", "a", "", "b"}))
	assert.Empty(t, dedupe(nil))
}

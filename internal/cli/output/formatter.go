package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	clierrors "github.com/Saml1211/mcp-config-watcher/internal/cli/errors"
	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

type Formatter struct {
	out    io.Writer
	format OutputFormat
	color  bool
}

func NewFormatter(out io.Writer, format OutputFormat, useColor bool) *Formatter {
	return &Formatter{
		out:    out,
		format: format,
		color:  useColor,
	}
}

// FormatTools prints discovery results per server.
func (f *Formatter) FormatTools(results map[string][]string) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(f.out, string(data))
		return
	}

	table := tablewriter.NewTable(f.out,
		tablewriter.WithHeader([]string{"Server", "Tool"}),
	)

	servers := make([]string, 0, len(results))
	for server := range results {
		servers = append(servers, server)
	}
	sort.Strings(servers)

	for _, server := range servers {
		if len(results[server]) == 0 {
			table.Append([]string{server, "(none)"})
			continue
		}
		for _, tool := range results[server] {
			table.Append([]string{server, tool})
		}
	}

	table.Render()
}

// FormatServers prints the watched config's server inventory.
func (f *Formatter) FormatServers(cfg *mcpconfig.Config) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(cfg.McpServers, "", "  ")
		fmt.Fprintln(f.out, string(data))
		return
	}

	table := tablewriter.NewTable(f.out,
		tablewriter.WithHeader([]string{"Name", "Command", "Status"}),
	)

	for _, name := range cfg.ServerNames() {
		sc := cfg.McpServers[name]
		status := "enabled"
		if sc.Disabled {
			status = "disabled"
		}
		table.Append([]string{name, sc.Command, status})
	}

	table.Render()
}

// FormatValidation prints a validation result.
func (f *Formatter) FormatValidation(result *mcpconfig.ValidationResult) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(f.out, string(data))
		return
	}

	if result.Valid {
		fmt.Fprintln(f.out, f.green("Config is valid."))
	} else {
		fmt.Fprintln(f.out, f.red("Config is invalid."))
	}
	for _, e := range result.Errors {
		fmt.Fprintln(f.out, f.red("  error: ")+e.Error())
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(f.out, f.yellow("  warning: ")+w.Error())
	}
}

// FormatError prints a classified error with its hint.
func (f *Formatter) FormatError(err clierrors.ClassifiedError) {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(map[string]string{
			"kind":    string(err.Kind),
			"message": err.Message,
			"hint":    err.Hint,
		}, "", "  ")
		fmt.Fprintln(f.out, string(data))
		return
	}

	fmt.Fprintf(f.out, "%s %s\n", f.red(fmt.Sprintf("Error [%s]:", err.Kind)), err.Message)
	if err.Hint != "" {
		fmt.Fprintf(f.out, "%s %s\n", f.yellow("Hint:"), err.Hint)
	}
}

func (f *Formatter) red(s string) string {
	if f.color {
		return color.RedString("%s", s)
	}
	return s
}

func (f *Formatter) yellow(s string) string {
	if f.color {
		return color.YellowString("%s", s)
	}
	return s
}

func (f *Formatter) green(s string) string {
	if f.color {
		return color.GreenString("%s", s)
	}
	return s
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"fluentcrm-mcp/internal/fluentcrm"
)

// arguments is the raw tool-call argument map as decoded from the wire.
type arguments map[string]any

func (a arguments) has(name string) bool {
	_, ok := a[name]
	return ok
}

func (a arguments) str(name string) string {
	s, _ := a[name].(string)
	return s
}

// num accepts both JSON numbers and numeric strings, since MCP clients are
// not consistent about which they send for id parameters.
func (a arguments) num(name string) int {
	switch v := a[name].(type) {
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

func (a arguments) boolean(name string) bool {
	b, _ := a[name].(bool)
	return b
}

func (a arguments) ints(name string) []int {
	raw, ok := a[name].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(float64); ok {
			out = append(out, int(f))
		}
	}
	return out
}

// query renders the named arguments, where present, into URL query values.
func (a arguments) query(names ...string) url.Values {
	q := url.Values{}
	for _, name := range names {
		switch v := a[name].(type) {
		case string:
			if v != "" {
				q.Set(name, v)
			}
		case float64:
			q.Set(name, strconv.Itoa(int(v)))
		case bool:
			q.Set(name, strconv.FormatBool(v))
		}
	}
	return q
}

// object copies the argument map minus the named keys, for calls that pass
// the payload through but carry the resource id as a separate argument.
func (a arguments) object(omit ...string) map[string]any {
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v
	}
	for _, k := range omit {
		delete(out, k)
	}
	return out
}

func (a arguments) smartLink() fluentcrm.SmartLinkData {
	return fluentcrm.SmartLinkData{
		Title:       a.str("title"),
		Slug:        a.str("slug"),
		TargetURL:   a.str("target_url"),
		ApplyTags:   a.ints("apply_tags"),
		ApplyLists:  a.ints("apply_lists"),
		RemoveTags:  a.ints("remove_tags"),
		RemoveLists: a.ints("remove_lists"),
		AutoLogin:   a.boolean("auto_login"),
	}
}

// dispatch routes one tool call through the registry. Every failure mode
// comes back as an in-band result so the protocol layer never sees a Go
// error for a tool-level problem.
func (s *Server) dispatch(ctx context.Context, name string, args arguments) *mcplib.CallToolResult {
	def, ok := s.registry[name]
	if !ok {
		return resultErrf("Unknown tool: %s", name)
	}
	for _, p := range def.params {
		if p.required && !args.has(p.name) {
			return resultErrf("%s: missing required parameter %q", name, p.name)
		}
	}
	v, err := def.call(ctx, s.client, args)
	if err != nil {
		s.logger.ErrorContext(ctx, "tool call failed", "tool", name, "error", err)
		return resultErr(err)
	}
	return resultJSON(v)
}

func resultJSON(v any) *mcplib.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return resultErr(err)
	}
	return mcplib.NewToolResultText(string(b))
}

func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent("❌ Error: " + err.Error())},
		IsError: true,
	}
}

func resultErrf(format string, args ...any) *mcplib.CallToolResult {
	return resultErr(fmt.Errorf(format, args...))
}

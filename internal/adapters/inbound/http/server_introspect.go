package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

const introspectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectTool struct {
	Name        string
	Description string
	SignedIn    bool
}

type introspectPage struct {
	Title   string
	Version string
	Graph   string
	Tools   []introspectTool
}

// handleIntrospect renders the dependency graph of the running application
// and the assistant tools exposed over MCP.
func (api FoodAppServer) handleIntrospect(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string](introspectionGraphName)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	page := introspectPage{
		Title:   "FoodApp Introspection Graph",
		Version: api.AppVersion,
		Graph:   mermaidGraph,
	}
	if api.ToolServer != nil {
		for _, def := range api.ToolServer.Tools() {
			page.Tools = append(page.Tools, introspectTool{
				Name:        def.Name,
				Description: def.Description,
				SignedIn:    def.RequiresIdentity,
			})
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, page); err != nil {
		api.Logger.Error().Err(err).Msg("FoodAppServer: failed to render introspection page")
	}
}

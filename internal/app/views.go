package app

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = map[string]*template.Template{
	"form":    parseView("form.html"),
	"video":   parseView("video.html"),
	"confirm": parseView("confirm.html"),
}

func parseView(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

// Render the view into a buffer first so a template failure never sends a partial page.
func render(w http.ResponseWriter, code int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := views[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, err := buf.WriteTo(w)
	return err
}

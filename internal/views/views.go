// Package views はHTMLテンプレートを埋め込みで提供します。
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

// Templates はすべてのページテンプレートを解析して返します。
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"plural": func(n int, word string) string {
			if n == 1 {
				return word
			}
			return word + "s"
		},
	}).ParseFS(files, "templates/*.tmpl")
}

// MustTemplates は Templates と同じですが、失敗した場合は panic します。
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

package render

import (
	"fmt"
	"html/template"
	"io/fs"

	"github.com/bgraf/exifview/res"
	"github.com/goodsign/monday"
)

// ReadTemplates parses the embedded page templates.
func ReadTemplates(locale monday.Locale) (*template.Template, error) {
	return ReadTemplatesFS(res.Templates, "templates", locale)
}

// ReadTemplatesFS parses all `*.html` templates below dir of fsys.
func ReadTemplatesFS(fsys fs.FS, dir string, locale monday.Locale) (*template.Template, error) {
	templates, err := template.New("").
		Funcs(MakeTemplateFuncmap(locale)).
		ParseFS(fsys, dir+"/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}

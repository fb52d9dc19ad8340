package storefront

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-contrib/static"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

var funcs = template.FuncMap{
	"money": func(v any) string {
		switch t := v.(type) {
		case api.Amount:
			return t.String()
		case *api.Amount:
			if t == nil {
				return ""
			}
			return t.String()
		case float64:
			return fmt.Sprintf("%.2f", t)
		default:
			return fmt.Sprint(t)
		}
	},
	"contains": func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	},
}

type pages struct {
	byName map[string]*template.Template
}

func mustParsePages() *pages {
	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		panic(err)
	}

	p := &pages{byName: make(map[string]*template.Template)}
	for _, entry := range entries {
		name := path.Base(entry)
		if name == "layout.html" {
			continue
		}
		p.byName[name] = template.Must(
			template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", entry),
		)
	}
	return p
}

func (p *pages) get(name string) (*template.Template, bool) {
	t, ok := p.byName[name]
	return t, ok
}

// embeddedAssets serves the embedded assets directory to gin-contrib/static.
type embeddedAssets struct {
	http.FileSystem
}

// Assets returns the static files served under /static.
func Assets() static.ServeFileSystem {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return embeddedAssets{FileSystem: http.FS(sub)}
}

func (e embeddedAssets) Exists(prefix, filepath string) bool {
	rest := strings.TrimPrefix(filepath, prefix)
	if len(rest) == len(filepath) || rest == "" || rest == "/" {
		return false
	}
	f, err := e.Open(rest)
	if err != nil {
		return false
	}
	defer f.Close()
	st, err := f.Stat()
	return err == nil && !st.IsDir()
}

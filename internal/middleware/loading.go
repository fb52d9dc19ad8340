package middleware

import (
	"html/template"
	"net/http"
)

var loadingPage = template.Must(template.New("loading").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="1;url={{.}}">
<title>Loading...</title>
<link rel="stylesheet" href="/static/css/app.css">
</head>
<body class="loading">
<div class="spinner" role="status" aria-label="Loading"></div>
</body>
</html>
`))

func renderLoading(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Retry-After", "1")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = loadingPage.Execute(w, r.URL.RequestURI())
}

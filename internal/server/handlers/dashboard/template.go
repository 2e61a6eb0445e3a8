package dashboard

// pageTemplate is the whole dashboard. Styling and the icon font are loaded
// from externally hosted URLs; the binary ships no static assets.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Repodeck</title>
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/4.7.0/css/font-awesome.min.css">
<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600&display=swap">
<style>
body { font-family: 'Inter', sans-serif; background: #f4f5f7; margin: 0; padding: 2rem; }
h1 { font-weight: 600; }
h2 { font-weight: 600; color: #555; margin-top: 2rem; }
.cards { display: flex; flex-wrap: wrap; gap: 1rem; }
.card { background: #fff; border-radius: 8px; padding: 1rem 1.5rem; min-width: 16rem;
        box-shadow: 0 1px 3px rgba(0,0,0,.12); border-left: 6px solid #9e9e9e; }
.card .path { color: #888; font-size: .8rem; word-break: break-all; }
.card .status { margin-top: .5rem; font-weight: 600; }
.card.okay { border-left-color: #4caf50; }
.card.unpulled { border-left-color: #03a9f4; }
.card.unpushed { border-left-color: #ff9800; }
.card.uncommitted { border-left-color: #ff9800; }
.card.untracked { border-left-color: #ff9800; }
.card.unknown-error, .card.no-commits, .card.not-a-repo, .card.path-not-found { border-left-color: #f44336; }
footer { margin-top: 3rem; color: #aaa; font-size: .75rem; }
</style>
</head>
<body>
<h1><i class="fa fa-code-fork"></i> Repodeck</h1>
{{- range .Groups }}
{{- if .Name }}
<h2>{{ .Name }}</h2>
{{- end }}
<div class="cards">
{{- range .Cards }}
  <div class="card {{ .Class }}">
    <div class="name">{{ .Name }}</div>
    <div class="path">{{ .Path }}</div>
    <div class="status"><i class="fa {{ .Icon }}"></i> {{ .Status }}</div>
  </div>
{{- end }}
</div>
{{- end }}
<footer>pass {{ .PassID }} &middot; generated {{ .Generated }} in {{ .Duration }}</footer>
</body>
</html>
`

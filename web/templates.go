package web

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>irmagi</title>
  <style>
    body { font-family: sans-serif; margin: 2em; max-width: 48em; }
    table { border-collapse: collapse; }
    td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
    .message { background: #ffc; padding: 0.5em; }
    form { display: inline; }
  </style>
</head>
<body>
  <h1>irmagi</h1>

  {{if .Message}}<p class="message">{{.Message}}</p>{{end}}

  <h2>Capture</h2>
  <form method="post" action="/capture">
    <input type="text" name="name" placeholder="profile name">
    <button type="submit">Capture</button>
  </form>
  <form method="post" action="/reset">
    <button type="submit">Reset device</button>
  </form>

  <h2>Profiles</h2>
  {{if .Profiles}}
  <table>
    {{range .Profiles}}
    <tr>
      <td><a href="/profiles/{{.}}.json">{{.}}</a></td>
      <td>
        <form method="post" action="/play">
          <input type="hidden" name="name" value="{{.}}">
          <button type="submit">Play</button>
        </form>
        <form method="post" action="/delete">
          <input type="hidden" name="name" value="{{.}}">
          <button type="submit">Delete</button>
        </form>
      </td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p>No profiles yet.</p>
  {{end}}

  <h2>Recent actions</h2>
  {{if .History}}
  <table>
    <tr><th>When</th><th>Action</th><th>Profile</th><th>Detail</th></tr>
    {{range .History}}
    <tr>
      <td>{{.CreatedAt.Format "2006-01-02 15:04:05"}}</td>
      <td>{{.Action}}</td>
      <td>{{.Profile}}</td>
      <td>{{.Detail}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p>Nothing yet.</p>
  {{end}}
</body>
</html>
`

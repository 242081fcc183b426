package handlers

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>QR Code Generator</title>
  <style>
    body{font-family:Arial,Helvetica,sans-serif; max-width:900px; margin:24px auto; padding:0 16px}
    label{display:block;margin-top:10px}
    input, select{width:100%;padding:8px;margin-top:6px}
    button{padding:10px 14px;margin-top:12px}
    .row{display:flex;gap:10px}
    .col{flex:1}
    .error{color:#b00020}
    img{margin-top:12px;max-width:100%}
    footer{margin-top:18px;color:#666;font-size:13px}
  </style>
</head>
<body>
  <h2>QR Code Generator</h2>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form method="post" action="/generate" enctype="multipart/form-data">
    <label>Text or URL</label>
    <input name="data" required placeholder="https://example.com or some text">

    <div class="row">
      <div class="col">
        <label>Box size (px)</label>
        <input name="box_size" type="number" value="10" min="1" max="50">
      </div>
      <div class="col">
        <label>Border (boxes)</label>
        <input name="border" type="number" value="4" min="0" max="20">
      </div>
    </div>

    <label>Error correction</label>
    <select name="ec">
      <option value="M" selected>M (15%)</option>
      <option value="L">L (7%)</option>
      <option value="Q">Q (25%)</option>
      <option value="H">H (30%)</option>
    </select>

    <div class="row">
      <div class="col">
        <label>Foreground color (hex)</label>
        <input name="fg" placeholder="#000000" value="#000000">
      </div>
      <div class="col">
        <label>Background color (hex)</label>
        <input name="bg" placeholder="#ffffff" value="#ffffff">
      </div>
    </div>

    <label>Optional logo (center). PNG/JPG/GIF/WEBP. Max 2MB</label>
    <input type="file" name="logo">

    <label>Filename (optional)</label>
    <input name="filename" placeholder="qrcode.png">

    <button type="submit">Generate</button>
  </form>

  {{if .ImgURL}}
    <h3>Result</h3>
    <img src="{{.ImgURL}}" alt="QR">
    <p><a href="/download/{{.Record.Slug}}">Download PNG</a></p>
  {{end}}

  <footer>
    <a href="/records">View saved records</a>
  </footer>
</body>
</html>`

const recordsHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Saved Records</title>
  <style>
    body{font-family:Arial,Helvetica,sans-serif; max-width:900px; margin:24px auto; padding:0 16px}
    table{width:100%;border-collapse:collapse;margin-top:18px}
    th,td{padding:8px;border:1px solid #ddd;text-align:left;font-size:14px}
    td.data{max-width:300px;word-break:break-word}
  </style>
</head>
<body>
  <h2>Saved Records</h2>
  <table>
    <tr><th>Slug</th><th>Data</th><th>Image</th><th>Downloads</th><th>Logo</th><th>Created</th></tr>
    {{range .Records}}
    <tr>
      <td>{{.Slug}}</td>
      <td class="data">{{.Data}}</td>
      <td><a href="/view/{{.Slug}}">View</a> | <a href="/download/{{.Slug}}">Download</a></td>
      <td>{{.DownloadCount}}</td>
      <td>{{if .LogoPath}}Yes{{else}}No{{end}}</td>
      <td>{{.CreatedAt.Format "2006-01-02 15:04:05"}}</td>
    </tr>
    {{end}}
  </table>
  <p><a href="/">Back</a></p>
</body>
</html>`

// LoadTemplates registers the inline HTML templates on the router.
func LoadTemplates(r *gin.Engine) {
	t := template.Must(template.New("index.html").Parse(indexHTML))
	template.Must(t.New("records.html").Parse(recordsHTML))
	r.SetHTMLTemplate(t)
}

package serverapp

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const statusHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>HRIS</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 40rem; margin: 4rem auto; color: #222; }
    code { background: #f2f2f2; padding: 0.15rem 0.35rem; border-radius: 4px; }
    li { margin: 0.4rem 0; }
  </style>
</head>
<body>
  <h1>HRIS</h1>
  <p>The API server is up. Useful places:</p>
  <ul>
    <li><code>GET /healthz</code> liveness</li>
    <li><code>GET /readyz</code> storage readiness</li>
    <li><code>POST /api/auth/login</code> start a session</li>
    <li><code>GET /api/routes</code> full route listing (needs a session)</li>
  </ul>
</body>
</html>
`

// StatusPage is the root landing page. It is deliberately static; the
// dashboard UI itself is served separately.
func StatusPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, statusHTML)
		return err
	})
}

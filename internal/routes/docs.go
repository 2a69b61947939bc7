package routes

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/config"
)

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      color-scheme: light;
      --bg: #f6f7f4;
      --panel: #ffffff;
      --text: #132019;
      --muted: #536258;
      --accent: #1f6f4a;
      --border: #d8ddd6;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: ui-sans-serif, system-ui, -apple-system, "Segoe UI", sans-serif;
      background: var(--bg);
      color: var(--text);
    }
    main { max-width: 960px; margin: 0 auto; padding: 32px 20px 56px; }
    h1 { margin: 0 0 4px; font-size: 28px; }
    p { color: var(--muted); margin: 0 0 24px; }
    table { width: 100%; border-collapse: collapse; background: var(--panel); border: 1px solid var(--border); }
    th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid var(--border); }
    th { font-size: 13px; text-transform: uppercase; letter-spacing: .04em; color: var(--muted); }
    code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }
    .tier-admin { color: #9f1239; }
    .tier-protected { color: var(--accent); }
  </style>
</head>
<body>
  <main>
    <h1>{{ .Title }}</h1>
    <p>Queries are GET /api/trpc/&lt;name&gt;?input=&lt;json&gt;. Mutations are POST with a JSON body. Loaded {{ .LoadedAt }}.</p>
    <table>
      <thead><tr><th>Procedure</th><th>Kind</th><th>Access</th></tr></thead>
      <tbody>
      {{- range .Procedures }}
        <tr><td><code>{{ .Name }}</code></td><td>{{ .Kind }}</td><td class="tier-{{ .Tier }}">{{ .Tier }}</td></tr>
      {{- end }}
      </tbody>
    </table>
  </main>
</body>
</html>
`

type docsPageData struct {
	Title      string
	LoadedAt   string
	Procedures []Procedure
}

// registerDocsRoutes serves the procedure catalogue in development when enabled.
func registerDocsRoutes(app fiber.Router, cfg *config.Config, procedures []Procedure) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	indexTemplate, err := template.New("docs-index").Parse(docsIndexHTML)
	if err != nil {
		return fmt.Errorf("parse docs template: %w", err)
	}

	pageData := docsPageData{
		Title:      "Fitness Challenge API",
		LoadedAt:   time.Now().UTC().Format(time.RFC3339),
		Procedures: procedures,
	}

	indexHandler := func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; base-uri 'none'; form-action 'none'; frame-ancestors 'none'")

		var body bytes.Buffer
		if err := indexTemplate.Execute(&body, pageData); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render api docs")
		}

		return c.Status(fiber.StatusOK).Send(body.Bytes())
	}

	app.Get("/docs", indexHandler)
	app.Get("/docs/", indexHandler)
	app.Get("/docs/procedures.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		return c.JSON(fiber.Map{"procedures": procedures})
	})

	return nil
}

func applyDocsBaseHeaders(c *fiber.Ctx, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set("Cross-Origin-Resource-Policy", "same-origin")
	c.Set("Cross-Origin-Opener-Policy", "same-origin")
}

package site

import "html/template"

// The generated pages are deliberately plain: static HTML, one shared
// stylesheet, no scripts. The HTML Help viewer renders them with an old
// engine, so the markup stays conservative.
const pageTemplates = `
{{define "head"}}<!doctype html>
<html lang="zh-CN">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css" />
</head>
<body>
{{end}}{{define "foot"}}</body>
</html>
{{end}}{{define "index"}}{{template "head" .}}<h1>{{.Title}}</h1>
<p class="meta">按左侧目录选择分类，或从下方进入。</p>
<ul>
{{range .Items}}  <li><a href="{{.Href}}">{{.Name}}</a>（{{.Groups}} 组）</li>
{{end}}</ul>
{{template "foot" .}}{{end}}{{define "category"}}{{template "head" .}}<h1>{{.Title}}</h1>
<p class="meta">包含 {{len .Items}} 个子类。</p>
<ul>
{{range .Items}}  <li><a href="{{.Href}}">{{.Name}}</a>（{{.Groups}} 组）</li>
{{end}}</ul>
{{template "foot" .}}{{end}}{{define "subcategory"}}{{template "head" .}}<h1>{{.Title}}</h1>
<p class="meta">所属：<a href="{{.Parent.Href}}">{{.Parent.Name}}</a></p>
<ul>
{{range .Links}}  <li><a href="{{.Href}}">{{.Name}}</a></li>
{{end}}</ul>
{{template "foot" .}}{{end}}{{define "group"}}{{template "head" .}}<h1>{{.Title}}</h1>
<p class="meta">所属：<a href="{{.Category.Href}}">{{.Category.Name}}</a> / <a href="{{.Subcategory.Href}}">{{.Subcategory.Name}}</a></p>
<pre class="entries">{{.Block}}</pre>
{{template "foot" .}}{{end}}`

var pages = template.Must(template.New("pages").Parse(pageTemplates))

// styleCSS is the single shared stylesheet.
const styleCSS = `:root { color-scheme: light; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Arial, "Noto Sans SC", "Microsoft YaHei", sans-serif; margin: 20px; line-height: 1.5; }
a { color: #0b57d0; text-decoration: none; }
a:hover { text-decoration: underline; }
h1 { font-size: 22px; margin: 0 0 10px; }
.meta { color: #555; margin: 0 0 14px; }
pre.entries { background: #f6f8fa; border: 1px solid #e5e7eb; border-radius: 8px; padding: 12px; white-space: pre-wrap; }
ul { margin: 8px 0 0 18px; }
li { margin: 4px 0; }
`

// link is a resolved reference to another page.
type link struct {
	Href string
	Name string
}

// countedLink is a link annotated with how many groups sit below it.
type countedLink struct {
	Href   string
	Name   string
	Groups int
}

type listPage struct {
	Title string
	Items []countedLink
}

type subcategoryPage struct {
	Title  string
	Parent link
	Links  []link
}

type groupPage struct {
	Title       string
	Category    link
	Subcategory link
	Block       string
}

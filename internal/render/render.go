package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
)

// Document is everything the formatter needs to lay out one consultation
// reply. Any field may be empty; missing data degrades to smaller output.
type Document struct {
	Recomendacoes []model.Recommendation
	Lojas         []model.Retailer
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("consulta").Funcs(template.FuncMap{
		"posicao": func(i int) string { return fmt.Sprintf("%dº", i+1) },
	}).Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(doc Document) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, doc); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return sb.String(), nil
}

const documentTemplate = `<div class="consulta-resultado">
<p>Boa! Dei uma olhada cuidadosa nas opções e separei as que mais combinam com o que você procura: 🎯</p>
{{- range $i, $rec := .Recomendacoes}}
<div class="recomendacao">
<h3>{{posicao $i}} <strong>{{$rec.Nome}}</strong>{{if $rec.NotaEstimada}} <span class="nota">nota {{printf "%.1f" $rec.NotaEstimada}}</span>{{end}}</h3>
{{- if $rec.Beneficios}}
<ul>
{{- range $rec.Beneficios}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- if $rec.PrecosReferencia}}
<p class="precos">Preços de referência: {{range $j, $p := $rec.PrecosReferencia}}{{if $j}} · {{end}}{{$p.Loja}}: {{$p.Preco}}{{end}}</p>
{{- end}}
</div>
{{- end}}
{{- if .Lojas}}
<p>Onde comprar com segurança:</p>
<ul class="lojas">
{{- range .Lojas}}
<li><a href="{{.URL}}" target="_blank" rel="noopener">{{.Nome}}</a></li>
{{- end}}
</ul>
{{- end}}
<p>Espero ter ajudado! Os links acima são de lojas parceiras, e comprando por eles você apoia o nosso trabalho. 😉</p>
</div>`

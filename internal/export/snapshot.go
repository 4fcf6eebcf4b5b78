package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sukalov/periodiclyrics/internal/player"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

var snapshotTemplate = template.Must(template.New("frame").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<div class="line">
{{- range .Words}}
<div class="word">
{{- range .}}
{{- if eq .Kind "emoji"}}<span class="emoji" title="{{.Word}}">{{.Emoji}}</span>
{{- else}}<span class="tile {{.Element.Category}}" title="{{.Element.Name}}"><small>{{if .Element.AtomicNumber}}{{.Element.AtomicNumber}}{{end}}</small>{{.Text}}</span>
{{- end}}
{{- end}}
</div>
{{- end}}
</div>
</body>
</html>
`))

// Snapshot renders the visual state of a frame as a standalone HTML page.
// The output depends only on the frame's line, so equal lines give equal
// bytes regardless of the frame time.
func Snapshot(f player.Frame) ([]byte, error) {
	data := struct {
		Title string
		Words [][]tokenizer.Item
	}{
		Words: tokenizer.GroupWords(f.Items),
	}
	if f.Line != nil {
		data.Title = f.Line.Text
	}

	var buf bytes.Buffer
	if err := snapshotTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("error rendering snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

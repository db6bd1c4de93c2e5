package render

import (
	"bytes"
	"html/template"
)

// DefaultOGWish is drawn when the image is requested without a wish.
const DefaultOGWish = "Daily Wishes - Personalized Daily Inspiration"

// OGView is the text drawn on the image card.
type OGView struct {
	Wish   string
	Stats  string
	Thanks string
}

type ogLine struct {
	Y    int
	Text string
}

type ogLayout struct {
	WishLines []ogLine
	Thanks    string
	ThanksY   int
	DividerY  int
	Stats     string
	StatsY    int
}

func layoutOG(v OGView) ogLayout {
	wish := v.Wish
	if wish == "" {
		wish = DefaultOGWish
	}
	lines := WrapText(wish, WishLineWidth)
	l := ogLayout{Thanks: v.Thanks, Stats: v.Stats}
	for i, text := range lines {
		l.WishLines = append(l.WishLines, ogLine{Y: 180 + i*36, Text: text})
	}
	block := len(lines) * 36
	if v.Thanks != "" {
		l.ThanksY = 220 + block + 40
		l.DividerY = 270 + block + 60
		l.StatsY = 300 + block + 80
	} else {
		l.DividerY = 240 + block + 40
		l.StatsY = 270 + block + 60
	}
	return l
}

const ogDefs = `<defs>
    <linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#667eea;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#764ba2;stop-opacity:1" />
    </linearGradient>
  </defs>
  <rect width="800" height="800" fill="url(#bg)" />`

var ogTemplate = template.Must(template.New("og").Parse(`<svg width="800" height="800" xmlns="http://www.w3.org/2000/svg">
  ` + ogDefs + `
  <text x="400" y="80" font-family="Arial, sans-serif" font-size="32" fill="white" text-anchor="middle" font-weight="bold">✨ Daily Wish ✨</text>
{{- range .WishLines}}
  <text x="400" y="{{.Y}}" font-family="Arial, sans-serif" font-size="24" fill="white" text-anchor="middle" font-style="italic">{{.Text}}</text>
{{- end}}
{{- if .Thanks}}
  <text x="400" y="{{.ThanksY}}" font-family="Arial, sans-serif" font-size="28" fill="#FFD700" text-anchor="middle" font-weight="bold">{{.Thanks}}</text>
{{- end}}
  <rect x="150" y="{{.DividerY}}" width="500" height="2" fill="white" opacity="0.5" />
  <text x="400" y="{{.StatsY}}" font-family="Arial, sans-serif" font-size="22" fill="white" text-anchor="middle">{{.Stats}}</text>
</svg>
`))

var fallbackOG = []byte(`<svg width="800" height="800" xmlns="http://www.w3.org/2000/svg">
  ` + ogDefs + `
  <text x="400" y="400" font-family="Arial, sans-serif" font-size="32" fill="white" text-anchor="middle" font-weight="bold">Daily Wishes</text>
</svg>
`)

// OGImage renders the 800x800 SVG card.
func OGImage(v OGView) ([]byte, error) {
	var buf bytes.Buffer
	if err := ogTemplate.Execute(&buf, layoutOG(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FallbackOGImage is served when OGImage fails.
func FallbackOGImage() []byte {
	out := make([]byte, len(fallbackOG))
	copy(out, fallbackOG)
	return out
}

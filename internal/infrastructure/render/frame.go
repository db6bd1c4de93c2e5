package render

import (
	"bytes"
	"html/template"
	"net/url"
)

// ThankYouText is shown on the image after a vote was cast.
const ThankYouText = "Thank you!"

// FrameView is the data of one frame page.
type FrameView struct {
	BaseURL      string
	WishText     string
	StatsText    string
	HasVoted     bool
	ShowThankYou bool
}

// ImageURL points the frame at the image card for this view.
func (v FrameView) ImageURL() string {
	q := url.Values{}
	q.Set("wish", v.WishText)
	q.Set("stats", v.StatsText)
	thanks := ""
	if v.ShowThankYou {
		thanks = ThankYouText
	}
	q.Set("thanks", thanks)
	return v.BaseURL + "/api/og?" + q.Encode()
}

// PostURL is where the vote buttons submit to.
func (v FrameView) PostURL() string {
	return v.BaseURL + "/api/vote"
}

var frameTemplate = template.Must(template.New("frame").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Daily Wish</title>
    <meta property="og:title" content="Daily Wish" />
    <meta property="og:image" content="{{.ImageURL}}" />
    <meta property="fc:frame" content="vNext" />
    <meta property="fc:frame:image" content="{{.ImageURL}}" />
{{- if .HasVoted}}
    <meta property="fc:frame:button:1" content="✓ Voted Today" />
{{- else}}
    <meta property="fc:frame:button:1" content="👍 Like" />
    <meta property="fc:frame:button:1:action" content="post" />
    <meta property="fc:frame:button:2" content="👎 Dislike" />
    <meta property="fc:frame:button:2:action" content="post" />
    <meta property="fc:frame:post_url" content="{{.PostURL}}" />
{{- end}}
</head>
<body>
    <h1>Daily Wish</h1>
    <p>{{.WishText}}</p>
    <p>{{.StatsText}}</p>
{{- if .ShowThankYou}}
    <p>Thank you for voting! 🎉</p>
{{- end}}
</body>
</html>
`))

// FrameHTML renders the frame page.
func FrameHTML(v FrameView) ([]byte, error) {
	var buf bytes.Buffer
	if err := frameTemplate.Execute(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

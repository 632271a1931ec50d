// Package embed turns a fetched tweet into the blockquote fragment that the
// Twitter widget script upgrades into a rich embed.
package embed

import (
	"strings"
	"text/template"

	"github.com/orgball2608/tweet-embed/internal/domain"
	"github.com/orgball2608/tweet-embed/pkg/config"
	"golang.org/x/net/html"
)

const (
	DateLayout  = "Jan 02, 2006"
	WidgetsJS   = "https://platform.twitter.com/widgets.js"
	DefaultLang = "en"
)

// Text and author fields are interpolated as-is unless escaping is enabled.
var fragment = template.Must(template.New("tweet").Parse(
	`<blockquote class="twitter-tweet" data-lang="{{.Lang}}">
    <p lang="{{.Lang}}" dir="ltr">{{.Text}}</p>&mdash; {{.Name}} (@{{.Username}})
    <a href="{{.Permalink}}">{{.Date}}</a>
</blockquote>
<script async src="` + WidgetsJS + `" charset="utf-8"></script>
`))

type fragmentData struct {
	Lang      string
	Text      string
	Name      string
	Username  string
	Permalink string
	Date      string
}

type Renderer struct {
	escapeHTML bool
	lang       string
}

func New(cfg *config.Config) *Renderer {
	lang := cfg.Embed.Lang
	if lang == "" {
		lang = DefaultLang
	}
	return &Renderer{
		escapeHTML: cfg.Embed.EscapeHTML,
		lang:       lang,
	}
}

// Render builds the fragment for tweet. tweetID is the identifier the caller
// asked for and is used in the permalink. The "lang" option overrides the
// configured language.
func (r *Renderer) Render(tweet *domain.Tweet, tweetID string, options map[string]string) (string, error) {
	lang := r.lang
	if l := options["lang"]; l != "" {
		lang = l
	}

	data := fragmentData{
		Lang:      lang,
		Text:      tweet.Text,
		Name:      tweet.Author.Name,
		Username:  tweet.Author.Username,
		Permalink: tweet.Permalink(tweetID),
		Date:      tweet.CreatedAt.Format(DateLayout),
	}
	if r.escapeHTML {
		data.Lang = html.EscapeString(data.Lang)
		data.Text = html.EscapeString(data.Text)
		data.Name = html.EscapeString(data.Name)
		data.Username = html.EscapeString(data.Username)
		data.Permalink = html.EscapeString(data.Permalink)
	}

	var sb strings.Builder
	if err := fragment.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

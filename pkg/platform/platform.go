package platform

import (
	"sort"
	"strings"
)

// Key identifies a social platform.
type Key string

const (
	Instagram Key = "instagram"
	X         Key = "x"
	Facebook  Key = "facebook"
	LinkedIn  Key = "linkedin"
	TikTok    Key = "tiktok"
	YouTube   Key = "youtube"
	GitHub    Key = "github"
	Custom    Key = "custom"
)

// Descriptor describes how profile links are built for a platform.
type Descriptor struct {
	Key     Key
	Name    string
	Prefix  string
	BaseURL string
	Icon    *Icon
}

// HasLogo reports whether a logo badge is overlaid for this platform.
func (d *Descriptor) HasLogo() bool {
	return d != nil && d.Key != Custom && d.Icon != nil
}

var registry = map[Key]Descriptor{
	Instagram: {Key: Instagram, Name: "Instagram", Prefix: "@", BaseURL: "https://instagram.com/", Icon: instagramIcon},
	X:         {Key: X, Name: "X (Twitter)", Prefix: "@", BaseURL: "https://x.com/", Icon: xIcon},
	Facebook:  {Key: Facebook, Name: "Facebook", Prefix: "", BaseURL: "https://facebook.com/", Icon: facebookIcon},
	LinkedIn:  {Key: LinkedIn, Name: "LinkedIn", Prefix: "", BaseURL: "https://linkedin.com/in/", Icon: linkedinIcon},
	TikTok:    {Key: TikTok, Name: "TikTok", Prefix: "@", BaseURL: "https://tiktok.com/@", Icon: tiktokIcon},
	YouTube:   {Key: YouTube, Name: "YouTube", Prefix: "@", BaseURL: "https://youtube.com/@", Icon: youtubeIcon},
	GitHub:    {Key: GitHub, Name: "GitHub", Prefix: "", BaseURL: "https://github.com/", Icon: githubIcon},
	Custom:    {Key: Custom, Name: "Custom URL"},
}

var aliases = map[string]Key{
	"twitter": X,
	"ig":      Instagram,
	"fb":      Facebook,
	"gh":      GitHub,
	"yt":      YouTube,
}

// Lookup finds a platform by key or alias, case-insensitively.
func Lookup(key string) (*Descriptor, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := aliases[k]; ok {
		k = string(alias)
	}
	d, ok := registry[Key(k)]
	if !ok {
		return nil, false
	}
	return &d, true
}

// All returns every registered platform ordered by key, custom last.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		if d.Key != Custom {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return append(out, registry[Custom])
}

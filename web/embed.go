package web

import (
	"embed"
	"io/fs"
)

// files holds the static assets and the landing page copy. The patterns are
// relative to this file's directory.
//
//go:embed static content
var files embed.FS

// ContentFile is the path of the landing page document inside Content.
const ContentFile = "site.yaml"

// Static returns the asset tree rooted at web/static.
func Static() fs.FS {
	return mustSub("static")
}

// Content returns the copy documents rooted at web/content.
func Content() fs.FS {
	return mustSub("content")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

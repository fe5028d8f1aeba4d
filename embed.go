package oyifa

import "embed"

// EmbeddedAssets contains static assets shipped with the app: site.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

package res

import "embed"

//go:embed templates
var Templates embed.FS

//go:embed static
var Static embed.FS

// All holds templates and static files for installation into a resource
// directory.
//
//go:embed templates static
var All embed.FS

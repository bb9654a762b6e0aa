// Package templates holds the embedded project templates and maps them to scaffold layouts.
package templates

// Template describes a project template.
type Template struct {
	// Name is the template identifier.
	Name string

	// Description explains the template's purpose.
	Description string

	// SourceRoot is the version-prefixed source directory, e.g. "v1/src".
	SourceRoot string

	// Directories are relative to SourceRoot.
	Directories []string

	// Assets are written in this order.
	Assets []Asset
}

// Asset is a single embedded file of a template.
type Asset struct {
	// ID is the semantic identifier and the embedded file's base name.
	ID string

	// Target is the output path, relative to the project root.
	Target string

	// Description is shown next to the file in tree output.
	Description string
}

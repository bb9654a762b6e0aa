package templates

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// DefaultTemplateName is the template used when none is specified.
const DefaultTemplateName = "express"

// templates is the internal registry of available templates.
var templates = map[string]Template{
	"express": {
		Name:        "express",
		Description: "Express + Mongoose REST API skeleton",
		SourceRoot:  "v1/src",
		Directories: []string{
			"config",
			"controllers",
			"loaders",
			"logs",
			"middlewares",
			"models",
			"routes",
			"scripts/events",
			"scripts/logger",
			"scripts/utils",
			"services",
			"validations",
		},
		Assets: []Asset{
			{ID: "env", Target: ".env", Description: "Environment variables"},
			{ID: "app", Target: "v1/src/app.js", Description: "Application bootstrap"},
			{ID: "config-server", Target: "v1/src/config/server.js", Description: "dotenv loader"},
			{ID: "config-index", Target: "v1/src/config/index.js", Description: "Configuration entry"},
			{ID: "loader-db", Target: "v1/src/loaders/dbExample.js", Description: "MongoDB connection"},
			{ID: "loader-index", Target: "v1/src/loaders/index.js", Description: "Loader entry"},
			{ID: "model", Target: "v1/src/models/ExampleModel.js", Description: "Mongoose model"},
			{ID: "route", Target: "v1/src/routes/exampleRoute.js", Description: "Route definitions"},
			{ID: "service", Target: "v1/src/services/exampleService.js", Description: "Service layer"},
			{ID: "controller", Target: "v1/src/controllers/exampleController.js", Description: "Controller layer"},
			{ID: "error-response", Target: "v1/src/scripts/utils/ExampleErrorResponse.js", Description: "Error response type"},
			{ID: "error-middleware", Target: "v1/src/middlewares/exampleError.js", Description: "Error handling middleware"},
			{ID: "manifest", Target: "package.json", Description: "Project manifest"},
		},
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// IsValidTemplate checks if a template name is registered.
func IsValidTemplate(name string) bool {
	_, ok := templates[name]
	return ok
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}

// Names returns all template names, sorted.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all available templates, sorted by name.
func List() []Template {
	list := make([]Template, 0, len(templates))
	for _, name := range Names() {
		list = append(list, templates[name])
	}
	return list
}

// DirectoryPaths returns the template directories prefixed with SourceRoot.
func (t Template) DirectoryPaths() []string {
	dirs := make([]string, len(t.Directories))
	for i, d := range t.Directories {
		dirs[i] = path.Join(t.SourceRoot, d)
	}
	return dirs
}

// Describe returns the description of the asset targeting p, if any.
func (t Template) Describe(p string) string {
	for _, a := range t.Assets {
		if a.Target == p {
			return a.Description
		}
	}
	return ""
}

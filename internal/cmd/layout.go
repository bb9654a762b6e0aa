package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/expresskit/cli/internal/cmdtypes"
	"github.com/expresskit/cli/internal/cmdutil"
	"github.com/expresskit/cli/internal/output"
	"github.com/expresskit/cli/internal/templates"
)

// layoutDoc is the machine-readable form of a template layout.
type layoutDoc struct {
	Template    string       `json:"template" yaml:"template"`
	Directories []string     `json:"directories" yaml:"directories"`
	Files       []layoutFile `json:"files" yaml:"files"`
}

type layoutFile struct {
	Path        string `json:"path" yaml:"path"`
	Asset       string `json:"asset" yaml:"asset"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Size        int    `json:"size" yaml:"size"`
}

// NewLayoutCmd creates the layout command.
func NewLayoutCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		tf   cmdutil.TemplateFlags
		of   cmdutil.OutputFlags
		list bool
	)

	c := &cobra.Command{
		Use:   "layout",
		Short: "Show the files a template creates",
		Long: `Show the directories and files a template creates, without touching
the filesystem.

Examples:
  # Show the default template as a tree
  expresskit layout

  # Machine-readable output
  expresskit layout -o json

  # List the available templates
  expresskit layout --list`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if list {
				return runLayoutList()
			}
			return runLayout(&tf, &of)
		},
	}

	tf.AddTo(c)
	of.AddTo(c)
	c.Flags().BoolVar(&list, "list", false, "List the available templates")

	return c
}

func runLayout(tf *cmdutil.TemplateFlags, of *cmdutil.OutputFlags) error {
	tmpl, err := tf.Resolve()
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err}
	}

	format, err := of.Parse()
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err}
	}

	doc, err := buildLayoutDoc(tmpl)
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}

	switch format {
	case output.FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling layout: %w", err)
		}
		output.Print(string(data))
	case output.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling layout: %w", err)
		}
		output.Println(string(data))
	case output.FormatTable:
		tbl := output.NewTable("KIND", "PATH", "ASSET", "DESCRIPTION")
		for _, d := range doc.Directories {
			tbl.Row("dir", d, "", "")
		}
		for _, f := range doc.Files {
			tbl.Row("file", f.Path, f.Asset, f.Description)
		}
		output.Println(tbl.String())
	default:
		entries := make([]output.TreeEntry, 0, len(doc.Directories)+len(doc.Files))
		for _, d := range doc.Directories {
			entries = append(entries, output.TreeEntry{Path: d, IsDir: true})
		}
		for _, f := range doc.Files {
			entries = append(entries, output.TreeEntry{Path: f.Path, Description: f.Description})
		}
		output.Print(output.RenderTree(".", entries))
		output.Println(output.StyleDim.Render(fmt.Sprintf("%d directories, %d files (%s)",
			len(doc.Directories), len(doc.Files), strings.TrimSpace(tmpl.Description))))
	}

	return nil
}

func runLayoutList() error {
	tbl := output.NewTable("NAME", "DESCRIPTION", "DIRECTORIES", "FILES")
	for _, t := range templates.List() {
		tbl.Row(t.Name, t.Description, fmt.Sprint(len(t.Directories)), fmt.Sprint(len(t.Assets)))
	}
	output.Println(tbl.String())
	return nil
}

func buildLayoutDoc(tmpl templates.Template) (*layoutDoc, error) {
	doc := &layoutDoc{
		Template:    tmpl.Name,
		Directories: tmpl.DirectoryPaths(),
		Files:       make([]layoutFile, 0, len(tmpl.Assets)),
	}
	for _, a := range tmpl.Assets {
		content, err := templates.Content(tmpl.Name, a.ID)
		if err != nil {
			return nil, err
		}
		doc.Files = append(doc.Files, layoutFile{
			Path:        a.Target,
			Asset:       a.ID,
			Description: a.Description,
			Size:        len(content),
		})
	}
	return doc, nil
}

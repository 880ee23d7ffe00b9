// Package templates manages the writing-prompt catalog and the persisted
// selection: list, select (flag-driven or interactive), create, and show.
package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/template"
)

// List prints the catalog, marking the persisted selection.
type List struct {
	Catalog     *template.Catalog
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list templates, no persistence")
	}
	catalog := n.Catalog
	if catalog == nil {
		catalog = template.NewCatalog()
	}

	selected, ok, err := n.Persistence.GetSelected(ctx)
	if err != nil {
		return err
	}
	if !ok {
		selected = template.Default()
	}

	pp := printers.PrettyPrint{}
	pp.Title("Journal Templates")

	t := color.New()
	mark := color.New(color.Bold, color.FgHiGreen)
	faint := color.New(color.Faint)
	for _, tmpl := range catalog.All() {
		if tmpl.ID == selected.ID {
			_, _ = mark.Printf("✔ %s", tmpl.Title)
		} else {
			_, _ = t.Printf("  %s", tmpl.Title)
		}
		_, _ = faint.Printf("  (%d)\n", tmpl.ID)
	}
	_, _ = t.Println("")
	return nil
}

// Select persists a new template choice. With no ID set it prompts
// interactively.
type Select struct {
	ID          int64
	Catalog     *template.Catalog
	Persistence store.Persistence
}

func (n *Select) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not select template, no persistence")
	}
	catalog := n.Catalog
	if catalog == nil {
		catalog = template.NewCatalog()
	}

	var chosen template.Template
	if n.ID != 0 {
		t, ok := catalog.Find(n.ID)
		if !ok {
			return fmt.Errorf("no template with id %d", n.ID)
		}
		chosen = t
	} else {
		t, err := prompt(catalog.All())
		if err != nil {
			return err
		}
		chosen = t
	}

	if err := n.Persistence.SetSelected(chosen); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("%q will be used for your next entry", chosen.Title))
	return nil
}

func prompt(all []template.Template) (template.Template, error) {
	sel := promptui.Select{
		Label: "Templates",
		Items: all,
		Templates: &promptui.SelectTemplates{
			Active:   "➜ {{ .Title }}",
			Inactive: "  {{ .Title }}",
			Selected: "➜ {{ .Title }}",
			Details:  "{{ .Content }}",
		},
		HideHelp: true,
	}
	i, _, err := sel.Run()
	if err != nil {
		return template.Template{}, err
	}
	return all[i], nil
}

// Create adds a custom template to the session catalog and selects it.
type Create struct {
	Title   string
	Content string

	Catalog     *template.Catalog
	Persistence store.Persistence
}

func (n *Create) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not create template, no persistence")
	}
	catalog := n.Catalog
	if catalog == nil {
		catalog = template.NewCatalog()
	}

	t, err := catalog.AddCustom(n.Title, n.Content)
	if err != nil {
		return err
	}
	if err := n.Persistence.SetSelected(t); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Created and selected %q (%d)", t.Title, t.ID))
	return nil
}

// Show prints the current selection in full, falling back to the default
// built-in when nothing has ever been selected.
type Show struct {
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show template, no persistence")
	}

	t, ok, err := n.Persistence.GetSelected(ctx)
	if err != nil {
		return err
	}
	if !ok {
		t = template.Default()
	}

	pp := printers.PrettyPrint{}
	pp.Title(t.Title)
	fmt.Println(t.Content)
	fmt.Println("")
	return nil
}

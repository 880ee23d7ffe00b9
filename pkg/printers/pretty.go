package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gratitude/pkg/entry"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171717  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders a list view: one row per entry with its day heading, a
// one-line preview, and an image marker when a payload is attached.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	for _, e := range entries {
		marker := ""
		if e.HasImage() {
			marker = "▣"
		}
		if pp.ShowID {
			tbl.AddRow(fmt.Sprintf("%d", e.ID), e.Title(), e.Preview(60), marker)
		} else {
			tbl.AddRow(e.Title(), e.Preview(60), marker)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Entry renders the full body of one entry.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	if e == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	pp.Title(e.Title())
	t := color.New()
	_, _ = t.Println(e.Text)
	if e.HasImage() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("(image attached, %d bytes encoded)\n", len(e.Image))
	}
	_, _ = t.Println("")
}

// Streak renders the consecutive-day count the dashboard leads with.
func (pp *PrettyPrint) Streak(days int) {
	n := color.New(color.Bold, color.FgHiGreen)
	c := color.New(color.Faint)

	_, _ = n.Printf("%d", days)
	switch days {
	case 1:
		_, _ = c.Println(" day streak")
	default:
		_, _ = c.Println(" days streak")
	}
}

// Page renders the list-view pagination footer.
func (pp *PrettyPrint) Page(page, pages int) {
	c := color.New(color.Faint)
	_, _ = c.Printf("page %d / %d\n", page, pages)
}

// Package add creates a journal entry, optionally seeded from the selected
// template and carrying an encoded image payload.
package add

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/stats"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/template"
)

type Add struct {
	Text         string
	ImagePath    string
	FromTemplate bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	text := n.Text
	if n.FromTemplate {
		prefix, err := n.selectedContent(ctx)
		if err != nil {
			return err
		}
		if text == "" {
			text = prefix
		} else {
			text = prefix + "\n\n" + text
		}
	}

	image := ""
	if n.ImagePath != "" {
		encoded, err := encodeImage(n.ImagePath)
		if err != nil {
			return err
		}
		image = encoded
	}

	e, err := n.Persistence.Create(ctx, text, image)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Entry(e)

	all := n.Persistence.ListAll(ctx)
	pp.Streak(stats.Streak(all, time.Now()))

	return nil
}

// selectedContent resolves the template body to prefill with: the stored
// selection when one exists, the default built-in otherwise.
func (n *Add) selectedContent(ctx context.Context) (string, error) {
	t, ok, err := n.Persistence.GetSelected(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		t = template.Default()
	}
	return t.Content, nil
}

// encodeImage reads the file and wraps it in a data URL so the entry stays a
// single self-contained JSON record.
func encodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("add: read image: %w", err)
	}
	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

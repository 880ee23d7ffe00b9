// Package template holds the writing-prompt catalog and the prompt type
// shared by the stores and the CLI.
package template

import "errors"

// ErrInvalidTemplate rejects custom templates missing a title or content.
var ErrInvalidTemplate = errors.New("template: title and content are required")

// Template is a reusable prompt skeleton used to prefill a new entry.
type Template struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Builtin returns the fixed, ordered list of built-in templates. Built-ins
// carry small stable ids and are always present.
func Builtin() []Template {
	return []Template{
		{
			ID:    1,
			Title: "Daily Gratitude",
			Content: "Today, I am grateful for:\n\n" +
				"A challenge I overcame:\n\n" +
				"Something I'm looking forward to:",
		},
		{
			ID:    2,
			Title: "Reflection",
			Content: "Three things that went well today:\n\n" +
				"One thing I learned:\n\n" +
				"How I'll make tomorrow even better:",
		},
		{
			ID:    3,
			Title: "Goal Setting",
			Content: "My main goal for today is:\n\n" +
				"Steps I'll take to achieve it:\n\n" +
				"Potential obstacles and how I'll overcome them:",
		},
	}
}

// Default is the template used when no selection has ever been stored.
func Default() Template {
	return Builtin()[0]
}

// Package sample holds the templates of a small task manager. argp parses
// and documents them to show what the parser does.
package sample

import "github.com/footprint-tools/argp/internal/template"

// Templates returns the global options and top-level subcommands of the task
// manager. Every call builds new templates.
func Templates() ([]*template.Option, []*template.Subcommand) {
	options := []*template.Option{
		{
			Description: "Show help message.",
			ShortNames:  []byte{'h'},
			LongNames:   []string{"help"},
		},
		{
			Description: "Show version information.",
			ShortNames:  []byte{'v'},
			LongNames:   []string{"version"},
		},
		{
			Description: "File for the list of tasks to save and load.",
			ShortNames:  []byte{'f'},
			LongNames:   []string{"file"},
			Params:      []string{"filename"},
			Defaults:    []string{"tasks.txt"},
		},
	}

	subcommands := []*template.Subcommand{
		{
			Description: "Add a task to the tasks list.",
			Names:       []string{"add"},
			Params:      []string{"text"},
		},
		{
			Description: "Remove task(s) from the tasks list.",
			Names:       []string{"remove"},
			Params:      []string{"task index"},
			Variadic:    template.OneOrMore,
		},
		{
			Description: "Automatically remove completed tasks.",
			Names:       []string{"auto-remove", "remove-done"},
		},
		{
			Description: "List task(s) from the tasks list.",
			Names:       []string{"list"},
			Options: []*template.Option{
				{
					Description: "Sort tasks with notes included",
					ShortNames:  []byte{'n'},
					LongNames:   []string{"include-notes"},
				},
				{
					Description: "Filter task by tags",
					ShortNames:  []byte{'f'},
					LongNames:   []string{"filter"},
					Params:      []string{"tags"},
					Variadic:    template.OneOrMore,
				},
				{
					Description: "Sort tasks in specific order (index, priority, completion, ascending, descending, notes, tags)",
					ShortNames:  []byte{'s'},
					LongNames:   []string{"sort"},
					Params:      []string{"key"},
					Defaults:    []string{"priority"},
				},
			},
		},
		{
			Description: "Mark task(s) as done.",
			Names:       []string{"done"},
			Params:      []string{"task index"},
			Variadic:    template.OneOrMore,
		},
		{
			Description: "Unmark task(s) as done.",
			Names:       []string{"undo"},
			Params:      []string{"task index"},
			Variadic:    template.OneOrMore,
		},
		{
			Description: "Edit the task.",
			Names:       []string{"edit"},
			Subcommands: []*template.Subcommand{
				{
					Description: "Edit task's text.",
					Names:       []string{"text"},
					Params:      []string{"task index", "text"},
				},
				{
					Description: "Edit task's priority.",
					Names:       []string{"priority"},
					Params:      []string{"task index", "priority"},
					Defaults:    []string{"0"},
				},
			},
		},
		{
			Description: "Edit notes of the task",
			Names:       []string{"notes"},
			Subcommands: []*template.Subcommand{
				{
					Description: "Add note(s) to the task.",
					Names:       []string{"add"},
					Params:      []string{"task index", "notes"},
					Variadic:    template.OneOrMore,
				},
				{
					Description: "Remove note(s) from the task.",
					Names:       []string{"remove"},
					Params:      []string{"task index", "note index"},
					Variadic:    template.OneOrMore,
				},
				{
					Description: "List notes from the task(s).",
					Names:       []string{"list"},
					Params:      []string{"task index"},
					Variadic:    template.ZeroOrMore,
					Options: []*template.Option{
						{
							Description: "Sort notes in specific order (index, ascending, descending)",
							ShortNames:  []byte{'s'},
							LongNames:   []string{"sort"},
							Params:      []string{"key"},
							Defaults:    []string{"ascending"},
						},
					},
				},
			},
		},
		{
			Description: "Edit tags of the task",
			Names:       []string{"tags"},
			Subcommands: []*template.Subcommand{
				{
					Description: "Add tag(s) to the task.",
					Names:       []string{"add"},
					Params:      []string{"task index", "tags"},
					Variadic:    template.OneOrMore,
				},
				{
					Description: "Remove tag(s) from the task.",
					Names:       []string{"remove"},
					Params:      []string{"task index", "tags"},
					Variadic:    template.OneOrMore,
				},
				{
					Description: "List tags from the task(s).",
					Names:       []string{"list"},
					Params:      []string{"task index"},
					Variadic:    template.ZeroOrMore,
				},
			},
		},
	}

	return options, subcommands
}

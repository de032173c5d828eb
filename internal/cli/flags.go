package cli

import "github.com/footprint-tools/argp/internal/template"

var (
	RootFlags = []*template.Option{
		{
			ShortNames:  []byte{'h'},
			LongNames:   []string{"help"},
			Description: "Show help",
		},
		{
			ShortNames:  []byte{'v'},
			LongNames:   []string{"version"},
			Description: "Show version",
		},
		{
			LongNames:   []string{"no-color"},
			Description: "Disable colored output",
		},
		{
			LongNames:   []string{"no-pager"},
			Description: "Do not use pager for output",
		},
		{
			LongNames:   []string{"pager"},
			Params:      []string{"cmd"},
			Description: "Use specified pager for this command",
		},
	}

	ParseFlags = []*template.Option{
		{
			ShortNames:  []byte{'r'},
			LongNames:   []string{"record"},
			Description: "Record every mismatch instead of failing",
		},
		{
			LongNames:   []string{"strict"},
			Description: "Fail on the first mismatch",
		},
	}

	HelpFlags = []*template.Option{
		{
			ShortNames:  []byte{'m'},
			LongNames:   []string{"microsoft"},
			Description: "Print the sample help with /SWITCH names",
		},
		{
			LongNames:   []string{"indent"},
			Params:      []string{"n"},
			Description: "Indent sample descriptions by n columns",
		},
		{
			LongNames:   []string{"width"},
			Params:      []string{"n"},
			Description: "Wrap sample descriptions at n columns",
		},
	}

	ConfigUnsetFlags = []*template.Option{
		{
			LongNames:   []string{"all"},
			Description: "Delete all the config key=value pairs",
		},
	}
)

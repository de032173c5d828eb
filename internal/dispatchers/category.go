package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryParse                         // Trying the parser: parse, tokens
	CategoryInfo                          // help, version
	CategoryConfig                        // Configuration
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryParse:
		return "try the parser"
	case CategoryInfo:
		return "information"
	case CategoryConfig:
		return "configure argp"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryParse,
	CategoryInfo,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}

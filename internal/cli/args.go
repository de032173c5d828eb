package cli

var (
	ConfigKeyArg = []string{"key"}

	ConfigKeyValueArgs = []string{"key", "value"}

	// HelpTopicArg is a command path such as "config get", or "sample".
	HelpTopicArg = []string{"command"}
)

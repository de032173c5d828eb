package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnrecognizedOption
	ErrUnrecognizedSubcommand
	ErrNotEnoughValues
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidTemplate
	ErrInvalidConfigKey
	ErrInvalidConfigValue
	ErrFailedConfigPath
	ErrUnexpectedArgument
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnrecognizedOption:
		return "unrecognized option"
	case ErrUnrecognizedSubcommand:
		return "unrecognized subcommand"
	case ErrNotEnoughValues:
		return "not enough values"
	case ErrMissingArgument:
		return "missing argument"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrInvalidTemplate:
		return "invalid template"
	case ErrInvalidConfigKey:
		return "invalid config key"
	case ErrInvalidConfigValue:
		return "invalid config value"
	case ErrFailedConfigPath:
		return "failed config path"
	case ErrUnexpectedArgument:
		return "unexpected argument"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: Configuration/system errors
//	  - Unknown errors
//	  - Invalid template
//	  - Invalid config key or value
//	  - Failed config path
//
//	Exit 2: User input errors
//	  - Unrecognized option or subcommand
//	  - Not enough values
//	  - Missing argument
//	  - Unknown command
//	  - Unexpected argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:                1,
	ErrUnrecognizedOption:     2,
	ErrUnrecognizedSubcommand: 2,
	ErrNotEnoughValues:        2,
	ErrMissingArgument:        2,
	ErrUnknownCommand:         2,
	ErrInvalidTemplate:        1,
	ErrInvalidConfigKey:       1,
	ErrInvalidConfigValue:     1,
	ErrFailedConfigPath:       1,
	ErrUnexpectedArgument:     2,
}

// ExitCode returns the process exit code for kind.
func ExitCode(kind ErrorKind) int {
	if code, ok := exitCodes[kind]; ok {
		return code
	}
	return 1
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	return ExitCode(e.Kind)
}

// ExitCoder is implemented by errors that carry their own exit code.
type ExitCoder interface {
	GetExitCode() int
}

var (
	_ error     = (*Error)(nil)
	_ ExitCoder = (*Error)(nil)
	_ ExitCoder = (*ArgumentError)(nil)
	_ error     = (*ArgumentError)(nil)
)

package cli

// Flags holds all command-line flag values
type Flags struct {
	// Global flags
	CfgFile   string
	DBPath    string
	LogLevel  string
	Ephemeral bool
	Output    string

	// translate
	Provider string
	Source   string
	Target   string

	// history export
	ExportFormat string
	ExportOut    string

	// history import
	ImportFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Output:       "text",
		ExportFormat: "csv",
	}
}

package renum

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Batch-rename files with a running, zero-padded index"
	MsgFilesShort      = "Rename explicitly listed files, in the order given"
	MsgGlobShort       = "Rename files selected by a glob pattern"
	MsgGenConfigShort  = "Print the default configuration file"
	MsgGenConfigLong   = "Output the default configuration as commented TOML to stdout, or write it to .renum.toml in the current directory with -w."
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgStaticPatternWarning = "rename pattern %q does not have any dynamic content; this probably isn't what you want!"
	MsgWarningsNotAllowed   = "warning(s) emitted, and --allow-warnings was not specified; bailing"
	MsgConfigWritten        = "Written config file to %s\n"
	MsgConfigExists         = "Config file %s already exists, skipping\n"

	// Error messages
	MsgErrParsePattern = "failed to parse rename pattern"
	MsgErrSelectFiles  = "failed to select files"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagGo            = "Actually rename files, instead of performing a dry run"
	MsgFlagAllowWarnings = "Execute renaming even if there are warnings of likely unintended behavior"
	MsgFlagOrder         = "The order in which selected files are renamed (sequential, zigzag)"
	MsgFlagNoLock        = "Skip the run lock that keeps concurrent renum runs apart"
	MsgFlagFormat        = "Output format (auto, term, text)"
	MsgFlagSortBy        = "How glob matches are sorted before renaming (lexicographical, discovered)"
	MsgFlagWrite         = "Write config to ./.renum.toml instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/files-long.txt
	msgFilesLongRaw string
	MsgFilesLong    = strings.TrimSpace(msgFilesLongRaw)

	//go:embed msgs/files-example.txt
	msgFilesExampleRaw string
	MsgFilesExample    = strings.TrimSpace(msgFilesExampleRaw)

	//go:embed msgs/glob-long.txt
	msgGlobLongRaw string
	MsgGlobLong    = strings.TrimSpace(msgGlobLongRaw)

	//go:embed msgs/glob-example.txt
	msgGlobExampleRaw string
	MsgGlobExample    = strings.TrimSpace(msgGlobExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)

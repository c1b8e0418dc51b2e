package mmv

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootUse         = "mmv [flags] SOURCE TARGET"
	MsgRootShort       = "Rename many files at once with wildcard patterns"
	MsgGenConfigShort  = "Print the effective configuration as TOML"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagForce     = "Replace target files that already exist"
	MsgFlagDryRun    = "Print the moves without renaming anything"
	MsgFlagPreflight = "Check every target before the first rename"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagConfig    = "Read configuration from this file"

	// Version output: version, commit, build date
	MsgVersionTemplate = "mmv %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)
)

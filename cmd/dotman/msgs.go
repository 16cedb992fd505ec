package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "Track your dotfiles in a git-backed repository"
	MsgRootLong    = `dotman tracks your configuration files by mirroring them into a
central repository directory as symbolic links, letting git handle
versioning and history across machines.`
	MsgInitShort   = "Initialize the dotman repository"
	MsgAddShort    = "Start tracking a file in your home directory"
	MsgRemoveShort = "Stop tracking a file"
	MsgListShort   = "List tracked files and their link status"
	MsgPushShort   = "Commit and push the repository"
	MsgPullShort   = "Pull the repository, rebuilding the index from it"
	MsgSyncShort   = "Pull then push"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Status messages
	MsgNoFilesTracked = "No files tracked."
	MsgTrackedFormat  = "Tracking %s\n"
	MsgRemovedFormat  = "Stopped tracking %s\n"
	MsgInitialized    = "Initialized dotman repository in %s\n"
)

// Package duplicity translates the front end's short command vocabulary into
// duplicity's long action names, assembles full argument lists from a
// resolved profile, and invokes the engine as a subprocess.
package duplicity

import "fmt"

// Action is one word of the internal command vocabulary.
type Action string

const (
	ActionBackup        Action = "backup"
	ActionFull          Action = "full"
	ActionIncr          Action = "incr"
	ActionRestore       Action = "restore"
	ActionVerify        Action = "verify"
	ActionStatus        Action = "status"
	ActionList          Action = "ls"
	ActionRemoveOlder   Action = "rm"
	ActionRemoveButFull Action = "frm"
	ActionRemoveIncrOf  Action = "rmincr"
	ActionCleanup       Action = "cleanup"
)

// actionNames maps the vocabulary to engine action names. Plain backups have
// no action word; the engine picks full or incremental on its own.
var actionNames = map[Action]string{
	ActionBackup:        "",
	ActionFull:          "full",
	ActionIncr:          "incremental",
	ActionRestore:       "restore",
	ActionVerify:        "verify",
	ActionStatus:        "collection-status",
	ActionList:          "list-current-files",
	ActionRemoveOlder:   "remove-older-than",
	ActionRemoveButFull: "remove-all-but-n-full",
	ActionRemoveIncrOf:  "remove-all-inc-of-but-n-full",
	ActionCleanup:       "cleanup",
}

// argKinds records which actions carry a positional count/time argument.
var takesArg = map[Action]bool{
	ActionRemoveOlder:   true,
	ActionRemoveButFull: true,
	ActionRemoveIncrOf:  true,
}

// destructive actions only get the engine's --force when the front end's own
// force flag was given; without it the engine reports what it would delete.
var destructive = map[Action]bool{
	ActionRemoveOlder:   true,
	ActionRemoveButFull: true,
	ActionRemoveIncrOf:  true,
	ActionCleanup:       true,
}

// Request captures one translated invocation.
type Request struct {
	Action Action
	Arg    string // count or time for the removal actions

	RestoreFile string // --file-to-restore
	RestoreTime string // --restore-time
	RestoreDest string // restore destination path

	Force bool
}

// EngineName returns the engine's long action name for a vocabulary word.
func EngineName(action Action) (string, error) {
	name, ok := actionNames[action]
	if !ok {
		return "", fmt.Errorf("unknown command %q", action)
	}
	return name, nil
}

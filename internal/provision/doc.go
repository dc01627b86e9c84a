// Package provision owns the environment lifecycle: teardown-before-setup
// discipline, the provisioned/running/torn-down handle state machine, and
// the fixed settling and cooldown waits around it.
//
// At most one environment handle is live at any time. The discipline is not
// locking but mutual exclusion through unconditional teardown between uses:
// every provisioning slot begins with a teardown, even the very first, to
// neutralize leftover state from a prior aborted run.
package provision

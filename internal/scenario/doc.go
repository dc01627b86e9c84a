// Package scenario executes a single named test case against a freshly
// provisioned environment, guaranteeing teardown on every exit path so one
// scenario's crash cannot poison the next run.
package scenario

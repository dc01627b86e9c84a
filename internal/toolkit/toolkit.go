// Package toolkit defines the capability surface consumed from the external
// asset-provisioning toolkit: setup, start, teardown and an is-active query.
// The toolkit itself (binary placement, key generation, node supervision) is
// an opaque external collaborator.
package toolkit

import "context"

// Toolkit is the network-control capability the harness drives.
type Toolkit interface {
	// Setup materializes network assets. Args are opaque key=value tokens,
	// typically override file paths.
	Setup(ctx context.Context, args []string) error
	// Start launches the network's nodes as background processes.
	Start(ctx context.Context) error
	// Teardown releases all environment resources. It must be safe to call
	// when nothing is provisioned.
	Teardown(ctx context.Context) error
	// Active reports whether the toolkit believes an environment is live.
	// Used for diagnostics only; teardown-before-setup is unconditional.
	Active(ctx context.Context) bool
}

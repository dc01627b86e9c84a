// Package hcl implements config.Loader for HCL session manifests.
//
// A manifest is one or more .hcl files containing exactly one session block
// between them. Argument expressions may reference the process environment
// through the env object, e.g. args = ["branch=${env.DRONE_BRANCH}"].
package hcl

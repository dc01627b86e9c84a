package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/chainharness/internal/config"
	"github.com/vk/chainharness/internal/ctxlog"
	"github.com/vk/chainharness/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL session manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers and parses all .hcl files under the given paths and
// translates the single session block they contain into the agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Session, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to discover manifest files under %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found under %s", strings.Join(paths, ", "))
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := envEvalContext()

	var session *sessionBlock
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", file, diags)
		}
		if root.Session == nil {
			continue
		}
		if session != nil {
			return nil, fmt.Errorf("duplicate session block in %s: a manifest must contain exactly one", file)
		}
		session = root.Session
	}
	if session == nil {
		return nil, fmt.Errorf("no session block found in %s", strings.Join(files, ", "))
	}

	return translateSession(session), nil
}

// translateSession converts the HCL-specific schema into the agnostic model,
// applying the default delays for omitted attributes.
func translateSession(s *sessionBlock) *config.Session {
	out := &config.Session{
		ScenariosRoot: s.ScenariosRoot,
		OverridesRoot: s.OverridesRoot,
		Toolkit:       s.Toolkit,
		GlobalConfig:  s.GlobalConfig,
		Settle:        config.DefaultSettle,
		Cooldown:      config.DefaultCooldown,
	}
	if s.SettleSeconds != nil {
		out.Settle = time.Duration(*s.SettleSeconds) * time.Second
	}
	if s.CooldownSeconds != nil {
		out.Cooldown = time.Duration(*s.CooldownSeconds) * time.Second
	}

	for _, sc := range s.Scenarios {
		out.Scenarios = append(out.Scenarios, config.Scenario{
			Name:        sc.Name,
			Args:        sc.Args,
			SelfManaged: sc.SelfManaged,
		})
	}
	for _, c := range s.Chains {
		chain := config.Chain{Name: c.Name, Command: c.Command, Args: c.Args}
		for _, st := range c.Steps {
			chain.Steps = append(chain.Steps, config.ChainStep{
				Test:      st.Test,
				SkipSetup: st.SkipSetup,
			})
		}
		out.Chains = append(out.Chains, chain)
	}
	if s.Soundness != nil {
		out.Soundness = &config.Soundness{
			Command: s.Soundness.Command,
			Args:    s.Soundness.Args,
		}
	}
	return out
}

// envEvalContext exposes the process environment to manifest expressions as
// the env object. This is how externally supplied branch and build
// identifiers parameterize chain runs without the harness parsing them.
func envEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

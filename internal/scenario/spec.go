package scenario

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Spec is one scheduled scenario, constructed once at sequence-definition
// time. Name is the external program's file name; Args are opaque key=value
// tokens forwarded verbatim. SelfManaged scenarios provision, start and
// tear down their own environment end to end.
type Spec struct {
	Name        string
	Args        []string
	SelfManaged bool
}

// BaseName is the scenario identifier with any file extension stripped;
// it keys the override lookup ("itst01.sh" -> "itst01").
func (s Spec) BaseName() string {
	return strings.TrimSuffix(s.Name, filepath.Ext(s.Name))
}

// Result reports one scenario execution for the session summary.
type Result struct {
	Name     string
	Status   int
	Duration time.Duration
}

// Failure means the external scenario program exited non-zero. It is fatal
// to the whole sequence; the subprocess status becomes the harness's own
// exit code.
type Failure struct {
	Name   string
	Status int
}

func (f *Failure) Error() string {
	return fmt.Sprintf("scenario %s failed with status %d", f.Name, f.Status)
}

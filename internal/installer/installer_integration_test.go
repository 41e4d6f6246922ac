// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/swinstall/swinstall/internal/runner"
	"github.com/swinstall/swinstall/internal/testutil"
	"github.com/swinstall/swinstall/pkg/platform"
	"github.com/swinstall/swinstall/pkg/types"

	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"
)

// containerRunner runs commands inside a testcontainers container so the
// Linux routine can be exercised against a real apt-get.
type containerRunner struct {
	container testcontainers.Container
	output    bytes.Buffer
}

func (c *containerRunner) Name() string { return "container" }

func (c *containerRunner) Run(ctx context.Context, cmd runner.Command) runner.Result {
	code, reader, err := c.container.Exec(ctx, cmd.Argv(), tcexec.Multiplexed())
	if err != nil {
		return runner.NewErrorResult(err)
	}
	if _, err := io.Copy(&c.output, reader); err != nil {
		return runner.NewErrorResult(err)
	}
	return runner.NewExitCodeResult(types.ExitCode(code))
}

// checkTestcontainersAvailable safely checks if testcontainers can be used.
func checkTestcontainersAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

func TestLinuxRoutine_AptGetIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !checkTestcontainersAvailable() {
		t.Skip("skipping container integration test: testcontainers provider not available")
	}

	sem := testutil.ContainerSemaphore()
	sem <- struct{}{}
	defer func() { <-sem }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "debian:bookworm-slim",
			Cmd:   []string{"sleep", "infinity"},
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skipping container integration test: cannot start container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	var out bytes.Buffer
	cr := &containerRunner{container: ctr}
	d := NewDispatcher(cr, &out)
	d.linux.(*LinuxRoutine).euid = func() int { return 0 }

	res := d.Install(ctx, platform.LinuxPlatform, DefaultSoftware)

	// The package does not exist, so apt-get exits 100. The exit status is
	// recorded but the routine still reports success.
	if res.Outcome != OutcomeSucceeded {
		t.Fatalf("Outcome = %v (reason %q), want succeeded", res.Outcome, res.Reason)
	}
	if res.ExitCode != 100 {
		t.Errorf("ExitCode = %d, want 100 from apt-get; output:\n%s", res.ExitCode, cr.output.String())
	}
	if !strings.Contains(cr.output.String(), "example_software") {
		t.Errorf("apt-get output does not mention the package:\n%s", cr.output.String())
	}
	wantOut := "Installing example_software on Linux...\nexample_software installed successfully on Linux.\n"
	if out.String() != wantOut {
		t.Errorf("console output = %q, want %q", out.String(), wantOut)
	}
}

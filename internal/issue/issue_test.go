// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestCatalogIsComplete(t *testing.T) {
	ids := []Id{
		UnsupportedPlatformId,
		InstallFailedId,
		InstallNotImplementedId,
		PermissionDeniedId,
		InvalidConfigId,
		VenvSetupFailedId,
	}

	if UnsupportedPlatformId != 1 {
		t.Errorf("UnsupportedPlatformId = %d, want 1", UnsupportedPlatformId)
	}

	for _, id := range ids {
		entry := Get(id)
		if entry == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if entry.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, entry.Id())
		}
		if strings.TrimSpace(string(entry.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}

	values := Values()
	if len(values) != len(ids) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(ids))
	}
	for i, v := range values {
		if v.Id() != ids[i] {
			t.Errorf("Values()[%d].Id() = %d, want %d (ordered by id)", i, v.Id(), ids[i])
		}
	}

	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
}

func TestIssue_ExtLinksIsACopy(t *testing.T) {
	entry := Get(InstallFailedId)
	links := entry.ExtLinks()
	if len(links) == 0 {
		t.Fatal("InstallFailed issue should carry an external link")
	}
	links[0] = "mutated"
	if entry.ExtLinks()[0] == "mutated" {
		t.Error("ExtLinks() exposes internal slice")
	}
}

func TestIssue_Render(t *testing.T) {
	out, err := Get(UnsupportedPlatformId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Unsupported operating system") {
		t.Errorf("rendered output missing title:\n%s", out)
	}

	out, err = Get(VenvSetupFailedId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "docs.python.org") {
		t.Errorf("rendered output missing external link:\n%s", out)
	}
}

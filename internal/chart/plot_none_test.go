//go:build nochart

package chart

import "testing"

func TestNoBackend(t *testing.T) {
	if Available() {
		t.Error("nochart build should report no backend")
	}
	if New() != nil {
		t.Error("New() should return nil without a backend")
	}
	if Backend() != "none" {
		t.Errorf("Backend() = %q, want none", Backend())
	}
}

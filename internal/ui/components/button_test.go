package components

import (
	"strings"
	"testing"
)

func TestAction(t *testing.T) {
	if got := Action("Unlock (100 PN)", true); !strings.Contains(got, "▸ Unlock (100 PN)") {
		t.Errorf("enabled action should carry the pointer, got %q", got)
	}
	got := Action("Not enough PN (100 PN)", false)
	if strings.Contains(got, "▸") {
		t.Errorf("disabled action should not carry the pointer, got %q", got)
	}
	if !strings.Contains(got, "Not enough PN (100 PN)") {
		t.Errorf("disabled action should keep its label, got %q", got)
	}
}

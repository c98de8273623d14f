package wire

import "testing"

func TestUnpackEvent_LegacySynthesizesTRES(t *testing.T) {
	buf := NewBuffer(64)
	buf.PackStrings([]string{"32", "node1", "0", "10", "boot", "0", "1", "32"})

	e, err := UnpackEvent(buf, VersionLegacyDBD)
	if err != nil {
		t.Fatalf("UnpackEvent failed: %v", err)
	}
	if e.TRES != "1=32" {
		t.Errorf("TRES = %q, want %q", e.TRES, "1=32")
	}
	if e.NodeName != "node1" {
		t.Errorf("NodeName = %q, want %q", e.NodeName, "node1")
	}
}

func TestUnpackEvent_PreLegacyRejected(t *testing.T) {
	buf := NewBuffer(16)
	_, err := UnpackEvent(buf, VersionPreLegacy)
	if err == nil {
		t.Fatal("expected error unpacking pre-legacy event, got nil")
	}
}

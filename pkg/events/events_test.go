package events

import "testing"

func TestStatusMerge(t *testing.T) {
	if Ignored.Merge(Ignored) != Ignored {
		t.Errorf("ignored + ignored should stay ignored")
	}
	if Ignored.Merge(Captured) != Captured {
		t.Errorf("captured should win over ignored")
	}
	if Captured.Merge(Ignored) != Captured {
		t.Errorf("captured should win regardless of order")
	}
}

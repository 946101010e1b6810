package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestKindDir(t *testing.T) {
	owner := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	tests := []struct {
		kind Kind
		want string
	}{
		{KindBaby, "."},
		{KindGrowth, "baby_11111111-2222-3333-4444-555555555555_growth"},
		{KindMilestone, "baby_11111111-2222-3333-4444-555555555555_milestone"},
		{KindLog, "baby_11111111-2222-3333-4444-555555555555_log"},
	}

	for _, tt := range tests {
		if got := tt.kind.Dir(owner); got != tt.want {
			t.Errorf("Dir(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindFilename(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	if got := KindGrowth.Filename(id); got != "growth_aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.json" {
		t.Errorf("Filename = %q", got)
	}
	if got := KindBaby.Filename(id); got != "baby_aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.json" {
		t.Errorf("Filename = %q", got)
	}
}

func TestKindPrefix(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBaby, "baby_"},
		{KindGrowth, "growth_"},
		{KindMilestone, "milestone_"},
		{KindLog, "log_"},
	}

	for _, tt := range tests {
		if got := tt.kind.Prefix(); got != tt.want {
			t.Errorf("Prefix(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

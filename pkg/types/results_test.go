package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkResultCount(t *testing.T) {
	result := &LinkResult{
		Entries: []EntryResult{
			{Entry: Entry{Name: "bashrc"}, Action: ActionLinked},
			{Entry: Entry{Name: "npmrc"}, Action: ActionLinked},
			{Entry: Entry{Name: "tmux"}, Action: ActionSkipped},
			{Entry: Entry{Name: "git"}, Action: ActionFailed},
		},
	}

	assert.Equal(t, 2, result.Count(ActionLinked))
	assert.Equal(t, 1, result.Count(ActionSkipped))
	assert.Equal(t, 1, result.Count(ActionFailed))
	assert.Equal(t, 0, result.Count(ActionBackedUp))
}

func TestLinkResultHasWarnings(t *testing.T) {
	tests := []struct {
		name    string
		entries []EntryResult
		want    bool
	}{
		{
			name: "all linked",
			entries: []EntryResult{
				{Action: ActionLinked},
				{Action: ActionRelinked},
				{Action: ActionBackedUp},
			},
			want: false,
		},
		{
			name: "one skipped",
			entries: []EntryResult{
				{Action: ActionLinked},
				{Action: ActionSkipped},
			},
			want: true,
		},
		{
			name: "one failed",
			entries: []EntryResult{
				{Action: ActionFailed},
			},
			want: true,
		},
		{
			name:    "empty run",
			entries: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &LinkResult{Entries: tt.entries}
			assert.Equal(t, tt.want, result.HasWarnings())
		})
	}
}

func TestStatusReportHealthy(t *testing.T) {
	healthy := &StatusReport{
		Entries: []StatusEntry{
			{State: StateLinked},
			{State: StateLinked},
		},
	}
	assert.True(t, healthy.Healthy())

	mixed := &StatusReport{
		Entries: []StatusEntry{
			{State: StateLinked},
			{State: StateConflict},
		},
	}
	assert.False(t, mixed.Healthy())
	assert.Equal(t, 1, mixed.CountState(StateConflict))
}

func TestEntryBackupPath(t *testing.T) {
	e := Entry{Name: "tmux", Target: "/home/u/tmux/tmux.conf"}
	assert.Equal(t, "/home/u/tmux/tmux.conf.backup", e.BackupPath())
}

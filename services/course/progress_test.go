package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name         string
		completed    []uint
		lessons      []uint
		wantPercent  int
		wantComplete bool
	}{
		{name: "no lessons completed", completed: []uint{}, lessons: []uint{1, 2, 3}, wantPercent: 0},
		{name: "one of three", completed: []uint{1}, lessons: []uint{1, 2, 3}, wantPercent: 33},
		{name: "two of three", completed: []uint{1, 2}, lessons: []uint{1, 2, 3}, wantPercent: 67},
		{name: "all of three", completed: []uint{1, 2, 3}, lessons: []uint{1, 2, 3}, wantPercent: 100, wantComplete: true},
		{name: "one of two rounds to 50", completed: []uint{7}, lessons: []uint{7, 8}, wantPercent: 50},
		{name: "one of six rounds to 17", completed: []uint{1}, lessons: []uint{1, 2, 3, 4, 5, 6}, wantPercent: 17},
		{name: "five of six rounds to 83", completed: []uint{1, 2, 3, 4, 5}, lessons: []uint{1, 2, 3, 4, 5, 6}, wantPercent: 83},
		{name: "stale ids are ignored", completed: []uint{1, 99, 100}, lessons: []uint{1, 2, 3}, wantPercent: 33},
		{name: "only stale ids", completed: []uint{99}, lessons: []uint{1, 2, 3}, wantPercent: 0},
		{name: "duplicates counted once", completed: []uint{1, 1, 1}, lessons: []uint{1, 2, 3}, wantPercent: 33},
		{name: "stale id does not fake completion", completed: []uint{1, 2, 99}, lessons: []uint{1, 2, 3}, wantPercent: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, complete, err := ComputeProgress(tt.completed, tt.lessons)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Equal(t, tt.wantComplete, complete)
		})
	}
}

func TestComputeProgressNoLessons(t *testing.T) {
	_, _, err := ComputeProgress([]uint{1, 2}, []uint{})
	assert.ErrorIs(t, err, ErrNoLessons)

	_, _, err = ComputeProgress(nil, nil)
	assert.ErrorIs(t, err, ErrNoLessons)
}

func TestComputeProgressDeterministic(t *testing.T) {
	completed := []uint{3, 1}
	lessons := []uint{1, 2, 3, 4}

	p1, c1, err1 := ComputeProgress(completed, lessons)
	p2, c2, err2 := ComputeProgress(completed, lessons)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, 50, p1)
	assert.False(t, c1)
}

func TestComputeProgressCompleteOnlyAtFull(t *testing.T) {
	// percent == 100 must mean every current lesson is completed
	lessons := []uint{1, 2, 3}

	_, complete, err := ComputeProgress([]uint{1, 2}, lessons)
	require.NoError(t, err)
	assert.False(t, complete)

	percent, complete, err := ComputeProgress([]uint{2, 3, 1}, lessons)
	require.NoError(t, err)
	assert.Equal(t, 100, percent)
	assert.True(t, complete)
}

func TestAddCompleted(t *testing.T) {
	set := []uint{}

	set = AddCompleted(set, 5)
	assert.Equal(t, []uint{5}, set)

	// re-adding is a no-op
	set = AddCompleted(set, 5)
	assert.Equal(t, []uint{5}, set)

	set = AddCompleted(set, 9)
	assert.Equal(t, []uint{5, 9}, set)
}

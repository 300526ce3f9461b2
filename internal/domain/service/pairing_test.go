package service

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_chunkGroups(t *testing.T) {
	tests := []struct {
		name       string
		shuffled   []string
		wantGroups [][]string
	}{
		{
			name:       "Should keep two users together",
			shuffled:   []string{"U1", "U2"},
			wantGroups: [][]string{{"U2", "U1"}},
		},
		{
			name:       "Should keep three users together",
			shuffled:   []string{"U1", "U2", "U3"},
			wantGroups: [][]string{{"U2", "U3", "U1"}},
		},
		{
			name:       "Should split four users into two pairs",
			shuffled:   []string{"U1", "U2", "U3", "U4"},
			wantGroups: [][]string{{"U1", "U2"}, {"U3", "U4"}},
		},
		{
			name:       "Should split five users into a triple and a pair",
			shuffled:   []string{"U1", "U2", "U3", "U4", "U5"},
			wantGroups: [][]string{{"U3", "U4", "U5"}, {"U1", "U2"}},
		},
		{
			name:       "Should merge a single leftover into the last pair",
			shuffled:   []string{"U1", "U2", "U3", "U4", "U5", "U6"},
			wantGroups: [][]string{{"U4", "U5", "U6"}, {"U1", "U2", "U3"}},
		},
		{
			name:       "Should pool two leftovers into their own group",
			shuffled:   []string{"U1", "U2", "U3", "U4", "U5", "U6", "U7"},
			wantGroups: [][]string{{"U4", "U5", "U6"}, {"U1", "U2"}, {"U7", "U3"}},
		},
		{
			name:       "Should merge a single leftover into the last pair of eight users",
			shuffled:   []string{"U1", "U2", "U3", "U4", "U5", "U6", "U7", "U8"},
			wantGroups: [][]string{{"U5", "U6", "U7"}, {"U1", "U2"}, {"U3", "U4", "U8"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkGroups(tt.shuffled)
			assert.Equal(t, tt.wantGroups, got)
		})
	}
}

func Test_splitIntoGroups(t *testing.T) {
	t.Run("Should return no groups for fewer than two users", func(t *testing.T) {
		assert.Nil(t, splitIntoGroups(nil))
		assert.Nil(t, splitIntoGroups([]string{}))
		assert.Nil(t, splitIntoGroups([]string{"U1"}))
	})

	t.Run("Should not mutate the input slice", func(t *testing.T) {
		users := []string{"U1", "U2", "U3", "U4", "U5"}
		splitIntoGroups(users)
		assert.Equal(t, []string{"U1", "U2", "U3", "U4", "U5"}, users)
	})

	// The shuffle is random, so for every size check the structural
	// guarantees instead of a fixed partition: every user is grouped
	// exactly once and every group has 2-4 members.
	for n := 2; n <= 12; n++ {
		t.Run(fmt.Sprintf("Should group all of %d users", n), func(t *testing.T) {
			users := make([]string, 0, n)
			for i := 0; i < n; i++ {
				users = append(users, fmt.Sprintf("U%03d", i))
			}

			groups := splitIntoGroups(users)
			require.NotEmpty(t, groups)

			var grouped []string
			for _, group := range groups {
				assert.GreaterOrEqual(t, len(group), 2)
				assert.LessOrEqual(t, len(group), 4)
				grouped = append(grouped, group...)
			}

			sort.Strings(grouped)
			assert.Equal(t, users, grouped)
		})
	}
}

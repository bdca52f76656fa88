package potmanager

import (
	"cmp"
	"slices"
)

// WinManager groups showdown participants by hand strength
type WinManager struct {
	byStrength map[int][]string
}

// NewWinManager returns an empty WinManager
func NewWinManager() *WinManager {
	return &WinManager{byStrength: make(map[int][]string)}
}

// AddParticipant records the strength of a participant's hand. Higher is better.
// Participants of equal strength keep the order they were added in.
func (w *WinManager) AddParticipant(id string, handStrength int) {
	w.byStrength[handStrength] = append(w.byStrength[handStrength], id)
}

// GetSortedTiers returns the participants grouped by strength, strongest first
func (w *WinManager) GetSortedTiers() [][]string {
	strengths := make([]int, 0, len(w.byStrength))
	for strength := range w.byStrength {
		strengths = append(strengths, strength)
	}

	slices.SortFunc(strengths, func(a, b int) int {
		return cmp.Compare(b, a)
	})

	tiers := make([][]string, len(strengths))
	for i, strength := range strengths {
		tiers[i] = w.byStrength[strength]
	}

	return tiers
}

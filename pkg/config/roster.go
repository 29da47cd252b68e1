package config

import (
	"errors"
	"fmt"

	"github.com/mflstudio/concours/pkg/kinematic"
)

// ThemeEntry is one question theme a player brings, with its difficulty tier.
type ThemeEntry struct {
	Theme string `mapstructure:"theme" json:"theme"`
	Tier  int    `mapstructure:"tier" json:"tier"`
}

// RosterEntry is a playable identity.
type RosterEntry struct {
	Name   string           `mapstructure:"name" json:"name"`
	Color  string           `mapstructure:"color" json:"color"`
	Spawn  kinematic.Vector `mapstructure:"spawn" json:"spawn"`
	Themes []ThemeEntry     `mapstructure:"themes" json:"themes"`
}

// Roster is the ordered list of playable identities. The order is the turn order.
type Roster []RosterEntry

// DefaultRoster is the studio's three contestants.
func DefaultRoster() Roster {
	return Roster{
		{
			Name:  "quentin",
			Color: "#3b82f6",
			Spawn: kinematic.Vector{X: -8, Y: 2, Z: 11},
			Themes: []ThemeEntry{
				{Theme: "cinema", Tier: 1},
				{Theme: "jeux-video", Tier: 2},
				{Theme: "geographie", Tier: 3},
			},
		},
		{
			Name:  "mathurin",
			Color: "#22c55e",
			Spawn: kinematic.Vector{X: 0, Y: 2, Z: 11},
			Themes: []ThemeEntry{
				{Theme: "sport", Tier: 1},
				{Theme: "musique", Tier: 2},
				{Theme: "sciences", Tier: 3},
			},
		},
		{
			Name:  "yann",
			Color: "#ef4444",
			Spawn: kinematic.Vector{X: 8, Y: 2, Z: 11},
			Themes: []ThemeEntry{
				{Theme: "histoire", Tier: 1},
				{Theme: "cuisine", Tier: 2},
				{Theme: "litterature", Tier: 3},
			},
		},
	}
}

// Names returns the roster names in turn order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for _, entry := range r {
		names = append(names, entry.Name)
	}
	return names
}

// Lookup returns the entry for name.
func (r Roster) Lookup(name string) (RosterEntry, bool) {
	for _, entry := range r {
		if entry.Name == name {
			return entry, true
		}
	}
	return RosterEntry{}, false
}

// IndexOf returns the turn-order index of name, or -1.
func (r Roster) IndexOf(name string) int {
	for i, entry := range r {
		if entry.Name == name {
			return i
		}
	}
	return -1
}

func (r Roster) Validate() error {
	if len(r) == 0 {
		return errors.New("at least one player is required")
	}
	seen := make(map[string]bool, len(r))
	for _, entry := range r {
		if entry.Name == "" {
			return errors.New("player name must not be empty")
		}
		if entry.Name == NeutralOwner {
			return fmt.Errorf("player name %q is reserved", entry.Name)
		}
		if seen[entry.Name] {
			return fmt.Errorf("duplicate player %q", entry.Name)
		}
		seen[entry.Name] = true
		for _, theme := range entry.Themes {
			if theme.Theme == "" {
				return fmt.Errorf("player %q has an empty theme", entry.Name)
			}
			if theme.Tier < 1 || theme.Tier > 3 {
				return fmt.Errorf("player %q theme %q has tier %d, want 1..3", entry.Name, theme.Theme, theme.Tier)
			}
		}
	}
	return nil
}

// NeutralOwner tags tiles that belong to no player.
const NeutralOwner = "neutral"

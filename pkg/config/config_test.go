package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.WSPort)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 20, cfg.MemorizeSeconds)
	assert.Equal(t, 3*time.Second, cfg.FeedbackDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.GameLoopInterval)
	assert.Equal(t, GridConfig{TilesPerPlayer: 30, NeutralTiles: 10, Width: 10}, cfg.Grid)
	assert.Equal(t, []string{"quentin", "mathurin", "yann"}, cfg.Roster.Names())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "concours.yaml")
	content := `
allowed_origins: ["localhost:5173", "*.mflstudio.fr"]
memorize_seconds: 5
feedback_delay: 1s
grid:
  tiles_per_player: 2
  neutral_tiles: 1
  width: 0
roster:
  - name: alice
    color: "#fff"
    spawn: {x: 1, y: 2, z: 3}
    themes:
      - {theme: art, tier: 1}
  - name: bob
    color: "#000"
    themes:
      - {theme: maths, tier: 3}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MemorizeSeconds)
	assert.Equal(t, []string{"localhost:5173", "*.mflstudio.fr"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Second, cfg.FeedbackDelay)
	assert.Equal(t, 0, cfg.Grid.Width)
	require.Len(t, cfg.Roster, 2)
	assert.Equal(t, "alice", cfg.Roster[0].Name)
	assert.Equal(t, 3.0, cfg.Roster[0].Spawn.Z)
	assert.Equal(t, []ThemeEntry{{Theme: "maths", Tier: 3}}, cfg.Roster[1].Themes)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CONCOURS_DATABASE_URL", "postgresql://localhost/concours")
	t.Setenv("CONCOURS_MEMORIZE_SECONDS", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgresql://localhost/concours", cfg.DatabaseURL)
	assert.Equal(t, 7, cfg.MemorizeSeconds)
}

func TestRoster_Validate(t *testing.T) {
	tests := []struct {
		name    string
		roster  Roster
		wantErr bool
	}{
		{name: "default", roster: DefaultRoster()},
		{name: "empty", roster: Roster{}, wantErr: true},
		{name: "empty name", roster: Roster{{Name: ""}}, wantErr: true},
		{name: "reserved name", roster: Roster{{Name: NeutralOwner}}, wantErr: true},
		{name: "duplicate", roster: Roster{{Name: "a"}, {Name: "a"}}, wantErr: true},
		{name: "bad tier", roster: Roster{{Name: "a", Themes: []ThemeEntry{{Theme: "x", Tier: 4}}}}, wantErr: true},
		{name: "empty theme", roster: Roster{{Name: "a", Themes: []ThemeEntry{{Theme: "", Tier: 1}}}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.roster.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoster_Lookup(t *testing.T) {
	roster := DefaultRoster()

	entry, ok := roster.Lookup("yann")
	require.True(t, ok)
	assert.Equal(t, "#ef4444", entry.Color)
	assert.Equal(t, 2, roster.IndexOf("yann"))

	_, ok = roster.Lookup("nobody")
	assert.False(t, ok)
	assert.Equal(t, -1, roster.IndexOf("nobody"))
}

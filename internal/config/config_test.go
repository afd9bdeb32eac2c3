package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

const sampleConfig = `
[server]
http_port = 9090

[storage]
driver = "memory"

[logs]
file = ""
level = "debug"

[scheduling]
buffer_minutes = 45
allow_same_case_overlap = false

[auto_release]
enabled = true
interval_seconds = 60

[[seed.rooms]]
id = "room-1"
funeral_home_id = "fh-1"
room_number = "101"
capacity = 1
status = "available"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileValuesOverDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 45, cfg.Scheduling.BufferMinutes)
	assert.Equal(t, 30, cfg.Scheduling.AutoReleaseTimeoutMinutes)
	assert.False(t, cfg.Scheduling.AllowSameCaseOverlap)
	require.Len(t, cfg.Seed.Rooms, 1)
	assert.Equal(t, "101", cfg.Seed.Rooms[0].RoomNumber)

	policy := cfg.Scheduling.Policy()
	assert.Equal(t, 45*time.Minute, policy.Buffer)
	assert.Equal(t, 30*time.Minute, policy.AutoReleaseTimeout)
	assert.Equal(t, 24*time.Hour, policy.AlternativesHorizon)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PREPROOM_HTTP_PORT", "7070")
	t.Setenv("PREPROOM_BUFFER_MINUTES", "15")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Scheduling.BufferMinutes)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})

	t.Run("invalid env value", func(t *testing.T) {
		t.Setenv("PREPROOM_HTTP_PORT", "not-a-number")
		_, err := Load(writeConfig(t, sampleConfig))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[storage]
driver = "sqlite"

[scheduling]
slot_step_minutes = 0
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.driver")
		assert.Contains(t, err.Error(), "scheduling.slot_step_minutes")
	})
}

func TestSeedRoom_ToDomain(t *testing.T) {
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	explicit := SeedRoom{ID: "room-a", FuneralHomeID: "fh-main", RoomNumber: "101", Capacity: 1, Status: "maintenance"}
	room := explicit.ToDomain(now)
	assert.Equal(t, "room-a", room.ID)
	assert.Equal(t, domain.RoomStatusMaintenance, room.Status)
	assert.Equal(t, now, room.CreatedAt)

	derived := SeedRoom{FuneralHomeID: "fh-main", RoomNumber: "102", Capacity: 2}
	first := derived.ToDomain(now)
	second := derived.ToDomain(now.Add(time.Hour))
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.RoomStatusAvailable, first.Status)

	other := SeedRoom{FuneralHomeID: "fh-main", RoomNumber: "103", Capacity: 1}.ToDomain(now)
	assert.NotEqual(t, first.ID, other.ID)
}

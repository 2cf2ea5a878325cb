package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("HOTEL_RADIUS_M", "")
	t.Setenv("ROUTE_PAUSE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 7000, cfg.HotelRadiusM)
	require.Equal(t, 200*time.Millisecond, cfg.RoutePause)
	require.Equal(t, "driving", cfg.TravelMode)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("port: \"9000\"\nhotel_radius_m: 5000\nroute_pause: 50ms\ntravel_mode: walking\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "")
	t.Setenv("HOTEL_RADIUS_M", "6500")
	t.Setenv("ROUTE_PAUSE", "")
	t.Setenv("TRAVEL_MODE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, 6500, cfg.HotelRadiusM)
	require.Equal(t, 50*time.Millisecond, cfg.RoutePause)
	require.Equal(t, "walking", cfg.TravelMode)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("ALLOWED_ORIGINS", " https://app.example , ,http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"https://app.example", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("HOTEL_RADIUS_M", "not-a-number")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("HOTEL_RADIUS_M", "-1")
	_, err = Load()
	require.Error(t, err)
}

func TestGet(t *testing.T) {
	t.Setenv("GLOBETROTTER_TEST_KEY", "")
	require.Equal(t, "fallback", Get("GLOBETROTTER_TEST_KEY", "fallback"))
	t.Setenv("GLOBETROTTER_TEST_KEY", "set")
	require.Equal(t, "set", Get("GLOBETROTTER_TEST_KEY", "fallback"))
}

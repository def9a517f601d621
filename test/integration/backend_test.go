//go:build integration && windows

package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/com"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// openSession opens the real AutoItX3 server, skipping when it is not registered
func openSession(t *testing.T) *autoit.Session {
	t.Helper()

	log := logger.NewNoOpLogger()

	backend, err := com.Open(log, com.Options{ProgID: os.Getenv("AUTOITX_PROGID")})
	if errors.Is(err, autoit.ErrBackendUnavailable) {
		t.Skipf("AutoItX3 is not registered: %v", err)
	}

	require.NoError(t, err)

	s, err := autoit.NewSession(backend, log)
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestIntegration_ClipboardRoundTrip restores the previous clipboard text afterwards
func TestIntegration_ClipboardRoundTrip(t *testing.T) {
	clip := openSession(t).Clipboard()

	previous, prevErr := clip.Get()
	t.Cleanup(func() {
		if prevErr == nil {
			_ = clip.Put(previous)
		}
	})

	require.NoError(t, clip.Put("autoitx ", 42, " ", true))

	text, err := clip.Get()
	require.NoError(t, err)
	assert.Equal(t, "autoitx 42 true", text)
}

func TestIntegration_IniReadWriteDelete(t *testing.T) {
	s := openSession(t)

	path := filepath.Join(t.TempDir(), "test.ini")
	require.NoError(t, os.WriteFile(path, []byte("[General]\r\nName=autoitx\r\n"), 0o644))

	ini, err := s.Ini(path)
	require.NoError(t, err)

	value, err := ini.Read("General", "Name")
	require.NoError(t, err)
	assert.Equal(t, "autoitx", value)

	require.NoError(t, ini.Write("General", "Empty", ""))
	value, err = ini.Read("General", "Empty")
	require.NoError(t, err, "an empty value is not a missing key")
	assert.Empty(t, value)

	require.NoError(t, ini.Delete("General", "Name"))
	_, err = ini.Read("General", "Name")
	assert.ErrorIs(t, err, autoit.ErrNotFound)

	require.NoError(t, ini.Delete("General"))
	assert.Equal(t, "gone", ini.ReadDefault("General", "Empty", "gone"))
}

func TestIntegration_RegistryRoundTrip(t *testing.T) {
	reg := openSession(t).Registry()
	key := `HKEY_CURRENT_USER\Software\autoitx-integration`

	t.Cleanup(func() { _ = reg.DeleteKey(key) })

	require.NoError(t, reg.Write(key, "Greeting", autoit.RegString, "hello"))
	require.NoError(t, reg.Write(key, "Count", autoit.RegDWord, "7"))

	data, err := reg.Read(key, "Greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", data)

	require.NoError(t, reg.Delete(key, "Count"))
	_, err = reg.Read(key, "Count")
	assert.ErrorIs(t, err, autoit.ErrNotFound)
}

func TestIntegration_MouseAndPixel(t *testing.T) {
	s := openSession(t)

	_, err := s.Mouse().Position()
	require.NoError(t, err)

	p, err := s.Pixel(0, 0)
	require.NoError(t, err)

	_, err = p.Changed()
	require.NoError(t, err)
}

func TestIntegration_ProcessLifecycle(t *testing.T) {
	s := openSession(t)

	p, err := s.Process("notepad.exe", autoit.ProcessOptions{Show: autoit.ShowMinimize})
	require.NoError(t, err)

	if p.Existing {
		t.Skip("notepad.exe is already running; not closing the user's instance")
	}

	t.Cleanup(func() { _ = p.Close() })

	found, err := s.WaitForProcess("notepad.exe", 5*time.Second)
	require.NoError(t, err)
	assert.NotZero(t, found.PID)

	require.NoError(t, p.Close())
	require.NoError(t, p.WaitClose(5*time.Second))
}

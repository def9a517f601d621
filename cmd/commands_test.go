package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/testutil"
)

func TestClipCmd(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithString("ClipGet", "copied text")

		res := runCLI(t, mock, "clip", "get")
		require.NoError(t, res.err)
		assert.Equal(t, "copied text\n", res.stdout)
	})

	t.Run("put joins arguments", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "clip", "put", "one", "two")
		require.NoError(t, res.err)
		assert.Equal(t, []any{"onetwo"}, mock.CallsTo("ClipPut")[0].Args)
	})

	t.Run("empty clipboard", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithErrorCode("ClipGet", 1)

		res := runCLI(t, mock, "clip", "get")
		assert.ErrorIs(t, res.err, autoit.ErrNotFound)
	})
}

func TestIniCmd(t *testing.T) {
	path := testutil.CreateTestIniFile(t, testutil.CreateTempDir(t), "settings.ini")

	t.Run("read", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithString("IniRead", "autoitx")

		res := runCLI(t, mock, "ini", "read", path, "General", "Name")
		require.NoError(t, res.err)
		assert.Equal(t, "autoitx\n", res.stdout)
	})

	t.Run("read default", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "ini", "read", path, "General", "Missing", "--default", "fallback")
		require.NoError(t, res.err)
		assert.Equal(t, "fallback\n", res.stdout)
	})

	t.Run("delete key", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "ini", "delete", path, "General", "Name")
		require.NoError(t, res.err)
		assert.Len(t, mock.CallsTo("IniDeleteKey"), 1)
	})

	t.Run("missing file", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "ini", "write", filepath.Join(t.TempDir(), "nope.ini"), "s", "k", "v")
		assert.ErrorIs(t, res.err, autoit.ErrFileNotFound)
		assert.Empty(t, mock.CallsTo("IniWrite"))
	})
}

func TestSendCmd(t *testing.T) {
	t.Run("special", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "send", "^a", "{DEL}")
		require.NoError(t, res.err)

		calls := mock.CallsTo("Send")
		require.Len(t, calls, 2)
		assert.Equal(t, []any{"^a", 0}, calls[0].Args)
		assert.Equal(t, []any{"{DEL}", 0}, calls[1].Args)
	})

	t.Run("raw", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "send", "--raw", "{literal}")
		require.NoError(t, res.err)
		assert.Equal(t, []any{"{literal}", 1}, mock.CallsTo("Send")[0].Args)
	})
}

func TestToolTipCmd(t *testing.T) {
	mock := testutil.NewMockBackend()

	res := runCLI(t, mock, "tooltip", "hello", "--x", "10", "--y", "20", "--duration", "0s")
	require.NoError(t, res.err)

	calls := mock.CallsTo("ToolTip")
	require.Len(t, calls, 2)
	assert.Equal(t, []any{"hello", 10, 20}, calls[0].Args)
	assert.Equal(t, "", calls[1].Args[0])
}

func TestMouseCmd(t *testing.T) {
	t.Run("pos", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithMousePos(12, 34)
		mock.Cursor = int(autoit.CursorArrow)

		res := runCLI(t, mock, "mouse", "pos")
		require.NoError(t, res.err)
		assert.Equal(t, "position: (12,34)\ncursor: ARROW\n", res.stdout)
	})

	t.Run("click defaults", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "mouse", "click")
		require.NoError(t, res.err)
		assert.Equal(t,
			[]any{"left", autoit.IntDefault, autoit.IntDefault, 1, autoit.DefaultMouseSpeed},
			mock.CallsTo("MouseClick")[0].Args,
		)
	})

	t.Run("click needs both coordinates", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "mouse", "click", "--x", "5")
		require.Error(t, res.err)
		assert.Empty(t, mock.Calls)
	})

	t.Run("drag from current position", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithMousePos(1, 2)

		res := runCLI(t, mock, "mouse", "drag", "300", "400")
		require.NoError(t, res.err)
		assert.Equal(t, []any{"left", 1, 2, 300, 400, autoit.DefaultMouseSpeed}, mock.CallsTo("MouseClickDrag")[0].Args)
	})

	t.Run("wheel rejects direction", func(t *testing.T) {
		res := runCLI(t, testutil.NewMockBackend(), "mouse", "wheel", "sideways")
		assert.Error(t, res.err)
	})

	t.Run("press secondary", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "mouse", "press", "down", "--secondary")
		require.NoError(t, res.err)
		assert.Equal(t, []any{"secondary"}, mock.CallsTo("MouseDown")[0].Args)
	})
}

func TestPixelCmd(t *testing.T) {
	t.Run("color", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithPixelColours(0x00FF80)

		res := runCLI(t, mock, "pixel", "color", "5", "6")
		require.NoError(t, res.err)
		assert.Equal(t, "0x00FF80\n", res.stdout)
	})

	t.Run("checksum", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithChecksums(123456)

		res := runCLI(t, mock, "pixel", "checksum", "0", "0", "50", "50", "--step", "2")
		require.NoError(t, res.err)
		assert.Equal(t, "123456\n", res.stdout)
		assert.Equal(t, []any{0, 0, 50, 50, 2}, mock.CallsTo("PixelChecksum")[0].Args)
	})

	t.Run("search", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithSearchResult(15, 25)

		res := runCLI(t, mock, "pixel", "search", "0", "0", "100", "100", "#FF0000", "--shade", "8")
		require.NoError(t, res.err)
		assert.Equal(t, "(15,25)\n", res.stdout)
		assert.Equal(t, []any{0, 0, 100, 100, 0xFF0000, 8, 1}, mock.CallsTo("PixelSearch")[0].Args)
	})

	t.Run("bad coordinate", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "pixel", "color", "x", "6")
		require.Error(t, res.err)
		assert.Empty(t, mock.Calls)
	})
}

func TestProcessCmd(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithProcessPID(321)

		res := runCLI(t, mock, "process", "exists", "notepad.exe")
		require.NoError(t, res.err)
		assert.Equal(t, "true\npid: 321\n", res.stdout)
	})

	t.Run("not running", func(t *testing.T) {
		res := runCLI(t, testutil.NewMockBackend(), "process", "exists", "ghost.exe")
		require.NoError(t, res.err)
		assert.Equal(t, "false\n", res.stdout)
	})

	t.Run("run", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithRunResult(4000)

		res := runCLI(t, mock, "process", "run", "calc.exe", "--show", "minimize")
		require.NoError(t, res.err)
		assert.Equal(t, "pid: 4000\n", res.stdout)
		assert.Equal(t, []any{"calc.exe", "", 6}, mock.CallsTo("Run")[0].Args)
	})

	t.Run("run wait as user", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithRunResult(2)

		res := runCLI(t, mock, "process", "run", "setup.exe", "--wait", "--user", "admin", "--domain", "CORP", "--profile")
		require.NoError(t, res.err)
		assert.Equal(t, "exit code: 2\n", res.stdout)
		assert.Equal(t, []any{"admin", "CORP", "", 1, "setup.exe", "", 1}, mock.CallsTo("RunAsWait")[0].Args)
	})

	t.Run("run existing", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithProcessPID(9)

		res := runCLI(t, mock, "process", "run", "explorer.exe")
		require.NoError(t, res.err)
		assert.Equal(t, "existing: 9\n", res.stdout)
		assert.Empty(t, mock.CallsTo("Run"))
	})

	t.Run("bad show flag", func(t *testing.T) {
		res := runCLI(t, testutil.NewMockBackend(), "process", "run", "x.exe", "--show", "huge")
		assert.Error(t, res.err)
	})

	t.Run("close", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithProcessPID(77)

		res := runCLI(t, mock, "process", "close", "app.exe")
		require.NoError(t, res.err)
		assert.Equal(t, []any{"77"}, mock.CallsTo("ProcessClose")[0].Args)
	})

	t.Run("wait timeout", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithStatus("ProcessWait", 0)

		res := runCLI(t, mock, "process", "wait", "late.exe", "--timeout", "2s")
		assert.ErrorIs(t, res.err, autoit.ErrTimeout)
		assert.Equal(t, []any{"late.exe", 2}, mock.CallsTo("ProcessWait")[0].Args)
	})
}

func TestRegCmd(t *testing.T) {
	const key = `HKCU\Software\autoitx`

	t.Run("read default value", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithString("RegRead", "data")

		res := runCLI(t, mock, "reg", "read", key)
		require.NoError(t, res.err)
		assert.Equal(t, "data\n", res.stdout)
		assert.Equal(t, []any{key, ""}, mock.Calls[0].Args)
	})

	t.Run("write type", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "reg", "write", key, "Count", "3", "--type", "reg_dword")
		require.NoError(t, res.err)
		assert.Equal(t, []any{key, "Count", "REG_DWORD", "3"}, mock.CallsTo("RegWrite")[0].Args)
	})

	t.Run("write unknown type", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "reg", "write", key, "Count", "3", "--type", "REG_WHATEVER")
		require.Error(t, res.err)
		assert.Empty(t, mock.Calls)
	})

	t.Run("delete key", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "reg", "delete", key)
		require.NoError(t, res.err)
		assert.Len(t, mock.CallsTo("RegDeleteKey"), 1)
	})

	t.Run("keys", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithEnumNames("Alpha", "Beta")

		res := runCLI(t, mock, "reg", "keys", key, "--count", "3")
		require.NoError(t, res.err)
		assert.Equal(t, "Alpha\nBeta\n", res.stdout)
		assert.Len(t, mock.CallsTo("RegEnumKey"), 3)
	})

	t.Run("values", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithEnumNames("Path")

		res := runCLI(t, mock, "reg", "values", key, "-n", "1")
		require.NoError(t, res.err)
		assert.Equal(t, "Path\n", res.stdout)
	})
}

func TestDriveCmd(t *testing.T) {
	t.Run("add any device", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithString("DriveMapAdd", "Z:")

		res := runCLI(t, mock, "drive", "add", "*", `\\server\share`, "--persistent")
		require.NoError(t, res.err)
		assert.Equal(t, "Z:\n", res.stdout)
		assert.Equal(t, []any{"*", `\\server\share`, 1, "", ""}, mock.CallsTo("DriveMapAdd")[0].Args)
	})

	t.Run("get", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithString("DriveMapGet", `\\server\share`)

		res := runCLI(t, mock, "drive", "get", "Z:")
		require.NoError(t, res.err)
		assert.Equal(t, "\\\\server\\share\n", res.stdout)
	})

	t.Run("del", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "drive", "del", "Z:")
		require.NoError(t, res.err)
		assert.Len(t, mock.CallsTo("DriveMapDel"), 1)
	})
}

func TestWinCmd(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithStatus("WinExists", 0)

		res := runCLI(t, mock, "win", "exists", "Notepad", "--text", "hello")
		require.NoError(t, res.err)
		assert.Equal(t, "false\n", res.stdout)
		assert.Equal(t, []any{"Notepad", "hello"}, mock.Calls[0].Args)
	})

	t.Run("activate", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "win", "activate", "Notepad")
		require.NoError(t, res.err)
		assert.Len(t, mock.CallsTo("WinActivate"), 1)
	})

	t.Run("close missing", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithStatus("WinClose", 0)

		res := runCLI(t, mock, "win", "close", "Gone")
		assert.ErrorIs(t, res.err, autoit.ErrNotFound)
	})

	t.Run("wait", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "win", "wait", "Setup", "-t", "3s")
		require.NoError(t, res.err)
		assert.Equal(t, []any{"Setup", "", 3}, mock.CallsTo("WinWait")[0].Args)
	})

	t.Run("settext", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "win", "settext", "Notepad", "Edit1", "new text")
		require.NoError(t, res.err)
		assert.Equal(t, []any{"Notepad", "", "Edit1", "new text"}, mock.CallsTo("ControlSetText")[0].Args)
	})

	t.Run("gettext", func(t *testing.T) {
		mock := testutil.NewMockBackend().WithString("ControlGetText", "contents")

		res := runCLI(t, mock, "win", "gettext", "Notepad", "Edit1")
		require.NoError(t, res.err)
		assert.Equal(t, "contents\n", res.stdout)
	})
}

func TestSysCmd(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		res := runCLI(t, testutil.NewMockBackend(), "sys", "admin")
		require.NoError(t, res.err)
		assert.Equal(t, "true\n", res.stdout)
	})

	t.Run("option", func(t *testing.T) {
		mock := testutil.NewMockBackend()
		mock.OptionValues["SendKeyDelay"] = 5

		res := runCLI(t, mock, "sys", "option", "SendKeyDelay", "25")
		require.NoError(t, res.err)
		assert.Equal(t, "previous: 5\n", res.stdout)
	})

	t.Run("block releases input", func(t *testing.T) {
		mock := testutil.NewMockBackend()

		res := runCLI(t, mock, "sys", "block", "--duration", "0s")
		require.NoError(t, res.err)

		calls := mock.CallsTo("BlockInput")
		require.Len(t, calls, 2)
		assert.Equal(t, []any{1}, calls[0].Args)
		assert.Equal(t, []any{0}, calls[1].Args)
	})
}

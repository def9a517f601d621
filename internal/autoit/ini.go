package autoit

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// iniMissing is passed as IniRead's default so a missing key can be told
// apart from a key holding an empty value.
const iniMissing = "<<autoitx:missing>>"

// Ini reads and writes one ini file
type Ini struct {
	backend  interfaces.IniBackend
	log      logger.LoggerInterface
	filename string
}

// NewIni checks that filename exists and binds an Ini wrapper to it
func NewIni(backend interfaces.IniBackend, filename string, log logger.LoggerInterface) (*Ini, error) {
	if _, err := os.Stat(filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("ini file %s: %w", filename, ErrFileNotFound)
		}

		return nil, fmt.Errorf("error checking ini file %s: %w", filename, err)
	}

	return &Ini{backend: backend, log: orNoOp(log), filename: filename}, nil
}

// Path returns the ini file this wrapper is bound to
func (i *Ini) Path() string {
	return i.filename
}

// Read returns the value of key in section, or ErrNotFound
func (i *Ini) Read(section, key string) (string, error) {
	i.log.Trace("IniRead", slog.String("file", i.filename), slog.String("section", section), slog.String("key", key))

	value, err := i.backend.IniRead(i.filename, section, key, iniMissing)
	if err != nil {
		return "", transportError("IniRead", err)
	}

	if value == iniMissing {
		return "", &OpError{Op: "IniRead", Err: ErrNotFound}
	}

	return value, nil
}

// ReadDefault returns the value of key in section, or def when it cannot be read
func (i *Ini) ReadDefault(section, key, def string) string {
	value, err := i.Read(section, key)
	if err != nil {
		return def
	}

	return value
}

// Write sets key in section to value
func (i *Ini) Write(section, key, value string) error {
	i.log.Trace("IniWrite", slog.String("file", i.filename), slog.String("section", section), slog.String("key", key))

	ret, err := i.backend.IniWrite(i.filename, section, key, value)
	return checkStatus(i.log, "IniWrite", ret, err)
}

// Delete removes key from section. With no key the whole section is removed.
// Only the first key is used.
func (i *Ini) Delete(section string, key ...string) error {
	if len(key) == 0 {
		i.log.Trace("IniDelete", slog.String("file", i.filename), slog.String("section", section))

		ret, err := i.backend.IniDeleteSection(i.filename, section)
		return checkStatus(i.log, "IniDelete", ret, err)
	}

	i.log.Trace("IniDelete", slog.String("file", i.filename), slog.String("section", section), slog.String("key", key[0]))

	ret, err := i.backend.IniDeleteKey(i.filename, section, key[0])
	return checkStatus(i.log, "IniDelete", ret, err)
}

package autoit

import (
	"log/slog"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// RegType is a registry value type
type RegType string

const (
	RegString       RegType = "REG_SZ"
	RegExpandString RegType = "REG_EXPAND_SZ"
	RegMultiString  RegType = "REG_MULTI_SZ"
	RegDWord        RegType = "REG_DWORD"
	RegQWord        RegType = "REG_QWORD"
	RegBinary       RegType = "REG_BINARY"
)

// @error values from RegRead/RegEnum* that mean the key or value is absent
var regNotFound = []int{1, -1}

// EnumEntry is one result of Registry.Keys or Registry.Values
type EnumEntry struct {
	Index int
	Name  string
	Err   error
}

// Registry reads and writes registry keys. Keys use AutoIt's root names,
// e.g. HKEY_LOCAL_MACHINE\SOFTWARE\Vendor or HKLM64\SOFTWARE\Vendor.
type Registry struct {
	backend interfaces.RegistryBackend
	log     logger.LoggerInterface
}

// NewRegistry creates a registry wrapper
func NewRegistry(backend interfaces.RegistryBackend, log logger.LoggerInterface) *Registry {
	return &Registry{backend: backend, log: orNoOp(log)}
}

// Read returns the data of value under key. Use "" for the default value.
func (r *Registry) Read(key, value string) (string, error) {
	r.log.Trace("RegRead", slog.String("key", key), slog.String("value", value))

	data, err := r.backend.RegRead(key, value)
	if err != nil {
		return "", transportError("RegRead", err)
	}

	if err := checkLastError(r.log, r.backend, "RegRead", regNotFound...); err != nil {
		return "", err
	}

	return data, nil
}

// Write creates or replaces value under key
func (r *Registry) Write(key, value string, typ RegType, data string) error {
	r.log.Trace("RegWrite", slog.String("key", key), slog.String("value", value), slog.String("type", string(typ)))

	ret, err := r.backend.RegWrite(key, value, string(typ), data)
	return checkStatus(r.log, "RegWrite", ret, err)
}

// DeleteKey removes key and everything below it
func (r *Registry) DeleteKey(key string) error {
	r.log.Trace("RegDeleteKey", slog.String("key", key))

	ret, err := r.backend.RegDeleteKey(key)
	return deleteStatus(r.log, "RegDeleteKey", ret, err)
}

// DeleteValue removes one value under key
func (r *Registry) DeleteValue(key, value string) error {
	r.log.Trace("RegDeleteVal", slog.String("key", key), slog.String("value", value))

	ret, err := r.backend.RegDeleteVal(key, value)
	return deleteStatus(r.log, "RegDeleteVal", ret, err)
}

// Delete removes value under key, or the whole key when value is empty
func (r *Registry) Delete(key, value string) error {
	if value == "" {
		return r.DeleteKey(key)
	}

	return r.DeleteValue(key, value)
}

// Keys enumerates count subkeys of key by index, starting at 0.
// It does not discover how many subkeys exist; entries past the end carry an error.
func (r *Registry) Keys(key string, count int) ([]EnumEntry, error) {
	return r.enumerate("RegEnumKey", key, count, r.backend.RegEnumKey)
}

// Values enumerates count value names of key by index, starting at 0.
// It does not discover how many values exist; entries past the end carry an error.
func (r *Registry) Values(key string, count int) ([]EnumEntry, error) {
	return r.enumerate("RegEnumVal", key, count, r.backend.RegEnumVal)
}

// Names returns the names of entries that were read without error
func Names(entries []EnumEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Err == nil {
			names = append(names, e.Name)
		}
	}

	return names
}

func (r *Registry) enumerate(op, key string, count int, enum func(string, int) (string, error)) ([]EnumEntry, error) {
	entries := make([]EnumEntry, 0, max(count, 0))

	for i := 0; i < count; i++ {
		r.log.Trace(op, slog.String("key", key), slog.Int("index", i))

		name, err := enum(key, i)
		if err != nil {
			return entries, transportError(op, err)
		}

		entry := EnumEntry{Index: i, Name: name}
		entry.Err = checkLastError(r.log, r.backend, op, regNotFound...)
		entries = append(entries, entry)
	}

	return entries, nil
}

// deleteStatus maps RegDelete* returns: 1 deleted, 0 absent, 2 failed
func deleteStatus(log logger.LoggerInterface, op string, ret int, err error) error {
	if err != nil {
		return transportError(op, err)
	}

	switch ret {
	case 1:
		return nil
	case 0:
		log.Debug("Registry entry not found", slog.String("op", op))
		return &OpError{Op: op, Err: ErrNotFound}
	default:
		log.Debug("Registry delete failed", slog.String("op", op), slog.Int("code", ret))
		return &OpError{Op: op, Code: ret, Err: ErrFailed}
	}
}

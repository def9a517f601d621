// Package autoit wraps the AutoItX3 automation engine in small Go types.
//
// Each type covers one slice of the engine (clipboard, ini files, pixels,
// keyboard, tooltips, mouse, processes, registry, windows and controls,
// drive mappings, system options) and forwards calls to an injected backend.
// A Session bundles one backend handle and hands out the wrappers:
//
//	backend, err := com.Open(log, com.Options{})
//	if err != nil {
//		return err
//	}
//	defer backend.Close()
//
//	s, err := autoit.NewSession(backend, log)
//	if err != nil {
//		return err
//	}
//
//	_ = s.Clipboard().Put("copied at ", time.Now())
//	_ = s.Keyboard().Send("^v")
//
// Wrappers are not safe for concurrent use. The COM backend serialises
// calls onto its own thread.
package autoit

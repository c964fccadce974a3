// Package app is the composition root of the launcher.
//
// # Startup
//
//  1. Load config (~/.config/arcade/config.toml or -config)
//  2. Open the zerolog file logger
//  3. Load UI preferences (theme, column override)
//  4. Build the Bubble Tea program; the UI model creates its own state.Store
//  5. Watch the prefs file and forward edits to the program as ThemeChangedMsg
//  6. Run the program until the user quits or the context is cancelled
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()
//	       ├─────> logging.New()
//	       ├─────> prefs.Load()
//	       ├─────> ui.NewProgram()  (owns state.Store)
//	       ├─────> prefs.Watch() ──> program.Send(ThemeChangedMsg)
//	       └─────> program.Run()    (blocks)
//
// The prefs watcher is the only goroutine besides Bubble Tea's own. It never
// touches the library state; it only sends messages into the event loop.
//
// # Error Handling
//
// Config and logging failures abort startup with a wrapped error. A prefs
// watcher that cannot start is logged and the launcher runs without live
// theme reloads. Cancellation of ctx (SIGINT/SIGTERM) is a clean exit.
package app

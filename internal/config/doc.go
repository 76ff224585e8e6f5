// Package config loads the application settings for doctor.
//
// These settings control where the wizard keeps its files and how it
// behaves; they are separate from the customization record the wizard
// edits (see package profile).
//
// # Resolution
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. settings.yaml in the user config directory (~/.config/doctor/settings.yaml)
//  2. Hardcoded defaults
//
// A missing settings file is normal and silently yields the defaults. An
// unreadable or malformed file prints a warning and also yields the defaults.
// There are no command-line flags and no environment variables.
//
// # Keys
//
//   - config_file: path of the persisted customization record (~/.doctor_config.json)
//   - init_file: shell init file fully overwritten on save (~/.bashrc)
//   - loading: duration of the cosmetic loading bar ("2s"); "0s" disables it
//   - error_pause: how long validation errors block input; "0s" disables the pause
//   - no_color: render every screen without colors
//   - debug: write a JSON debug log to log_file
//   - log_file: debug log path (<config dir>/doctor/doctor.log)
//
// Paths starting with "~/" are expanded against the user's home directory.
package config

package config

//go:generate go tool go-enum --marshal --names

// Whether free company part of nameplates is shown.
// ENUM(default, never)
type NameplateFreeCompanyVisibility int

// Whether title part of nameplates is shown.
// ENUM(default, always, never, when-has-tags)
type NameplateTitleVisibility int

// Where title is placed relative to the name on nameplates.
// ENUM(default, always-above-name, always-below-name)
type NameplateTitlePosition int

// Package gamedata holds the actor and item templates the dungeon is
// populated from, embedded as JSON.
package gamedata

import "embed"

//go:embed *.json
var dataFS embed.FS

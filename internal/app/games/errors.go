package games

import "errors"

// ErrGameNotFound reports that neither the live feed nor the schedule knows
// the requested game.
var ErrGameNotFound = errors.New("game not found")

// ErrPlayerNotFound reports that the people lookup returned no entry for the
// requested player.
var ErrPlayerNotFound = errors.New("player not found")

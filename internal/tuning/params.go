package tuning

import "github.com/muurk/headcursor/internal/config"

// CursorParams returns the rows of the cursor speed page, top to bottom.
func CursorParams() []Param {
	return []Param{
		{Title: "Move up", Key: config.KeySpeedUp, Min: 0, Max: 100},
		{Title: "Move down", Key: config.KeySpeedDown, Min: 0, Max: 100},
		{Title: "Move right", Key: config.KeySpeedRight, Min: 0, Max: 100},
		{Title: "Move left", Key: config.KeySpeedLeft, Min: 0, Max: 100},
		{
			Title: "(Advanced) Smooth pointer",
			Key:   config.KeyPointerSmooth,
			Help:  "Controls the smoothness of the mouse cursor. Enables the user to reduce jitteriness",
			Min:   1,
			Max:   100,
		},
		{
			Title: "(Advanced) Smooth blendshapes",
			Key:   config.KeyShapeSmooth,
			Help:  "Reduces the flickering of the action trigger",
			Min:   1,
			Max:   100,
		},
		{
			Title: "(Advanced) Hold trigger delay(ms)",
			Key:   config.KeyHoldTriggerMs,
			Help:  "Controls how long the user should hold a gesture in milliseconds for an action to trigger",
			Min:   1,
			Max:   MaxHoldTrigger,
		},
	}
}

// ParamFor returns the cursor page param for key.
func ParamFor(key string) (Param, bool) {
	for _, p := range CursorParams() {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

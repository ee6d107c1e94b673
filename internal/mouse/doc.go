// Package mouse implements the mouse-control service that the cursor
// panel tunes: per-direction speed scaling, pointer smoothing and the
// gesture hold delay.
package mouse

// Package viz renders trajectories for the terminal.
//
//   - [Chart]: one ASCII line chart with a series per state entry
//   - [Table]: a styled step-by-step table of state values
//
// Both take the display copy of a trajectory; they never round or modify
// the values they are given.
package viz

// Package plot turns window queries into a static trend chart.
//
// Observations are replayed day by day with each station's last-known
// price carried forward, then summarized per fuel as daily min/mean/max
// and rendered to PNG.
package plot

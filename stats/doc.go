// File: stats/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package stats provides rolling-window statistics over an api.Ring:
// mean, minimum, maximum and last value of the most recent observations.
// Reductions here cover valid elements only, unlike ring.Min and ring.Max
// which scan raw storage.
package stats

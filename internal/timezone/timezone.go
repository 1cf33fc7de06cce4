// Package timezone resolves geographic coordinates to IANA timezone names
// and computes offset/DST details for a named zone. Zone boundary data
// comes from the latlong world map; offset arithmetic uses the IANA
// database embedded via time/tzdata, so lookups never depend on the host
// zoneinfo installation.
package timezone

import (
	"time"
	_ "time/tzdata"

	"github.com/bradfitz/latlong"
)

// Details holds the computed per-request timezone information. It is
// never cached: CurrentTime and CurrentTimeUnix are live values.
type Details struct {
	Name            string
	OffsetHours     int
	OffsetWithDST   int
	CurrentTime     string
	CurrentTimeUnix float64
	IsDST           bool
	DSTExists       bool
	DSTSavingsHours int
}

// currentTimeFormat renders local time like "2024-06-01 14:03:12.345+0200".
const currentTimeFormat = "2006-01-02 15:04:05.000-0700"

// Finder is the production resolver for both timezone ports.
type Finder struct{}

// NewFinder returns a Finder. The boundary tables are package data, so
// the value is stateless and safe for unbounded concurrent use.
func NewFinder() *Finder {
	return &Finder{}
}

// ZoneName returns the IANA zone name for the given coordinates, or ""
// when the coordinates are out of range or fall in unzoned territory
// (open ocean, unclaimed areas).
func (f *Finder) ZoneName(lat, lng float64) string {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ""
	}
	return latlong.LookupZoneName(lat, lng)
}

// ZoneDetails computes offset and DST information for an IANA zone name.
// Returns ok=false for names the IANA database does not know.
func (f *Finder) ZoneDetails(name string) (*Details, bool) {
	if name == "" {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}

	now := time.Now()
	local := now.In(loc)
	_, offsetSecs := local.Zone()

	isDST, dstExists, savings := checkDST(loc, now)

	return &Details{
		Name:        name,
		OffsetHours: offsetSecs / 3600,
		// The current offset already includes DST when it is active.
		OffsetWithDST:   offsetSecs / 3600,
		CurrentTime:     local.Format(currentTimeFormat),
		CurrentTimeUnix: float64(now.UnixMilli()) / 1000.0,
		IsDST:           isDST,
		DSTExists:       dstExists,
		DSTSavingsHours: savings,
	}, true
}

// checkDST compares the zone's mid-January and mid-July offsets to decide
// whether the zone observes DST at all, whether it is active now, and how
// large the seasonal shift is.
func checkDST(loc *time.Location, now time.Time) (isDST, dstExists bool, savingsHours int) {
	year := now.In(loc).Year()

	jan := time.Date(year, time.January, 15, 12, 0, 0, 0, loc)
	jul := time.Date(year, time.July, 15, 12, 0, 0, 0, loc)
	_, janOffset := jan.Zone()
	_, julOffset := jul.Zone()

	dstExists = janOffset != julOffset
	savingsHours = abs(julOffset-janOffset) / 3600

	_, current := now.In(loc).Zone()
	isDST = dstExists && current == max(janOffset, julOffset)

	return isDST, dstExists, savingsHours
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

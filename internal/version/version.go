package version

import "runtime"

// Build metadata. BuildDate is stamped by the release script via
// -ldflags "-X flightdeck/internal/version.BuildDate=...".
var (
	AppName        = "Flightdeck"
	AppDescription = "Flight lookups, tracking links and light aviation recon, right in Discord."
	BuildDate      = ""
	GoVersion      = runtime.Version()
)

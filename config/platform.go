package config

// Platform holds the host and path conventions of the profile site.
type Platform struct {
	AcceptedHosts []string // a profile URL must mention one of these
	AlternateHost string   // rewritten to CanonicalHost before fetching
	CanonicalHost string
	ProfileMarker string // path segment every profile URL carries
	Locale        string
}

// Platforms maps platform keys to their conventions.
var Platforms = map[string]Platform{
	"cloudskillsboost": {
		AcceptedHosts: []string{"cloudskillsboost.google", "skills.google", "qwiklabs.com"},
		AlternateHost: "skills.google",
		CanonicalHost: "cloudskillsboost.google",
		ProfileMarker: "public_profiles",
		Locale:        "en",
	},
}

// DefaultPlatform is the key used when none is configured.
const DefaultPlatform = "cloudskillsboost"

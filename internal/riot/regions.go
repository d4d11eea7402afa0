package riot

import "strings"

// clusterByPlatform maps a platform routing value (the per-region shard used
// by the summoner endpoints) to the regional routing cluster used by the
// account and match endpoints.
var clusterByPlatform = map[string]string{
	"br1": "americas",
	"la1": "americas",
	"la2": "americas",
	"na1": "americas",
	"kr":  "asia",
	"jp1": "asia",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"oc1": "sea",
	"ph2": "sea",
	"sg2": "sea",
	"th2": "sea",
	"tw2": "sea",
	"vn2": "sea",
}

// ClusterFor returns the regional routing cluster for a platform. Unknown
// platforms fall back to europe, which is where the original deployment lived.
func ClusterFor(platform string) string {
	if cluster, ok := clusterByPlatform[strings.ToLower(platform)]; ok {
		return cluster
	}
	return "europe"
}

// IsValidPlatform reports whether the given platform routing value is known.
func IsValidPlatform(platform string) bool {
	_, ok := clusterByPlatform[strings.ToLower(platform)]
	return ok
}

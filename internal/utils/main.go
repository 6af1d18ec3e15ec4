// Package utils contains small helpers shared across the application.
package utils

import (
	"fmt"
	"hash/fnv"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// GetTCPAddr resolves the TCP address stored under the given viper key.
func GetTCPAddr(key string) *net.TCPAddr {
	addr, addrErr := net.ResolveTCPAddr("tcp", viper.GetString(key))
	if addrErr != nil {
		panic(fmt.Errorf("error parsing address %s: %s", viper.GetString(key), addrErr))
	}
	return addr
}

var tagRegexp = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML markup from a summary string and trims the result.
func StripTags(input string) string {
	return strings.TrimSpace(tagRegexp.ReplaceAllString(input, ""))
}

// StableBucket assigns a name to one of n buckets, numbered 1 through n.
// FNV-1a is pinned here so the assignment is reproducible across process
// restarts; do not swap in a seeded or randomized hash.
func StableBucket(name string, n int) int {
	if n <= 0 {
		return 1
	}
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	return int(h.Sum32()%uint32(n)) + 1
}

var easternTime = mustLoadEastern()

func mustLoadEastern() *time.Location {
	loc, locErr := time.LoadLocation("America/New_York")
	if locErr != nil {
		panic(fmt.Errorf("error loading display timezone: %s", locErr))
	}
	return loc
}

// DisplayTimezone returns the fixed timezone all program times are normalized
// to before being returned.
func DisplayTimezone() *time.Location {
	return easternTime
}

// Package config reads settings from environment variables under a key prefix
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"folio/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("FOLIO_WEB_")
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix returns a view whose keys are prefixed by p on top of the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value; blank counts as unset
func (c Conf) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	return v, v != ""
}

// MustString returns the value of key and panics when it is unset
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the value of key or def
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns key as an int, def when unset or malformed
func (c Conf) MayInt(key string, def int) int {
	return parsed(c, key, def, strconv.Atoi)
}

// MayBool returns key as a bool (1, t, true, 0, f, false...), def when unset or malformed
func (c Conf) MayBool(key string, def bool) bool {
	return parsed(c, key, def, strconv.ParseBool)
}

// MayDuration returns key as a duration such as 250ms or 10m, def when unset or malformed
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, time.ParseDuration)
}

// MayCSV splits key on commas, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	v, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// parsed falls back to def with a warning so a typo in an optional key never stops boot
func parsed[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg("malformed env, using default")
		return def
	}
	return v
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package namespace

import "time"

// NoExpiry is reported for keys that persist until deleted.
const NoExpiry time.Duration = -1

// Categories missing from this table persist without expiry.
var ttls = map[Category]time.Duration{
	Session:    24 * time.Hour,
	Cache:      30 * time.Minute,
	AlertState: 7 * 24 * time.Hour,
	Tenant:     time.Hour,
}

// TTLFor returns the expiry applied to keys of the category. The boolean is
// false when keys of the category are stored without expiry.
func TTLFor(category Category) (time.Duration, bool) {
	ttl, ok := ttls[category]
	return ttl, ok
}

// Policy describes the expiry of a single category.
type Policy struct {
	Category Category `json:"category"`
	TTL      string   `json:"ttl"`
	Expires  bool     `json:"expires"`
}

// Policies returns the expiry policy of every category.
func Policies() []Policy {
	ps := make([]Policy, 0, len(categories))
	for _, c := range categories {
		p := Policy{Category: c, TTL: "none"}
		if ttl, ok := TTLFor(c); ok {
			p.TTL = ttl.String()
			p.Expires = true
		}
		ps = append(ps, p)
	}
	return ps
}

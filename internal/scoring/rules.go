package scoring

import (
	"fmt"
	"sort"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/profile"
)

// Bonus multipliers applied to a triggered rule's priority score.
const (
	recommendFactor = 0.3
	avoidFactor     = 0.2
)

// Bonus applies every recommendation rule to the profile and returns the net
// adjustment for the named material. The result may be negative.
//
// A rule is triggered as soon as any single key/value pair in any of its
// triggers matches the profile — an early-exit OR across all (trigger, key)
// pairs, not an AND within a trigger. That is the semantics existing catalogs
// were written against, so it is preserved literally.
//
// A triggered rule grants +30% of its priority score when the material is
// recommended, or −20% when it is avoided; a material listed in both gets the
// bonus only. Adjustments from distinct rules accumulate additively, evaluated
// in sorted rule-name order so the floating-point sum is reproducible.
func Bonus(p profile.Profile, materialName string, rules map[string]catalog.RecommendationRule) float64 {
	if len(rules) == 0 {
		return 0
	}

	attrs := p.AsMap()

	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	var bonus float64
	for _, name := range names {
		rule := rules[name]
		if !triggered(attrs, rule.Triggers) {
			continue
		}
		if containsName(rule.RecommendedMaterials, materialName) {
			bonus += rule.PriorityScore * recommendFactor
		} else if containsName(rule.AvoidMaterials, materialName) {
			bonus -= rule.PriorityScore * avoidFactor
		}
	}
	return bonus
}

// triggered reports whether any key/value pair in any trigger matches the
// profile's attribute mapping.
func triggered(attrs map[string]any, triggers []map[string]string) bool {
	for _, trigger := range triggers {
		for key, want := range trigger {
			got, ok := attrs[key]
			if !ok {
				continue
			}
			if fmt.Sprint(got) == want {
				return true
			}
		}
	}
	return false
}

func containsName(names []string, target string) bool {
	for _, n := range names {
		if n == target {
			return true
		}
	}
	return false
}

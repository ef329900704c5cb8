package render

import (
	"fmt"
	"strings"
)

// Tier is one rank in the permission hierarchy. Tiers inherit the previous
// tier and weights increase strictly with privilege.
type Tier struct {
	Name        string
	Weight      int
	Inherits    []string
	Permissions []string
}

// PermissionTiers returns the four built-in ranks, lowest privilege first.
// The top tier grants the single wildcard permission.
func PermissionTiers() []Tier {
	return []Tier{
		{
			Name:   "default",
			Weight: 1,
			Permissions: []string{
				"essentials.home",
				"essentials.spawn",
				"essentials.msg",
				"essentials.balance",
				"griefdefender.claim.basic",
				"mcmmo.skills.*",
				"shopkeepers.trade",
				"dynmap.webchat",
				"chunky.use",
			},
		},
		{
			Name:     "vip",
			Weight:   10,
			Inherits: []string{"default"},
			Permissions: []string{
				"essentials.sethome.multiple.vip",
				"essentials.kits.vip",
				"essentials.repair",
				"griefdefender.claim.blocks.extra.5000",
				"mcmmo.ability.doublexp",
				"dynmap.marker.create",
			},
		},
		{
			Name:     "mod",
			Weight:   50,
			Inherits: []string{"vip"},
			Permissions: []string{
				"essentials.kick",
				"essentials.tempban",
				"advancedban.tempban",
				"coreprotect.inspect",
				"coreprotect.rollback",
				"griefdefender.claim.manage",
				"worldguard.region.info",
				"matrix.notify",
				"spark.viewer",
			},
		},
		{
			Name:        "admin",
			Weight:      100,
			Inherits:    []string{"mod"},
			Permissions: []string{"*"},
		},
	}
}

// RenderPermissionTier renders one tier as an ordered YAML document.
func RenderPermissionTier(t Tier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", t.Name)
	fmt.Fprintf(&b, "weight: %d\n", t.Weight)
	b.WriteString("inheritances:\n")
	b.WriteString(renderList(t.Inherits))
	b.WriteString("permissions:\n")
	b.WriteString(renderList(t.Permissions))
	return b.String()
}

func renderList(items []string) string {
	if len(items) == 0 {
		return "  []\n"
	}
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "  - %s\n", item)
	}
	return b.String()
}

package render

import (
	"fmt"

	"mcbundle.dev/cli/internal/core/domain/deploy"
)

// RenderPurpurConfig renders the Purpur performance-tuning defaults. The
// block is fully curated; nothing in it is user-tunable.
func RenderPurpurConfig() string {
	return `settings:
  check-for-updates: false
  bStats: true
world-settings:
  default:
    redstone:
      optimize: true
      use-vanilla-logic: false
    alt-item-drops: true
    armor-stand:
      tick: false
    bat-go-to-sleep: true
    block-fall-time: 2
    disable-teleporting-dropping-items: true
    experience:
      merge-radius: 4.0
    item:
      merge-radius: 4.0
    block-ticking:
      max-tile-ticks-per-tick: 1000
    entity-tracking-range:
      players: 64
      animals: 48
      monsters: 48
      misc: 32
    entity-activation-range:
      animals: 24
      monsters: 32
      raiders: 48
      misc: 16
    mob-spawning:
      animal-cap: 32
      monster-cap: 70
      ambient-cap: 10
      water-animal-cap: 15
      water-ambient-cap: 20
    anti-xray:
      enabled: true
      engine-mode: 2
      layer-check: 5
      hidden-blocks:
        - ancient_debris
        - copper_ore
        - diamond_ore
        - deepslate_diamond_ore
        - emerald_ore
        - deepslate_emerald_ore
        - gold_ore
        - iron_ore
        - lapis_ore
        - redstone_ore
    hopper:
      disable-move-event: true
      cooldown-when-full: true
    player:
      disable-ticking: false
      use-alternate-keepalive: true
      portal-search-radius: 64
    villager:
      search-radius: 40
      work-immunity-after: 20
      activate-brain-ticks: 1
    wither:
      disable-block-damage: false
    tnt:
      allow-multi-ignite: false
      detonate-on-player-interact: false
    mechanics:
      use-alternate-keepalive: true
      disable-chunk-owners: true
`
}

// RenderPaperConfig renders the Paper tuning defaults. View and simulation
// distance mirror the configuration, as does the Velocity proxy toggle; the
// forwarding secret stays a placeholder the operator must replace.
func RenderPaperConfig(cfg deploy.Config) string {
	return fmt.Sprintf(`timings:
  enabled: false
settings:
  velocity-support:
    enabled: %t
    online-mode: true
    secret: change-me-for-velocity
world-settings:
  default:
    view-distance: %d
    simulation-distance: %d
    enable-treasure-maps: false
    despawn-ranges:
      monster: 48
      creature: 32
      ambient: 24
      axolotls: 24
    entity-per-chunk-save-limit:
      area_effect_cloud: 16
      arrow: 32
      lightning_bolt: 1
    hopper:
      cooldown-when-full: true
      disable-move-event: true
    fixed-chunk-inhabitants: true
    chunks-per-tick: 6
    chunk-loading:
      min-load-radius: 2
      enable-frustum-priority: true
    max-auto-save-chunks-per-tick: 12
    anti-xray:
      enabled: true
      engine-mode: 2
      hidden-blocks:
        - copper_ore
        - iron_ore
        - gold_ore
        - diamond_ore
        - deepslate_diamond_ore
        - ancient_debris
    use-faster-eigencraft-redstone: true
    tick-rates:
      behavior: 3
      sensor: 2
    mob-spawn-limits:
      monsters: 55
      animals: 30
      water-animals: 10
      water-ambient: 20
      ambient: 5
`, cfg.EnableVelocity, cfg.ViewDistance, cfg.SimulationDistance)
}

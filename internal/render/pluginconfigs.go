package render

// Default configuration documents for the covered catalog plugins. These
// are curated static templates; values the server config must agree on
// (economy defaults, claim-block economy, map bind address) live here as
// the recommended baseline.

// RenderEssentialsConfig renders the EssentialsX defaults: economy
// starting balance and currency symbol, starter kits, chat format, homes.
func RenderEssentialsConfig() string {
	return `settings:
  locale: en_US
  debug: false
  starting-balance: 500
  currency-symbol: "$"
newbies:
  kit: starter
spawnpoint:
  world: world
  x: 0.5
  y: 100
  z: 0.5
kits:
  starter:
    delay: 86400
    items:
      - "stone_sword 1"
      - "bread 16"
  vip:
    delay: 43200
    items:
      - "diamond_sword 1 sharpness:2"
      - "golden_apple 3"
chat:
  format: "&7[{GROUP}] &f{DISPLAYNAME}&7: &f{MESSAGE}"
  radius: 0
homes:
  per-group:
    default: 1
    vip: 5
    mod: 10
teleport-cooldown: 3
teleport-delay: 3
`
}

// RenderGriefDefenderConfig renders the claim-block economy defaults.
func RenderGriefDefenderConfig() string {
	return `claim-management:
  initial-claim-blocks: 2000
  accrual-blocks-per-hour: 150
  max-accrual-blocks: 12000
  abandons-restore-nature: true
options:
  player-command-enter-claim: true
  claim-auto-extend-min-size: 10
  grief-defender-says: "&6[Claims]&f"
flags:
  block-break: deny
  block-place: deny
  entity-damage: allow
storage:
  provider: file
`
}

// RenderDynmapConfig renders the live-map defaults, binding the map web
// server on all interfaces.
func RenderDynmapConfig() string {
	return `update-interval: 300
webserver-bindaddress: 0.0.0.0
webserver-port: 8123
defaultzoom: 2
enable-web-login: false
use-chunk-timestamps: true
processed-tiles-per-tick: 32
render-triggers:
  - blockplaced
  - blockbreak
  - playerjoin
  - playerquit
  - chunkgenerated
`
}

// RenderMcMMOConfig renders the skills-system defaults.
func RenderMcMMOConfig() string {
	return `experience:
  base-multiplier: 1.0
  mob-spawners: 0.2
  fishing: 0.8
skills:
  enable-pvp-skill-damage: false
  ability-length-modifier: 1.0
cooldowns:
  tree-feller: 240
  serrated-strikes: 240
  giga-drill-breaker: 240
`
}

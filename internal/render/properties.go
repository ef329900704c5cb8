package render

import (
	"fmt"
	"strings"

	"mcbundle.dev/cli/internal/core/domain/deploy"
)

// RenderServerProperties renders the primary runtime configuration as flat
// key=value lines. User-tunable knobs come from the configuration; the rest
// are fixed recommended defaults for a survival server.
func RenderServerProperties(cfg deploy.Config) string {
	lines := []string{
		"enable-jmx-monitoring=false",
		"rcon.port=25575",
		"level-seed=",
		"gamemode=survival",
		"enable-command-block=false",
		"enable-query=true",
		"generator-settings=",
		"level-name=world",
		fmt.Sprintf("motd=%s | Economy - Claims - Skills", cfg.ServerName),
		"query.port=25565",
		"pvp=true",
		"difficulty=hard",
		"network-compression-threshold=256",
		"require-resource-pack=false",
		"max-tick-time=60000",
		"use-native-transport=true",
		fmt.Sprintf("max-players=%d", cfg.MaxPlayers),
		"online-mode=true",
		"enable-status=true",
		"allow-flight=false",
		"broadcast-rcon-to-ops=false",
		fmt.Sprintf("view-distance=%d", cfg.ViewDistance),
		fmt.Sprintf("simulation-distance=%d", cfg.SimulationDistance),
		"max-build-height=384",
		"server-ip=",
		"allow-nether=true",
		"server-port=25565",
		"enable-rcon=false",
		"sync-chunk-writes=false",
		"op-permission-level=4",
		"prevent-proxy-connections=false",
		"resource-pack=",
		"entity-broadcast-range-percentage=75",
		"player-idle-timeout=0",
		"text-filtering-config=",
		"spawn-protection=0",
		"force-gamemode=false",
		"rate-limit=0",
		"hardcore=false",
		"white-list=false",
		"enforce-whitelist=false",
		"broadcast-console-to-ops=true",
		"spawn-npcs=true",
		"spawn-animals=true",
		"spawn-monsters=true",
		"snooper-enabled=false",
		"function-permission-level=2",
		"level-type=minecraft:normal",
		"spawn-keeploaded=true",
	}
	return strings.Join(lines, "\n") + "\n"
}

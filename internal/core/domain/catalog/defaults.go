package catalog

// Default returns the built-in plugin catalog. The set is intentionally
// opinionated: a survival-multiplayer baseline of permissions, economy,
// protection, performance and quality-of-life plugins.
func Default() Catalog {
	return New([]Descriptor{
		{
			Name:        "LuckPerms",
			Description: "Permissions & ranks",
			URL:         "https://download.luckperms.net/latest/bukkit",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "Vault",
			Description: "Economy API",
			URL:         "https://github.com/MilkBowl/Vault/releases/latest/download/Vault.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "EssentialsX",
			Description: "Core commands",
			URL:         "https://github.com/EssentialsX/Essentials/releases/latest",
			Default:     true,
			Source:      SourceGitHubRelease,
			GitHub:      &GitHubMeta{Owner: "EssentialsX", Repo: "Essentials", AssetPattern: `^EssentialsX-.*\.jar$`},
		},
		{
			Name:        "EssentialsXChat",
			Description: "Chat formatting",
			URL:         "https://github.com/EssentialsX/Essentials/releases/latest",
			Default:     true,
			Source:      SourceGitHubRelease,
			GitHub:      &GitHubMeta{Owner: "EssentialsX", Repo: "Essentials", AssetPattern: `^EssentialsXChat-.*\.jar$`},
		},
		{
			Name:        "EssentialsXSpawn",
			Description: "Spawn control",
			URL:         "https://github.com/EssentialsX/Essentials/releases/latest",
			Default:     true,
			Source:      SourceGitHubRelease,
			GitHub:      &GitHubMeta{Owner: "EssentialsX", Repo: "Essentials", AssetPattern: `^EssentialsXSpawn-.*\.jar$`},
		},
		{
			Name:        "WorldEdit",
			Description: "Building tools",
			URL:         "https://maven.enginehub.org/repo/com/sk89q/worldedit/worldedit-bukkit/",
			Default:     true,
			Source:      SourceMaven,
			Maven:       &MavenMeta{BaseURL: "https://maven.enginehub.org/repo", Group: "com.sk89q.worldedit", Artifact: "worldedit-bukkit"},
		},
		{
			Name:        "WorldGuard",
			Description: "Region protection",
			URL:         "https://maven.enginehub.org/repo/com/sk89q/worldguard/worldguard-bukkit/",
			Default:     true,
			Source:      SourceMaven,
			Maven:       &MavenMeta{BaseURL: "https://maven.enginehub.org/repo", Group: "com.sk89q.worldguard", Artifact: "worldguard-bukkit"},
		},
		{
			Name:        "GriefDefender",
			Description: "Claims & anti-grief",
			URL:         "https://github.com/bloodmc/GriefDefender/releases/latest/download/GriefDefender.zip",
			Default:     true,
			Source:      SourceDirect,
			Archive:     true,
		},
		{
			Name:        "CoreProtect",
			Description: "Block logging",
			URL:         "https://ci.lucko.me/job/CoreProtect/lastSuccessfulBuild/artifact/target/CoreProtect-21.6.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "Matrix",
			Description: "Anti-cheat",
			URL:         "https://matrix.rico-gamer.de/latest/Matrix-latest.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "AdvancedBan",
			Description: "Moderation",
			URL:         "https://github.com/DevLeoko/AdvancedBan/releases/latest/download/AdvancedBan.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "Shopkeepers",
			Description: "Player shops",
			URL:         "https://github.com/Shopkeepers/Shopkeepers/releases/latest/download/Shopkeepers.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "mcMMO",
			Description: "Skills system",
			URL:         "https://ci.minebench.de/job/mcMMO/lastStableBuild/artifact/target/mcMMO-2.2.20.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "Dynmap",
			Description: "Live map",
			URL:         "https://github.com/webbukkit/dynmap/releases/latest/download/Dynmap-3.7-beta-6-spigot.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "Spark",
			Description: "Profiling",
			URL:         "https://download.lucko.me/spark/latest/bukkit",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "Chunky",
			Description: "World pregen",
			URL:         "https://github.com/pop4959/Chunky/releases/latest/download/Chunky-Bukkit-1.4.28.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "ViaVersion",
			Description: "Allow newer clients",
			URL:         "https://ci.viaversion.com/job/ViaVersion/lastSuccessfulBuild/artifact/build/libs/ViaVersion-5.0.1.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "ViaBackwards",
			Description: "Allow older clients",
			URL:         "https://ci.viaversion.com/job/ViaBackwards/lastSuccessfulBuild/artifact/build/libs/ViaBackwards-5.0.1.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "ViaRewind",
			Description: "Legacy mobs",
			URL:         "https://ci.viaversion.com/job/ViaRewind/lastSuccessfulBuild/artifact/build/libs/ViaRewind-4.0.5.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "EconomyShopGUI",
			Description: "GUI shops",
			URL:         "https://github.com/Gypopo/EconomyShopGUI-Plugin/releases/latest/download/EconomyShopGUI-6.8.0.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "PlayerWarps",
			Description: "Player warp system",
			URL:         "https://github.com/OmerBenGera/PlayerWarps/releases/latest/download/PlayerWarps.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "BetterSleeping3",
			Description: "Skip nights",
			URL:         "https://github.com/Nuytemans-Dieter/BetterSleeping3/releases/latest/download/BetterSleeping3.jar",
			Default:     true,
			Source:      SourceDirect,
		},
		{
			Name:        "LiteBans",
			Description: "Punishment management",
			URL:         "https://github.com/ruany/LiteBans/releases/latest/download/LiteBans.jar",
			Default:     false,
			Source:      SourceDirect,
		},
	})
}

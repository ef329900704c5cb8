package deploy

import "fmt"

// RuntimeTarget describes the server runtime binary for a fork/version pair:
// the jar name the launch scripts expect, and where to download it. For
// installer-based forks DownloadURL is empty; the installer location is
// resolved separately against the forge metadata index.
type RuntimeTarget struct {
	JarName     string
	DownloadURL string
}

// Runtime returns the runtime target for the configured fork and version.
func (c Config) Runtime() (RuntimeTarget, error) {
	fork, err := ParseFork(string(c.Fork))
	if err != nil {
		return RuntimeTarget{}, err
	}
	v := c.Version
	switch fork {
	case ForkPurpur:
		return RuntimeTarget{
			JarName:     fmt.Sprintf("purpur-%s.jar", v),
			DownloadURL: fmt.Sprintf("https://api.purpurmc.org/v2/purpur/%s/latest/download", v),
		}, nil
	case ForkPaper:
		return RuntimeTarget{
			JarName:     fmt.Sprintf("paper-%s.jar", v),
			DownloadURL: fmt.Sprintf("https://api.papermc.io/v2/projects/paper/versions/%s/builds/latest/downloads/paper-%s.jar", v, v),
		}, nil
	case ForkSpigot:
		return RuntimeTarget{
			JarName:     fmt.Sprintf("spigot-%s.jar", v),
			DownloadURL: fmt.Sprintf("https://download.getbukkit.org/spigot/spigot-%s.jar", v),
		}, nil
	case ForkForge:
		// The runnable jar is produced by the installer; there is no direct
		// download for it.
		return RuntimeTarget{JarName: fmt.Sprintf("forge-%s-server.jar", v)}, nil
	}
	return RuntimeTarget{}, &UnsupportedForkError{Fork: string(c.Fork)}
}

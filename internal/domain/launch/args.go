package launch

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Cacio component folders under the components directory.
const (
	CacioDir8  = "cacio-8"
	CacioDir17 = "cacio-17"
)

// LauncherProfilesFile is created in the user home before a launch; some
// loader installers refuse to run without it.
const LauncherProfilesFile = "launcher_profiles.json"

// LauncherProfiles is the content written to LauncherProfilesFile.
const LauncherProfiles = `{
    "profiles": {},
    "settings": {
        "enableSnapshots": false,
        "enableAdvanced": false,
        "keepLauncherOpen": false,
        "showGameLog": false,
        "showMenu": false,
        "soundOn": false
    },
    "version": 3
}
`

// SplitArgs splits s on spaces that are not inside double quotes. Quotes
// are kept inside a token but stripped from its ends.
func SplitArgs(s string) []string {
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, strings.Trim(cur.String(), `"`))
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case r == ' ' && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// CacioArgs returns the arguments that route AWT through Caciocavallo so
// the JVM can run without a display server.
func CacioArgs(width, height, javaVersion int, componentsDir string) []string {
	args := []string{
		"-Djava.awt.headless=false",
		"-Dawt.toolkit=net.java.openjdk.cacio.ctk.CToolkit",
		"-Djava.awt.graphicsenv=net.java.openjdk.cacio.ctk.CGraphicsEnvironment",
		"-Dglfwstub.windowWidth=" + strconv.Itoa(width),
		"-Dglfwstub.windowHeight=" + strconv.Itoa(height),
		"-Dglfwstub.initEgl=false",
	}

	if javaVersion > 8 {
		args = append(args,
			"--add-exports=java.desktop/sun.awt=ALL-UNNAMED",
			"--add-exports=java.desktop/sun.awt.image=ALL-UNNAMED",
			"--add-exports=java.desktop/sun.java2d=ALL-UNNAMED",
			"--add-exports=java.desktop/java.awt.peer=ALL-UNNAMED",
		)
	}

	cacioDir := CacioDir8
	if javaVersion >= 17 {
		cacioDir = CacioDir17
		args = append(args, "-javaagent:"+filepath.Join(componentsDir, CacioDir17, "cacio-agent.jar"))
	}

	return append(args, "-Xbootclasspath/a:"+filepath.Join(componentsDir, cacioDir, "cacio-ttc.jar"))
}

// ArgsInput groups the argument sources for BuildArgs.
type ArgsInput struct {
	Runtime       Runtime
	ComponentsDir string
	WindowWidth   int
	WindowHeight  int

	// DefaultJVMArgs come from service configuration.
	DefaultJVMArgs []string

	// VersionJVMArgs come from the selected version's metadata.
	VersionJVMArgs string

	// RequestJVMArgs come from the caller.
	RequestJVMArgs string
}

// BuildArgs assembles the JVM argument list: Cacio arguments, configured
// defaults, version arguments, then request arguments.
func BuildArgs(in ArgsInput) []string {
	args := CacioArgs(in.WindowWidth, in.WindowHeight, in.Runtime.JavaVersion, in.ComponentsDir)
	args = append(args, in.DefaultJVMArgs...)
	args = append(args, SplitArgs(in.VersionJVMArgs)...)
	return append(args, SplitArgs(in.RequestJVMArgs)...)
}

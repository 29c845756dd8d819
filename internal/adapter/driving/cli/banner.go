package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dkoester/printpricer-go/pkg/version"
)

// displayWelcomeBanner shows the welcome banner with version info.
func displayWelcomeBanner(versionStr string) {
	banner := `
     ____       _       __    ____       _
    / __ \_____(_)___  / /_  / __ \_____(_)_______  _____
   / /_/ / ___/ / __ \/ __/ / /_/ / ___/ / ___/ _ \/ ___/
  / ____/ /  / / / / / /_  / ____/ /  / / /__/  __/ /
 /_/   /_/  /_/_/ /_/\__/ /_/   /_/  /_/\___/\___/_/
`
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("3D Print Price Calculator (v%s)", formattedVersion)))
}

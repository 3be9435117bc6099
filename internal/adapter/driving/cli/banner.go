package cli

import (
	"fmt"

	"github.com/diillson/usage-statement-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
  _   _                          ____  _        _                            _
 | | | |___  __ _  __ _  ___    / ___|| |_ __ _| |_ ___ _ __ ___   ___ _ __ | |_
 | | | / __|/ _' |/ _' |/ _ \   \___ \| __/ _' | __/ _ \ '_ ' _ \ / _ \ '_ \| __|
 | |_| \__ \ (_| | (_| |  __/    ___) | || (_| | ||  __/ | | | | |  __/ | | | |_
  \___/|___/\__,_|\__, |\___|   |____/ \__\__,_|\__\___|_| |_| |_|\___|_| |_|\__|
                  |___/
`
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(magenta(banner))

	formattedVersion := version.FormatVersion()
	if versionStr != "" && versionStr != version.Version {
		formattedVersion = versionStr
	}
	fmt.Println(blue(fmt.Sprintf("Usage Statement CLI (v%s)", formattedVersion)))
}

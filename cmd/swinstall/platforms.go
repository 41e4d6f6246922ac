// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/swinstall/swinstall/internal/config"
	"github.com/swinstall/swinstall/internal/installer"
	"github.com/swinstall/swinstall/pkg/platform"
	"github.com/swinstall/swinstall/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const notImplementedAction = "(not implemented)"

func newPlatformsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms and their install commands",
		Long: `List the supported platforms with their Go OS name and the command
each routine runs. The detected host is marked with '*'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			return listPlatforms(app, cfg)
		},
	}
}

func listPlatforms(app *App, cfg *config.Config) error {
	system := app.SystemName()
	host := platform.Parse(system)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("", "PLATFORM", "GOOS", "ACTION")

	for _, p := range platform.Supported() {
		marker := ""
		if p == host {
			marker = SuccessStyle.Render("*")
		}
		t.Row(marker, p.String(), p.GOOS(), platformAction(p, cfg.Software))
	}

	fmt.Fprintln(app.stdout, t.Render())

	if !host.IsSupported() {
		fmt.Fprintln(app.stdout, WarningStyle.Render(fmt.Sprintf("Host system %q is not supported.", system)))
	}
	return nil
}

// platformAction describes what the routine for p does for software.
func platformAction(p platform.Platform, software types.PackageName) string {
	switch p {
	case platform.LinuxPlatform:
		return CmdStyle.Render(installer.AptInstallCommand(software).String())
	case platform.WindowsPlatform, platform.MacOSPlatform:
		return notImplementedAction
	case platform.Unsupported:
		return ""
	default:
		return ""
	}
}

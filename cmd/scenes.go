package cmd

import (
	"fmt"

	"github.com/df07/go-smallpt/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes with their default render settings
func ListScenes(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Primitives", "Lights", "Size", "SPP", "Depth", "Description"})

	for _, info := range scene.ListScenes() {
		setup, err := scene.Create(info.ID)
		if err != nil {
			return err
		}
		table.Append([]string{
			info.ID,
			info.DisplayName,
			fmt.Sprintf("%d", setup.Scene.PrimitiveCount()),
			fmt.Sprintf("%d", setup.Scene.LightCount()),
			fmt.Sprintf("%dx%d", setup.Width, setup.Height),
			fmt.Sprintf("%d", setup.SamplesPerPixel),
			fmt.Sprintf("%d", setup.MaxDepth),
			info.Description,
		})
	}

	table.Render()
	return nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isogrid/pkg/scene"
)

// importTiledCommand creates the import-tiled command.
func (c *CLI) importTiledCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import-tiled [map.tmx]",
		Short: "Convert a Tiled isometric map into a scene file",
		Long: `Convert a Tiled isometric map (.tmx) into a scene file.

Every non-empty tile of every tile layer and every object becomes a node.
Object groups become scene groups. The output format follows the extension
of --output (.toml or .json); the default is the map name with .toml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImportTiled(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "scene file to write (.toml or .json)")
	return cmd
}

func (c *CLI) runImportTiled(input, output string) error {
	prog := newProgress(c.Logger)

	abs, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("open map: %w", err)
	}
	s, err := scene.ImportTiled(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	if err != nil {
		return fmt.Errorf("import %s: %w", input, err)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".toml"
	}
	if err := scene.WriteFile(output, s); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	printSuccess("Imported %s", filepath.Base(input))
	printStats(len(s.Nodes), len(s.Connectors), false)
	printDetail("%d groups", len(s.Groups))
	printFile(output)
	printNextStep("Render it", "isogrid render --fit "+output)
	prog.done("Imported "+filepath.Base(input), "nodes", len(s.Nodes))
	return nil
}

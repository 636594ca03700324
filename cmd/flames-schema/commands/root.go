package commands

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/flameshq/flames/config"
	"github.com/flameshq/flames/internal/app"
)

var (
	cfgFile string
	appCtx  app.AppContext
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and releases the application whatever the outcome
func execute(root *cobra.Command) error {
	defer release()
	return root.Execute()
}

func release() {
	if appCtx != nil {
		appCtx.Release()
		appCtx = nil
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "flames-schema",
		Short:        "Inspect and check the flames data models",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			a := app.NewApplication(cfg)
			if err := a.Init(); err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "/etc/flames.yml", "config file")

	root.AddCommand(collectionsCmd(), schemaCmd(), exampleCmd(), validateCmd())
	return root
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeAs(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		return writeYAML(w, v)
	}
	return writeJSON(w, v)
}

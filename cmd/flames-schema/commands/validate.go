package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/flameshq/flames/internal/domain"
	"github.com/flameshq/flames/internal/importer"
	"github.com/flameshq/flames/internal/validation"
)

const stdinName = "-"

type documentReport struct {
	Source string            `json:"source"`
	Index  int               `json:"index"`
	Valid  bool              `json:"valid"`
	Record domain.Record     `json:"record,omitempty"`
	Errors validation.Errors `json:"errors,omitempty"`
}

func validateCmd() *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "validate <collection> [file...]",
		Short: "Check json, ndjson or csv documents against a collection",
		Long: "Validate every document read from the given files, or from stdin when no file " +
			"(or -) is given. Exits with status 1 when any document fails.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unsupported output %q", output)
			}
			collection := args[0]
			if _, ok := appCtx.Catalog().Lookup(collection); !ok {
				return fmt.Errorf("unknown collection %q", collection)
			}
			sources := args[1:]
			if len(sources) == 0 {
				sources = []string{stdinName}
			}

			var reports []documentReport
			failed := 0
			for _, src := range sources {
				docs, err := readSource(cmd, src, format)
				if err != nil {
					return err
				}
				results, err := importer.ValidateAll(cmd.Context(), appCtx.Catalog(), collection, docs,
					appCtx.Config().Validation.Workers)
				if err != nil {
					return err
				}
				for _, r := range results {
					if !r.OK() {
						failed++
					}
					reports = append(reports, documentReport{
						Source: src,
						Index:  r.Index,
						Valid:  r.OK(),
						Record: r.Record,
						Errors: r.Errors,
					})
				}
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				if reports == nil {
					reports = []documentReport{}
				}
				if err := writeJSON(out, reports); err != nil {
					return err
				}
			} else if err := writeText(out, reports); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failed, len(reports))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format: auto, json, ndjson or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "report format: text or json")
	return cmd
}

func readSource(cmd *cobra.Command, src, format string) ([]map[string]interface{}, error) {
	f := importer.FormatJSON
	if format != "auto" {
		parsed, err := importer.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		f = parsed
	} else if src != stdinName {
		f = importer.FormatFromPath(src)
	}

	var r io.Reader
	if src == stdinName {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	docs, err := importer.Read(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return docs, nil
}

func writeText(w io.Writer, reports []documentReport) error {
	for _, r := range reports {
		if r.Valid {
			if _, err := fmt.Fprintf(w, "%s[%d]: ok\n", r.Source, r.Index); err != nil {
				return err
			}
			continue
		}
		for _, fe := range r.Errors {
			if _, err := fmt.Fprintf(w, "%s[%d]: %s\n", r.Source, r.Index, fe); err != nil {
				return err
			}
		}
	}
	return nil
}

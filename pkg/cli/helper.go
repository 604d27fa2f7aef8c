package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// writeReport prints the sixteen results in their fixed order
func writeReport(w io.Writer, report *model.Report, format string) error {
	items := report.Items()

	switch format {
	case formatText:
		for i, item := range items {
			if _, err := fmt.Fprintf(w, "%d. %s: %s\n", i+1, item.Label, item.Value); err != nil {
				return goerr.Wrap(err, "failed to write report")
			}
		}

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return goerr.Wrap(err, "failed to write report")
		}

	default:
		return goerr.Wrap(types.ErrInvalidOption, "invalid output format, should be 'text' or 'json'", goerr.V("value", format))
	}

	return nil
}

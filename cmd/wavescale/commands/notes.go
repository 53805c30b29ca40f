package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/wavescale/pkg/audio/notes"
	"github.com/haivivi/wavescale/pkg/cli"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List the 88-note frequency table",
	Long: `List every key of the table with its index, name and frequency. The
frequency column is the exact value --start accepts.

Examples:
  wavescale notes
  wavescale notes --json | jq '.[] | select(.name == "A4")'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := make(noteList, notes.Len)
		for i, f := range notes.Frequencies {
			list[i] = noteEntry{Index: i, Name: notes.Name(i), Hz: f}
		}
		if outputJSON {
			return outputResult(list)
		}
		return cli.Output(list, cli.OutputOptions{Format: cli.FormatTable})
	},
}

type noteEntry struct {
	Index int     `json:"index" yaml:"index"`
	Name  string  `json:"name" yaml:"name"`
	Hz    float64 `json:"hz" yaml:"hz"`
}

type noteList []noteEntry

// Table implements cli.Tabular.
func (l noteList) Table() ([]string, [][]string) {
	rows := make([][]string, len(l))
	for i, n := range l {
		rows[i] = []string{strconv.Itoa(n.Index), n.Name, notes.FormatHz(n.Hz)}
	}
	return []string{"INDEX", "NAME", "HZ"}, rows
}

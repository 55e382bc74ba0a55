package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/szuwgh/cograph/pkg/cooccur"
	"github.com/szuwgh/cograph/pkg/render"
)

var freqTop int

func init() {
	freqCmd.Flags().IntVarP(&freqTop, "most-common", "m", 15, "number of terms to print")
	rootCmd.AddCommand(freqCmd)
}

var freqCmd = &cobra.Command{
	Use:   "freq [file]",
	Short: "word frequency",
	Long:  `print the most common terms of a text after stopword filtering`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if freqTop < 0 {
			return errors.Wrapf(cooccur.ErrInvalidTopN, "got %d", freqTop)
		}
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		text, err := readInput(name, cmd.InOrStdin())
		if err != nil {
			return err
		}
		ft := cooccur.CountFrequencies(e.analyzer.Stream(text), e.opts.Stopwords)
		return render.WriteFrequencies(cmd.OutOrStdout(), ft.MostCommon(freqTop))
	},
}

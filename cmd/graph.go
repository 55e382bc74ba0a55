package cmd

import (
	"github.com/spf13/cobra"
	"github.com/szuwgh/cograph/pkg/cooccur"
	"github.com/szuwgh/cograph/pkg/render"
)

var (
	graphFormat string
	graphOutput string
)

func init() {
	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", string(render.FormatTable), "output format: table, json or dot")
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "output file, stdout when empty")
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "build a co-occurrence graph",
	Long:  `segment a utf-8 text file (or stdin) and print its term co-occurrence graph`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(graphFormat)
		if err != nil {
			return err
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
		p, err := cooccur.NewPipeline(e.opts)
		if err != nil {
			return err
		}
		stream := e.analyzer.Stream(text)
		e.log.Debug("segmented %d terms", len(stream))
		res, err := p.Run(stream)
		if err != nil {
			return err
		}
		if res.Graph.NumNodes() == 0 {
			e.log.Info("run %s: empty graph, nothing to render", res.ID)
		}
		w, closeFn, err := openOutput(graphOutput, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := render.Write(w, format, render.FromResult(res)); err != nil {
			closeFn()
			return err
		}
		return closeFn()
	},
}

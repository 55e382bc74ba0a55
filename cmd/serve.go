package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/szuwgh/cograph/pkg/cooccur"
	"github.com/szuwgh/cograph/web"
)

func init() {
	serveCmd.Flags().StringP("addr", "a", ":9400", "listen address")
	v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start http server",
	Long:  `serve POST /graph and POST /freq over http`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runtime.GOMAXPROCS(runtime.NumCPU())
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()
		if _, err := cooccur.NewPipeline(e.opts); err != nil {
			return err
		}
		return web.New(e.analyzer, e.opts, e.log).Run(e.conf.Server.Addr)
	},
}

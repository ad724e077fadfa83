package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/logger"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify"
	ndomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/domain"
)

// jobAliases maps CLI names to job names.
var jobAliases = map[string]string{
	"reminder":  ndomain.JobReminder,
	"reminders": ndomain.JobReminder,
	"feedback":  ndomain.JobFeedback,
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "run reminders|feedback",
		Short:     "Run one job once and print its result as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"reminders", "feedback"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := jobAliases[args[0]]
			if !ok {
				return fmt.Errorf("unknown job %q (want reminders or feedback)", args[0])
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.AppEnv)
			ctx := log.WithContext(cmd.Context())

			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()
			rc := openRedis(cfg)
			if rc != nil {
				defer func() { _ = rc.Close() }()
			}

			mod, err := notify.New(pool, rc, cfg)
			if err != nil {
				return err
			}
			job, _ := mod.Job(name)
			res := job.Run(ctx)
			if err := printResult(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.Success {
				osExit(exitRunFailed)
			}
			return nil
		},
	}
}

func printResult(w io.Writer, res ndomain.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

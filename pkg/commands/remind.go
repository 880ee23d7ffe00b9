package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/notify"
	"tableflip.dev/gratitude/pkg/runner/remind"
	"tableflip.dev/gratitude/pkg/store"
)

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Register this device for the daily reminder",
		Long: `Request a push registration token from the configured notification
endpoint. Registration is refused while notifications are disabled in settings.`,
		Example: `
gratitude remind
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.NotifyEndpoint() == "" {
				return errors.New("no notification endpoint configured, set notify.endpoint in the config file")
			}

			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := remind.Register{
				Source:      notify.NewRegistrar(cfg.NotifyEndpoint(), cfg.NotifyKey()),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
